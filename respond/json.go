// Package respond converts classified errors into client responses at the
// outermost request handler.
package respond

import (
	"github.com/jmgilman/go/frontend"
	"github.com/jmgilman/go/frontend/status"
)

// ErrorResponse represents the JSON structure returned to clients.
// It carries the classification of the error and its display text without
// exposing the error chain as structured data.
type ErrorResponse struct {
	// Code is the status code of the error.
	Code string `json:"code"`

	// Message is the display text of the error.
	Message string `json:"message"`

	// Classification indicates whether the client may retry.
	Classification string `json:"classification"`

	// Context contains the context fields of a frontend error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`

	// Location is where the error was constructed.
	// Only populated when the Reporter is configured to expose it.
	Location string `json:"location,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// Errors that do not classify themselves are reported as status.Unknown.
// Context fields are taken from the outermost frontend.Error in the chain.
//
// Example:
//
//	resp := respond.ToJSON(err)
//	w.WriteHeader(respond.HTTPStatus(status.Code(resp.Code)))
//	json.NewEncoder(w).Encode(resp)
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	code := status.CodeOf(err)
	resp := &ErrorResponse{
		Code:           code.String(),
		Message:        err.Error(),
		Classification: string(code.Classification()),
	}

	if fe, ok := frontend.As(err); ok {
		resp.Context = fe.Context()
	}

	return resp
}
