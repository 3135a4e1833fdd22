package respond

import (
	"net/http"

	"github.com/jmgilman/go/frontend/status"
)

// HTTPStatus maps a status code to the HTTP status returned to clients.
// Codes attributable to the client map to 4xx; everything else is a 5xx.
func HTTPStatus(code status.Code) int {
	switch code {
	case status.Success:
		return http.StatusOK
	case status.InvalidArguments, status.InvalidSyntax:
		return http.StatusBadRequest
	case status.TableNotFound, status.TableColumnNotFound:
		return http.StatusNotFound
	case status.TableAlreadyExists:
		return http.StatusConflict
	case status.Unsupported:
		return http.StatusNotImplemented
	case status.StorageUnavailable:
		return http.StatusServiceUnavailable
	case status.RuntimeResourcesExhausted:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
