package status

import "errors"

// ErrorExt is the capability a collaborator error exposes so the frontend can
// classify it without knowing its internal structure.
type ErrorExt interface {
	error

	// StatusCode returns the collaborator's own assessment of the failure.
	StatusCode() Code
}

// Locatable is implemented by errors that recorded where they were constructed.
// It is optional; collaborators that do not track locations simply omit it.
type Locatable interface {
	Location() Location
}

// CodeOf extracts the status code from an error.
// Returns Success if err is nil and Unknown if no error in the chain
// implements ErrorExt.
//
// The code is taken from the outermost ErrorExt in the chain, so a wrapper's
// own classification wins over the error it wraps.
//
// Example:
//
//	if status.CodeOf(err) == status.InvalidArguments {
//	    // Reject the request without retrying
//	}
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}

	var ext ErrorExt
	if errors.As(err, &ext) {
		return ext.StatusCode()
	}

	return Unknown
}

// ClassificationOf returns the retry classification of an error.
// Returns Permanent if the error is nil or unclassified, a safe default that
// prevents inappropriate retry attempts.
func ClassificationOf(err error) Classification {
	if err == nil {
		return Permanent
	}

	var ext ErrorExt
	if errors.As(err, &ext) {
		return ext.StatusCode().Classification()
	}

	return Permanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or unclassified.
//
// Example:
//
//	if status.IsRetryable(err) {
//	    time.Sleep(backoff)
//	    return retry(operation)
//	}
func IsRetryable(err error) bool {
	return ClassificationOf(err).IsRetryable()
}

// LocationOf returns the capture location of the outermost Locatable error in
// the chain. The boolean is false when no error in the chain recorded one.
func LocationOf(err error) (Location, bool) {
	if err == nil {
		return Location{}, false
	}

	var loc Locatable
	if errors.As(err, &loc) {
		l := loc.Location()
		return l, !l.IsZero()
	}

	return Location{}, false
}
