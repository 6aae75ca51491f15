package fitapi

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	// KindNotFound is a 404 from either service; callers render an
	// empty / not-found state instead of a transient error state.
	KindNotFound ErrorKind = "not_found"
	// KindValidation is a 400/422 rejection of the request payload.
	KindValidation ErrorKind = "validation"
	// KindServer is any other non-2xx response.
	KindServer ErrorKind = "server"
	// KindNetwork is a transport-level failure, timeouts included. The
	// caller cannot know whether the request ever arrived; both cases
	// are user-retriable.
	KindNetwork ErrorKind = "network"
)

// APIError is the only error shape the client returns for failed calls.
// Message carries the server-supplied {"message"} body verbatim when
// present, the transport/status text otherwise.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s [%d]: %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func IsNotFound(err error) bool {
	return isKind(err, KindNotFound)
}

func IsValidation(err error) bool {
	return isKind(err, KindValidation)
}

func IsNetwork(err error) bool {
	return isKind(err, KindNetwork)
}

func isKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

// ErrorMessage extracts the user-displayable message from an error
// returned by the client, falling back to the plain error text.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
