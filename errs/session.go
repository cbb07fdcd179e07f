package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Portfolio runtime errors
var (
	ErrCatalogLoad     = errors.New("catalog load failed")
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownEvent    = errors.New("unknown event")
	ErrUnknownRef      = errors.New("unknown event target")
)

func NewSessionNotFoundError(sessionID string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        ErrSessionNotFound,
		Details:    fmt.Sprintf("No live session with id '%s'", sessionID),
		Field:      "session",
	}
}

func NewUnknownEventError(eventType string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnknownEvent,
		Details:    fmt.Sprintf("Unsupported event type: %s", eventType),
		Field:      "type",
	}
}

func NewUnknownRefError(ref string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnknownRef,
		Details:    fmt.Sprintf("No element with ref '%s' in the current render", ref),
		Field:      "ref",
	}
}

func IsSessionNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}

func IsUnknownRef(err error) bool {
	return errors.Is(err, ErrUnknownRef)
}
