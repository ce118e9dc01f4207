package client

import (
	"errors"
	"fmt"
)

// SessionExpiredMessage is the exact body the server sends when the token
// can no longer be used. It is matched verbatim.
const SessionExpiredMessage = "Session has expired, please login again."

var (
	ErrUnavailable    = errors.New("server unavailable")
	ErrSessionExpired = errors.New("session expired")
)

// ServerError is a request the server answered with a non-2xx status. Message
// is the response body, meant to be shown to the user as is.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return e.Message
}

// Is lets errors.Is(err, ErrSessionExpired) recognise the expiry sentinel.
func (e *ServerError) Is(target error) bool {
	return target == ErrSessionExpired && e.Message == SessionExpiredMessage
}

// Message extracts the text to show the user for err: the server's own text
// for a *ServerError, the error string otherwise.
func Message(err error) string {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Error()
	}
	return err.Error()
}
