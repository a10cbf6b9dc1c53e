package auth

import "fmt"

// Generic user-facing fallbacks when the server supplies no message.
const (
	msgAuthenticationFailed = "authentication failed"
	msgRegistrationFailed   = "registration failed"
	msgConnectionFailed     = "connection error, try again"
	msgUnexpectedResponse   = "unexpected response format from server"
)

// Error is a typed authentication failure carrying a human-readable message
// for the login/register forms. StatusCode is zero for network-level
// failures that never produced an HTTP response.
type Error struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }
