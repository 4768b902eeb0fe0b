package errors

import "fmt"

// HTTPError carries an HTTP status alongside a user-facing message. Delivery
// layers produce these from domain errors via their mapError functions.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Message: message}
}

// Common HTTP errors reused across delivery layers.
var (
	ErrBadRequest          = NewHTTPError(400, "bad request")
	ErrNotFound            = NewHTTPError(404, "not found")
	ErrInternalServerError = NewHTTPError(500, "internal server error")
)
