package http

import "fmt"

// HTTPError represents a non-2xx HTTP response.
type HTTPError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Body is the response body, useful for error details.
	Body []byte
}

// Error returns a string representation of the HTTP error.
func (e *HTTPError) Error() string {
	if len(e.Body) > 0 && len(e.Body) < 256 {
		return fmt.Sprintf("http error %d: %s", e.StatusCode, string(e.Body))
	}
	return fmt.Sprintf("http error %d", e.StatusCode)
}
