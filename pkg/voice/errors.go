// folio - personal portfolio AI assistant backend
// License: MIT

package voice

import "fmt"

// APIError is a non-success status from a hosted speech endpoint. The
// gateway forwards the status code to the client instead of collapsing
// every upstream failure to 500.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}
