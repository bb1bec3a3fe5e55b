package api

import "fmt"

// APIError is a business error reported by the finance API. The server
// signals failures with a non-2xx status and a "message" field.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}
