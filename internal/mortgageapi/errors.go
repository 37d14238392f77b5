package mortgageapi

import (
	"fmt"
	"net/http"
)

// RemoteError reports a failed call to the mortgage API: either a non-2xx
// response (Status set) or a transport failure (Err set).
type RemoteError struct {
	Op         string
	Status     int
	StatusText string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		text := e.StatusText
		if text == "" {
			text = http.StatusText(e.Status)
		}
		return fmt.Sprintf("%s: API request failed with status %d %s", e.Op, e.Status, text)
	}
	return fmt.Sprintf("%s: API request failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }
