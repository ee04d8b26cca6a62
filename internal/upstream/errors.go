package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error is a rejected response: the service answered, but with a non-2xx
// status. Detail holds the service's human-readable `detail` text when one
// was provided. Any error that is not an *Error means no response was
// obtained (a transport failure).
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("service rejected request (%d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("service rejected request (%d)", e.StatusCode)
}

// Rejection unwraps err into an *Error when the failure was a rejected
// response rather than a transport failure.
func Rejection(err error) (*Error, bool) {
	rejection := &Error{}
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}

func newRejectionError(status int, payload []byte) *Error {
	body := struct {
		Detail string `json:"detail"`
	}{}
	// The body is best-effort: some rejections carry no JSON at all.
	_ = json.Unmarshal(payload, &body)
	return &Error{
		StatusCode: status,
		Detail:     strings.TrimSpace(body.Detail),
	}
}
