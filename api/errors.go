package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error is a failed backend call: a non-2xx response or a transport failure (Status 0).
type Error struct {
	Status  int
	Message string
	Err     error
}

// Error returns the user-facing message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the transport failure, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// statusError derives an *Error from a non-2xx response body.
// The body text wins; the backend's JSON envelope is flattened to "error: details";
// an empty body yields "HTTP <status>: <generic>".
func statusError(status int, body []byte, generic string) *Error {
	text := strings.TrimSpace(string(body))

	var envelope errorEnvelope
	if json.Unmarshal(body, &envelope) == nil && envelope.Error != "" {
		text = envelope.Error
		if envelope.Details != "" {
			text += ": " + envelope.Details
		}
	}

	if text == "" {
		text = fmt.Sprintf("HTTP %d: %s", status, generic)
	}

	return &Error{Status: status, Message: text}
}

// transportError wraps a failure that prevented any response from arriving.
func transportError(err error, generic string) *Error {
	return &Error{
		Message: fmt.Sprintf("%s: %v", generic, err),
		Err:     err,
	}
}
