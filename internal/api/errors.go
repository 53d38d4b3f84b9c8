package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// maxBodySnippet caps how much of a bad response body is echoed back to
// the user for diagnosis.
const maxBodySnippet = 200

// StatusError is returned when the server answers with a non-2xx status.
// Message holds the server-provided error text when the body carried one.
type StatusError struct {
	Code    int
	Message string
	Body    []byte
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("server returned %d (%s)", e.Code, http.StatusText(e.Code))
}

// DecodeError is returned when a 2xx response body cannot be decoded.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unexpected response from server: %v (body: %s)", e.Err, bodySnippet(e.Body))
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// serverMessage pulls an error message out of a failure body. Servers are
// not consistent about the field name, so a few common ones are tried.
func serverMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, msg := range []string{payload.Error, payload.Detail, payload.Message} {
		if msg != "" {
			return msg
		}
	}
	return ""
}

func bodySnippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "<empty>"
	}
	if len(s) > maxBodySnippet {
		s = s[:maxBodySnippet] + "..."
	}
	return s
}
