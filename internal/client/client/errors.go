package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response the server explained.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type fieldError struct {
	Path string `json:"path"`
	Msg  string `json:"msg"`
}

// errorBody covers both {"message": "..."} and the field-list shapes
// {"message": [...]} and {"errors": [...]}.
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Errors  []fieldError    `json:"errors"`
}

func joinFields(fields []fieldError) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Msg)
	}
	return strings.Join(parts, "; ")
}

// decodeError turns a failed response body into an error.
func decodeError(status int, body []byte) error {
	msg := ""

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		var s string
		var fields []fieldError
		switch {
		case len(eb.Errors) > 0:
			msg = joinFields(eb.Errors)
		case json.Unmarshal(eb.Message, &s) == nil:
			msg = s
		case json.Unmarshal(eb.Message, &fields) == nil:
			msg = joinFields(fields)
		}
	}

	if msg == "" {
		msg = fmt.Sprintf("unexpected status %d", status)
	}
	return &APIError{Status: status, Message: msg}
}
