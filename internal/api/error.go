package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a classified non-2xx response. Message always holds something
// renderable; Code and Hints are populated only when the backend returned a
// structured detail object (domain rejections).
type Error struct {
	Status  int
	Code    string
	Message string
	Hints   []string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%d %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// IsRejection reports whether the error is a structured domain rejection
// rather than a generic failure.
func (e *Error) IsRejection() bool {
	return e.Code != ""
}

// IsUnauthorized reports whether err is an API error with status 401.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// detailWire matches the structured form of a backend detail field.
type detailWire struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Hints   []string `json:"hints"`
}

// classify builds an Error from a response status and body. The detail is
// taken from a "detail" field when present (string or {code,message,hints}),
// else from the whole payload, else it falls back to a generic message.
func classify(status int, payload []byte, isJSON bool) *Error {
	apiErr := &Error{Status: status, Message: "Request failed"}

	if len(payload) == 0 {
		return apiErr
	}

	if isJSON {
		var envelope struct {
			Detail json.RawMessage `json:"detail"`
		}
		if err := json.Unmarshal(payload, &envelope); err == nil && len(envelope.Detail) > 0 {
			var s string
			if err := json.Unmarshal(envelope.Detail, &s); err == nil {
				apiErr.Message = s
				return apiErr
			}
			var d detailWire
			if err := json.Unmarshal(envelope.Detail, &d); err == nil && (d.Code != "" || d.Message != "") {
				apiErr.Code = d.Code
				apiErr.Message = d.Message
				apiErr.Hints = d.Hints
				return apiErr
			}
			apiErr.Message = string(envelope.Detail)
			return apiErr
		}
	}

	if text := strings.TrimSpace(string(payload)); text != "" {
		apiErr.Message = text
	}
	return apiErr
}
