package api

import (
	"net/http"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		payload     string
		isJSON      bool
		wantMessage string
		wantCode    string
		wantHints   int
	}{
		{
			name:        "string detail",
			status:      http.StatusBadRequest,
			payload:     `{"detail":"title must not be empty"}`,
			isJSON:      true,
			wantMessage: "title must not be empty",
		},
		{
			name:        "structured detail",
			status:      http.StatusUnprocessableEntity,
			payload:     `{"detail":{"code":"TOO_VAGUE","message":"Tell us more.","hints":["Mention your goal","Mention available equipment"]}}`,
			isJSON:      true,
			wantMessage: "Tell us more.",
			wantCode:    "TOO_VAGUE",
			wantHints:   2,
		},
		{
			name:        "no detail field falls back to payload",
			status:      http.StatusInternalServerError,
			payload:     `{"error":"boom"}`,
			isJSON:      true,
			wantMessage: `{"error":"boom"}`,
		},
		{
			name:        "empty payload",
			status:      http.StatusBadGateway,
			payload:     "",
			isJSON:      false,
			wantMessage: "Request failed",
		},
		{
			name:        "plain text payload",
			status:      http.StatusServiceUnavailable,
			payload:     "upstream timeout",
			isJSON:      false,
			wantMessage: "upstream timeout",
		},
		{
			name:        "whitespace-only payload",
			status:      http.StatusBadGateway,
			payload:     "   \n",
			isJSON:      false,
			wantMessage: "Request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.status, []byte(tt.payload), tt.isJSON)
			if got.Status != tt.status {
				t.Errorf("status = %d, want %d", got.Status, tt.status)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", got.Message, tt.wantMessage)
			}
			if got.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", got.Code, tt.wantCode)
			}
			if len(got.Hints) != tt.wantHints {
				t.Errorf("hints = %v, want %d entries", got.Hints, tt.wantHints)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	plain := &Error{Status: 500, Message: "Request failed"}
	if plain.Error() != "Request failed (status 500)" {
		t.Errorf("unexpected message: %s", plain.Error())
	}
	if plain.IsRejection() {
		t.Error("an error without a code is not a rejection")
	}

	rejection := &Error{Status: 422, Code: "NOT_FITNESS", Message: "Ask about training."}
	if rejection.Error() != "Ask about training. (422 NOT_FITNESS)" {
		t.Errorf("unexpected message: %s", rejection.Error())
	}
	if !rejection.IsRejection() {
		t.Error("an error with a code is a rejection")
	}
}

func TestIsUnauthorized(t *testing.T) {
	if !IsUnauthorized(&Error{Status: http.StatusUnauthorized, Message: "nope"}) {
		t.Error("expected 401 to be unauthorized")
	}
	if IsUnauthorized(&Error{Status: http.StatusForbidden, Message: "nope"}) {
		t.Error("403 is not unauthorized")
	}
	if IsUnauthorized(nil) {
		t.Error("nil is not unauthorized")
	}
}
