package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPreferencesNormalize(t *testing.T) {
	tests := []struct {
		name         string
		prefs        Preferences
		wantNil      bool
		wantSessions int
	}{
		{
			name:    "all empty yields nil",
			prefs:   Preferences{},
			wantNil: true,
		},
		{
			name:         "days lock sessions per week",
			prefs:        Preferences{SessionsPerWeek: 5, DaysOfWeek: []string{"Mon", "Wed", "Fri"}},
			wantSessions: 3,
		},
		{
			name:         "sessions kept when no days selected",
			prefs:        Preferences{SessionsPerWeek: 4},
			wantSessions: 4,
		},
		{
			name:         "goal alone is enough to keep the object",
			prefs:        Preferences{Goal: "strength"},
			wantSessions: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.prefs.Normalize()
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected non-nil preferences")
			}
			if got.SessionsPerWeek != tt.wantSessions {
				t.Errorf("sessions_per_week = %d, want %d", got.SessionsPerWeek, tt.wantSessions)
			}
		})
	}
}

func TestNormalizeDoesNotMutateReceiver(t *testing.T) {
	prefs := Preferences{SessionsPerWeek: 5, DaysOfWeek: []string{"Mon", "Tue"}}
	prefs.Normalize()
	if prefs.SessionsPerWeek != 5 {
		t.Errorf("Normalize mutated its receiver: sessions_per_week = %d", prefs.SessionsPerWeek)
	}
}

func TestGenerateRequestOmitsEmptyPreferences(t *testing.T) {
	req := GenerateRequest{Text: "a simple full body routine", Preferences: Preferences{}.Normalize()}
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "preferences") {
		t.Errorf("empty preferences must be absent from the payload, got %s", data)
	}
}

func TestProgramResponseUnmarshal(t *testing.T) {
	t.Run("ok variant", func(t *testing.T) {
		var resp ProgramResponse
		err := json.Unmarshal([]byte(`{"status":"ok","days":[{"day":1,"focus":"Legs"}]}`), &resp)
		if err != nil {
			t.Fatal(err)
		}
		if !resp.IsOK() || resp.Rejected != nil {
			t.Fatalf("expected only the ok variant populated: %+v", resp)
		}
		if len(resp.OK.Days) != 1 || resp.OK.Days[0].Focus != "Legs" {
			t.Errorf("unexpected days: %+v", resp.OK.Days)
		}
	})

	t.Run("rejected variant", func(t *testing.T) {
		var resp ProgramResponse
		err := json.Unmarshal([]byte(`{"status":"rejected","code":"TOO_VAGUE","message":"Tell us more.","hints":["Name a goal"]}`), &resp)
		if err != nil {
			t.Fatal(err)
		}
		if resp.IsOK() || resp.Rejected == nil {
			t.Fatalf("expected only the rejected variant populated: %+v", resp)
		}
		if string(resp.Rejected.Code) != "TOO_VAGUE" {
			t.Errorf("unexpected code %q", resp.Rejected.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		var resp ProgramResponse
		if err := json.Unmarshal([]byte(`{"status":"maybe"}`), &resp); err == nil {
			t.Error("expected an error for an unknown status")
		}
	})
}

func TestProgramResponseMarshal(t *testing.T) {
	t.Run("rejected with nil hints emits empty array", func(t *testing.T) {
		resp := ProgramResponse{Rejected: &Rejection{Code: "NOT_FITNESS", Message: "No."}}
		data, err := json.Marshal(resp)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), `"hints":[]`) {
			t.Errorf("expected hints as an empty array, got %s", data)
		}
	})

	t.Run("no variant is an error", func(t *testing.T) {
		if _, err := json.Marshal(ProgramResponse{}); err == nil {
			t.Error("expected an error marshaling an empty union")
		}
	})
}
