package programs

import (
	"strings"
	"testing"
)

func TestGenerateCmdValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     GenerateCmd
		wantErr bool
	}{
		{
			name: "minimal valid",
			cmd:  GenerateCmd{Text: "a simple home workout plan"},
		},
		{
			name: "full flags valid",
			cmd: GenerateCmd{
				Text:      "build muscle with limited equipment at home",
				Goal:      "hypertrophy",
				Level:     "beginner",
				Duration:  45,
				Days:      []string{"Mon", "Wed", "Fri"},
				Equipment: "dumbbells, bands",
			},
		},
		{
			name:    "text too short",
			cmd:     GenerateCmd{Text: "abs"},
			wantErr: true,
		},
		{
			name:    "sessions out of range",
			cmd:     GenerateCmd{Text: "a simple home workout plan", Sessions: 9},
			wantErr: true,
		},
		{
			name:    "bad weekday",
			cmd:     GenerateCmd{Text: "a simple home workout plan", Days: []string{"Someday"}},
			wantErr: true,
		},
		{
			name:    "constraints too long",
			cmd:     GenerateCmd{Text: "a simple home workout plan", Constraints: strings.Repeat("x", 300)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateCmdPreferences(t *testing.T) {
	cmd := GenerateCmd{
		Text:      "four day upper lower split with free weights",
		Goal:      " strength ",
		Equipment: "barbell,,rack ",
		Sessions:  6,
		Days:      []string{"Mon", "Thu"},
	}

	prefs := cmd.preferences().Normalize()
	if prefs == nil {
		t.Fatal("expected preferences")
	}
	if prefs.Goal != "strength" {
		t.Errorf("goal = %q, want trimmed", prefs.Goal)
	}
	if len(prefs.Equipment) != 2 || prefs.Equipment[0] != "barbell" || prefs.Equipment[1] != "rack" {
		t.Errorf("equipment = %v", prefs.Equipment)
	}
	if prefs.SessionsPerWeek != 2 {
		t.Errorf("sessions_per_week = %d, want locked to day count", prefs.SessionsPerWeek)
	}
}
