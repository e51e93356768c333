// Package validation holds the client-side field checks that run before any
// request leaves the process. Failures here are surfaced inline and are
// never sent to the backend.
package validation

import (
	"fmt"
	"strings"

	"github.com/repkit/repkit/internal/constants"
	"github.com/repkit/repkit/internal/models"
)

// RequestText validates the free-form program request text.
func RequestText(s string) error {
	n := len(strings.TrimSpace(s))
	if n < constants.MinRequestText {
		return fmt.Errorf("request text must be at least %d characters", constants.MinRequestText)
	}
	if n > constants.MaxRequestText {
		return fmt.Errorf("request text must be at most %d characters", constants.MaxRequestText)
	}
	return nil
}

// Email performs a plausibility check; the backend is authoritative.
func Email(s string) error {
	s = strings.TrimSpace(s)
	at := strings.Index(s, "@")
	if at < 1 || at == len(s)-1 || !strings.Contains(s[at:], ".") {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// Password validates signup password bounds.
func Password(s string) error {
	if len(s) < constants.MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", constants.MinPasswordLen)
	}
	if len(s) > constants.MaxPasswordLen {
		return fmt.Errorf("password must be at most %d characters", constants.MaxPasswordLen)
	}
	return nil
}

// Title validates workout and exercise-list titles.
func Title(s string) error {
	n := len(strings.TrimSpace(s))
	if n == 0 {
		return fmt.Errorf("title cannot be empty")
	}
	if n > constants.MaxTitleLen {
		return fmt.Errorf("title must be at most %d characters", constants.MaxTitleLen)
	}
	return nil
}

// Weekdays checks that every tag is one of Mon..Sun and unique.
func Weekdays(days []string) error {
	seen := make(map[string]bool, len(days))
	for _, d := range days {
		valid := false
		for _, tag := range constants.Weekdays {
			if d == tag {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid weekday: %s", d)
		}
		if seen[d] {
			return fmt.Errorf("duplicate weekday: %s", d)
		}
		seen[d] = true
	}
	return nil
}

// Preferences checks every set preference field against its bounds. Unset
// fields (zero values) pass.
func Preferences(p models.Preferences) error {
	if len(p.Goal) > constants.MaxGoalLen {
		return fmt.Errorf("goal must be at most %d characters", constants.MaxGoalLen)
	}
	if len(p.Level) > constants.MaxLevelLen {
		return fmt.Errorf("level must be at most %d characters", constants.MaxLevelLen)
	}
	if p.SessionsPerWeek != 0 &&
		(p.SessionsPerWeek < constants.MinSessionsPerWeek || p.SessionsPerWeek > constants.MaxSessionsPerWeek) {
		return fmt.Errorf("sessions per week must be between %d and %d",
			constants.MinSessionsPerWeek, constants.MaxSessionsPerWeek)
	}
	if p.DurationMinutes != 0 &&
		(p.DurationMinutes < constants.MinDurationMinutes || p.DurationMinutes > constants.MaxDurationMinutes) {
		return fmt.Errorf("duration must be between %d and %d minutes",
			constants.MinDurationMinutes, constants.MaxDurationMinutes)
	}
	if err := Weekdays(p.DaysOfWeek); err != nil {
		return err
	}
	if len(p.Constraints) > constants.MaxConstraintsLen {
		return fmt.Errorf("constraints must be at most %d characters", constants.MaxConstraintsLen)
	}
	return nil
}

// ParseCSV splits a comma-separated tag field, trimming whitespace and
// dropping empties.
func ParseCSV(s string) []string {
	if len(s) > constants.MaxEquipmentCSVLen {
		s = s[:constants.MaxEquipmentCSVLen]
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
