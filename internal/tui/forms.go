package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/repkit/repkit/internal/constants"
	"github.com/repkit/repkit/internal/models"
	"github.com/repkit/repkit/internal/validation"
)

type LoginFormModel struct {
	Email    string
	Password string
}

func newLoginForm(data *LoginFormModel) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Validate(validation.Email).
			Value(&data.Email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&data.Password),
	))
}

type SignupFormModel struct {
	Email    string
	Password string
	Confirm  string
}

func newSignupForm(data *SignupFormModel) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Validate(validation.Email).
			Value(&data.Email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(validation.Password).
			Value(&data.Password),
		huh.NewInput().
			Title("Confirm password").
			EchoMode(huh.EchoModePassword).
			Validate(func(s string) error {
				if s != data.Password {
					return fmt.Errorf("passwords do not match")
				}
				return nil
			}).
			Value(&data.Confirm),
	))
}

type GenerateFormModel struct {
	Text        string
	Goal        string
	Level       string
	Sessions    string
	Duration    string
	Days        []string
	Equipment   string
	Constraints string
}

func newGenerateForm(data *GenerateFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Describe your request").
				Placeholder("Lose weight, 4 sessions/week, 45 min, no dumbbells, intermediate level").
				Validate(validation.RequestText).
				Value(&data.Text),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Goal").
				Placeholder("fat loss, strength, endurance").
				Value(&data.Goal),
			huh.NewInput().
				Title("Level").
				Placeholder("beginner, intermediate, advanced").
				Value(&data.Level),
			huh.NewMultiSelect[string]().
				Title("Days of week").
				Options(huh.NewOptions(constants.Weekdays...)...).
				Value(&data.Days),
			huh.NewInput().
				Title("Sessions per week").
				Description("Locked to the day count when days are selected.").
				Validate(validateOptionalInt(constants.MinSessionsPerWeek, constants.MaxSessionsPerWeek)).
				Value(&data.Sessions),
			huh.NewInput().
				Title("Duration (minutes)").
				Validate(validateOptionalInt(constants.MinDurationMinutes, constants.MaxDurationMinutes)).
				Value(&data.Duration),
			huh.NewInput().
				Title("Equipment (comma separated)").
				Placeholder("bodyweight, resistance band").
				Value(&data.Equipment),
			huh.NewInput().
				Title("Constraints").
				Placeholder("knee pain, no dumbbells").
				Value(&data.Constraints),
		),
	)
}

// request builds the generation payload. Normalize applies the day-count
// lock and drops the preferences object entirely when every field is empty.
func (f *GenerateFormModel) request() models.GenerateRequest {
	prefs := models.Preferences{
		Goal:        strings.TrimSpace(f.Goal),
		Level:       strings.TrimSpace(f.Level),
		DaysOfWeek:  f.Days,
		Equipment:   validation.ParseCSV(f.Equipment),
		Constraints: strings.TrimSpace(f.Constraints),
	}
	if n, err := strconv.Atoi(strings.TrimSpace(f.Sessions)); err == nil {
		prefs.SessionsPerWeek = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(f.Duration)); err == nil {
		prefs.DurationMinutes = n
	}
	return models.GenerateRequest{
		Text:        strings.TrimSpace(f.Text),
		Preferences: prefs.Normalize(),
	}
}

type SaveFormModel struct {
	Title string
}

func newSaveForm(data *SaveFormModel) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Workout title").
			Validate(validation.Title).
			Value(&data.Title),
	))
}

func validateOptionalInt(min, max int) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("must be an integer")
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}
