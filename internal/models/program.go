package models

import (
	"encoding/json"
	"fmt"

	"github.com/repkit/repkit/internal/constants"
)

// Preferences holds the optional structured part of a program request.
// Every field is optional; a fully empty Preferences must be omitted from
// request payloads entirely (see Normalize).
type Preferences struct {
	Goal            string   `json:"goal,omitempty"`
	Level           string   `json:"level,omitempty"`
	SessionsPerWeek int      `json:"sessions_per_week,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	DaysOfWeek      []string `json:"days_of_week,omitempty"`
	Equipment       []string `json:"equipment,omitempty"`
	Constraints     string   `json:"constraints,omitempty"`
}

// IsEmpty reports whether no preference field is set.
func (p Preferences) IsEmpty() bool {
	return p.Goal == "" && p.Level == "" && p.SessionsPerWeek == 0 &&
		p.DurationMinutes == 0 && len(p.DaysOfWeek) == 0 &&
		len(p.Equipment) == 0 && p.Constraints == ""
}

// Normalize returns the preferences to submit, or nil when everything is
// empty so the payload's preferences key is absent rather than an object of
// zero fields. Selecting any day of the week locks sessions_per_week to the
// day count; the reverse direction (clearing days when sessions_per_week is
// edited) is intentionally not performed.
func (p Preferences) Normalize() *Preferences {
	if len(p.DaysOfWeek) > 0 {
		p.SessionsPerWeek = len(p.DaysOfWeek)
	}
	if p.IsEmpty() {
		return nil
	}
	return &p
}

// Exercise is one entry in a day's ordered exercise list. Reps is free text
// because the backend emits ranges like "8-10".
type Exercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds int    `json:"rest_seconds"`
}

// Day is a single generated training day.
type Day struct {
	Day               int                 `json:"day"`
	Focus             string              `json:"focus"`
	Intensity         constants.Intensity `json:"intensity"`
	DurationMinutes   int                 `json:"duration_minutes"`
	Equipment         []string            `json:"equipment"`
	Warmup            []string            `json:"warmup"`
	Exercises         []Exercise          `json:"exercises"`
	Cooldown          []string            `json:"cooldown"`
	EstimatedCalories int                 `json:"estimated_calories"`
}

// ProgramOK is the accepted variant of a generation result.
type ProgramOK struct {
	Days []Day `json:"days"`
}

// Rejection is the declined variant: the backend refused to generate a
// program and explains why.
type Rejection struct {
	Code    constants.RejectionCode `json:"code"`
	Message string                  `json:"message"`
	Hints   []string                `json:"hints"`
}

// ProgramResponse is a tagged union: exactly one of OK or Rejected is
// non-nil. Consumers must switch on the populated variant rather than probe
// optional fields.
type ProgramResponse struct {
	OK       *ProgramOK
	Rejected *Rejection
}

// IsOK reports whether the response carries a generated program.
func (r ProgramResponse) IsOK() bool {
	return r.OK != nil
}

type programWire struct {
	Status  string                  `json:"status"`
	Days    []Day                   `json:"days,omitempty"`
	Code    constants.RejectionCode `json:"code,omitempty"`
	Message string                  `json:"message,omitempty"`
	Hints   []string                `json:"hints,omitzero"`
}

// UnmarshalJSON dispatches on the status discriminator.
func (r *ProgramResponse) UnmarshalJSON(data []byte) error {
	var w programWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Status {
	case "ok":
		r.OK = &ProgramOK{Days: w.Days}
		r.Rejected = nil
	case "rejected":
		r.Rejected = &Rejection{Code: w.Code, Message: w.Message, Hints: w.Hints}
		r.OK = nil
	default:
		return fmt.Errorf("unknown program status %q", w.Status)
	}
	return nil
}

// MarshalJSON writes the wire form with the status discriminator.
func (r ProgramResponse) MarshalJSON() ([]byte, error) {
	switch {
	case r.OK != nil:
		return json.Marshal(programWire{Status: "ok", Days: r.OK.Days})
	case r.Rejected != nil:
		hints := r.Rejected.Hints
		if hints == nil {
			hints = []string{}
		}
		return json.Marshal(programWire{
			Status:  "rejected",
			Code:    r.Rejected.Code,
			Message: r.Rejected.Message,
			Hints:   hints,
		})
	default:
		return nil, fmt.Errorf("program response has no variant set")
	}
}

// GenerateRequest is the payload for POST /api/ai/program.
type GenerateRequest struct {
	Text        string       `json:"text"`
	Preferences *Preferences `json:"preferences,omitempty"`
}
