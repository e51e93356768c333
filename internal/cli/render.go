package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/repkit/repkit/internal/constants"
	"github.com/repkit/repkit/internal/models"
)

// RenderProgram writes a program result in a terminal-friendly layout.
// Handles both variants of the union; rejections list at most
// MaxRenderedHints hints.
func RenderProgram(w io.Writer, resp models.ProgramResponse) {
	switch {
	case resp.OK != nil:
		for i, day := range resp.OK.Days {
			if i > 0 {
				fmt.Fprintln(w)
			}
			renderDay(w, day)
		}
	case resp.Rejected != nil:
		fmt.Fprintf(w, "Program request declined (%s)\n", resp.Rejected.Code)
		fmt.Fprintf(w, "  %s\n", resp.Rejected.Message)
		hints := resp.Rejected.Hints
		if len(hints) > constants.MaxRenderedHints {
			hints = hints[:constants.MaxRenderedHints]
		}
		for _, hint := range hints {
			fmt.Fprintf(w, "  hint: %s\n", hint)
		}
	}
}

func renderDay(w io.Writer, day models.Day) {
	fmt.Fprintf(w, "Day %d: %s (%s, %d min, ~%d kcal)\n",
		day.Day, day.Focus, day.Intensity, day.DurationMinutes, day.EstimatedCalories)
	if len(day.Equipment) > 0 {
		fmt.Fprintf(w, "  Equipment: %s\n", strings.Join(day.Equipment, ", "))
	}
	if len(day.Warmup) > 0 {
		fmt.Fprintf(w, "  Warmup: %s\n", strings.Join(day.Warmup, ", "))
	}
	for i, ex := range day.Exercises {
		fmt.Fprintf(w, "  %d. %s: %d x %s, rest %ds\n", i+1, ex.Name, ex.Sets, ex.Reps, ex.RestSeconds)
	}
	if len(day.Cooldown) > 0 {
		fmt.Fprintf(w, "  Cooldown: %s\n", strings.Join(day.Cooldown, ", "))
	}
}

// PrintJSON writes v as indented JSON for --json output modes.
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
