package programs

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/repkit/repkit/internal/cli"
	"github.com/repkit/repkit/internal/logger"
	"github.com/repkit/repkit/internal/models"
	"github.com/repkit/repkit/internal/validation"
)

type GenerateCmd struct {
	Text        string   `arg:"" help:"Free-form description of what you want (goals, schedule, equipment...)."`
	Goal        string   `short:"g" help:"Training goal (fat loss, strength, endurance...)."`
	Level       string   `short:"l" help:"Experience level (beginner, intermediate, advanced)."`
	Sessions    int      `short:"s" help:"Sessions per week (1-7). Ignored when --days is given."`
	Duration    int      `short:"d" help:"Session duration in minutes (10-180)."`
	Days        []string `short:"w" help:"Days of week (Mon..Sun). Locks sessions per week to the day count."`
	Equipment   string   `help:"Comma-separated equipment tags."`
	Constraints string   `help:"Physical constraints (knee pain, no dumbbells...)."`
	JSON        bool     `help:"Print the raw program response as JSON."`
	NoHistory   bool     `help:"Skip recording the result in local history."`
}

func (c *GenerateCmd) Validate() error {
	if err := validation.RequestText(c.Text); err != nil {
		return err
	}
	return validation.Preferences(c.preferences())
}

func (c *GenerateCmd) preferences() models.Preferences {
	return models.Preferences{
		Goal:            strings.TrimSpace(c.Goal),
		Level:           strings.TrimSpace(c.Level),
		SessionsPerWeek: c.Sessions,
		DurationMinutes: c.Duration,
		DaysOfWeek:      c.Days,
		Equipment:       validation.ParseCSV(c.Equipment),
		Constraints:     strings.TrimSpace(c.Constraints),
	}
}

func (c *GenerateCmd) Run(ctx *cli.Context) error {
	prefs := c.preferences().Normalize()

	resp, err := ctx.API.GenerateProgram(context.Background(), models.GenerateRequest{
		Text:        c.Text,
		Preferences: prefs,
	})
	if err != nil {
		return err
	}

	if !c.NoHistory {
		recordHistory(ctx, c.Text, prefs, *resp)
	}

	if c.JSON {
		return cli.PrintJSON(os.Stdout, resp)
	}
	cli.RenderProgram(os.Stdout, *resp)
	return nil
}

// recordHistory appends to the local cache. Failures are logged, never
// surfaced; history must not break generation.
func recordHistory(ctx *cli.Context, text string, prefs *models.Preferences, resp models.ProgramResponse) {
	store, err := ctx.OpenHistory()
	if err != nil {
		logger.Warn("Could not open history store", "error", err)
		return
	}
	defer store.Close()

	id, err := store.Record(text, prefs, resp)
	if err != nil {
		logger.Warn("Could not record generation in history", "error", err)
		return
	}
	if resp.IsOK() {
		fmt.Printf("Recorded in history as %s\n\n", id)
	}
}
