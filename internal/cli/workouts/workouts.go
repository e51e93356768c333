package workouts

import (
	"context"
	"fmt"
	"os"

	"github.com/repkit/repkit/internal/cli"
	"github.com/repkit/repkit/internal/models"
	"github.com/repkit/repkit/internal/validation"
)

type SaveCmd struct {
	HistoryID string `arg:"" help:"History entry to save (see 'repkit history list')."`
	Title     string `short:"t" help:"Title for the saved workout." required:""`
}

func (c *SaveCmd) Validate() error {
	return validation.Title(c.Title)
}

func (c *SaveCmd) Run(ctx *cli.Context) error {
	store, err := ctx.OpenHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Get(c.HistoryID)
	if err != nil {
		return err
	}
	if entry.Program.Rejected != nil {
		return fmt.Errorf("history entry %s is a rejected request, nothing to save", c.HistoryID)
	}

	summary, err := ctx.API.SaveWorkout(context.Background(), models.SaveWorkoutRequest{
		Title:       c.Title,
		InputText:   entry.InputText,
		Preferences: entry.Preferences,
		Program:     entry.Program,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Saved as %s (%s)\n", summary.Title, summary.ID)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	workouts, err := ctx.API.ListWorkouts(context.Background())
	if err != nil {
		return err
	}
	if len(workouts) == 0 {
		fmt.Println("No saved workouts.")
		return nil
	}

	for _, w := range workouts {
		fmt.Printf("%s  %s  %s\n", w.ID, w.CreatedAt, w.Title)
	}
	return nil
}

type ShowCmd struct {
	ID   string `arg:"" help:"Workout id."`
	JSON bool   `help:"Print the full workout as JSON."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	detail, err := ctx.API.GetWorkout(context.Background(), c.ID)
	if err != nil {
		return err
	}

	if c.JSON {
		return cli.PrintJSON(os.Stdout, detail)
	}

	fmt.Printf("%s (created %s)\n", detail.Title, detail.CreatedAt)
	if detail.InputText != "" {
		fmt.Printf("Request: %s\n", detail.InputText)
	}
	fmt.Println()
	cli.RenderProgram(os.Stdout, detail.Program)
	return nil
}

type RenameCmd struct {
	ID    string `arg:"" help:"Workout id."`
	Title string `arg:"" help:"New title."`
}

func (c *RenameCmd) Validate() error {
	return validation.Title(c.Title)
}

func (c *RenameCmd) Run(ctx *cli.Context) error {
	summary, err := ctx.API.RenameWorkout(context.Background(), c.ID, c.Title)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Renamed to %s\n", summary.Title)
	return nil
}

type DeleteCmd struct {
	ID string `arg:"" help:"Workout id."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.API.DeleteWorkout(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Println("✓ Deleted")
	return nil
}
