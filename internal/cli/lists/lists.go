package lists

import (
	"context"
	"fmt"

	"github.com/repkit/repkit/internal/cli"
	"github.com/repkit/repkit/internal/constants"
	"github.com/repkit/repkit/internal/models"
	"github.com/repkit/repkit/internal/validation"
)

type CreateCmd struct {
	Name  string   `arg:"" help:"Name for the exercise list."`
	Items []string `arg:"" help:"Exercise names."`
}

func (c *CreateCmd) Validate() error {
	if err := validation.Title(c.Name); err != nil {
		return err
	}
	if len(c.Items) == 0 {
		return fmt.Errorf("at least one exercise is required")
	}
	if len(c.Items) > constants.MaxExerciseListSize {
		return fmt.Errorf("at most %d exercises per list", constants.MaxExerciseListSize)
	}
	return nil
}

func (c *CreateCmd) Run(ctx *cli.Context) error {
	summary, err := ctx.API.CreateExerciseList(context.Background(), models.CreateExerciseListRequest{
		Name:  c.Name,
		Items: c.Items,
	})
	if err != nil {
		return err
	}
	fmt.Printf("✓ Created %s (%s)\n", summary.Name, summary.ID)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	lists, err := ctx.API.ListExerciseLists(context.Background())
	if err != nil {
		return err
	}
	if len(lists) == 0 {
		fmt.Println("No exercise lists.")
		return nil
	}
	for _, l := range lists {
		fmt.Printf("%s  %s  %s\n", l.ID, l.CreatedAt, l.Name)
	}
	return nil
}

type ShowCmd struct {
	ID string `arg:"" help:"Exercise list id."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	detail, err := ctx.API.GetExerciseList(context.Background(), c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("%s (created %s)\n", detail.Name, detail.CreatedAt)
	for i, item := range detail.Items {
		fmt.Printf("  %d. %s\n", i+1, item)
	}
	return nil
}

type DeleteCmd struct {
	ID string `arg:"" help:"Exercise list id."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.API.DeleteExerciseList(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Println("✓ Deleted")
	return nil
}
