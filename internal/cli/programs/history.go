package programs

import (
	"fmt"
	"os"

	"github.com/repkit/repkit/internal/cli"
)

type HistoryListCmd struct {
	Limit int `short:"n" help:"Show at most this many entries." default:"20"`
}

func (c *HistoryListCmd) Run(ctx *cli.Context) error {
	store, err := ctx.OpenHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(c.Limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No generation history.")
		return nil
	}

	for _, entry := range entries {
		status := "ok"
		if entry.Program.Rejected != nil {
			status = "rejected"
		}
		text := entry.InputText
		if len(text) > 60 {
			text = text[:57] + "..."
		}
		fmt.Printf("%s  %s  [%s]  %s\n",
			entry.ID, entry.CreatedAt.Local().Format("2006-01-02 15:04"), status, text)
	}
	return nil
}

type HistoryShowCmd struct {
	ID   string `arg:"" help:"History entry id."`
	JSON bool   `help:"Print the raw program response as JSON."`
}

func (c *HistoryShowCmd) Run(ctx *cli.Context) error {
	store, err := ctx.OpenHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Get(c.ID)
	if err != nil {
		return err
	}

	if c.JSON {
		return cli.PrintJSON(os.Stdout, entry.Program)
	}

	fmt.Printf("Generated %s\n", entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Printf("Request: %s\n\n", entry.InputText)
	cli.RenderProgram(os.Stdout, entry.Program)
	return nil
}

type HistoryClearCmd struct{}

func (c *HistoryClearCmd) Run(ctx *cli.Context) error {
	store, err := ctx.OpenHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("✓ History cleared")
	return nil
}
