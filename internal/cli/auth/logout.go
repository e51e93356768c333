package auth

import (
	"fmt"

	"github.com/repkit/repkit/internal/cli"
)

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	if err := ctx.API.Logout(); err != nil {
		return fmt.Errorf("failed to clear stored credential: %w", err)
	}
	fmt.Println("✓ Logged out")
	return nil
}
