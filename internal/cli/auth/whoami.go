package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/repkit/repkit/internal/api"
	"github.com/repkit/repkit/internal/cli"
)

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *cli.Context) error {
	if !ctx.Session.LoggedIn() {
		return errors.New("not logged in")
	}

	user, err := ctx.API.Me(context.Background())
	if err != nil {
		if api.IsUnauthorized(err) {
			return errors.New("session expired, run 'repkit login'")
		}
		return err
	}

	fmt.Printf("%s (%s)\n", user.Email, user.ID)
	return nil
}
