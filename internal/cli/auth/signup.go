package auth

import (
	"context"
	"fmt"

	"github.com/repkit/repkit/internal/cli"
	"github.com/repkit/repkit/internal/validation"
)

type SignupCmd struct {
	Email    string `short:"e" help:"Email for the new account. Prompted when omitted."`
	Password string `short:"p" help:"Password for the new account. Prompted when omitted."`
	Login    bool   `help:"Log in immediately after signup." default:"true" negatable:""`
}

func (c *SignupCmd) Run(ctx *cli.Context) error {
	if err := promptCredentials(&c.Email, &c.Password, true); err != nil {
		return err
	}
	if err := validation.Email(c.Email); err != nil {
		return err
	}
	if err := validation.Password(c.Password); err != nil {
		return err
	}

	user, err := ctx.API.Signup(context.Background(), c.Email, c.Password)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Account created for %s\n", user.Email)

	if !c.Login {
		return nil
	}
	if _, err := ctx.API.Login(context.Background(), c.Email, c.Password); err != nil {
		return fmt.Errorf("account created but login failed: %w", err)
	}
	fmt.Println("✓ Logged in")
	return nil
}
