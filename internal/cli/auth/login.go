package auth

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/repkit/repkit/internal/cli"
	"github.com/repkit/repkit/internal/validation"
)

type LoginCmd struct {
	Email    string `short:"e" help:"Account email. Prompted when omitted."`
	Password string `short:"p" help:"Account password. Prompted when omitted (preferred: avoids shell history)."`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	if err := promptCredentials(&c.Email, &c.Password, false); err != nil {
		return err
	}
	if err := validation.Email(c.Email); err != nil {
		return err
	}

	if _, err := ctx.API.Login(context.Background(), c.Email, c.Password); err != nil {
		return err
	}

	fmt.Println("✓ Logged in")
	return nil
}

// promptCredentials fills missing email/password interactively. Signup mode
// enforces the stricter password rules before submitting anything.
func promptCredentials(email, password *string, signup bool) error {
	var fields []huh.Field
	if *email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Validate(validation.Email).
			Value(email))
	}
	if *password == "" {
		input := huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(password)
		if signup {
			input = input.Validate(validation.Password)
		}
		fields = append(fields, input)
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}
