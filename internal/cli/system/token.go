package system

import (
	"errors"
	"fmt"

	"github.com/repkit/repkit/internal/cli"
	"github.com/repkit/repkit/internal/session"
)

// TokenSetCmd stores a bearer token directly, bypassing login. Useful for
// tokens minted out of band (test fixtures, admin-issued credentials).
type TokenSetCmd struct {
	Token string `arg:"" help:"Bearer token to store."`
}

func (cmd *TokenSetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Session.Set(cmd.Token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	fmt.Println("✓ Token stored")
	return nil
}

// TokenShowCmd prints a masked form of the stored token.
type TokenShowCmd struct{}

func (cmd *TokenShowCmd) Run(ctx *cli.Context) error {
	token, err := ctx.Session.Get()
	if err != nil {
		if errors.Is(err, session.ErrNoToken) {
			return errors.New("no token stored, run 'repkit login'")
		}
		return fmt.Errorf("failed to read token: %w", err)
	}
	fmt.Println(maskToken(token))
	return nil
}

// TokenClearCmd removes the stored token.
type TokenClearCmd struct{}

func (cmd *TokenClearCmd) Run(ctx *cli.Context) error {
	if err := ctx.Session.Clear(); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	fmt.Println("✓ Token cleared")
	return nil
}

// TokenStatusCmd reports credential-store health and token presence.
type TokenStatusCmd struct{}

func (cmd *TokenStatusCmd) Run(ctx *cli.Context) error {
	if session.KeyringAvailable() {
		fmt.Println("✓ OS keyring is available")
	} else {
		fmt.Println("⚠ OS keyring is not available (file backend will be used)")
	}

	_, err := ctx.Session.Get()
	switch {
	case err == nil:
		fmt.Println("✓ Token is stored")
	case errors.Is(err, session.ErrNoToken):
		fmt.Println("ℹ No token stored")
	default:
		return fmt.Errorf("failed to read credential store: %w", err)
	}
	return nil
}

// maskToken keeps a short recognizable prefix and hides the rest.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:8] + "..." + fmt.Sprintf("(%d chars)", len(token))
}
