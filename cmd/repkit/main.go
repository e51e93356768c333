package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/repkit/repkit/internal/api"
	"github.com/repkit/repkit/internal/cli"
	"github.com/repkit/repkit/internal/cli/auth"
	"github.com/repkit/repkit/internal/cli/lists"
	"github.com/repkit/repkit/internal/cli/programs"
	"github.com/repkit/repkit/internal/cli/system"
	"github.com/repkit/repkit/internal/cli/workouts"
	"github.com/repkit/repkit/internal/config"
	"github.com/repkit/repkit/internal/constants"
	"github.com/repkit/repkit/internal/errors"
	"github.com/repkit/repkit/internal/logger"
	"github.com/repkit/repkit/internal/session"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/repkit/config.yaml"`

	Login    auth.LoginCmd        `cmd:"" help:"Log in to the backend."`
	Logout   auth.LogoutCmd       `cmd:"" help:"Log out and clear the stored token."`
	Signup   auth.SignupCmd       `cmd:"" help:"Create an account."`
	Whoami   auth.WhoamiCmd       `cmd:"" help:"Show the logged-in account."`
	Generate programs.GenerateCmd `cmd:"" help:"Generate a training program."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run connectivity and credential diagnostics."`

	Workout struct {
		List   workouts.ListCmd   `cmd:"" help:"List saved workouts."`
		Show   workouts.ShowCmd   `cmd:"" help:"Show a saved workout."`
		Save   workouts.SaveCmd   `cmd:"" help:"Save a generated program from history."`
		Rename workouts.RenameCmd `cmd:"" help:"Rename a saved workout."`
		Delete workouts.DeleteCmd `cmd:"" help:"Delete a saved workout."`
	} `cmd:"" help:"Manage saved workouts."`

	Lists struct {
		Create lists.CreateCmd `cmd:"" help:"Create an exercise list."`
		List   lists.ListCmd   `cmd:"" help:"List exercise lists."`
		Show   lists.ShowCmd   `cmd:"" help:"Show an exercise list."`
		Delete lists.DeleteCmd `cmd:"" help:"Delete an exercise list."`
	} `cmd:"" help:"Manage exercise lists."`

	History struct {
		List  programs.HistoryListCmd  `cmd:"" help:"List past generations."`
		Show  programs.HistoryShowCmd  `cmd:"" help:"Show a past generation."`
		Clear programs.HistoryClearCmd `cmd:"" help:"Clear the local generation history."`
	} `cmd:"" help:"Inspect the local generation history."`

	Token struct {
		Set    system.TokenSetCmd    `cmd:"" help:"Store a token directly."`
		Show   system.TokenShowCmd   `cmd:"" help:"Show the stored token (masked)."`
		Clear  system.TokenClearCmd  `cmd:"" help:"Clear the stored token."`
		Status system.TokenStatusCmd `cmd:"" help:"Show credential store status."`
	} `cmd:"" help:"Manage the stored access token."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal client for the AI workout program generator"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: cfg.ConfigDir}); err != nil {
		errors.Fatalf("could not initialize logging: %v", err)
	}

	sess := session.New(selectStore(cfg))
	appCtx := &cli.Context{
		Config:  cfg,
		Session: sess,
		API:     api.NewClient(cfg, sess),
	}

	errors.Fatal(ctx.Run(appCtx))
}

// selectStore picks the credential backend. The keyring is preferred, but
// headless machines often have no secret service, so fall back to the file
// store rather than fail every command.
func selectStore(cfg *config.Config) session.Store {
	if strings.EqualFold(cfg.TokenBackend, string(constants.TokenBackendKeyring)) {
		if session.KeyringAvailable() {
			return session.NewKeyringStore()
		}
		logger.Warn("OS keyring unavailable, using file token store", "path", cfg.TokenFilePath())
	}
	return session.NewFileStore(cfg.TokenFilePath())
}
