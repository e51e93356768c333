package system

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/repkit/repkit/internal/cli"
	"github.com/repkit/repkit/internal/constants"
	"github.com/repkit/repkit/internal/session"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: backend reachable
	if err := checkBackendReachable(ctx); err != nil {
		fmt.Printf("❌ Backend reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Backend reachable: OK (%s)\n", ctx.Config.BaseURL)
	}

	// Check 2: credential store
	if strings.EqualFold(ctx.Config.TokenBackend, string(constants.TokenBackendKeyring)) {
		if session.KeyringAvailable() {
			fmt.Printf("✓ OS keyring: OK\n")
		} else {
			fmt.Printf("⚠ OS keyring: UNAVAILABLE (falling back to file backend)\n")
		}
	} else {
		fmt.Printf("✓ Credential store: file backend (%s)\n", ctx.Config.TokenFilePath())
	}

	// Check 3: stored token
	_, err := ctx.Session.Get()
	switch {
	case err == nil:
		fmt.Printf("✓ Stored token: present\n")
	case errors.Is(err, session.ErrNoToken):
		fmt.Printf("ℹ Stored token: absent (run 'repkit login')\n")
	default:
		fmt.Printf("❌ Stored token: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	}

	// Check 4: concurrent instances (warning only). Another repkit process
	// can mutate the token store at any time; the TUI tolerates that, but
	// it is worth knowing during troubleshooting.
	if n, err := countOtherInstances(); err == nil && n > 0 {
		fmt.Printf("⚠ Other repkit processes running: %d\n", n)
	} else {
		fmt.Printf("✓ No other repkit processes\n")
	}

	fmt.Println()
	if hasError {
		return errors.New("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkBackendReachable(ctx *cli.Context) error {
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(ctx.Config.BaseURL + "/api/workouts")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// Any HTTP answer counts as reachable; 401 just means we are not
	// logged in.
	return nil
}

func countOtherInstances() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range procs {
		if p.Executable() == constants.AppName && p.Pid() != os.Getpid() {
			count++
		}
	}
	return count, nil
}
