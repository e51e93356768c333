package tui

import "github.com/repkit/repkit/internal/constants"

// access describes who may see a screen.
type access int

const (
	// accessProtected screens require a stored credential.
	accessProtected access = iota
	// accessPublicOnly screens are for logged-out users (login, signup).
	accessPublicOnly
)

func screenAccess(s constants.Screen) access {
	switch s {
	case constants.ScreenLogin, constants.ScreenSignup:
		return accessPublicOnly
	default:
		return accessProtected
	}
}

// gateDecision is the outcome of evaluating a screen against the current
// session signal.
type gateDecision int

const (
	// gateRender shows the screen's content.
	gateRender gateDecision = iota
	// gateRedirectLogin sends the user to the login screen; nothing of the
	// protected screen is rendered.
	gateRedirectLogin
	// gateRedirectDashboard sends an already-authenticated user away from
	// public-only screens.
	gateRedirectDashboard
)

// resolveGate is a pure function of the screen's access requirement and the
// session signal. It runs on every auth change, not once at mount, so a
// credential cleared by another process redirects an open protected screen.
func resolveGate(a access, loggedIn bool) gateDecision {
	switch a {
	case accessPublicOnly:
		if loggedIn {
			return gateRedirectDashboard
		}
	default:
		if !loggedIn {
			return gateRedirectLogin
		}
	}
	return gateRender
}
