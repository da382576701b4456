package wm

import (
	"errors"
	"fmt"
)

// ErrNoWindowManager is returned when neither sway nor i3 can be found.
var ErrNoWindowManager = errors.New("no supported window manager found")

const (
	SessionI3   = "i3"
	SessionSway = "sway"
)

// Session describes the window manager to talk to. An empty SocketPath lets
// go-i3 ask `i3 --get-socketpath`.
type Session struct {
	Kind       string
	SocketPath string
}

// DetectSession picks the window manager from the environment. SWAYSOCK wins
// over I3SOCK; without either, an i3 binary on PATH is required.
func DetectSession(getenv func(string) string, lookPath func(string) (string, error)) (Session, error) {
	if sock := getenv("SWAYSOCK"); sock != "" {
		return Session{Kind: SessionSway, SocketPath: sock}, nil
	}
	if sock := getenv("I3SOCK"); sock != "" {
		return Session{Kind: SessionI3, SocketPath: sock}, nil
	}
	if _, err := lookPath("i3"); err != nil {
		return Session{}, fmt.Errorf("%w: SWAYSOCK and I3SOCK are unset and i3 is not in PATH", ErrNoWindowManager)
	}
	return Session{Kind: SessionI3}, nil
}
