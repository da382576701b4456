package wm

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"i3uw/pkg/core"
)

// Manager handles window management operations based on the session type
type Manager struct {
	wm     Client
	log    core.Logger
	dryRun bool
}

type ManagerOption func(*Manager)

// WithDryRun logs commands instead of sending them.
func WithDryRun(dryRun bool) ManagerOption {
	return func(m *Manager) {
		m.dryRun = dryRun
	}
}

// WithClient replaces the detected backend.
func WithClient(c Client) ManagerOption {
	return func(m *Manager) {
		m.wm = c
	}
}

// NewManager creates a new window manager based on the session type
func NewManager(log core.Logger, opts ...ManagerOption) (*Manager, error) {
	m := &Manager{log: log}
	for _, opt := range opts {
		opt(m)
	}

	if m.wm == nil {
		session, err := DetectSession(os.Getenv, exec.LookPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize window manager support: %w", err)
		}
		log.Info("Session type detected", "session", session.Kind, "socket", session.SocketPath)
		m.wm = NewI3(session, log)
	}

	log.Info("Window manager initialized", "name", m.wm.Name(), "dry_run", m.dryRun)
	return m, nil
}

// Name returns the name of the current window manager
func (m *Manager) Name() string {
	return m.wm.Name()
}

func (m *Manager) FocusedWorkspace() (Workspace, error) {
	return m.wm.FocusedWorkspace()
}

func (m *Manager) FocusedWindow() (Window, error) {
	return m.wm.FocusedWindow()
}

// RunCommand forwards to the backend unless dry-run is on, in which case each
// ';'-separated command is reported as successful.
func (m *Manager) RunCommand(command string) ([]CommandResult, error) {
	if !m.dryRun {
		return m.wm.RunCommand(command)
	}
	m.log.Info("Dry run, not sending command", "command", command)
	parts := strings.Split(command, ";")
	out := make([]CommandResult, len(parts))
	for i := range out {
		out[i] = CommandResult{Success: true}
	}
	return out, nil
}

func (m *Manager) Subscribe(ctx context.Context, fn func(WindowEvent) error) error {
	return m.wm.Subscribe(ctx, fn)
}
