package wm

import "context"

// Client is the window-system collaborator. Every query re-reads the
// window manager's tree.
type Client interface {
	// Name returns the WM name for logging/display
	Name() string
	// FocusedWorkspace returns the workspace holding the focused container and its leaves
	FocusedWorkspace() (Workspace, error)
	// FocusedWindow returns the focused container
	FocusedWindow() (Window, error)
	// RunCommand sends a command string and returns one result per command
	RunCommand(command string) ([]CommandResult, error)
	// Subscribe calls fn for every window "new" and "close" event until ctx ends,
	// the connection closes or fn returns an error
	Subscribe(ctx context.Context, fn func(WindowEvent) error) error
}

// Window is a container reference as the handler sees it.
type Window struct {
	ID   int64
	Name string
}

// Workspace is the focused workspace and the windows on it in tree order.
type Workspace struct {
	Name   string
	Leaves []Window
}

// CommandResult is the reply to one command of a command string.
type CommandResult struct {
	Success bool
	Error   string
}

// WindowEvent is a window notification from the window manager.
type WindowEvent struct {
	Change    string
	Container Window
}

const (
	ChangeNew   = "new"
	ChangeClose = "close"
)
