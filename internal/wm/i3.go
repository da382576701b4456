package wm

import (
	"context"
	"fmt"
	"os"

	"go.i3wm.org/i3/v4"

	"i3uw/pkg/core"
)

// I3 talks to i3 or sway through go-i3.
type I3 struct {
	log     core.Logger
	session Session

	getTree    func() (i3.Tree, error)
	runCommand func(string) ([]i3.CommandResult, error)
}

// NewI3 points go-i3 at the session's socket. go-i3 keeps the socket lookup
// in package state, so only one I3 should exist per process.
func NewI3(session Session, log core.Logger) *I3 {
	if path := session.SocketPath; path != "" {
		i3.SocketPathHook = func() (string, error) {
			return path, nil
		}
		if session.Kind == SessionSway {
			// go-i3 probes for an i3 process before reconnecting
			i3.IsRunningHook = func() bool {
				_, err := os.Stat(path)
				return err == nil
			}
		}
	}
	log.Debug("Using go-i3 backend", "session", session.Kind, "socket", session.SocketPath)
	return &I3{
		log:        log,
		session:    session,
		getTree:    i3.GetTree,
		runCommand: i3.RunCommand,
	}
}

// Name returns the session kind, "i3" or "sway".
func (c *I3) Name() string {
	return c.session.Kind
}

func (c *I3) tree() (*i3.Node, error) {
	tree, err := c.getTree()
	if err != nil {
		return nil, fmt.Errorf("failed to get %s tree: %w", c.session.Kind, err)
	}
	return tree.Root, nil
}

// FocusedWorkspace reads the tree and returns the focused workspace with its leaves.
func (c *I3) FocusedWorkspace() (Workspace, error) {
	root, err := c.tree()
	if err != nil {
		return Workspace{}, err
	}
	return workspaceOf(root)
}

// FocusedWindow reads the tree and returns the focused container.
func (c *I3) FocusedWindow() (Window, error) {
	root, err := c.tree()
	if err != nil {
		return Window{}, err
	}
	focused, _ := findFocused(root)
	if focused == nil {
		return Window{}, ErrNoFocus
	}
	return toWindow(focused), nil
}

// RunCommand returns rejected commands as unsuccessful results rather than an error.
func (c *I3) RunCommand(command string) ([]CommandResult, error) {
	res, err := c.runCommand(command)
	out := make([]CommandResult, 0, len(res))
	for _, r := range res {
		out = append(out, CommandResult{Success: r.Success, Error: r.Error})
	}
	if err != nil && !i3.IsUnsuccessful(err) {
		return out, fmt.Errorf("failed to run command %q: %w", command, err)
	}
	return out, nil
}

// Subscribe forwards window "new" and "close" events to fn.
func (c *I3) Subscribe(ctx context.Context, fn func(WindowEvent) error) error {
	recv := i3.Subscribe(i3.WindowEventType)
	stop := context.AfterFunc(ctx, func() {
		recv.Close()
	})
	defer stop()

	c.log.Info("Subscribed to window events", "session", c.session.Kind)

	for recv.Next() {
		ev, ok := recv.Event().(*i3.WindowEvent)
		if !ok || (ev.Change != ChangeNew && ev.Change != ChangeClose) {
			continue
		}
		err := fn(WindowEvent{
			Change:    ev.Change,
			Container: toWindow(&ev.Container),
		})
		if err != nil {
			recv.Close()
			return err
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err := recv.Close(); err != nil {
		return fmt.Errorf("%s event stream closed: %w", c.session.Kind, err)
	}
	return fmt.Errorf("%s event stream closed", c.session.Kind)
}
