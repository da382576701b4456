// Package wmtest provides an in-memory wm.Client for tests.
package wmtest

import (
	"context"
	"sync"

	"i3uw/internal/wm"
)

// Fake records commands and serves a scripted tree state.
type Fake struct {
	mu sync.Mutex

	Workspace wm.Workspace
	Focused   wm.Window
	// Results is returned for every command; nil means one success.
	Results []wm.CommandResult
	// Err is returned by every query and command when set.
	Err error
	// Events are delivered in order by Subscribe.
	Events []wm.WindowEvent
	// OnCommand runs after a command is recorded, e.g. to mutate the tree.
	OnCommand func(f *Fake, command string)

	commands []string
	queries  int
}

var _ wm.Client = (*Fake)(nil)

func (f *Fake) Name() string {
	return "fake"
}

func (f *Fake) FocusedWorkspace() (wm.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++
	if f.Err != nil {
		return wm.Workspace{}, f.Err
	}
	ws := f.Workspace
	ws.Leaves = append([]wm.Window(nil), f.Workspace.Leaves...)
	return ws, nil
}

func (f *Fake) FocusedWindow() (wm.Window, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++
	if f.Err != nil {
		return wm.Window{}, f.Err
	}
	return f.Focused, nil
}

func (f *Fake) RunCommand(command string) ([]wm.CommandResult, error) {
	f.mu.Lock()
	if f.Err != nil {
		f.mu.Unlock()
		return nil, f.Err
	}
	f.commands = append(f.commands, command)
	results := f.Results
	hook := f.OnCommand
	f.mu.Unlock()

	if hook != nil {
		hook(f, command)
	}
	if results == nil {
		results = []wm.CommandResult{{Success: true}}
	}
	return results, nil
}

// Subscribe delivers Events and then blocks until ctx ends.
func (f *Fake) Subscribe(ctx context.Context, fn func(wm.WindowEvent) error) error {
	f.mu.Lock()
	events := append([]wm.WindowEvent(nil), f.Events...)
	f.mu.Unlock()

	for _, ev := range events {
		if err := fn(ev); err != nil {
			return err
		}
	}
	<-ctx.Done()
	return ctx.Err()
}

// Commands returns the commands sent so far.
func (f *Fake) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.commands...)
}

// Queries counts tree reads.
func (f *Fake) Queries() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries
}
