// Package handler decides how to rearrange a handled workspace after a window
// is created or closed.
package handler

import (
	"fmt"
	"time"

	"i3uw/internal/wm"
	"i3uw/pkg/config"
	"i3uw/pkg/core"
)

const (
	// DefaultDebounce collapses the bursts of events a single user action produces.
	DefaultDebounce = 333 * time.Millisecond
	// DefaultSettleDelay gives the window manager time to move focus after a close.
	DefaultSettleDelay = 50 * time.Millisecond
)

// windowSystem is the part of wm.Client the handler uses.
type windowSystem interface {
	FocusedWorkspace() (wm.Workspace, error)
	FocusedWindow() (wm.Window, error)
	RunCommand(command string) ([]wm.CommandResult, error)
}

// Handler is not safe for concurrent use; the event loop calls Handle one
// event at a time.
type Handler struct {
	ws  windowSystem
	cfg *config.Config
	log core.Logger

	now      func() time.Time
	sleep    func(time.Duration)
	debounce time.Duration
	settle   time.Duration

	lastEventAt time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithClock sets the time source used for debouncing
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

// WithSleep sets how the settle delay is waited out
func WithSleep(sleep func(time.Duration)) Option {
	return func(h *Handler) {
		h.sleep = sleep
	}
}

// WithDebounce sets the minimum gap between handled events
func WithDebounce(d time.Duration) Option {
	return func(h *Handler) {
		h.debounce = d
	}
}

// WithSettleDelay sets the pause before a lone window is floated
func WithSettleDelay(d time.Duration) Option {
	return func(h *Handler) {
		h.settle = d
	}
}

// New creates a handler. The debounce clock starts at construction time.
func New(ws windowSystem, cfg *config.Config, log core.Logger, opts ...Option) *Handler {
	h := &Handler{
		ws:       ws,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		sleep:    time.Sleep,
		debounce: DefaultDebounce,
		settle:   DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.lastEventAt = h.now()

	log.Info("Handling workspaces", "workspaces", cfg.HandledWorkspaces())
	return h
}

// Handle processes one window event. Errors from the window manager are
// returned without retrying.
func (h *Handler) Handle(ev wm.WindowEvent) error {
	h.log.Debug("Handling event", "change", ev.Change, "container_id", ev.Container.ID)

	sinceLast := h.now().Sub(h.lastEventAt)
	h.log.Debug("Time since last handle", "ms", sinceLast.Milliseconds())
	if sinceLast < h.debounce {
		h.log.Debug("Too soon to handle, ignoring")
		return nil
	}

	curr, err := h.ws.FocusedWorkspace()
	if err != nil {
		return fmt.Errorf("failed to get focused workspace: %w", err)
	}

	if !h.cfg.Handles(curr.Name) {
		h.log.Debug("Workspace not handled, ignoring",
			"workspace", curr.Name,
			"handled", h.cfg.HandledWorkspaces())
		return nil
	}

	h.log.Debug("Workspace handled",
		"workspace", curr.Name,
		"leaves", leafNames(curr.Leaves))

	switch len(curr.Leaves) {
	case 1:
		err = h.onSingleWindow()
	case 2:
		err = h.onMultipleWindows(ev)
	default:
		h.log.Debug("No action for leaf count", "workspace", curr.Name, "count", len(curr.Leaves))
		return nil
	}
	if err != nil {
		return err
	}

	h.lastEventAt = h.now()
	return nil
}

func leafNames(leaves []wm.Window) []string {
	names := make([]string, 0, len(leaves))
	for _, l := range leaves {
		names = append(names, l.Name)
	}
	return names
}
