package app

import (
	"context"
	"errors"
	"fmt"

	"i3uw/internal/handler"
	"i3uw/internal/wm"
	"i3uw/pkg/config"
	"i3uw/pkg/core"
	"i3uw/pkg/notify"
)

type notifier interface {
	Show(message string, nType notify.NotificationType) error
}

// I3UW runs the window event loop for the handled workspaces.
type I3UW struct {
	wm       wm.Client
	handler  *handler.Handler
	notifier notifier
	log      core.Logger
}

type Option func(*options)

type options struct {
	notifier notifier
	handler  []handler.Option
}

// WithNotifier overrides the desktop notifier built from the config.
func WithNotifier(n notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithHandlerOptions passes options through to the event handler.
func WithHandlerOptions(opts ...handler.Option) Option {
	return func(o *options) {
		o.handler = append(o.handler, opts...)
	}
}

func NewI3UW(cfg *config.Config, client wm.Client, log core.Logger, opts ...Option) *I3UW {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.notifier == nil {
		o.notifier = notify.NewNotifyService(cfg.GetNotifyCommand(), log)
	}

	log.Debug("Initializing i3uw", "wm", client.Name(), "config_path", cfg.Path())

	return &I3UW{
		wm:       client,
		handler:  handler.New(client, cfg, log, o.handler...),
		notifier: o.notifier,
		log:      log,
	}
}

// Run feeds window events to the handler until ctx is cancelled, the
// connection drops or the handler fails. Cancellation is not an error.
func (a *I3UW) Run(ctx context.Context) error {
	a.log.Info("Starting event loop", "wm", a.wm.Name())

	err := a.wm.Subscribe(ctx, a.handler.Handle)
	if ctx.Err() != nil && (err == nil || errors.Is(err, ctx.Err())) {
		a.log.Info("Event loop stopped")
		return nil
	}
	if err == nil {
		err = errors.New("event stream ended")
	}

	a.log.Error("Event loop failed", err)
	if nerr := a.notifier.Show(fmt.Sprintf("i3uw stopped: %v", err), notify.Error); nerr != nil {
		a.log.Warn("Failed to send notification", "error", nerr.Error())
	}
	return fmt.Errorf("event loop stopped: %w", err)
}
