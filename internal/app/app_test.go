package app

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i3uw/internal/handler"
	"i3uw/internal/wm"
	"i3uw/internal/wm/wmtest"
	"i3uw/pkg/config"
	"i3uw/pkg/logger"
	"i3uw/pkg/notify"
)

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Show(message string, _ notify.NotificationType) error {
	r.messages = append(r.messages, message)
	return nil
}

// steppingClock moves one second forward on every read so the debounce gate
// never holds back a test event.
func steppingClock() func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newApp(t *testing.T, fake *wmtest.Fake, n *recordingNotifier) *I3UW {
	t.Helper()
	log, err := logger.NewLogger(logger.WithWriter(io.Discard))
	require.NoError(t, err)
	cfg := config.New([]string{"ws1"}, config.Size{Width: 960, Height: 1080}, config.Position{})
	return NewI3UW(cfg, fake, log,
		WithNotifier(n),
		WithHandlerOptions(handler.WithClock(steppingClock()), handler.WithSleep(func(time.Duration) {})),
	)
}

func TestRunDispatchesEventsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fake := &wmtest.Fake{
		Workspace: wm.Workspace{Name: "ws1", Leaves: []wm.Window{{ID: 1}, {ID: 2}}},
		Events: []wm.WindowEvent{
			{Change: wm.ChangeNew, Container: wm.Window{ID: 2}},
		},
		OnCommand: func(_ *wmtest.Fake, command string) {
			if command == "move right" {
				cancel()
			}
		},
	}
	n := &recordingNotifier{}

	require.NoError(t, newApp(t, fake, n).Run(ctx))
	assert.Equal(t, []string{
		"[con_id=1] floating disable",
		"[con_id=2] floating disable",
		"[con_id=2] focus",
		"move right",
	}, fake.Commands())
	assert.Empty(t, n.messages)
}

func TestRunCollapsedWorkspaceFloatsRemainingWindow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fake := &wmtest.Fake{
		Workspace: wm.Workspace{Name: "ws1", Leaves: []wm.Window{{ID: 1}, {ID: 2}}},
		Events: []wm.WindowEvent{
			{Change: wm.ChangeNew, Container: wm.Window{ID: 2}},
			{Change: wm.ChangeClose, Container: wm.Window{ID: 2}},
		},
	}
	// closing window 2 leaves a single window behind
	fake.OnCommand = func(f *wmtest.Fake, command string) {
		if command == "move right" {
			f.Workspace.Leaves = f.Workspace.Leaves[:1]
			f.Focused = wm.Window{ID: 1, Name: "Terminal"}
		}
		if command == handler.FloatCommand(960, 1080, 0, 0) {
			cancel()
		}
	}

	require.NoError(t, newApp(t, fake, &recordingNotifier{}).Run(ctx))
	cmds := fake.Commands()
	require.Len(t, cmds, 5)
	assert.Equal(t, "floating enable; resize set 960 px 1080 px; move position 0 0", cmds[4])
}

func TestRunReportsHandlerFailure(t *testing.T) {
	boom := errors.New("broken pipe")
	fake := &wmtest.Fake{
		Err:    boom,
		Events: []wm.WindowEvent{{Change: wm.ChangeNew, Container: wm.Window{ID: 1}}},
	}
	n := &recordingNotifier{}

	err := newApp(t, fake, n).Run(context.Background())
	require.ErrorIs(t, err, boom)
	require.Len(t, n.messages, 1)
	assert.Contains(t, n.messages[0], "broken pipe")
}
