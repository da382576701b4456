package handler

import (
	"fmt"

	"i3uw/internal/wm"
)

// FloatCommand floats the focused window and places it at the given size and position.
func FloatCommand(width, height, x, y int) string {
	return fmt.Sprintf("floating enable; resize set %d px %d px; move position %d %d", width, height, x, y)
}

func unfloatCommand(id int64) string {
	return fmt.Sprintf("[con_id=%d] floating disable", id)
}

func focusCommand(id int64) string {
	return fmt.Sprintf("[con_id=%d] focus", id)
}

const moveRightCommand = "move right"

// msg sends a command and logs the per-command results.
func (h *Handler) msg(command string) error {
	h.log.Info("Sending message", "command", command)
	results, err := h.ws.RunCommand(command)
	if err != nil {
		return err
	}
	h.log.Debug("Message response", "command", command, "results", results)
	for _, r := range results {
		if !r.Success {
			h.log.Warn("Command rejected", "command", command, "error", r.Error)
		}
	}
	return nil
}

// onSingleWindow floats the only window left on the workspace.
func (h *Handler) onSingleWindow() error {
	h.sleep(h.settle)

	focused, err := h.ws.FocusedWindow()
	if err != nil {
		return fmt.Errorf("failed to get focused window: %w", err)
	}
	h.log.Info("Handling single floating window", "name", focused.Name, "id", focused.ID)

	size, pos := h.cfg.Size(), h.cfg.Position()
	return h.msg(FloatCommand(size.Width, size.Height, pos.X, pos.Y))
}

// onMultipleWindows tiles every window, focuses the event's container and
// moves a new window into the right-hand slot.
func (h *Handler) onMultipleWindows(ev wm.WindowEvent) error {
	curr, err := h.ws.FocusedWorkspace()
	if err != nil {
		return fmt.Errorf("failed to get focused workspace: %w", err)
	}
	h.log.Debug("Handling multiple windows", "leaves", leafNames(curr.Leaves))

	for _, window := range curr.Leaves {
		h.log.Info("Unfloating window", "name", window.Name, "id", window.ID)
		if err := h.msg(unfloatCommand(window.ID)); err != nil {
			return err
		}
	}

	h.log.Debug("Focus window", "name", ev.Container.Name, "id", ev.Container.ID)
	if err := h.msg(focusCommand(ev.Container.ID)); err != nil {
		return err
	}

	if ev.Change == wm.ChangeNew {
		return h.msg(moveRightCommand)
	}
	return nil
}
