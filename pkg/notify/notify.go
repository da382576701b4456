package notify

import (
	"fmt"
	"os/exec"
	"strings"

	"i3uw/pkg/core"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	Error NotificationType = iota
	Info
)

func (t NotificationType) String() string {
	if t == Error {
		return "ERROR"
	}
	return "INFO"
}

// NotifyService handles desktop notifications
type NotifyService struct {
	log           core.Logger
	notifyCommand string

	lookPath func(string) (string, error)
	run      func(*exec.Cmd) error
}

// NewNotifyService creates a new notification service
func NewNotifyService(notifyCommand string, log core.Logger) *NotifyService {
	return &NotifyService{
		log:           log,
		notifyCommand: notifyCommand,
		lookPath:      exec.LookPath,
		run:           (*exec.Cmd).Run,
	}
}

// Show displays a notification of the specified type
func (n *NotifyService) Show(message string, nType NotificationType) error {
	// First try configured notification command if available
	if n.notifyCommand != "" {
		if err := n.executeNotifyCommand(message, nType); err == nil {
			return nil
		}
		n.log.Warn("Custom notification command failed", "command", n.notifyCommand)
	}

	return n.trySystemNotification(message, nType)
}

func (n *NotifyService) executeNotifyCommand(message string, nType NotificationType) error {
	n.log.Debug("Executing notify command", "notify_command", n.notifyCommand, "type", nType.String())
	cmd := exec.Command("sh", "-c", fmt.Sprintf("%s %s %s", n.notifyCommand, shellQuote(nType.String()), shellQuote(message)))
	return n.run(cmd)
}

// shellQuote wraps s in single quotes for sh.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
