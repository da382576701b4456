package notify

import (
	"fmt"
	"os/exec"
)

const title = "i3uw"

type notificationTool struct {
	name         string
	buildCommand func(tool string, message string, nType NotificationType) *exec.Cmd
}

func urgency(nType NotificationType) string {
	if nType == Error {
		return "critical"
	}
	return "normal"
}

var notificationTools = []notificationTool{
	{
		name: "dunstify",
		buildCommand: func(tool string, message string, nType NotificationType) *exec.Cmd {
			return exec.Command(tool, "-a", title, "-u", urgency(nType), title, message)
		},
	},
	{
		name: "notify-send",
		buildCommand: func(tool string, message string, nType NotificationType) *exec.Cmd {
			return exec.Command(tool, "-a", title, "-u", urgency(nType), title, message)
		},
	},
	{
		name: "zenity",
		buildCommand: func(tool string, message string, nType NotificationType) *exec.Cmd {
			flag := "--info"
			if nType == Error {
				flag = "--error"
			}
			return exec.Command(tool, flag, "--title", title, "--text", message)
		},
	},
}

func (n *NotifyService) trySystemNotification(message string, nType NotificationType) error {
	for _, tool := range notificationTools {
		path, err := n.lookPath(tool.name)
		if err != nil {
			continue
		}
		cmd := tool.buildCommand(path, message, nType)
		if err := n.run(cmd); err != nil {
			n.log.Debug("Notification tool failed", "tool", tool.name, "error", err.Error())
			continue
		}
		n.log.Debug("Notification sent successfully",
			"tool", tool.name,
			"type", nType.String())
		return nil
	}
	return fmt.Errorf("no notification tools available")
}
