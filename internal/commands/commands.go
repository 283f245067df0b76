package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fl4re/ec2-inventory/internal/inventory"
	"github.com/fl4re/ec2-inventory/internal/messages"
)

// LoadInventoryCmd runs the inventory pipeline against provider.
func LoadInventoryCmd(ctx context.Context, provider inventory.Provider, logger *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		doc, err := inventory.Run(ctx, provider)
		if err != nil {
			return messages.ErrMsg(fmt.Errorf("failed to build inventory: %w", err))
		}
		if logger != nil {
			logger.Debug("inventory loaded", "groups", len(doc.Groups), "hosts", doc.HostCount())
		}
		return messages.InventoryLoadedMsg(doc)
	}
}

// SshArgs returns the arguments passed to ssh for address.
func SshArgs(user, keyPath, address string) []string {
	var args []string
	if keyPath != "" {
		args = append(args, "-i", keyPath)
	}
	target := address
	if user != "" {
		target = user + "@" + address
	}
	return append(args, target)
}

// SshIntoHostCmd suspends the program and runs ssh against address.
func SshIntoHostCmd(user, keyPath, address string) tea.Cmd {
	return tea.ExecProcess(exec.Command("ssh", SshArgs(user, keyPath, address)...), func(err error) tea.Msg {
		return messages.SshExitMsg{Err: err}
	})
}
