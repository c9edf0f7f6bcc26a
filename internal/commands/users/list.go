package users

import (
	"context"
	"fmt"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/terminal"
)

const (
	headerID    = "ID"
	headerName  = "Name"
	headerEmail = "Email"
)

// CommandList is the `users list` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	var users []hub.User
	if err := clients.Deps.Load(context.Background(), "users", func(ctx context.Context) error {
		u, err := clients.Hub.Users(ctx)
		if err != nil {
			return err
		}
		users = u
		return nil
	}); err != nil {
		return err
	}

	if len(users) == 0 {
		ui.Print(terminal.NewTextLog("No users found"))
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(users))
	for _, user := range users {
		rows = append(rows, map[string]interface{}{
			headerID:    string(user.ID),
			headerName:  user.Name,
			headerEmail: user.Email,
		})
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Found %d users", len(users)),
		[]string{headerID, headerName, headerEmail},
		rows...,
	))
	return nil
}
