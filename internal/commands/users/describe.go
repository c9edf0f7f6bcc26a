package users

import (
	"context"
	"errors"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagID      = "id"
	flagIDUsage = "the id of the user"

	flagCode      = "code"
	flagCodeUsage = "the student code of the user"
)

var errIDAndCode = errors.New("cannot specify both an id and a student code")

// CommandDescribe is the `users describe` command
// Without an id nor a student code, the logged in user is described
type CommandDescribe struct {
	id   string
	code string
}

// Flags is the command flags
func (cmd *CommandDescribe) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.id, flagID, "", flagIDUsage)
	fs.StringVar(&cmd.code, flagCode, "", flagCodeUsage)
}

// Handler is the command handler
func (cmd *CommandDescribe) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	if cmd.id != "" && cmd.code != "" {
		return errIDAndCode
	}

	var user hub.User
	if err := clients.Deps.Load(context.Background(), "user", func(ctx context.Context) error {
		var u hub.User
		var err error
		if cmd.id != "" {
			u, err = clients.Hub.UserByID(ctx, cmd.id)
		} else {
			u, err = clients.Hub.User(ctx, cmd.code)
		}
		if err != nil {
			return err
		}
		user = u
		return nil
	}); err != nil {
		return err
	}

	ui.Print(terminal.NewJSONLog(user))
	return nil
}
