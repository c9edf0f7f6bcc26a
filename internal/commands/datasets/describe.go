package datasets

import (
	"context"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandDescribe is the `datasets describe` command
type CommandDescribe struct {
	inputs idInputs
}

// Flags is the command flags
func (cmd *CommandDescribe) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
}

// Inputs is the command inputs
func (cmd *CommandDescribe) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandDescribe) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	var dataset hub.Dataset
	if err := clients.Deps.Load(context.Background(), "dataset", func(ctx context.Context) error {
		d, err := clients.Hub.Dataset(ctx, cmd.inputs.ID)
		if err != nil {
			return err
		}
		dataset = d
		return nil
	}); err != nil {
		return err
	}

	ui.Print(terminal.NewTitledJSONLog(dataset.Title, dataset))
	return nil
}
