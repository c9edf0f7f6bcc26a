package datasets

import (
	"context"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandView is the `datasets view` command
type CommandView struct {
	inputs idInputs
}

// Flags is the command flags
func (cmd *CommandView) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
}

// Inputs is the command inputs
func (cmd *CommandView) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandView) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := clients.Hub.RecordDatasetView(context.Background(), cmd.inputs.ID); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Recorded a view of dataset %s", cmd.inputs.ID))
	return nil
}
