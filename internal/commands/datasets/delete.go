package datasets

import (
	"context"
	"fmt"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandDelete is the `datasets delete` command
type CommandDelete struct {
	inputs idInputs
}

// Flags is the command flags
func (cmd *CommandDelete) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
}

// Inputs is the command inputs
func (cmd *CommandDelete) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandDelete) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	proceed, err := ui.Confirm(fmt.Sprintf("Are you sure you want to delete dataset %s?", cmd.inputs.ID), false)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	if err := clients.Hub.DeleteDataset(context.Background(), cmd.inputs.ID); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully deleted dataset %s", cmd.inputs.ID))
	return nil
}
