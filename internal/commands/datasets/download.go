package datasets

import (
	"context"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandDownload is the `datasets download` command
type CommandDownload struct {
	inputs idInputs
}

// Flags is the command flags
func (cmd *CommandDownload) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
}

// Inputs is the command inputs
func (cmd *CommandDownload) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandDownload) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	downloadURL, err := clients.Hub.DatasetDownloadURL(context.Background(), cmd.inputs.ID)
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Download dataset %s from: %s", cmd.inputs.ID, downloadURL))
	return nil
}
