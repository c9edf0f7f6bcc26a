package metadata

import (
	"context"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/terminal"
)

// Command is the `metadata` command
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	var metadata hub.Metadata
	if err := clients.Deps.Load(context.Background(), "metadata", func(ctx context.Context) error {
		m, err := clients.Hub.Metadata(ctx)
		if err != nil {
			return err
		}
		metadata = m
		return nil
	}); err != nil {
		return err
	}

	ui.Print(terminal.NewTitledJSONLog("DTI model metadata", metadata))
	return nil
}
