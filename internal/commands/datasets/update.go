package datasets

import (
	"context"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandUpdate is the `datasets update` command
// Only the fields provided by flag change, the rest are kept from the current dataset
type CommandUpdate struct {
	inputs  idInputs
	changes hub.DatasetRequest
}

// Flags is the command flags
func (cmd *CommandUpdate) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
	datasetFlags(fs, &cmd.changes)
}

// Inputs is the command inputs
func (cmd *CommandUpdate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandUpdate) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	ctx := context.Background()

	var current hub.Dataset
	if err := clients.Deps.Load(ctx, "dataset", func(ctx context.Context) error {
		d, err := clients.Hub.Dataset(ctx, cmd.inputs.ID)
		if err != nil {
			return err
		}
		current = d
		return nil
	}); err != nil {
		return err
	}

	dataset, err := clients.Hub.UpdateDataset(ctx, cmd.inputs.ID, mergeChanges(current, cmd.changes))
	if err != nil {
		return cli.NewPrivileged("failed to update dataset", err)
	}

	ui.Print(terminal.NewTitledJSONLog("Successfully updated dataset", dataset))
	return nil
}

func mergeChanges(current hub.Dataset, changes hub.DatasetRequest) hub.DatasetRequest {
	req := hub.DatasetRequest{
		Title:       current.Title,
		Description: current.Description,
		Source:      current.Source,
		Tags:        current.Tags,
		Category:    current.Category,
		Provider:    current.Provider,
		DataURL:     changes.DataURL,
	}

	for _, field := range []struct {
		value  *string
		change string
	}{
		{&req.Title, changes.Title},
		{&req.Description, changes.Description},
		{&req.Source, changes.Source},
		{&req.Category, changes.Category},
		{&req.Provider, changes.Provider},
	} {
		if field.change != "" {
			*field.value = field.change
		}
	}

	if len(changes.Tags) > 0 {
		req.Tags = changes.Tags
	}
	return req
}
