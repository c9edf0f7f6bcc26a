package datasets

import (
	"context"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/terminal"
)

// CommandCategories is the `datasets categories` command
type CommandCategories struct{}

// Handler is the command handler
func (cmd *CommandCategories) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	var categories []string
	if err := clients.Deps.Load(context.Background(), "categories", func(ctx context.Context) error {
		c, err := clients.Hub.DatasetCategories(ctx)
		if err != nil {
			return err
		}
		categories = c
		return nil
	}); err != nil {
		return err
	}

	if len(categories) == 0 {
		ui.Print(terminal.NewTextLog("No dataset categories found"))
		return nil
	}

	data := make([]interface{}, 0, len(categories))
	for _, category := range categories {
		data = append(data, category)
	}

	ui.Print(terminal.NewListLog("Dataset categories", data...))
	return nil
}
