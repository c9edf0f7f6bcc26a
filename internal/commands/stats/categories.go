package stats

import (
	"context"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/terminal"
)

const (
	headerCategory = "Category"
	headerCount    = "Count"
)

// CommandCategories is the `stats categories` command
type CommandCategories struct{}

// Handler is the command handler
func (cmd *CommandCategories) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	var stats []hub.CategoryStat
	if err := clients.Deps.Load(context.Background(), "categoryStats", func(ctx context.Context) error {
		s, err := clients.Hub.StatsByCategory(ctx)
		if err != nil {
			return err
		}
		stats = s
		return nil
	}); err != nil {
		return err
	}

	if len(stats) == 0 {
		ui.Print(terminal.NewTextLog("No dataset categories found"))
		return nil
	}

	rows := make([]map[string]interface{}, 0, len(stats))
	for _, stat := range stats {
		rows = append(rows, map[string]interface{}{
			headerCategory: stat.Category,
			headerCount:    stat.Count,
		})
	}

	ui.Print(terminal.NewTableLog("Datasets by category", []string{headerCategory, headerCount}, rows...))
	return nil
}
