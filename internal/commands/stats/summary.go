package stats

import (
	"context"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/terminal"
)

const (
	headerDatasets  = "Datasets"
	headerViews     = "Views"
	headerDownloads = "Downloads"
)

// CommandSummary is the `stats summary` command
type CommandSummary struct{}

// Handler is the command handler
func (cmd *CommandSummary) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	var summary hub.StatsSummary
	if err := clients.Deps.Load(context.Background(), "summary", func(ctx context.Context) error {
		s, err := clients.Hub.StatsSummary(ctx)
		if err != nil {
			return err
		}
		summary = s
		return nil
	}); err != nil {
		return err
	}

	ui.Print(terminal.NewTableLog(
		"Portal activity",
		[]string{headerDatasets, headerViews, headerDownloads},
		map[string]interface{}{
			headerDatasets:  summary.TotalDatasets,
			headerViews:     summary.TotalViews,
			headerDownloads: summary.TotalDownloads,
		},
	))
	return nil
}
