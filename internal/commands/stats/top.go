package stats

import (
	"context"
	"fmt"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/commands/datasets"
	"github.com/ldxinsight/ldx-cli/internal/terminal"
	"github.com/ldxinsight/ldx-cli/internal/utils/flags"

	"github.com/spf13/pflag"
)

const (
	flagBy      = "by"
	flagByUsage = `rank the datasets by "views" or "downloads"`

	flagLimit      = "limit"
	flagLimitUsage = "the number of datasets to show"

	rankViews     = "views"
	rankDownloads = "downloads"
)

// CommandTop is the `stats top` command
type CommandTop struct {
	by    string
	limit int
}

// Flags is the command flags
func (cmd *CommandTop) Flags(fs *pflag.FlagSet) {
	fs.Var(flags.NewEnum(&cmd.by, rankViews, rankViews, rankDownloads), flagBy, flagByUsage)
	fs.IntVar(&cmd.limit, flagLimit, hub.DefaultTopLimit, flagLimitUsage)
}

// Handler is the command handler
func (cmd *CommandTop) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	top := clients.Hub.TopViewedDatasets
	if cmd.by == rankDownloads {
		top = clients.Hub.TopDownloadedDatasets
	}

	var ranked []hub.Dataset
	if err := clients.Deps.Load(context.Background(), "top-"+cmd.by, func(ctx context.Context) error {
		d, err := top(ctx, cmd.limit)
		if err != nil {
			return err
		}
		ranked = d
		return nil
	}); err != nil {
		return err
	}

	if len(ranked) == 0 {
		ui.Print(terminal.NewTextLog("No datasets found"))
		return nil
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Top %d datasets by %s", len(ranked), cmd.by),
		datasets.TableHeaders(),
		datasets.TableRows(ranked)...,
	))
	return nil
}
