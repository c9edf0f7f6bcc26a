package datasets

import (
	"context"
	"fmt"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagQuery      = "query"
	flagQueryShort = "q"
	flagQueryUsage = "search the dataset titles and descriptions"

	flagCategory      = "category"
	flagCategoryShort = "c"
	flagCategoryUsage = "filter the datasets by category"

	flagPage      = "page"
	flagPageUsage = "the page of datasets to list, starting at 0"

	flagSize      = "size"
	flagSizeUsage = "the number of datasets per page"

	flagSort      = "sort"
	flagSortUsage = `sort the datasets, formatted as "field[,asc|desc]"`
)

// CommandList is the `datasets list` command
type CommandList struct {
	filter hub.DatasetFilter
}

// Flags is the command flags
func (cmd *CommandList) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.filter.Q, flagQuery, flagQueryShort, "", flagQueryUsage)
	fs.StringVarP(&cmd.filter.Category, flagCategory, flagCategoryShort, "", flagCategoryUsage)
	fs.IntVar(&cmd.filter.Page, flagPage, 0, flagPageUsage)
	fs.IntVar(&cmd.filter.Size, flagSize, 10, flagSizeUsage)
	fs.StringVar(&cmd.filter.Sort, flagSort, "createdAt", flagSortUsage)
}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	var page hub.DatasetPage
	if err := clients.Deps.Load(context.Background(), "datasets", func(ctx context.Context) error {
		p, err := cmd.find(ctx, clients.Hub)
		if err != nil {
			return err
		}
		page = p
		return nil
	}); err != nil {
		return err
	}

	if len(page.Content) == 0 {
		ui.Print(terminal.NewTextLog("No datasets found"))
		return nil
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Showing page %d of %d (%d datasets)", page.Number+1, page.TotalPages, page.TotalElements),
		tableHeaders,
		TableRows(page.Content)...,
	))
	return nil
}

// find browses a category directly, unless a search narrows it down
func (cmd *CommandList) find(ctx context.Context, client hub.Client) (hub.DatasetPage, error) {
	if cmd.filter.Category != "" && cmd.filter.Q == "" {
		return client.DatasetsByCategory(ctx, cmd.filter.Category, cmd.filter.Pagination)
	}
	return client.Datasets(ctx, cmd.filter)
}
