package commands

import (
	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/commands/datasets"
	"github.com/ldxinsight/ldx-cli/internal/commands/dti"
	"github.com/ldxinsight/ldx-cli/internal/commands/login"
	"github.com/ldxinsight/ldx-cli/internal/commands/logout"
	"github.com/ldxinsight/ldx-cli/internal/commands/metadata"
	"github.com/ldxinsight/ldx-cli/internal/commands/register"
	"github.com/ldxinsight/ldx-cli/internal/commands/stats"
	"github.com/ldxinsight/ldx-cli/internal/commands/users"
	"github.com/ldxinsight/ldx-cli/internal/commands/whoami"
)

// set of portal pages the commands stand for
const (
	routeHome      = "/"
	routeData      = "/data"
	routeUsers     = "/users"
	routeDiagnose  = "/diagnose"
	routeSimulator = "/simulator"
)

// set of commands
var (
	Login = cli.CommandDefinition{
		Command:     &login.Command{},
		Use:         "login",
		Description: "Log in to the Open Linked Hub with your email and password",
		Help: `Log in to the Open Linked Hub with your email and password

The session cookies are stored alongside your CLI profile. After logging in,
the CLI lands on the page you were sent away from, or the home page.`,
	}
	Register = cli.CommandDefinition{
		Command:     &register.Command{},
		Use:         "register",
		Description: "Create an Open Linked Hub account and log in with it",
	}
	Logout = cli.CommandDefinition{
		Command:     &logout.Command{},
		Use:         "logout",
		Description: "Terminate the current user's session",
	}
	Whoami = cli.CommandDefinition{
		Command:     &whoami.Command{},
		Use:         "whoami",
		Description: "Display the current user's session details",
		Route:       routeHome,
	}

	Datasets = cli.CommandDefinition{
		Use:         "datasets",
		Aliases:     []string{"dataset", "ds"},
		Description: "Browse and manage the datasets published on the portal",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls", "search"},
				Display:     "datasets list",
				Description: "List the datasets, optionally searching or filtering by category",
				Command:     &datasets.CommandList{},
				Route:       routeData,
			},
			{
				Use:         "describe",
				Display:     "datasets describe",
				Description: "Show the details of a dataset",
				Command:     &datasets.CommandDescribe{},
				Route:       routeData,
			},
			{
				Use:         "categories",
				Display:     "datasets categories",
				Description: "List the dataset categories",
				Command:     &datasets.CommandCategories{},
				Route:       routeData,
			},
			{
				Use:         "create",
				Display:     "datasets create",
				Description: "Publish a new dataset",
				Command:     &datasets.CommandCreate{},
				Route:       routeData,
			},
			{
				Use:         "update",
				Display:     "datasets update",
				Description: "Change the details of a dataset",
				Command:     &datasets.CommandUpdate{},
				Route:       routeData,
			},
			{
				Use:         "delete",
				Aliases:     []string{"rm"},
				Display:     "datasets delete",
				Description: "Delete a dataset",
				Command:     &datasets.CommandDelete{},
				Route:       routeData,
			},
			{
				Use:         "view",
				Display:     "datasets view",
				Description: "Record a view of a dataset",
				Command:     &datasets.CommandView{},
				Route:       routeData,
			},
			{
				Use:         "download",
				Display:     "datasets download",
				Description: "Show the download link of a dataset",
				Command:     &datasets.CommandDownload{},
				Route:       routeData,
			},
		},
	}

	Stats = cli.CommandDefinition{
		Use:         "stats",
		Description: "Show the portal activity",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "summary",
				Display:     "stats summary",
				Description: "Show the total datasets, views and downloads",
				Command:     &stats.CommandSummary{},
				Route:       routeHome,
			},
			{
				Use:         "categories",
				Display:     "stats categories",
				Description: "Show the number of datasets per category",
				Command:     &stats.CommandCategories{},
				Route:       routeHome,
			},
			{
				Use:         "top",
				Display:     "stats top",
				Description: "Show the most viewed or downloaded datasets",
				Command:     &stats.CommandTop{},
				Route:       routeHome,
			},
		},
	}

	Users = cli.CommandDefinition{
		Use:         "users",
		Aliases:     []string{"user"},
		Description: "Look up the portal members",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "users list",
				Description: "List the portal members",
				Command:     &users.CommandList{},
				Route:       routeUsers,
			},
			{
				Use:         "describe",
				Display:     "users describe",
				Description: "Show a member by id or student code, or the current user",
				Command:     &users.CommandDescribe{},
				Route:       routeUsers,
			},
		},
	}

	Metadata = cli.CommandDefinition{
		Command:     &metadata.Command{},
		Use:         "metadata",
		Description: "Show the DTI model metadata",
		Route:       routeDiagnose,
	}

	DTI = cli.CommandDefinition{
		Use:         "dti",
		Description: "Forecast the Digital Transformation Index of a province",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "forecast",
				Display:     "dti forecast",
				Description: "Forecast the DTI of a province for a year",
				Command:     &dti.CommandForecast{},
				Route:       routeDiagnose,
			},
			{
				Use:         "simulate",
				Display:     "dti simulate",
				Description: "Forecast the DTI of a province after changing its features",
				Command:     &dti.CommandSimulate{},
				Route:       routeSimulator,
			},
		},
	}
)
