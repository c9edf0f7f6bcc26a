package datasets

import (
	"context"
	"fmt"
	"strings"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	flagTitle            = "title"
	flagTitleUsage       = "the dataset title"
	flagDescription      = "description"
	flagDescriptionUsage = "the dataset description"
	flagSource           = "source"
	flagSourceUsage      = "the organization publishing the dataset"
	flagTags             = "tag"
	flagTagsUsage        = "the dataset tags"
	flagDataURL          = "data-url"
	flagDataURLUsage     = "the link to download the dataset file from"
	flagProvider         = "provider"
	flagProviderUsage    = "the portal providing the dataset"
)

func datasetFlags(fs *pflag.FlagSet, req *hub.DatasetRequest) {
	fs.StringVar(&req.Title, flagTitle, "", flagTitleUsage)
	fs.StringVar(&req.Description, flagDescription, "", flagDescriptionUsage)
	fs.StringVar(&req.Source, flagSource, "", flagSourceUsage)
	fs.StringSliceVar(&req.Tags, flagTags, nil, flagTagsUsage)
	fs.StringVarP(&req.Category, flagCategory, flagCategoryShort, "", flagCategoryUsage)
	fs.StringVar(&req.DataURL, flagDataURL, "", flagDataURLUsage)
	fs.StringVar(&req.Provider, flagProvider, "", flagProviderUsage)
}

type createInputs struct {
	hub.DatasetRequest
}

func (i *createInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	for _, field := range []struct {
		value   *string
		message string
	}{
		{&i.Title, "Title"},
		{&i.Source, "Source"},
		{&i.DataURL, "Data URL"},
	} {
		if *field.value != "" {
			continue
		}
		if err := ui.AskOne(field.value, &survey.Input{Message: field.message}); err != nil {
			return err
		}
		if *field.value == "" {
			return fmt.Errorf("%s is required", strings.ToLower(field.message))
		}
	}
	return nil
}

// CommandCreate is the `datasets create` command
type CommandCreate struct {
	inputs createInputs
}

// Flags is the command flags
func (cmd *CommandCreate) Flags(fs *pflag.FlagSet) {
	datasetFlags(fs, &cmd.inputs.DatasetRequest)
}

// Inputs is the command inputs
func (cmd *CommandCreate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandCreate) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	dataset, err := clients.Hub.CreateDataset(context.Background(), cmd.inputs.DatasetRequest)
	if err != nil {
		return cli.NewPrivileged("failed to create dataset", err)
	}

	ui.Print(terminal.NewTitledJSONLog("Successfully created dataset", dataset))
	return nil
}
