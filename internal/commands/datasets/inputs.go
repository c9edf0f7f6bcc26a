package datasets

import (
	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	flagID      = "id"
	flagIDUsage = "the id of the dataset"
)

type idInputs struct {
	ID string
}

func (i *idInputs) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&i.ID, flagID, "", flagIDUsage)
}

func (i *idInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if i.ID != "" {
		return nil
	}
	return ui.AskOne(&i.ID, &survey.Input{Message: "Dataset ID"})
}
