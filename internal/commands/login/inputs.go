package login

import (
	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

type inputs struct {
	Email    string
	Password string
	Redirect string
}

func (i *inputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if i.Email == "" {
		if err := ui.AskOne(&i.Email, &survey.Input{Message: "Email"}); err != nil {
			return err
		}
	}

	if i.Password == "" {
		if err := ui.AskOne(&i.Password, &survey.Password{Message: "Password"}); err != nil {
			return err
		}
	}
	return nil
}
