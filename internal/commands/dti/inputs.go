package dti

import (
	"errors"
	"strconv"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	flagProvince      = "province"
	flagProvinceUsage = "the province to forecast"

	flagYear      = "year"
	flagYearUsage = "the year to forecast"
)

var errInvalidYear = errors.New("year must be a positive number")

type forecastInputs struct {
	Province string
	Year     int
}

func (i *forecastInputs) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&i.Province, flagProvince, "", flagProvinceUsage)
	fs.IntVar(&i.Year, flagYear, 0, flagYearUsage)
}

func (i *forecastInputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if i.Province == "" {
		if err := ui.AskOne(&i.Province, &survey.Input{Message: "Province"}); err != nil {
			return err
		}
	}

	if i.Year == 0 {
		var year string
		if err := ui.AskOne(&year, &survey.Input{Message: "Year"}); err != nil {
			return err
		}
		y, err := strconv.Atoi(year)
		if err != nil {
			return errInvalidYear
		}
		i.Year = y
	}

	if i.Year < 0 {
		return errInvalidYear
	}
	return nil
}
