package dti

import (
	"context"

	"github.com/ldxinsight/ldx-cli/internal/cli"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/terminal"
	"github.com/ldxinsight/ldx-cli/internal/utils/flags"

	"github.com/spf13/pflag"
)

const (
	flagFeature      = "feature"
	flagFeatureUsage = `override a model feature, formatted as "name=ratio" (default: the province baseline)`
)

// CommandForecast is the `dti forecast` command
type CommandForecast struct {
	inputs   forecastInputs
	features map[string]float64
}

// Flags is the command flags
func (cmd *CommandForecast) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
	fs.Var(flags.NewFloatMap(&cmd.features), flagFeature, flagFeatureUsage)
}

// Inputs is the command inputs
func (cmd *CommandForecast) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandForecast) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	var forecast hub.Forecast
	if err := clients.Deps.Load(context.Background(), "forecast", func(ctx context.Context) error {
		f, err := clients.Hub.Forecast(ctx, hub.ForecastRequest{
			Province: cmd.inputs.Province,
			Year:     cmd.inputs.Year,
			Features: cmd.features,
		})
		if err != nil {
			return err
		}
		forecast = f
		return nil
	}); err != nil {
		return err
	}

	ui.Print(forecastLogs(forecast)...)
	return nil
}
