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
	flagDelta      = "delta"
	flagDeltaUsage = `change a model feature by an amount, formatted as "name=amount"`

	flagBaseFeature      = "base-feature"
	flagBaseFeatureUsage = `set a model feature before the changes apply, formatted as "name=ratio"`
)

// CommandSimulate is the `dti simulate` command
type CommandSimulate struct {
	inputs       forecastInputs
	deltas       map[string]float64
	baseFeatures map[string]float64
}

// Flags is the command flags
func (cmd *CommandSimulate) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
	fs.Var(flags.NewFloatMap(&cmd.deltas), flagDelta, flagDeltaUsage)
	fs.Var(flags.NewFloatMap(&cmd.baseFeatures), flagBaseFeature, flagBaseFeatureUsage)
}

// Inputs is the command inputs
func (cmd *CommandSimulate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandSimulate) Handler(profile *cli.Profile, ui terminal.UI, clients cli.Clients) error {
	var forecast hub.Forecast
	if err := clients.Deps.Load(context.Background(), "simulation", func(ctx context.Context) error {
		f, err := clients.Hub.Simulate(ctx, hub.SimulationRequest{
			Province:     cmd.inputs.Province,
			Year:         cmd.inputs.Year,
			Deltas:       cmd.deltas,
			BaseFeatures: cmd.baseFeatures,
		})
		if err != nil {
			return err
		}
		forecast = f
		return nil
	}); err != nil {
		return err
	}

	logs := forecastLogs(forecast)
	if len(forecast.ScenarioDeltas) > 0 {
		logs = append(logs, terminal.NewListLog("Scenario changes", deltaRows(forecast.ScenarioDeltas)...))
	}
	ui.Print(logs...)
	return nil
}

