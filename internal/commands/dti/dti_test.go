package dti

import (
	"context"
	"errors"
	"testing"

	"github.com/ldxinsight/ldx-cli/internal/auth"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/utils/test/assert"
	"github.com/ldxinsight/ldx-cli/internal/utils/test/mock"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

var testForecast = hub.Forecast{
	Province:     "Ha Noi",
	Year:         2025,
	PillarScores: map[string]float64{"infrastructure": 0.71, "government": 0.6532},
	DTI:          0.68217,
}

func TestForecastInputs(t *testing.T) {
	t.Run("Should prompt for the province and year", func(t *testing.T) {
		_, ui := mock.NewUI()
		ui.AskOneFn = func(answer interface{}, prompt survey.Prompt) error {
			switch prompt.(*survey.Input).Message {
			case "Province":
				*(answer.(*string)) = "Da Nang"
			case "Year":
				*(answer.(*string)) = "2026"
			}
			return nil
		}

		var inputs forecastInputs
		assert.Nil(t, inputs.Resolve(mock.NewProfile(t), ui))
		assert.Equal(t, forecastInputs{Province: "Da Nang", Year: 2026}, inputs)
	})

	t.Run("Should reject a year that is not a number", func(t *testing.T) {
		_, ui := mock.NewUI()
		ui.AskOneFn = func(answer interface{}, prompt survey.Prompt) error {
			*(answer.(*string)) = "next year"
			return nil
		}

		inputs := forecastInputs{Province: "Da Nang"}
		assert.Equal(t, errInvalidYear, inputs.Resolve(mock.NewProfile(t), ui))
	})

	t.Run("Should not prompt when flags are provided", func(t *testing.T) {
		_, ui := mock.NewUI()
		ui.AskOneFn = func(answer interface{}, prompt survey.Prompt) error {
			t.Fatal("unexpected prompt")
			return nil
		}

		inputs := forecastInputs{Province: "Ha Noi", Year: 2025}
		assert.Nil(t, inputs.Resolve(mock.NewProfile(t), ui))
	})
}

func TestForecastHandler(t *testing.T) {
	t.Run("Should show the forecast with the feature overrides", func(t *testing.T) {
		var capturedReq hub.ForecastRequest
		hubClient := mock.HubClient{}
		hubClient.ForecastFn = func(ctx context.Context, req hub.ForecastRequest) (hub.Forecast, error) {
			capturedReq = req
			return testForecast, nil
		}

		clients, _ := mock.NewClients(t, hubClient, "/diagnose", auth.Session{})
		out, ui := mock.NewUI()

		cmd := &CommandForecast{}
		fs := pflag.NewFlagSet("forecast", pflag.ContinueOnError)
		cmd.Flags(fs)
		assert.Nil(t, fs.Parse([]string{"--province", "Ha Noi", "--year", "2025", "--feature", "broadband=0.8,egov=0.5"}))

		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, clients))

		assert.Equal(t, hub.ForecastRequest{
			Province: "Ha Noi",
			Year:     2025,
			Features: hub.FeatureVector{"broadband": 0.8, "egov": 0.5},
		}, capturedReq)
		assert.Equal(t, `01:23:45 UTC INFO  DTI forecast for Ha Noi in 2025: 0.6822
01:23:45 UTC INFO  Pillar scores
  Pillar          Score
  --------------  ------
  government      0.6532
  infrastructure  0.7100
`, out.String())
	})

	t.Run("Should return the client error", func(t *testing.T) {
		hubClient := mock.HubClient{}
		hubClient.ForecastFn = func(ctx context.Context, req hub.ForecastRequest) (hub.Forecast, error) {
			return hub.Forecast{}, errors.New("unknown province")
		}

		clients, _ := mock.NewClients(t, hubClient, "/diagnose", auth.Session{})
		_, ui := mock.NewUI()

		cmd := &CommandForecast{inputs: forecastInputs{Province: "Atlantis", Year: 2025}}
		assert.Equal(t, errors.New("unknown province"), cmd.Handler(mock.NewProfile(t), ui, clients))
	})
}

func TestSimulateHandler(t *testing.T) {
	t.Run("Should show the simulated forecast and its changes", func(t *testing.T) {
		var capturedReq hub.SimulationRequest
		hubClient := mock.HubClient{}
		hubClient.SimulateFn = func(ctx context.Context, req hub.SimulationRequest) (hub.Forecast, error) {
			capturedReq = req
			forecast := testForecast
			forecast.ScenarioDeltas = req.Deltas
			return forecast, nil
		}

		clients, _ := mock.NewClients(t, hubClient, "/simulator", auth.Session{})
		out, ui := mock.NewUI()

		cmd := &CommandSimulate{}
		fs := pflag.NewFlagSet("simulate", pflag.ContinueOnError)
		cmd.Flags(fs)
		assert.Nil(t, fs.Parse([]string{
			"--province", "Ha Noi",
			"--year", "2025",
			"--delta", "broadband=0.1",
			"--delta", "egov=-0.05",
			"--base-feature", "broadband=0.6",
		}))

		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, clients))

		assert.Equal(t, hub.SimulationRequest{
			Province:     "Ha Noi",
			Year:         2025,
			Deltas:       map[string]float64{"broadband": 0.1, "egov": -0.05},
			BaseFeatures: hub.FeatureVector{"broadband": 0.6},
		}, capturedReq)
		assert.Contains(t, out.String(), "DTI forecast for Ha Noi in 2025: 0.6822\n")
		assert.Contains(t, out.String(), "01:23:45 UTC INFO  Scenario changes\n  broadband +0.1\n  egov -0.05\n")
	})
}
