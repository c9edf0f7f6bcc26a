package mock

import (
	"bytes"
	"time"

	"github.com/ldxinsight/ldx-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

// UIOptions are the options to configure the mock terminal UI
type UIOptions struct {
	AutoConfirm bool
	UseJSON     bool
}

// StaticTime represents a time.Time that displays the clock as 01:23:45
var StaticTime = time.Date(1989, 6, 22, 1, 23, 45, 0, time.UTC)

// UI is a mocked terminal UI
// Every printed log is stamped with StaticTime, and prompts are answered
// by the configured functions (or fail when none is set)
type UI struct {
	terminal.UI
	AskOneFn  func(answer interface{}, prompt survey.Prompt) error
	ConfirmFn func(message string, defaultValue bool) (bool, error)
}

// AskOne calls the mocked AskOne implementation if provided,
// otherwise the call falls back to the underlying terminal.UI implementation
func (ui UI) AskOne(answer interface{}, prompt survey.Prompt) error {
	if ui.AskOneFn != nil {
		return ui.AskOneFn(answer, prompt)
	}
	return ui.UI.AskOne(answer, prompt)
}

// Confirm calls the mocked Confirm implementation if provided,
// otherwise the call falls back to the underlying terminal.UI implementation
func (ui UI) Confirm(message string, defaultValue bool) (bool, error) {
	if ui.ConfirmFn != nil {
		return ui.ConfirmFn(message, defaultValue)
	}
	return ui.UI.Confirm(message, defaultValue)
}

// Print prints the logs at StaticTime
func (ui UI) Print(logs ...terminal.Log) {
	for i := range logs {
		logs[i].Time = StaticTime
	}
	ui.UI.Print(logs...)
}

// NewUI returns a new *bytes.Buffer which captures every output
// along with the mocked terminal UI writing to it
func NewUI() (*bytes.Buffer, UI) {
	return NewUIWithOptions(UIOptions{})
}

// NewUIWithOptions returns a new *bytes.Buffer which captures every output
// along with the mocked terminal UI configured with the provided options
func NewUIWithOptions(options UIOptions) (*bytes.Buffer, UI) {
	config := terminal.UIConfig{
		AutoConfirm:   options.AutoConfirm,
		DisableColors: true,
	}
	if options.UseJSON {
		config.OutputFormat = terminal.OutputFormatJSON
	}

	out := new(bytes.Buffer)
	return out, UI{UI: terminal.NewUI(config, new(bytes.Buffer), out, out)}
}
