package terminal

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
)

// UI is a terminal UI
type UI interface {
	AutoConfirm() bool
	AskOne(answer interface{}, prompt survey.Prompt) error
	Confirm(message string, defaultValue bool) (bool, error)
	Print(logs ...Log)
}

// UIConfig holds the global config for the CLI ui
type UIConfig struct {
	AutoConfirm   bool
	DisableColors bool
	OutputFormat  OutputFormat
	OutputTarget  string
}

// NewUI creates a new terminal UI
func NewUI(config UIConfig, in io.Reader, out, err io.Writer) UI {
	noColor := config.DisableColors
	if config.OutputFormat == OutputFormatJSON || config.OutputTarget != "" {
		noColor = true
	}
	color.NoColor = noColor

	return &ui{
		config: config,
		in:     in,
		out:    out,
		err:    err,
	}
}

type ui struct {
	config UIConfig
	in     io.Reader
	out    io.Writer
	err    io.Writer
}

func (ui *ui) AutoConfirm() bool {
	return ui.config.AutoConfirm
}

func (ui *ui) AskOne(answer interface{}, prompt survey.Prompt) error {
	return survey.AskOne(prompt, answer, survey.WithStdio(ui.stdio()))
}

func (ui *ui) Confirm(message string, defaultValue bool) (bool, error) {
	if ui.config.AutoConfirm {
		return true, nil
	}

	proceed := defaultValue
	if err := ui.AskOne(&proceed, &survey.Confirm{Message: message, Default: defaultValue}); err != nil {
		return false, err
	}
	return proceed, nil
}

func (ui *ui) Print(logs ...Log) {
	for _, log := range logs {
		writer := ui.out
		if log.Level == LogLevelError {
			writer = ui.err
		}

		output, err := log.Print(ui.config.OutputFormat)
		if err != nil {
			fmt.Fprintln(ui.err, err)
			continue
		}
		fmt.Fprintln(writer, output)
	}
}

func (ui *ui) stdio() (terminal.FileReader, terminal.FileWriter, io.Writer) {
	in, ok := ui.in.(terminal.FileReader)
	if !ok {
		in = noopFdReader{ui.in}
	}
	out, ok := ui.out.(terminal.FileWriter)
	if !ok {
		out = noopFdWriter{ui.out}
	}
	return in, out, ui.err
}

type noopFdReader struct {
	io.Reader
}

func (r noopFdReader) Fd() uintptr {
	return 0
}

type noopFdWriter struct {
	io.Writer
}

func (w noopFdWriter) Fd() uintptr {
	return 0
}
