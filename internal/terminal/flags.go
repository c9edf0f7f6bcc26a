package terminal

import (
	"fmt"
	"strings"
)

// set of terminal ui flags
const (
	FlagOutputTarget      = "output-target"
	FlagOutputTargetShort = "o"
	FlagOutputTargetUsage = "write CLI output to the specified filepath"

	FlagOutputFormat      = "output-format"
	FlagOutputFormatShort = "f"
	FlagOutputFormatUsage = `set the CLI output format, available options: [json]`

	FlagDisableColors      = "disable-colors"
	FlagDisableColorsUsage = "disable all CLI output styling (e.g. colors, font styles, etc.)"

	FlagAutoConfirm      = "yes"
	FlagAutoConfirmShort = "y"
	FlagAutoConfirmUsage = "set to automatically proceed through command confirmations"
)

// OutputFormat is the terminal output format
type OutputFormat string

func (of OutputFormat) String() string {
	if of == OutputFormatText {
		return "<blank>"
	}
	return string(of)
}

// Type returns the OutputFormat type
func (of OutputFormat) Type() string { return "string" }

// Set validates and sets the output format value
func (of *OutputFormat) Set(val string) error {
	outputFormat := OutputFormat(val)
	if !isValidOutputFormat(outputFormat) {
		return fmt.Errorf(
			"unsupported value, use one of [%s] instead",
			strings.Join([]string{OutputFormatText.String(), OutputFormatJSON.String()}, ", "),
		)
	}

	*of = outputFormat
	return nil
}

// set of supported terminal output formats
const (
	OutputFormatText OutputFormat = "" // zero-valued to be flag's default
	OutputFormatJSON OutputFormat = "json"
)

func isValidOutputFormat(outputFormat OutputFormat) bool {
	return outputFormat == OutputFormatText || outputFormat == OutputFormatJSON
}
