package telemetry

import (
	"fmt"
	"strings"
)

// set of telemetry flags
const (
	FlagMode      = "telemetry"
	FlagModeUsage = "enable or disable telemetry for this profile, available options: [on, stdout, off]"
)

// Mode is the telemetry mode
type Mode string

// NewMode creates a new Mode from the provided string, defaulting to ModeEmpty
func NewMode(s string) Mode {
	mode := Mode(s)
	if !isValidMode(mode) {
		return ModeEmpty
	}
	return mode
}

// String returns the mode display
func (m Mode) String() string { return string(m) }

// Type returns the Mode type
func (m Mode) Type() string { return "string" }

// Set validates and sets the mode value
func (m *Mode) Set(val string) error {
	mode := Mode(val)

	if !isValidMode(mode) {
		allModes := []string{ModeOn.String(), ModeStdout.String(), ModeOff.String()}
		return fmt.Errorf("unsupported value, use one of [%s] instead", strings.Join(allModes, ", "))
	}

	*m = mode
	return nil
}

// set of supported telemetry modes
const (
	ModeEmpty  Mode = "" // zero-valued to be flag's default
	ModeOn     Mode = "on"
	ModeStdout Mode = "stdout"
	ModeOff    Mode = "off"
)

func isValidMode(mode Mode) bool {
	switch mode {
	case
		ModeEmpty,
		ModeOn,
		ModeStdout,
		ModeOff:
		return true
	}
	return false
}
