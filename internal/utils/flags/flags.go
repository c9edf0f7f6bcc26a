package flags

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// MarkHidden marks the flag as hidden from the command usage
func MarkHidden(fs *pflag.FlagSet, name string) {
	if err := fs.MarkHidden(name); err != nil {
		panic(err)
	}
}

// EnumValue is a string flag restricted to a set of valid values
type EnumValue struct {
	value       *string
	validValues []string
}

// NewEnum creates an EnumValue pointing at p, initialized to the default value
func NewEnum(p *string, defaultValue string, validValues ...string) *EnumValue {
	*p = defaultValue
	return &EnumValue{p, validValues}
}

// Set validates and sets the enum value
func (ev *EnumValue) Set(val string) error {
	for _, valid := range ev.validValues {
		if val == valid {
			*ev.value = val
			return nil
		}
	}
	return fmt.Errorf(`unsupported value, use one of ["%s"] instead`, strings.Join(ev.validValues, `", "`))
}

// Type returns the EnumValue type
func (ev *EnumValue) Type() string { return "string" }

func (ev *EnumValue) String() string { return *ev.value }

// FloatMapValue is a repeatable "key=value" flag collecting numeric values
type FloatMapValue struct {
	values  *map[string]float64
	changed bool
}

// NewFloatMap creates a FloatMapValue pointing at p
func NewFloatMap(p *map[string]float64) *FloatMapValue {
	return &FloatMapValue{values: p}
}

// Set parses and adds the comma-separated "key=value" pairs
func (fmv *FloatMapValue) Set(val string) error {
	if !fmv.changed || *fmv.values == nil {
		*fmv.values = map[string]float64{}
	}
	fmv.changed = true

	for _, pair := range strings.Split(val, ",") {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			return errors.New(`must be formatted as "key=value"`)
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return fmt.Errorf("value of %s must be a number", parts[0])
		}
		(*fmv.values)[strings.TrimSpace(parts[0])] = value
	}
	return nil
}

// Type returns the FloatMapValue type
func (fmv *FloatMapValue) Type() string { return "key=value" }

func (fmv *FloatMapValue) String() string {
	if fmv.values == nil || len(*fmv.values) == 0 {
		return ""
	}

	keys := make([]string, 0, len(*fmv.values))
	for key := range *fmv.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, key := range keys {
		pairs[i] = fmt.Sprintf("%s=%s", key, strconv.FormatFloat((*fmv.values)[key], 'f', -1, 64))
	}
	return strings.Join(pairs, ",")
}
