package indicator

import (
	"fmt"
	"strings"

	"github.com/raykavin/pantalib/internal/tulip"
	"github.com/raykavin/pantalib/pkg/core"
)

// Option is an extra scalar parameter of an indicator
type Option struct {
	Name       string
	Default    float64
	HasDefault bool
}

// Descriptor is the static metadata of one indicator: the ordered input roles
// it consumes, its options and the names of its outputs
type Descriptor struct {
	Name     string
	FullName string
	Type     string
	Inputs   []Role
	Options  []Option
	Outputs  []string

	routine tulip.Function
}

func newDescriptor(routine tulip.Function) (Descriptor, error) {
	desc := Descriptor{
		Name:     routine.Name,
		FullName: routine.FullName,
		Type:     string(routine.Type),
		Inputs:   make([]Role, 0, len(routine.Inputs)),
		Options:  make([]Option, 0, len(routine.Options)),
		Outputs:  append([]string(nil), routine.Outputs...),
		routine:  routine,
	}

	for _, param := range routine.Inputs {
		role, err := ParseRole(param)
		if err != nil {
			return Descriptor{}, fmt.Errorf("%s: %w", routine.Name, err)
		}
		desc.Inputs = append(desc.Inputs, role)
	}

	for _, option := range routine.Options {
		desc.Options = append(desc.Options, Option{
			Name:       option.Name,
			Default:    option.Default,
			HasDefault: option.HasDefault,
		})
	}

	return desc, nil
}

// Code returns the uppercase short code used to name result series
func (d Descriptor) Code() string {
	return strings.ToUpper(d.Name)
}

// Columns returns the dataframe columns read by the indicator, in declaration order
func (d Descriptor) Columns() []string {
	columns := make([]string, len(d.Inputs))
	for i, role := range d.Inputs {
		columns[i] = role.Column()
	}
	return columns
}

// Warmup returns the number of leading rows consumed before the first computed value
func (d Descriptor) Warmup(options ...float64) (int, error) {
	resolved, err := d.resolve(options)
	if err != nil {
		return 0, err
	}
	return d.routine.Start(resolved), nil
}

// resolve merges positional options with the declared defaults
func (d Descriptor) resolve(options []float64) ([]float64, error) {
	if len(options) > len(d.Options) {
		return nil, &InvalidOptionError{
			Indicator: d.Code(),
			Option:    "options",
			Value:     float64(len(options)),
			Reason:    fmt.Sprintf("takes at most %d options", len(d.Options)),
		}
	}

	resolved := make([]float64, len(d.Options))
	for i, option := range d.Options {
		switch {
		case i < len(options):
			resolved[i] = options[i]
		case option.HasDefault:
			resolved[i] = option.Default
		default:
			return nil, &InvalidOptionError{
				Indicator: d.Code(),
				Option:    option.Name,
				Missing:   true,
				Reason:    "is required",
			}
		}
	}

	return resolved, nil
}

// Labels returns one column label per output: the code alone for single
// output indicators, the uppercase output names otherwise (e.g. BBANDS_UPPER)
func (d Descriptor) Labels() []string {
	if len(d.Outputs) == 1 {
		return []string{d.Code()}
	}

	labels := make([]string, len(d.Outputs))
	for i, output := range d.Outputs {
		labels[i] = strings.ToUpper(output)
	}
	return labels
}

// LabelsWith suffixes every label with the resolved option values so that
// one indicator computed with different options keeps distinct columns
// (e.g. SMA_20, BBANDS_UPPER_20_2)
func (d Descriptor) LabelsWith(options ...float64) []string {
	resolved, err := d.resolve(options)
	if err != nil {
		resolved = options
	}

	labels := d.Labels()
	if len(resolved) == 0 {
		return labels
	}

	parts := make([]string, len(resolved))
	for i, value := range resolved {
		parts[i] = core.FormatWithOptimalPrecision(value, 8)
	}
	suffix := strings.Join(parts, "_")

	for i := range labels {
		labels[i] += "_" + suffix
	}
	return labels
}
