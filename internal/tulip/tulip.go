// Package tulip exposes the go-talib routines in the tulip indicators calling
// convention: every routine takes its input arrays followed by its options as
// float64 values and returns one trimmed array per output, starting at the
// first fully warmed-up row.
package tulip

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Version identifies the set of routines exported by this catalog
const Version = "talib-0.2"

var (
	ErrInputCount  = errors.New("wrong number of inputs")
	ErrInputLength = errors.New("inputs have different lengths")
	ErrRoutine     = errors.New("numeric routine failed")
)

// Type groups routines the same way the tulip indicators library does
type Type string

const (
	TypeOverlay   Type = "overlay"
	TypeIndicator Type = "indicator"
	TypeMath      Type = "math"
	TypeSimple    Type = "simple"
)

// OptionKind tells how an option value is validated
type OptionKind int

const (
	KindPeriod   OptionKind = iota // integral, at least Min, at most the input length
	KindFactor                     // any finite value
	KindPositive                   // finite and greater than zero
)

// Option describes one scalar parameter of a routine
type Option struct {
	Name       string
	Kind       OptionKind
	Min        float64
	Default    float64
	HasDefault bool
}

// OptionError reports an option value rejected by a routine
type OptionError struct {
	Function string
	Option   string
	Value    float64
	Reason   string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("%s: invalid option %s=%v: %s", e.Function, e.Option, e.Value, e.Reason)
}

// Function is one exported routine and its metadata
type Function struct {
	Name     string
	FullName string
	Type     Type
	Inputs   []string
	Options  []Option
	Outputs  []string

	// Start returns how many leading rows are consumed before the first output
	Start func(options []float64) int

	check func(f Function, options []float64) *OptionError
	call  func(inputs [][]float64, options []float64) [][]float64
}

// Call validates the options and runs the routine. The returned arrays hold
// len(input)-Start(options) values each. A nil result with a nil error means
// the input is shorter than the warm-up window.
func (f Function) Call(inputs [][]float64, options []float64) (out [][]float64, err error) {
	if len(inputs) != len(f.Inputs) {
		return nil, fmt.Errorf("%s: %w: expected %d, got %d", f.Name, ErrInputCount, len(f.Inputs), len(inputs))
	}

	size := 0
	if len(inputs) > 0 {
		size = len(inputs[0])
	}
	for i := 1; i < len(inputs); i++ {
		if len(inputs[i]) != size {
			return nil, fmt.Errorf("%s: %w", f.Name, ErrInputLength)
		}
	}

	if err := f.validate(options, size); err != nil {
		return nil, err
	}

	start := f.Start(options)
	if start >= size {
		return nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%s: %w: %v", f.Name, ErrRoutine, r)
		}
	}()

	raw := f.call(inputs, options)
	out = make([][]float64, len(raw))
	for i, values := range raw {
		out[i] = values[start:]
	}

	return out, nil
}

func (f Function) validate(options []float64, size int) error {
	if len(options) != len(f.Options) {
		return &OptionError{
			Function: f.Name,
			Option:   "options",
			Value:    float64(len(options)),
			Reason:   fmt.Sprintf("expected %d options", len(f.Options)),
		}
	}

	for i, option := range f.Options {
		value := options[i]
		reason := ""

		switch {
		case math.IsNaN(value) || math.IsInf(value, 0):
			reason = "must be finite"
		case option.Kind == KindPeriod && value != math.Trunc(value):
			reason = "must be an integer"
		case option.Kind == KindPeriod && value < option.Min:
			reason = fmt.Sprintf("must be at least %v", option.Min)
		case option.Kind == KindPeriod && value > float64(size):
			reason = fmt.Sprintf("exceeds input length %d", size)
		case option.Kind == KindPositive && value <= 0:
			reason = "must be positive"
		}

		if reason != "" {
			return &OptionError{Function: f.Name, Option: option.Name, Value: value, Reason: reason}
		}
	}

	if f.check != nil {
		if err := f.check(f, options); err != nil {
			return err
		}
	}

	return nil
}

var catalog = make(map[string]Function)

func register(functions ...Function) {
	for _, f := range functions {
		if _, exists := catalog[f.Name]; exists {
			panic(fmt.Sprintf("tulip: routine %s registered twice", f.Name))
		}
		catalog[f.Name] = f
	}
}

// Lookup returns the routine exported under name
func Lookup(name string) (Function, bool) {
	f, ok := catalog[name]
	return f, ok
}

// Names returns the sorted names of every exported routine
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Input parameter lists shared by many routines
var (
	inReal = []string{"real"}
	inHL   = []string{"high", "low"}
	inHLC  = []string{"high", "low", "close"}
	inHLCV = []string{"high", "low", "close", "volume"}
	inOHLC = []string{"open", "high", "low", "close"}
)

func period(name string, minimum float64, def ...float64) Option {
	option := Option{Name: name, Kind: KindPeriod, Min: minimum}
	if len(def) > 0 {
		option.Default, option.HasDefault = def[0], true
	}
	return option
}

func factor(name string, kind OptionKind, def ...float64) Option {
	option := Option{Name: name, Kind: kind}
	if len(def) > 0 {
		option.Default, option.HasDefault = def[0], true
	}
	return option
}

// opt reads option i as an integer period
func opt(options []float64, i int) int {
	return int(options[i])
}

func fixedStart(n int) func([]float64) int {
	return func([]float64) int { return n }
}

// periodStart returns a warm-up of period*mul+add rows, period being option i
func periodStart(i, mul, add int) func([]float64) int {
	return func(options []float64) int { return opt(options, i)*mul + add }
}

// ordered rejects options whose periods decrease, e.g. a long period shorter than the short one
func ordered(first, second int) func(Function, []float64) *OptionError {
	return func(f Function, options []float64) *OptionError {
		if options[second] < options[first] {
			return &OptionError{
				Function: f.Name,
				Option:   f.Options[second].Name,
				Value:    options[second],
				Reason:   fmt.Sprintf("must not be lower than %s", f.Options[first].Name),
			}
		}
		return nil
	}
}

func single(values []float64) [][]float64 {
	return [][]float64{values}
}
