package indicator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/raykavin/pantalib/internal/tulip"
)

// CatalogVersion is the numeric backend release the Supported list was written against
const CatalogVersion = tulip.Version

// Supported lists every indicator exposed by this package
var Supported = []string{
	"ad", "adosc", "adx", "adxr", "ao", "apo", "aroon", "aroonosc", "atr", "avgprice",
	"bbands", "bop", "cci", "cmo", "crossany", "crossover", "cvi", "decay", "dema", "di",
	"dm", "dpo", "dx", "edecay", "ema", "emv", "fisher", "fosc", "hma", "kama",
	"kvo", "lag", "linreg", "linregintercept", "linregslope", "macd", "marketfi", "mass", "max", "md",
	"medprice", "mfi", "midpoint", "midprice", "min", "mom", "msw", "natr", "nvi", "obv",
	"ppo", "psar", "pvi", "qstick", "roc", "rocr", "rsi", "sma", "stddev", "stderr",
	"stoch", "stochrsi", "sum", "supertrend", "t3", "tema", "tr", "trima", "trix", "tsf",
	"typprice", "ultosc", "var", "vhf", "vidya", "volatility", "vosc", "vwma", "wad", "wcprice",
	"wilders", "willr", "wma", "zlema",
}

// Registry maps indicator names to their descriptors. It is immutable once
// built and safe for concurrent use.
type Registry struct {
	descriptors map[string]Descriptor
	names       []string
}

var defaultRegistry = mustRegistry(NewRegistry(Supported...))

func mustRegistry(registry *Registry, err error) *Registry {
	if err != nil {
		panic(err)
	}
	return registry
}

// Default returns the registry of every Supported indicator
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry builds a registry for the given indicators, failing when the
// numeric backend does not export one of them
func NewRegistry(names ...string) (*Registry, error) {
	return newRegistry(names, tulip.Lookup)
}

func newRegistry(names []string, lookup func(string) (tulip.Function, bool)) (*Registry, error) {
	registry := &Registry{
		descriptors: make(map[string]Descriptor, len(names)),
		names:       make([]string, 0, len(names)),
	}

	for _, name := range names {
		key := normalize(name)
		if _, exists := registry.descriptors[key]; exists {
			return nil, fmt.Errorf("NewRegistry: indicator %s listed twice", key)
		}

		routine, ok := lookup(key)
		if !ok {
			return nil, fmt.Errorf("NewRegistry: indicator %s not exported by numeric backend %s", key, CatalogVersion)
		}

		desc, err := newDescriptor(routine)
		if err != nil {
			return nil, fmt.Errorf("NewRegistry: %w", err)
		}

		registry.descriptors[key] = desc
		registry.names = append(registry.names, key)
	}

	sort.Strings(registry.names)
	return registry, nil
}

// Lookup returns the descriptor of the named indicator, ignoring case
func (r *Registry) Lookup(name string) (Descriptor, error) {
	desc, ok := r.descriptors[normalize(name)]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownIndicator, name)
	}
	return desc, nil
}

// Names returns the sorted names of the registered indicators
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Descriptors returns every descriptor sorted by name
func (r *Registry) Descriptors() []Descriptor {
	descriptors := make([]Descriptor, 0, len(r.names))
	for _, name := range r.names {
		descriptors = append(descriptors, r.descriptors[name])
	}
	return descriptors
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
