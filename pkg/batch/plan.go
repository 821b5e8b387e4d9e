package batch

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/raykavin/pantalib/pkg/indicator"
)

// Plan is a YAML list of indicator requests, e.g.
//
//	pair: BTCUSDT
//	indicators:
//	  - name: sma
//	    options: [20]
//	  - name: bbands
//	    options: [20, 2]
type Plan struct {
	Pair       string    `yaml:"pair,omitempty"`
	Indicators []Request `yaml:"indicators"`
}

// LoadPlan reads a plan from a YAML file
func LoadPlan(path string) (*Plan, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParsePlan(file)
}

// ParsePlan decodes a YAML plan from r
func ParsePlan(r io.Reader) (*Plan, error) {
	var plan Plan

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}

	if len(plan.Indicators) == 0 {
		return nil, fmt.Errorf("%w: plan has no indicators", ErrInvalidRequest)
	}

	return &plan, nil
}

// Validate checks that every requested indicator exists in registry
func (p Plan) Validate(registry *indicator.Registry) error {
	for i, request := range p.Indicators {
		if _, err := registry.Lookup(request.Name); err != nil {
			return fmt.Errorf("indicator #%d: %w", i+1, err)
		}
	}
	return nil
}
