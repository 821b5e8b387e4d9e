// Package batch computes many indicators over the same frame concurrently.
package batch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/raykavin/pantalib/pkg/core"
)

var ErrInvalidRequest = errors.New("invalid request")

// Request names one indicator computation: the indicator and its positional options
type Request struct {
	Name    string    `yaml:"name"`
	Options []float64 `yaml:"options,omitempty"`
}

// ParseRequest parses the "name:option,option" form, e.g. "bbands:20,2" or "obv"
func ParseRequest(value string) (Request, error) {
	name, rawOptions, hasOptions := strings.Cut(strings.TrimSpace(value), ":")
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Request{}, fmt.Errorf("%w: missing indicator name in %q", ErrInvalidRequest, value)
	}

	request := Request{Name: name}
	if !hasOptions || strings.TrimSpace(rawOptions) == "" {
		return request, nil
	}

	for _, raw := range strings.Split(rawOptions, ",") {
		option, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Request{}, fmt.Errorf("%w: option %q of %s: %v", ErrInvalidRequest, raw, name, err)
		}
		request.Options = append(request.Options, option)
	}

	return request, nil
}

// ParseRequests parses every value with ParseRequest
func ParseRequests(values ...string) ([]Request, error) {
	requests := make([]Request, 0, len(values))
	for _, value := range values {
		request, err := ParseRequest(value)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, nil
}

// String formats the request back into the "name:option,option" form
func (r Request) String() string {
	if len(r.Options) == 0 {
		return r.Name
	}

	options := lo.Map(r.Options, func(option float64, _ int) string {
		return core.FormatWithOptimalPrecision(option, 8)
	})
	return r.Name + ":" + strings.Join(options, ",")
}
