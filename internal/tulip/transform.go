package tulip

import "math"

// ---------------------------------------
// Simple transforms
// ---------------------------------------

func init() {
	register(
		Function{
			Name: "lag", FullName: "Lag", Type: TypeMath,
			Inputs: inReal, Options: []Option{period("period", 1)}, Outputs: []string{"lag"},
			Start: periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				out := make([]float64, len(in[0]))
				copy(out[opt(o, 0):], in[0])
				return single(out)
			},
		},
		Function{
			Name: "decay", FullName: "Linear Decay", Type: TypeMath,
			Inputs: inReal, Options: []Option{period("period", 1)}, Outputs: []string{"decay"},
			Start: fixedStart(0),
			call: func(in [][]float64, o []float64) [][]float64 {
				step := 1 / float64(opt(o, 0))
				return single(decay(in[0], func(previous float64) float64 { return previous - step }))
			},
		},
		Function{
			Name: "edecay", FullName: "Exponential Decay", Type: TypeMath,
			Inputs: inReal, Options: []Option{period("period", 1)}, Outputs: []string{"edecay"},
			Start: fixedStart(0),
			call: func(in [][]float64, o []float64) [][]float64 {
				scale := 1 - 1/float64(opt(o, 0))
				return single(decay(in[0], func(previous float64) float64 { return previous * scale }))
			},
		},
		Function{
			Name: "crossover", FullName: "Crossover", Type: TypeMath,
			Inputs: []string{"real", "real"}, Outputs: []string{"crossover"},
			Start: fixedStart(1),
			call: func(in [][]float64, _ []float64) [][]float64 {
				return single(cross(in[0], in[1], false))
			},
		},
		Function{
			Name: "crossany", FullName: "Crossany", Type: TypeMath,
			Inputs: []string{"real", "real"}, Outputs: []string{"crossany"},
			Start: fixedStart(1),
			call: func(in [][]float64, _ []float64) [][]float64 {
				return single(cross(in[0], in[1], true))
			},
		},
	)
}

// decay keeps the input unless the decayed previous output is higher
func decay(values []float64, next func(previous float64) float64) []float64 {
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = math.Max(values[i], next(out[i-1]))
	}
	return out
}

// cross flags with 1 the rows where a crosses above b, or below it too when
// both directions count
func cross(a, b []float64, both bool) []float64 {
	out := make([]float64, len(a))
	for i := 1; i < len(a); i++ {
		above := a[i] > b[i] && a[i-1] <= b[i-1]
		below := a[i] < b[i] && a[i-1] >= b[i-1]
		if above || (both && below) {
			out[i] = 1
		}
	}
	return out
}
