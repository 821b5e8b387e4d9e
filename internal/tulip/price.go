package tulip

import "github.com/markcheno/go-talib"

// ---------------------------------------
// Price Transform Functions
// ---------------------------------------

func init() {
	register(
		Function{
			Name: "avgprice", FullName: "Average Price", Type: TypeOverlay,
			Inputs: inOHLC, Outputs: []string{"avgprice"},
			Start: fixedStart(0),
			call: func(in [][]float64, _ []float64) [][]float64 {
				return single(talib.AvgPrice(in[0], in[1], in[2], in[3]))
			},
		},
		Function{
			Name: "medprice", FullName: "Median Price", Type: TypeOverlay,
			Inputs: inHL, Outputs: []string{"medprice"},
			Start: fixedStart(0),
			call: func(in [][]float64, _ []float64) [][]float64 {
				return single(talib.MedPrice(in[0], in[1]))
			},
		},
		Function{
			Name: "typprice", FullName: "Typical Price", Type: TypeOverlay,
			Inputs: inHLC, Outputs: []string{"typprice"},
			Start: fixedStart(0),
			call: func(in [][]float64, _ []float64) [][]float64 {
				return single(talib.TypPrice(in[0], in[1], in[2]))
			},
		},
		Function{
			Name: "wcprice", FullName: "Weighted Close Price", Type: TypeOverlay,
			Inputs: inHLC, Outputs: []string{"wcprice"},
			Start: fixedStart(0),
			call: func(in [][]float64, _ []float64) [][]float64 {
				return single(talib.WclPrice(in[0], in[1], in[2]))
			},
		},
	)
}
