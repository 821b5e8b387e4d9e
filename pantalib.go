// Package pantalib computes technical analysis indicators over labeled,
// time-indexed OHLCV tables. The indicator math is delegated to go-talib;
// results are aligned back onto the input index.
package pantalib

import (
	"github.com/raykavin/pantalib/pkg/indicator"
	"github.com/raykavin/pantalib/pkg/logger"
)

// Version of the pantalib module
const Version = "0.1.0"

// CatalogVersion is the numeric backend release the indicator list targets
const CatalogVersion = indicator.CatalogVersion

// DefaultLog is the default logger instance, configured from PANTALIB_LOG_* variables
var DefaultLog logger.Logger
