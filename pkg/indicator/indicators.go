package indicator

import "github.com/raykavin/pantalib/pkg/core"

func single(name string, frame core.Frame, options ...float64) (*core.TimeSeries, error) {
	results, err := Compute(name, frame, options...)
	if err != nil || results == nil {
		return nil, err
	}
	return results[0], nil
}

func pair(name string, frame core.Frame, options ...float64) (*core.TimeSeries, *core.TimeSeries, error) {
	results, err := Compute(name, frame, options...)
	if err != nil || results == nil {
		return nil, nil, err
	}
	return results[0], results[1], nil
}

func triple(name string, frame core.Frame, options ...float64) (*core.TimeSeries, *core.TimeSeries, *core.TimeSeries, error) {
	results, err := Compute(name, frame, options...)
	if err != nil || results == nil {
		return nil, nil, nil, err
	}
	return results[0], results[1], results[2], nil
}

// ------------------------------------------
// Overlap Studies (Moving Averages, Bands)
// ------------------------------------------

// SMA calculates Simple Moving Average (recommended period 5)
func SMA(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("sma", frame, float64(period))
}

// EMA calculates Exponential Moving Average (recommended period 5)
func EMA(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("ema", frame, float64(period))
}

// WMA calculates Weighted Moving Average
func WMA(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("wma", frame, float64(period))
}

// DEMA calculates Double Exponential Moving Average
func DEMA(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("dema", frame, float64(period))
}

// TEMA calculates Triple Exponential Moving Average
func TEMA(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("tema", frame, float64(period))
}

// TRIMA calculates Triangular Moving Average
func TRIMA(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("trima", frame, float64(period))
}

// KAMA calculates Kaufman Adaptive Moving Average
func KAMA(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("kama", frame, float64(period))
}

// T3 calculates Triple Exponential Moving Average (T3), vFactor is usually 0.7
func T3(frame core.Frame, period int, vFactor float64) (*core.TimeSeries, error) {
	return single("t3", frame, float64(period), vFactor)
}

// BBands calculates Bollinger Bands
// Returns lower, middle, and upper bands
func BBands(frame core.Frame, period int, stddev float64) (lower, middle, upper *core.TimeSeries, err error) {
	return triple("bbands", frame, float64(period), stddev)
}

// MidPoint calculates MidPoint over period
func MidPoint(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("midpoint", frame, float64(period))
}

// MidPrice calculates MidPrice over period
func MidPrice(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("midprice", frame, float64(period))
}

// PSAR calculates Parabolic SAR (Stop And Reverse), usually with step 0.02 and maximum 0.2
func PSAR(frame core.Frame, accelerationStep, accelerationMaximum float64) (*core.TimeSeries, error) {
	return single("psar", frame, accelerationStep, accelerationMaximum)
}

// VWMA calculates Volume Weighted Moving Average
func VWMA(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("vwma", frame, float64(period))
}

// SuperTrend calculates the SuperTrend line (recommended period 10, factor 3)
func SuperTrend(frame core.Frame, period int, factor float64) (*core.TimeSeries, error) {
	return single("supertrend", frame, float64(period), factor)
}

// HMA calculates Hull Moving Average
func HMA(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("hma", frame, float64(period))
}

// ZLEMA calculates Zero-Lag Exponential Moving Average
func ZLEMA(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("zlema", frame, float64(period))
}

// Wilders calculates Wilders Smoothing
func Wilders(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("wilders", frame, float64(period))
}

// VIDYA calculates Variable Index Dynamic Average. Alpha scales the ratio
// between the short and long standard deviations, 0.2 is a common choice.
func VIDYA(frame core.Frame, shortPeriod, longPeriod int, alpha float64) (*core.TimeSeries, error) {
	return single("vidya", frame, float64(shortPeriod), float64(longPeriod), alpha)
}

// ---------------------------------------
// Momentum Indicators
// ---------------------------------------

// ADX calculates Average Directional Movement Index
func ADX(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("adx", frame, float64(period))
}

// ADXR calculates Average Directional Movement Index Rating
func ADXR(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("adxr", frame, float64(period))
}

// AO calculates Awesome Oscillator
func AO(frame core.Frame) (*core.TimeSeries, error) {
	return single("ao", frame)
}

// APO calculates Absolute Price Oscillator
func APO(frame core.Frame, shortPeriod, longPeriod int) (*core.TimeSeries, error) {
	return single("apo", frame, float64(shortPeriod), float64(longPeriod))
}

// Aroon calculates Aroon indicator (recommended period 14)
// Returns aroonDown and aroonUp
func Aroon(frame core.Frame, period int) (down, up *core.TimeSeries, err error) {
	return pair("aroon", frame, float64(period))
}

// AroonOsc calculates Aroon Oscillator (recommended period 14)
func AroonOsc(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("aroonosc", frame, float64(period))
}

// BOP calculates Balance Of Power
func BOP(frame core.Frame) (*core.TimeSeries, error) {
	return single("bop", frame)
}

// CCI calculates Commodity Channel Index (recommended period 20)
func CCI(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("cci", frame, float64(period))
}

// CMO calculates Chande Momentum Oscillator
func CMO(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("cmo", frame, float64(period))
}

// DI calculates Directional Indicator
// Returns plusDI and minusDI
func DI(frame core.Frame, period int) (plus, minus *core.TimeSeries, err error) {
	return pair("di", frame, float64(period))
}

// DM calculates Directional Movement
// Returns plusDM and minusDM
func DM(frame core.Frame, period int) (plus, minus *core.TimeSeries, err error) {
	return pair("dm", frame, float64(period))
}

// DX calculates Directional Movement Index
func DX(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("dx", frame, float64(period))
}

// MACD calculates Moving Average Convergence/Divergence
// Returns MACD, signal, and histogram
func MACD(frame core.Frame, shortPeriod, longPeriod, signalPeriod int) (macd, signal, histogram *core.TimeSeries, err error) {
	return triple("macd", frame, float64(shortPeriod), float64(longPeriod), float64(signalPeriod))
}

// Mom calculates momentum indicator (recommended period 9)
func Mom(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("mom", frame, float64(period))
}

// PPO calculates Percentage Price Oscillator
func PPO(frame core.Frame, shortPeriod, longPeriod int) (*core.TimeSeries, error) {
	return single("ppo", frame, float64(shortPeriod), float64(longPeriod))
}

// QStick calculates the Qstick indicator
func QStick(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("qstick", frame, float64(period))
}

// ROC calculates Rate of Change: ((price/prevPrice)-1)*100 (recommended period 9)
func ROC(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("roc", frame, float64(period))
}

// ROCR calculates Rate of Change Ratio: (price/prevPrice) (recommended period 9)
func ROCR(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("rocr", frame, float64(period))
}

// RSI calculates Relative Strength Index (recommended period 14)
func RSI(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("rsi", frame, float64(period))
}

// Stoch calculates Stochastic Oscillator
// Returns %K and %D
func Stoch(frame core.Frame, kPeriod, kSlowingPeriod, dPeriod int) (k, d *core.TimeSeries, err error) {
	return pair("stoch", frame, float64(kPeriod), float64(kSlowingPeriod), float64(dPeriod))
}

// StochRSI calculates Stochastic RSI
func StochRSI(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("stochrsi", frame, float64(period))
}

// Trix calculates TRIX - 1-day Rate-of-Change of a Triple Smooth EMA
func Trix(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("trix", frame, float64(period))
}

// UltOsc calculates Ultimate Oscillator
func UltOsc(frame core.Frame, shortPeriod, mediumPeriod, longPeriod int) (*core.TimeSeries, error) {
	return single("ultosc", frame, float64(shortPeriod), float64(mediumPeriod), float64(longPeriod))
}

// WillR calculates Williams' %R (recommended period 14)
func WillR(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("willr", frame, float64(period))
}

// CVI calculates Chaikins Volatility
func CVI(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("cvi", frame, float64(period))
}

// DPO calculates Detrended Price Oscillator
func DPO(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("dpo", frame, float64(period))
}

// Fisher calculates Fisher Transform
// Returns the transform and its signal line
func Fisher(frame core.Frame, period int) (fisher, signal *core.TimeSeries, err error) {
	return pair("fisher", frame, float64(period))
}

// FOSC calculates Forecast Oscillator
func FOSC(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("fosc", frame, float64(period))
}

// Mass calculates Mass Index
func Mass(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("mass", frame, float64(period))
}

// MSW calculates Mesa Sine Wave
// Returns the sine and lead lines
func MSW(frame core.Frame, period int) (sine, lead *core.TimeSeries, err error) {
	return pair("msw", frame, float64(period))
}

// VHF calculates Vertical Horizontal Filter
func VHF(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("vhf", frame, float64(period))
}

// ---------------------------------------
// Volume Indicators
// ---------------------------------------

// AD calculates Chaikin A/D Line
func AD(frame core.Frame) (*core.TimeSeries, error) {
	return single("ad", frame)
}

// ADOsc calculates Chaikin A/D Oscillator (recommended periods 3 and 10)
func ADOsc(frame core.Frame, shortPeriod, longPeriod int) (*core.TimeSeries, error) {
	return single("adosc", frame, float64(shortPeriod), float64(longPeriod))
}

// MarketFI calculates Market Facilitation Index
func MarketFI(frame core.Frame) (*core.TimeSeries, error) {
	return single("marketfi", frame)
}

// MFI calculates Money Flow Index (recommended period 14)
func MFI(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("mfi", frame, float64(period))
}

// OBV calculates On Balance Volume
func OBV(frame core.Frame) (*core.TimeSeries, error) {
	return single("obv", frame)
}

// EMV calculates Ease of Movement
func EMV(frame core.Frame) (*core.TimeSeries, error) {
	return single("emv", frame)
}

// KVO calculates Klinger Volume Oscillator
func KVO(frame core.Frame, shortPeriod, longPeriod int) (*core.TimeSeries, error) {
	return single("kvo", frame, float64(shortPeriod), float64(longPeriod))
}

// NVI calculates Negative Volume Index
func NVI(frame core.Frame) (*core.TimeSeries, error) {
	return single("nvi", frame)
}

// PVI calculates Positive Volume Index
func PVI(frame core.Frame) (*core.TimeSeries, error) {
	return single("pvi", frame)
}

// VOSC calculates Volume Oscillator
func VOSC(frame core.Frame, shortPeriod, longPeriod int) (*core.TimeSeries, error) {
	return single("vosc", frame, float64(shortPeriod), float64(longPeriod))
}

// WAD calculates Williams Accumulation/Distribution
func WAD(frame core.Frame) (*core.TimeSeries, error) {
	return single("wad", frame)
}

// ---------------------------------------
// Volatility Indicators
// ---------------------------------------

// ATR calculates Average True Range (recommended period 14)
func ATR(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("atr", frame, float64(period))
}

// NATR calculates Normalized Average True Range (recommended period 14)
func NATR(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("natr", frame, float64(period))
}

// TR calculates True Range
func TR(frame core.Frame) (*core.TimeSeries, error) {
	return single("tr", frame)
}

// ---------------------------------------
// Price Transform Functions
// ---------------------------------------

// AvgPrice calculates Average Price
func AvgPrice(frame core.Frame) (*core.TimeSeries, error) {
	return single("avgprice", frame)
}

// MedPrice calculates Median Price
func MedPrice(frame core.Frame) (*core.TimeSeries, error) {
	return single("medprice", frame)
}

// TypPrice calculates Typical Price
func TypPrice(frame core.Frame) (*core.TimeSeries, error) {
	return single("typprice", frame)
}

// WCPrice calculates Weighted Close Price
func WCPrice(frame core.Frame) (*core.TimeSeries, error) {
	return single("wcprice", frame)
}

// ---------------------------------------
// Statistic Functions
// ---------------------------------------

// LinReg calculates Linear Regression (recommended period 50)
func LinReg(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("linreg", frame, float64(period))
}

// LinRegIntercept calculates Linear Regression Intercept (recommended period 50)
func LinRegIntercept(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("linregintercept", frame, float64(period))
}

// LinRegSlope calculates Linear Regression Slope (recommended period 50)
func LinRegSlope(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("linregslope", frame, float64(period))
}

// TSF calculates Time Series Forecast
func TSF(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("tsf", frame, float64(period))
}

// StdDev calculates Standard Deviation
func StdDev(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("stddev", frame, float64(period))
}

// Var calculates Variance
func Var(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("var", frame, float64(period))
}

// MD calculates Mean Deviation
func MD(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("md", frame, float64(period))
}

// StdErr calculates Standard Error
func StdErr(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("stderr", frame, float64(period))
}

// Volatility calculates Annualized Historical Volatility
func Volatility(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("volatility", frame, float64(period))
}

// ---------------------------------------
// Math Operator Functions
// ---------------------------------------

// Max calculates Highest value over period
func Max(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("max", frame, float64(period))
}

// Min calculates Lowest value over period
func Min(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("min", frame, float64(period))
}

// Sum calculates Summation over period
func Sum(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("sum", frame, float64(period))
}

// Lag shifts the close column period rows forward
func Lag(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("lag", frame, float64(period))
}

// Decay calculates Linear Decay
func Decay(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("decay", frame, float64(period))
}

// EDecay calculates Exponential Decay
func EDecay(frame core.Frame, period int) (*core.TimeSeries, error) {
	return single("edecay", frame, float64(period))
}

// CrossOver flags the rows where the close crosses above itself, which never
// happens on a dataframe. Both inputs resolve to the close column.
func CrossOver(frame core.Frame) (*core.TimeSeries, error) {
	return single("crossover", frame)
}

// CrossAny flags the rows where the close crosses itself in any direction.
// Both inputs resolve to the close column.
func CrossAny(frame core.Frame) (*core.TimeSeries, error) {
	return single("crossany", frame)
}
