package duration

import (
	"math"
	"strconv"
	"strings"
)

// formatUnits are the units the formatters choose from, largest first.
// Weeks and years are parsed but never produced.
var formatUnits = []Unit{Days, Hours, Minutes, Seconds}

// Options controls formatting of numeric input.
type Options struct {
	// Long selects the verbose form ("2 days") over the compact one ("2d").
	Long bool `json:"long,omitempty" yaml:"long,omitempty"`
}

// Format renders ms in the form selected by opts.
func Format(ms float64, opts Options) string {
	if opts.Long {
		return FormatLong(ms)
	}
	return FormatShort(ms)
}

// FormatShort renders ms using the largest of day, hour, minute or second
// that fits, rounded half away from zero: 1500 → "2s", -3000 → "-3s".
// Values under one second print as their absolute value in ms: -500 → "500ms".
func FormatShort(ms float64) string {
	abs := math.Abs(ms)
	for _, u := range formatUnits {
		if abs >= u.Factor() {
			return formatNumber(math.Round(ms/u.Factor())) + u.Short()
		}
	}
	return formatNumber(abs) + "ms"
}

// FormatLong is FormatShort with unit words: 1500 → "2 seconds",
// 60000 → "1 minute".
//
// The unit is pluralised when the raw absolute value is at least 1.5 units,
// not when the rounded number is above one.
func FormatLong(ms float64) string {
	abs := math.Abs(ms)
	for _, u := range formatUnits {
		if abs >= u.Factor() {
			return plural(ms, abs, u)
		}
	}
	return formatNumber(abs) + "ms"
}

func plural(ms, abs float64, u Unit) string {
	f := u.Factor()
	s := formatNumber(math.Round(ms/f)) + " " + u.Word()
	if abs >= f*1.5 {
		s += "s"
	}
	return s
}

// formatNumber prints f the way ECMAScript's Number to String does: plain
// decimal notation between 1e-6 and 1e21, exponent notation outside it,
// and "0" for negative zero.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
