package colorspace

import (
	"math"
	"strconv"
	"strings"
)

// opaque is the alpha every value gets when none is written.
const opaque = 1.0

// functional reports whether text is "<name>(...)" or "<name>a(...)" and
// returns its fragments split on '(', ',', ' ' and ')' with empty fragments
// dropped. The first fragment is the function name.
func functional(text, name string) ([]string, bool) {
	if !strings.HasPrefix(text, name+"(") && !strings.HasPrefix(text, name+"a(") {
		return nil, false
	}
	if !strings.HasSuffix(text, ")") {
		return nil, false
	}
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '(' || r == ',' || r == ' ' || r == ')'
	}), true
}

func parseInt(token string) (int, bool) {
	v, err := strconv.Atoi(token)
	return v, err == nil
}

func parsePercent(token string) (int, bool) {
	digits, ok := strings.CutSuffix(token, "%")
	if !ok {
		return 0, false
	}
	return parseInt(digits)
}

func parseAlpha(token string) (float64, bool) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// roundTo rounds v to the given number of decimals, midpoints to even.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.RoundToEven(v*p) / p
}

// denoise strips binary representation error below 1e-9, e.g.
// 0.29*100 = 28.999999999999996 becomes 29.
func denoise(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

func formatFloat(v float64) string {
	// Avoid "-0" for values that round to zero from below.
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatAlpha renders alpha rounded to one decimal.
func formatAlpha(a float64) string {
	return formatFloat(roundTo(a, 1))
}

// printsOpaque reports whether a formats as 1, so the alpha-less notation
// is used and reparsing yields the same text.
func printsOpaque(a float64) bool {
	return roundTo(a, 1) == opaque
}

// formatPercent renders a unit fraction as a percentage number.
func formatPercent(f float64) string {
	return formatFloat(denoise(f * 100))
}
