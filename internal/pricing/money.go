package pricing

import (
	"fmt"
	"math"
	"strings"
)

// Round2 rounds to cents. Display only; accumulation stays unrounded so
// rounding error does not compound across rooms.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatMoney renders a dollar amount like "$10,946.88". Negative amounts
// render as "-$5.00".
func FormatMoney(v float64) string {
	v = Round2(v)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	return sign + "$" + b.String() + frac
}
