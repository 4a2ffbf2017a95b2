package billdoc

import (
	"regexp"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Weight fields arrive as freeform strings ("20,030.00 KGS", "N/A", "20030").
// Parsing strips everything but digits and the decimal point; garbage
// resolves to nil rather than zero so totals and display stay honest.

var nonNumeric = regexp.MustCompile(`[^0-9.]+`)

// ParseWeight extracts the numeric value from a freeform weight string.
// It returns nil when no number remains after stripping.
func ParseWeight(s string) *float64 {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	if cleaned == "" {
		return nil
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &n
}

// Weights are displayed with en-IN digit grouping, matching the line's
// invoicing convention.
var weightPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatKGS renders a parsed weight with grouped digits, a fixed number of
// fraction digits and the KGS unit label. A nil weight renders as "".
// Two decimals give the compact display, three the long variant.
func FormatKGS(v *float64, decimals int) string {
	if v == nil {
		return ""
	}
	return weightPrinter.Sprintf("%v KGS",
		number.Decimal(*v, number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}

// SumWeights accumulates the parsed gross and net weights of the given
// containers. Unparseable entries contribute nothing to either total.
func SumWeights(containers []Container) (gross, net float64) {
	for _, c := range containers {
		if g := ParseWeight(c.GrossWt); g != nil {
			gross += *g
		}
		if n := ParseWeight(c.NetWt); n != nil {
			net += *n
		}
	}
	return gross, net
}
