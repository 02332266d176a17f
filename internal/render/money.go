package render

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// enIN formats monetary values the way every surface must: two decimal
// places with Indian digit grouping (1,23,456.79).
var enIN = message.NewPrinter(language.MustParse("en-IN"))

// Money formats a monetary value for display. The currency symbol is a
// template concern; this returns only the grouped number.
func Money(v float64) string {
	return enIN.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Quantity formats a quantity with no forced decimals and no grouping,
// so whole numbers render bare ("2", not "2.00").
func Quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
