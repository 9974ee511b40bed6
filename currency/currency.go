// Package currency renders monetary amounts for display.
//
// The counting core never formats money itself; it takes a Formatter so
// hosts can plug in whatever locale they need. New builds the common
// "symbol, thousands separators, two decimals" style.
package currency

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Formatter turns an amount into display text.
type Formatter func(amount decimal.Decimal) string

// AUD formats Australian dollars, e.g. $1,234.50.
var AUD = New("$")

// New returns a Formatter that prefixes symbol, groups thousands with commas
// and rounds half away from zero to two decimals. Negative amounts are
// rendered with a leading minus before the symbol: -$98.50.
func New(symbol string) Formatter {
	return func(amount decimal.Decimal) string {
		rounded := amount.Round(2)

		var b strings.Builder
		if rounded.IsNegative() {
			b.WriteByte('-')
			rounded = rounded.Neg()
		}
		b.WriteString(symbol)

		_, frac, _ := strings.Cut(rounded.StringFixed(2), ".")
		b.WriteString(humanize.Comma(rounded.IntPart()))
		b.WriteByte('.')
		b.WriteString(frac)

		return b.String()
	}
}

// Abs formats the magnitude of amount, leaving the sign to the caller.
func (f Formatter) Abs(amount decimal.Decimal) string {
	return f(amount.Abs())
}
