package dashboard

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount in cents as US dollars, e.g. 123450 -> "$1,234.50".
func FormatCurrency(cents int64) string {
	sign := ""
	d := decimal.New(cents, -2)
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	dollars := d.Truncate(0)
	fraction := d.Sub(dollars).Shift(2).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, usd.Sprintf("%d", dollars.IntPart()), fraction)
}

// CentsToDollars converts stored minor units back to a dollar amount for form hydration.
func CentsToDollars(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
