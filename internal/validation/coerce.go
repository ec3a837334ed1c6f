package validation

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// coerceNumber parses a numeric field. Absent or blank input coerces to zero
// and is left for the rule phase to reject; unparseable input is a coercion
// error. limit bounds the absolute value so derived integers cannot overflow.
func coerceNumber(form Form, field string, limit decimal.Decimal, invalidMsg string, errs FieldErrors) decimal.Decimal {
	raw, _ := form.Lookup(field)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	if len(raw) > maxNumberLength {
		errs.Add(field, invalidMsg)
		return decimal.Zero
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		errs.Add(field, invalidMsg)
		return decimal.Zero
	}
	if d.IsZero() {
		return decimal.Zero
	}
	if !withinScale(d, limit) || d.Abs().GreaterThan(limit) {
		errs.Add(field, invalidMsg)
		return decimal.Zero
	}
	return d
}

// withinScale checks magnitude from the coefficient length and exponent alone.
// Comparing or rounding a decimal rescales it to 10^exponent, which is too
// costly to do for an arbitrary exponent.
func withinScale(d, limit decimal.Decimal) bool {
	coefficient := d.Coefficient()
	exp := int64(d.Exponent())
	if exp < -maxFractionDigits {
		return false
	}
	digits := int64(len(coefficient.Abs(coefficient).String()))
	return digits+exp <= int64(len(limit.Truncate(0).String()))
}

// coercePresentString passes a string through unchanged but records
// missingMsg when the field was not submitted at all.
func coercePresentString(form Form, field, missingMsg string, errs FieldErrors) string {
	v, ok := form.Lookup(field)
	if !ok {
		errs.Add(field, missingMsg)
	}
	return v
}

// maxNumberLength bounds the raw text of a numeric field.
const maxNumberLength = 64

// maxFractionDigits bounds how far a number's exponent may reach below the point.
const maxFractionDigits = 64

// maxAmountDollars keeps amount*100 inside int64.
var maxAmountDollars = decimal.NewFromInt(math.MaxInt64).Div(hundred).Floor()

// maxChartNumber keeps the chart id inside int32.
var maxChartNumber = decimal.NewFromInt(math.MaxInt32)
