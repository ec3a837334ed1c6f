package validation

import (
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	FieldChartNumber = "id"
	FieldTitle       = "title"
	FieldImage       = "image"
)

// ChartInput is the validated chart bundle. The cid is never read from the form.
type ChartInput struct {
	ID    decimal.Decimal `form:"id" validate:"gt=0,whole"`
	Title string          `form:"title"`
	Image string          `form:"image"`
}

// Number returns the chart's secondary numeric id.
func (in ChartInput) Number() int {
	return int(in.ID.IntPart())
}

var chartMessages = messages{
	FieldChartNumber: {
		"gt":    "Please enter an id greater than 0.",
		"whole": "Please enter a whole number id.",
	},
}

func init() {
	_ = GetValidator().RegisterValidation("whole", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		switch field.Kind() {
		case reflect.Float32, reflect.Float64:
			f := field.Float()
			return f == math.Trunc(f)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return true
		}
		return false
	})
}

// ParseChart validates a chart form for create and update.
func ParseChart(form Form) (ChartInput, FieldErrors) {
	errs := FieldErrors{}

	in := ChartInput{
		ID:    coerceNumber(form, FieldChartNumber, maxChartNumber, "Please enter a valid id.", errs),
		Title: coercePresentString(form, FieldTitle, "Please enter a title.", errs),
		Image: coercePresentString(form, FieldImage, "Please enter an image.", errs),
	}

	errs.merge(checkRules(in, chartMessages, errs))
	return in, errs
}
