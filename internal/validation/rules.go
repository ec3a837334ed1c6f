package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the shared rule-phase validator. Field names in
// errors are the `form` tag names, and decimals are checked as floats.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.InexactFloat64()
			}
			return nil
		}, decimal.Decimal{})
		validate = v
	})
	return validate
}

// messages maps field -> validator tag -> user-facing message.
type messages map[string]map[string]string

func (m messages) lookup(field, tag string) string {
	if byTag, ok := m[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
		if msg, ok := byTag["*"]; ok {
			return msg
		}
	}
	return "Invalid value."
}

// checkRules runs the rule phase over a typed struct. Fields listed in skip
// already failed coercion and are left out of the report.
func checkRules(typed interface{}, msgs messages, skip FieldErrors) FieldErrors {
	out := FieldErrors{}
	err := GetValidator().Struct(typed)
	if err == nil {
		return out
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out.Add("_form", "Invalid submission.")
		return out
	}
	for _, ve := range validationErrs {
		if skip.Has(ve.Field()) {
			continue
		}
		out.Add(ve.Field(), msgs.lookup(ve.Field(), ve.Tag()))
	}
	return out
}
