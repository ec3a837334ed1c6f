// Package validation turns flat form submissions into typed values.
//
// Every schema runs in two phases. The coerce phase parses raw strings into
// typed values (numbers through decimal, enums and strings as-is) and records a
// message for each field it cannot parse. The rule phase checks the typed values
// with go-playground/validator. Messages from both phases are merged per field;
// nothing short-circuits, and a field that failed coercion is not rule-checked.
package validation

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Form is a flat field -> raw value submission. A missing key means the field
// was not submitted at all; an empty string means it was submitted blank.
type Form map[string]string

// FormFromValues flattens url.Values, keeping the first value of each key.
func FormFromValues(values url.Values) Form {
	form := make(Form, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			form[k] = vs[0]
		}
	}
	return form
}

// Lookup returns the value and whether the field was submitted.
func (f Form) Lookup(field string) (string, bool) {
	if f == nil {
		return "", false
	}
	v, ok := f[field]
	return v, ok
}

// FieldErrors maps a form field to its violated-rule messages, in rule order.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}

// Fields returns the failing field names, sorted.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func (fe FieldErrors) merge(other FieldErrors) {
	for field, msgs := range other {
		fe[field] = append(fe[field], msgs...)
	}
}

func (fe FieldErrors) String() string {
	parts := make([]string, 0, len(fe))
	for _, f := range fe.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(fe[f], "; ")))
	}
	return strings.Join(parts, ", ")
}

// SummaryMessage is the one-line message shown next to a failed form.
func SummaryMessage(operation, entity string) string {
	return fmt.Sprintf("Missing Fields. Failed to %s %s.", operation, entity)
}
