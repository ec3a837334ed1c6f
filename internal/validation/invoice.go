package validation

import (
	"github.com/shopspring/decimal"
)

const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// InvoiceInput is the validated invoice bundle. The invoice id and date are
// never read from the form.
type InvoiceInput struct {
	CustomerID string          `form:"customerId" validate:"required"`
	Amount     decimal.Decimal `form:"amount" validate:"gt=0"`
	Status     string          `form:"status" validate:"required,oneof=pending paid"`
}

// AmountInCents converts the dollar amount to minor units, rounding half away from zero.
func (in InvoiceInput) AmountInCents() int64 {
	return in.Amount.Mul(hundred).Round(0).IntPart()
}

var invoiceMessages = messages{
	FieldCustomerID: {"*": "Please select a customer."},
	FieldAmount:     {"*": "Please enter an amount greater than $0."},
	FieldStatus:     {"*": "Please select an invoice status."},
}

// ParseInvoice validates an invoice form for create and update.
func ParseInvoice(form Form) (InvoiceInput, FieldErrors) {
	errs := FieldErrors{}

	customerID, _ := form.Lookup(FieldCustomerID)
	status, _ := form.Lookup(FieldStatus)
	in := InvoiceInput{
		CustomerID: customerID,
		Amount:     coerceNumber(form, FieldAmount, maxAmountDollars, "Please enter a valid amount.", errs),
		Status:     status,
	}

	errs.merge(checkRules(in, invoiceMessages, errs))
	return in, errs
}
