package validation

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvoiceAmount(t *testing.T) {
	cases := []struct {
		amount  string
		ok      bool
		cents   int64
		message string
	}{
		{amount: "15.50", ok: true, cents: 1550},
		{amount: " 15.50 ", ok: true, cents: 1550},
		{amount: "1", ok: true, cents: 100},
		{amount: "0.015", ok: true, cents: 2},
		{amount: "1e2", ok: true, cents: 10000},
		{amount: "19.999", ok: true, cents: 2000},
		{amount: "0", message: "Please enter an amount greater than $0."},
		{amount: "-3", message: "Please enter an amount greater than $0."},
		{amount: "", message: "Please enter an amount greater than $0."},
		{amount: "abc", message: "Please enter a valid amount."},
		{amount: "12,50", message: "Please enter a valid amount."},
		{amount: "1e400", message: "Please enter a valid amount."},
		{amount: "1e100000000", message: "Please enter a valid amount."},
		{amount: "1e-100000000", message: "Please enter a valid amount."},
		{amount: "0e100000000", message: "Please enter an amount greater than $0."},
		{amount: "0.000001", ok: true, cents: 0},
		{amount: "1" + strings.Repeat("0", 80), message: "Please enter a valid amount."},
	}
	for _, tc := range cases {
		t.Run(tc.amount, func(t *testing.T) {
			start := time.Now()
			in, errs := ParseInvoice(Form{"customerId": "c1", "amount": tc.amount, "status": "paid"})
			assert.Less(t, time.Since(start), time.Second)
			if tc.ok {
				require.True(t, errs.Empty(), "unexpected errors: %s", errs)
				assert.Equal(t, tc.cents, in.AmountInCents())
				return
			}
			require.Equal(t, []string{FieldAmount}, errs.Fields())
			assert.Equal(t, []string{tc.message}, errs[FieldAmount])
		})
	}
}

func TestParseInvoiceStatus(t *testing.T) {
	for _, status := range []string{"pending", "paid"} {
		_, errs := ParseInvoice(Form{"customerId": "c1", "amount": "10", "status": status})
		assert.True(t, errs.Empty(), status)
	}

	for _, status := range []string{"", "PAID", "overdue", " paid"} {
		_, errs := ParseInvoice(Form{"customerId": "c1", "amount": "10", "status": status})
		assert.Equal(t, []string{"Please select an invoice status."}, errs[FieldStatus], status)
		assert.Len(t, errs, 1)
	}
}

func TestParseInvoiceMergesAllFieldErrors(t *testing.T) {
	_, errs := ParseInvoice(Form{})

	assert.Equal(t, []string{FieldAmount, FieldCustomerID, FieldStatus}, errs.Fields())
	assert.Equal(t, []string{"Please select a customer."}, errs[FieldCustomerID])
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, errs[FieldAmount])
	assert.Equal(t, []string{"Please select an invoice status."}, errs[FieldStatus])
}

func TestParseInvoiceIgnoresIdentifierFields(t *testing.T) {
	in, errs := ParseInvoice(Form{"id": "ignored", "date": "1999-01-01", "customerId": "c1", "amount": "2", "status": "pending"})
	require.True(t, errs.Empty())
	assert.Equal(t, InvoiceInput{CustomerID: "c1", Amount: in.Amount, Status: "pending"}, in)
	assert.Equal(t, int64(200), in.AmountInCents())
}

func TestParseChart(t *testing.T) {
	in, errs := ParseChart(Form{"id": "7", "title": "Solar System", "image": "/charts/solar.png"})
	require.True(t, errs.Empty())
	assert.Equal(t, 7, in.Number())
	assert.Equal(t, "Solar System", in.Title)
	assert.Equal(t, "/charts/solar.png", in.Image)
}

func TestParseChartRejectsNonPositiveID(t *testing.T) {
	_, errs := ParseChart(Form{"cid": "x1", "id": "0", "title": "t", "image": "i"})
	assert.Equal(t, []string{FieldChartNumber}, errs.Fields())
	assert.Equal(t, []string{"Please enter an id greater than 0."}, errs[FieldChartNumber])
}

func TestParseChartRejectsFractionalID(t *testing.T) {
	_, errs := ParseChart(Form{"id": "2.5", "title": "t", "image": "i"})
	assert.Equal(t, []string{"Please enter a whole number id."}, errs[FieldChartNumber])
}

func TestParseChartHugeExponents(t *testing.T) {
	for _, id := range []string{"1e100000000", "1e-100000000", "-1e100000000"} {
		start := time.Now()
		_, errs := ParseChart(Form{"id": id, "title": "t", "image": "i"})
		assert.Less(t, time.Since(start), time.Second, id)
		assert.Equal(t, []string{"Please enter a valid id."}, errs[FieldChartNumber], id)
	}

	_, errs := ParseChart(Form{"id": "2147483648", "title": "t", "image": "i"})
	assert.Equal(t, []string{"Please enter a valid id."}, errs[FieldChartNumber])
}

func TestParseChartStringsPassThrough(t *testing.T) {
	in, errs := ParseChart(Form{"id": "1", "title": "", "image": "not a url"})
	require.True(t, errs.Empty())
	assert.Equal(t, "", in.Title)
	assert.Equal(t, "not a url", in.Image)
}

func TestParseChartMissingFields(t *testing.T) {
	_, errs := ParseChart(Form{"id": "x"})
	assert.Equal(t, []string{FieldChartNumber, FieldImage, FieldTitle}, errs.Fields())
	assert.Equal(t, []string{"Please enter a valid id."}, errs[FieldChartNumber])
	assert.Equal(t, []string{"Please enter a title."}, errs[FieldTitle])
	assert.Equal(t, []string{"Please enter an image."}, errs[FieldImage])
}

func TestFormFromValues(t *testing.T) {
	form := FormFromValues(url.Values{"amount": {"1", "2"}, "empty": {}})
	v, ok := form.Lookup("amount")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	_, ok = form.Lookup("empty")
	assert.False(t, ok)
}

func TestSummaryMessage(t *testing.T) {
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", SummaryMessage("Create", "Invoice"))
}
