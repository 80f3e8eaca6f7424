// Package money is the single source of document arithmetic. Both PDF
// renderers consume it so their totals cannot drift apart.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Line is the taxable slice of a line item.
type Line struct {
	Amount     decimal.Decimal
	GSTPercent decimal.Decimal
}

// Tax is the per-line breakdown. GST is always split exactly in half
// between CGST and SGST.
type Tax struct {
	GST   decimal.Decimal
	CGST  decimal.Decimal
	SGST  decimal.Decimal
	Total decimal.Decimal
}

// ItemTax computes the tax breakdown for a single line. A zero GST
// percent still yields a defined (zero) breakdown; suppressing the
// cells is the renderer's business, not ours.
func ItemTax(amount, gstPercent decimal.Decimal) Tax {
	gst := amount.Mul(gstPercent).Div(hundred)
	half := gst.Div(decimal.NewFromInt(2))
	return Tax{
		GST:   gst,
		CGST:  half,
		SGST:  half,
		Total: amount.Add(gst),
	}
}

// Totals is the aggregate for a whole document.
type Totals struct {
	Subtotal        decimal.Decimal
	GST             decimal.Decimal
	CGST            decimal.Decimal
	SGST            decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	GrandTotal      decimal.Decimal
	RoundOff        bool
	RoundOffDelta   decimal.Decimal
	Payable         decimal.Decimal
}

// Compute aggregates lines into document totals. The discount applies to
// subtotal plus GST, not subtotal alone. When roundOff is set the payable
// total is rounded half-up to the whole rupee and the signed delta is
// surfaced for the Round Off ledger line.
func Compute(lines []Line, discountPercent decimal.Decimal, roundOff bool) Totals {
	t := Totals{
		DiscountPercent: discountPercent,
		RoundOff:        roundOff,
	}
	for _, l := range lines {
		t.Subtotal = t.Subtotal.Add(l.Amount)
		t.GST = t.GST.Add(ItemTax(l.Amount, l.GSTPercent).GST)
	}
	t.CGST = t.GST.Div(decimal.NewFromInt(2))
	t.SGST = t.CGST

	t.DiscountAmount = t.Subtotal.Add(t.GST).Mul(discountPercent).Div(hundred)
	t.GrandTotal = t.Subtotal.Add(t.GST).Sub(t.DiscountAmount)

	t.Payable = t.GrandTotal
	if roundOff {
		t.Payable = t.GrandTotal.Round(0)
		t.RoundOffDelta = t.Payable.Sub(t.GrandTotal)
	}
	return t
}

// Format renders a decimal with exactly two fraction digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
