package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func TestItemTax_SplitsGSTInHalf(t *testing.T) {
	tax := ItemTax(d("1000"), d("18"))

	assert.True(t, tax.GST.Equal(d("180")), "gst: %s", tax.GST)
	assert.True(t, tax.CGST.Equal(d("90")), "cgst: %s", tax.CGST)
	assert.True(t, tax.SGST.Equal(d("90")), "sgst: %s", tax.SGST)
	assert.True(t, tax.Total.Equal(d("1180")), "total: %s", tax.Total)
	assert.True(t, tax.CGST.Add(tax.SGST).Equal(tax.GST))
}

func TestItemTax_ZeroPercentStillDefined(t *testing.T) {
	tax := ItemTax(d("500"), decimal.Zero)

	assert.True(t, tax.GST.IsZero())
	assert.True(t, tax.CGST.IsZero())
	assert.True(t, tax.SGST.IsZero())
	assert.True(t, tax.Total.Equal(d("500")))
}

func TestCompute_SingleItemInvoice(t *testing.T) {
	totals := Compute([]Line{{Amount: d("1000"), GSTPercent: d("18")}}, decimal.Zero, false)

	assert.True(t, totals.Subtotal.Equal(d("1000")))
	assert.True(t, totals.GST.Equal(d("180")))
	assert.True(t, totals.CGST.Equal(d("90")))
	assert.True(t, totals.SGST.Equal(d("90")))
	assert.True(t, totals.DiscountAmount.IsZero())
	assert.True(t, totals.GrandTotal.Equal(d("1180")))
	assert.True(t, totals.Payable.Equal(d("1180")))
	assert.Equal(t, "One Thousand One Hundred Eighty Only", Words(totals.Payable.Round(0).IntPart()))
}

func TestCompute_DiscountAppliesToSubtotalPlusGST(t *testing.T) {
	totals := Compute([]Line{{Amount: d("1000"), GSTPercent: d("18")}}, d("10"), false)

	assert.True(t, totals.DiscountAmount.Equal(d("118")), "discount: %s", totals.DiscountAmount)
	assert.True(t, totals.GrandTotal.Equal(d("1062")), "grand: %s", totals.GrandTotal)
}

func TestCompute_RoundOffDelta(t *testing.T) {
	totals := Compute([]Line{{Amount: d("100.30"), GSTPercent: decimal.Zero}}, decimal.Zero, true)

	assert.True(t, totals.Payable.Equal(d("100")))
	assert.True(t, totals.RoundOffDelta.Equal(d("-0.30")), "delta: %s", totals.RoundOffDelta)

	up := Compute([]Line{{Amount: d("100.60"), GSTPercent: decimal.Zero}}, decimal.Zero, true)
	assert.True(t, up.Payable.Equal(d("101")))
	assert.True(t, up.RoundOffDelta.Equal(d("0.40")), "delta: %s", up.RoundOffDelta)

	// Rounded total never drifts more than a rupee from the exact total.
	assert.True(t, up.Payable.Sub(up.GrandTotal).Abs().LessThan(d("1")))
}

func TestCompute_GrandTotalIdentity(t *testing.T) {
	lines := []Line{
		{Amount: d("1200.50"), GSTPercent: d("18")},
		{Amount: d("499.99"), GSTPercent: d("12")},
		{Amount: d("75"), GSTPercent: decimal.Zero},
	}
	totals := Compute(lines, d("5"), false)

	expect := totals.Subtotal.Add(totals.GST).Sub(totals.DiscountAmount)
	assert.True(t, totals.GrandTotal.Equal(expect))
	assert.True(t, totals.CGST.Add(totals.SGST).Equal(totals.GST))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1180.00", Format(d("1180")))
	assert.Equal(t, "0.50", Format(d("0.5")))
}
