package htmlrender

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spangleswebx/backoffice/internal/config"
	"github.com/spangleswebx/backoffice/internal/document/domain"
	"github.com/spangleswebx/backoffice/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(config.Config{LogoURL: "/logo.png"})
	require.NoError(t, err)
	return r
}

func testDocument(items int) domain.Document {
	doc := domain.Document{
		Type:   domain.TypeInvoice,
		Number: "IN042",
		Date:   "2026-03-15",
		From: domain.Party{
			Name:    "Webx Solutions",
			Email:   "webx@gmail.com",
			Phone:   "9876543210",
			Address: "12 MG Road\nBengaluru",
		},
		To: domain.Party{
			Name:    "Acme Traders",
			Email:   "acme@gmail.com",
			Phone:   "9123456780",
			Address: "4 Park Street\nKolkata",
		},
	}
	for i := 0; i < items; i++ {
		doc.Items = append(doc.Items, domain.LineItem{
			Name:       fmt.Sprintf("Item %d", i+1),
			Amount:     decimal.NewFromInt(1000),
			GSTPercent: decimal.NewFromInt(18),
		})
	}
	return doc
}

func TestRenderSinglePage(t *testing.T) {
	r := newTestRenderer(t)
	html, err := r.Render(testDocument(3), Options{ColorMode: ColorModeColor})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(html, `class="page"`))
	assert.Contains(t, html, "INVOICE")
	assert.Contains(t, html, "Invoice No: IN042")
	assert.Contains(t, html, "15/03/2026")
	assert.Contains(t, html, "#345261")
	assert.Contains(t, html, "Webx Solutions")
	assert.Contains(t, html, "12 MG Road<br>Bengaluru")
	assert.Contains(t, html, "₹90.00")
}

func TestRenderPaginatesLongItemLists(t *testing.T) {
	r := newTestRenderer(t)
	html, err := r.Render(testDocument(30), Options{ColorMode: ColorModeColor})
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(html, `class="page"`))
	// Header and addresses appear on the first page only, the summary on
	// the last page only.
	assert.Equal(t, 1, strings.Count(html, "Invoice From"))
	assert.Equal(t, 1, strings.Count(html, "Total Amount"))
	assert.Contains(t, html, ">30<")
}

func TestRenderSummaryMatchesCalculator(t *testing.T) {
	r := newTestRenderer(t)
	doc := testDocument(1)
	html, err := r.Render(doc, Options{ColorMode: ColorModeColor})
	require.NoError(t, err)

	totals := doc.Totals()
	assert.Contains(t, html, "₹"+money.Format(totals.Payable))
	assert.Contains(t, html, money.Words(totals.Payable.Round(0).IntPart()))
	assert.Contains(t, html, "One Thousand One Hundred Eighty Only")
}

func TestRenderBlackAndWhiteMode(t *testing.T) {
	r := newTestRenderer(t)
	html, err := r.Render(testDocument(1), Options{ColorMode: ColorModeBW})
	require.NoError(t, err)

	assert.Contains(t, html, "#e6e6e6")
	assert.Contains(t, html, "grayscale(100%)")
	assert.NotContains(t, html, "#345261")
}

func TestRenderQuotationLabels(t *testing.T) {
	r := newTestRenderer(t)
	doc := testDocument(1)
	doc.Type = domain.TypeQuotation
	doc.Number = "QU007"
	html, err := r.Render(doc, Options{ColorMode: ColorModeColor})
	require.NoError(t, err)

	assert.Contains(t, html, "QUOTATION")
	assert.Contains(t, html, "Quotation No: QU007")
	assert.Contains(t, html, "Quotation From")
	assert.NotContains(t, html, "Invoice No:")
}

func TestRenderAdditionalInfoOnLastPageOnly(t *testing.T) {
	r := newTestRenderer(t)
	doc := testDocument(15)
	doc.ShowAdditionalInfo = true
	doc.AdditionalInfo = "Bank: HDFC\nIFSC: HDFC0000123"
	html, err := r.Render(doc, Options{ColorMode: ColorModeColor})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(html, "Additional Information"))
	assert.Contains(t, html, "Bank: HDFC<br>IFSC: HDFC0000123")

	doc.ShowAdditionalInfo = false
	html, err = r.Render(doc, Options{ColorMode: ColorModeColor})
	require.NoError(t, err)
	assert.NotContains(t, html, "Additional Information")
}

func TestRenderZeroGSTRows(t *testing.T) {
	r := newTestRenderer(t)
	doc := testDocument(1)
	doc.Items[0].GSTPercent = decimal.Zero
	html, err := r.Render(doc, Options{ColorMode: ColorModeColor})
	require.NoError(t, err)

	assert.Contains(t, html, "–")
	assert.Contains(t, html, "₹1000.00")
}

func TestRenderLogoFallsBackToPublicURL(t *testing.T) {
	r, err := New(config.Config{LogoPath: "does/not/exist.png", LogoURL: "/logo.png"})
	require.NoError(t, err)
	html, err := r.Render(testDocument(1), Options{ColorMode: ColorModeColor})
	require.NoError(t, err)
	assert.Contains(t, html, `src="/logo.png"`)
}

func TestRenderInlineLogoWins(t *testing.T) {
	r := newTestRenderer(t)
	doc := testDocument(1)
	doc.Logo = &domain.Logo{Name: "logo.png", DataURL: "data:image/png;base64,aGk="}
	html, err := r.Render(doc, Options{ColorMode: ColorModeColor})
	require.NoError(t, err)
	assert.Contains(t, html, "data:image/png;base64,aGk=")
}
