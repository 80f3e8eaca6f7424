package pdfrender

import (
	"fmt"
	"strings"
	"testing"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/shopspring/decimal"
	appconfig "github.com/spangleswebx/backoffice/internal/config"
	"github.com/spangleswebx/backoffice/internal/document/domain"
	"github.com/spangleswebx/backoffice/internal/render/htmlrender"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(items int) domain.Document {
	doc := domain.Document{
		Type:   domain.TypeInvoice,
		Number: "IN001",
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

func TestGenerateProducesPDF(t *testing.T) {
	r := New(appconfig.Config{})
	for _, mode := range []string{ColorModeColor, ColorModeBW} {
		out, err := r.Generate(testDocument(3), Options{ColorMode: mode})
		require.NoError(t, err, "mode=%s", mode)
		require.NotEmpty(t, out)
		assert.Equal(t, "%PDF", string(out[:4]))
	}
}

func TestGenerateLongDocument(t *testing.T) {
	r := New(appconfig.Config{})
	doc := testDocument(30)
	doc.DiscountPercent = decimal.NewFromInt(10)
	doc.RoundOff = true
	doc.ShowAdditionalInfo = true
	doc.AdditionalInfo = "Bank: HDFC\nIFSC: HDFC0000123"

	out, err := r.Generate(doc, Options{ColorMode: ColorModeColor})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateQuotation(t *testing.T) {
	r := New(appconfig.Config{})
	doc := testDocument(1)
	doc.Type = domain.TypeQuotation
	doc.Number = "QU003"

	out, err := r.Generate(doc, Options{ColorMode: ColorModeColor})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

// Both renderers must print the same totals for the same document. The
// HTML pipeline is checked against the summary lines the vector
// pipeline draws, discount and round off included.
func TestSummaryAgreesWithHTMLRenderer(t *testing.T) {
	// 3x1000 at 18% GST, 12.5% discount: 3540 - 442.50 = 3097.50,
	// rounded off to 3098.00 with a +0.50 delta.
	doc := testDocument(3)
	doc.DiscountPercent = decimal.NewFromFloat(12.5)
	doc.RoundOff = true

	hr, err := htmlrender.New(appconfig.Config{LogoURL: "/logo.png"})
	require.NoError(t, err)
	html, err := hr.Render(doc, htmlrender.Options{ColorMode: htmlrender.ColorModeColor})
	require.NoError(t, err)

	lines, payable, words := summarize(doc)
	require.Len(t, lines, 5)
	for _, line := range lines {
		amount := "₹" + strings.TrimPrefix(line.Amount, "-")
		assert.Contains(t, html, amount, line.Label)
	}
	assert.Contains(t, html, "Discount (12.5%)")
	assert.Equal(t, "3098.00", payable)
	assert.Contains(t, html, "Round Off")
	assert.Contains(t, html, "₹"+payable)
	assert.Contains(t, html, words)
}

func TestSplitDataURL(t *testing.T) {
	payload, ext, ok := splitDataURL("data:image/png;base64,aGk=")
	require.True(t, ok)
	assert.Equal(t, "aGk=", payload)
	assert.Equal(t, extension.Png, ext)

	_, _, ok = splitDataURL("data:image/png;base64,not!!base64")
	assert.False(t, ok)

	_, _, ok = splitDataURL("https://example.com/logo.png")
	assert.False(t, ok)

	_, ext, ok = splitDataURL("data:image/jpeg;base64,aGk=")
	require.True(t, ok)
	assert.Equal(t, extension.Jpg, ext)
}
