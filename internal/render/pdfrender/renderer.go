// Package pdfrender draws documents straight to PDF with maroto. It is
// the download path; the print path goes through htmlrender and a
// browser engine instead. Both share the same calculator and pagination.
package pdfrender

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appconfig "github.com/spangleswebx/backoffice/internal/config"
	"github.com/spangleswebx/backoffice/internal/document/domain"
	"github.com/spangleswebx/backoffice/internal/money"
	"github.com/spangleswebx/backoffice/internal/render"
)

const (
	ColorModeColor = "color"
	ColorModeBW    = "bw"
)

type Options struct {
	ColorMode string
}

type Renderer struct {
	logoPath string
}

func New(cfg appconfig.Config) *Renderer {
	return &Renderer{logoPath: cfg.LogoPath}
}

type palette struct {
	header    props.Color
	headerTxt props.Color
	borderCol props.Color
	muted     props.Color
}

func newPalette(colorMode string) palette {
	p := palette{
		header:    props.Color{Red: 52, Green: 82, Blue: 97},
		headerTxt: props.WhiteColor,
		borderCol: props.Color{Red: 187, Green: 187, Blue: 187},
		muted:     props.Color{Red: 85, Green: 85, Blue: 85},
	}
	if colorMode == ColorModeBW {
		p.header = props.Color{Red: 230, Green: 230, Blue: 230}
		p.headerTxt = props.BlackColor
	}
	return p
}

// Generate draws the document and returns the PDF bytes.
func (r *Renderer) Generate(doc domain.Document, opts Options) ([]byte, error) {
	pal := newPalette(opts.ColorMode)

	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithRightMargin(10).
		WithTopMargin(10).
		Build()
	m := maroto.New(cfg)

	chunks := render.Paginate(doc.Items)
	pages := make([]core.Page, 0, len(chunks))
	for pi, chunk := range chunks {
		pg := page.New()
		if pi == 0 {
			pg.Add(r.headerRows(doc, pal)...)
			pg.Add(partyRows(doc, pal)...)
		}
		pg.Add(tableHeaderRow(pal))
		for ri, it := range chunk {
			pg.Add(itemRow(it, pi*render.RowsPerPage+ri, pal))
		}
		if pi == len(chunks)-1 {
			pg.Add(summaryRows(doc, pal)...)
		}
		pages = append(pages, pg)
	}
	m.AddPages(pages...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return out.GetBytes(), nil
}

func (r *Renderer) headerRows(doc domain.Document, pal palette) []core.Row {
	title := "INVOICE"
	numberLabel := "Invoice No: "
	if doc.Type == domain.TypeQuotation {
		title = "QUOTATION"
		numberLabel = "Quotation No: "
	}

	logoCol := r.logoCol(doc.Logo)

	return []core.Row{
		row.New(22).Add(
			col.New(8).Add(
				text.New(title, props.Text{
					Size:  20,
					Style: fontstyle.Bold,
					Color: &pal.header,
				}),
				text.New(numberLabel+doc.Number, props.Text{Top: 12, Size: 10}),
				text.New("Date: "+formatDate(doc.Date), props.Text{Top: 17, Size: 10}),
			),
			logoCol,
		),
		row.New(4),
	}
}

func (r *Renderer) logoCol(logo *domain.Logo) core.Col {
	if logo != nil && logo.DataURL != "" {
		if b64, ext, ok := splitDataURL(logo.DataURL); ok {
			if raw, err := base64.StdEncoding.DecodeString(b64); err == nil {
				return image.NewFromBytesCol(4, raw, ext, props.Rect{
					Center:  true,
					Percent: 90,
				})
			}
		}
	}
	if r.logoPath != "" {
		return image.NewFromFileCol(4, r.logoPath, props.Rect{
			Center:  true,
			Percent: 90,
		})
	}
	return col.New(4)
}

func partyRows(doc domain.Document, pal palette) []core.Row {
	fromLabel := "Invoice From"
	toLabel := "Invoice For"
	if doc.Type == domain.TypeQuotation {
		fromLabel = "Quotation From"
		toLabel = "Quotation For"
	}

	// Both boxes share one height so their borders line up whatever the
	// address lengths are.
	height := partyBoxHeight(doc.From)
	if h := partyBoxHeight(doc.To); h > height {
		height = h
	}

	boxStyle := &props.Cell{
		BorderType:  border.Full,
		BorderColor: &pal.borderCol,
	}
	labelStyle := &props.Cell{BackgroundColor: &pal.header}

	return []core.Row{
		row.New(6).Add(
			col.New(6).Add(
				text.New(fromLabel, props.Text{
					Style: fontstyle.Bold,
					Size:  10,
					Top:   1,
					Left:  2,
					Color: &pal.headerTxt,
				}),
			).WithStyle(labelStyle),
			col.New(6).Add(
				text.New(toLabel, props.Text{
					Style: fontstyle.Bold,
					Size:  10,
					Top:   1,
					Left:  2,
					Color: &pal.headerTxt,
				}),
			).WithStyle(labelStyle),
		),
		row.New(height).Add(
			partyCol(doc.From, pal).WithStyle(boxStyle),
			partyCol(doc.To, pal).WithStyle(boxStyle),
		),
		row.New(4),
	}
}

func partyCol(p domain.Party, pal palette) core.Col {
	texts := []core.Component{
		text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 2, Left: 2}),
	}
	top := 7.0
	for _, line := range strings.Split(p.Address, "\n") {
		texts = append(texts, text.New(line, props.Text{Size: 9, Top: top, Left: 2}))
		top += 4
	}
	texts = append(texts,
		text.New(p.Email, props.Text{Size: 9, Top: top, Left: 2, Color: &pal.muted}),
		text.New(p.Phone, props.Text{Size: 9, Top: top + 4, Left: 2, Color: &pal.muted}),
	)
	return col.New(6).Add(texts...)
}

func partyBoxHeight(p domain.Party) float64 {
	lines := 3 + len(strings.Split(p.Address, "\n"))
	return float64(lines)*4 + 6
}

func tableHeaderRow(pal palette) core.Row {
	style := props.Text{
		Style: fontstyle.Bold,
		Size:  9,
		Top:   1.5,
		Color: &pal.headerTxt,
	}
	right := style
	right.Align = align.Right

	return row.New(7).Add(
		text.NewCol(1, "Sl. No.", style),
		text.NewCol(3, "Item", style),
		text.NewCol(2, "Amount", right),
		text.NewCol(1, "GST", right),
		text.NewCol(2, "CGST", right),
		text.NewCol(1, "SGST", right),
		text.NewCol(2, "Total", right),
	).WithStyle(&props.Cell{BackgroundColor: &pal.header})
}

func itemRow(it domain.LineItem, index int, pal palette) core.Row {
	tax := money.ItemTax(it.Amount, it.GSTPercent)

	gstPct, cgst, sgst := "-", "-", "-"
	total := money.Format(it.Amount)
	if !it.GSTPercent.IsZero() {
		gstPct = it.GSTPercent.String() + "%"
		cgst = money.Format(tax.CGST)
		sgst = money.Format(tax.SGST)
		total = money.Format(tax.Total)
	}

	num := props.Text{Size: 9, Top: 1.5, Align: align.Right}
	itemCol := col.New(3).Add(
		text.New(it.Name, props.Text{Size: 9, Top: 1.5}),
	)
	height := 8.0
	if it.Description != "" {
		itemCol.Add(text.New(it.Description, props.Text{Size: 7.5, Top: 6, Color: &pal.muted}))
		height = 11
	}

	return row.New(height).Add(
		text.NewCol(1, fmt.Sprintf("%02d", index+1), props.Text{Size: 9, Top: 1.5}),
		itemCol,
		text.NewCol(2, money.Format(it.Amount), num),
		text.NewCol(1, gstPct, num),
		text.NewCol(2, cgst, num),
		text.NewCol(1, sgst, num),
		text.NewCol(2, total, num),
	).WithStyle(&props.Cell{
		BorderType:  border.Bottom,
		BorderColor: &pal.borderCol,
	})
}

// summaryLine is one labeled amount in the totals block.
type summaryLine struct {
	Label  string
	Amount string
}

// summarize flattens the recomputed totals into the lines the summary
// block prints, plus the payable amount and its wording.
func summarize(doc domain.Document) (lines []summaryLine, payable, words string) {
	totals := doc.Totals()

	lines = []summaryLine{
		{"Amount", money.Format(totals.Subtotal)},
		{"CGST", money.Format(totals.CGST)},
		{"SGST", money.Format(totals.SGST)},
	}
	if !totals.DiscountPercent.IsZero() {
		lines = append(lines, summaryLine{
			fmt.Sprintf("Discount (%s%%)", totals.DiscountPercent.String()),
			"-" + money.Format(totals.DiscountAmount),
		})
	}
	if totals.RoundOff {
		lines = append(lines, summaryLine{"Round Off", money.Format(totals.RoundOffDelta)})
	}
	return lines, money.Format(totals.Payable), money.Words(totals.Payable.Round(0).IntPart())
}

func summaryRows(doc domain.Document, pal palette) []core.Row {
	lines, payable, words := summarize(doc)

	label := props.Text{Size: 9, Style: fontstyle.Bold, Top: 1.5}
	value := props.Text{Size: 9, Top: 1.5, Align: align.Right}

	rows := []core.Row{row.New(4)}
	for _, line := range lines {
		rows = append(rows, row.New(7).Add(
			col.New(7),
			text.NewCol(3, line.Label, label),
			text.NewCol(2, line.Amount, value),
		))
	}

	totalLabel := props.Text{Size: 10, Style: fontstyle.Bold, Top: 1.5, Left: 2, Color: &pal.headerTxt}
	totalValue := totalLabel
	totalValue.Align = align.Right
	totalValue.Left = 0
	rows = append(rows, row.New(8).Add(
		col.New(7),
		col.New(3).Add(text.New("Total Amount", totalLabel)).WithStyle(&props.Cell{BackgroundColor: &pal.header}),
		col.New(2).Add(text.New(payable, totalValue)).WithStyle(&props.Cell{BackgroundColor: &pal.header}),
	))

	rows = append(rows,
		row.New(8).Add(
			text.NewCol(12, words, props.Text{
				Size:  9,
				Style: fontstyle.Italic,
				Top:   3,
			}),
		),
	)

	if doc.ShowAdditionalInfo && strings.TrimSpace(doc.AdditionalInfo) != "" {
		lines := strings.Split(doc.AdditionalInfo, "\n")
		texts := []core.Component{
			text.New("Additional Information", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Left: 2}),
		}
		top := 7.0
		for _, line := range lines {
			texts = append(texts, text.New(line, props.Text{Size: 9, Top: top, Left: 2}))
			top += 4
		}
		rows = append(rows, row.New(top+2).Add(
			col.New(12).Add(texts...).WithStyle(&props.Cell{
				BorderType:  border.Full,
				BorderColor: &pal.borderCol,
			}),
		))
	}
	return rows
}

func splitDataURL(dataURL string) (payload string, ext extension.Type, ok bool) {
	rest, found := strings.CutPrefix(dataURL, "data:image/")
	if !found {
		return "", "", false
	}
	kind, payload, found := strings.Cut(rest, ";base64,")
	if !found {
		return "", "", false
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return "", "", false
	}
	switch kind {
	case "png":
		ext = extension.Png
	case "jpg", "jpeg":
		ext = extension.Jpg
	default:
		return "", "", false
	}
	return payload, ext, true
}

func formatDate(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw
	}
	return t.Format("02/01/2006")
}
