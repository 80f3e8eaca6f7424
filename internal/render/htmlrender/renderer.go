// Package htmlrender composes the print-ready HTML for a document. The
// output is rasterized to PDF by the print pipeline; its arithmetic
// comes from internal/money so it agrees with the vector renderer.
package htmlrender

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spangleswebx/backoffice/internal/config"
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
	tmpl     *template.Template
	logoPath string
	logoURL  string
}

func New(cfg config.Config) (*Renderer, error) {
	tmpl, err := template.New("document").Parse(documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse document template: %w", err)
	}
	return &Renderer{
		tmpl:     tmpl,
		logoPath: cfg.LogoPath,
		logoURL:  cfg.LogoURL,
	}, nil
}

type rowView struct {
	Serial      string
	Name        string
	Description string
	Amount      string
	GSTPercent  string
	CGST        string
	SGST        string
	Total       string
}

type pageView struct {
	Continuation bool
	Rows         []rowView
	Last         bool
}

type summaryView struct {
	Subtotal        string
	CGST            string
	SGST            string
	HasDiscount     bool
	DiscountPercent string
	DiscountAmount  string
	RoundOff        bool
	RoundOffDelta   string
	Total           string
	Words           string
}

type partyView struct {
	Name    string
	Address template.HTML
	Email   string
	Phone   string
}

type documentView struct {
	Title       string
	NumberLabel string
	Number      string
	Date        string
	FromLabel   string
	ToLabel     string
	From        partyView
	To          partyView
	LogoSrc     template.URL
	LogoStyle   template.CSS
	HeaderColor template.CSS
	LabelColor  template.CSS
	Pages       []pageView
	Summary     summaryView
	ShowInfo    bool
	Info        template.HTML
}

// Render builds the full multi-page HTML string for a document.
func (r *Renderer) Render(doc domain.Document, opts Options) (string, error) {
	view := r.buildView(doc, opts)
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("execute document template: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) buildView(doc domain.Document, opts Options) documentView {
	bw := opts.ColorMode == ColorModeBW

	view := documentView{
		Title:       "INVOICE",
		NumberLabel: "Invoice No:",
		Number:      doc.Number,
		Date:        formatDate(doc.Date),
		FromLabel:   "Invoice From",
		ToLabel:     "Invoice For",
		From:        toPartyView(doc.From),
		To:          toPartyView(doc.To),
		LogoSrc:     template.URL(r.resolveLogo(doc.Logo)),
		HeaderColor: "#345261",
		LabelColor:  "#fff",
	}
	if doc.Type == domain.TypeQuotation {
		view.Title = "QUOTATION"
		view.NumberLabel = "Quotation No:"
		view.FromLabel = "Quotation From"
		view.ToLabel = "Quotation For"
	}
	if bw {
		view.HeaderColor = "#e6e6e6"
		view.LabelColor = "#000"
		view.LogoStyle = "filter: grayscale(100%);"
	}

	chunks := render.Paginate(doc.Items)
	for pi, chunk := range chunks {
		page := pageView{
			Continuation: pi > 0,
			Last:         pi == len(chunks)-1,
		}
		for ri, it := range chunk {
			page.Rows = append(page.Rows, toRowView(it, pi*render.RowsPerPage+ri))
		}
		view.Pages = append(view.Pages, page)
	}

	totals := doc.Totals()
	view.Summary = summaryView{
		Subtotal:        "₹" + money.Format(totals.Subtotal),
		CGST:            "₹" + money.Format(totals.CGST),
		SGST:            "₹" + money.Format(totals.SGST),
		HasDiscount:     !totals.DiscountPercent.IsZero(),
		DiscountPercent: totals.DiscountPercent.String(),
		DiscountAmount:  "₹" + money.Format(totals.DiscountAmount),
		RoundOff:        totals.RoundOff,
		RoundOffDelta:   "₹" + money.Format(totals.RoundOffDelta),
		Total:           "₹" + money.Format(totals.Payable),
		Words:           money.Words(totals.Payable.Round(0).IntPart()),
	}

	if doc.ShowAdditionalInfo && strings.TrimSpace(doc.AdditionalInfo) != "" {
		view.ShowInfo = true
		view.Info = multiline(doc.AdditionalInfo)
	}
	return view
}

func toRowView(it domain.LineItem, index int) rowView {
	tax := money.ItemTax(it.Amount, it.GSTPercent)
	row := rowView{
		Serial:      fmt.Sprintf("%02d", index+1),
		Name:        it.Name,
		Description: it.Description,
		Amount:      "₹" + money.Format(it.Amount),
		GSTPercent:  "–",
		CGST:        "–",
		SGST:        "–",
		Total:       "₹" + money.Format(it.Amount),
	}
	if !it.GSTPercent.IsZero() {
		row.GSTPercent = it.GSTPercent.String() + "%"
		row.CGST = "₹" + money.Format(tax.CGST)
		row.SGST = "₹" + money.Format(tax.SGST)
		row.Total = "₹" + money.Format(tax.Total)
	}
	return row
}

func toPartyView(p domain.Party) partyView {
	return partyView{
		Name:    p.Name,
		Address: multiline(p.Address),
		Email:   p.Email,
		Phone:   p.Phone,
	}
}

// resolveLogo picks the logo source in priority order: inlined data URL,
// configured file path, then the public URL path.
func (r *Renderer) resolveLogo(logo *domain.Logo) string {
	if logo != nil && logo.DataURL != "" {
		return logo.DataURL
	}
	if src := loadBase64(r.logoPath); src != "" {
		return src
	}
	return r.logoURL
}

func loadBase64(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		ext = "png"
	}
	return fmt.Sprintf("data:image/%s;base64,%s", ext, base64.StdEncoding.EncodeToString(data))
}

func multiline(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
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
