package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/spangleswebx/backoffice/internal/money"
)

type Type string

const (
	TypeInvoice   Type = "invoice"
	TypeQuotation Type = "quotation"
)

func (t Type) Valid() bool {
	return t == TypeInvoice || t == TypeQuotation
}

// Prefix is the human-facing number prefix for the type.
func (t Type) Prefix() string {
	if t == TypeQuotation {
		return "QU"
	}
	return "IN"
}

// Party is an address block on a document. All fields are required for
// a document to be saved.
type Party struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// LineItem is one billed row. Amount is the sole tax base; GSTPercent
// is split exactly in half between CGST and SGST.
type LineItem struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	GSTPercent  decimal.Decimal `json:"gstPercent"`
}

// Logo is an inlined image, not a storage reference.
type Logo struct {
	Name    string `json:"name"`
	DataURL string `json:"dataUrl"`
}

// Document is an invoice or quotation. Both share one shape, tagged by
// Type; quotations never carry additional info.
type Document struct {
	ID                 snowflake.ID `gorm:"primaryKey" json:"id"`
	Type               Type         `gorm:"not null;index" json:"type"`
	Number             string       `gorm:"not null" json:"number"`
	Date               string       `json:"date"`
	Logo               *Logo        `gorm:"serializer:json" json:"logo"`
	From               Party        `gorm:"serializer:json" json:"from"`
	To                 Party        `gorm:"serializer:json" json:"to"`
	Items              []LineItem   `gorm:"serializer:json" json:"items"`
	DiscountPercent    decimal.Decimal `gorm:"type:numeric" json:"discountPercent"`
	RoundOff           bool         `json:"roundOff"`
	ShowAdditionalInfo bool         `json:"showAdditionalInfo"`
	AdditionalInfo     string       `json:"additionalInfo"`
	CreatedAt          time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Document) TableName() string { return "documents" }

// Totals recomputes the aggregate amounts. Nothing derived is ever stored.
func (d Document) Totals() money.Totals {
	lines := make([]money.Line, 0, len(d.Items))
	for _, it := range d.Items {
		lines = append(lines, money.Line{Amount: it.Amount, GSTPercent: it.GSTPercent})
	}
	return money.Compute(lines, d.DiscountPercent, d.RoundOff)
}

var (
	ErrNotFound        = errors.New("document_not_found")
	ErrInvalidType     = errors.New("invalid_document_type")
	ErrNoItems         = errors.New("invalid_items")
	ErrInvalidItem     = errors.New("invalid_item")
	ErrPartyIncomplete = errors.New("invalid_party")
	ErrInvalidEmail    = errors.New("invalid_email")
	ErrInvalidPhone    = errors.New("invalid_phone")
	ErrInvalidDiscount = errors.New("invalid_discount")
	ErrInvalidNumber   = errors.New("invalid_number")
	ErrInvalidID       = errors.New("invalid_document_id")
)
