package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/spangleswebx/backoffice/internal/config"
	"github.com/spangleswebx/backoffice/internal/document/domain"
	"github.com/spangleswebx/backoffice/internal/document/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Document{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Cfg:   config.Config{RequiredEmailSuffix: "@gmail.com"},
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func validDocument(docType domain.Type) domain.Document {
	return domain.Document{
		Type: docType,
		From: domain.Party{
			Name:    "Webx Solutions",
			Email:   "webx@gmail.com",
			Phone:   "9876543210",
			Address: "12 MG Road, Bengaluru",
		},
		To: domain.Party{
			Name:    "Acme Traders",
			Email:   "acme@gmail.com",
			Phone:   "9123456780",
			Address: "4 Park Street, Kolkata",
		},
		Items: []domain.LineItem{{
			Name:       "Design",
			Amount:     decimal.NewFromInt(1000),
			GSTPercent: decimal.NewFromInt(18),
		}},
	}
}

func TestCreateAssignsNumberAndDate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validDocument(domain.TypeInvoice))
	require.NoError(t, err)
	assert.Equal(t, "IN001", created.Number)
	assert.NotEmpty(t, created.Date)
	assert.NotZero(t, created.ID)
}

func TestNextNumberSkipsGaps(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, number := range []string{"IN001", "IN003"} {
		doc := validDocument(domain.TypeInvoice)
		doc.Number = number
		_, err := svc.Create(ctx, doc)
		require.NoError(t, err)
	}

	next, err := svc.NextNumber(ctx, domain.TypeInvoice)
	require.NoError(t, err)
	assert.Equal(t, "IN004", next)
}

func TestNumberSequencesAreIndependentPerType(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validDocument(domain.TypeInvoice))
	require.NoError(t, err)

	quotation, err := svc.Create(ctx, validDocument(domain.TypeQuotation))
	require.NoError(t, err)
	assert.Equal(t, "QU001", quotation.Number)
}

func TestQuotationSuppressesAdditionalInfo(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc := validDocument(domain.TypeQuotation)
	doc.ShowAdditionalInfo = true
	doc.AdditionalInfo = "payment terms"

	created, err := svc.Create(ctx, doc)
	require.NoError(t, err)
	assert.False(t, created.ShowAdditionalInfo)
	assert.Empty(t, created.AdditionalInfo)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	noItems := validDocument(domain.TypeInvoice)
	noItems.Items = nil
	_, err := svc.Create(ctx, noItems)
	assert.ErrorIs(t, err, domain.ErrNoItems)

	badEmail := validDocument(domain.TypeInvoice)
	badEmail.To.Email = "acme@example.com"
	_, err = svc.Create(ctx, badEmail)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	badPhone := validDocument(domain.TypeInvoice)
	badPhone.From.Phone = "12345"
	_, err = svc.Create(ctx, badPhone)
	assert.ErrorIs(t, err, domain.ErrInvalidPhone)

	incomplete := validDocument(domain.TypeInvoice)
	incomplete.To.Address = ""
	_, err = svc.Create(ctx, incomplete)
	assert.ErrorIs(t, err, domain.ErrPartyIncomplete)

	badItem := validDocument(domain.TypeInvoice)
	badItem.Items[0].Amount = decimal.NewFromInt(-5)
	_, err = svc.Create(ctx, badItem)
	assert.ErrorIs(t, err, domain.ErrInvalidItem)
}

func TestDiscountPercentBounds(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	negative := validDocument(domain.TypeInvoice)
	negative.DiscountPercent = decimal.NewFromInt(-1)
	_, err := svc.Create(ctx, negative)
	assert.ErrorIs(t, err, domain.ErrInvalidDiscount)

	tooHigh := validDocument(domain.TypeInvoice)
	tooHigh.DiscountPercent = decimal.NewFromFloat(100.5)
	_, err = svc.Create(ctx, tooHigh)
	assert.ErrorIs(t, err, domain.ErrInvalidDiscount)

	full := validDocument(domain.TypeInvoice)
	full.DiscountPercent = decimal.NewFromInt(100)
	_, err = svc.Create(ctx, full)
	assert.NoError(t, err)
}

func TestUpdateReplacesButKeepsIdentity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validDocument(domain.TypeInvoice))
	require.NoError(t, err)

	changed := validDocument(domain.TypeInvoice)
	changed.Items[0].Name = "Development"
	changed.Number = created.Number

	updated, err := svc.Update(ctx, domain.TypeInvoice, created.ID.String(), changed)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Development", updated.Items[0].Name)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validDocument(domain.TypeInvoice))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, domain.TypeInvoice, created.ID.String()))

	_, err = svc.Get(ctx, domain.TypeInvoice, created.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(ctx, domain.TypeInvoice, created.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTypeMismatchReadsAsNotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	quotation, err := svc.Create(ctx, validDocument(domain.TypeQuotation))
	require.NoError(t, err)
	id := quotation.ID.String()

	_, err = svc.Get(ctx, domain.TypeInvoice, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Update(ctx, domain.TypeInvoice, id, validDocument(domain.TypeQuotation))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(ctx, domain.TypeInvoice, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The quotation survives untouched under its own type.
	kept, err := svc.Get(ctx, domain.TypeQuotation, id)
	require.NoError(t, err)
	assert.Equal(t, quotation.Number, kept.Number)
}

func TestGetRejectsMalformedID(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Get(context.Background(), domain.TypeInvoice, "not-a-number")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
