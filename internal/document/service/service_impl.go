package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/spangleswebx/backoffice/internal/config"
	"github.com/spangleswebx/backoffice/internal/document/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var phoneRe = regexp.MustCompile(`^\d{10}$`)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Cfg   config.Config
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	repo        domain.Repository
	emailSuffix string
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("document.service"),
		genID:       p.GenID,
		repo:        p.Repo,
		emailSuffix: p.Cfg.RequiredEmailSuffix,
	}
}

func (s *Service) List(ctx context.Context, docType domain.Type) ([]domain.Document, error) {
	if !docType.Valid() {
		return nil, domain.ErrInvalidType
	}
	return s.repo.List(ctx, s.db, docType)
}

func (s *Service) Get(ctx context.Context, docType domain.Type, id string) (domain.Document, error) {
	doc, err := s.find(ctx, docType, id)
	if err != nil {
		return domain.Document{}, err
	}
	return *doc, nil
}

// find looks the document up and hides it when the type does not match,
// so a caller holding only the invoice capability cannot reach
// quotations through an invoice route (and vice versa).
func (s *Service) find(ctx context.Context, docType domain.Type, id string) (*domain.Document, error) {
	if !docType.Valid() {
		return nil, domain.ErrInvalidType
	}
	docID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	doc, err := s.repo.FindByID(ctx, s.db, docID)
	if err != nil {
		return nil, err
	}
	if doc.Type != docType {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

func (s *Service) Create(ctx context.Context, doc domain.Document) (domain.Document, error) {
	if err := s.validate(&doc); err != nil {
		return domain.Document{}, err
	}

	if strings.TrimSpace(doc.Number) == "" {
		number, err := s.NextNumber(ctx, doc.Type)
		if err != nil {
			return domain.Document{}, err
		}
		doc.Number = number
	}
	if strings.TrimSpace(doc.Date) == "" {
		doc.Date = time.Now().UTC().Format("2006-01-02")
	}

	now := time.Now().UTC()
	doc.ID = s.genID.Generate()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if err := s.repo.Insert(ctx, s.db, &doc); err != nil {
		return domain.Document{}, err
	}
	return doc, nil
}

func (s *Service) Update(ctx context.Context, docType domain.Type, id string, doc domain.Document) (domain.Document, error) {
	existing, err := s.find(ctx, docType, id)
	if err != nil {
		return domain.Document{}, err
	}

	doc.Type = existing.Type
	if err := s.validate(&doc); err != nil {
		return domain.Document{}, err
	}

	// Full replace, identity and creation time excepted.
	doc.ID = existing.ID
	doc.CreatedAt = existing.CreatedAt
	doc.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, &doc); err != nil {
		return domain.Document{}, err
	}
	return doc, nil
}

func (s *Service) Delete(ctx context.Context, docType domain.Type, id string) error {
	existing, err := s.find(ctx, docType, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, existing.ID)
}

// NextNumber proposes the next human-facing document number: prefix plus
// (max existing numeric suffix + 1), zero-padded to three digits. The
// number is advisory; two concurrent creations of the same type can race
// to the same value and that is accepted.
func (s *Service) NextNumber(ctx context.Context, docType domain.Type) (string, error) {
	if !docType.Valid() {
		return "", domain.ErrInvalidType
	}
	numbers, err := s.repo.Numbers(ctx, s.db, docType)
	if err != nil {
		return "", err
	}

	prefix := docType.Prefix()
	var last int
	for _, number := range numbers {
		n, err := strconv.Atoi(strings.TrimPrefix(number, prefix))
		if err != nil {
			continue
		}
		if n > last {
			last = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, last+1), nil
}

func (s *Service) validate(doc *domain.Document) error {
	if !doc.Type.Valid() {
		return domain.ErrInvalidType
	}

	if len(doc.Items) == 0 {
		return domain.ErrNoItems
	}
	for _, it := range doc.Items {
		if strings.TrimSpace(it.Name) == "" || it.Amount.IsNegative() {
			return domain.ErrInvalidItem
		}
	}

	if doc.DiscountPercent.IsNegative() || doc.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return domain.ErrInvalidDiscount
	}

	for _, party := range []domain.Party{doc.From, doc.To} {
		if strings.TrimSpace(party.Name) == "" ||
			strings.TrimSpace(party.Email) == "" ||
			strings.TrimSpace(party.Phone) == "" ||
			strings.TrimSpace(party.Address) == "" {
			return domain.ErrPartyIncomplete
		}
		if s.emailSuffix != "" && !strings.HasSuffix(party.Email, s.emailSuffix) {
			return domain.ErrInvalidEmail
		}
		if !phoneRe.MatchString(party.Phone) {
			return domain.ErrInvalidPhone
		}
	}

	// Quotations never carry additional info, whatever the caller sent.
	if doc.Type == domain.TypeQuotation {
		doc.ShowAdditionalInfo = false
		doc.AdditionalInfo = ""
	}
	return nil
}

func parseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
