package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spangleswebx/backoffice/internal/gallery/domain"
	"github.com/spangleswebx/backoffice/internal/storage"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
	Store storage.Store
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
	store storage.Store
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("gallery.service"),
		genID: p.GenID,
		repo:  p.Repo,
		store: p.Store,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Gallery, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Gallery, error) {
	galleryID, err := parseID(id)
	if err != nil {
		return domain.Gallery{}, err
	}
	g, err := s.repo.FindByID(ctx, s.db, galleryID)
	if err != nil {
		return domain.Gallery{}, err
	}
	return *g, nil
}

func (s *Service) Create(ctx context.Context, title string, uploads []domain.Upload) (domain.Gallery, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Gallery{}, domain.ErrTitleMissing
	}
	if len(uploads) == 0 {
		return domain.Gallery{}, domain.ErrNoFiles
	}

	items, err := s.saveUploads(uploads)
	if err != nil {
		return domain.Gallery{}, err
	}

	now := time.Now().UTC()
	g := domain.Gallery{
		ID:        s.genID.Generate(),
		Title:     title,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, s.db, &g); err != nil {
		s.removeItems(items)
		return domain.Gallery{}, err
	}
	return g, nil
}

func (s *Service) Append(ctx context.Context, id string, uploads []domain.Upload) (domain.Gallery, error) {
	galleryID, err := parseID(id)
	if err != nil {
		return domain.Gallery{}, err
	}
	if len(uploads) == 0 {
		return domain.Gallery{}, domain.ErrNoFiles
	}
	g, err := s.repo.FindByID(ctx, s.db, galleryID)
	if err != nil {
		return domain.Gallery{}, err
	}

	items, err := s.saveUploads(uploads)
	if err != nil {
		return domain.Gallery{}, err
	}
	g.Items = append(g.Items, items...)
	g.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, g); err != nil {
		s.removeItems(items)
		return domain.Gallery{}, err
	}
	return *g, nil
}

func (s *Service) RemoveItem(ctx context.Context, id, filename string) (domain.Gallery, error) {
	galleryID, err := parseID(id)
	if err != nil {
		return domain.Gallery{}, err
	}
	g, err := s.repo.FindByID(ctx, s.db, galleryID)
	if err != nil {
		return domain.Gallery{}, err
	}

	// Copy into a fresh slice; filtering g.Items in place would let the
	// append overwrite the very entry being removed.
	kept := make([]domain.Item, 0, len(g.Items))
	var removedURL string
	found := false
	for _, it := range g.Items {
		if it.URL == filename && !found {
			removedURL = it.URL
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return domain.Gallery{}, domain.ErrItemNotFound
	}

	g.Items = kept
	g.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, g); err != nil {
		return domain.Gallery{}, err
	}
	if err := s.store.Remove(removedURL); err != nil {
		s.log.Warn("gallery file not removed", zap.String("file", removedURL), zap.Error(err))
	}
	return *g, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	galleryID, err := parseID(id)
	if err != nil {
		return err
	}
	g, err := s.repo.FindByID(ctx, s.db, galleryID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, s.db, galleryID); err != nil {
		return err
	}
	s.removeItems(g.Items)
	return nil
}

func (s *Service) saveUploads(uploads []domain.Upload) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(uploads))
	for _, up := range uploads {
		name, err := s.store.Save(up.Name, up.Data)
		if err != nil {
			s.removeItems(items)
			return nil, err
		}
		items = append(items, domain.Item{
			URL:        name,
			Type:       up.ContentType,
			Name:       up.Name,
			UploadedAt: time.Now().UTC(),
		})
	}
	return items, nil
}

func (s *Service) removeItems(items []domain.Item) {
	for _, it := range items {
		if err := s.store.Remove(it.URL); err != nil {
			s.log.Warn("gallery file not removed", zap.String("file", it.URL), zap.Error(err))
		}
	}
}

func parseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
