package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/spangleswebx/backoffice/internal/blog/domain"
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
		log:   p.Log.Named("blog.service"),
		genID: p.GenID,
		repo:  p.Repo,
		store: p.Store,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Blog, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Blog, error) {
	blogID, err := parseID(id)
	if err != nil {
		return domain.Blog{}, err
	}
	blog, err := s.repo.FindByID(ctx, s.db, blogID)
	if err != nil {
		return domain.Blog{}, err
	}
	return *blog, nil
}

func (s *Service) Create(ctx context.Context, blog domain.Blog, image string) (domain.Blog, error) {
	if err := validate(blog); err != nil {
		return domain.Blog{}, err
	}

	now := time.Now().UTC()
	blog.ID = s.genID.Generate()
	blog.Slug = slug.Make(blog.Title)
	blog.Image = image
	blog.CreatedAt = now
	blog.UpdatedAt = now

	if err := s.repo.Insert(ctx, s.db, &blog); err != nil {
		return domain.Blog{}, err
	}
	return blog, nil
}

func (s *Service) Update(ctx context.Context, id string, blog domain.Blog, image string) (domain.Blog, error) {
	blogID, err := parseID(id)
	if err != nil {
		return domain.Blog{}, err
	}
	existing, err := s.repo.FindByID(ctx, s.db, blogID)
	if err != nil {
		return domain.Blog{}, err
	}
	if err := validate(blog); err != nil {
		return domain.Blog{}, err
	}

	blog.ID = existing.ID
	blog.CreatedAt = existing.CreatedAt
	blog.UpdatedAt = time.Now().UTC()
	blog.Slug = slug.Make(blog.Title)

	blog.Image = existing.Image
	if image != "" {
		if existing.Image != "" {
			if err := s.store.Remove(existing.Image); err != nil {
				s.log.Warn("stale blog image not removed", zap.Error(err))
			}
		}
		blog.Image = image
	}

	if err := s.repo.Update(ctx, s.db, &blog); err != nil {
		return domain.Blog{}, err
	}
	return blog, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	blogID, err := parseID(id)
	if err != nil {
		return err
	}
	existing, err := s.repo.FindByID(ctx, s.db, blogID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, s.db, blogID); err != nil {
		return err
	}
	if existing.Image != "" {
		if err := s.store.Remove(existing.Image); err != nil {
			s.log.Warn("blog image not removed", zap.Error(err))
		}
	}
	return nil
}

func validate(blog domain.Blog) error {
	if strings.TrimSpace(blog.Title) == "" {
		return domain.ErrTitleMissing
	}
	if strings.TrimSpace(blog.Content) == "" {
		return domain.ErrContentMissing
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
