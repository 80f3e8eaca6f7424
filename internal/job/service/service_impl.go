package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spangleswebx/backoffice/internal/job/domain"
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
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("job.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Job, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) ListPublic(ctx context.Context) ([]domain.Job, error) {
	return s.repo.ListByStatus(ctx, s.db, domain.StatusActive)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Job, error) {
	jobID, err := parseID(id)
	if err != nil {
		return domain.Job{}, err
	}
	job, err := s.repo.FindByID(ctx, s.db, jobID)
	if err != nil {
		return domain.Job{}, err
	}
	return *job, nil
}

func (s *Service) Create(ctx context.Context, job domain.Job) (domain.Job, error) {
	if strings.TrimSpace(job.JobTitle) == "" {
		return domain.Job{}, domain.ErrTitleMissing
	}
	if job.Status == "" {
		job.Status = domain.StatusActive
	}
	if job.PostedOn == "" {
		job.PostedOn = time.Now().UTC().Format("2006-01-02")
	}

	now := time.Now().UTC()
	job.ID = s.genID.Generate()
	job.CreatedAt = now
	job.UpdatedAt = now

	if err := s.repo.Insert(ctx, s.db, &job); err != nil {
		return domain.Job{}, err
	}
	return job, nil
}

func (s *Service) Update(ctx context.Context, id string, job domain.Job) (domain.Job, error) {
	jobID, err := parseID(id)
	if err != nil {
		return domain.Job{}, err
	}
	existing, err := s.repo.FindByID(ctx, s.db, jobID)
	if err != nil {
		return domain.Job{}, err
	}
	if strings.TrimSpace(job.JobTitle) == "" {
		return domain.Job{}, domain.ErrTitleMissing
	}

	job.ID = existing.ID
	job.CreatedAt = existing.CreatedAt
	job.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, &job); err != nil {
		return domain.Job{}, err
	}
	return job, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	jobID, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, s.db, jobID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, jobID)
}

func parseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
