package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spangleswebx/backoffice/internal/application/domain"
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
		log:   p.Log.Named("application.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Application, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Create(ctx context.Context, app domain.Application, resume domain.Resume) (domain.Application, error) {
	if strings.TrimSpace(app.YourName) == "" {
		return domain.Application{}, domain.ErrNameMissing
	}
	if len(resume.Data) == 0 {
		return domain.Application{}, domain.ErrResumeMissing
	}

	now := time.Now().UTC()
	app.ID = s.genID.Generate()
	app.Status = domain.StatusNew
	app.AppliedDate = now
	app.ResumeFilename = resume.Filename
	app.ResumeContentType = resume.ContentType
	app.ResumeData = resume.Data
	app.CreatedAt = now
	app.UpdatedAt = now

	if err := s.repo.Insert(ctx, s.db, &app); err != nil {
		return domain.Application{}, err
	}

	s.log.Info("application received",
		zap.String("name", app.YourName),
		zap.String("job_title", app.JobTitle),
	)

	app.ResumeData = nil
	return app, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (domain.Application, error) {
	appID, err := parseID(id)
	if err != nil {
		return domain.Application{}, err
	}
	if strings.TrimSpace(status) == "" {
		return domain.Application{}, domain.ErrStatusMissing
	}
	if _, err := s.repo.FindByID(ctx, s.db, appID); err != nil {
		return domain.Application{}, err
	}
	if err := s.repo.UpdateStatus(ctx, s.db, appID, status); err != nil {
		return domain.Application{}, err
	}

	updated, err := s.repo.FindByID(ctx, s.db, appID)
	if err != nil {
		return domain.Application{}, err
	}
	updated.ResumeData = nil
	return *updated, nil
}

func (s *Service) Resume(ctx context.Context, id string) (domain.Resume, error) {
	appID, err := parseID(id)
	if err != nil {
		return domain.Resume{}, err
	}
	app, err := s.repo.FindByID(ctx, s.db, appID)
	if err != nil {
		return domain.Resume{}, err
	}
	if len(app.ResumeData) == 0 {
		return domain.Resume{}, domain.ErrNotFound
	}
	return domain.Resume{
		Filename:    app.ResumeFilename,
		ContentType: app.ResumeContentType,
		Data:        app.ResumeData,
	}, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	appID, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, s.db, appID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, appID)
}

func parseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
