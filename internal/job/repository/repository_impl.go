package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/spangleswebx/backoffice/internal/job/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository { return &repo{} }

func (r *repo) Insert(ctx context.Context, db *gorm.DB, job *domain.Job) error {
	return db.WithContext(ctx).Create(job).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, job *domain.Job) error {
	return db.WithContext(ctx).Save(job).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Job, error) {
	var job domain.Job
	if err := db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Job, error) {
	var jobs []domain.Job
	err := db.WithContext(ctx).Order("created_at desc, id desc").Find(&jobs).Error
	return jobs, err
}

func (r *repo) ListByStatus(ctx context.Context, db *gorm.DB, status string) ([]domain.Job, error) {
	var jobs []domain.Job
	err := db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at desc, id desc").
		Find(&jobs).Error
	return jobs, err
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.Job{}, "id = ?", id).Error
}
