package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/spangleswebx/backoffice/internal/application/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository { return &repo{} }

func (r *repo) Insert(ctx context.Context, db *gorm.DB, app *domain.Application) error {
	return db.WithContext(ctx).Create(app).Error
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status string) error {
	return db.WithContext(ctx).
		Model(&domain.Application{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Application, error) {
	var app domain.Application
	if err := db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Application, error) {
	var apps []domain.Application
	// Resume blobs stay out of list responses.
	err := db.WithContext(ctx).
		Omit("resume_data").
		Order("applied_date desc, id desc").
		Find(&apps).Error
	return apps, err
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.Application{}, "id = ?", id).Error
}
