package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/spangleswebx/backoffice/internal/gallery/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository { return &repo{} }

func (r *repo) Insert(ctx context.Context, db *gorm.DB, g *domain.Gallery) error {
	return db.WithContext(ctx).Create(g).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, g *domain.Gallery) error {
	return db.WithContext(ctx).Save(g).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Gallery, error) {
	var g domain.Gallery
	if err := db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Gallery, error) {
	var galleries []domain.Gallery
	err := db.WithContext(ctx).Order("created_at desc, id desc").Find(&galleries).Error
	return galleries, err
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.Gallery{}, "id = ?", id).Error
}
