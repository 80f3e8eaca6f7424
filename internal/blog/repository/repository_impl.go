package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/spangleswebx/backoffice/internal/blog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository { return &repo{} }

func (r *repo) Insert(ctx context.Context, db *gorm.DB, blog *domain.Blog) error {
	return db.WithContext(ctx).Create(blog).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, blog *domain.Blog) error {
	return db.WithContext(ctx).Save(blog).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Blog, error) {
	var blog domain.Blog
	if err := db.WithContext(ctx).First(&blog, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &blog, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Blog, error) {
	var blogs []domain.Blog
	err := db.WithContext(ctx).Order("created_at desc, id desc").Find(&blogs).Error
	return blogs, err
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.Blog{}, "id = ?", id).Error
}
