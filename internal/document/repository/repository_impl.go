package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/spangleswebx/backoffice/internal/document/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, doc *domain.Document) error {
	return db.WithContext(ctx).Create(doc).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, doc *domain.Document) error {
	return db.WithContext(ctx).Save(doc).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Document, error) {
	var doc domain.Document
	err := db.WithContext(ctx).First(&doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, docType domain.Type) ([]domain.Document, error) {
	var docs []domain.Document
	err := db.WithContext(ctx).
		Where("type = ?", docType).
		Order("created_at desc, id desc").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *repo) Numbers(ctx context.Context, db *gorm.DB, docType domain.Type) ([]string, error) {
	var numbers []string
	err := db.WithContext(ctx).
		Model(&domain.Document{}).
		Where("type = ?", docType).
		Pluck("number", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.Document{}, "id = ?", id).Error
}
