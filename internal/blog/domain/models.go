package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("blog not found")
	ErrTitleMissing   = errors.New("blog title is required")
	ErrContentMissing = errors.New("blog content is required")
	ErrInvalidID      = errors.New("invalid blog id")
)

type Blog struct {
	ID        snowflake.ID `json:"id" gorm:"primaryKey"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Image     string       `json:"image"`
	Slug      string       `json:"slug"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (Blog) TableName() string { return "blogs" }

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, blog *Blog) error
	Update(ctx context.Context, db *gorm.DB, blog *Blog) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Blog, error)
	List(ctx context.Context, db *gorm.DB) ([]Blog, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

type Service interface {
	List(ctx context.Context) ([]Blog, error)
	Get(ctx context.Context, id string) (Blog, error)
	// Create stores the post; image is the already-persisted upload name,
	// empty when no image was attached.
	Create(ctx context.Context, blog Blog, image string) (Blog, error)
	Update(ctx context.Context, id string, blog Blog, image string) (Blog, error)
	Delete(ctx context.Context, id string) error
}
