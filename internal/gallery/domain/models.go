package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("gallery not found")
	ErrItemNotFound = errors.New("gallery item not found")
	ErrTitleMissing = errors.New("gallery title is required")
	ErrNoFiles      = errors.New("at least one file is required")
	ErrInvalidID    = errors.New("invalid gallery id")
)

// Item is one uploaded media file inside a gallery. URL is the stored
// file name under the upload directory.
type Item struct {
	URL        string    `json:"url"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type Gallery struct {
	ID        snowflake.ID `json:"id" gorm:"primaryKey"`
	Title     string       `json:"title"`
	Items     []Item       `json:"items" gorm:"serializer:json"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (Gallery) TableName() string { return "galleries" }

// Upload is an incoming multipart file before it hits the store.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, g *Gallery) error
	Update(ctx context.Context, db *gorm.DB, g *Gallery) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Gallery, error)
	List(ctx context.Context, db *gorm.DB) ([]Gallery, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

type Service interface {
	List(ctx context.Context) ([]Gallery, error)
	Get(ctx context.Context, id string) (Gallery, error)
	Create(ctx context.Context, title string, uploads []Upload) (Gallery, error)
	// Append adds new files to an existing gallery.
	Append(ctx context.Context, id string, uploads []Upload) (Gallery, error)
	RemoveItem(ctx context.Context, id, filename string) (Gallery, error)
	Delete(ctx context.Context, id string) error
}
