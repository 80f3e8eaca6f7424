package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, doc *Document) error
	Update(ctx context.Context, db *gorm.DB, doc *Document) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Document, error)
	List(ctx context.Context, db *gorm.DB, docType Type) ([]Document, error)
	Numbers(ctx context.Context, db *gorm.DB, docType Type) ([]string, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
