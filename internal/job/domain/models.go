package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

const StatusActive = "Active"

var (
	ErrNotFound     = errors.New("job not found")
	ErrTitleMissing = errors.New("job title is required")
	ErrInvalidID    = errors.New("invalid job id")
)

type Job struct {
	ID                     snowflake.ID `json:"id" gorm:"primaryKey"`
	JobTitle               string       `json:"jobTitle"`
	Designation            string       `json:"designation"`
	Category               string       `json:"category"`
	ExperienceYears        string       `json:"experienceYears"`
	ExperienceMonths       string       `json:"experienceMonths"`
	Experience             string       `json:"experience"`
	JobType                string       `json:"jobType"`
	Location               string       `json:"location"`
	JobSummary             string       `json:"jobSummary"`
	PreferredSkills        []string     `json:"preferredSkills" gorm:"serializer:json"`
	RequiredQualifications []string     `json:"requiredQualifications" gorm:"serializer:json"`
	Responsibilities       string       `json:"responsibilities"`
	PostedOn               string       `json:"postedOn"`
	Status                 string       `json:"status"`
	CreatedAt              time.Time    `json:"createdAt"`
	UpdatedAt              time.Time    `json:"updatedAt"`
}

func (Job) TableName() string { return "jobs" }

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, job *Job) error
	Update(ctx context.Context, db *gorm.DB, job *Job) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Job, error)
	List(ctx context.Context, db *gorm.DB) ([]Job, error)
	ListByStatus(ctx context.Context, db *gorm.DB, status string) ([]Job, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

type Service interface {
	List(ctx context.Context) ([]Job, error)
	ListPublic(ctx context.Context) ([]Job, error)
	Get(ctx context.Context, id string) (Job, error)
	Create(ctx context.Context, job Job) (Job, error)
	Update(ctx context.Context, id string, job Job) (Job, error)
	Delete(ctx context.Context, id string) error
}
