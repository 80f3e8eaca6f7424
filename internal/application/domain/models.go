package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// StatusNew is the state every fresh application starts in.
const StatusNew = "view"

var (
	ErrNotFound      = errors.New("application not found")
	ErrNameMissing   = errors.New("applicant name is required")
	ErrResumeMissing = errors.New("resume attachment is required")
	ErrStatusMissing = errors.New("status is required")
	ErrInvalidID     = errors.New("invalid application id")
)

// Resume is the uploaded attachment, stored inline with the record.
type Resume struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"-"`
}

type Application struct {
	ID                snowflake.ID `json:"id" gorm:"primaryKey"`
	YourName          string       `json:"yourName"`
	YourEmail         string       `json:"yourEmail"`
	MobileNumber      string       `json:"mobileNumber"`
	JobTitle          string       `json:"jobTitle"`
	Designation       string       `json:"designation"`
	ExperienceYears   string       `json:"experienceYears"`
	Skills            string       `json:"skills"`
	SalaryExpectation string       `json:"salaryExpectation"`
	Description       string       `json:"description"`
	Status            string       `json:"status"`
	AppliedDate       time.Time    `json:"appliedDate"`
	ResumeFilename    string       `json:"resumeFilename"`
	ResumeContentType string       `json:"resumeContentType"`
	ResumeData        []byte       `json:"-"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

func (Application) TableName() string { return "applications" }

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, app *Application) error
	UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status string) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Application, error)
	List(ctx context.Context, db *gorm.DB) ([]Application, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

type Service interface {
	List(ctx context.Context) ([]Application, error)
	Create(ctx context.Context, app Application, resume Resume) (Application, error)
	// UpdateStatus is the only mutation an existing application accepts.
	UpdateStatus(ctx context.Context, id, status string) (Application, error)
	Resume(ctx context.Context, id string) (Resume, error)
	Delete(ctx context.Context, id string) error
}
