package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var (
	ErrNotFound             = errors.New("user not found")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrNameMissing          = errors.New("name is required")
	ErrUsernameMissing      = errors.New("username is required")
	ErrPasswordMissing      = errors.New("password is required")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidID            = errors.New("invalid user id")
	ErrChallengeInvalid     = errors.New("code is invalid or expired")
	ErrChallengeNotVerified = errors.New("code has not been verified")
	ErrWeakPassword         = errors.New("password must be at least 6 characters with upper, lower and digit")
	ErrSamePassword         = errors.New("new password must differ from the current one")
	ErrNoRecoveryAccount    = errors.New("no account eligible for password recovery")
)

// Access is the per-feature capability set shown in the admin UI and
// enforced by the authorization gate.
type Access struct {
	Job        bool `json:"job"`
	Blogs      bool `json:"blogs"`
	Gallery    bool `json:"gallery"`
	Applicants bool `json:"applicants"`
	Invoice    bool `json:"invoice"`
	Quotation  bool `json:"quotation"`
}

// Features lists the enabled capability names.
func (a Access) Features() []string {
	var features []string
	for _, f := range []struct {
		name    string
		enabled bool
	}{
		{"job", a.Job},
		{"blogs", a.Blogs},
		{"gallery", a.Gallery},
		{"applicants", a.Applicants},
		{"invoice", a.Invoice},
		{"quotation", a.Quotation},
	} {
		if f.enabled {
			features = append(features, f.name)
		}
	}
	return features
}

// PasswordResetChallenge is the one-time recovery code state: issued,
// then verified, then consumed by a successful reset. A new issuance
// always starts the cycle over.
type PasswordResetChallenge struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
	Verified  bool      `json:"verified"`
}

func (c *PasswordResetChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

type User struct {
	ID             snowflake.ID            `json:"id" gorm:"primaryKey"`
	Name           string                  `json:"name"`
	Phone          string                  `json:"phone"`
	Username       string                  `json:"username" gorm:"uniqueIndex"`
	Email          string                  `json:"email"`
	PasswordHash   string                  `json:"-" gorm:"column:password_hash"`
	Role           string                  `json:"role"`
	Access         Access                  `json:"access" gorm:"serializer:json"`
	ResetChallenge *PasswordResetChallenge `json:"-" gorm:"serializer:json"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// Subject is the authorization identity for this user.
func (u User) Subject() string {
	return "user:" + u.ID.String()
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, user *User) error
	Update(ctx context.Context, db *gorm.DB, user *User) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*User, error)
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*User, error)
	List(ctx context.Context, db *gorm.DB) ([]User, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

type Service interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user User, password string) (User, error)
	Delete(ctx context.Context, id string) error
	Authenticate(ctx context.Context, username, password string) (User, error)

	// Password recovery for the administrative account.
	IssueResetChallenge(ctx context.Context) error
	VerifyResetChallenge(ctx context.Context, code string) error
	ResetPassword(ctx context.Context, newPassword string) error
}
