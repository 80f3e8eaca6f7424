package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode"

	"github.com/bwmarrin/snowflake"
	"github.com/spangleswebx/backoffice/internal/authorization"
	"github.com/spangleswebx/backoffice/internal/config"
	"github.com/spangleswebx/backoffice/internal/providers/email"
	"github.com/spangleswebx/backoffice/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const challengeTTL = 10 * time.Minute

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Cfg   config.Config
	GenID *snowflake.Node
	Repo  domain.Repository
	Authz *authorization.Service
	Mail  email.Provider
}

type Service struct {
	db            *gorm.DB
	log           *zap.Logger
	genID         *snowflake.Node
	repo          domain.Repository
	authz         *authorization.Service
	mail          email.Provider
	adminUsername string
}

func New(p Params) domain.Service {
	return &Service{
		db:            p.DB,
		log:           p.Log.Named("user.service"),
		genID:         p.GenID,
		repo:          p.Repo,
		authz:         p.Authz,
		mail:          p.Mail,
		adminUsername: p.Cfg.AdminUsername,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Create(ctx context.Context, user domain.User, password string) (domain.User, error) {
	if strings.TrimSpace(user.Name) == "" {
		return domain.User{}, domain.ErrNameMissing
	}
	if strings.TrimSpace(user.Username) == "" {
		return domain.User{}, domain.ErrUsernameMissing
	}
	if password == "" {
		return domain.User{}, domain.ErrPasswordMissing
	}
	if _, err := s.repo.FindByUsername(ctx, s.db, user.Username); err == nil {
		return domain.User{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	if user.Role != domain.RoleAdmin {
		user.Role = domain.RoleUser
	}
	now := time.Now().UTC()
	user.ID = s.genID.Generate()
	user.PasswordHash = string(hash)
	user.ResetChallenge = nil
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.repo.Insert(ctx, s.db, &user); err != nil {
		return domain.User{}, err
	}

	if err := s.authz.SyncUserAccess(user.Subject(), user.Role == domain.RoleAdmin, user.Access.Features()); err != nil {
		s.log.Error("access sync failed", zap.String("user", user.Username), zap.Error(err))
	}
	return user, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	userID, err := parseID(id)
	if err != nil {
		return err
	}
	user, err := s.repo.FindByID(ctx, s.db, userID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, s.db, userID); err != nil {
		return err
	}
	if err := s.authz.RemoveUser(user.Subject()); err != nil {
		s.log.Error("access revoke failed", zap.String("user", user.Username), zap.Error(err))
	}
	return nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, s.db, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return *user, nil
}

// IssueResetChallenge mails a fresh recovery code to the administrative
// account. Any previous challenge, verified or not, is discarded.
func (s *Service) IssueResetChallenge(ctx context.Context) error {
	admin, err := s.recoveryAccount(ctx)
	if err != nil {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	admin.ResetChallenge = &domain.PasswordResetChallenge{
		Code:      code,
		ExpiresAt: time.Now().UTC().Add(challengeTTL),
		Verified:  false,
	}
	admin.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, admin); err != nil {
		return err
	}

	return s.mail.Send(ctx, email.Message{
		To:      admin.Email,
		Subject: "Password Reset OTP",
		Body:    fmt.Sprintf("Your OTP for password reset is %s. It expires in 10 minutes.", code),
	})
}

func (s *Service) VerifyResetChallenge(ctx context.Context, code string) error {
	admin, err := s.recoveryAccount(ctx)
	if err != nil {
		return err
	}

	challenge := admin.ResetChallenge
	now := time.Now().UTC()
	if challenge == nil || challenge.Code != strings.TrimSpace(code) || challenge.Expired(now) {
		return domain.ErrChallengeInvalid
	}

	challenge.Verified = true
	admin.UpdatedAt = now
	return s.repo.Update(ctx, s.db, admin)
}

// ResetPassword consumes a verified challenge. A confirmation-mail
// failure is logged but never rolls the change back.
func (s *Service) ResetPassword(ctx context.Context, newPassword string) error {
	admin, err := s.recoveryAccount(ctx)
	if err != nil {
		return err
	}

	challenge := admin.ResetChallenge
	if challenge == nil || !challenge.Verified || challenge.Expired(time.Now().UTC()) {
		return domain.ErrChallengeNotVerified
	}
	if !strongPassword(newPassword) {
		return domain.ErrWeakPassword
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(newPassword)) == nil {
		return domain.ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin.PasswordHash = string(hash)
	admin.ResetChallenge = nil
	admin.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, admin); err != nil {
		return err
	}

	if err := s.mail.Send(ctx, email.Message{
		To:      admin.Email,
		Subject: "Password Changed",
		Body:    "Your password was changed successfully.",
	}); err != nil {
		s.log.Warn("password change confirmation not sent", zap.Error(err))
	}
	return nil
}

func (s *Service) recoveryAccount(ctx context.Context) (*domain.User, error) {
	admin, err := s.repo.FindByUsername(ctx, s.db, s.adminUsername)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoRecoveryAccount
		}
		return nil, err
	}
	return admin, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// strongPassword requires at least 6 characters with an upper-case
// letter, a lower-case letter and a digit.
func strongPassword(p string) bool {
	if len(p) < 6 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range p {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

func parseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
