package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/spangleswebx/backoffice/internal/authorization"
	"github.com/spangleswebx/backoffice/internal/config"
	"github.com/spangleswebx/backoffice/internal/providers/email"
	"github.com/spangleswebx/backoffice/internal/user/domain"
	"github.com/spangleswebx/backoffice/internal/user/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recordingMail struct {
	sent []email.Message
	fail bool
}

func (m *recordingMail) Send(ctx context.Context, msg email.Message) error {
	if m.fail {
		return errors.New("relay down")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func newTestService(t *testing.T, mail *recordingMail) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	authz, err := authorization.New(db, zap.NewNop())
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Cfg:   config.Config{AdminUsername: "Webx Admin"},
		GenID: node,
		Repo:  repository.Provide(),
		Authz: authz,
		Mail:  mail,
	})
	return svc.(*Service), db
}

func createAdmin(t *testing.T, svc *Service) domain.User {
	t.Helper()
	admin, err := svc.Create(context.Background(), domain.User{
		Name:     "Webx Admin",
		Username: "Webx Admin",
		Email:    "admin@gmail.com",
		Role:     domain.RoleAdmin,
	}, "Current1")
	require.NoError(t, err)
	return admin
}

func TestCreateRejectsDuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t, &recordingMail{})
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.User{Name: "A", Username: "alpha"}, "Secret1")
	require.NoError(t, err)

	_, err = svc.Create(ctx, domain.User{Name: "B", Username: "alpha"}, "Secret1")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService(t, &recordingMail{})
	ctx := context.Background()
	createAdmin(t, svc)

	user, err := svc.Authenticate(ctx, "Webx Admin", "Current1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	_, err = svc.Authenticate(ctx, "Webx Admin", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "Current1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestResetFlowHappyPath(t *testing.T) {
	mail := &recordingMail{}
	svc, db := newTestService(t, mail)
	ctx := context.Background()
	createAdmin(t, svc)

	require.NoError(t, svc.IssueResetChallenge(ctx))
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "admin@gmail.com", mail.sent[0].To)

	code := extractCode(t, mail.sent[0].Body)
	require.NoError(t, svc.VerifyResetChallenge(ctx, code))
	require.NoError(t, svc.ResetPassword(ctx, "Changed2"))

	_, err := svc.Authenticate(ctx, "Webx Admin", "Changed2")
	assert.NoError(t, err)

	// The challenge is consumed.
	var admin domain.User
	require.NoError(t, db.First(&admin, "username = ?", "Webx Admin").Error)
	assert.Nil(t, admin.ResetChallenge)
}

func TestResetRequiresVerifiedChallenge(t *testing.T) {
	mail := &recordingMail{}
	svc, _ := newTestService(t, mail)
	ctx := context.Background()
	createAdmin(t, svc)

	assert.ErrorIs(t, svc.ResetPassword(ctx, "Changed2"), domain.ErrChallengeNotVerified)

	require.NoError(t, svc.IssueResetChallenge(ctx))
	assert.ErrorIs(t, svc.ResetPassword(ctx, "Changed2"), domain.ErrChallengeNotVerified)
}

func TestVerifyRejectsWrongOrExpiredCode(t *testing.T) {
	mail := &recordingMail{}
	svc, db := newTestService(t, mail)
	ctx := context.Background()
	createAdmin(t, svc)

	require.NoError(t, svc.IssueResetChallenge(ctx))
	assert.ErrorIs(t, svc.VerifyResetChallenge(ctx, "000000"), domain.ErrChallengeInvalid)

	// Force expiry.
	var admin domain.User
	require.NoError(t, db.First(&admin, "username = ?", "Webx Admin").Error)
	admin.ResetChallenge.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	require.NoError(t, db.Save(&admin).Error)

	code := extractCode(t, mail.sent[0].Body)
	assert.ErrorIs(t, svc.VerifyResetChallenge(ctx, code), domain.ErrChallengeInvalid)
}

func TestNewIssuanceClearsVerification(t *testing.T) {
	mail := &recordingMail{}
	svc, _ := newTestService(t, mail)
	ctx := context.Background()
	createAdmin(t, svc)

	require.NoError(t, svc.IssueResetChallenge(ctx))
	require.NoError(t, svc.VerifyResetChallenge(ctx, extractCode(t, mail.sent[0].Body)))

	// A second OTP restarts the cycle; the old verification is gone.
	require.NoError(t, svc.IssueResetChallenge(ctx))
	assert.ErrorIs(t, svc.ResetPassword(ctx, "Changed2"), domain.ErrChallengeNotVerified)
}

func TestResetRejectsWeakAndSamePassword(t *testing.T) {
	mail := &recordingMail{}
	svc, _ := newTestService(t, mail)
	ctx := context.Background()
	createAdmin(t, svc)

	require.NoError(t, svc.IssueResetChallenge(ctx))
	require.NoError(t, svc.VerifyResetChallenge(ctx, extractCode(t, mail.sent[0].Body)))

	assert.ErrorIs(t, svc.ResetPassword(ctx, "short"), domain.ErrWeakPassword)
	assert.ErrorIs(t, svc.ResetPassword(ctx, "alllowercase1"), domain.ErrWeakPassword)
	assert.ErrorIs(t, svc.ResetPassword(ctx, "NODIGITS"), domain.ErrWeakPassword)
	assert.ErrorIs(t, svc.ResetPassword(ctx, "Current1"), domain.ErrSamePassword)
}

func TestConfirmationMailFailureDoesNotRollBack(t *testing.T) {
	mail := &recordingMail{}
	svc, _ := newTestService(t, mail)
	ctx := context.Background()
	createAdmin(t, svc)

	require.NoError(t, svc.IssueResetChallenge(ctx))
	code := extractCode(t, mail.sent[0].Body)
	require.NoError(t, svc.VerifyResetChallenge(ctx, code))

	mail.fail = true
	require.NoError(t, svc.ResetPassword(ctx, "Changed2"))

	_, err := svc.Authenticate(ctx, "Webx Admin", "Changed2")
	assert.NoError(t, err)
}

func TestStrongPassword(t *testing.T) {
	assert.True(t, strongPassword("Abcde1"))
	assert.False(t, strongPassword("Abc1"))
	assert.False(t, strongPassword("abcdef1"))
	assert.False(t, strongPassword("ABCDEF1"))
	assert.False(t, strongPassword("Abcdefg"))
}

var codeRe = regexp.MustCompile(`\d{6}`)

func extractCode(t *testing.T, body string) string {
	t.Helper()
	code := codeRe.FindString(body)
	require.NotEmpty(t, code)
	return code
}
