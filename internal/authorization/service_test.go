package authorization

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	svc, err := New(db, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestAuthorizeDeniesUnknownSubject(t *testing.T) {
	svc := newTestService(t)
	err := svc.Authorize(context.Background(), "user:1", ObjectInvoice, ActionAny)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSyncUserAccessGrantsFeatures(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SyncUserAccess("user:1", false, []string{ObjectInvoice, ObjectBlogs}))

	assert.NoError(t, svc.Authorize(ctx, "user:1", ObjectInvoice, ActionAny))
	assert.NoError(t, svc.Authorize(ctx, "user:1", ObjectBlogs, ActionAny))
	assert.ErrorIs(t, svc.Authorize(ctx, "user:1", ObjectGallery, ActionAny), ErrForbidden)
	assert.ErrorIs(t, svc.Authorize(ctx, "user:1", ObjectUsers, ActionAny), ErrForbidden)
}

func TestSyncUserAccessReplacesOldGrants(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SyncUserAccess("user:1", false, []string{ObjectInvoice}))
	require.NoError(t, svc.SyncUserAccess("user:1", false, []string{ObjectGallery}))

	assert.ErrorIs(t, svc.Authorize(ctx, "user:1", ObjectInvoice, ActionAny), ErrForbidden)
	assert.NoError(t, svc.Authorize(ctx, "user:1", ObjectGallery, ActionAny))
}

func TestAdminRoleBypassesFeatureChecks(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SyncUserAccess("user:9", true, nil))

	for _, object := range []string{ObjectJob, ObjectInvoice, ObjectUsers, ObjectPrint} {
		assert.NoError(t, svc.Authorize(ctx, "user:9", object, ActionAny), object)
	}
}

func TestRemoveUserRevokesEverything(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SyncUserAccess("user:2", true, []string{ObjectInvoice}))
	require.NoError(t, svc.RemoveUser("user:2"))

	assert.ErrorIs(t, svc.Authorize(ctx, "user:2", ObjectInvoice, ActionAny), ErrForbidden)
}
