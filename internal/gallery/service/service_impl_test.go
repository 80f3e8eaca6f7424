package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	appconfig "github.com/spangleswebx/backoffice/internal/config"
	"github.com/spangleswebx/backoffice/internal/gallery/domain"
	"github.com/spangleswebx/backoffice/internal/gallery/repository"
	"github.com/spangleswebx/backoffice/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, string) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Gallery{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	dir := t.TempDir()
	store, err := storage.New(appconfig.Config{UploadDir: dir}, zap.NewNop())
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
		Store: store,
	})
	return svc, dir
}

func testUploads(names ...string) []domain.Upload {
	uploads := make([]domain.Upload, 0, len(names))
	for _, name := range names {
		uploads = append(uploads, domain.Upload{
			Name:        name,
			ContentType: "image/png",
			Data:        []byte(name + " bytes"),
		})
	}
	return uploads
}

func fileExists(t *testing.T, dir, name string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(dir, name))
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("stat %s: %v", name, err)
	}
	return err == nil
}

func TestCreatePersistsFiles(t *testing.T) {
	svc, dir := newTestService(t)
	ctx := context.Background()

	g, err := svc.Create(ctx, "Launch Party", testUploads("a.png", "b.png"))
	require.NoError(t, err)
	require.Len(t, g.Items, 2)
	for _, it := range g.Items {
		assert.True(t, fileExists(t, dir, it.URL), it.URL)
	}

	_, err = svc.Create(ctx, "", testUploads("a.png"))
	assert.ErrorIs(t, err, domain.ErrTitleMissing)

	_, err = svc.Create(ctx, "Empty", nil)
	assert.ErrorIs(t, err, domain.ErrNoFiles)
}

func TestRemoveMiddleItemDeletesOnlyThatFile(t *testing.T) {
	svc, dir := newTestService(t)
	ctx := context.Background()

	g, err := svc.Create(ctx, "Event", testUploads("first.png", "second.png", "third.png"))
	require.NoError(t, err)
	require.Len(t, g.Items, 3)

	removed := g.Items[1]
	updated, err := svc.RemoveItem(ctx, g.ID.String(), removed.URL)
	require.NoError(t, err)

	require.Len(t, updated.Items, 2)
	assert.Equal(t, g.Items[0].URL, updated.Items[0].URL)
	assert.Equal(t, g.Items[2].URL, updated.Items[1].URL)

	assert.False(t, fileExists(t, dir, removed.URL), "removed item's file must be gone")
	assert.True(t, fileExists(t, dir, updated.Items[0].URL))
	assert.True(t, fileExists(t, dir, updated.Items[1].URL))
}

func TestRemoveFirstAndLastItem(t *testing.T) {
	svc, dir := newTestService(t)
	ctx := context.Background()

	g, err := svc.Create(ctx, "Event", testUploads("first.png", "second.png", "third.png"))
	require.NoError(t, err)

	updated, err := svc.RemoveItem(ctx, g.ID.String(), g.Items[0].URL)
	require.NoError(t, err)
	assert.False(t, fileExists(t, dir, g.Items[0].URL))

	last := updated.Items[len(updated.Items)-1]
	updated, err = svc.RemoveItem(ctx, g.ID.String(), last.URL)
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.False(t, fileExists(t, dir, last.URL))
	assert.True(t, fileExists(t, dir, updated.Items[0].URL))
}

func TestRemoveUnknownItem(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	g, err := svc.Create(ctx, "Event", testUploads("only.png"))
	require.NoError(t, err)

	_, err = svc.RemoveItem(ctx, g.ID.String(), "nope.png")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestDeleteGalleryRemovesAllFiles(t *testing.T) {
	svc, dir := newTestService(t)
	ctx := context.Background()

	g, err := svc.Create(ctx, "Event", testUploads("a.png", "b.png"))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, g.ID.String()))

	for _, it := range g.Items {
		assert.False(t, fileExists(t, dir, it.URL), it.URL)
	}
	_, err = svc.Get(ctx, g.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
