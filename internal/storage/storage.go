// Package storage persists uploaded files on local disk under the
// configured upload directory. Stored names are random so uploads can
// never collide or traverse out of the directory.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spangleswebx/backoffice/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("storage",
	fx.Provide(New),
)

type Store interface {
	// Save writes data under a generated name and returns that name.
	Save(originalName string, data []byte) (string, error)
	Remove(name string) error
	// Path resolves a stored name to its on-disk location.
	Path(name string) string
}

type diskStore struct {
	dir string
	log *zap.Logger
}

func New(cfg config.Config, log *zap.Logger) (Store, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &diskStore{dir: cfg.UploadDir, log: log.Named("storage")}, nil
}

func (s *diskStore) Save(originalName string, data []byte) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	s.log.Debug("saved upload", zap.String("name", name), zap.Int("bytes", len(data)))
	return name, nil
}

func (s *diskStore) Remove(name string) error {
	// Stored names are flat uuids; anything else is not ours to delete.
	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("invalid stored name %q", name)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

func (s *diskStore) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}
