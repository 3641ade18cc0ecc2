// Package local keeps media files on the local filesystem.
package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"yatube/internal/adapter/out/media"
	"yatube/pkg/imagecodec"
	"yatube/pkg/logger"
)

type Storage struct {
	root      string
	urlPrefix string
}

func New(root, urlPrefix string) (*Storage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &Storage{root: root, urlPrefix: urlPrefix}, nil
}

func (s *Storage) Root() string {
	return s.root
}

func (s *Storage) Save(ctx context.Context, dir string, f imagecodec.File) (string, error) {
	key := media.ObjectKey(dir, f)
	dst := filepath.Join(s.root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}
	if err := os.WriteFile(dst, f.Content, 0o644); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}

	logger.FromContext(ctx).Debug("media saved", "path", key, "size", f.Size())
	return key, nil
}

func (s *Storage) Remove(_ context.Context, path string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(path)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove media file: %w", err)
	}
	return nil
}

func (s *Storage) URL(path string) string {
	return media.JoinURL(s.urlPrefix, path)
}
