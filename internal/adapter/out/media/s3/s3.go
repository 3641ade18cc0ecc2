// Package s3 keeps media objects in an S3-compatible bucket via minio-go.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"yatube/internal/adapter/out/media"
	"yatube/pkg/imagecodec"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	// PublicURL is the prefix objects are served from, bucket included.
	PublicURL string
}

type Storage struct {
	cfg    Config
	client *minio.Client
}

func New(cfg Config) (*Storage, error) {
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "http://"), "https://")
	cl, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	if cfg.PublicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		cfg.PublicURL = fmt.Sprintf("%s://%s/%s", scheme, endpoint, cfg.Bucket)
	}
	return &Storage{cfg: cfg, client: cl}, nil
}

func (s *Storage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return err
	}
	if !exists {
		return s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{})
	}
	return nil
}

func (s *Storage) Remove(ctx context.Context, path string) error {
	if err := s.client.RemoveObject(ctx, s.cfg.Bucket, path, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", path, err)
	}
	return nil
}

func (s *Storage) Save(ctx context.Context, dir string, f imagecodec.File) (string, error) {
	contentType, err := imagecodec.Sniff(f.Content)
	if err != nil {
		return "", err
	}

	key := media.ObjectKey(dir, f)
	_, err = s.client.PutObject(ctx, s.cfg.Bucket, key,
		bytes.NewReader(f.Content), int64(f.Size()),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return key, nil
}

func (s *Storage) URL(path string) string {
	return media.JoinURL(s.cfg.PublicURL, path)
}
