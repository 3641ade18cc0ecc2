package service

import (
	"context"

	"yatube/pkg/imagecodec"
	"yatube/pkg/logger"
)

const PostImagesDir = "posts/images"

//go:generate mockgen -source=media.go -destination=./media_storage_mock.go -package=service
type MediaStorage interface {
	// Save stores f under dir and returns its storage path.
	Save(ctx context.Context, dir string, f imagecodec.File) (string, error)
	// Remove deletes a stored file. A missing file is not an error.
	Remove(ctx context.Context, path string) error
	URL(path string) string
}

func saveImage(ctx context.Context, media MediaStorage, f *imagecodec.File) (*string, error) {
	if f == nil {
		return nil, nil
	}
	verified, err := imagecodec.Verify(*f)
	if err != nil {
		return nil, NewValidationError("image", MsgNotImage).WithCause(err)
	}
	p, err := media.Save(ctx, PostImagesDir, verified)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// discardImage removes a file saved for a write that did not go through.
func discardImage(ctx context.Context, media MediaStorage, p *string) {
	if p == nil {
		return
	}
	if err := media.Remove(ctx, *p); err != nil {
		logger.FromContext(ctx).Warn("remove orphaned image", "path", *p, "error", err)
	}
}
