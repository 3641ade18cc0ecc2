// Package imagecodec turns inline "data:image/<subtype>;base64,<payload>"
// strings into named binary blobs.
package imagecodec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	marker    = "data:image"
	separator = ";base64,"

	// placeholderName is the base name given to every decoded blob; the
	// media storage makes it unique on save.
	placeholderName = "temp"
)

var (
	ErrFormat   = errors.New("malformed embedded image")
	ErrDecode   = errors.New("invalid base64 payload")
	ErrNotImage = errors.New("not an image")
)

type File struct {
	Name    string
	Content []byte
}

// Ext returns the extension without the leading dot.
func (f File) Ext() string {
	return strings.TrimPrefix(path.Ext(f.Name), ".")
}

func (f File) Size() int {
	return len(f.Content)
}

// IsDataURI reports whether value carries the embedded image marker.
func IsDataURI(value string) bool {
	return strings.HasPrefix(value, marker)
}

// Parse decodes value when it is an embedded image. ok is false when value
// does not carry the marker; the caller then handles it as a regular upload.
func Parse(value string) (f File, ok bool, err error) {
	if !IsDataURI(value) {
		return File{}, false, nil
	}

	header, payload, found := strings.Cut(value, separator)
	if !found {
		return File{}, true, fmt.Errorf("%w: missing %q", ErrFormat, separator)
	}

	ext := header[strings.LastIndex(header, "/")+1:]
	if ext == "" || ext == header {
		return File{}, true, fmt.Errorf("%w: no media subtype in %q", ErrFormat, header)
	}

	content, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return File{}, true, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return File{
		Name:    placeholderName + "." + ext,
		Content: content,
	}, true, nil
}

// Sniff returns the detected MIME type of content, failing with ErrNotImage
// for anything that is not an image.
func Sniff(content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrNotImage)
	}
	mt := mimetype.Detect(content)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mt.String())
	}
	return mt.String(), nil
}

// Verify checks that f is an image and renames it so the extension matches
// the detected content rather than the declared subtype.
func Verify(f File) (File, error) {
	if _, err := Sniff(f.Content); err != nil {
		return File{}, err
	}
	ext := mimetype.Detect(f.Content).Extension()
	if ext == "" {
		return f, nil
	}
	f.Name = strings.TrimSuffix(f.Name, path.Ext(f.Name)) + ext
	return f, nil
}
