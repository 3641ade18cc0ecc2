// Package media holds the naming rules shared by the media storages.
package media

import (
	"path"
	"strings"

	"yatube/pkg/imagecodec"

	"github.com/google/uuid"
)

// ObjectKey returns a fresh storage path for f under dir. The original base
// name is kept and a random suffix makes it unique.
func ObjectKey(dir string, f imagecodec.File) string {
	base := strings.TrimSuffix(path.Base(f.Name), path.Ext(f.Name))
	if base == "" || base == "/" || strings.HasPrefix(base, ".") {
		base = "upload"
	}
	name := base + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	if ext := f.Ext(); ext != "" {
		name += "." + ext
	}
	return path.Join(strings.Trim(dir, "/"), name)
}

// JoinURL glues a public prefix and a storage path with exactly one slash.
func JoinURL(prefix, p string) string {
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(p, "/")
}
