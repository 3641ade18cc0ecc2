package local

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"yatube/pkg/imagecodec"

	"github.com/stretchr/testify/require"
)

func TestStorage_Save(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	st, err := New(root, "/media/")
	require.NoError(t, err)

	content := []byte("\x89PNG\r\n\x1a\n")
	key, err := st.Save(context.Background(), "posts/images", imagecodec.File{Name: "temp.png", Content: content})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(key, "posts/images/temp_"))

	got, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(key)))
	require.NoError(t, err)
	require.Equal(t, content, got)

	require.Equal(t, "/media/"+key, st.URL(key))
}

func TestStorage_Remove(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	st, err := New(root, "/media/")
	require.NoError(t, err)

	ctx := context.Background()
	key, err := st.Save(ctx, "posts/images", imagecodec.File{Name: "temp.png", Content: []byte("\x89PNG\r\n\x1a\n")})
	require.NoError(t, err)

	require.NoError(t, st.Remove(ctx, key))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(key)))
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, st.Remove(ctx, key))
}
