package media

import (
	"strings"
	"testing"

	"yatube/pkg/imagecodec"

	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	t.Parallel()

	f := imagecodec.File{Name: "temp.png"}

	a := ObjectKey("posts/images/", f)
	b := ObjectKey("posts/images", f)

	require.True(t, strings.HasPrefix(a, "posts/images/temp_"), a)
	require.True(t, strings.HasSuffix(a, ".png"), a)
	require.NotEqual(t, a, b)

	noExt := ObjectKey("x", imagecodec.File{Name: "../"})
	require.True(t, strings.HasPrefix(noExt, "x/upload_"), noExt)
}

func TestJoinURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/media/posts/a.png", JoinURL("/media/", "/posts/a.png"))
	require.Equal(t, "http://cdn/bucket/posts/a.png", JoinURL("http://cdn/bucket", "posts/a.png"))
}
