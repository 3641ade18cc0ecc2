package imagecodec

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestParse(t *testing.T) {
	t.Parallel()

	gifPayload := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")

	tests := []struct {
		name     string
		value    string
		wantOK   bool
		wantErr  error
		wantName string
		wantLen  int
	}{
		{
			name:     "png",
			value:    "data:image/png;base64,iVBORw0KGgo=",
			wantOK:   true,
			wantName: "temp.png",
			wantLen:  len(pngSignature),
		},
		{
			name:     "gif",
			value:    "data:image/gif;base64," + base64.StdEncoding.EncodeToString(gifPayload),
			wantOK:   true,
			wantName: "temp.gif",
			wantLen:  len(gifPayload),
		},
		{
			name:   "plain string passes through",
			value:  "https://example.com/cat.png",
			wantOK: false,
		},
		{
			name:   "empty string passes through",
			value:  "",
			wantOK: false,
		},
		{
			name:    "missing separator",
			value:   "data:image/png,iVBORw0KGgo=",
			wantOK:  true,
			wantErr: ErrFormat,
		},
		{
			name:    "missing subtype",
			value:   "data:image;base64,iVBORw0KGgo=",
			wantOK:  true,
			wantErr: ErrFormat,
		},
		{
			name:    "broken base64",
			value:   "data:image/png;base64,!!!not-base64",
			wantOK:  true,
			wantErr: ErrDecode,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, ok, err := Parse(tt.value)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if !ok {
				require.Equal(t, File{}, f)
				return
			}
			require.Equal(t, tt.wantName, f.Name)
			require.Equal(t, tt.wantLen, f.Size())
		})
	}
}

func TestParse_ExtensionMatchesSubtype(t *testing.T) {
	t.Parallel()

	payload := []byte{1, 2, 3, 4, 5}
	for _, ext := range []string{"png", "jpeg", "webp", "svg+xml"} {
		f, ok, err := Parse("data:image/" + ext + ";base64," + base64.StdEncoding.EncodeToString(payload))
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, ext, f.Ext())
		require.Equal(t, payload, f.Content)
	}
}

func TestSniff(t *testing.T) {
	t.Parallel()

	mt, err := Sniff(pngSignature)
	require.NoError(t, err)
	require.Equal(t, "image/png", mt)

	_, err = Sniff([]byte("just some text"))
	require.ErrorIs(t, err, ErrNotImage)

	_, err = Sniff(nil)
	require.ErrorIs(t, err, ErrNotImage)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	gif := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")

	tests := []struct {
		name     string
		in       File
		wantName string
		wantErr  error
	}{
		{name: "matching subtype", in: File{Name: "temp.png", Content: pngSignature}, wantName: "temp.png"},
		{name: "declared subtype replaced", in: File{Name: "temp.php", Content: pngSignature}, wantName: "temp.png"},
		{name: "gif declared as jpeg", in: File{Name: "cat.jpeg", Content: gif}, wantName: "cat.gif"},
		{name: "upload without extension", in: File{Name: "cat", Content: pngSignature}, wantName: "cat.png"},
		{name: "not an image", in: File{Name: "temp.png", Content: []byte("<?php echo 1;")}, wantErr: ErrNotImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Verify(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantName, got.Name)
			require.Equal(t, tt.in.Content, got.Content)
		})
	}
}
