package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bububa/food-agents/components"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "label.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	img, err := Open(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MIMEType)

	_, err = Open(context.Background(), filepath.Join(dir, "missing.png"))
	assert.True(t, errors.Is(err, components.ErrValidation))

	_, err = Open(context.Background(), path, WithMaxSize(4))
	assert.True(t, errors.Is(err, ErrTooLarge))

	_, err = Open(context.Background(), dir)
	assert.Error(t, err)
}

func TestOpenHttp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/label.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(pngHeader)
	}))
	defer srv.Close()

	img, err := Open(context.Background(), srv.URL+"/label.png", WithHttpClient(srv.Client()))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, img.Data)

	_, err = Open(context.Background(), srv.URL+"/missing.png")
	assert.Error(t, err)
}

func TestNewS3(t *testing.T) {
	l, err := New("s3://bucket/labels/a.png")
	require.NoError(t, err)
	s, ok := l.(*S3)
	require.True(t, ok)
	assert.Equal(t, "bucket", s.bucket)
	assert.Equal(t, "labels/a.png", s.key)

	_, err = New("s3://bucket")
	assert.Error(t, err)
}
