package source

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const model = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

func readAll(t *testing.T, path string) string {
	t.Helper()
	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.obj")
	require.NoError(t, os.WriteFile(path, []byte(model), 0o644))
	assert.Equal(t, model, readAll(t, path))
}

func TestOpenGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.obj.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(model))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	assert.Equal(t, model, readAll(t, path))
}

func TestOpenZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.obj.zst")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = zw.Write([]byte(model))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	assert.Equal(t, model, readAll(t, path))
}

func TestOpenCorruptGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gz")
	require.NoError(t, os.WriteFile(path, []byte(model), 0o644))
	_, err := Open(path)
	assert.Error(t, err)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.obj"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCompressed(t *testing.T) {
	assert.True(t, Compressed("a.obj.gz"))
	assert.True(t, Compressed("a.OBJ.ZST"))
	assert.False(t, Compressed("a.obj"))
	assert.False(t, Compressed("gz"))
}
