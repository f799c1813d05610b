package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalImageStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalImageStore(dir)
	require.NoError(t, err)

	t.Run("writes the file and returns its URL path", func(t *testing.T) {
		url, err := store.Save("Boeing 787 Dreamliner", ".jpg", strings.NewReader("image-bytes"))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(url, "/uploads/boeing-787-dreamliner-"))
		assert.True(t, strings.HasSuffix(url, ".jpg"))

		data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
		require.NoError(t, err)
		assert.Equal(t, "image-bytes", string(data))
	})

	t.Run("same name never collides", func(t *testing.T) {
		first, err := store.Save("Airbus A320", ".png", strings.NewReader("a"))
		require.NoError(t, err)
		second, err := store.Save("Airbus A320", ".png", strings.NewReader("b"))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("extension is lowercased", func(t *testing.T) {
		url, err := store.Save("Embraer", ".JPG", strings.NewReader("x"))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(url, ".jpg"))
	})
}

func TestNewLocalImageStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalImageStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
