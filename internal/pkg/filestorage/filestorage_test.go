package filestorage

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG
var pngPixel, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

func TestDecodeBase64(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString(pngPixel)

	data, declared, err := DecodeBase64(raw)
	require.NoError(t, err)
	assert.Equal(t, pngPixel, data)
	assert.Empty(t, declared)

	data, declared, err = DecodeBase64("data:image/png;base64," + raw)
	require.NoError(t, err)
	assert.Equal(t, pngPixel, data)
	assert.Equal(t, "image/png", declared)

	data, _, err = DecodeBase64(strings.TrimRight(raw, "="))
	require.NoError(t, err)
	assert.Equal(t, pngPixel, data)

	_, _, err = DecodeBase64("%%%not base64")
	assert.ErrorIs(t, err, ErrInvalidBase64)

	_, _, err = DecodeBase64("")
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestVerifyImage(t *testing.T) {
	img, err := VerifyImage(pngPixel, "image/png", 1024)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MimeType)
	assert.Equal(t, ".png", img.Ext)

	_, err = VerifyImage(pngPixel, "", 10)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = VerifyImage(pngPixel, "application/pdf", 0)
	assert.ErrorIs(t, err, ErrNotAnImage)

	_, err = VerifyImage([]byte("just some text"), "image/png", 0)
	assert.ErrorIs(t, err, ErrMimeMismatched)

	_, err = VerifyImage([]byte("just some text"), "", 0)
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	root := t.TempDir()
	ls, err := NewLocalStorage(root, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	stored, err := ls.Save(pngPixel, "media/general", "png", "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.Path, "media/general/"))
	assert.True(t, strings.HasSuffix(stored.Path, ".png"))
	assert.Equal(t, "http://localhost:8080/uploads/"+stored.Path, stored.URL)
	assert.Equal(t, int64(len(pngPixel)), stored.Size)
	assert.Equal(t, stored.Path, ls.PathFromURL(stored.URL))

	onDisk, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(stored.Path)))
	require.NoError(t, err)
	assert.Equal(t, pngPixel, onDisk)

	require.NoError(t, ls.Delete(stored.Path))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(stored.Path)))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, ls.Delete(stored.Path))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = ls.Save(pngPixel, "../outside", ".png", "image/png")
	assert.Error(t, err)

	assert.Error(t, ls.Delete("../../etc/passwd"))
	assert.Equal(t, "", ls.PathFromURL("https://elsewhere.example.com/a.png"))
}
