package storage

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader by writing a form and
// parsing it back.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func TestLocalUploadFile(t *testing.T) {
	baseDir := t.TempDir()
	storage := &localStorage{baseDir: baseDir, publicPath: "/uploads"}

	header := fileHeader(t, "tea.png", "image/png", []byte("png-bytes"))
	objectKey, err := storage.UploadFile("recipe-1", header, "recipes", AllowImage...)
	require.NoError(t, err)
	assert.Equal(t, "recipes/recipe-1.png", objectKey)

	stored, err := os.ReadFile(filepath.Join(baseDir, "recipes", "recipe-1.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), stored)
}

func TestLocalUploadFile_RejectsNonImage(t *testing.T) {
	storage := &localStorage{baseDir: t.TempDir(), publicPath: "/uploads"}

	header := fileHeader(t, "notes.txt", "text/plain", []byte("hello"))
	_, err := storage.UploadFile("recipe-1", header, "recipes", AllowImage...)
	require.ErrorIs(t, err, ErrFileTypeNotAllowed)
}

func TestLocalDeleteFile(t *testing.T) {
	baseDir := t.TempDir()
	storage := &localStorage{baseDir: baseDir, publicPath: "/uploads"}

	header := fileHeader(t, "tea.png", "image/png", []byte("png-bytes"))
	objectKey, err := storage.UploadFile("recipe-1", header, "recipes", AllowImage...)
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(objectKey))
	_, err = os.Stat(filepath.Join(baseDir, "recipes", "recipe-1.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalLinkRoundtrip(t *testing.T) {
	storage := &localStorage{baseDir: t.TempDir(), publicPath: "/uploads"}

	link := storage.GetPublicLinkKey("recipes/recipe-1.png")
	assert.Equal(t, "/uploads/recipes/recipe-1.png", link)
	assert.Equal(t, "recipes/recipe-1.png", storage.GetObjectKeyFromLink(link))

	// external URLs are not ours to manage
	assert.Equal(t, "", storage.GetObjectKeyFromLink("https://example.com/tea.jpg"))
}
