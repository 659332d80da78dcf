package storage

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

// fileHeader builds a real multipart.FileHeader whose Open() works, by
// writing and re-reading an in-memory form.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="attachment"; filename=%q`, filename))
	partHeader.Set("Content-Type", contentType)
	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(int64(len(content)) + 4096)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["attachment"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSaveStoresUnderGeneratedName(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, 1024)

	content := []byte("fake jpeg bytes")
	name, err := store.Save(fileHeader(t, "evidence.jpg", "image/jpeg", content))
	require.NoError(t, err)

	// The stored name is generated, keeping only the extension.
	assert.NotEqual(t, "evidence.jpg", name)
	assert.Equal(t, ".jpg", filepath.Ext(name))

	stored, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestSaveAcceptsPDF(t *testing.T) {
	store := NewFileStore(t.TempDir(), 1024)
	_, err := store.Save(fileHeader(t, "report.pdf", "application/pdf", []byte("%PDF-1.4")))
	assert.NoError(t, err)
}

func TestValidateRejectsOversize(t *testing.T) {
	store := NewFileStore(t.TempDir(), 8)

	err := store.Validate(fileHeader(t, "big.png", "image/png", bytes.Repeat([]byte("x"), 64)))
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestValidateRejectsDisallowedContentType(t *testing.T) {
	store := NewFileStore(t.TempDir(), 1024)

	err := store.Validate(fileHeader(t, "tool.exe", "application/octet-stream", []byte("MZ")))
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, 1024)

	name, err := store.Save(fileHeader(t, "evidence.jpg", "image/jpeg", []byte("bytes")))
	require.NoError(t, err)

	require.NoError(t, store.Remove(name))
	_, statErr := os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(statErr))

	// Removing what is already gone, or nothing at all, is not an error.
	assert.NoError(t, store.Remove(name))
	assert.NoError(t, store.Remove(""))
}
