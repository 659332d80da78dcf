// Package storage persists complaint attachments on local disk under
// generated names. Validation happens here, before any database write.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/cfm-kit/complaint-service/pkg/util"
)

// FileStore writes uploads beneath a base directory.
type FileStore struct {
	dir          string
	maxSizeBytes int64
}

// NewFileStore builds a store rooted at dir.
func NewFileStore(dir string, maxSizeBytes int64) *FileStore {
	return &FileStore{dir: dir, maxSizeBytes: maxSizeBytes}
}

// Validate rejects uploads that are not images or PDFs, or that exceed the
// size ceiling. It returns a ValidationError so rejection surfaces inline
// to the submitter.
func (s *FileStore) Validate(header *multipart.FileHeader) error {
	if header.Size > s.maxSizeBytes {
		return apperrors.NewValidationError("attachment exceeds maximum size", map[string]any{
			"max_bytes": s.maxSizeBytes,
			"size":      header.Size,
		})
	}
	contentType := header.Header.Get("Content-Type")
	if !allowedMIME(contentType) {
		return apperrors.NewValidationError("only images and PDFs are allowed", map[string]any{
			"content_type": contentType,
		})
	}
	return nil
}

// Save validates and stores the upload, returning the generated filename
// recorded in the attachments table.
func (s *FileStore) Save(header *multipart.FileHeader) (string, error) {
	if err := s.Validate(header); err != nil {
		return "", err
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := generatedName(header.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// LimitReader guards against a forged Content-Length.
	if _, err := io.Copy(dst, io.LimitReader(src, s.maxSizeBytes+1)); err != nil {
		_ = os.Remove(filepath.Join(s.dir, name))
		return "", err
	}
	return name, nil
}

// Remove deletes a stored file; used to undo a save when the surrounding
// database transaction rolls back.
func (s *FileStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func allowedMIME(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") || contentType == "application/pdf"
}

func generatedName(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%s%s", uuid.NewString(), ext)
}
