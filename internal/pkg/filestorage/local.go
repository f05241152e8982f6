package filestorage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/google/uuid"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory of stored files
	baseURL  string // public URL prefix the root is served under
}

// NewLocalStorage creates the base directory if needed
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save writes data to <base>/<dir>/<uuid><ext>
func (ls *LocalStorage) Save(data []byte, dir, ext, mimeType string) (*StoredFile, error) {
	rel, err := cleanRelative(dir)
	if err != nil {
		return nil, err
	}

	fullDir := filepath.Join(ls.basePath, filepath.FromSlash(rel))
	if err := os.MkdirAll(fullDir, 0o755); err != nil {
		logger.Error().Err(err).Str("path", fullDir).Msg("Failed to create subdirectory")
		return nil, fmt.Errorf("failed to create subdirectory: %w", err)
	}

	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	name := uuid.NewString() + strings.ToLower(ext)
	dst := filepath.Join(fullDir, name)

	if err := os.WriteFile(dst, data, 0o644); err != nil {
		logger.Error().Err(err).Str("path", dst).Msg("Failed to write file")
		_ = os.Remove(dst)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	stored := path.Join(rel, name)
	logger.Info().Str("saved_as", stored).Int("bytes", len(data)).Msg("File saved successfully")
	return &StoredFile{
		Path:     stored,
		URL:      ls.URL(stored),
		Size:     int64(len(data)),
		MimeType: mimeType,
	}, nil
}

// Delete removes a stored file. A missing file counts as deleted.
func (ls *LocalStorage) Delete(storedPath string) error {
	if storedPath == "" {
		return nil
	}
	rel, err := cleanRelative(storedPath)
	if err != nil || rel == "" {
		return fmt.Errorf("invalid file path: %q", storedPath)
	}

	full := filepath.Join(ls.basePath, filepath.FromSlash(rel))
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", full).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", full).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", full).Msg("File deleted successfully")
	return nil
}

// URL returns the public URL of a stored path
func (ls *LocalStorage) URL(storedPath string) string {
	return ls.baseURL + "/" + strings.TrimLeft(storedPath, "/")
}

// PathFromURL is the inverse of URL. It returns "" for URLs outside this storage.
func (ls *LocalStorage) PathFromURL(fileURL string) string {
	prefix := ls.baseURL + "/"
	if !strings.HasPrefix(fileURL, prefix) {
		return ""
	}
	return strings.TrimPrefix(fileURL, prefix)
}

// cleanRelative normalizes p into a slash separated path that stays below the root
func cleanRelative(p string) (string, error) {
	p = strings.ReplaceAll(p, "\\", "/")
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", fmt.Errorf("invalid file path: %q", p)
		}
	}
	return strings.TrimPrefix(path.Clean("/"+p), "/"), nil
}
