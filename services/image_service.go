package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Storage is the image storage contract: Upload returns an opaque URL, Delete
// takes one back. The local-disk implementation below backs the /uploads
// static route; a bucket-backed implementation can replace it without
// touching callers.
type Storage interface {
	Upload(data []byte, subdir string) (string, error)
	Delete(url string) error
}

type LocalStorage struct {
	Root string
}

func NewLocalStorage(root string) *LocalStorage {
	if root == "" {
		root = "uploads"
	}
	return &LocalStorage{Root: root}
}

func (s *LocalStorage) Upload(data []byte, subdir string) (string, error) {
	dir := filepath.Join(s.Root, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := fmt.Sprintf("%d.jpg", time.Now().UnixNano())
	fullpath := filepath.Join(dir, filename)

	if err := os.WriteFile(fullpath, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return "/" + filepath.ToSlash(filepath.Join(s.Root, subdir, filename)), nil
}

func (s *LocalStorage) Delete(url string) error {
	rel := strings.TrimPrefix(url, "/")
	if !strings.HasPrefix(rel, s.Root+"/") {
		return fmt.Errorf("url %q is not under storage root", url)
	}
	if err := os.Remove(filepath.FromSlash(rel)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// DecodeBase64Image accepts both raw base64 and data-URL payloads.
func DecodeBase64Image(b64 string) ([]byte, error) {
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return data, nil
}
