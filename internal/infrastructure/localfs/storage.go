package localfs

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage writes uploaded files into a local directory that is served
// statically under /uploads.
type Storage struct {
	Dir string
}

func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Storage{Dir: dir}, nil
}

// Store saves the uploaded file under a random name, then renames it so the
// original filename's extension is preserved (case included). Returns the
// stored path, e.g. "uploads/3f2a….PNG".
func (s *Storage) Store(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer func() { _ = src.Close() }()

	tmpPath := filepath.Join(s.Dir, uuid.NewString())
	dst, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("close upload file: %w", err)
	}

	finalPath := tmpPath
	if ext := extOf(fh.Filename); ext != "" {
		finalPath = tmpPath + "." + ext
		if err := os.Rename(tmpPath, finalPath); err != nil {
			_ = os.Remove(tmpPath)
			return "", fmt.Errorf("rename upload file: %w", err)
		}
	}
	return filepath.ToSlash(finalPath), nil
}

// extOf returns the last dot-separated segment of name, case preserved.
// Names without a dot yield "".
func extOf(name string) string {
	name = filepath.Base(name)
	i := strings.LastIndex(name, ".")
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return name[i+1:]
}
