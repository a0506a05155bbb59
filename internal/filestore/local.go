// Package filestore stores uploaded signature and supporting documents on
// local disk and hands back the public path recorded on the booking or
// user row. File contents never matter to the booking core.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const publicPrefix = "/uploads/"

type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes the content under a timestamp-prefixed name and returns
// the public path for it.
func (s *LocalStore) Save(filename string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(filename))
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err = io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("write file: %w", err)
	}

	return publicPrefix + name, nil
}

// Dir is the directory files are written to, for static serving.
func (s *LocalStore) Dir() string {
	return s.dir
}
