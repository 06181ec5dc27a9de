package local

import (
	"io"
	"os"
	"path/filepath"
)

// Store keeps artifacts in a directory served under /static.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0770); err != nil {
		return nil, err
	}
	return &Store{baseDir: baseDir}, nil
}

func (s *Store) Save(name string, f io.Reader) error {
	path := filepath.Join(s.baseDir, name)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = io.Copy(file, f)
	if err != nil {
		return err
	}
	return nil
}

func (s *Store) Delete(name string) error {
	return os.Remove(filepath.Join(s.baseDir, name))
}

func (s *Store) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.baseDir, name))
	return err == nil
}

func (s *Store) URL(name string) (string, error) {
	return "/static/" + name, nil
}

func (s *Store) Supplier() string {
	return "local"
}
