// Package fstore stores uploaded media on the local filesystem and hands
// back URLs the API can serve. Names that collide get an incrementing
// suffix rather than overwriting.
package fstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type LocalStore struct {
	rootDir string
	baseURL string
}

func NewLocalStore(rootDir, baseURL string) *LocalStore {
	return &LocalStore{rootDir: rootDir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Store writes the bytes under a collision-free version of name and returns
// the URL the file is retrievable at.
func (s *LocalStore) Store(contents []byte, name string) (string, error) {
	if err := os.MkdirAll(s.rootDir, 0755); err != nil {
		return "", err
	}

	name = filepath.Base(name)
	candidate := name
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for n := 1; s.Exists(candidate); n++ {
		candidate = fmt.Sprintf("%s_%d%s", stem, n, ext)
	}

	if err := os.WriteFile(filepath.Join(s.rootDir, candidate), contents, 0644); err != nil {
		return "", err
	}

	return s.baseURL + "/" + candidate, nil
}

func (s *LocalStore) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.rootDir, filepath.Base(name)))
	return err == nil
}

// Delete removes a stored file given the URL Store returned. Deleting a file
// that is already gone is not an error.
func (s *LocalStore) Delete(fileURL string) error {
	name := filepath.Base(fileURL)
	err := os.Remove(filepath.Join(s.rootDir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
