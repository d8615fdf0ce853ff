package storage

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const ext = ".yaml"

var createFile = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// FileStorage keeps one yaml document per object name under rootDir.
type FileStorage struct {
	rootDir string
	mx      sync.Map
}

func NewFileStorage(rootDir string) (*FileStorage, error) {
	if err := os.MkdirAll(rootDir, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "create storage dir error")
	}

	return &FileStorage{rootDir: rootDir}, nil
}

func (s *FileStorage) StoreObject(name string, object any) (err error) {
	s.lock(name)
	defer s.unlock(name)

	data, err := yaml.Marshal(object)
	if err != nil {
		return errors.Wrap(err, "yaml marshal error")
	}

	f, err := createFile(s.path(name))
	if err != nil {
		return errors.Wrap(err, "create file error")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close file error")
		}
	}()

	if _, err = f.Write(data); err != nil {
		return errors.Wrap(err, "StoreObject error")
	}
	return nil
}

// RestoreObject decodes the stored document name into out.
func (s *FileStorage) RestoreObject(name string, out any) error {
	s.lock(name)
	defer s.unlock(name)

	f, err := os.Open(s.path(name))
	if err != nil {
		return errors.Wrap(err, "open file error")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return errors.Wrap(err, "read file error")
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "yaml unmarshal error")
	}

	return nil
}

// Names lists stored object names.
func (s *FileStorage) Names() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.rootDir, "*"+ext))
	if err != nil {
		return nil, errors.Wrap(err, "glob error")
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		base := filepath.Base(m)
		names = append(names, base[:len(base)-len(ext)])
	}

	return names, nil
}

func (s *FileStorage) path(name string) string {
	return filepath.Join(s.rootDir, name) + ext
}

func (s *FileStorage) lock(key string) {
	l, _ := s.mx.LoadOrStore(key, &sync.Mutex{})
	l.(*sync.Mutex).Lock()
}

func (s *FileStorage) unlock(key string) {
	l, _ := s.mx.LoadOrStore(key, &sync.Mutex{})
	l.(*sync.Mutex).Unlock()
}
