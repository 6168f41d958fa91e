package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileKV stores each key as <Dir>/<key>.json.
type FileKV struct {
	Dir string
}

func (s *FileKV) pathFor(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

func (s *FileKV) Get(key string) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (s *FileKV) Set(key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	return writeFileAtomic(s.pathFor(key), value)
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid key: %q", key)
	}
	return nil
}
