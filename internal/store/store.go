package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KV is a synchronous durable key-value store. A missing key is reported as ok=false, not an error.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

var Backends = []string{BackendSQLite, BackendFile, BackendMemory}

// Store is an opened backend plus the on-disk path it writes, if any.
type Store struct {
	KV
	Backend string
	Dir     string

	path string
	cls  func() error
}

// Path is the file that changes when a value is written ("" for the memory backend).
func (s *Store) Path() string { return s.path }

func (s *Store) Close() error {
	if s == nil || s.cls == nil {
		return nil
	}
	return s.cls()
}

// Open opens backend rooted at dir, creating dir when needed.
func Open(backend string, dir string) (*Store, error) {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend == "" {
		backend = BackendSQLite
	}
	if backend != BackendMemory {
		if strings.TrimSpace(dir) == "" {
			return nil, fmt.Errorf("open %s store: missing data dir", backend)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	switch backend {
	case BackendSQLite:
		kv, err := OpenSQLite(filepath.Join(dir, sqliteFileName))
		if err != nil {
			return nil, err
		}
		return &Store{KV: kv, Backend: backend, Dir: dir, path: kv.Path(), cls: kv.Close}, nil
	case BackendFile:
		kv := &FileKV{Dir: dir}
		return &Store{KV: kv, Backend: backend, Dir: dir, path: kv.pathFor(DefaultKey)}, nil
	case BackendMemory:
		return &Store{KV: NewMemKV(), Backend: backend, Dir: dir}, nil
	default:
		return nil, fmt.Errorf("unknown backend: %s (want %s)", backend, strings.Join(Backends, "|"))
	}
}

// DefaultKey is where the emotion list snapshot lives.
const DefaultKey = "emotions"
