// Package cas implements the content addressable transform cache used by
// batch runs.
package cas

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/nest/internal/core/domain"
	"go.trai.ch/nest/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TransformStore = (*Store)(nil)

// Store keeps one JSON record per cache key under dir, sharded by the
// first two hex digits of the key: <dir>/ab/abcdef....json.
//
// Records whose output hash no longer matches their code are treated as
// misses.
type Store struct {
	dir    string
	hasher ports.Hasher
	now    func() time.Time
}

// NewStore creates a Store rooted at dir, creating the directory if needed.
func NewStore(dir string, hasher ports.Hasher) (*Store, error) {
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreCreateFailed, err), "path", dir)
	}
	return &Store{dir: dir, hasher: hasher, now: time.Now}, nil
}

// Get retrieves the record for key. Returns nil, nil on a miss.
func (s *Store) Get(key string) (*domain.TransformRecord, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // Path is derived from a validated hex key
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "path", path)
	}

	var record domain.TransformRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreUnmarshalFailed, err), "path", path)
	}

	if record.Key != key || record.OutputHash != s.hasher.HashContent(record.Code) {
		return nil, nil
	}
	return &record, nil
}

// Put stores record under record.Key, filling in its output hash and
// timestamp. The file is replaced atomically.
func (s *Store) Put(record domain.TransformRecord) error {
	path, err := s.pathFor(record.Key)
	if err != nil {
		return err
	}

	record.OutputHash = s.hasher.HashContent(record.Code)
	if record.Timestamp.IsZero() {
		record.Timestamp = s.now().UTC()
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrStoreMarshalFailed, err), "key", record.Key)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", path)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Best effort cleanup, gone after rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", path)
	}

	return nil
}

func (s *Store) pathFor(key string) (string, error) {
	if len(key) < 2 {
		return "", zerr.With(zerr.New("invalid cache key"), "key", key)
	}
	if _, err := hex.DecodeString(key); err != nil {
		return "", zerr.With(zerr.Wrap(err, "invalid cache key"), "key", key)
	}
	return filepath.Join(s.dir, key[:2], key+".json"), nil
}

var _ ports.TransformStoreFactory = (*Factory)(nil)

// Factory opens Stores sharing one hasher.
type Factory struct {
	hasher ports.Hasher
}

// NewFactory creates a new Factory.
func NewFactory(hasher ports.Hasher) *Factory {
	return &Factory{hasher: hasher}
}

// Open returns a Store rooted at dir.
func (f *Factory) Open(dir string) (ports.TransformStore, error) {
	return NewStore(dir, f.hasher)
}
