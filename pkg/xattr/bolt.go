package xattr

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mr-tron/base58"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// BoltStore keeps attributes in a BoltDB file, one bucket per attribute
// name, keyed by object identity. It serves filesystems without extended
// attribute support.
type BoltStore struct {
	path string
	perm fs.FileMode
	opts bbolt.Options
	log  *zap.Logger

	db *bbolt.DB
}

// BoltOption configures BoltStore.
type BoltOption func(*BoltStore)

const defaultBoltPerm = 0o640

// WithPerm sets permissions of the database file.
func WithPerm(p fs.FileMode) BoltOption {
	return func(s *BoltStore) {
		s.perm = p
	}
}

// WithLockTimeout sets how long to wait for the database file lock.
func WithLockTimeout(d time.Duration) BoltOption {
	return func(s *BoltStore) {
		s.opts.Timeout = d
	}
}

// WithReadOnly opens the database in read-only mode.
func WithReadOnly(ro bool) BoltOption {
	return func(s *BoltStore) {
		s.opts.ReadOnly = ro
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) BoltOption {
	return func(s *BoltStore) {
		s.log = l
	}
}

// NewBoltStore opens (creating if needed) the database at path.
func NewBoltStore(path string, opts ...BoltOption) (*BoltStore, error) {
	s := &BoltStore{
		path: path,
		perm: defaultBoltPerm,
		opts: bbolt.Options{
			Timeout:      bbolt.DefaultOptions.Timeout,
			FreelistType: bbolt.DefaultOptions.FreelistType,
		},
		log: zap.NewNop(),
	}

	for i := range opts {
		opts[i](s)
	}

	if !s.opts.ReadOnly {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("could not use %q dir: %w", filepath.Dir(path), err)
		}
	}

	db, err := bbolt.Open(path, s.perm, &s.opts)
	if err != nil {
		return nil, fmt.Errorf("open attribute database %q: %w", path, err)
	}

	s.db = db
	s.log.Debug("attribute database opened",
		zap.String("path", path),
		zap.Bool("read_only", s.opts.ReadOnly))

	return s, nil
}

// Close closes the database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) view(h Handle, name string, f func(key, val []byte) error) error {
	key, err := objectKey(h)
	if err != nil {
		return err
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		var val []byte
		if b := tx.Bucket([]byte(name)); b != nil {
			val = b.Get(key)
		}
		if val == nil {
			return fmt.Errorf("%w: %q key=%s", ErrNotFound, name, base58.Encode(key))
		}
		return f(key, val)
	})
}

// Size implements Store.
func (s *BoltStore) Size(h Handle, name string) (int, error) {
	var sz int
	err := s.view(h, name, func(_, val []byte) error {
		sz = len(val)
		return nil
	})
	return sz, err
}

// Read implements Store.
func (s *BoltStore) Read(h Handle, name string, dst []byte) (int, error) {
	var n int
	err := s.view(h, name, func(key, val []byte) error {
		if len(dst) < len(val) {
			return fmt.Errorf("%w: %q key=%s", ErrRange, name, base58.Encode(key))
		}
		n = copy(dst, val)
		return nil
	})
	return n, err
}

// Set implements Store.
func (s *BoltStore) Set(h Handle, name string, value []byte) error {
	key, err := objectKey(h)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(name))
		if err != nil {
			return fmt.Errorf("create bucket %q: %w", name, err)
		}
		return b.Put(key, makeCopy(value))
	})
}

// Remove implements Store.
func (s *BoltStore) Remove(h Handle, name string) error {
	key, err := objectKey(h)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(name))
		if b == nil || b.Get(key) == nil {
			return fmt.Errorf("%w: %q key=%s", ErrNotFound, name, base58.Encode(key))
		}
		return b.Delete(key)
	})
}
