package xattr

import (
	"sync"
)

type memKey struct {
	fd   uintptr
	name string
}

// MemStore keeps attributes in memory keyed by descriptor number. It is
// meant for tests and for objects living no longer than their descriptors.
type MemStore struct {
	mtx  sync.RWMutex
	vals map[memKey][]byte
}

// NewMemStore returns empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{vals: make(map[memKey][]byte)}
}

func makeCopy(val []byte) []byte {
	tmp := make([]byte, len(val))
	copy(tmp, val)

	return tmp
}

// Size implements Store.
func (s *MemStore) Size(h Handle, name string) (int, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	v, ok := s.vals[memKey{h.Fd(), name}]
	if !ok {
		return 0, ErrNotFound
	}
	return len(v), nil
}

// Read implements Store.
func (s *MemStore) Read(h Handle, name string, dst []byte) (int, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	v, ok := s.vals[memKey{h.Fd(), name}]
	if !ok {
		return 0, ErrNotFound
	}
	if len(dst) < len(v) {
		return 0, ErrRange
	}
	return copy(dst, v), nil
}

// Set implements Store.
func (s *MemStore) Set(h Handle, name string, value []byte) error {
	s.mtx.Lock()
	s.vals[memKey{h.Fd(), name}] = makeCopy(value)
	s.mtx.Unlock()
	return nil
}

// Remove implements Store.
func (s *MemStore) Remove(h Handle, name string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	k := memKey{h.Fd(), name}
	if _, ok := s.vals[k]; !ok {
		return ErrNotFound
	}
	delete(s.vals, k)
	return nil
}
