//go:build !linux

package xattr

// FileStore works with attributes kept by the kernel. It is not
// implemented on this platform, every call returns ErrNotSupported.
type FileStore struct{}

// NewFileStore returns Store backed by the filesystem extended attributes.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Size implements Store.
func (*FileStore) Size(Handle, string) (int, error) {
	return 0, ErrNotSupported
}

// Read implements Store.
func (*FileStore) Read(Handle, string, []byte) (int, error) {
	return 0, ErrNotSupported
}

// Set implements Store.
func (*FileStore) Set(Handle, string, []byte) error {
	return ErrNotSupported
}

// Remove implements Store.
func (*FileStore) Remove(Handle, string) error {
	return ErrNotSupported
}
