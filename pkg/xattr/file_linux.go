//go:build linux

package xattr

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// FileStore works with attributes kept by the kernel.
type FileStore struct{}

// NewFileStore returns Store backed by the filesystem extended attributes.
func NewFileStore() *FileStore {
	return &FileStore{}
}

func convertErr(err error) error {
	switch {
	case errors.Is(err, unix.ENODATA):
		return ErrNotFound
	case errors.Is(err, unix.ENOTSUP), errors.Is(err, unix.EOPNOTSUPP):
		return ErrNotSupported
	}
	return err
}

// Size implements Store.
func (*FileStore) Size(h Handle, name string) (int, error) {
	sz, err := unix.Fgetxattr(int(h.Fd()), name, nil)
	if err != nil {
		return 0, fmt.Errorf("fgetxattr %q: %w", name, convertErr(err))
	}
	return sz, nil
}

// Read implements Store.
func (*FileStore) Read(h Handle, name string, dst []byte) (int, error) {
	n, err := unix.Fgetxattr(int(h.Fd()), name, dst)
	if err != nil {
		if errors.Is(err, unix.ERANGE) {
			return 0, fmt.Errorf("fgetxattr %q: %w", name, ErrRange)
		}
		return 0, fmt.Errorf("fgetxattr %q: %w", name, convertErr(err))
	}
	if n > len(dst) {
		// empty dst turns the call into a size query
		return 0, fmt.Errorf("fgetxattr %q: %w", name, ErrRange)
	}
	return n, nil
}

// Set implements Store.
func (*FileStore) Set(h Handle, name string, value []byte) error {
	err := unix.Fsetxattr(int(h.Fd()), name, value, 0)
	if err != nil {
		return fmt.Errorf("fsetxattr %q: %w", name, convertErr(err))
	}
	return nil
}

// Remove implements Store.
func (*FileStore) Remove(h Handle, name string) error {
	err := unix.Fremovexattr(int(h.Fd()), name)
	if err != nil {
		return fmt.Errorf("fremovexattr %q: %w", name, convertErr(err))
	}
	return nil
}
