/*
Package xattr provides access to named extended attributes of open
filesystem objects.

Store is the storage primitive used to persist serialized attribute values.
A single value is always replaced as a whole: readers observe either the old
or the new value, never a mix of both.
*/
package xattr

import (
	"errors"
	"fmt"
)

// Attribute names reserved by this module.
const (
	// NFS4ACLName is the attribute holding an XDR-encoded NFSv4 ACL.
	NFS4ACLName = "system.nfs4_acl_xdr"

	// FSLocationName is the attribute holding the referral target of
	// an object in server:path form.
	FSLocationName = "user.fs_location"
)

var (
	// ErrNotFound is returned when the requested attribute is not set.
	ErrNotFound = errors.New("attribute not found")

	// ErrNotSupported is returned when the underlying filesystem or
	// platform does not support extended attributes.
	ErrNotSupported = errors.New("extended attributes are not supported")

	// ErrShortRead is returned when fewer bytes than the attribute size
	// were read.
	ErrShortRead = errors.New("incomplete attribute read")

	// ErrRange is returned by Store.Read when the destination buffer is
	// smaller than the attribute value.
	ErrRange = errors.New("attribute value does not fit the buffer")
)

// Handle is an open filesystem object. *os.File satisfies it.
type Handle interface {
	Fd() uintptr
}

// Store reads and writes extended attributes.
type Store interface {
	// Size returns the length of the attribute value.
	// Returns ErrNotFound if attribute is missing.
	Size(h Handle, name string) (int, error)
	// Read copies the attribute value into dst and returns the number of
	// bytes copied. Returns ErrNotFound if attribute is missing and ErrRange
	// if dst is too small.
	Read(h Handle, name string, dst []byte) (int, error)
	// Set atomically replaces the attribute value.
	Set(h Handle, name string, value []byte) error
	// Remove deletes the attribute.
	// Returns ErrNotFound if attribute is missing.
	Remove(h Handle, name string) error
}

// IsNotFound checks whether err means the attribute is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Get returns the whole attribute value. The size is queried first, if the
// value grows before it is read, the read is retried once.
func Get(s Store, h Handle, name string) ([]byte, error) {
	var err error

	for attempt := 0; attempt < 2; attempt++ {
		var sz, n int

		sz, err = s.Size(h, name)
		if err != nil {
			return nil, err
		}

		value := make([]byte, sz)

		n, err = s.Read(h, name, value)
		if errors.Is(err, ErrRange) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if n != sz {
			return nil, fmt.Errorf("%w: %d of %d bytes", ErrShortRead, n, sz)
		}
		return value, nil
	}

	return nil, err
}
