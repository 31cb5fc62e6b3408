package vfs

import (
	"fmt"

	"github.com/nspcc-dev/vfsacl/pkg/xattr"
)

// LocationsReader retrieves referral locations of an object.
type LocationsReader interface {
	// ReadFSLocations sets attrs.FSLocations and marks AttrFSLocations
	// valid on success.
	ReadFSLocations(h xattr.Handle, attrs *AttrList) error
}

// XattrLocations reads locations from the xattr.FSLocationName attribute
// holding a server:path string.
type XattrLocations struct {
	store xattr.Store
}

// NewXattrLocations returns XattrLocations over the store.
func NewXattrLocations(store xattr.Store) *XattrLocations {
	return &XattrLocations{store: store}
}

// ReadFSLocations implements LocationsReader.
func (l *XattrLocations) ReadFSLocations(h xattr.Handle, attrs *AttrList) error {
	if attrs == nil {
		return ErrNilAttrs
	}

	val, err := xattr.Get(l.store, h, xattr.FSLocationName)
	if err != nil {
		return fmt.Errorf("read %s: %w", xattr.FSLocationName, err)
	}

	loc, err := ParseFSLocations(string(val))
	if err != nil {
		return err
	}

	attrs.FSLocations = &loc
	attrs.Valid.Set(AttrFSLocations)

	return nil
}
