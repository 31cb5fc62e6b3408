package vfs

import (
	"fmt"
	"time"

	"github.com/nspcc-dev/vfsacl/pkg/acl"
	"github.com/nspcc-dev/vfsacl/pkg/acl/nfs41"
	"github.com/nspcc-dev/vfsacl/pkg/xattr"
	"go.uber.org/zap"
)

const (
	opRead   = "read"
	opWrite  = "write"
	opRemove = "remove"
)

// ReadACL reads and decodes the NFSv4.1 ACL of the object.
//
// The value is read into a buffer of the queried size. If it is replaced
// by a larger one in between, the read is retried once, so either the old
// or the new ACL is returned.
//
// Returns ErrNoACL if the attribute is missing, nfs41.ErrCorrupt if the
// stored value is malformed and ErrStorageIO on store failures.
func (a *Adapter) ReadACL(h xattr.Handle) (*acl.ACL, error) {
	start := time.Now()

	res, err := a.readACL(h)

	a.metrics.AddACLOperation(opRead, StatusOf(err).String(), time.Since(start))
	if err == nil {
		a.metrics.AddACLEntries(opRead, res.Len())
	}

	return res, err
}

func (a *Adapter) readACL(h xattr.Handle) (*acl.ACL, error) {
	buf, err := xattr.Get(a.store, h, xattr.NFS4ACLName)
	if err != nil {
		if xattr.IsNotFound(err) {
			return nil, ErrNoACL
		}
		return nil, fmt.Errorf("%w: read ACL: %w", ErrStorageIO, err)
	}

	return nfs41.Unmarshal(buf)
}

// WriteACL encodes and stores the NFSv4.1 ACL of the object replacing the
// previous one.
//
// Returns ErrNoACL without touching the store if the ACL is nil or empty,
// encoding errors of package nfs41 and ErrStorageIO on store failures.
func (a *Adapter) WriteACL(h xattr.Handle, list *acl.ACL) error {
	start := time.Now()

	err := a.writeACL(h, list)

	a.metrics.AddACLOperation(opWrite, StatusOf(err).String(), time.Since(start))
	if err == nil {
		a.metrics.AddACLEntries(opWrite, list.Len())
	}

	return err
}

func (a *Adapter) writeACL(h xattr.Handle, list *acl.ACL) error {
	if list.IsEmpty() {
		return ErrNoACL
	}

	a.log.Debug("storing ACL",
		zap.Int("entries", list.Len()),
		zap.Stringer("acl", list))

	buf, err := nfs41.Marshal(list)
	if err != nil {
		return err
	}

	err = a.store.Set(h, xattr.NFS4ACLName, buf)
	if err != nil {
		return fmt.Errorf("%w: write ACL: %w", ErrStorageIO, err)
	}

	return nil
}

// RemoveACL deletes the stored ACL of the object.
//
// Returns ErrNoACL if there is nothing to delete and ErrStorageIO on store
// failures.
func (a *Adapter) RemoveACL(h xattr.Handle) error {
	start := time.Now()

	err := a.store.Remove(h, xattr.NFS4ACLName)
	if err != nil {
		if xattr.IsNotFound(err) {
			err = ErrNoACL
		} else {
			err = fmt.Errorf("%w: remove ACL: %w", ErrStorageIO, err)
		}
	}

	a.metrics.AddACLOperation(opRemove, StatusOf(err).String(), time.Since(start))

	return err
}
