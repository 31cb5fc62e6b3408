package vfs

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/vfsacl/pkg/xattr"
	"go.uber.org/zap"
)

// GetAttrs fills ACL related attributes of the object requested by req.
// Other categories of req are left to the caller.
//
// Referral locations are retrieved first when requested, a failure there
// is logged and does not affect the result. The ACL is read only when
// AttrACL is requested. On success attrs.ACL is set and AttrACL is marked
// valid. Errors are those of Adapter.ReadACL and ErrUnsupportedBrand,
// ErrNilAttrs is returned for nil attrs before anything is read.
func (a *Adapter) GetAttrs(obj Object, h xattr.Handle, req AttrMask, attrs *AttrList) error {
	if attrs == nil {
		return ErrNilAttrs
	}

	if req.Has(AttrFSLocations) && a.locations != nil && obj.IsReferral(attrs) {
		err := a.locations.ReadFSLocations(h, attrs)
		if err != nil {
			a.log.Debug("could not get the fs locations of a referral",
				zap.Error(err))
		}
	}

	if !req.Has(AttrACL) {
		return nil
	}

	switch b := obj.ACLBrand(); b {
	case BrandNone:
		return nil
	case BrandNFS41:
		res, err := a.ReadACL(h)
		if err != nil {
			a.logFailure("failed to get NFS4 ACL", err)
			return err
		}

		attrs.ACL = res
		attrs.Valid.Set(AttrACL)

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedBrand, b)
	}
}

// SetAttrs stores the ACL from attrs if AttrACL is set in req. Other
// categories of req are left to the caller.
//
// Returns ErrNoACL if the ACL is requested but attrs holds none, nothing is
// written or removed then. On success AttrACL is marked valid.
func (a *Adapter) SetAttrs(obj Object, h xattr.Handle, req AttrMask, attrs *AttrList) error {
	if !req.Has(AttrACL) {
		return nil
	}

	switch b := obj.ACLBrand(); b {
	case BrandNone:
		return nil
	case BrandNFS41:
		if attrs == nil {
			return ErrNoACL
		}

		err := a.WriteACL(h, attrs.ACL)
		if err != nil {
			a.logFailure("failed to set NFS4 ACL", err)
			return err
		}

		attrs.Valid.Set(AttrACL)

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedBrand, b)
	}
}

func (a *Adapter) logFailure(msg string, err error) {
	if errors.Is(err, ErrNoACL) {
		a.log.Debug(msg, zap.Error(err))
		return
	}
	a.log.Error(msg,
		zap.Stringer("status", StatusOf(err)),
		zap.Error(err))
}
