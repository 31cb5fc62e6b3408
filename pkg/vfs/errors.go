package vfs

import (
	"errors"

	"github.com/nspcc-dev/vfsacl/pkg/acl/nfs41"
)

var (
	// ErrNoACL is returned when the object has no stored ACL, or when there is
	// no ACL to store.
	ErrNoACL = errors.New("no ACL")

	// ErrUnsupportedBrand is returned for objects configured with a brand
	// that is not implemented.
	ErrUnsupportedBrand = errors.New("unsupported ACL brand")

	// ErrStorageIO is returned when the attribute store fails or returns an
	// inconsistent number of bytes.
	ErrStorageIO = errors.New("attribute storage failure")

	// ErrNilAttrs is returned when GetAttrs is called without an attribute
	// list to fill.
	ErrNilAttrs = errors.New("nil attribute list")
)

// Status classifies operation outcome for the host.
type Status uint8

// Operation statuses.
const (
	StatusOK Status = iota
	StatusNoACL
	StatusCorrupt
	StatusIO
	StatusAllocation
	StatusEncode
	StatusUnsupported
	StatusFault
)

var statusNames = [...]string{
	StatusOK:          "ok",
	StatusNoACL:       "no_acl",
	StatusCorrupt:     "corrupt",
	StatusIO:          "io",
	StatusAllocation:  "allocation",
	StatusEncode:      "encode",
	StatusUnsupported: "unsupported",
	StatusFault:       "fault",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// StatusOf returns Status corresponding to the error returned by Adapter.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrNoACL):
		return StatusNoACL
	case errors.Is(err, nfs41.ErrCorrupt):
		return StatusCorrupt
	case errors.Is(err, ErrStorageIO):
		return StatusIO
	case errors.Is(err, nfs41.ErrAllocation):
		return StatusAllocation
	case errors.Is(err, nfs41.ErrEncode):
		return StatusEncode
	case errors.Is(err, ErrUnsupportedBrand):
		return StatusUnsupported
	default:
		return StatusFault
	}
}
