package vfs

import (
	"fmt"
	"strings"

	"github.com/nspcc-dev/vfsacl/pkg/acl"
)

// AttrMask is a set of attribute categories. Only AttrACL and
// AttrFSLocations are handled by this package, the rest belong to the host.
type AttrMask uint64

// Attribute categories.
const (
	AttrMode AttrMask = 1 << iota
	AttrOwner
	AttrGroup
	AttrSize
	AttrATime
	AttrMTime
	AttrCTime
	AttrACL
	AttrFSLocations
)

// Has checks whether all bits of x are set in m.
func (m AttrMask) Has(x AttrMask) bool {
	return m&x == x
}

// Set sets bits of x in m.
func (m *AttrMask) Set(x AttrMask) {
	*m |= x
}

// Clear clears bits of x in m.
func (m *AttrMask) Clear(x AttrMask) {
	*m &^= x
}

// FSLocations is the referral target of an object.
type FSLocations struct {
	Server string
	Path   string
}

func (l FSLocations) String() string {
	return l.Server + ":" + l.Path
}

// ParseFSLocations parses server:path form. Trailing NUL bytes left by C
// tools are ignored.
func ParseFSLocations(s string) (FSLocations, error) {
	server, path, ok := strings.Cut(strings.TrimSpace(strings.TrimRight(s, "\x00")), ":")
	if !ok || server == "" || path == "" {
		return FSLocations{}, fmt.Errorf("invalid fs location %q, server:path expected", s)
	}
	return FSLocations{Server: server, Path: path}, nil
}

// AttrList is a set of object attributes. Valid tells which of them are set.
type AttrList struct {
	Valid       AttrMask
	ACL         *acl.ACL
	FSLocations *FSLocations
}
