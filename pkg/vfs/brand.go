package vfs

import (
	"fmt"
	"strings"
)

// Brand is the ACL dialect an object is configured with.
type Brand uint8

const (
	// BrandNone means ACLs are not supported for the object.
	BrandNone Brand = iota
	// BrandPOSIX is POSIX1e ACL.
	BrandPOSIX
	// BrandNFS41 is NFSv4.1 ACL.
	BrandNFS41
)

func (b Brand) String() string {
	switch b {
	case BrandNone:
		return "none"
	case BrandPOSIX:
		return "posix"
	case BrandNFS41:
		return "nfs41"
	default:
		return fmt.Sprintf("BRAND(%d)", uint8(b))
	}
}

// ParseBrand converts the name of a brand to Brand. Empty string is BrandNone.
func ParseBrand(s string) (Brand, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return BrandNone, nil
	case "posix", "posix1e":
		return BrandPOSIX, nil
	case "nfs41", "nfs4", "nfsv4":
		return BrandNFS41, nil
	default:
		return 0, fmt.Errorf("unknown ACL brand %q", s)
	}
}
