package aclconfig

import (
	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/config"
	"github.com/nspcc-dev/vfsacl/pkg/vfs"
)

const (
	subsection = "acl"

	// BrandDefault is a default ACL brand of objects.
	BrandDefault = vfs.BrandNFS41
)

// Brand returns the value of "brand" config parameter
// from "acl" section.
//
// Returns BrandDefault if the value is not set.
func Brand(c *config.Config) (vfs.Brand, error) {
	v := config.StringSafe(c.Sub(subsection), "brand")
	if v == "" {
		return BrandDefault, nil
	}

	return vfs.ParseBrand(v)
}
