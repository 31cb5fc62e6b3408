package storeconfig

import (
	"io/fs"
	"time"

	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/config"
)

const (
	subsection     = "store"
	boltSubsection = "bolt"

	// TypeXattr keeps attributes in the filesystem.
	TypeXattr = "xattr"
	// TypeBolt keeps attributes in a BoltDB file.
	TypeBolt = "bolt"
	// TypeMemory keeps attributes in memory for the process lifetime.
	TypeMemory = "memory"

	// TypeDefault is a default store type.
	TypeDefault = TypeXattr

	// BoltPermDefault is a default permission of the BoltDB file.
	BoltPermDefault = 0o640

	// BoltLockTimeoutDefault is a default time to wait for the BoltDB lock.
	BoltLockTimeoutDefault = 5 * time.Second
)

// Type returns the value of "type" config parameter
// from "store" section.
//
// Returns TypeDefault if the value is not a non-empty string.
func Type(c *config.Config) string {
	v := config.StringSafe(c.Sub(subsection), "type")
	if v != "" {
		return v
	}

	return TypeDefault
}

// BoltConfig is a wrapper over "bolt" config subsection
// of "store" section.
type BoltConfig config.Config

// Bolt returns "bolt" subsection of "store" section.
func Bolt(c *config.Config) *BoltConfig {
	return (*BoltConfig)(c.Sub(subsection).Sub(boltSubsection))
}

// Path returns the value of "path" config parameter.
//
// Panics if the value is not a string.
func (x *BoltConfig) Path() string {
	return config.String((*config.Config)(x), "path")
}

// Perm returns the value of "perm" config parameter as fs.FileMode.
//
// Returns BoltPermDefault if the value is not a positive number.
func (x *BoltConfig) Perm() fs.FileMode {
	p := config.Uint32Safe((*config.Config)(x), "perm")
	if p == 0 {
		p = BoltPermDefault
	}

	return fs.FileMode(p)
}

// LockTimeout returns the value of "lock_timeout" config parameter.
//
// Returns BoltLockTimeoutDefault if the value is not a positive duration.
func (x *BoltConfig) LockTimeout() time.Duration {
	d := config.DurationSafe((*config.Config)(x), "lock_timeout")
	if d > 0 {
		return d
	}

	return BoltLockTimeoutDefault
}
