package common

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/config"
	storeconfig "github.com/nspcc-dev/vfsacl/cmd/vfsacl/config/store"
	"github.com/nspcc-dev/vfsacl/pkg/xattr"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// newStore constructs the attribute store configured in "store" section.
// Read-only mode is applied to the BoltDB store only if its file exists.
func newStore(c *config.Config, fs afero.Fs, log *zap.Logger, readOnly bool) (xattr.Store, func() error, error) {
	switch typ := storeconfig.Type(c); typ {
	case storeconfig.TypeXattr:
		return xattr.NewFileStore(), nil, nil
	case storeconfig.TypeMemory:
		return xattr.NewMemStore(), nil, nil
	case storeconfig.TypeBolt:
		b := storeconfig.Bolt(c)

		path := b.Path()
		if path == "" {
			return nil, nil, errors.New("missing BoltDB store path")
		}

		if readOnly {
			readOnly, _ = afero.Exists(fs, path)
		}

		s, err := xattr.NewBoltStore(path,
			xattr.WithPerm(b.Perm()),
			xattr.WithLockTimeout(b.LockTimeout()),
			xattr.WithReadOnly(readOnly),
			xattr.WithLogger(log),
		)
		if err != nil {
			return nil, nil, err
		}

		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store type %q", typ)
	}
}
