package cmderr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nspcc-dev/vfsacl/cmd/internal/cmderr"
	"github.com/nspcc-dev/vfsacl/pkg/acl/nfs41"
	"github.com/nspcc-dev/vfsacl/pkg/vfs"
	"github.com/stretchr/testify/require"
)

func TestFromStatus(t *testing.T) {
	require.NoError(t, cmderr.FromStatus(nil))

	for _, tc := range []struct {
		err  error
		code int
	}{
		{vfs.ErrNoACL, cmderr.CodeNoACL},
		{fmt.Errorf("decode: %w", nfs41.ErrCorrupt), cmderr.CodeCorrupt},
		{vfs.ErrStorageIO, cmderr.CodeIO},
		{vfs.ErrUnsupportedBrand, cmderr.CodeUnsupported},
		{nfs41.ErrEncode, cmderr.CodeFailure},
		{errors.New("any"), cmderr.CodeFailure},
	} {
		err := cmderr.FromStatus(tc.err)

		var e cmderr.ExitErr
		require.ErrorAs(t, err, &e)
		require.Equal(t, tc.code, e.Code, tc.err)
		require.ErrorIs(t, err, tc.err)
		require.Equal(t, tc.err.Error(), err.Error())
	}
}
