package storetest

import (
	"errors"
	"os"
	"testing"

	"github.com/nspcc-dev/vfsacl/pkg/xattr"
	"github.com/stretchr/testify/require"
)

// Constructor constructs the Store to be tested.
type Constructor = func(t *testing.T) xattr.Store

// Name is the attribute name used by the tests. Unprivileged processes may
// set attributes in the user namespace only.
const Name = "user.vfsacl.test"

// NewHandle creates a temporary file closed on test cleanup.
func NewHandle(t *testing.T) *os.File {
	f, err := os.CreateTemp(t.TempDir(), "obj")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

// TestStore checks the common Store contract.
func TestStore(t *testing.T, cons Constructor) {
	s := cons(t)
	h := NewHandle(t)

	_, err := s.Size(h, Name)
	if errors.Is(err, xattr.ErrNotSupported) {
		t.Skip("extended attributes are not supported here")
	}

	t.Run("missing", func(t *testing.T) {
		_, err := s.Size(h, Name)
		require.ErrorIs(t, err, xattr.ErrNotFound)
		require.True(t, xattr.IsNotFound(err))

		_, err = xattr.Get(s, h, Name)
		require.ErrorIs(t, err, xattr.ErrNotFound)

		require.ErrorIs(t, s.Remove(h, Name), xattr.ErrNotFound)
	})

	t.Run("set and get", func(t *testing.T) {
		val := []byte{1, 2, 3, 4, 5}
		require.NoError(t, s.Set(h, Name, val))

		val[0] = 0xff // store must not keep caller buffer

		sz, err := s.Size(h, Name)
		require.NoError(t, err)
		require.Equal(t, 5, sz)

		got, err := xattr.Get(s, h, Name)
		require.NoError(t, err)
		require.Equal(t, []byte{1, 2, 3, 4, 5}, got)

		_, err = s.Read(h, Name, make([]byte, 4))
		require.ErrorIs(t, err, xattr.ErrRange)

		buf := make([]byte, 8)
		n, err := s.Read(h, Name, buf)
		require.NoError(t, err)
		require.Equal(t, 5, n)
		require.Equal(t, []byte{1, 2, 3, 4, 5}, buf[:n])
	})

	t.Run("replace", func(t *testing.T) {
		require.NoError(t, s.Set(h, Name, []byte{9, 9, 9, 9, 9, 9, 9, 9}))
		require.NoError(t, s.Set(h, Name, []byte{7}))

		got, err := xattr.Get(s, h, Name)
		require.NoError(t, err)
		require.Equal(t, []byte{7}, got)
	})

	t.Run("objects are independent", func(t *testing.T) {
		other := NewHandle(t)

		_, err := xattr.Get(s, other, Name)
		require.ErrorIs(t, err, xattr.ErrNotFound)

		require.NoError(t, s.Set(other, Name, []byte{42}))

		got, err := xattr.Get(s, h, Name)
		require.NoError(t, err)
		require.Equal(t, []byte{7}, got)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, s.Remove(h, Name))

		_, err := xattr.Get(s, h, Name)
		require.ErrorIs(t, err, xattr.ErrNotFound)
	})
}
