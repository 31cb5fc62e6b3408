//go:build unix

package xattr

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/sys/unix"
)

// objectKey returns device and inode numbers of the open object, so the key
// survives reopening of the same file.
func objectKey(h Handle) ([]byte, error) {
	var st unix.Stat_t

	err := unix.Fstat(int(h.Fd()), &st)
	if err != nil {
		return nil, fmt.Errorf("fstat: %w", err)
	}

	key := make([]byte, 16)
	binary.BigEndian.PutUint64(key, uint64(st.Dev))
	binary.BigEndian.PutUint64(key[8:], uint64(st.Ino))

	return key, nil
}
