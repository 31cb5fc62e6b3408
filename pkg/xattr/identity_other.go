//go:build !unix

package xattr

import "encoding/binary"

func objectKey(h Handle) ([]byte, error) {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(h.Fd()))
	return key, nil
}
