package nfs41

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/nspcc-dev/vfsacl/pkg/acl"
)

// HeaderSize is the size of the serialized header: entry count and
// a reserved field.
const HeaderSize = 2 * 4

// XattrSizeMax is the largest attribute value the kernel accepts.
const XattrSizeMax = 64 * 1024

// MaxEntries is the largest number of entries fitting in one attribute value.
const MaxEntries = (XattrSizeMax - HeaderSize) / EntrySize

// layoutHeader mirrors the host in-memory ACL header: a counted pointer to the
// entry array followed by the ACL flag.
type layoutHeader struct {
	acesLen uint32
	acesVal *Ace4
	flag    uint32
}

// SerializedSize returns the exact length of the serialized ACL with n entries.
func SerializedSize(n int) int {
	return HeaderSize + n*EntrySize
}

// LayoutSize returns the size of the host in-memory ACL with n entries.
// It includes header alignment padding and must not be used for the bytes
// passed to the attribute store.
func LayoutSize(n int) int {
	return int(unsafe.Sizeof(layoutHeader{})) + n*int(unsafe.Sizeof(Ace4{}))
}

// Marshal serializes the ACL. Result is exactly SerializedSize(a.Len())
// bytes long. Nil ACL is encoded as an empty one.
func Marshal(a *acl.ACL) ([]byte, error) {
	n := a.Len()
	if n > MaxEntries {
		return nil, fmt.Errorf("%w: %d entries need %d bytes, limit is %d",
			ErrAllocation, n, SerializedSize(n), XattrSizeMax)
	}

	for i := 0; i < n; i++ {
		if !a.Entries[i].Type.Valid() {
			return nil, fmt.Errorf("%w: entry #%d: invalid type %d", ErrEncode, i, uint32(a.Entries[i].Type))
		}
	}

	buf := make([]byte, SerializedSize(n))

	binary.BigEndian.PutUint32(buf, uint32(n))
	binary.BigEndian.PutUint32(buf[4:], 0)

	for i := 0; i < n; i++ {
		off := HeaderSize + i*EntrySize
		encodeEntry(&a.Entries[i]).put(buf[off : off+EntrySize])
	}

	return buf, nil
}

// Header returns the header fields of the serialized ACL and checks that
// the value length matches the entry count.
func Header(b []byte) (count uint32, reserved uint32, err error) {
	if len(b) < HeaderSize {
		return 0, 0, fmt.Errorf("%w: %d bytes is less than header size %d", ErrCorrupt, len(b), HeaderSize)
	}

	count = binary.BigEndian.Uint32(b)
	reserved = binary.BigEndian.Uint32(b[4:])

	// 64-bit arithmetic, count comes from untrusted storage.
	want := uint64(HeaderSize) + uint64(count)*EntrySize
	if uint64(len(b)) != want {
		return count, reserved, fmt.Errorf("%w: header declares %d entries (%d bytes), value is %d bytes",
			ErrCorrupt, count, want, len(b))
	}

	return count, reserved, nil
}

// Unmarshal decodes the serialized ACL. The reserved header field is
// ignored.
func Unmarshal(b []byte) (*acl.ACL, error) {
	count, _, err := Header(b)
	if err != nil {
		return nil, err
	}

	res := &acl.ACL{Entries: make([]acl.Entry, count)}

	for i := range res.Entries {
		off := HeaderSize + i*EntrySize
		a := readAce4(b[off : off+EntrySize])
		decodeEntry(a, a.isGroup(), &res.Entries[i])
	}

	return res, nil
}
