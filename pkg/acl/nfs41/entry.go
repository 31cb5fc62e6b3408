package nfs41

import (
	"encoding/binary"

	"github.com/nspcc-dev/vfsacl/pkg/acl"
)

// SpecialWho is the iflag bit marking a well-known principal.
const SpecialWho uint32 = 0x00000001

// EntrySize is the size of a serialized entry.
const EntrySize = 5 * 4

// Ace4 is a serialized access-control entry.
type Ace4 struct {
	Type       uint32
	Flag       uint32
	AccessMask uint32
	IFlag      uint32
	Who        uint32
}

func encodeEntry(e *acl.Entry) Ace4 {
	var iflag uint32
	if e.IsSpecial() {
		iflag = SpecialWho
	}

	return Ace4{
		Type:       uint32(e.Type),
		Flag:       uint32(e.Flag),
		AccessMask: uint32(e.Perm),
		IFlag:      iflag,
		Who:        e.ID(),
	}
}

// decodeEntry fills dst from a. The principal id goes to the gid slot when
// group is set and to the uid slot otherwise.
func decodeEntry(a Ace4, group bool, dst *acl.Entry) {
	dst.Type = acl.Type(a.Type)
	dst.Flag = acl.Flag(a.Flag)
	dst.Perm = acl.Mask(a.AccessMask)
	dst.IFlag = 0
	if a.IFlag&SpecialWho != 0 {
		dst.IFlag = acl.IFlagSpecialID
	}
	dst.Who = acl.Who{}
	if group {
		dst.Who.GID = a.Who
	} else {
		dst.Who.UID = a.Who
	}
}

// isGroup reports whether the flag field of a carries the group bit.
func (a Ace4) isGroup() bool {
	return acl.Flag(a.Flag)&acl.FlagGroup != 0
}

func (a Ace4) put(b []byte) {
	_ = b[EntrySize-1]
	binary.BigEndian.PutUint32(b[0:], a.Type)
	binary.BigEndian.PutUint32(b[4:], a.Flag)
	binary.BigEndian.PutUint32(b[8:], a.AccessMask)
	binary.BigEndian.PutUint32(b[12:], a.IFlag)
	binary.BigEndian.PutUint32(b[16:], a.Who)
}

func readAce4(b []byte) Ace4 {
	_ = b[EntrySize-1]
	return Ace4{
		Type:       binary.BigEndian.Uint32(b[0:]),
		Flag:       binary.BigEndian.Uint32(b[4:]),
		AccessMask: binary.BigEndian.Uint32(b[8:]),
		IFlag:      binary.BigEndian.Uint32(b[12:]),
		Who:        binary.BigEndian.Uint32(b[16:]),
	}
}
