package acl

import (
	"fmt"
	"strconv"
	"strings"
)

// Mask is an access mask of an entry.
type Mask uint32

// Access mask bits.
const (
	MaskReadData           Mask = 0x00000001
	MaskWriteData          Mask = 0x00000002
	MaskAppendData         Mask = 0x00000004
	MaskReadNamedAttrs     Mask = 0x00000008
	MaskWriteNamedAttrs    Mask = 0x00000010
	MaskExecute            Mask = 0x00000020
	MaskDeleteChild        Mask = 0x00000040
	MaskReadAttributes     Mask = 0x00000080
	MaskWriteAttributes    Mask = 0x00000100
	MaskWriteRetention     Mask = 0x00000200
	MaskWriteRetentionHold Mask = 0x00000400
	MaskDelete             Mask = 0x00010000
	MaskReadACL            Mask = 0x00020000
	MaskWriteACL           Mask = 0x00040000
	MaskWriteOwner         Mask = 0x00080000
	MaskSynchronize        Mask = 0x00100000

	// Directory aliases.
	MaskListDirectory   = MaskReadData
	MaskAddFile         = MaskWriteData
	MaskAddSubdirectory = MaskAppendData
)

var maskNames = []struct {
	m    Mask
	name string
}{
	{MaskReadData, "READ_DATA"},
	{MaskWriteData, "WRITE_DATA"},
	{MaskAppendData, "APPEND_DATA"},
	{MaskReadNamedAttrs, "READ_NAMED_ATTRS"},
	{MaskWriteNamedAttrs, "WRITE_NAMED_ATTRS"},
	{MaskExecute, "EXECUTE"},
	{MaskDeleteChild, "DELETE_CHILD"},
	{MaskReadAttributes, "READ_ATTRIBUTES"},
	{MaskWriteAttributes, "WRITE_ATTRIBUTES"},
	{MaskWriteRetention, "WRITE_RETENTION"},
	{MaskWriteRetentionHold, "WRITE_RETENTION_HOLD"},
	{MaskDelete, "DELETE"},
	{MaskReadACL, "READ_ACL"},
	{MaskWriteACL, "WRITE_ACL"},
	{MaskWriteOwner, "WRITE_OWNER"},
	{MaskSynchronize, "SYNCHRONIZE"},
}

// Names returns names of the set bits. Unknown bits are appended as a
// single hex number.
func (m Mask) Names() []string {
	var (
		res  []string
		rest = m
	)

	for _, n := range maskNames {
		if m&n.m != 0 {
			res = append(res, n.name)
			rest &^= n.m
		}
	}

	if rest != 0 {
		res = append(res, fmt.Sprintf("0x%x", uint32(rest)))
	}

	return res
}

// String returns |-separated names of the set bits. Unknown bits are
// appended in hex.
func (m Mask) String() string {
	if m == 0 {
		return "0"
	}

	return strings.Join(m.Names(), "|")
}

// ParseMask parses a list of bit names (see Mask.Names) into a Mask.
// Hex numbers with 0x prefix are accepted as raw bits.
func ParseMask(names []string) (Mask, error) {
	var m Mask

loop:
	for _, s := range names {
		if strings.HasPrefix(s, "0x") {
			v, err := strconv.ParseUint(s[2:], 16, 32)
			if err != nil {
				return 0, fmt.Errorf("invalid access mask bits %q: %w", s, err)
			}
			m |= Mask(v)
			continue
		}

		for _, n := range maskNames {
			if strings.EqualFold(n.name, s) {
				m |= n.m
				continue loop
			}
		}
		return 0, fmt.Errorf("unknown access mask bit %q", s)
	}

	return m, nil
}
