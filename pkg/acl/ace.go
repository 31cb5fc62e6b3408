package acl

import (
	"fmt"
	"strings"
)

// Type is an access-control entry type.
type Type uint32

// Entry types as defined by NFSv4.
const (
	TypeAllow Type = iota
	TypeDeny
	TypeAudit
	TypeAlarm
)

var typeNames = [...]string{
	TypeAllow: "ALLOW",
	TypeDeny:  "DENY",
	TypeAudit: "AUDIT",
	TypeAlarm: "ALARM",
}

// Valid checks whether t is one of the known entry types.
func (t Type) Valid() bool {
	return t <= TypeAlarm
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if t.Valid() {
		return typeNames[t]
	}
	return fmt.Sprintf("TYPE(%d)", uint32(t))
}

// ParseType returns Type by its name as produced by Type.String.
// Names are case-insensitive.
func ParseType(s string) (Type, error) {
	for i := range typeNames {
		if strings.EqualFold(typeNames[i], s) {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown ACE type %q", s)
}

// Flag is a set of ACE flags.
type Flag uint32

// ACE flags.
const (
	FlagFileInherit        Flag = 0x00000001
	FlagDirectoryInherit   Flag = 0x00000002
	FlagNoPropagateInherit Flag = 0x00000004
	FlagInheritOnly        Flag = 0x00000008
	FlagSuccessfulAccess   Flag = 0x00000010
	FlagFailedAccess       Flag = 0x00000020
	// FlagGroup marks the entry's principal as a group.
	FlagGroup     Flag = 0x00000040
	FlagInherited Flag = 0x00000080
)

// IFlag is a set of internal entry flags that never leave the server as is.
type IFlag uint32

// IFlagSpecialID marks an entry whose principal is one of the Special ids.
const IFlagSpecialID IFlag = 0x80000000

// Special principal ids. They are stored in the numeric who slot of an entry
// with IFlagSpecialID set.
const (
	SpecialOwner    uint32 = 1
	SpecialGroup    uint32 = 2
	SpecialEveryone uint32 = 3
)

var flagNames = []struct {
	f    Flag
	name string
	c    byte
}{
	{FlagFileInherit, "FILE_INHERIT", 'f'},
	{FlagDirectoryInherit, "DIRECTORY_INHERIT", 'd'},
	{FlagNoPropagateInherit, "NO_PROPAGATE_INHERIT", 'n'},
	{FlagInheritOnly, "INHERIT_ONLY", 'i'},
	{FlagSuccessfulAccess, "SUCCESSFUL_ACCESS", 'S'},
	{FlagFailedAccess, "FAILED_ACCESS", 'F'},
	{FlagGroup, "IDENTIFIER_GROUP", 'g'},
	{FlagInherited, "INHERITED", 'I'},
}

// Names returns names of the set flags. Unknown bits are skipped.
func (f Flag) Names() []string {
	var res []string
	for _, n := range flagNames {
		if f&n.f != 0 {
			res = append(res, n.name)
		}
	}
	return res
}

// ParseFlags parses a list of flag names (see Flag.Names) into a Flag.
func ParseFlags(names []string) (Flag, error) {
	var f Flag

loop:
	for _, s := range names {
		for _, n := range flagNames {
			if strings.EqualFold(n.name, s) {
				f |= n.f
				continue loop
			}
		}
		return 0, fmt.Errorf("unknown ACE flag %q", s)
	}

	return f, nil
}

var specialNames = map[uint32]string{
	SpecialOwner:    "OWNER@",
	SpecialGroup:    "GROUP@",
	SpecialEveryone: "EVERYONE@",
}

// Who is the principal of an entry. Only one of the slots is meaningful,
// which one is decided by the group flag of the owning Entry.
type Who struct {
	UID uint32
	GID uint32
}

// Entry is a single access-control entry.
type Entry struct {
	Type  Type
	Flag  Flag
	IFlag IFlag
	Perm  Mask
	Who   Who
}

// NewUserEntry constructs an entry for the numeric user id.
func NewUserEntry(typ Type, flag Flag, perm Mask, uid uint32) Entry {
	return Entry{
		Type: typ,
		Flag: flag &^ FlagGroup,
		Perm: perm,
		Who:  Who{UID: uid},
	}
}

// NewGroupEntry constructs an entry for the numeric group id.
func NewGroupEntry(typ Type, flag Flag, perm Mask, gid uint32) Entry {
	return Entry{
		Type: typ,
		Flag: flag | FlagGroup,
		Perm: perm,
		Who:  Who{GID: gid},
	}
}

// NewSpecialEntry constructs an entry for one of the Special principals.
// SpecialGroup is stored as a group principal.
func NewSpecialEntry(typ Type, flag Flag, perm Mask, id uint32) Entry {
	e := Entry{
		Type:  typ,
		Flag:  flag &^ FlagGroup,
		IFlag: IFlagSpecialID,
		Perm:  perm,
	}
	if id == SpecialGroup {
		e.Flag |= FlagGroup
		e.Who.GID = id
	} else {
		e.Who.UID = id
	}
	return e
}

// IsGroup checks whether the principal is a group.
func (e Entry) IsGroup() bool {
	return e.Flag&FlagGroup != 0
}

// IsSpecial checks whether the principal is a well-known one.
func (e Entry) IsSpecial() bool {
	return e.IFlag&IFlagSpecialID != 0
}

// ID returns the numeric id of the principal from the slot selected by
// the group flag.
func (e Entry) ID() uint32 {
	if e.IsGroup() {
		return e.Who.GID
	}
	return e.Who.UID
}

// SpecialName returns the name of the well-known principal of the entry,
// empty if the principal is not special or unknown.
func (e Entry) SpecialName() string {
	if !e.IsSpecial() {
		return ""
	}
	return specialNames[e.ID()]
}

// ParseSpecial returns the id of the well-known principal by its name
// (OWNER@, GROUP@ or EVERYONE@).
func ParseSpecial(s string) (uint32, bool) {
	for id, name := range specialNames {
		if strings.EqualFold(name, s) {
			return id, true
		}
	}
	return 0, false
}

// String formats the entry as TYPE:FLAGS:MASK:WHO.
func (e Entry) String() string {
	var sb strings.Builder

	sb.WriteString(e.Type.String())
	sb.WriteByte(':')
	sb.WriteString(flagString(e.Flag))
	sb.WriteByte(':')
	sb.WriteString(e.Perm.String())
	sb.WriteByte(':')

	if name := e.SpecialName(); name != "" {
		sb.WriteString(name)
		return sb.String()
	}

	fmt.Fprintf(&sb, "%d", e.ID())
	return sb.String()
}

func flagString(f Flag) string {
	var b []byte
	for _, n := range flagNames {
		if f&n.f != 0 {
			b = append(b, n.c)
		}
	}
	return string(b)
}
