package acl_test

import (
	"testing"

	"github.com/nspcc-dev/vfsacl/pkg/acl"
	"github.com/stretchr/testify/require"
)

func TestEntry(t *testing.T) {
	t.Run("user", func(t *testing.T) {
		e := acl.NewUserEntry(acl.TypeAllow, acl.FlagGroup|acl.FlagFileInherit, acl.MaskReadData, 1000)
		require.False(t, e.IsGroup())
		require.False(t, e.IsSpecial())
		require.EqualValues(t, 1000, e.ID())
		require.Equal(t, acl.FlagFileInherit, e.Flag)
		require.Equal(t, "ALLOW:f:READ_DATA:1000", e.String())
	})

	t.Run("group", func(t *testing.T) {
		e := acl.NewGroupEntry(acl.TypeDeny, 0, acl.MaskWriteData|acl.MaskAppendData, 2000)
		require.True(t, e.IsGroup())
		require.EqualValues(t, 2000, e.ID())
		require.Zero(t, e.Who.UID)
		require.Equal(t, "DENY:g:WRITE_DATA|APPEND_DATA:2000", e.String())
	})

	t.Run("special", func(t *testing.T) {
		owner := acl.NewSpecialEntry(acl.TypeAllow, 0, acl.MaskReadACL, acl.SpecialOwner)
		require.True(t, owner.IsSpecial())
		require.False(t, owner.IsGroup())
		require.Equal(t, "ALLOW::READ_ACL:OWNER@", owner.String())

		group := acl.NewSpecialEntry(acl.TypeAllow, 0, acl.MaskReadACL, acl.SpecialGroup)
		require.True(t, group.IsGroup())
		require.EqualValues(t, acl.SpecialGroup, group.Who.GID)
		require.Equal(t, "ALLOW:g:READ_ACL:GROUP@", group.String())
	})
}

func TestType(t *testing.T) {
	for _, typ := range []acl.Type{acl.TypeAllow, acl.TypeDeny, acl.TypeAudit, acl.TypeAlarm} {
		parsed, err := acl.ParseType(typ.String())
		require.NoError(t, err)
		require.Equal(t, typ, parsed)
	}

	parsed, err := acl.ParseType("deny")
	require.NoError(t, err)
	require.Equal(t, acl.TypeDeny, parsed)

	_, err = acl.ParseType("permit")
	require.Error(t, err)

	require.False(t, acl.Type(4).Valid())
	require.Equal(t, "TYPE(4)", acl.Type(4).String())
}

func TestMask(t *testing.T) {
	require.Equal(t, "0", acl.Mask(0).String())
	require.Equal(t, "READ_DATA|0x80000000", (acl.MaskReadData | 0x80000000).String())

	m, err := acl.ParseMask([]string{"read_data", "WRITE_ACL", "SYNCHRONIZE"})
	require.NoError(t, err)
	require.Equal(t, acl.MaskReadData|acl.MaskWriteACL|acl.MaskSynchronize, m)

	raw := acl.MaskReadData | acl.Mask(0x200000)
	require.Equal(t, []string{"READ_DATA", "0x200000"}, raw.Names())
	m, err = acl.ParseMask(raw.Names())
	require.NoError(t, err)
	require.Equal(t, raw, m)

	_, err = acl.ParseMask([]string{"0xZZ"})
	require.Error(t, err)

	_, err = acl.ParseMask([]string{"READ_DATA", "FLY"})
	require.Error(t, err)
}

func TestACL(t *testing.T) {
	var nilACL *acl.ACL
	require.True(t, nilACL.IsEmpty())
	require.Zero(t, nilACL.Len())
	require.True(t, nilACL.Equal(acl.New()))

	entries := []acl.Entry{
		acl.NewUserEntry(acl.TypeAllow, 0, acl.MaskReadData, 1000),
		acl.NewGroupEntry(acl.TypeAllow, 0, acl.MaskWriteData, 2000),
	}

	a := acl.New(entries...)
	entries[0].Perm = acl.MaskDelete
	require.Equal(t, acl.MaskReadData, a.Entries[0].Perm, "New must copy entries")

	b := acl.New(a.Entries[1], a.Entries[0])
	require.False(t, a.Equal(b), "order is significant")
	require.True(t, a.Equal(acl.New(a.Entries...)))
	require.Equal(t, "ALLOW::READ_DATA:1000,ALLOW:g:WRITE_DATA:2000", a.String())
}

func TestFlags(t *testing.T) {
	f, err := acl.ParseFlags([]string{"file_inherit", "IDENTIFIER_GROUP"})
	require.NoError(t, err)
	require.Equal(t, acl.FlagFileInherit|acl.FlagGroup, f)
	require.Equal(t, []string{"FILE_INHERIT", "IDENTIFIER_GROUP"}, f.Names())
	require.Empty(t, acl.Flag(0).Names())

	_, err = acl.ParseFlags([]string{"STICKY"})
	require.Error(t, err)
}

func TestSpecial(t *testing.T) {
	id, ok := acl.ParseSpecial("everyone@")
	require.True(t, ok)
	require.Equal(t, acl.SpecialEveryone, id)

	_, ok = acl.ParseSpecial("NOBODY@")
	require.False(t, ok)

	require.Equal(t, "OWNER@", acl.NewSpecialEntry(acl.TypeAllow, 0, 0, acl.SpecialOwner).SpecialName())
	require.Empty(t, acl.NewUserEntry(acl.TypeAllow, 0, 0, acl.SpecialOwner).SpecialName())
	require.Empty(t, acl.NewSpecialEntry(acl.TypeAllow, 0, 0, 77).SpecialName())
}
