/*
Package nfs41 implements the binary encoding of NFSv4.1 ACLs stored as a
single extended attribute value.

The value is a header followed by a contiguous array of entries, every field
is a 4-byte big-endian (XDR) unsigned integer:

	[count][reserved][type flag access_mask iflag who] ... [type flag access_mask iflag who]

The number of entry records always equals count, so a valid value is exactly
SerializedSize(count) bytes long. Bit 0 of iflag marks a special (well-known)
principal. The who field carries a uid or a gid depending on the group bit of
the flag field.

Two sizes exist for a list of n entries. SerializedSize is the length of the
bytes handed to the attribute store. LayoutSize is the size of the host
in-memory representation including alignment padding of the header and must
never be used for storage.
*/
package nfs41
