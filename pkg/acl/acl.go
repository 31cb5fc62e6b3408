/*
Package acl contains the protocol-neutral representation of access control
lists attached to filesystem objects.

An ACL is an ordered sequence of entries. Order is significant and is kept
untouched by every component of this module, evaluation semantics belong to
the consumer.
*/
package acl

import "strings"

// ACL is an ordered list of access-control entries. The list owns its
// entries exclusively.
type ACL struct {
	Entries []Entry
}

// New returns ACL holding a copy of the given entries.
func New(entries ...Entry) *ACL {
	res := &ACL{Entries: make([]Entry, len(entries))}
	copy(res.Entries, entries)
	return res
}

// Len returns the number of entries. Nil ACL has zero entries.
func (a *ACL) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Entries)
}

// IsEmpty checks whether a is nil or has no entries.
func (a *ACL) IsEmpty() bool {
	return a.Len() == 0
}

// Equal checks whether both lists have the same entries in the same order.
func (a *ACL) Equal(b *ACL) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.Entries[i] != b.Entries[i] {
			return false
		}
	}
	return true
}

// String joins string representations of entries with commas.
func (a *ACL) String() string {
	if a.IsEmpty() {
		return ""
	}

	parts := make([]string, len(a.Entries))
	for i := range a.Entries {
		parts[i] = a.Entries[i].String()
	}

	return strings.Join(parts, ",")
}
