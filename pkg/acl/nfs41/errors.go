package nfs41

import "errors"

var (
	// ErrCorrupt is returned when stored bytes do not form a valid ACL value.
	ErrCorrupt = errors.New("corrupted ACL value")

	// ErrAllocation is returned when a buffer for the ACL can not be obtained.
	ErrAllocation = errors.New("ACL buffer allocation failure")

	// ErrEncode is returned when the ACL can not be represented in the
	// serialized form.
	ErrEncode = errors.New("ACL encoding failure")
)
