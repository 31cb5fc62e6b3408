/*
Package vfs moves ACLs of filesystem objects between their native form and
the extended attribute store.

Each object is configured with an ACL brand. Objects of BrandNone have no
ACL support and all ACL requests for them succeed without any effect. The
POSIX1e brand is not implemented and is reported as ErrUnsupportedBrand.
Objects of BrandNFS41 keep their ACL serialized by package nfs41 in the
xattr.NFS4ACLName attribute.

Adapter is stateless with respect to objects: operations on different
objects may run concurrently, operations on the same object race at the
granularity of the underlying store, the last writer wins.
*/
package vfs
