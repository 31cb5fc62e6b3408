package aclcmd

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/nspcc-dev/vfsacl/cmd/internal/cmderr"
	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/internal/aclfile"
	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/internal/common"
	"github.com/nspcc-dev/vfsacl/pkg/acl/nfs41"
	"github.com/nspcc-dev/vfsacl/pkg/vfs"
	"github.com/nspcc-dev/vfsacl/pkg/xattr"
	"github.com/spf13/cobra"
)

func dumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <path>",
		Short: "Inspect raw ACL attribute",
		Long: `Print the raw value of the ACL attribute with its header fields.
The value is decoded if it is well-formed.`,
		Args: cobra.ExactArgs(1),
		RunE: dumpFunc,
	}
}

func dumpFunc(cmd *cobra.Command, args []string) (err error) {
	env, err := common.OpenEnv(cmd, true)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, env.Close()) }()

	f, err := common.OpenTarget(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	raw, err := xattr.Get(env.Store, f, xattr.NFS4ACLName)
	if err != nil {
		if xattr.IsNotFound(err) {
			return cmderr.FromStatus(vfs.ErrNoACL)
		}
		return cmderr.FromStatus(fmt.Errorf("%w: %w", vfs.ErrStorageIO, err))
	}

	cmd.Printf("Attribute: %s\n", xattr.NFS4ACLName)
	cmd.Printf("Size: %d\n", len(raw))
	cmd.Print(hex.Dump(raw))

	count, reserved, err := nfs41.Header(raw)
	if err != nil {
		return cmderr.FromStatus(err)
	}

	cmd.Printf("Entries: %d\n", count)
	cmd.Printf("Reserved: %#x\n", reserved)
	cmd.Printf("Layout size: %d\n", nfs41.LayoutSize(int(count)))

	list, err := nfs41.Unmarshal(raw)
	if err != nil {
		return cmderr.FromStatus(err)
	}

	aclfile.WriteTable(cmd.OutOrStdout(), list)

	return nil
}
