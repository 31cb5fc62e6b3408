package aclcmd

import (
	"errors"

	"github.com/nspcc-dev/vfsacl/cmd/internal/cmderr"
	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/internal/aclfile"
	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/internal/common"
	"github.com/nspcc-dev/vfsacl/pkg/acl"
	"github.com/nspcc-dev/vfsacl/pkg/vfs"
	"github.com/spf13/cobra"
)

func setCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <path>",
		Short: "Store ACL",
		Long: `Replace the stored ACL of the filesystem object with the one from the YAML file.
Empty ACL is rejected, use 'remove' to drop the ACL.`,
		Args: cobra.ExactArgs(1),
		RunE: setFunc,
	}

	cmd.Flags().StringP(fromFlag, "f", "", "YAML file with the ACL, '-' for stdin")
	_ = cmd.MarkFlagRequired(fromFlag)

	return cmd
}

func setFunc(cmd *cobra.Command, args []string) (err error) {
	env, err := common.OpenEnv(cmd, false)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, env.Close()) }()

	from, _ := cmd.Flags().GetString(fromFlag)

	var list *acl.ACL
	if from == "-" {
		list, err = aclfile.Decode(cmd.InOrStdin())
	} else {
		list, err = aclfile.Load(env.Fs, from)
	}
	if err != nil {
		return err
	}

	f, err := common.OpenTarget(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	attrs := vfs.AttrList{ACL: list}

	err = env.Adapter.SetAttrs(env.Object(false), f, vfs.AttrACL, &attrs)
	if err != nil {
		return cmderr.FromStatus(err)
	}

	if !attrs.Valid.Has(vfs.AttrACL) {
		cmd.PrintErrf("ACL is not served for %s brand, nothing stored\n", env.Brand)
		return nil
	}

	cmd.Printf("ACL of %d entries stored\n", list.Len())

	return nil
}
