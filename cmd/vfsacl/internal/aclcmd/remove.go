package aclcmd

import (
	"errors"

	"github.com/nspcc-dev/vfsacl/cmd/internal/cmderr"
	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/internal/common"
	"github.com/spf13/cobra"
)

func removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <path>",
		Short: "Drop ACL",
		Long:  `Delete the stored ACL of the filesystem object.`,
		Args:  cobra.ExactArgs(1),
		RunE:  removeFunc,
	}
}

func removeFunc(cmd *cobra.Command, args []string) (err error) {
	env, err := common.OpenEnv(cmd, false)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, env.Close()) }()

	f, err := common.OpenTarget(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	err = env.Adapter.RemoveACL(f)
	if err != nil {
		return cmderr.FromStatus(err)
	}

	cmd.Println("ACL removed")

	return nil
}
