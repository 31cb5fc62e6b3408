package aclcmd

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/vfsacl/cmd/internal/cmderr"
	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/internal/aclfile"
	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/internal/common"
	"github.com/nspcc-dev/vfsacl/pkg/vfs"
	"github.com/spf13/cobra"
)

func getCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Print ACL",
		Long:  `Read and decode the stored ACL of the filesystem object.`,
		Args:  cobra.ExactArgs(1),
		RunE:  getFunc,
	}

	ff := cmd.Flags()
	ff.StringP(outputFlag, "o", outputTable, "Output format (table, yaml)")
	ff.Bool(referralFlag, false, "Treat the object as a referral and print its fs locations")

	return cmd
}

func getFunc(cmd *cobra.Command, args []string) (err error) {
	output, _ := cmd.Flags().GetString(outputFlag)
	if output != outputTable && output != outputYAML {
		return fmt.Errorf("unsupported output format %q", output)
	}
	referral, _ := cmd.Flags().GetBool(referralFlag)

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

	req := vfs.AttrACL
	if referral {
		req.Set(vfs.AttrFSLocations)
	}

	var attrs vfs.AttrList

	err = env.Adapter.GetAttrs(env.Object(referral), f, req, &attrs)
	if err != nil {
		return cmderr.FromStatus(err)
	}

	if attrs.Valid.Has(vfs.AttrFSLocations) {
		if output == outputYAML {
			cmd.Printf("# fs_locations: %s\n", attrs.FSLocations)
		} else {
			cmd.Printf("FS locations: %s\n", attrs.FSLocations)
		}
	}

	if !attrs.Valid.Has(vfs.AttrACL) {
		cmd.PrintErrf("ACL is not served for %s brand\n", env.Brand)
		return nil
	}

	if output == outputYAML {
		return aclfile.Encode(cmd.OutOrStdout(), attrs.ACL)
	}

	aclfile.WriteTable(cmd.OutOrStdout(), attrs.ACL)

	return nil
}
