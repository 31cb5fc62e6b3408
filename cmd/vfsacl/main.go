package main

import (
	"os"

	"github.com/nspcc-dev/vfsacl/cmd/internal/cmderr"
	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/internal/aclcmd"
	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/internal/common"
	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/internal/referralcmd"
	"github.com/nspcc-dev/vfsacl/misc"
	"github.com/nspcc-dev/vfsacl/pkg/util/autocomplete"
	"github.com/spf13/cobra"
)

const binName = "vfsacl"

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   binName,
		Short: "NFSv4.1 ACL attribute tool",
		Long: `vfsacl reads, writes and inspects NFSv4.1 ACLs stored as XDR encoded
extended attributes of filesystem objects.`,
		RunE:          entryPoint,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// use stdout as default output for cmd.Print()
	cmd.SetOut(os.Stdout)
	cmd.Flags().Bool("version", false, "Application version")
	common.AddPersistentFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		aclcmd.Command(),
		referralcmd.Command(),
		autocomplete.Command(binName),
	)

	return cmd
}

func entryPoint(cmd *cobra.Command, _ []string) error {
	printVersion, _ := cmd.Flags().GetBool("version")
	if printVersion {
		cmd.Print(misc.BuildInfo("vfsacl"))

		return nil
	}

	return cmd.Usage()
}

func main() {
	err := newCommand().Execute()
	cmderr.ExitOnErr(err)
}
