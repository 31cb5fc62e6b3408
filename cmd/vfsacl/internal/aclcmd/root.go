package aclcmd

import (
	"github.com/spf13/cobra"
)

const (
	outputFlag  = "output"
	outputTable = "table"
	outputYAML  = "yaml"

	referralFlag = "referral"

	fromFlag = "from"
)

// Command returns `acl` command definition.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "acl",
		Short: "Operations with NFSv4.1 ACLs of filesystem objects",
	}

	cmd.AddCommand(
		getCommand(),
		setCommand(),
		removeCommand(),
		dumpCommand(),
	)

	return cmd
}
