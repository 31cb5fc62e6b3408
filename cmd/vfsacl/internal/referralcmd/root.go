package referralcmd

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/vfsacl/cmd/vfsacl/internal/common"
	"github.com/nspcc-dev/vfsacl/pkg/vfs"
	"github.com/nspcc-dev/vfsacl/pkg/xattr"
	"github.com/spf13/cobra"
)

// Command returns `referral` command definition.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "referral",
		Short: "Operations with referral locations of filesystem objects",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <path> <server:path>",
			Short: "Store referral location",
			Args:  cobra.ExactArgs(2),
			RunE:  setFunc,
		},
		&cobra.Command{
			Use:   "remove <path>",
			Short: "Drop referral location",
			Args:  cobra.ExactArgs(1),
			RunE:  removeFunc,
		},
	)

	return cmd
}

func setFunc(cmd *cobra.Command, args []string) (err error) {
	loc, err := vfs.ParseFSLocations(args[1])
	if err != nil {
		return err
	}

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

	err = env.Store.Set(f, xattr.FSLocationName, []byte(loc.String()))
	if err != nil {
		return fmt.Errorf("could not store referral location: %w", err)
	}

	cmd.Printf("Referral location %s stored\n", loc)

	return nil
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

	err = env.Store.Remove(f, xattr.FSLocationName)
	if err != nil {
		return fmt.Errorf("could not remove referral location: %w", err)
	}

	cmd.Println("Referral location removed")

	return nil
}
