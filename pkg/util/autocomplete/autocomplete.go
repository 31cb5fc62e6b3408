package autocomplete

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const longHelpTemplate = `Print shell completion script to stdout.

Bash:
  $ source <({{name}} completion bash)
  $ {{name}} completion bash > /etc/bash_completion.d/{{name}}

Zsh:
  $ {{name}} completion zsh > "${fpath[1]}/_{{name}}"

Fish:
  $ {{name}} completion fish > ~/.config/fish/completions/{{name}}.fish
`

// Command returns cobra command generating completion scripts for the
// root command of the tree it is added to. name is the binary name used
// in the help.
func Command(name string) *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate completion script",
		Long:                  strings.ReplaceAll(longHelpTemplate, "{{name}}", name),
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell %q", args[0])
			}
		},
	}
}
