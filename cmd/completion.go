package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for studinest.

To load completions:

Bash:
  $ source <(studinest completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ studinest completion bash > /etc/bash_completion.d/studinest
  # macOS:
  $ studinest completion bash > $(brew --prefix)/etc/bash_completion.d/studinest

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ studinest completion zsh > "${fpath[1]}/_studinest"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ studinest completion fish | source

  # To load completions for each session, execute once:
  $ studinest completion fish > ~/.config/fish/completions/studinest.fish

PowerShell:
  PS> studinest completion powershell | Out-String | Invoke-Expression

Completions for assignment, course and reminder ids read the local
database, so they list your own records.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
