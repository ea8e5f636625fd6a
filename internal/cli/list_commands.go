// internal/cli/list_commands.go
package ortbench

import "github.com/spf13/cobra"

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the command tree with summaries and command-specific flags",
	Run: func(cmd *cobra.Command, args []string) {
		runListCommands(cmd.OutOrStdout(), rootCmd)
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
