// internal/cli/show.go
package ortbench

import (
	"github.com/spf13/cobra"
)

// showCmd represents the 'show' command group for displaying settings.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for displaying settings",
	Long:  `The 'show' command groups subcommands that display the configuration and the host the benchmark runs on.`,
}

func init() {
	rootCmd.AddCommand(showCmd)
}
