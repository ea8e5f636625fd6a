// internal/cli/show_config.go
package ortbench

import (
	"github.com/spf13/cobra"
)

// showConfigCmd prints the configuration after file values, defaults and
// flags have been merged.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		runShowConfig(cmd.OutOrStdout())
	},
}

// showHostCmd prints the CPU description used in report headers.
var showHostCmd = &cobra.Command{
	Use:   "host",
	Short: "Show the CPU the benchmark runs on",
	Run: func(cmd *cobra.Command, args []string) {
		runShowHost(cmd.OutOrStdout())
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
	showCmd.AddCommand(showHostCmd)
}
