// internal/cli/scenarios.go
package ortbench

import "github.com/spf13/cobra"

// scenariosCmd lists the scenarios a run would measure.
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the benchmark scenarios and their session settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListScenarios(GetConfig(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}
