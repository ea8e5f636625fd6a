// internal/cli/run.go
package ortbench

import "github.com/spf13/cobra"

// runCmd benchmarks the configured model under every scenario.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Benchmark the model under each thread/optimization scenario",
	Long:  `Runs the four fixed scenarios (single-core and multicore, with graph optimization disabled and extended) against the configured model, one fresh session each, and prints the mean latency per inference.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBenchmark(cmd.Context(), GetConfig(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
