// internal/cli/inspect.go
package ortbench

import "github.com/spf13/cobra"

// inspectCmd prints what the harness will feed the model.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the model's inputs, outputs and resolved benchmark shape",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(GetConfig(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
