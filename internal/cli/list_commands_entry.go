package ortbench

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// runListCommands prints every runnable command with its summary and the
// flags it adds on top of the persistent ones.
func runListCommands(out io.Writer, root *cobra.Command) {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("COMMAND", "DESCRIPTION", "FLAGS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, row := range commandRows(root, 0) {
		t.Row(row...)
	}
	fmt.Fprintln(out, t.Render())
}

// commandRows walks the tree depth-first, indenting each level by two spaces.
func commandRows(cmd *cobra.Command, depth int) [][]string {
	rows := [][]string{{strings.Repeat("  ", depth) + cmd.CommandPath(), cmd.Short, localFlags(cmd)}}
	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() || sub.Name() == "completion" {
			continue
		}
		rows = append(rows, commandRows(sub, depth+1)...)
	}
	return rows
}

func localFlags(cmd *cobra.Command) string {
	var names []string
	cmd.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Name != "help" {
			names = append(names, "--"+f.Name)
		}
	})
	if len(names) == 0 {
		return "-"
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}
