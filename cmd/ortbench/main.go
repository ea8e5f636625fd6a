// cmd/ortbench/main.go
package main

import (
	cmd "github.com/mwiater/ortbench/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// main starts the ortbench CLI application by delegating to the
// cobra root command defined in the cli package.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
