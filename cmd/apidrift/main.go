// Command apidrift reconciles API knowledge across documentation, code
// analysis, and issue-tracker sources, and reports the drift between them.
package main

import "github.com/apidrift/apidrift/cmd/apidrift/cmd"

// Version information set by build flags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
