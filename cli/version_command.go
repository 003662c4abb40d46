package cli

import (
	"fmt"
)

// Set with -ldflags at build time.
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

type VersionCommand struct {
	*Meta
}

func (c *VersionCommand) Help() string {
	return "Usage: machine version"
}

func (c *VersionCommand) Synopsis() string {
	return "Show version"
}

func (c *VersionCommand) Run(args []string) int {
	c.Ui.Output(fmt.Sprintf("machine v%s (%s)", Version, GitCommit))
	return 0
}
