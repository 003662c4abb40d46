package cli

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

// Run starts CLI
func Run(args []string) int {
	ui := &cli.PrefixedUi{
		Ui: &cli.BasicUi{
			Reader:      os.Stdin,
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},
		InfoPrefix:  "INFO:  ",
		ErrorPrefix: "ERROR: ",
		WarnPrefix:  "WARN:  ",
	}

	c := cli.NewCLI("machine", Version)
	c.Args = args
	c.Commands = Commands(NewMeta(ui))
	c.HelpWriter = os.Stderr

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err.Error())
		return 1
	}

	return exitCode
}
