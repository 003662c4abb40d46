package cli

import (
	"flag"
	"strings"

	"gopkg.in/yaml.v2"
)

type ConfigCommand struct {
	*Meta

	profile string
}

func (c *ConfigCommand) flags() *flag.FlagSet {
	flags := c.FlagSet("config")
	flags.StringVar(&c.profile, "profile", "", "show the launch configuration resolved for this profile")
	return flags
}

func (c *ConfigCommand) Help() string {
	return usage("Usage: machine config [options]", c.flags())
}

func (c *ConfigCommand) Synopsis() string {
	return "Show config in parsed format"
}

func (c *ConfigCommand) Run(args []string) int {
	if err := c.flags().Parse(args); err != nil {
		return c.fail(err)
	}

	cfg, err := c.LoadConfig()
	if err != nil {
		return c.fail(err)
	}

	var v interface{} = cfg
	if c.profile != "" {
		lc, err := cfg.Resolve(c.profile)
		if err != nil {
			return c.fail(err)
		}
		v = lc
	}

	b, err := yaml.Marshal(v)
	if err != nil {
		return c.fail(err)
	}
	c.Ui.Output(strings.TrimRight(string(b), "\n"))
	return 0
}
