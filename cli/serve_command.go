package cli

import (
	"flag"

	"github.com/gin-gonic/gin"
	"github.com/ryotarai/machine/api"
)

type ServeCommand struct {
	*Meta

	addr string
}

func (c *ServeCommand) flags() *flag.FlagSet {
	flags := c.FlagSet("serve")
	flags.StringVar(&c.addr, "addr", "", "listen address (default: APIAddr in config)")
	return flags
}

func (c *ServeCommand) Help() string {
	return usage("Usage: machine serve [options]", c.flags())
}

func (c *ServeCommand) Synopsis() string {
	return "Serve a read-only HTTP API"
}

func (c *ServeCommand) Run(args []string) int {
	if err := c.flags().Parse(args); err != nil {
		return c.fail(err)
	}

	cfg, s, err := c.Setup(false)
	if err != nil {
		return c.fail(err)
	}

	addr := c.addr
	if addr == "" {
		addr = cfg.APIAddr
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := c.InterruptContext()
	defer cancel()

	server := &api.Server{
		Instances: s.EC2,
		Images:    s.EC2,
		Journal:   s.Journal,
		Logger:    c.Logger,
	}
	if err := server.Run(ctx, addr); err != nil {
		return c.fail(err)
	}
	return 0
}
