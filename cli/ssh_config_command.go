package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/ryotarai/machine/sshconfig"
)

type SSHConfigCommand struct {
	*Meta

	output  string
	user    string
	private bool
}

func (c *SSHConfigCommand) flags() *flag.FlagSet {
	flags := c.FlagSet("ssh-config")
	flags.StringVar(&c.output, "o", "", "update the managed section of this ssh_config file instead of printing")
	flags.StringVar(&c.user, "user", "", "login user")
	flags.BoolVar(&c.private, "private", false, "use private IP addresses")
	return flags
}

func (c *SSHConfigCommand) Help() string {
	return usage("Usage: machine ssh-config [options] [selector...]", c.flags())
}

func (c *SSHConfigCommand) Synopsis() string {
	return "Generate ssh_config entries for running instances"
}

func (c *SSHConfigCommand) Run(args []string) int {
	flags := c.flags()
	if err := flags.Parse(args); err != nil {
		return c.fail(err)
	}

	cfg, s, err := c.Setup(false)
	if err != nil {
		return c.fail(err)
	}

	ctx, cancel := c.InterruptContext()
	defer cancel()

	instances, err := s.EC2.ListInstances(ctx, flags.Args(), []string{"running"})
	if err != nil {
		return c.fail(err)
	}

	private := c.private || cfg.SSH.UsePrivateIP
	hosts := []sshconfig.Host{}
	for _, i := range instances {
		if i.Name == "" || i.Address(private) == "" {
			c.Logger.WithField("instance", i.InstanceID).Debug("skipping instance without name or address")
			continue
		}
		hosts = append(hosts, sshconfig.Host{Name: i.Name, Address: i.Address(private)})
	}

	opts := sshconfig.Options{
		User:                   cfg.SSH.User,
		IdentityFile:           cfg.SSH.IdentityFile,
		Port:                   cfg.SSH.Port,
		DisableHostKeyChecking: cfg.SSH.DisableHostKeyChecking,
	}
	if c.user != "" {
		opts.User = c.user
	}

	b := &strings.Builder{}
	if err := sshconfig.Render(b, hosts, opts); err != nil {
		return c.fail(err)
	}

	path := c.output
	if path == "" {
		path = cfg.SSH.ConfigPath
	}
	if path == "" {
		c.Ui.Output(strings.TrimRight(b.String(), "\n"))
		return 0
	}

	if err := sshconfig.Update(path, []byte(b.String())); err != nil {
		return c.fail(err)
	}
	c.Ui.Info(fmt.Sprintf("Wrote %d hosts to %s", len(hosts), path))
	return 0
}
