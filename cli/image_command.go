package cli

import (
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"
)

type ImageCreateCommand struct {
	*Meta

	noReboot bool
	dryRun   bool
}

func (c *ImageCreateCommand) flags() *flag.FlagSet {
	flags := c.FlagSet("image create")
	flags.BoolVar(&c.noReboot, "no-reboot", false, "do not reboot the instance before imaging")
	flags.BoolVar(&c.dryRun, "dry-run", false, "check permissions without creating")
	return flags
}

func (c *ImageCreateCommand) Help() string {
	return usage("Usage: machine image create [options] instance-name image-name", c.flags())
}

func (c *ImageCreateCommand) Synopsis() string {
	return "Create an AMI from an instance"
}

func (c *ImageCreateCommand) Run(args []string) int {
	flags := c.flags()
	if err := flags.Parse(args); err != nil {
		return c.fail(err)
	}
	if flags.NArg() != 2 {
		c.Ui.Error("instance name and image name are required")
		return 1
	}

	_, s, err := c.Setup(c.dryRun)
	if err != nil {
		return c.fail(err)
	}

	ctx, cancel := c.InterruptContext()
	defer cancel()

	instances, err := s.EC2.ResolveNames(ctx, flags.Args()[:1])
	if err != nil {
		return c.fail(err)
	}

	id, err := s.EC2.CreateImage(ctx, instances[0].InstanceID, flags.Arg(1), c.noReboot)
	if err != nil {
		return c.fail(err)
	}
	c.Ui.Output(id)
	return 0
}

type ImageLsCommand struct {
	*Meta
}

func (c *ImageLsCommand) Help() string {
	return usage("Usage: machine image ls [options]", c.FlagSet("image ls"))
}

func (c *ImageLsCommand) Synopsis() string {
	return "List own AMIs"
}

func (c *ImageLsCommand) Run(args []string) int {
	if err := c.FlagSet("image ls").Parse(args); err != nil {
		return c.fail(err)
	}

	_, s, err := c.Setup(false)
	if err != nil {
		return c.fail(err)
	}

	ctx, cancel := c.InterruptContext()
	defer cancel()

	images, err := s.EC2.ListImages(ctx)
	if err != nil {
		return c.fail(err)
	}

	b := &strings.Builder{}
	w := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATE\tCREATED")
	for _, i := range images {
		created := "-"
		if !i.CreationDate.IsZero() {
			created = i.CreationDate.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", i.ImageID, i.Name, i.State, created)
	}
	w.Flush()

	c.Ui.Output(strings.TrimRight(b.String(), "\n"))
	return 0
}

type ImageRmCommand struct {
	*Meta

	dryRun bool
}

func (c *ImageRmCommand) flags() *flag.FlagSet {
	flags := c.FlagSet("image rm")
	flags.BoolVar(&c.dryRun, "dry-run", false, "check permissions without deregistering")
	return flags
}

func (c *ImageRmCommand) Help() string {
	return usage("Usage: machine image rm [options] ami-id...", c.flags())
}

func (c *ImageRmCommand) Synopsis() string {
	return "Deregister AMIs"
}

func (c *ImageRmCommand) Run(args []string) int {
	flags := c.flags()
	if err := flags.Parse(args); err != nil {
		return c.fail(err)
	}
	if flags.NArg() == 0 {
		c.Ui.Error("at least one AMI ID is required")
		return 1
	}

	_, s, err := c.Setup(c.dryRun)
	if err != nil {
		return c.fail(err)
	}

	ctx, cancel := c.InterruptContext()
	defer cancel()

	code := 0
	for _, id := range flags.Args() {
		if err := s.EC2.DeregisterImage(ctx, id); err != nil {
			c.Ui.Error(fmt.Sprintf("%s: %s", id, err))
			code = 1
			continue
		}
		c.Ui.Output(id)
	}
	return code
}
