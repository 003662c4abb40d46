package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/ryotarai/machine/command"
	"github.com/ryotarai/machine/ec2"
)

type instanceAction int

const (
	actionStart instanceAction = iota
	actionStop
	actionTerminate
)

func (a instanceAction) String() string {
	switch a {
	case actionStart:
		return "start"
	case actionStop:
		return "stop"
	}
	return "terminate"
}

// InstanceCommand starts, stops or terminates named instances.
type InstanceCommand struct {
	*Meta

	action instanceAction
	yes    bool
	dryRun bool
}

func (c *InstanceCommand) flags() *flag.FlagSet {
	flags := c.FlagSet(c.action.String())
	flags.BoolVar(&c.dryRun, "dry-run", false, "check permissions without changing anything")
	if c.action == actionTerminate {
		flags.BoolVar(&c.yes, "yes", false, "do not ask for confirmation")
	}
	return flags
}

func (c *InstanceCommand) Help() string {
	return usage(fmt.Sprintf("Usage: machine %s [options] name...", c.action), c.flags())
}

func (c *InstanceCommand) Synopsis() string {
	switch c.action {
	case actionStart:
		return "Start stopped instances"
	case actionStop:
		return "Stop running instances"
	}
	return "Terminate instances"
}

func (c *InstanceCommand) Run(args []string) int {
	flags := c.flags()
	if err := flags.Parse(args); err != nil {
		return c.fail(err)
	}
	if flags.NArg() == 0 {
		c.Ui.Error("at least one instance name is required")
		return 1
	}

	cfg, s, err := c.Setup(c.dryRun)
	if err != nil {
		return c.fail(err)
	}

	ctx, cancel := c.InterruptContext()
	defer cancel()

	instances, err := s.EC2.ResolveNames(ctx, flags.Args())
	if err != nil {
		return c.fail(err)
	}

	if c.action == actionTerminate && !c.yes && !c.confirm(instances) {
		c.Ui.Info("Cancelled")
		return 1
	}

	ids := instances.IDs()
	switch c.action {
	case actionStart:
		err = s.EC2.StartInstances(ctx, ids)
	case actionStop:
		err = s.EC2.StopInstances(ctx, ids)
	case actionTerminate:
		err = s.EC2.TerminateInstances(ctx, ids)
	}
	if err != nil {
		return c.fail(err)
	}

	for _, i := range instances {
		c.Ui.Output(fmt.Sprintf("%s\t%s", i.Name, i.InstanceID))
	}

	if c.action == actionTerminate {
		hooks := &command.Hooks{Commands: cfg.HookCommands, Out: c.Status, Logger: c.Logger}
		err := hooks.Run(context.WithoutCancel(ctx), command.EventInstancesTerminated, fmt.Sprintf("Terminated %d instances", len(ids)), map[string]interface{}{
			"instanceIds": ids,
		})
		if err != nil {
			return c.fail(err)
		}
	}
	return 0
}

func (c *InstanceCommand) confirm(instances ec2.Instances) bool {
	targets := []string{}
	for _, i := range instances {
		targets = append(targets, fmt.Sprintf("%s (%s)", i.Name, i.InstanceID))
	}

	answer, err := c.Ui.Ask(fmt.Sprintf("Terminate %s? [y/N]", strings.Join(targets, ", ")))
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
