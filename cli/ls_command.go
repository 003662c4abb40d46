package cli

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ryotarai/machine/ec2"
	"github.com/ryotarai/machine/probe"
)

var defaultServicePorts = []int{22, 80, 443}

type LsCommand struct {
	*Meta

	state   string
	cpu     bool
	probe   bool
	private bool
}

func (c *LsCommand) flags() *flag.FlagSet {
	flags := c.FlagSet("ls")
	flags.StringVar(&c.state, "state", "", "comma separated instance states (default: all but terminated)")
	flags.BoolVar(&c.cpu, "cpu", false, "show average CPU utilization of the last 10 minutes")
	flags.BoolVar(&c.probe, "probe", false, "probe service ports")
	flags.BoolVar(&c.private, "private", false, "show and probe private addresses")
	return flags
}

func (c *LsCommand) Help() string {
	return usage("Usage: machine ls [options] [selector...]\n\n"+
		"  Selectors are instance IDs, Name patterns (\"web-*\") or key=value tags.", c.flags())
}

func (c *LsCommand) Synopsis() string {
	return "List instances"
}

func (c *LsCommand) Run(args []string) int {
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

	var states []string
	if c.state != "" {
		states = strings.Split(c.state, ",")
	}
	instances, err := s.EC2.ListInstances(ctx, flags.Args(), states)
	if err != nil {
		return c.fail(err)
	}

	var cpu map[string]float64
	if c.cpu {
		running := []string{}
		for _, i := range instances {
			if i.State == "running" {
				running = append(running, i.InstanceID)
			}
		}
		cpu, err = s.Metrics.CPUUtilization(ctx, running)
		if err != nil {
			return c.fail(err)
		}
	}

	var ports map[string][]int
	if c.probe {
		servicePorts := cfg.ServicePorts
		if len(servicePorts) == 0 {
			servicePorts = defaultServicePorts
		}
		addrs := []string{}
		for _, i := range instances {
			if a := i.Address(c.private); a != "" {
				addrs = append(addrs, a)
			}
		}
		ports = probe.NewProber(servicePorts, c.Logger).Probe(ctx, addrs)
	}

	c.Ui.Output(c.table(instances, cpu, ports))
	return 0
}

func (c *LsCommand) table(instances ec2.Instances, cpu map[string]float64, ports map[string][]int) string {
	b := &strings.Builder{}
	w := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)

	header := []string{"NAME", "ID", "TYPE", "STATE", "LIFECYCLE", "ADDRESS"}
	if c.cpu {
		header = append(header, "CPU")
	}
	if c.probe {
		header = append(header, "PORTS")
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for _, i := range instances {
		addr := i.Address(c.private)
		row := []string{dash(i.Name), i.InstanceID, dash(i.InstanceType), dash(i.State), dash(i.Lifecycle), dash(addr)}
		if c.cpu {
			if v, ok := cpu[i.InstanceID]; ok {
				row = append(row, fmt.Sprintf("%.1f%%", v))
			} else {
				row = append(row, "-")
			}
		}
		if c.probe {
			open := []string{}
			for _, p := range ports[addr] {
				open = append(open, strconv.Itoa(p))
			}
			row = append(row, dash(strings.Join(open, ",")))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	return strings.TrimRight(b.String(), "\n")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
