package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/ryotarai/machine/command"
	"github.com/ryotarai/machine/config"
	"github.com/ryotarai/machine/ec2"
	"github.com/ryotarai/machine/naming"
	"github.com/ryotarai/machine/spot"
	"github.com/ryotarai/machine/storage"
)

type CreateCommand struct {
	*Meta

	profile      string
	spot         bool
	price        string
	count        int
	instanceType string
	ami          string
	dryRun       bool
}

type createdInstance struct {
	Name       string `json:"name"`
	InstanceID string `json:"instanceId"`
}

func (c *CreateCommand) flags() *flag.FlagSet {
	flags := c.FlagSet("create")
	flags.StringVar(&c.profile, "profile", "", "launch profile from the config file")
	flags.BoolVar(&c.spot, "spot", false, "launch spot instances")
	flags.StringVar(&c.price, "price", "", "maximum spot price per instance hour (default: on-demand price)")
	flags.IntVar(&c.count, "count", 0, "number of instances named <name>-N")
	flags.StringVar(&c.instanceType, "type", "", "instance type")
	flags.StringVar(&c.ami, "ami", "", "AMI ID")
	flags.BoolVar(&c.dryRun, "dry-run", false, "check permissions without launching")
	return flags
}

func (c *CreateCommand) Help() string {
	return usage("Usage: machine create [options] name...\n\n"+
		"  With -count, a single name is used as the base of generated names.", c.flags())
}

func (c *CreateCommand) Synopsis() string {
	return "Launch instances"
}

func (c *CreateCommand) Run(args []string) int {
	flags := c.flags()
	if err := flags.Parse(args); err != nil {
		return c.fail(err)
	}

	names := flags.Args()
	if len(names) == 0 {
		c.Ui.Error("at least one name is required")
		return 1
	}
	if c.count > 0 && len(names) != 1 {
		c.Ui.Error("-count takes exactly one base name")
		return 1
	}
	if err := config.ValidateSpotPrice(c.price); err != nil {
		return c.fail(err)
	}

	cfg, s, err := c.Setup(c.dryRun)
	if err != nil {
		return c.fail(err)
	}

	lc, err := c.launchConfiguration(cfg)
	if err != nil {
		return c.fail(err)
	}

	ctx, cancel := c.InterruptContext()
	defer cancel()

	existing, err := s.EC2.ListInstances(ctx, nil, nil)
	if err != nil {
		return c.fail(err)
	}
	if c.count > 0 {
		names, err = naming.NextNames(names[0], c.count, existing.Names())
	} else {
		err = naming.Validate(names, existing.Names())
	}
	if err != nil {
		return c.fail(err)
	}

	ami, err := lc.ImageID(ctx, c.Logger)
	if err != nil {
		return c.fail(err)
	}
	spec := ec2.NewLaunchSpec(lc, ami)
	c.Logger.WithField("names", names).Infof("Launching %d %s instances from %s", len(names), lc.InstanceType, ami)

	var created []createdInstance
	if c.spot {
		price := lc.SpotPrice
		if c.price != "" {
			price = c.price
		}
		var code int
		created, code = c.runSpot(ctx, s, spec, price, names)
		if code != 0 {
			return code
		}
	} else {
		ids, err := s.EC2.RunInstances(ctx, spec, names)
		for i, id := range ids {
			created = append(created, createdInstance{Name: names[i], InstanceID: id})
		}
		if err != nil {
			c.printCreated(created)
			return c.fail(err)
		}
	}

	c.printCreated(created)

	hooks := &command.Hooks{Commands: cfg.HookCommands, Out: c.Status, Logger: c.Logger}
	err = hooks.Run(context.WithoutCancel(ctx), command.EventInstancesCreated, fmt.Sprintf("Created %d instances", len(created)), map[string]interface{}{
		"instances": created,
		"spot":      c.spot,
	})
	if err != nil {
		return c.fail(err)
	}
	return 0
}

func (c *CreateCommand) launchConfiguration(cfg *config.Config) (*config.LaunchConfiguration, error) {
	lc, err := cfg.Resolve(c.profile)
	if err != nil {
		return nil, err
	}
	if c.instanceType != "" {
		lc.InstanceType = c.instanceType
	}
	if c.ami != "" {
		lc.AMI = c.ami
	}
	if err := lc.CheckLaunchable(); err != nil {
		return nil, err
	}
	return lc, nil
}

func (c *CreateCommand) runSpot(ctx context.Context, s *Services, spec *ec2.LaunchSpec, price string, names []string) ([]createdInstance, int) {
	provider := storage.NewJournalingProvider(s.Spot, s.Journal, names, c.Logger)
	ctrl := spot.NewController(provider, c.Logger)
	progress := newProgressLine(c.Status)
	ctrl.Progress = progress.Update

	out, err := ctrl.Fulfill(ctx, spot.CapacityRequest{
		DesiredCount: len(names),
		Spec:         spec,
		MaxPrice:     price,
	}, names)
	progress.Clear()
	if out != nil {
		provider.Forget(out.RequestIDs)
	}

	if err != nil {
		var serr *spot.SubmissionError
		if errors.As(err, &serr) {
			c.Ui.Error(serr.Error())
			return nil, 1
		}
		return nil, c.fail(err)
	}
	if out.Aborted {
		c.Ui.Warn("Aborted: spot requests were cancelled and launched instances terminated")
		return nil, 1
	}

	created := []createdInstance{}
	for _, a := range out.Assignments {
		if a.TagErr != nil {
			c.Ui.Warn(fmt.Sprintf("%s could not be named %s: %s", a.InstanceID, a.Name, a.TagErr))
		}
		created = append(created, createdInstance{Name: a.Name, InstanceID: a.InstanceID})
	}
	return created, 0
}

func (c *CreateCommand) printCreated(created []createdInstance) {
	for _, i := range created {
		c.Ui.Output(fmt.Sprintf("%s\t%s", i.Name, i.InstanceID))
	}
}
