package cli

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/ryotarai/machine/spot"
)

// ReapCommand cleans up spot batches left behind by interrupted creates.
type ReapCommand struct {
	*Meta

	yes bool
}

func (c *ReapCommand) flags() *flag.FlagSet {
	flags := c.FlagSet("reap")
	flags.BoolVar(&c.yes, "yes", false, "do not ask for confirmation")
	return flags
}

func (c *ReapCommand) Help() string {
	return usage("Usage: machine reap [options]\n\n"+
		"  Cancels journaled spot requests and terminates their instances.", c.flags())
}

func (c *ReapCommand) Synopsis() string {
	return "Clean up abandoned spot requests"
}

func (c *ReapCommand) Run(args []string) int {
	if err := c.flags().Parse(args); err != nil {
		return c.fail(err)
	}

	_, s, err := c.Setup(false)
	if err != nil {
		return c.fail(err)
	}

	batches, err := s.Journal.List()
	if err != nil {
		return c.fail(err)
	}
	if len(batches) == 0 {
		c.Ui.Info("No journaled spot requests")
		return 0
	}

	for _, b := range batches {
		c.Ui.Output(fmt.Sprintf("%s\t%s\t%s\t%s", b.ID, b.CreatedAt.Format(time.RFC3339), strings.Join(b.Names, ","), strings.Join(b.RequestIDs, ",")))
	}

	if !c.yes {
		answer, err := c.Ui.Ask(fmt.Sprintf("Clean up %d batches? [y/N]", len(batches)))
		if err != nil || !strings.EqualFold(strings.TrimSpace(answer), "y") {
			c.Ui.Info("Cancelled")
			return 1
		}
	}

	ctx, cancel := c.InterruptContext()
	defer cancel()

	ctrl := spot.NewController(s.Spot, c.Logger)
	code := 0
	for _, b := range batches {
		if ctx.Err() != nil {
			return 1
		}
		ctrl.Cleanup(ctx, b.RequestIDs)
		if err := s.Journal.Remove(b.ID); err != nil {
			c.Ui.Error(fmt.Sprintf("%s: %s", b.ID, err))
			code = 1
			continue
		}
		c.Ui.Info(fmt.Sprintf("Reaped %s", b.ID))
	}
	return code
}
