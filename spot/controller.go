package spot

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// PollInterval is the fixed wait between two status queries.
	PollInterval = 1 * time.Second

	// MaxConsecutivePollErrors is the number of failed status queries in a
	// row that are tolerated before the batch is abandoned.
	MaxConsecutivePollErrors = 5
)

// ProgressFunc receives the number of fulfilled requests after every poll.
type ProgressFunc func(fulfilled, total int)

type Controller struct {
	Provider Provider
	Logger   *logrus.Logger
	Progress ProgressFunc

	interval time.Duration
}

func NewController(provider Provider, logger *logrus.Logger) *Controller {
	if logger == nil {
		logger = logrus.New()
		logger.Out = io.Discard
	}

	return &Controller{
		Provider: provider,
		Logger:   logger,
		interval: PollInterval,
	}
}

// attempt holds the state of one batch. It is owned by a single Fulfill or
// Cleanup call.
type attempt struct {
	ids      []string
	names    []string
	statuses map[string]Status
	cleaned  sync.Once
}

func newAttempt(ids, names []string) *attempt {
	statuses := map[string]Status{}
	for _, id := range ids {
		statuses[id] = Status{State: Pending}
	}

	return &attempt{
		ids:      ids,
		names:    names,
		statuses: statuses,
	}
}

// observe merges a describe result. A request leaves Pending at most once;
// a late instance ID is still recorded so cleanup can find it.
func (a *attempt) observe(statuses map[string]Status) {
	for _, id := range a.ids {
		s, ok := statuses[id]
		if !ok {
			continue
		}

		cur := a.statuses[id]
		if cur.State == Pending {
			cur.State = s.State
			if cur.State == Fulfilled && s.InstanceID == "" {
				cur.State = Pending
			}
		}
		if cur.InstanceID == "" {
			cur.InstanceID = s.InstanceID
		}
		a.statuses[id] = cur
	}
}

func (a *attempt) count() (int, []string) {
	fulfilled := 0
	failed := []string{}
	for _, id := range a.ids {
		switch a.statuses[id].State {
		case Fulfilled:
			fulfilled++
		case Failed:
			failed = append(failed, id)
		}
	}
	return fulfilled, failed
}

func (a *attempt) aborted() *Outcome {
	return &Outcome{
		RequestIDs: a.ids,
		Aborted:    true,
	}
}

// Fulfill submits req and blocks until every request is fulfilled, one of
// them fails, or ctx is cancelled. names[i] labels the instance behind the
// i-th request. On cancellation the outcome is Aborted and the error is nil.
func (c *Controller) Fulfill(ctx context.Context, req CapacityRequest, names []string) (*Outcome, error) {
	if req.DesiredCount < 1 || len(names) != req.DesiredCount {
		return &Outcome{}, fmt.Errorf("%w: %d names for %d instances", ErrInvalidRequest, len(names), req.DesiredCount)
	}

	// Provider calls are never interrupted halfway; cancellation is checked
	// between polls.
	pctx := context.WithoutCancel(ctx)

	ids, err := c.Provider.SubmitCapacityRequest(pctx, req)
	if err != nil {
		return &Outcome{}, &SubmissionError{Err: err}
	}

	a := newAttempt(ids, names)
	if len(ids) != req.DesiredCount {
		c.cleanup(pctx, a)
		return a.aborted(), &SubmissionError{
			Err: fmt.Errorf("provider returned %d request ids for %d instances", len(ids), req.DesiredCount),
		}
	}
	c.Logger.WithField("requests", ids).Info("Submitted spot requests")

	pollErrors := 0
	for {
		if ctx.Err() != nil {
			c.Logger.Info("Cancellation requested, cleaning up spot requests")
			c.cleanup(pctx, a)
			return a.aborted(), nil
		}

		statuses, err := c.Provider.DescribeRequests(pctx, ids)
		if err != nil {
			pollErrors++
			c.Logger.WithError(err).Warnf("Describing spot requests failed (attempt %d of %d)", pollErrors, MaxConsecutivePollErrors+1)
			if pollErrors > MaxConsecutivePollErrors {
				c.cleanup(pctx, a)
				return a.aborted(), &ProviderTransientError{Err: err}
			}
		} else {
			pollErrors = 0
			a.observe(statuses)

			fulfilled, failed := a.count()
			if c.Progress != nil {
				c.Progress(fulfilled, len(ids))
			}

			if len(failed) > 0 {
				c.Logger.WithField("requests", failed).Warn("Spot request failed, cleaning up the whole batch")
				c.cleanup(pctx, a)
				return a.aborted(), &PartialFailureError{Failed: failed}
			}

			if fulfilled == len(ids) {
				return c.tag(pctx, a), nil
			}
		}

		select {
		case <-ctx.Done():
		case <-time.After(c.interval):
		}
	}
}

// Cleanup cancels the given requests and terminates any instance already
// provisioned behind them. Failures are logged, never returned.
func (c *Controller) Cleanup(ctx context.Context, ids []string) {
	c.cleanup(context.WithoutCancel(ctx), newAttempt(ids, nil))
}

func (c *Controller) cleanup(ctx context.Context, a *attempt) {
	a.cleaned.Do(func() {
		log := c.Logger.WithField("requests", a.ids)

		if err := c.Provider.CancelRequests(ctx, a.ids); err != nil {
			log.WithError(err).Warn("Cancelling spot requests failed")
		}

		statuses, err := c.Provider.DescribeRequests(ctx, a.ids)
		if err != nil {
			log.WithError(err).Warn("Describing spot requests after cancel failed, using last known state")
		} else {
			a.observe(statuses)
		}

		for _, id := range a.ids {
			instanceID := a.statuses[id].InstanceID
			if instanceID == "" {
				continue
			}

			ilog := log.WithField("instance", instanceID)
			if err := c.Provider.TerminateInstance(ctx, instanceID); err != nil {
				ilog.WithError(err).Error("Terminating instance failed")
				continue
			}
			ilog.Info("Terminated instance")
		}
	})
}

func (c *Controller) tag(ctx context.Context, a *attempt) *Outcome {
	out := &Outcome{RequestIDs: a.ids}
	for i, id := range a.ids {
		as := Assignment{
			Name:       a.names[i],
			RequestID:  id,
			InstanceID: a.statuses[id].InstanceID,
		}

		if err := c.Provider.TagInstance(ctx, as.InstanceID, as.Name); err != nil {
			c.Logger.WithError(err).WithField("instance", as.InstanceID).Warnf("Tagging instance as %q failed", as.Name)
			as.TagErr = err
		}

		out.Assignments = append(out.Assignments, as)
	}
	return out
}
