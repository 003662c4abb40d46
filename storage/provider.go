package storage

import (
	"context"
	"sync"
	"time"

	"github.com/ryotarai/machine/spot"
	"github.com/sirupsen/logrus"
)

// JournalingProvider records every successful submission in Journal
// before the controller starts polling. The caller removes the batch with
// Forget once the controller returns.
type JournalingProvider struct {
	spot.Provider

	Journal Journal
	Names   []string
	Logger  *logrus.Logger

	mu      sync.Mutex
	batches map[string]string
}

func NewJournalingProvider(p spot.Provider, j Journal, names []string, logger *logrus.Logger) *JournalingProvider {
	return &JournalingProvider{
		Provider: p,
		Journal:  j,
		Names:    names,
		Logger:   logger,
		batches:  map[string]string{},
	}
}

func (p *JournalingProvider) SubmitCapacityRequest(ctx context.Context, req spot.CapacityRequest) ([]string, error) {
	ids, err := p.Provider.SubmitCapacityRequest(ctx, req)
	if err != nil || len(ids) == 0 {
		return ids, err
	}

	b := &Batch{
		ID:         NewBatchID(),
		RequestIDs: ids,
		Names:      p.Names,
		CreatedAt:  time.Now(),
	}
	if err := p.Journal.Add(b); err != nil {
		// The batch is still live; losing the journal entry only affects reap.
		p.Logger.WithError(err).WithField("requests", ids).Warn("Journaling spot requests failed")
		return ids, nil
	}

	p.mu.Lock()
	p.batches[ids[0]] = b.ID
	p.mu.Unlock()
	return ids, nil
}

// Forget removes the batch containing requestIDs from the journal.
func (p *JournalingProvider) Forget(requestIDs []string) {
	if len(requestIDs) == 0 {
		return
	}

	p.mu.Lock()
	id, ok := p.batches[requestIDs[0]]
	delete(p.batches, requestIDs[0])
	p.mu.Unlock()
	if !ok {
		return
	}

	if err := p.Journal.Remove(id); err != nil {
		p.Logger.WithError(err).WithField("batch", id).Warn("Removing journaled batch failed")
	}
}
