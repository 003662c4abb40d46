// Package probe finds which service ports of a set of hosts accept TCP
// connections.
package probe

import (
	"context"
	"net"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultTimeout     = 2 * time.Second
	DefaultConcurrency = 32
)

type Prober struct {
	Ports       []int
	Timeout     time.Duration
	Concurrency int
	Logger      *logrus.Logger
}

func NewProber(ports []int, logger *logrus.Logger) *Prober {
	return &Prober{
		Ports:       ports,
		Timeout:     DefaultTimeout,
		Concurrency: DefaultConcurrency,
		Logger:      logger,
	}
}

// Probe dials every port on every host and returns the open ports per host,
// sorted. Hosts with no open port map to an empty slice. A port that cannot
// be reached for any reason counts as closed.
func (p *Prober) Probe(ctx context.Context, hosts []string) map[string][]int {
	var mu sync.Mutex
	open := map[string][]int{}
	for _, h := range hosts {
		open[h] = []int{}
	}

	g, gctx := errgroup.WithContext(ctx)
	if p.Concurrency > 0 {
		g.SetLimit(p.Concurrency)
	}

	dialer := &net.Dialer{Timeout: p.Timeout}
	for _, h := range hosts {
		if h == "" {
			continue
		}
		for _, port := range p.Ports {
			host, port := h, port
			g.Go(func() error {
				if !p.portOpen(gctx, dialer, host, port) {
					return nil
				}
				mu.Lock()
				open[host] = append(open[host], port)
				mu.Unlock()
				return nil
			})
		}
	}
	_ = g.Wait()

	for _, ports := range open {
		sort.Ints(ports)
	}
	return open
}

func (p *Prober) portOpen(ctx context.Context, dialer *net.Dialer, host string, port int) bool {
	target := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := dialer.DialContext(ctx, "tcp", target)
	if err != nil {
		if p.Logger != nil {
			p.Logger.WithError(err).WithField("target", target).Debug("port is not reachable")
		}
		return false
	}
	if err := conn.Close(); err != nil && p.Logger != nil {
		p.Logger.WithError(err).WithField("target", target).Warn("closing TCP connection failed")
	}
	return true
}
