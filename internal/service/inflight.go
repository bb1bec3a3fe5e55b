package service

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInFlight is returned when a mutation is attempted while another
// mutation for the same target has not completed yet. Nothing is queued;
// the caller resubmits once the first request settles.
var ErrInFlight = errors.New("a request for this item is still in progress")

// inflightGuard tracks mutation targets with an outstanding request. One
// guard is shared across all services so a target is protected no matter
// which screen triggers it.
type inflightGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{active: make(map[string]struct{})}
}

// acquire marks a target busy. The returned release func must be called
// once the request settles, success or failure.
func (g *inflightGuard) acquire(target string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[target]; busy {
		return nil, fmt.Errorf("%w (%s)", ErrInFlight, target)
	}
	g.active[target] = struct{}{}

	return func() {
		g.mu.Lock()
		delete(g.active, target)
		g.mu.Unlock()
	}, nil
}
