// Package poller refetches a list on a fixed interval and hands each fresh
// result to a callback.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/roommate-finder/internal/logger"
)

// DefaultInterval is the refetch period used when none is given.
const DefaultInterval = 30 * time.Second

// FetchFunc loads the current value. It must honour ctx cancellation.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Result is one delivered fetch outcome. On error Value holds the last
// successfully fetched value, or the zero value if there is none yet.
type Result[T any] struct {
	Generation uint64
	Value      T
	Err        error
}

// Poller runs FetchFunc immediately and then on every tick.
//
// Every fetch gets a generation number. Starting a fetch cancels the one in
// flight, and a result is delivered only if its generation is still the
// latest and the poller has not been stopped.
type Poller[T any] struct {
	fetch    FetchFunc[T]
	interval time.Duration
	onResult func(Result[T])

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	stopped    bool
	last       T

	deliverMu sync.Mutex
	wg        sync.WaitGroup
}

// New creates a poller. Non-positive intervals fall back to DefaultInterval.
func New[T any](fetch FetchFunc[T], interval time.Duration, onResult func(Result[T])) *Poller[T] {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller[T]{
		fetch:    fetch,
		interval: interval,
		onResult: onResult,
	}
}

// Run fetches now and then every interval until ctx is done, then stops
// the poller.
func (p *Poller[T]) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	defer p.Stop()

	logger.Log.Debugw("Starting poller", "interval", p.interval)

	p.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}

// Refresh starts a fetch without waiting for it, cancelling any fetch still
// in flight. It does nothing once the poller is stopped.
func (p *Poller[T]) Refresh(ctx context.Context) {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	if p.cancel != nil {
		p.cancel()
	}
	p.generation++
	gen := p.generation
	fetchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		defer cancel()

		value, err := p.fetch(fetchCtx)
		p.deliver(gen, value, err)
	}()
}

// Stop cancels the in-flight fetch and waits for it to return. Results
// arriving afterwards are dropped.
func (p *Poller[T]) Stop() {
	p.mu.Lock()
	p.stopped = true
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()

	p.wg.Wait()
}

// Last returns the most recent successfully fetched value.
func (p *Poller[T]) Last() T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

func (p *Poller[T]) deliver(gen uint64, value T, err error) {
	p.deliverMu.Lock()
	defer p.deliverMu.Unlock()

	p.mu.Lock()
	if p.stopped || gen != p.generation {
		p.mu.Unlock()
		logger.Log.Debugw("Dropping stale poll result", "generation", gen)
		return
	}
	if err == nil {
		p.last = value
	} else {
		value = p.last
	}
	p.mu.Unlock()

	if err != nil {
		logger.Log.Warnw("Poll fetch failed, keeping last result", "generation", gen, "error", err)
	}
	p.onResult(Result[T]{Generation: gen, Value: value, Err: err})
}
