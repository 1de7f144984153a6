package session

import (
	"context"
	"errors"
	"time"
)

// ErrLoopStopped is returned by Do once the loop has exited
var ErrLoopStopped = errors.New("session loop stopped")

type op struct {
	fn   func(*Session)
	done chan struct{}
}

// Loop serialises every access to a Session onto one goroutine, together
// with the one-second timer ticks.
type Loop struct {
	s        *Session
	interval time.Duration
	ops      chan op
	ticks    chan TickOutcome
	stopped  chan struct{}
}

// NewLoop wraps s. interval <= 0 means one second.
func NewLoop(s *Session, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = time.Second
	}
	return &Loop{
		s:        s,
		interval: interval,
		ops:      make(chan op),
		ticks:    make(chan TickOutcome, 1),
		stopped:  make(chan struct{}),
	}
}

// Ticks delivers the outcome of each tick while a workout is in progress.
// A slow reader only misses intermediate ticks; the session state is
// always current. The channel is closed when Run returns.
func (l *Loop) Ticks() <-chan TickOutcome {
	return l.ticks
}

// Run processes operations and ticks until ctx is done
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	defer close(l.ticks)
	defer close(l.stopped)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case o := <-l.ops:
			o.fn(l.s)
			close(o.done)
		case <-ticker.C:
			if l.s.State() != InProgress {
				continue
			}
			out := l.s.Tick()
			select {
			case l.ticks <- out:
			default:
				// drop the unread tick in favour of the newer one
				select {
				case <-l.ticks:
				default:
				}
				l.ticks <- out
			}
		}
	}
}

// Do runs fn on the loop goroutine and waits for it to return
func (l *Loop) Do(ctx context.Context, fn func(*Session)) error {
	o := op{fn: fn, done: make(chan struct{})}
	select {
	case l.ops <- o:
	case <-l.stopped:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-o.done:
		return nil
	case <-l.stopped:
		return ErrLoopStopped
	}
}
