package db

import (
	"context"
	"sync"

	"github.com/balkashynov/wrokout/internal/models"
)

type topic struct {
	collection string
	userID     string
}

func templatesTopic(userID string) topic { return topic{"templates", userID} }
func logsTopic(userID string) topic      { return topic{"logs", userID} }

// broker fans write notifications out to live queries. A subscriber's
// channel holds at most one pending signal, so bursts of writes collapse
// into a single reload.
type broker struct {
	mu     sync.Mutex
	subs   map[topic]map[chan struct{}]struct{}
	closed chan struct{}
	once   sync.Once
}

func newBroker() *broker {
	return &broker{
		subs:   make(map[topic]map[chan struct{}]struct{}),
		closed: make(chan struct{}),
	}
}

func (b *broker) subscribe(t topic) chan struct{} {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[t] == nil {
		b.subs[t] = make(map[chan struct{}]struct{})
	}
	b.subs[t][ch] = struct{}{}
	return ch
}

func (b *broker) unsubscribe(t topic, ch chan struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs[t], ch)
	if len(b.subs[t]) == 0 {
		delete(b.subs, t)
	}
}

func (b *broker) publish(t topic) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs[t] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (b *broker) closeAll() {
	b.once.Do(func() { close(b.closed) })
}

// WatchTemplates is a live query over the user's templates. The returned
// channel receives the full list immediately and again after every write.
// It is closed when ctx is done or the store is closed.
func (s *Store) WatchTemplates(ctx context.Context, userID string) (<-chan []models.WorkoutTemplate, error) {
	return watch(ctx, s, templatesTopic(userID), func(ctx context.Context) ([]models.WorkoutTemplate, error) {
		return s.ListTemplates(ctx, userID)
	})
}

// WatchLogs is a live query over the user's workout logs, newest first
func (s *Store) WatchLogs(ctx context.Context, userID string) (<-chan []models.WorkoutLog, error) {
	return watch(ctx, s, logsTopic(userID), func(ctx context.Context) ([]models.WorkoutLog, error) {
		return s.ListLogs(ctx, userID)
	})
}

func watch[T any](ctx context.Context, s *Store, t topic, load func(context.Context) ([]T, error)) (<-chan []T, error) {
	signal := s.broker.subscribe(t)

	first, err := load(ctx)
	if err != nil {
		s.broker.unsubscribe(t, signal)
		return nil, err
	}

	out := make(chan []T)
	go func() {
		defer close(out)
		defer s.broker.unsubscribe(t, signal)

		snapshot, pending := first, true
		for {
			var send chan<- []T
			if pending {
				send = out
			}

			select {
			case send <- snapshot:
				pending = false
			case <-signal:
				next, err := load(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					s.log.WithError(err).WithField("collection", t.collection).Error("live query reload failed")
					continue
				}
				snapshot, pending = next, true
			case <-ctx.Done():
				return
			case <-s.broker.closed:
				return
			}
		}
	}()
	return out, nil
}
