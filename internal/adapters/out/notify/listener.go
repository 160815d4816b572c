// Package notify implements the change notification port on top of
// PostgreSQL LISTEN/NOTIFY. A single database connection is shared by
// all subscribers; events fan out in process.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ordertrack/internal/core/ports"

	"github.com/lib/pq"
)

const (
	minReconnectInterval = time.Second
	maxReconnectInterval = 30 * time.Second
)

// PqChangeNotifier listens on PostgreSQL notification channels and fans
// events out to in-process subscribers. One instance per process; the
// underlying connection is independent of the GORM pool.
type PqChangeNotifier struct {
	listener *pq.Listener
	logger   *slog.Logger

	mu     sync.Mutex
	subs   map[string]map[int]func(ports.ChangeEvent)
	nextID int
}

// NewPqChangeNotifier creates a notifier connected with the given DSN.
// The connection retries with backoff after network failures; missed
// notifications during an outage are acceptable because subscribers
// re-read full state on every event anyway.
func NewPqChangeNotifier(dsn string, logger *slog.Logger) *PqChangeNotifier {
	n := &PqChangeNotifier{
		logger: logger.With("component", "change_notifier"),
		subs:   make(map[string]map[int]func(ports.ChangeEvent)),
	}

	n.listener = pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			if err != nil {
				n.logger.Warn("listener connection event", "event", int(event), "error", err)
			}
		})

	return n
}

// Run dispatches notifications until the context is cancelled. Blocks;
// callers run it on its own goroutine.
func (n *PqChangeNotifier) Run(ctx context.Context) error {
	defer n.listener.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case notification := <-n.listener.Notify:
			// nil arrives after a reconnect; subscribers converge on
			// the next real event
			if notification == nil {
				continue
			}
			n.dispatch(notification.Channel, notification.Extra)
		}
	}
}

// Subscribe registers fn for committed changes to the given table. The
// first subscriber of a table issues the LISTEN command; an error here
// means the view runs without live updates.
func (n *PqChangeNotifier) Subscribe(
	_ context.Context, table string, fn func(ports.ChangeEvent),
) (ports.Subscription, error) {
	channel := channelFor(table)

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.subs[channel]; !ok {
		if err := n.listener.Listen(channel); err != nil {
			return nil, fmt.Errorf("listen on %s: %w", channel, err)
		}
		n.subs[channel] = make(map[int]func(ports.ChangeEvent))
	}

	id := n.nextID
	n.nextID++
	n.subs[channel][id] = fn

	sub := &subscription{}
	sub.unsubscribe = func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs[channel], id)
	}

	return sub, nil
}

func (n *PqChangeNotifier) dispatch(channel, op string) {
	n.mu.Lock()
	fns := make([]func(ports.ChangeEvent), 0, len(n.subs[channel]))
	for _, fn := range n.subs[channel] {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	event := ports.ChangeEvent{Table: tableFor(channel), Op: op}
	for _, fn := range fns {
		fn(event)
	}
}

func channelFor(table string) string {
	return table + "_changed"
}

func tableFor(channel string) string {
	return channel[:len(channel)-len("_changed")]
}

// subscription implements ports.Subscription. Unsubscribe is safe to
// call more than once.
type subscription struct {
	once        sync.Once
	unsubscribe func()
}

func (s *subscription) Unsubscribe() {
	s.once.Do(s.unsubscribe)
}
