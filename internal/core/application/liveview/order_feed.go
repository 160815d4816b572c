// Package liveview keeps per-viewer order lists current. Each open view
// holds one feed; a feed holds one change subscription and re-runs the
// viewer's list query whenever the orders table changes. Views converge
// by re-reading, so a notification never carries row data.
package liveview

import (
	"context"
	"log/slog"
	"sync"

	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/ports"
)

// ordersTable is the table every feed watches.
const ordersTable = "orders"

// OrderLister is the slice of the query layer a feed needs. Satisfied
// by queries.ListOrdersQueryHandler.
type OrderLister interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.ListOrdersQueryResponse, error)
}

// OrderFeed pushes fresh order list snapshots to a single viewer. If
// subscribing fails the feed still serves the initial snapshot, just
// without live updates; the viewer sees current data on reconnect.
type OrderFeed struct {
	handler OrderLister
	query   queries.ListOrdersQuery
	logger  *slog.Logger

	sub     ports.Subscription
	updates chan []queries.ListOrdersQueryResponse
	done    chan struct{}

	closeOnce sync.Once

	mu       sync.Mutex
	gen      uint64
	snapshot []queries.ListOrdersQueryResponse
}

// NewOrderFeed loads the initial snapshot and subscribes to order
// changes. The context bounds the initial fetch and all refreshes; it
// belongs to the viewer's connection.
func NewOrderFeed(
	ctx context.Context,
	notifier ports.ChangeNotifier,
	handler OrderLister,
	query queries.ListOrdersQuery,
	logger *slog.Logger,
) (*OrderFeed, error) {
	f := &OrderFeed{
		handler: handler,
		query:   query,
		logger:  logger.With("component", "order_feed"),
		updates: make(chan []queries.ListOrdersQueryResponse, 1),
		done:    make(chan struct{}),
	}

	snapshot, err := handler.Handle(ctx, query)
	if err != nil {
		return nil, err
	}
	f.snapshot = snapshot

	sub, err := notifier.Subscribe(ctx, ordersTable, func(ports.ChangeEvent) {
		f.refresh(ctx)
	})
	if err != nil {
		// degraded: initial data only, no live updates
		f.logger.Warn("subscribe failed, serving static snapshot", "error", err)
		return f, nil
	}
	f.sub = sub

	return f, nil
}

// Snapshot returns the most recent order list.
func (f *OrderFeed) Snapshot() []queries.ListOrdersQueryResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot
}

// Updates delivers a new snapshot after each change. Only the latest
// snapshot is retained; a slow viewer skips intermediate states.
func (f *OrderFeed) Updates() <-chan []queries.ListOrdersQueryResponse {
	return f.updates
}

// Live reports whether the feed receives change notifications.
func (f *OrderFeed) Live() bool {
	return f.sub != nil
}

// Close releases the change subscription. Safe to call more than once.
func (f *OrderFeed) Close() {
	f.closeOnce.Do(func() {
		if f.sub != nil {
			f.sub.Unsubscribe()
		}
		close(f.done)
	})
}

// refresh re-runs the list query. Concurrent refreshes race on the
// database read; the generation counter makes sure an older result
// never overwrites a newer snapshot.
func (f *OrderFeed) refresh(ctx context.Context) {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.mu.Unlock()

	go func() {
		snapshot, err := f.handler.Handle(ctx, f.query)
		if err != nil {
			f.logger.Warn("refresh failed, keeping previous snapshot", "error", err)
			return
		}

		f.mu.Lock()
		if gen != f.gen {
			f.mu.Unlock()
			return
		}
		f.snapshot = snapshot
		f.mu.Unlock()

		f.publish(snapshot)
	}()
}

// publish replaces any undelivered snapshot with the new one.
func (f *OrderFeed) publish(snapshot []queries.ListOrdersQueryResponse) {
	for {
		select {
		case <-f.done:
			return
		case f.updates <- snapshot:
			return
		default:
			select {
			case <-f.updates:
			default:
			}
		}
	}
}
