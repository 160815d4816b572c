package liveview_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"ordertrack/internal/core/application/access"
	"ordertrack/internal/core/application/liveview"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/ports"

	"github.com/stretchr/testify/require"
)

// fakeNotifier collects subscriptions and lets tests fire change events.
type fakeNotifier struct {
	mu           sync.Mutex
	fns          []func(ports.ChangeEvent)
	subscribeErr error
	unsubscribed int
}

func (n *fakeNotifier) Subscribe(
	_ context.Context, _ string, fn func(ports.ChangeEvent),
) (ports.Subscription, error) {
	if n.subscribeErr != nil {
		return nil, n.subscribeErr
	}

	n.mu.Lock()
	n.fns = append(n.fns, fn)
	n.mu.Unlock()

	return fakeSubscription{onUnsubscribe: func() {
		n.mu.Lock()
		n.unsubscribed++
		n.mu.Unlock()
	}}, nil
}

func (n *fakeNotifier) fire() {
	n.mu.Lock()
	fns := append([]func(ports.ChangeEvent){}, n.fns...)
	n.mu.Unlock()

	for _, fn := range fns {
		fn(ports.ChangeEvent{Table: "orders", Op: "UPDATE"})
	}
}

type fakeSubscription struct {
	onUnsubscribe func()
}

func (s fakeSubscription) Unsubscribe() { s.onUnsubscribe() }

// fakeLister returns canned snapshots in sequence, repeating the last.
type fakeLister struct {
	mu        sync.Mutex
	snapshots [][]queries.ListOrdersQueryResponse
	errs      []error
	calls     int
}

func (l *fakeLister) Handle(
	_ context.Context, _ queries.ListOrdersQuery,
) ([]queries.ListOrdersQueryResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.calls
	l.calls++

	if i < len(l.errs) && l.errs[i] != nil {
		return nil, l.errs[i]
	}
	if i >= len(l.snapshots) {
		i = len(l.snapshots) - 1
	}
	return l.snapshots[i], nil
}

func snapshotOf(descriptions ...string) []queries.ListOrdersQueryResponse {
	rows := make([]queries.ListOrdersQueryResponse, 0, len(descriptions))
	for _, d := range descriptions {
		rows = append(rows, queries.ListOrdersQueryResponse{
			ID:          kernel.NewUUID(),
			Description: d,
			Status:      "Pendiente",
		})
	}
	return rows
}

func feedQuery(t *testing.T) queries.ListOrdersQuery {
	t.Helper()
	query, err := queries.NewListOrdersQuery(access.Actor{
		ID:    kernel.NewUUID(),
		Email: "viewer@example.com",
		Role:  account.RoleAdmin,
	})
	require.NoError(t, err)
	return query
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNewOrderFeed_ServesInitialSnapshot(t *testing.T) {
	notifier := &fakeNotifier{}
	lister := &fakeLister{snapshots: [][]queries.ListOrdersQueryResponse{snapshotOf("first order")}}

	feed, err := liveview.NewOrderFeed(t.Context(), notifier, lister, feedQuery(t), discardLogger())
	require.NoError(t, err)
	defer feed.Close()

	require.True(t, feed.Live())
	require.Len(t, feed.Snapshot(), 1)
	require.Equal(t, "first order", feed.Snapshot()[0].Description)
}

func TestNewOrderFeed_InitialFetchError(t *testing.T) {
	notifier := &fakeNotifier{}
	lister := &fakeLister{errs: []error{errors.New("db down")}}

	_, err := liveview.NewOrderFeed(t.Context(), notifier, lister, feedQuery(t), discardLogger())
	require.Error(t, err)
}

func TestNewOrderFeed_SubscribeFailure_Degraded(t *testing.T) {
	notifier := &fakeNotifier{subscribeErr: errors.New("listener gone")}
	lister := &fakeLister{snapshots: [][]queries.ListOrdersQueryResponse{snapshotOf("only order")}}

	feed, err := liveview.NewOrderFeed(t.Context(), notifier, lister, feedQuery(t), discardLogger())
	require.NoError(t, err)
	defer feed.Close()

	// the initial data still renders, it just never refreshes
	require.False(t, feed.Live())
	require.Len(t, feed.Snapshot(), 1)
}

func TestOrderFeed_RefreshesOnEvent(t *testing.T) {
	notifier := &fakeNotifier{}
	lister := &fakeLister{snapshots: [][]queries.ListOrdersQueryResponse{
		snapshotOf("first order"),
		snapshotOf("first order", "second order"),
	}}

	feed, err := liveview.NewOrderFeed(t.Context(), notifier, lister, feedQuery(t), discardLogger())
	require.NoError(t, err)
	defer feed.Close()

	notifier.fire()

	select {
	case snapshot := <-feed.Updates():
		require.Len(t, snapshot, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("no update delivered")
	}

	require.Len(t, feed.Snapshot(), 2)
}

func TestOrderFeed_RefreshError_KeepsPreviousSnapshot(t *testing.T) {
	notifier := &fakeNotifier{}
	lister := &fakeLister{
		snapshots: [][]queries.ListOrdersQueryResponse{snapshotOf("stable order")},
		errs:      []error{nil, errors.New("query failed")},
	}

	feed, err := liveview.NewOrderFeed(t.Context(), notifier, lister, feedQuery(t), discardLogger())
	require.NoError(t, err)
	defer feed.Close()

	notifier.fire()

	select {
	case <-feed.Updates():
		t.Fatal("failed refresh must not publish")
	case <-time.After(200 * time.Millisecond):
	}

	require.Equal(t, "stable order", feed.Snapshot()[0].Description)
}

func TestOrderFeed_Close_ReleasesSubscription(t *testing.T) {
	notifier := &fakeNotifier{}
	lister := &fakeLister{snapshots: [][]queries.ListOrdersQueryResponse{snapshotOf("order")}}

	feed, err := liveview.NewOrderFeed(t.Context(), notifier, lister, feedQuery(t), discardLogger())
	require.NoError(t, err)

	feed.Close()
	feed.Close() // idempotent

	require.Equal(t, 1, notifier.unsubscribed)
}

func TestOrderFeed_ConsecutiveEvents_TrackEachChange(t *testing.T) {
	notifier := &fakeNotifier{}
	lister := &fakeLister{snapshots: [][]queries.ListOrdersQueryResponse{
		snapshotOf("a"),
		snapshotOf("a", "b"),
		snapshotOf("a", "b", "c"),
	}}

	feed, err := liveview.NewOrderFeed(t.Context(), notifier, lister, feedQuery(t), discardLogger())
	require.NoError(t, err)
	defer feed.Close()

	for want := 2; want <= 3; want++ {
		notifier.fire()
		select {
		case snapshot := <-feed.Updates():
			require.Len(t, snapshot, want)
		case <-time.After(2 * time.Second):
			t.Fatalf("no update delivered for snapshot of %d", want)
		}
	}
}
