package ports

import "context"

// ChangeEvent is a coarse notification that rows in a watched table
// changed. It carries no row data: subscribers are expected to re-read
// whatever they were showing. Op is the storage-level operation name
// (INSERT, UPDATE, DELETE) and is informational only.
type ChangeEvent struct {
	Table string
	Op    string
}

// Subscription is a live registration with the change notifier.
// Unsubscribe releases it; it is safe to call more than once. No
// subscription may outlive the view that opened it.
type Subscription interface {
	Unsubscribe()
}

// ChangeNotifier is the contract of the change-notification channel: a
// publish/subscribe mechanism that fires the callback on every mutation
// of the watched table, regardless of which row changed.
//
// A failed Subscribe is a degraded mode for the caller, not a fatal
// error: views keep working from their initial fetch, just without live
// updates.
type ChangeNotifier interface {
	Subscribe(ctx context.Context, table string, fn func(ChangeEvent)) (Subscription, error)
}
