package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ordertrack/internal/core/application/liveview"
	"ordertrack/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// heartbeatInterval keeps intermediaries from closing idle streams.
const heartbeatInterval = 15 * time.Second

// StreamOrders handles GET /api/v1/orders/stream - pushes the caller's
// order list as server-sent events. The first event carries the current
// list; any change to the orders table re-sends the whole list. Events
// never carry deltas, so a missed event costs nothing.
func (s *Server) StreamOrders(ctx echo.Context) error {
	query, err := queries.NewListOrdersQuery(actorFrom(ctx))
	if err != nil {
		return s.respondError(ctx, err)
	}

	reqCtx := ctx.Request().Context()

	feed, err := liveview.NewOrderFeed(reqCtx, s.notifier, s.listOrdersHandler, query, s.logger)
	if err != nil {
		return s.respondError(ctx, err)
	}
	defer feed.Close()

	w := ctx.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)

	// write failures mean the client went away; nothing to report
	if err = writeSnapshotEvent(w, feed.Snapshot()); err != nil {
		return nil
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-reqCtx.Done():
			return nil
		case snapshot := <-feed.Updates():
			if err = writeSnapshotEvent(w, snapshot); err != nil {
				return nil
			}
		case <-heartbeat.C:
			if _, err = fmt.Fprint(w, ": ping\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

func writeSnapshotEvent(w *echo.Response, snapshot []queries.ListOrdersQueryResponse) error {
	payload, err := json.Marshal(toOrderDTOs(snapshot))
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(w, "event: orders\ndata: %s\n\n", payload); err != nil {
		return err
	}
	w.Flush()

	return nil
}
