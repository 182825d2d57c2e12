// Package mongodb provides the command monitor for the MongoDB client.
package mongodb

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"

	"github.com/unifiedui/collection-service/internal/pkg/metrics"
)

// NewCommandMonitor returns a monitor that logs every command at debug level
// and records its result and latency. m may be nil.
func NewCommandMonitor(logger zerolog.Logger, m *metrics.Metrics) *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(_ context.Context, evt *event.CommandStartedEvent) {
			logger.Debug().
				Str("command", evt.CommandName).
				Str("database", evt.DatabaseName).
				Int64("request_id", evt.RequestID).
				Str("connection_id", evt.ConnectionID).
				Msg("Command started")
		},
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			duration := time.Duration(evt.DurationNanos)
			logger.Debug().
				Str("command", evt.CommandName).
				Int64("request_id", evt.RequestID).
				Dur("duration", duration).
				Msg("Command succeeded")
			m.ObserveCommand(evt.CommandName, "ok", duration)
		},
		Failed: func(_ context.Context, evt *event.CommandFailedEvent) {
			duration := time.Duration(evt.DurationNanos)
			logger.Debug().
				Str("command", evt.CommandName).
				Int64("request_id", evt.RequestID).
				Dur("duration", duration).
				Str("failure", evt.Failure).
				Msg("Command failed")
			m.ObserveCommand(evt.CommandName, "failed", duration)
		},
	}
}
