package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/verve-admin/internal/events"
	"github.com/spec-kit/verve-admin/internal/persistence"
)

// StartInvalidationBroadcaster subscribes to every domain event and relays a
// per-resource invalidation notice over Redis pub/sub so other dashboard
// instances know to refetch. Publish failures are logged, never propagated.
func StartInvalidationBroadcaster(dispatcher events.Dispatcher, redis *persistence.Redis, logger *zap.Logger, channel string) {
	if dispatcher == nil {
		return
	}

	handler := func(ctx context.Context, event events.Event) error {
		logger.Info("domain event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.String("resource", event.Resource))

		if redis == nil {
			return nil
		}
		if err := redis.Publish(ctx, channel, event.Resource); err != nil {
			logger.Warn("failed to publish invalidation notice",
				zap.String("resource", event.Resource),
				zap.Error(err))
		}
		return nil
	}

	for _, eventType := range events.AllTypes() {
		dispatcher.Subscribe(eventType, handler)
	}
}
