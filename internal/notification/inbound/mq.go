package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shandysiswandi/renttrack/internal/pkg/config"
	"github.com/shandysiswandi/renttrack/internal/pkg/goroutine"
	"github.com/shandysiswandi/renttrack/internal/pkg/instrument"
	"github.com/shandysiswandi/renttrack/internal/pkg/messaging"
	"github.com/shandysiswandi/renttrack/internal/pkg/uid"
	"github.com/shandysiswandi/renttrack/internal/shared/event"
)

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Messaging,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enableConsumerNames := cfg.GetArray("modules.notification.consumer_names")

	var consumers = []struct {
		name    string
		topic   string // destination where publisher sent message
		handler messaging.Handler
	}{
		{
			name:    event.SystemNotificationConsumerNotification,
			topic:   event.SystemNotificationDestination,
			handler: mqHandler.SystemNotification,
		},
	}

	for _, consumer := range consumers {
		if len(enableConsumerNames) > 0 && slices.Contains(enableConsumerNames, consumer.name) {
			routine.Go(ctx, func(pCtx context.Context) error {
				slog.InfoContext(ctx, "Running job for handling consumer", "consumer", consumer.name)
				return messenger.Consume(pCtx,
					consumer.topic,
					consumer.handler,
					messaging.WithQueueGroup(consumer.name),
					messaging.WithAutoAck(true),
					messaging.WithConcurrency(10),
					messaging.WithMaxInFlight(10),
				)
			})
		}
	}
}
