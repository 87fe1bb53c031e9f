package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/renttrack/internal/notification/usecase"
	"github.com/shandysiswandi/renttrack/internal/pkg/goerror"
	"github.com/shandysiswandi/renttrack/internal/pkg/instrument"
	"github.com/shandysiswandi/renttrack/internal/pkg/messaging"
	"github.com/shandysiswandi/renttrack/internal/pkg/uid"
	"github.com/shandysiswandi/renttrack/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key == keyOfCorrelationID {
			return instrument.SetCorrelationID(ctx, string(headers[i].Value))
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) SystemNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "SystemNotification")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: system notification", "msg_body", string(body))

	var payload event.SystemNotificationMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of system notification", "msg_body", string(body), "error", err)
		return nil
	}

	if _, err := h.uc.SendSystemNotification(ctx, usecase.SendSystemNotificationInput{
		Message: payload.Message,
		Details: payload.Details,
	}); err != nil {
		// Business rejections (disabled rule, missing transport) are final;
		// redelivering the message would not change the outcome.
		var ge *goerror.Error
		if errors.As(err, &ge) && ge.Type() != goerror.TypeServer {
			slog.WarnContext(ctx, "system notification not delivered", "msg_body", string(body), "reason", ge.Msg())
			return nil
		}

		slog.ErrorContext(ctx, "failed to consume system notification", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}
