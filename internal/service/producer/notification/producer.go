package ntfproducer

import (
	"context"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/kafka"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/logger"
)

type Converter interface {
	StatusEventToPayload(e model.DocumentStatusEvent) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewStatusNotifier(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// NotifyStatusChange publishes a document status event. Delivery is
// fire-and-forget: the transition already committed, so a broker failure
// is logged and swallowed rather than rolled back.
func (s *service) NotifyStatusChange(ctx context.Context, event model.DocumentStatusEvent) {
	payload, err := s.conv.StatusEventToPayload(event)
	if err != nil {
		logger.Error(ctx, "convert status event", logger.ErrorF(err))
		return
	}

	if err := s.producer.Send(ctx, event.DocumentID[:], payload); err != nil {
		logger.Error(ctx, "publish status event",
			logger.String("document_id", event.DocumentID.String()),
			logger.ErrorF(err),
		)
	}
}
