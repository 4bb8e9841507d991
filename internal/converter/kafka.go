package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
)

type statusEventRecord struct {
	EventID      string  `json:"event_id"`
	CompanyID    string  `json:"company_id"`
	DocumentType string  `json:"document_type"`
	DocumentID   string  `json:"document_id"`
	OrderID      *string `json:"order_id,omitempty"`
	OldStatus    string  `json:"old_status"`
	NewStatus    string  `json:"new_status"`
	ActorID      string  `json:"actor_id"`
	OccurredAt   string  `json:"occurred_at"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) StatusEventToPayload(e model.DocumentStatusEvent) ([]byte, error) {
	rec := statusEventRecord{
		EventID:      e.EventID.String(),
		CompanyID:    e.CompanyID.String(),
		DocumentType: string(e.DocumentType),
		DocumentID:   e.DocumentID.String(),
		OldStatus:    e.OldStatus,
		NewStatus:    e.NewStatus,
		ActorID:      e.ActorID.String(),
		OccurredAt:   e.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
	if e.OrderID != nil {
		orderID := e.OrderID.String()
		rec.OrderID = &orderID
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal status event: %w", err)
	}
	return payload, nil
}
