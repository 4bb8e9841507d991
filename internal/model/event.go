package model

import (
	"time"

	"github.com/google/uuid"
)

// DocumentStatusEvent is published after a committed status transition.
// Delivery is fire-and-forget; consumers (notifications, reporting) must
// tolerate duplicates.
type DocumentStatusEvent struct {
	EventID      uuid.UUID
	CompanyID    uuid.UUID
	DocumentType RefKind
	DocumentID   uuid.UUID
	OrderID      *uuid.UUID
	OldStatus    string
	NewStatus    string
	ActorID      uuid.UUID
	OccurredAt   time.Time
}
