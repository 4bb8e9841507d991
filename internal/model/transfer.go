package model

import (
	"time"

	"github.com/google/uuid"
)

type TransferStatus string

const (
	TransferPending   TransferStatus = "PENDING"
	TransferInTransit TransferStatus = "IN_TRANSIT"
	TransferReceived  TransferStatus = "RECEIVED"
	TransferCancelled TransferStatus = "CANCELLED"
)

// An IN_TRANSIT transfer cannot be cancelled: the goods are already moving.
var transferTransitions = map[TransferStatus][]TransferStatus{
	TransferPending:   {TransferInTransit, TransferCancelled},
	TransferInTransit: {TransferReceived},
	TransferReceived:  {},
	TransferCancelled: {},
}

func (s TransferStatus) CanTransitionTo(next TransferStatus) bool {
	for _, allowed := range transferTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s TransferStatus) Terminal() bool {
	return s == TransferReceived || s == TransferCancelled
}

// TransferRequest moves stock between the two warehouses. OrderID is nil
// for standalone rebalancing transfers.
type TransferRequest struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	OrderID      *uuid.UUID
	FromLocation Location
	ToLocation   Location
	Status       TransferStatus
	CreatedAt    time.Time
	ShippedAt    *time.Time
	ReceivedAt   *time.Time
}

type TransferLine struct {
	ID                uuid.UUID
	TransferID        uuid.UUID
	ProductID         uuid.UUID
	QuantityRequested int64
	// Recorded at the destination; may be below the shipped quantity.
	QuantityReceived *int64
}
