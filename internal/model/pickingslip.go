package model

import (
	"time"

	"github.com/google/uuid"
)

type PickingSlipStatus string

const (
	PickingSlipPending    PickingSlipStatus = "PENDING"
	PickingSlipInProgress PickingSlipStatus = "IN_PROGRESS"
	PickingSlipComplete   PickingSlipStatus = "COMPLETE"
	PickingSlipCancelled  PickingSlipStatus = "CANCELLED"
)

var pickingSlipTransitions = map[PickingSlipStatus][]PickingSlipStatus{
	PickingSlipPending:    {PickingSlipInProgress, PickingSlipCancelled},
	PickingSlipInProgress: {PickingSlipComplete, PickingSlipCancelled},
	PickingSlipComplete:   {},
	PickingSlipCancelled:  {},
}

func (s PickingSlipStatus) CanTransitionTo(next PickingSlipStatus) bool {
	for _, allowed := range pickingSlipTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s PickingSlipStatus) Terminal() bool {
	return s == PickingSlipComplete || s == PickingSlipCancelled
}

type PickingSlip struct {
	ID         uuid.UUID
	CompanyID  uuid.UUID
	OrderID    uuid.UUID
	Location   Location
	Status     PickingSlipStatus
	AssignedTo *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type PickingSlipLine struct {
	ID               uuid.UUID
	PickingSlipID    uuid.UUID
	OrderLineID      uuid.UUID
	ProductID        uuid.UUID
	QuantityRequired int64
	QuantityPicked   int64
}

func (l *PickingSlipLine) FullyPicked() bool {
	return l.QuantityPicked >= l.QuantityRequired
}
