package model

import (
	"time"

	"github.com/google/uuid"
)

type StockLevel struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	ProductID    uuid.UUID
	Location     Location
	OnHand       int64
	SoftReserved int64
	HardReserved int64
	UpdatedAt    time.Time
}

// AvailableToPromise is the quantity a new hard reservation may commit.
// Soft reservations do not gate it.
func (l *StockLevel) AvailableToPromise() int64 {
	return l.OnHand - l.HardReserved
}

type MovementType string

const (
	MovementReceipt        MovementType = "RECEIPT"
	MovementIssue          MovementType = "ISSUE"
	MovementTransferOut    MovementType = "TRANSFER_OUT"
	MovementTransferIn     MovementType = "TRANSFER_IN"
	MovementManufactureIn  MovementType = "MANUFACTURE_IN"
	MovementManufactureOut MovementType = "MANUFACTURE_OUT"
	MovementAdjustmentIn   MovementType = "ADJUSTMENT_IN"
	MovementAdjustmentOut  MovementType = "ADJUSTMENT_OUT"
	MovementScrap          MovementType = "SCRAP"
)

// Inbound reports whether the movement type increases on-hand stock.
func (t MovementType) Inbound() bool {
	switch t {
	case MovementReceipt, MovementTransferIn, MovementManufactureIn, MovementAdjustmentIn:
		return true
	default:
		return false
	}
}

// StockMovement is one row of the append-only movement ledger.
// BalanceAfter captures the on-hand balance resulting from this movement,
// written in the same transaction as the level update.
type StockMovement struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	ProductID    uuid.UUID
	Location     Location
	Type         MovementType
	Quantity     int64
	BalanceAfter int64
	Reference    Ref
	ActorID      uuid.UUID
	CreatedAt    time.Time
}

type AdjustmentStatus string

const (
	AdjustmentPending  AdjustmentStatus = "PENDING"
	AdjustmentApproved AdjustmentStatus = "APPROVED"
	AdjustmentRejected AdjustmentStatus = "REJECTED"
)

// StockAdjustment is a manual correction that needs a second approver
// before it touches the ledger.
type StockAdjustment struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	ProductID uuid.UUID
	Location  Location
	Delta     int64
	Reason    string
	Status    AdjustmentStatus
	CreatedBy uuid.UUID
	DecidedBy *uuid.UUID
	CreatedAt time.Time
	DecidedAt *time.Time
}
