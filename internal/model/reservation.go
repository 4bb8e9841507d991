package model

import (
	"time"

	"github.com/google/uuid"
)

type ReservationType string

const (
	ReservationSoft ReservationType = "SOFT"
	ReservationHard ReservationType = "HARD"
)

type ReleaseReason string

const (
	ReleaseConsumed  ReleaseReason = "CONSUMED"
	ReleaseCancelled ReleaseReason = "CANCELLED"
	ReleaseExpired   ReleaseReason = "EXPIRED"
)

// StockReservation is a SOFT or HARD hold against one stock level.
// A released reservation is immutable history and is never deleted.
type StockReservation struct {
	ID            uuid.UUID
	CompanyID     uuid.UUID
	ProductID     uuid.UUID
	Location      Location
	Type          ReservationType
	Quantity      int64
	Reference     Ref
	ExpiresAt     *time.Time // SOFT only
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
	ReleasedAt    *time.Time
	ReleasedBy    *uuid.UUID
	ReleaseReason *ReleaseReason
}

func (r *StockReservation) Released() bool { return r.ReleasedAt != nil }

// SweepResult summarizes one run of the expired-reservation sweeper.
type SweepResult struct {
	ReleasedCount    int
	BatchesProcessed int
	Errors           []string
}
