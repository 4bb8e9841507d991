package model

import (
	"time"

	"github.com/google/uuid"
)

// FulfillmentPlan is the read-only preview of the documents that would be
// created to fulfill an order. It is immutable once generated and is
// passed whole into execution; execution never re-derives allocations.
type FulfillmentPlan struct {
	OrderID     uuid.UUID
	CompanyID   uuid.UUID
	GeneratedAt time.Time

	PickingSlips        []PlannedPickingSlip
	JobCards            []PlannedJobCard
	Transfers           []PlannedTransfer
	PurchaseSuggestions []PurchaseSuggestion

	Warnings   []string
	CanProceed bool
}

type PlannedPickingSlip struct {
	Location Location
	Lines    []PlannedPickLine
}

type PlannedPickLine struct {
	OrderLineID uuid.UUID
	ProductID   uuid.UUID
	Quantity    int64
}

type PlannedJobCard struct {
	OrderLineID uuid.UUID
	ProductID   uuid.UUID
	Quantity    int64
	Components  []BomComponent
	Readiness   Readiness
}

type PlannedTransfer struct {
	FromLocation Location
	ToLocation   Location
	Lines        []PlannedTransferLine
}

type PlannedTransferLine struct {
	OrderLineID uuid.UUID
	ProductID   uuid.UUID
	Quantity    int64
}

// PurchaseSuggestion is the residual shortfall neither warehouse can cover.
type PurchaseSuggestion struct {
	OrderLineID uuid.UUID
	ProductID   uuid.UUID
	Location    Location
	Quantity    int64
}

// ExecutedPlan lists the documents created by one plan execution.
type ExecutedPlan struct {
	PickingSlips     []PickingSlip
	JobCards         []JobCard
	TransferRequests []TransferRequest
	Warnings         []string
}
