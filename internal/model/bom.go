package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BomItem is one line of a product's live bill of materials.
// QuantityPerUnit may be fractional; physical consumption rounds up.
type BomItem struct {
	ID                 uuid.UUID
	CompanyID          uuid.UUID
	ParentProductID    uuid.UUID
	ComponentProductID uuid.UUID
	QuantityPerUnit    decimal.Decimal
	IsOptional         bool
}

// JobCardBomLine is a snapshot of a BomItem taken at job-card creation,
// so later BOM edits do not change an in-flight job.
type JobCardBomLine struct {
	ID                 uuid.UUID
	JobCardID          uuid.UUID
	ComponentProductID uuid.UUID
	QuantityPerUnit    decimal.Decimal
	TotalRequired      decimal.Decimal
	IsOptional         bool
}

// ConsumedQuantity is the integral quantity physically issued when the
// job completes.
func (l *JobCardBomLine) ConsumedQuantity() int64 {
	return l.TotalRequired.Ceil().IntPart()
}

// BomComponent is one entry of an exploded bill of materials.
type BomComponent struct {
	ComponentProductID uuid.UUID
	RequiredQuantity   decimal.Decimal
	IsOptional         bool
}

type Readiness string

const (
	ReadinessReady    Readiness = "READY"
	ReadinessPartial  Readiness = "PARTIAL"
	ReadinessShortage Readiness = "SHORTAGE"
)

// ComponentAvailability joins an exploded component against the
// available-to-promise at one location.
type ComponentAvailability struct {
	BomComponent
	Available int64
	Shortfall int64
}

type StockCheck struct {
	Components []ComponentAvailability
	CanFulfill bool
	Readiness  Readiness
}
