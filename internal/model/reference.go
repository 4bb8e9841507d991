package model

import (
	"github.com/google/uuid"
)

// RefKind discriminates the document a reservation or movement points back to.
type RefKind string

const (
	RefQuote           RefKind = "QUOTE"
	RefSalesOrder      RefKind = "SALES_ORDER"
	RefPickingSlip     RefKind = "PICKING_SLIP"
	RefJobCard         RefKind = "JOB_CARD"
	RefTransferRequest RefKind = "TRANSFER_REQUEST"
	RefStockAdjustment RefKind = "STOCK_ADJUSTMENT"
)

// Ref is a typed back-reference to an owning document.
type Ref struct {
	Kind RefKind
	ID   uuid.UUID
}

func (r Ref) Valid() bool {
	if r.ID == uuid.Nil {
		return false
	}
	switch r.Kind {
	case RefQuote, RefSalesOrder, RefPickingSlip, RefJobCard, RefTransferRequest, RefStockAdjustment:
		return true
	default:
		return false
	}
}

func QuoteRef(id uuid.UUID) Ref           { return Ref{Kind: RefQuote, ID: id} }
func SalesOrderRef(id uuid.UUID) Ref      { return Ref{Kind: RefSalesOrder, ID: id} }
func PickingSlipRef(id uuid.UUID) Ref     { return Ref{Kind: RefPickingSlip, ID: id} }
func JobCardRef(id uuid.UUID) Ref         { return Ref{Kind: RefJobCard, ID: id} }
func TransferRequestRef(id uuid.UUID) Ref { return Ref{Kind: RefTransferRequest, ID: id} }
func StockAdjustmentRef(id uuid.UUID) Ref { return Ref{Kind: RefStockAdjustment, ID: id} }
