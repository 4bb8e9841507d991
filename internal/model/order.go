package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderDraft            OrderStatus = "DRAFT"
	OrderConfirmed        OrderStatus = "CONFIRMED"
	OrderProcessing       OrderStatus = "PROCESSING"
	OrderReadyToShip      OrderStatus = "READY_TO_SHIP"
	OrderShipped          OrderStatus = "SHIPPED"
	OrderPartiallyShipped OrderStatus = "PARTIALLY_SHIPPED"
	OrderDelivered        OrderStatus = "DELIVERED"
	OrderInvoiced         OrderStatus = "INVOICED"
	OrderClosed           OrderStatus = "CLOSED"
	OrderOnHold           OrderStatus = "ON_HOLD"
	OrderCancelled        OrderStatus = "CANCELLED"
)

// orderTransitions is the explicit transition table. Cancellation is
// reachable from every non-terminal state until goods have shipped.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderDraft:            {OrderConfirmed, OrderCancelled},
	OrderConfirmed:        {OrderProcessing, OrderOnHold, OrderCancelled},
	OrderProcessing:       {OrderReadyToShip, OrderOnHold, OrderCancelled},
	OrderReadyToShip:      {OrderShipped, OrderPartiallyShipped, OrderOnHold, OrderCancelled},
	OrderShipped:          {OrderDelivered},
	OrderPartiallyShipped: {OrderShipped, OrderDelivered},
	OrderDelivered:        {OrderInvoiced},
	OrderInvoiced:         {OrderClosed},
	OrderOnHold:           {OrderConfirmed, OrderProcessing, OrderCancelled},
	OrderClosed:           {},
	OrderCancelled:        {},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderClosed || s == OrderCancelled
}

func (s OrderStatus) Known() bool {
	_, ok := orderTransitions[s]
	return ok
}

// SalesOrder is the root of a fulfillment tree. Picking slips, job cards
// and order-linked transfers are created by the orchestrator only.
type SalesOrder struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	OrderNumber string
	CustomerID  uuid.UUID
	// Warehouse the customer is served from by default.
	Location  Location
	Status    OrderStatus
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SalesOrderLine struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	ProductID       uuid.UUID
	QuantityOrdered int64
	QuantityPicked  int64
	QuantityShipped int64
	UnitPrice       decimal.Decimal
}
