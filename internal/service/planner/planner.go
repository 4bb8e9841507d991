package service

import (
	"github.com/google/uuid"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
)

// LevelKey addresses one available-to-promise bucket.
type LevelKey struct {
	ProductID uuid.UUID
	Location  model.Location
}

// ATPView is a point-in-time snapshot of available-to-promise quantities.
// Allocate works on its own copy, so one view can be reused across calls.
type ATPView map[LevelKey]int64

func BuildATPView(levels []model.StockLevel) ATPView {
	view := make(ATPView, len(levels))
	for _, lvl := range levels {
		view[LevelKey{ProductID: lvl.ProductID, Location: lvl.Location}] = lvl.AvailableToPromise()
	}
	return view
}

// LineRequest is one order line's outstanding demand.
type LineRequest struct {
	OrderLineID         uuid.UUID
	ProductID           uuid.UUID
	Quantity            int64
	RequiresManufacture bool
}

// LineAllocation is the sourcing decision for one line: pick at the home
// warehouse, transfer the shortfall in from the other warehouse, send the
// residual to purchasing. Manufactured lines bypass stock sourcing
// entirely and become a build at the primary warehouse.
type LineAllocation struct {
	OrderLineID         uuid.UUID
	ProductID           uuid.UUID
	PickQuantity        int64
	TransferQuantity    int64
	ManufactureQuantity int64
	PurchaseQuantity    int64
}

// Allocate sources each line against the view in order. Earlier lines
// consume availability that later lines no longer see, so two lines for
// the same product never promise the same units.
func Allocate(home model.Location, lines []LineRequest, view ATPView) []LineAllocation {
	remaining := make(ATPView, len(view))
	for k, v := range view {
		remaining[k] = v
	}

	out := make([]LineAllocation, 0, len(lines))
	for _, line := range lines {
		alloc := LineAllocation{
			OrderLineID: line.OrderLineID,
			ProductID:   line.ProductID,
		}

		if line.RequiresManufacture {
			alloc.ManufactureQuantity = line.Quantity
			out = append(out, alloc)
			continue
		}

		needed := line.Quantity

		homeKey := LevelKey{ProductID: line.ProductID, Location: home}
		alloc.PickQuantity = take(remaining, homeKey, needed)
		needed -= alloc.PickQuantity

		if needed > 0 {
			otherKey := LevelKey{ProductID: line.ProductID, Location: home.Other()}
			alloc.TransferQuantity = take(remaining, otherKey, needed)
			needed -= alloc.TransferQuantity
		}

		alloc.PurchaseQuantity = needed
		out = append(out, alloc)
	}
	return out
}

func take(view ATPView, key LevelKey, wanted int64) int64 {
	available := view[key]
	if available <= 0 {
		return 0
	}
	taken := wanted
	if available < wanted {
		taken = available
	}
	view[key] = available - taken
	return taken
}
