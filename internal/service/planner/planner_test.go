package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
)

func TestBuildATPView(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	levels := []model.StockLevel{
		{ProductID: productID, Location: model.LocationPrimary, OnHand: 10, HardReserved: 3, SoftReserved: 99},
		{ProductID: productID, Location: model.LocationSecondary, OnHand: 4},
	}

	view := BuildATPView(levels)

	assert.Equal(t, int64(7), view[LevelKey{ProductID: productID, Location: model.LocationPrimary}])
	assert.Equal(t, int64(4), view[LevelKey{ProductID: productID, Location: model.LocationSecondary}])
}

func TestAllocate(t *testing.T) {
	t.Parallel()

	lineID := uuid.New()
	productID := uuid.New()

	view := func(home, other int64) ATPView {
		return ATPView{
			{ProductID: productID, Location: model.LocationPrimary}:   home,
			{ProductID: productID, Location: model.LocationSecondary}: other,
		}
	}

	tests := []struct {
		name string
		line LineRequest
		view ATPView
		want LineAllocation
	}{
		{
			name: "home stock covers the full line",
			line: LineRequest{OrderLineID: lineID, ProductID: productID, Quantity: 5},
			view: view(8, 0),
			want: LineAllocation{OrderLineID: lineID, ProductID: productID, PickQuantity: 5},
		},
		{
			name: "shortfall transfers from the other warehouse",
			line: LineRequest{OrderLineID: lineID, ProductID: productID, Quantity: 5},
			view: view(3, 10),
			want: LineAllocation{OrderLineID: lineID, ProductID: productID, PickQuantity: 3, TransferQuantity: 2},
		},
		{
			name: "residual goes to purchasing",
			line: LineRequest{OrderLineID: lineID, ProductID: productID, Quantity: 10},
			view: view(3, 2),
			want: LineAllocation{OrderLineID: lineID, ProductID: productID, PickQuantity: 3, TransferQuantity: 2, PurchaseQuantity: 5},
		},
		{
			name: "no stock anywhere",
			line: LineRequest{OrderLineID: lineID, ProductID: productID, Quantity: 4},
			view: view(0, 0),
			want: LineAllocation{OrderLineID: lineID, ProductID: productID, PurchaseQuantity: 4},
		},
		{
			name: "manufactured line bypasses stock sourcing",
			line: LineRequest{OrderLineID: lineID, ProductID: productID, Quantity: 2, RequiresManufacture: true},
			view: view(100, 100),
			want: LineAllocation{OrderLineID: lineID, ProductID: productID, ManufactureQuantity: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Allocate(model.LocationPrimary, []LineRequest{tt.line}, tt.view)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestAllocateSequentialLinesDepleteView(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	line1 := uuid.New()
	line2 := uuid.New()

	view := ATPView{
		{ProductID: productID, Location: model.LocationPrimary}:   6,
		{ProductID: productID, Location: model.LocationSecondary}: 3,
	}

	got := Allocate(model.LocationPrimary, []LineRequest{
		{OrderLineID: line1, ProductID: productID, Quantity: 5},
		{OrderLineID: line2, ProductID: productID, Quantity: 5},
	}, view)

	require.Len(t, got, 2)
	assert.Equal(t, LineAllocation{OrderLineID: line1, ProductID: productID, PickQuantity: 5}, got[0])
	// Line two sees only what line one left behind.
	assert.Equal(t, LineAllocation{OrderLineID: line2, ProductID: productID, PickQuantity: 1, TransferQuantity: 3, PurchaseQuantity: 1}, got[1])

	// The caller's view is untouched.
	assert.Equal(t, int64(6), view[LevelKey{ProductID: productID, Location: model.LocationPrimary}])
}
