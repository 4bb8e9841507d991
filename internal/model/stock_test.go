package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStockLevelAvailableToPromise(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level StockLevel
		want  int64
	}{
		{
			name:  "soft reservations do not gate",
			level: StockLevel{OnHand: 10, SoftReserved: 8, HardReserved: 0},
			want:  10,
		},
		{
			name:  "hard reservations subtract",
			level: StockLevel{OnHand: 10, SoftReserved: 0, HardReserved: 4},
			want:  6,
		},
		{
			name:  "fully committed",
			level: StockLevel{OnHand: 5, HardReserved: 5},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.level.AvailableToPromise())
		})
	}
}

func TestMovementTypeInbound(t *testing.T) {
	t.Parallel()

	inbound := []MovementType{MovementReceipt, MovementTransferIn, MovementManufactureIn, MovementAdjustmentIn}
	outbound := []MovementType{MovementIssue, MovementTransferOut, MovementManufactureOut, MovementAdjustmentOut, MovementScrap}

	for _, mt := range inbound {
		assert.True(t, mt.Inbound(), string(mt))
	}
	for _, mt := range outbound {
		assert.False(t, mt.Inbound(), string(mt))
	}
}

func TestRefValid(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	assert.True(t, SalesOrderRef(id).Valid())
	assert.True(t, PickingSlipRef(id).Valid())
	assert.True(t, JobCardRef(id).Valid())
	assert.True(t, TransferRequestRef(id).Valid())
	assert.True(t, StockAdjustmentRef(id).Valid())
	assert.True(t, QuoteRef(id).Valid())

	assert.False(t, SalesOrderRef(uuid.Nil).Valid())
	assert.False(t, Ref{Kind: RefKind("INVOICE"), ID: id}.Valid())
	assert.False(t, Ref{}.Valid())
}

func TestJobCardBomLineConsumedQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total string
		want  int64
	}{
		{name: "whole stays whole", total: "10", want: 10},
		{name: "fraction rounds up", total: "2.5", want: 3},
		{name: "tiny fraction rounds up", total: "7.01", want: 8},
		{name: "four units at 2.5 each", total: "10.0", want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			line := JobCardBomLine{TotalRequired: decimal.RequireFromString(tt.total)}
			assert.Equal(t, tt.want, line.ConsumedQuantity())
		})
	}
}

func TestLocationOther(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LocationSecondary, LocationPrimary.Other())
	assert.Equal(t, LocationPrimary, LocationSecondary.Other())
	assert.True(t, LocationPrimary.Valid())
	assert.False(t, Location("TERTIARY").Valid())
}
