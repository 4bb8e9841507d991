package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/logger"
	"github.com/gglatilla/nusaf-platform-sub000/internal/service/fulfillment/mocks"
	reservation "github.com/gglatilla/nusaf-platform-sub000/internal/service/reservation"
)

type fakeTxManager struct{}

func (fakeTxManager) ReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type deps struct {
	orderRepo    *mocks.MockOrderRepository
	productRepo  *mocks.MockProductRepository
	stockRepo    *mocks.MockStockRepository
	slipRepo     *mocks.MockPickingSlipRepository
	jobRepo      *mocks.MockJobCardRepository
	bomRepo      *mocks.MockBomRepository
	transferRepo *mocks.MockTransferRepository
	bomService   *mocks.MockBomService
	reservations *mocks.MockReservationService
	notifier     *mocks.MockStatusNotifier
}

func newDeps(t *testing.T) deps {
	return deps{
		orderRepo:    mocks.NewMockOrderRepository(t),
		productRepo:  mocks.NewMockProductRepository(t),
		stockRepo:    mocks.NewMockStockRepository(t),
		slipRepo:     mocks.NewMockPickingSlipRepository(t),
		jobRepo:      mocks.NewMockJobCardRepository(t),
		bomRepo:      mocks.NewMockBomRepository(t),
		transferRepo: mocks.NewMockTransferRepository(t),
		bomService:   mocks.NewMockBomService(t),
		reservations: mocks.NewMockReservationService(t),
		notifier:     mocks.NewMockStatusNotifier(t),
	}
}

func newSvc(d deps) *service {
	return NewFulfillmentService(
		d.orderRepo, d.productRepo, d.stockRepo,
		d.slipRepo, d.jobRepo, d.bomRepo, d.transferRepo,
		d.bomService, d.reservations, d.notifier, fakeTxManager{},
	)
}

func TestServiceGeneratePlan(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	companyID := uuid.New()
	orderID := uuid.New()
	lineID := uuid.New()
	productID := uuid.New()

	order := func(status model.OrderStatus) *model.SalesOrder {
		return &model.SalesOrder{
			ID:        orderID,
			CompanyID: companyID,
			Status:    status,
			Location:  model.LocationPrimary,
		}
	}

	t.Run("only a confirmed order can be planned", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.orderRepo.
			On("OrderByID", mock.Anything, companyID, orderID).
			Return(order(model.OrderDraft), nil).
			Once()

		plan, err := newSvc(d).GeneratePlan(context.Background(), companyID, orderID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidTransition)
		assert.Nil(t, plan)
	})

	t.Run("fully picked order has nothing to plan", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.orderRepo.
			On("OrderByID", mock.Anything, companyID, orderID).
			Return(order(model.OrderConfirmed), nil).
			Once()
		d.orderRepo.
			On("Lines", mock.Anything, orderID).
			Return([]model.SalesOrderLine{
				{ID: lineID, ProductID: productID, QuantityOrdered: 5, QuantityPicked: 5},
			}, nil).
			Once()

		plan, err := newSvc(d).GeneratePlan(context.Background(), companyID, orderID)
		require.NoError(t, err)
		assert.False(t, plan.CanProceed)
		require.Len(t, plan.Warnings, 1)
		assert.Contains(t, plan.Warnings[0], "no outstanding quantity")

		d.stockRepo.AssertNotCalled(t, "Levels", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stocked line splits across pick, transfer and purchase", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.orderRepo.
			On("OrderByID", mock.Anything, companyID, orderID).
			Return(order(model.OrderConfirmed), nil).
			Once()
		d.orderRepo.
			On("Lines", mock.Anything, orderID).
			Return([]model.SalesOrderLine{
				{ID: lineID, ProductID: productID, QuantityOrdered: 10, QuantityPicked: 0},
			}, nil).
			Once()
		d.productRepo.
			On("ProductsByIDs", mock.Anything, companyID, []uuid.UUID{productID}).
			Return(map[uuid.UUID]model.Product{
				productID: {ID: productID, Type: model.ProductStockOnly},
			}, nil).
			Once()
		d.stockRepo.
			On("Levels", mock.Anything, companyID, []uuid.UUID{productID}).
			Return([]model.StockLevel{
				{ProductID: productID, Location: model.LocationPrimary, OnHand: 3},
				{ProductID: productID, Location: model.LocationSecondary, OnHand: 2},
			}, nil).
			Once()

		plan, err := newSvc(d).GeneratePlan(context.Background(), companyID, orderID)
		require.NoError(t, err)
		assert.True(t, plan.CanProceed)

		require.Len(t, plan.PickingSlips, 1)
		assert.Equal(t, model.LocationPrimary, plan.PickingSlips[0].Location)
		require.Len(t, plan.PickingSlips[0].Lines, 1)
		assert.Equal(t, int64(3), plan.PickingSlips[0].Lines[0].Quantity)

		require.Len(t, plan.Transfers, 1)
		assert.Equal(t, model.LocationSecondary, plan.Transfers[0].FromLocation)
		assert.Equal(t, int64(2), plan.Transfers[0].Lines[0].Quantity)

		require.Len(t, plan.PurchaseSuggestions, 1)
		assert.Equal(t, int64(5), plan.PurchaseSuggestions[0].Quantity)
		require.Len(t, plan.Warnings, 1)
		assert.Contains(t, plan.Warnings[0], "short by 5")
	})

	t.Run("manufactured line plans a job card with its component snapshot", func(t *testing.T) {
		t.Parallel()

		componentID := uuid.New()

		d := newDeps(t)
		d.orderRepo.
			On("OrderByID", mock.Anything, companyID, orderID).
			Return(order(model.OrderConfirmed), nil).
			Once()
		d.orderRepo.
			On("Lines", mock.Anything, orderID).
			Return([]model.SalesOrderLine{
				{ID: lineID, ProductID: productID, QuantityOrdered: 2, QuantityPicked: 0},
			}, nil).
			Once()
		d.productRepo.
			On("ProductsByIDs", mock.Anything, companyID, []uuid.UUID{productID}).
			Return(map[uuid.UUID]model.Product{
				productID: {ID: productID, Type: model.ProductAssemblyRequired},
			}, nil).
			Once()
		d.stockRepo.
			On("Levels", mock.Anything, companyID, []uuid.UUID{productID}).
			Return([]model.StockLevel{
				// Manufactured products ignore finished-goods stock.
				{ProductID: productID, Location: model.LocationPrimary, OnHand: 100},
			}, nil).
			Once()
		d.bomService.
			On("CheckStock", mock.Anything, companyID, productID, int64(2), model.LocationPrimary).
			Return(&model.StockCheck{
				Readiness: model.ReadinessPartial,
				Components: []model.ComponentAvailability{
					{BomComponent: model.BomComponent{
						ComponentProductID: componentID,
						RequiredQuantity:   decimal.NewFromInt(4),
					}},
				},
			}, nil).
			Once()

		plan, err := newSvc(d).GeneratePlan(context.Background(), companyID, orderID)
		require.NoError(t, err)
		assert.True(t, plan.CanProceed)
		assert.Empty(t, plan.PickingSlips)
		assert.Empty(t, plan.Transfers)

		require.Len(t, plan.JobCards, 1)
		jc := plan.JobCards[0]
		assert.Equal(t, int64(2), jc.Quantity)
		assert.Equal(t, model.ReadinessPartial, jc.Readiness)
		require.Len(t, jc.Components, 1)
		assert.Equal(t, componentID, jc.Components[0].ComponentProductID)

		require.Len(t, plan.Warnings, 1)
		assert.Contains(t, plan.Warnings[0], "component readiness PARTIAL")
	})
}

func TestServiceExecutePlan(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	companyID := uuid.New()
	orderID := uuid.New()
	lineID := uuid.New()
	productID := uuid.New()
	actorID := uuid.New()

	confirmedOrder := &model.SalesOrder{
		ID:        orderID,
		CompanyID: companyID,
		Status:    model.OrderConfirmed,
		Location:  model.LocationPrimary,
	}

	pickPlan := func() *model.FulfillmentPlan {
		return &model.FulfillmentPlan{
			OrderID:    orderID,
			CompanyID:  companyID,
			CanProceed: true,
			PickingSlips: []model.PlannedPickingSlip{{
				Location: model.LocationPrimary,
				Lines: []model.PlannedPickLine{
					{OrderLineID: lineID, ProductID: productID, Quantity: 3},
				},
			}},
			Transfers: []model.PlannedTransfer{{
				FromLocation: model.LocationSecondary,
				ToLocation:   model.LocationPrimary,
				Lines: []model.PlannedTransferLine{
					{OrderLineID: lineID, ProductID: productID, Quantity: 2},
				},
			}},
		}
	}

	t.Run("a plan with nothing to execute is rejected", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		plan := &model.FulfillmentPlan{OrderID: orderID, CompanyID: companyID, CanProceed: false}
		executed, err := newSvc(d).ExecutePlan(context.Background(), companyID, plan, actorID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
		assert.Nil(t, executed)

		d.orderRepo.AssertNotCalled(t, "OrderByIDForUpdate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("a plan for another company is rejected", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		plan := pickPlan()
		plan.CompanyID = uuid.New()
		_, err := newSvc(d).ExecutePlan(context.Background(), companyID, plan, actorID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("executing against a processing order fails instead of doubling documents", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.orderRepo.
			On("OrderByIDForUpdate", mock.Anything, companyID, orderID).
			Return(&model.SalesOrder{ID: orderID, Status: model.OrderProcessing}, nil).
			Once()

		_, err := newSvc(d).ExecutePlan(context.Background(), companyID, pickPlan(), actorID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidTransition)

		d.reservations.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		d.slipRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("execution creates documents and swaps soft holds for hard ones", func(t *testing.T) {
		t.Parallel()

		slipID := uuid.New()
		transferID := uuid.New()

		d := newDeps(t)
		d.orderRepo.
			On("OrderByIDForUpdate", mock.Anything, companyID, orderID).
			Return(confirmedOrder, nil).
			Once()
		d.reservations.
			On("Release", mock.Anything, companyID, model.SalesOrderRef(orderID), model.ReleaseConsumed, actorID).
			Return(1, nil).
			Once()
		d.slipRepo.
			On("Create", mock.Anything, mock.MatchedBy(func(s *model.PickingSlip) bool {
				return s.OrderID == orderID && s.Status == model.PickingSlipPending
			})).
			Return(slipID, nil).
			Once()
		d.slipRepo.
			On("CreateLines", mock.Anything, mock.MatchedBy(func(lines []model.PickingSlipLine) bool {
				return len(lines) == 1 &&
					lines[0].PickingSlipID == slipID &&
					lines[0].QuantityRequired == 3
			})).
			Return(nil).
			Once()
		d.reservations.
			On("ReserveHard", mock.Anything, companyID, mock.MatchedBy(func(p reservation.ReserveParams) bool {
				return p.ProductID == productID &&
					p.Quantity == 3 &&
					p.Reference == model.SalesOrderRef(orderID) &&
					p.ExpiresAt == nil
			})).
			Return(&reservation.ReserveResult{ReservationID: uuid.New()}, nil).
			Once()
		d.transferRepo.
			On("Create", mock.Anything, mock.MatchedBy(func(tr *model.TransferRequest) bool {
				return tr.OrderID != nil && *tr.OrderID == orderID &&
					tr.FromLocation == model.LocationSecondary &&
					tr.Status == model.TransferPending
			})).
			Return(transferID, nil).
			Once()
		d.transferRepo.
			On("CreateLines", mock.Anything, mock.MatchedBy(func(lines []model.TransferLine) bool {
				return len(lines) == 1 &&
					lines[0].TransferID == transferID &&
					lines[0].QuantityRequested == 2
			})).
			Return(nil).
			Once()
		d.orderRepo.
			On("SetStatus", mock.Anything, companyID, orderID, model.OrderConfirmed, model.OrderProcessing).
			Return(nil).
			Once()
		d.notifier.
			On("NotifyStatusChange", mock.Anything, mock.MatchedBy(func(e model.DocumentStatusEvent) bool {
				return e.DocumentType == model.RefSalesOrder &&
					e.NewStatus == string(model.OrderProcessing)
			})).
			Once()

		executed, err := newSvc(d).ExecutePlan(context.Background(), companyID, pickPlan(), actorID)
		require.NoError(t, err)
		require.Len(t, executed.PickingSlips, 1)
		assert.Equal(t, slipID, executed.PickingSlips[0].ID)
		require.Len(t, executed.TransferRequests, 1)
		assert.Equal(t, transferID, executed.TransferRequests[0].ID)
		assert.Empty(t, executed.JobCards)
	})

	t.Run("job card execution snapshots the bom and caps component holds", func(t *testing.T) {
		t.Parallel()

		jobCardID := uuid.New()
		componentID := uuid.New()

		plan := &model.FulfillmentPlan{
			OrderID:    orderID,
			CompanyID:  companyID,
			CanProceed: true,
			JobCards: []model.PlannedJobCard{{
				OrderLineID: lineID,
				ProductID:   productID,
				Quantity:    2,
				Components: []model.BomComponent{{
					ComponentProductID: componentID,
					RequiredQuantity:   decimal.NewFromInt(6),
				}},
				Readiness: model.ReadinessPartial,
			}},
		}

		d := newDeps(t)
		d.orderRepo.
			On("OrderByIDForUpdate", mock.Anything, companyID, orderID).
			Return(confirmedOrder, nil).
			Once()
		d.reservations.
			On("Release", mock.Anything, companyID, model.SalesOrderRef(orderID), model.ReleaseConsumed, actorID).
			Return(0, nil).
			Once()
		d.jobRepo.
			On("Create", mock.Anything, mock.MatchedBy(func(jc *model.JobCard) bool {
				return jc.OrderID == orderID && jc.Quantity == 2 && jc.Status == model.JobCardPending
			})).
			Return(jobCardID, nil).
			Once()
		d.bomRepo.
			On("InsertJobCardLines", mock.Anything, mock.MatchedBy(func(lines []model.JobCardBomLine) bool {
				return len(lines) == 1 &&
					lines[0].JobCardID == jobCardID &&
					lines[0].TotalRequired.Equal(decimal.NewFromInt(6)) &&
					lines[0].QuantityPerUnit.Equal(decimal.NewFromInt(3))
			})).
			Return(nil).
			Once()
		// Only 4 of the 6 needed are available; the hold is capped and
		// the shortfall lands on the card as a warning.
		d.stockRepo.
			On("Level", mock.Anything, companyID, componentID, model.LocationPrimary).
			Return(&model.StockLevel{OnHand: 4}, nil).
			Once()
		d.reservations.
			On("ReserveHard", mock.Anything, companyID, mock.MatchedBy(func(p reservation.ReserveParams) bool {
				return p.ProductID == componentID &&
					p.Quantity == 4 &&
					p.Reference == model.JobCardRef(jobCardID)
			})).
			Return(&reservation.ReserveResult{ReservationID: uuid.New()}, nil).
			Once()
		d.jobRepo.
			On("AppendWarnings", mock.Anything, companyID, jobCardID, mock.MatchedBy(func(w []string) bool {
				return len(w) == 1
			})).
			Return(nil).
			Once()
		d.orderRepo.
			On("SetStatus", mock.Anything, companyID, orderID, model.OrderConfirmed, model.OrderProcessing).
			Return(nil).
			Once()
		d.notifier.
			On("NotifyStatusChange", mock.Anything, mock.Anything).
			Once()

		executed, err := newSvc(d).ExecutePlan(context.Background(), companyID, plan, actorID)
		require.NoError(t, err)
		require.Len(t, executed.JobCards, 1)
		assert.Equal(t, jobCardID, executed.JobCards[0].ID)
		require.Len(t, executed.Warnings, 1)
		assert.Contains(t, executed.Warnings[0], "reserved 4 of 6 required")
	})
}
