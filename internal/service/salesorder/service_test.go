package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/logger"
	reservation "github.com/gglatilla/nusaf-platform-sub000/internal/service/reservation"
	"github.com/gglatilla/nusaf-platform-sub000/internal/service/salesorder/mocks"
)

type fakeTxManager struct{}

func (fakeTxManager) ReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type deps struct {
	repo         *mocks.MockOrderRepository
	slipRepo     *mocks.MockPickingSlipRepository
	jobRepo      *mocks.MockJobCardRepository
	transferRepo *mocks.MockTransferRepository
	reservations *mocks.MockReservationService
	notifier     *mocks.MockStatusNotifier
}

func newDeps(t *testing.T) deps {
	return deps{
		repo:         mocks.NewMockOrderRepository(t),
		slipRepo:     mocks.NewMockPickingSlipRepository(t),
		jobRepo:      mocks.NewMockJobCardRepository(t),
		transferRepo: mocks.NewMockTransferRepository(t),
		reservations: mocks.NewMockReservationService(t),
		notifier:     mocks.NewMockStatusNotifier(t),
	}
}

func newSvc(d deps) *service {
	return NewSalesOrderService(
		d.repo, d.slipRepo, d.jobRepo, d.transferRepo,
		d.reservations, d.notifier, fakeTxManager{},
	)
}

func expectNotify(d deps, from, to model.OrderStatus) {
	d.notifier.
		On("NotifyStatusChange", mock.Anything, mock.MatchedBy(func(e model.DocumentStatusEvent) bool {
			return e.DocumentType == model.RefSalesOrder &&
				e.OldStatus == string(from) &&
				e.NewStatus == string(to)
		})).
		Once()
}

func TestServiceConfirm(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	companyID := uuid.New()
	orderID := uuid.New()
	actorID := uuid.New()
	productA := uuid.New()
	productB := uuid.New()

	order := func(status model.OrderStatus) *model.SalesOrder {
		return &model.SalesOrder{
			ID:        orderID,
			CompanyID: companyID,
			Status:    status,
			Location:  model.LocationPrimary,
		}
	}

	t.Run("only a draft order confirms", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("OrderByIDForUpdate", mock.Anything, companyID, orderID).
			Return(order(model.OrderShipped), nil).
			Once()

		warnings, err := newSvc(d).Confirm(context.Background(), companyID, orderID, actorID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidTransition)
		assert.Nil(t, warnings)

		d.reservations.AssertNotCalled(t, "ReserveSoft", mock.Anything, mock.Anything, mock.Anything)
		d.notifier.AssertNotCalled(t, "NotifyStatusChange", mock.Anything, mock.Anything)
	})

	t.Run("an order without lines cannot confirm", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("OrderByIDForUpdate", mock.Anything, companyID, orderID).
			Return(order(model.OrderDraft), nil).
			Once()
		d.repo.
			On("Lines", mock.Anything, orderID).
			Return([]model.SalesOrderLine{}, nil).
			Once()

		_, err := newSvc(d).Confirm(context.Background(), companyID, orderID, actorID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("confirm holds every line and collects over-commit warnings", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("OrderByIDForUpdate", mock.Anything, companyID, orderID).
			Return(order(model.OrderDraft), nil).
			Once()
		d.repo.
			On("Lines", mock.Anything, orderID).
			Return([]model.SalesOrderLine{
				{ID: uuid.New(), ProductID: productA, QuantityOrdered: 5},
				{ID: uuid.New(), ProductID: productB, QuantityOrdered: 20},
			}, nil).
			Once()
		d.reservations.
			On("ReserveSoft", mock.Anything, companyID, mock.MatchedBy(func(p reservation.ReserveParams) bool {
				return p.ProductID == productA && p.Quantity == 5 &&
					p.Location == model.LocationPrimary &&
					p.Reference == model.SalesOrderRef(orderID) &&
					p.ExpiresAt != nil
			})).
			Return(&reservation.ReserveResult{ReservationID: uuid.New()}, nil).
			Once()
		d.reservations.
			On("ReserveSoft", mock.Anything, companyID, mock.MatchedBy(func(p reservation.ReserveParams) bool {
				return p.ProductID == productB && p.Quantity == 20
			})).
			Return(&reservation.ReserveResult{
				ReservationID: uuid.New(),
				Warning:       "soft reservation over-commits stock: on hand 8, reserved 0, requested 20",
			}, nil).
			Once()
		d.repo.
			On("SetStatus", mock.Anything, companyID, orderID, model.OrderDraft, model.OrderConfirmed).
			Return(nil).
			Once()
		expectNotify(d, model.OrderDraft, model.OrderConfirmed)

		warnings, err := newSvc(d).Confirm(context.Background(), companyID, orderID, actorID)
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "over-commits")
	})
}

func TestServiceShip(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	companyID := uuid.New()
	orderID := uuid.New()
	actorID := uuid.New()

	t.Run("nothing picked means nothing to ship", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("OrderByIDForUpdate", mock.Anything, companyID, orderID).
			Return(&model.SalesOrder{ID: orderID, Status: model.OrderReadyToShip}, nil).
			Once()
		d.repo.
			On("Lines", mock.Anything, orderID).
			Return([]model.SalesOrderLine{
				{ID: uuid.New(), QuantityOrdered: 5, QuantityPicked: 0},
			}, nil).
			Once()

		err := newSvc(d).Ship(context.Background(), companyID, orderID, actorID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("partially picked order ships partially", func(t *testing.T) {
		t.Parallel()

		lineID := uuid.New()

		d := newDeps(t)
		d.repo.
			On("OrderByIDForUpdate", mock.Anything, companyID, orderID).
			Return(&model.SalesOrder{ID: orderID, Status: model.OrderReadyToShip}, nil).
			Once()
		d.repo.
			On("Lines", mock.Anything, orderID).
			Return([]model.SalesOrderLine{
				{ID: lineID, QuantityOrdered: 5, QuantityPicked: 3, QuantityShipped: 0},
			}, nil).
			Once()
		d.repo.
			On("AddLineShipped", mock.Anything, lineID, int64(3)).
			Return(nil).
			Once()
		d.repo.
			On("SetStatus", mock.Anything, companyID, orderID, model.OrderReadyToShip, model.OrderPartiallyShipped).
			Return(nil).
			Once()
		expectNotify(d, model.OrderReadyToShip, model.OrderPartiallyShipped)

		err := newSvc(d).Ship(context.Background(), companyID, orderID, actorID)
		require.NoError(t, err)
	})

	t.Run("fully picked order ships whole", func(t *testing.T) {
		t.Parallel()

		lineID := uuid.New()

		d := newDeps(t)
		d.repo.
			On("OrderByIDForUpdate", mock.Anything, companyID, orderID).
			Return(&model.SalesOrder{ID: orderID, Status: model.OrderReadyToShip}, nil).
			Once()
		d.repo.
			On("Lines", mock.Anything, orderID).
			Return([]model.SalesOrderLine{
				{ID: lineID, QuantityOrdered: 5, QuantityPicked: 5, QuantityShipped: 2},
			}, nil).
			Once()
		d.repo.
			On("AddLineShipped", mock.Anything, lineID, int64(3)).
			Return(nil).
			Once()
		d.repo.
			On("SetStatus", mock.Anything, companyID, orderID, model.OrderReadyToShip, model.OrderShipped).
			Return(nil).
			Once()
		expectNotify(d, model.OrderReadyToShip, model.OrderShipped)

		err := newSvc(d).Ship(context.Background(), companyID, orderID, actorID)
		require.NoError(t, err)
	})
}

func TestServiceCancel(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	companyID := uuid.New()
	orderID := uuid.New()
	actorID := uuid.New()

	t.Run("shipped orders cannot cancel", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("OrderByIDForUpdate", mock.Anything, companyID, orderID).
			Return(&model.SalesOrder{ID: orderID, Status: model.OrderShipped}, nil).
			Once()

		err := newSvc(d).Cancel(context.Background(), companyID, orderID, actorID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidTransition)

		d.slipRepo.AssertNotCalled(t, "ByOrder", mock.Anything, mock.Anything, mock.Anything)
		d.reservations.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cancel cascades to open children and spares in-transit transfers", func(t *testing.T) {
		t.Parallel()

		openSlipID := uuid.New()
		doneSlipID := uuid.New()
		jobID := uuid.New()
		pendingTransferID := uuid.New()
		inTransitID := uuid.New()

		d := newDeps(t)
		d.repo.
			On("OrderByIDForUpdate", mock.Anything, companyID, orderID).
			Return(&model.SalesOrder{ID: orderID, Status: model.OrderProcessing}, nil).
			Once()
		d.slipRepo.
			On("ByOrder", mock.Anything, companyID, orderID).
			Return([]model.PickingSlip{
				{ID: openSlipID, Status: model.PickingSlipInProgress},
				{ID: doneSlipID, Status: model.PickingSlipComplete},
			}, nil).
			Once()
		d.slipRepo.
			On("SetStatus", mock.Anything, companyID, openSlipID, model.PickingSlipCancelled).
			Return(nil).
			Once()
		d.jobRepo.
			On("ByOrder", mock.Anything, companyID, orderID).
			Return([]model.JobCard{
				{ID: jobID, Status: model.JobCardInProgress},
			}, nil).
			Once()
		d.jobRepo.
			On("SetStatus", mock.Anything, companyID, jobID, model.JobCardCancelled).
			Return(nil).
			Once()
		d.reservations.
			On("Release", mock.Anything, companyID, model.JobCardRef(jobID), model.ReleaseCancelled, actorID).
			Return(2, nil).
			Once()
		d.transferRepo.
			On("ByOrder", mock.Anything, companyID, orderID).
			Return([]model.TransferRequest{
				{ID: pendingTransferID, Status: model.TransferPending},
				{ID: inTransitID, Status: model.TransferInTransit},
			}, nil).
			Once()
		d.transferRepo.
			On("SetStatus", mock.Anything, companyID, pendingTransferID, model.TransferCancelled).
			Return(nil).
			Once()
		d.reservations.
			On("Release", mock.Anything, companyID, model.SalesOrderRef(orderID), model.ReleaseCancelled, actorID).
			Return(3, nil).
			Once()
		d.repo.
			On("SetStatus", mock.Anything, companyID, orderID, model.OrderProcessing, model.OrderCancelled).
			Return(nil).
			Once()
		expectNotify(d, model.OrderProcessing, model.OrderCancelled)

		err := newSvc(d).Cancel(context.Background(), companyID, orderID, actorID)
		require.NoError(t, err)

		// Completed slips and in-transit transfers are left alone.
		d.slipRepo.AssertNotCalled(t, "SetStatus", mock.Anything, companyID, doneSlipID, mock.Anything)
		d.transferRepo.AssertNotCalled(t, "SetStatus", mock.Anything, companyID, inTransitID, mock.Anything)
	})
}

func TestServiceResume(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	companyID := uuid.New()
	orderID := uuid.New()
	actorID := uuid.New()

	t.Run("resume without documents returns to confirmed", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("OrderByIDForUpdate", mock.Anything, companyID, orderID).
			Return(&model.SalesOrder{ID: orderID, Status: model.OrderOnHold}, nil).
			Once()
		d.slipRepo.On("ByOrder", mock.Anything, companyID, orderID).Return(nil, nil).Once()
		d.jobRepo.On("ByOrder", mock.Anything, companyID, orderID).Return(nil, nil).Once()
		d.transferRepo.On("ByOrder", mock.Anything, companyID, orderID).Return(nil, nil).Once()
		d.repo.
			On("SetStatus", mock.Anything, companyID, orderID, model.OrderOnHold, model.OrderConfirmed).
			Return(nil).
			Once()
		expectNotify(d, model.OrderOnHold, model.OrderConfirmed)

		err := newSvc(d).Resume(context.Background(), companyID, orderID, actorID)
		require.NoError(t, err)
	})

	t.Run("resume with open documents returns to processing", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("OrderByIDForUpdate", mock.Anything, companyID, orderID).
			Return(&model.SalesOrder{ID: orderID, Status: model.OrderOnHold}, nil).
			Once()
		d.slipRepo.
			On("ByOrder", mock.Anything, companyID, orderID).
			Return([]model.PickingSlip{{ID: uuid.New(), Status: model.PickingSlipPending}}, nil).
			Once()
		d.repo.
			On("SetStatus", mock.Anything, companyID, orderID, model.OrderOnHold, model.OrderProcessing).
			Return(nil).
			Once()
		expectNotify(d, model.OrderOnHold, model.OrderProcessing)

		err := newSvc(d).Resume(context.Background(), companyID, orderID, actorID)
		require.NoError(t, err)
	})
}

func TestServiceRefreshFulfillmentStatus(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	companyID := uuid.New()
	orderID := uuid.New()
	actorID := uuid.New()

	t.Run("orders outside the fulfillment phase are left alone", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("OrderByIDForUpdate", mock.Anything, companyID, orderID).
			Return(&model.SalesOrder{ID: orderID, Status: model.OrderShipped}, nil).
			Once()

		err := newSvc(d).RefreshFulfillmentStatus(context.Background(), companyID, orderID, actorID)
		require.NoError(t, err)

		d.repo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		d.notifier.AssertNotCalled(t, "NotifyStatusChange", mock.Anything, mock.Anything)
	})

	t.Run("all children terminal promotes through processing to ready", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("OrderByIDForUpdate", mock.Anything, companyID, orderID).
			Return(&model.SalesOrder{ID: orderID, Status: model.OrderConfirmed}, nil).
			Once()
		d.slipRepo.
			On("ByOrder", mock.Anything, companyID, orderID).
			Return([]model.PickingSlip{{ID: uuid.New(), Status: model.PickingSlipComplete}}, nil).
			Once()
		d.jobRepo.
			On("ByOrder", mock.Anything, companyID, orderID).
			Return([]model.JobCard{{ID: uuid.New(), Status: model.JobCardComplete}}, nil).
			Once()
		d.transferRepo.
			On("ByOrder", mock.Anything, companyID, orderID).
			Return(nil, nil).
			Once()
		d.repo.
			On("SetStatus", mock.Anything, companyID, orderID, model.OrderConfirmed, model.OrderProcessing).
			Return(nil).
			Once()
		d.repo.
			On("SetStatus", mock.Anything, companyID, orderID, model.OrderProcessing, model.OrderReadyToShip).
			Return(nil).
			Once()
		expectNotify(d, model.OrderConfirmed, model.OrderReadyToShip)

		err := newSvc(d).RefreshFulfillmentStatus(context.Background(), companyID, orderID, actorID)
		require.NoError(t, err)
	})

	t.Run("open children only move the order to processing", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("OrderByIDForUpdate", mock.Anything, companyID, orderID).
			Return(&model.SalesOrder{ID: orderID, Status: model.OrderConfirmed}, nil).
			Once()
		d.slipRepo.
			On("ByOrder", mock.Anything, companyID, orderID).
			Return([]model.PickingSlip{
				{ID: uuid.New(), Status: model.PickingSlipComplete},
				{ID: uuid.New(), Status: model.PickingSlipPending},
			}, nil).
			Once()
		d.jobRepo.On("ByOrder", mock.Anything, companyID, orderID).Return(nil, nil).Once()
		d.transferRepo.On("ByOrder", mock.Anything, companyID, orderID).Return(nil, nil).Once()
		d.repo.
			On("SetStatus", mock.Anything, companyID, orderID, model.OrderConfirmed, model.OrderProcessing).
			Return(nil).
			Once()
		expectNotify(d, model.OrderConfirmed, model.OrderProcessing)

		err := newSvc(d).RefreshFulfillmentStatus(context.Background(), companyID, orderID, actorID)
		require.NoError(t, err)
	})
}
