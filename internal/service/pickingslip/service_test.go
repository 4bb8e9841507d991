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
	"github.com/gglatilla/nusaf-platform-sub000/internal/service/pickingslip/mocks"
	stock "github.com/gglatilla/nusaf-platform-sub000/internal/service/stock"
)

type fakeTxManager struct{}

func (fakeTxManager) ReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type deps struct {
	repo          *mocks.MockPickingSlipRepository
	orderLineRepo *mocks.MockOrderLineRepository
	stockService  *mocks.MockStockService
	reservations  *mocks.MockReservationService
	orderRefresh  *mocks.MockOrderStatusRefresher
	notifier      *mocks.MockStatusNotifier
}

func newDeps(t *testing.T) deps {
	return deps{
		repo:          mocks.NewMockPickingSlipRepository(t),
		orderLineRepo: mocks.NewMockOrderLineRepository(t),
		stockService:  mocks.NewMockStockService(t),
		reservations:  mocks.NewMockReservationService(t),
		orderRefresh:  mocks.NewMockOrderStatusRefresher(t),
		notifier:      mocks.NewMockStatusNotifier(t),
	}
}

func newSvc(d deps) *service {
	return NewPickingSlipService(
		d.repo, d.orderLineRepo, d.stockService,
		d.reservations, d.orderRefresh, d.notifier, fakeTxManager{},
	)
}

func TestServiceUpdateLinePicked(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	companyID := uuid.New()
	slipID := uuid.New()
	lineID := uuid.New()

	slip := func(status model.PickingSlipStatus) *model.PickingSlip {
		return &model.PickingSlip{ID: slipID, CompanyID: companyID, Status: status, Location: model.LocationPrimary}
	}

	t.Run("negative quantity rejected", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		err := newSvc(d).UpdateLinePicked(context.Background(), companyID, slipID, lineID, -1)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)

		d.repo.AssertNotCalled(t, "SlipByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("picking requires an in-progress slip", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("SlipByID", mock.Anything, companyID, slipID).
			Return(slip(model.PickingSlipPending), nil).
			Once()

		err := newSvc(d).UpdateLinePicked(context.Background(), companyID, slipID, lineID, 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidTransition)
	})

	t.Run("count above required rejected", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("SlipByID", mock.Anything, companyID, slipID).
			Return(slip(model.PickingSlipInProgress), nil).
			Once()
		d.repo.
			On("Lines", mock.Anything, slipID).
			Return([]model.PickingSlipLine{
				{ID: lineID, QuantityRequired: 5},
			}, nil).
			Once()

		err := newSvc(d).UpdateLinePicked(context.Background(), companyID, slipID, lineID, 6)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)

		d.repo.AssertNotCalled(t, "SetLinePicked", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown line", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("SlipByID", mock.Anything, companyID, slipID).
			Return(slip(model.PickingSlipInProgress), nil).
			Once()
		d.repo.
			On("Lines", mock.Anything, slipID).
			Return([]model.PickingSlipLine{
				{ID: uuid.New(), QuantityRequired: 5},
			}, nil).
			Once()

		err := newSvc(d).UpdateLinePicked(context.Background(), companyID, slipID, lineID, 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("count is absolute and resubmittable", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("SlipByID", mock.Anything, companyID, slipID).
			Return(slip(model.PickingSlipInProgress), nil).
			Once()
		d.repo.
			On("Lines", mock.Anything, slipID).
			Return([]model.PickingSlipLine{
				{ID: lineID, QuantityRequired: 5, QuantityPicked: 4},
			}, nil).
			Once()
		d.repo.
			On("SetLinePicked", mock.Anything, slipID, lineID, int64(3)).
			Return(nil).
			Once()

		err := newSvc(d).UpdateLinePicked(context.Background(), companyID, slipID, lineID, 3)
		require.NoError(t, err)
	})
}

func TestServiceComplete(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	companyID := uuid.New()
	orderID := uuid.New()
	slipID := uuid.New()
	actorID := uuid.New()
	productID := uuid.New()
	orderLineID := uuid.New()

	slip := &model.PickingSlip{
		ID:        slipID,
		CompanyID: companyID,
		OrderID:   orderID,
		Status:    model.PickingSlipInProgress,
		Location:  model.LocationSecondary,
	}

	t.Run("a short-picked line blocks completion", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("SlipByID", mock.Anything, companyID, slipID).
			Return(slip, nil).
			Once()
		d.repo.
			On("Lines", mock.Anything, slipID).
			Return([]model.PickingSlipLine{
				{ID: uuid.New(), ProductID: productID, QuantityRequired: 5, QuantityPicked: 3},
			}, nil).
			Once()

		err := newSvc(d).Complete(context.Background(), companyID, slipID, actorID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
		assert.ErrorContains(t, err, "picked 3 of 5")

		d.stockService.AssertNotCalled(t, "ApplyMovement", mock.Anything, mock.Anything, mock.Anything)
		d.repo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("completion issues stock and consumes the order hold per line", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("SlipByID", mock.Anything, companyID, slipID).
			Return(slip, nil).
			Once()
		d.repo.
			On("Lines", mock.Anything, slipID).
			Return([]model.PickingSlipLine{
				{ID: uuid.New(), OrderLineID: orderLineID, ProductID: productID, QuantityRequired: 5, QuantityPicked: 5},
			}, nil).
			Once()
		d.stockService.
			On("ApplyMovement", mock.Anything, companyID, mock.MatchedBy(func(p stock.ApplyMovementParams) bool {
				return p.ProductID == productID &&
					p.Location == model.LocationSecondary &&
					p.Type == model.MovementIssue &&
					p.Quantity == 5 &&
					p.Reference == model.PickingSlipRef(slipID)
			})).
			Return(&model.StockMovement{}, nil).
			Once()
		d.reservations.
			On("ReleaseMatching", mock.Anything, companyID, model.SalesOrderRef(orderID),
				productID, model.LocationSecondary, model.ReleaseConsumed, actorID).
			Return(1, nil).
			Once()
		d.orderLineRepo.
			On("AddLinePicked", mock.Anything, orderLineID, int64(5)).
			Return(nil).
			Once()
		d.repo.
			On("SetStatus", mock.Anything, companyID, slipID, model.PickingSlipComplete).
			Return(nil).
			Once()
		d.orderRefresh.
			On("RefreshFulfillmentStatus", mock.Anything, companyID, orderID, actorID).
			Return(nil).
			Once()
		d.notifier.
			On("NotifyStatusChange", mock.Anything, mock.MatchedBy(func(e model.DocumentStatusEvent) bool {
				return e.DocumentType == model.RefPickingSlip &&
					e.NewStatus == string(model.PickingSlipComplete) &&
					e.OrderID != nil && *e.OrderID == orderID
			})).
			Once()

		err := newSvc(d).Complete(context.Background(), companyID, slipID, actorID)
		require.NoError(t, err)
	})
}

func TestServiceCancel(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	companyID := uuid.New()
	orderID := uuid.New()
	slipID := uuid.New()
	actorID := uuid.New()

	d := newDeps(t)
	d.repo.
		On("SlipByID", mock.Anything, companyID, slipID).
		Return(&model.PickingSlip{
			ID:      slipID,
			OrderID: orderID,
			Status:  model.PickingSlipPending,
		}, nil).
		Once()
	d.repo.
		On("SetStatus", mock.Anything, companyID, slipID, model.PickingSlipCancelled).
		Return(nil).
		Once()
	d.orderRefresh.
		On("RefreshFulfillmentStatus", mock.Anything, companyID, orderID, actorID).
		Return(nil).
		Once()
	d.notifier.
		On("NotifyStatusChange", mock.Anything, mock.Anything).
		Once()

	err := newSvc(d).Cancel(context.Background(), companyID, slipID, actorID)
	require.NoError(t, err)

	// The order keeps its holds; only completion consumes them.
	d.stockService.AssertNotCalled(t, "ApplyMovement", mock.Anything, mock.Anything, mock.Anything)
	d.reservations.AssertNotCalled(t, "ReleaseMatching",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceAssign(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	companyID := uuid.New()
	slipID := uuid.New()
	userID := uuid.New()

	t.Run("terminal slips take no assignee", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("SlipByID", mock.Anything, companyID, slipID).
			Return(&model.PickingSlip{ID: slipID, Status: model.PickingSlipCancelled}, nil).
			Once()

		err := newSvc(d).Assign(context.Background(), companyID, slipID, userID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidTransition)
	})

	t.Run("open slip assigns", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repo.
			On("SlipByID", mock.Anything, companyID, slipID).
			Return(&model.PickingSlip{ID: slipID, Status: model.PickingSlipPending}, nil).
			Once()
		d.repo.
			On("SetAssignee", mock.Anything, companyID, slipID, userID).
			Return(nil).
			Once()

		err := newSvc(d).Assign(context.Background(), companyID, slipID, userID)
		require.NoError(t, err)
	})
}
