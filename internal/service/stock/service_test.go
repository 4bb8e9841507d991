package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/logger"
	"github.com/gglatilla/nusaf-platform-sub000/internal/service/stock/mocks"
)

type fakeTxManager struct{}

func (fakeTxManager) ReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestServiceApplyMovement(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	type deps struct {
		repo    *mocks.MockStockRepository
		adjRepo *mocks.MockAdjustmentRepository
	}

	newSvc := func(d deps) *service {
		return NewStockService(d.repo, d.adjRepo, fakeTxManager{})
	}

	companyID := uuid.New()
	productID := uuid.New()
	slipID := uuid.New()
	movementID := uuid.New()
	actorID := uuid.New()

	expectLock := func(d deps, lvl *model.StockLevel) {
		d.repo.
			On("EnsureLevel", mock.Anything, companyID, productID, model.LocationPrimary).
			Return(nil).
			Once()
		d.repo.
			On("LevelForUpdate", mock.Anything, companyID, productID, model.LocationPrimary).
			Return(lvl, nil).
			Once()
	}

	type testCase struct {
		name   string
		params ApplyMovementParams
		setup  func(d deps)
		assert func(t *testing.T, res *model.StockMovement, err error, d deps)
	}

	tests := []testCase{
		{
			name: "validation error: zero quantity",
			params: ApplyMovementParams{
				ProductID: productID,
				Location:  model.LocationPrimary,
				Type:      model.MovementReceipt,
				Quantity:  0,
				Reference: model.PickingSlipRef(slipID),
			},
			setup: func(d deps) {},
			assert: func(t *testing.T, res *model.StockMovement, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name: "validation error: missing reference",
			params: ApplyMovementParams{
				ProductID: productID,
				Location:  model.LocationPrimary,
				Type:      model.MovementReceipt,
				Quantity:  5,
			},
			setup: func(d deps) {},
			assert: func(t *testing.T, res *model.StockMovement, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name: "inbound movement raises the balance",
			params: ApplyMovementParams{
				ProductID: productID,
				Location:  model.LocationPrimary,
				Type:      model.MovementReceipt,
				Quantity:  5,
				Reference: model.PickingSlipRef(slipID),
				ActorID:   actorID,
			},
			setup: func(d deps) {
				expectLock(d, &model.StockLevel{OnHand: 10})
				d.repo.
					On("SetOnHand", mock.Anything, companyID, productID, model.LocationPrimary, int64(15)).
					Return(nil).
					Once()
				d.repo.
					On("InsertMovement", mock.Anything, mock.MatchedBy(func(m *model.StockMovement) bool {
						return m.Quantity == 5 && m.BalanceAfter == 15
					})).
					Return(movementID, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.StockMovement, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, movementID, res.ID)
				assert.Equal(t, int64(15), res.BalanceAfter)
			},
		},
		{
			name: "outbound movement stores a signed quantity",
			params: ApplyMovementParams{
				ProductID: productID,
				Location:  model.LocationPrimary,
				Type:      model.MovementIssue,
				Quantity:  4,
				Reference: model.PickingSlipRef(slipID),
				ActorID:   actorID,
			},
			setup: func(d deps) {
				expectLock(d, &model.StockLevel{OnHand: 10})
				d.repo.
					On("SetOnHand", mock.Anything, companyID, productID, model.LocationPrimary, int64(6)).
					Return(nil).
					Once()
				d.repo.
					On("InsertMovement", mock.Anything, mock.MatchedBy(func(m *model.StockMovement) bool {
						return m.Quantity == -4 && m.BalanceAfter == 6
					})).
					Return(movementID, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.StockMovement, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, int64(-4), res.Quantity)
			},
		},
		{
			name: "outbound movement may not drive the balance negative",
			params: ApplyMovementParams{
				ProductID: productID,
				Location:  model.LocationPrimary,
				Type:      model.MovementIssue,
				Quantity:  11,
				Reference: model.PickingSlipRef(slipID),
				ActorID:   actorID,
			},
			setup: func(d deps) {
				expectLock(d, &model.StockLevel{OnHand: 10})
			},
			assert: func(t *testing.T, res *model.StockMovement, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInsufficientStock)
				assert.Nil(t, res)

				d.repo.AssertNotCalled(t, "SetOnHand", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				d.repo.AssertNotCalled(t, "InsertMovement", mock.Anything, mock.Anything)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repo:    mocks.NewMockStockRepository(t),
				adjRepo: mocks.NewMockAdjustmentRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			res, err := svc.ApplyMovement(context.Background(), companyID, tt.params)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceCreateAdjustment(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	companyID := uuid.New()
	productID := uuid.New()
	actorID := uuid.New()

	t.Run("a reason is mandatory", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockStockRepository(t)
		adjRepo := mocks.NewMockAdjustmentRepository(t)

		svc := NewStockService(repo, adjRepo, fakeTxManager{})

		_, err := svc.CreateAdjustment(context.Background(), companyID, CreateAdjustmentParams{
			ProductID: productID,
			Location:  model.LocationPrimary,
			Delta:     -2,
			ActorID:   actorID,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)

		adjRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("a new adjustment lands as pending", func(t *testing.T) {
		t.Parallel()

		adjustmentID := uuid.New()
		reason := gofakeit.Sentence(5)

		repo := mocks.NewMockStockRepository(t)
		adjRepo := mocks.NewMockAdjustmentRepository(t)

		adjRepo.
			On("Create", mock.Anything, mock.MatchedBy(func(adj *model.StockAdjustment) bool {
				return adj.CompanyID == companyID &&
					adj.Delta == -2 &&
					adj.Reason == reason &&
					adj.Status == model.AdjustmentPending &&
					adj.CreatedBy == actorID
			})).
			Return(adjustmentID, nil).
			Once()

		svc := NewStockService(repo, adjRepo, fakeTxManager{})

		id, err := svc.CreateAdjustment(context.Background(), companyID, CreateAdjustmentParams{
			ProductID: productID,
			Location:  model.LocationPrimary,
			Delta:     -2,
			Reason:    reason,
			ActorID:   actorID,
		})
		require.NoError(t, err)
		assert.Equal(t, adjustmentID, id)

		// Creation never touches the ledger; only approval does.
		repo.AssertNotCalled(t, "InsertMovement", mock.Anything, mock.Anything)
	})
}

func TestServiceApproveAdjustment(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	companyID := uuid.New()
	productID := uuid.New()
	adjustmentID := uuid.New()
	creatorID := uuid.New()
	approverID := uuid.New()

	pending := func(delta int64) *model.StockAdjustment {
		return &model.StockAdjustment{
			ID:        adjustmentID,
			CompanyID: companyID,
			ProductID: productID,
			Location:  model.LocationPrimary,
			Delta:     delta,
			Status:    model.AdjustmentPending,
			CreatedBy: creatorID,
		}
	}

	t.Run("creator may not approve their own adjustment", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockStockRepository(t)
		adjRepo := mocks.NewMockAdjustmentRepository(t)

		adjRepo.
			On("AdjustmentByID", mock.Anything, companyID, adjustmentID).
			Return(pending(5), nil).
			Once()

		svc := NewStockService(repo, adjRepo, fakeTxManager{})

		err := svc.ApproveAdjustment(context.Background(), companyID, adjustmentID, creatorID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)

		adjRepo.AssertNotCalled(t, "Decide", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("already decided adjustment rejects a second decision", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockStockRepository(t)
		adjRepo := mocks.NewMockAdjustmentRepository(t)

		decided := pending(5)
		decided.Status = model.AdjustmentApproved
		adjRepo.
			On("AdjustmentByID", mock.Anything, companyID, adjustmentID).
			Return(decided, nil).
			Once()

		svc := NewStockService(repo, adjRepo, fakeTxManager{})

		err := svc.ApproveAdjustment(context.Background(), companyID, adjustmentID, approverID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidTransition)
	})

	t.Run("negative delta applies an outbound correction", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockStockRepository(t)
		adjRepo := mocks.NewMockAdjustmentRepository(t)

		adjRepo.
			On("AdjustmentByID", mock.Anything, companyID, adjustmentID).
			Return(pending(-3), nil).
			Once()
		adjRepo.
			On("Decide", mock.Anything, companyID, adjustmentID, model.AdjustmentApproved, approverID).
			Return(nil).
			Once()
		repo.
			On("EnsureLevel", mock.Anything, companyID, productID, model.LocationPrimary).
			Return(nil).
			Once()
		repo.
			On("LevelForUpdate", mock.Anything, companyID, productID, model.LocationPrimary).
			Return(&model.StockLevel{OnHand: 10}, nil).
			Once()
		repo.
			On("SetOnHand", mock.Anything, companyID, productID, model.LocationPrimary, int64(7)).
			Return(nil).
			Once()
		repo.
			On("InsertMovement", mock.Anything, mock.MatchedBy(func(m *model.StockMovement) bool {
				return m.Type == model.MovementAdjustmentOut &&
					m.Quantity == -3 &&
					m.Reference == model.StockAdjustmentRef(adjustmentID)
			})).
			Return(uuid.New(), nil).
			Once()

		svc := NewStockService(repo, adjRepo, fakeTxManager{})

		err := svc.ApproveAdjustment(context.Background(), companyID, adjustmentID, approverID)
		require.NoError(t, err)
	})
}

func TestServiceRejectAdjustment(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	companyID := uuid.New()
	adjustmentID := uuid.New()
	actorID := uuid.New()

	repo := mocks.NewMockStockRepository(t)
	adjRepo := mocks.NewMockAdjustmentRepository(t)

	adjRepo.
		On("AdjustmentByID", mock.Anything, companyID, adjustmentID).
		Return(&model.StockAdjustment{
			ID:        adjustmentID,
			Status:    model.AdjustmentPending,
			CreatedBy: uuid.New(),
		}, nil).
		Once()
	adjRepo.
		On("Decide", mock.Anything, companyID, adjustmentID, model.AdjustmentRejected, actorID).
		Return(nil).
		Once()

	svc := NewStockService(repo, adjRepo, fakeTxManager{})

	err := svc.RejectAdjustment(context.Background(), companyID, adjustmentID, actorID)
	require.NoError(t, err)

	// A rejection never touches the ledger.
	repo.AssertNotCalled(t, "InsertMovement", mock.Anything, mock.Anything)
}
