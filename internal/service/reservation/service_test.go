package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/logger"
	"github.com/gglatilla/nusaf-platform-sub000/internal/service/reservation/mocks"
)

// fakeTxManager runs the function directly; the mocks stand in for the
// statements that would have run inside the transaction.
type fakeTxManager struct{}

func (fakeTxManager) ReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestServiceReserveSoft(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	type deps struct {
		repo      *mocks.MockReservationRepository
		stockRepo *mocks.MockStockRepository
	}

	newSvc := func(d deps) *service {
		return NewReservationService(d.repo, d.stockRepo, fakeTxManager{})
	}

	companyID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()
	actorID := uuid.New()
	reservationID := uuid.New()
	expiresAt := time.Now().Add(24 * time.Hour)

	params := func(quantity int64) ReserveParams {
		return ReserveParams{
			ProductID: productID,
			Location:  model.LocationPrimary,
			Quantity:  quantity,
			Reference: model.SalesOrderRef(orderID),
			ExpiresAt: &expiresAt,
			ActorID:   actorID,
		}
	}

	expectLock := func(d deps, lvl *model.StockLevel) {
		d.stockRepo.
			On("EnsureLevel", mock.Anything, companyID, productID, model.LocationPrimary).
			Return(nil).
			Once()
		d.stockRepo.
			On("LevelForUpdate", mock.Anything, companyID, productID, model.LocationPrimary).
			Return(lvl, nil).
			Once()
	}

	type testCase struct {
		name   string
		params ReserveParams
		setup  func(d deps)
		assert func(t *testing.T, res *ReserveResult, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "validation error: zero quantity",
			params: params(0),
			setup:  func(d deps) {},
			assert: func(t *testing.T, res *ReserveResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name: "validation error: soft reservation needs an expiry",
			params: ReserveParams{
				ProductID: productID,
				Location:  model.LocationPrimary,
				Quantity:  1,
				Reference: model.SalesOrderRef(orderID),
				ActorID:   actorID,
			},
			setup: func(d deps) {},
			assert: func(t *testing.T, res *ReserveResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name:   "covered stock: no warning",
			params: params(3),
			setup: func(d deps) {
				expectLock(d, &model.StockLevel{OnHand: 10, SoftReserved: 2, HardReserved: 1})
				d.repo.
					On("Create", mock.Anything, mock.MatchedBy(func(r *model.StockReservation) bool {
						return r.Type == model.ReservationSoft && r.Quantity == 3 && r.ExpiresAt != nil
					})).
					Return(reservationID, nil).
					Once()
				d.stockRepo.
					On("AddSoftReserved", mock.Anything, companyID, productID, model.LocationPrimary, int64(3)).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *ReserveResult, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, reservationID, res.ReservationID)
				assert.Empty(t, res.Warning)
			},
		},
		{
			name:   "over-commit records anyway and warns",
			params: params(8),
			setup: func(d deps) {
				expectLock(d, &model.StockLevel{OnHand: 10, SoftReserved: 4, HardReserved: 0})
				d.repo.
					On("Create", mock.Anything, mock.Anything).
					Return(reservationID, nil).
					Once()
				d.stockRepo.
					On("AddSoftReserved", mock.Anything, companyID, productID, model.LocationPrimary, int64(8)).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *ReserveResult, err error, d deps) {
				require.NoError(t, err)
				assert.Contains(t, res.Warning, "over-commits")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repo:      mocks.NewMockReservationRepository(t),
				stockRepo: mocks.NewMockStockRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			res, err := svc.ReserveSoft(context.Background(), companyID, tt.params)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceReserveHard(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	type deps struct {
		repo      *mocks.MockReservationRepository
		stockRepo *mocks.MockStockRepository
	}

	companyID := uuid.New()
	productID := uuid.New()
	slipID := uuid.New()
	reservationID := uuid.New()

	params := ReserveParams{
		ProductID: productID,
		Location:  model.LocationSecondary,
		Quantity:  5,
		Reference: model.PickingSlipRef(slipID),
		ActorID:   uuid.New(),
	}

	expectLock := func(d deps, lvl *model.StockLevel) {
		d.stockRepo.
			On("EnsureLevel", mock.Anything, companyID, productID, model.LocationSecondary).
			Return(nil).
			Once()
		d.stockRepo.
			On("LevelForUpdate", mock.Anything, companyID, productID, model.LocationSecondary).
			Return(lvl, nil).
			Once()
	}

	t.Run("insufficient available to promise blocks", func(t *testing.T) {
		t.Parallel()

		d := deps{
			repo:      mocks.NewMockReservationRepository(t),
			stockRepo: mocks.NewMockStockRepository(t),
		}
		// ATP = 10 - 6 = 4, requested 5.
		expectLock(d, &model.StockLevel{OnHand: 10, HardReserved: 6})

		svc := NewReservationService(d.repo, d.stockRepo, fakeTxManager{})

		res, err := svc.ReserveHard(context.Background(), companyID, params)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInsufficientStock)
		assert.Nil(t, res)

		d.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("soft reservations do not gate a hard one", func(t *testing.T) {
		t.Parallel()

		d := deps{
			repo:      mocks.NewMockReservationRepository(t),
			stockRepo: mocks.NewMockStockRepository(t),
		}
		expectLock(d, &model.StockLevel{OnHand: 10, SoftReserved: 9, HardReserved: 5})
		d.repo.
			On("Create", mock.Anything, mock.MatchedBy(func(r *model.StockReservation) bool {
				return r.Type == model.ReservationHard && r.ExpiresAt == nil
			})).
			Return(reservationID, nil).
			Once()
		d.stockRepo.
			On("AddHardReserved", mock.Anything, companyID, productID, model.LocationSecondary, int64(5)).
			Return(nil).
			Once()

		svc := NewReservationService(d.repo, d.stockRepo, fakeTxManager{})

		res, err := svc.ReserveHard(context.Background(), companyID, params)
		require.NoError(t, err)
		assert.Equal(t, reservationID, res.ReservationID)
	})
}

func TestServiceRelease(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	companyID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()
	actorID := uuid.New()
	ref := model.SalesOrderRef(orderID)

	t.Run("released rows drive counter decrements grouped by type", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockReservationRepository(t)
		stockRepo := mocks.NewMockStockRepository(t)

		released := []model.StockReservation{
			{CompanyID: companyID, ProductID: productID, Location: model.LocationPrimary, Type: model.ReservationSoft, Quantity: 3},
			{CompanyID: companyID, ProductID: productID, Location: model.LocationPrimary, Type: model.ReservationSoft, Quantity: 2},
			{CompanyID: companyID, ProductID: productID, Location: model.LocationPrimary, Type: model.ReservationHard, Quantity: 4},
		}
		repo.
			On("ReleaseByReference", mock.Anything, companyID, ref, model.ReleaseCancelled, actorID).
			Return(released, nil).
			Once()
		stockRepo.
			On("AddSoftReserved", mock.Anything, companyID, productID, model.LocationPrimary, int64(-5)).
			Return(nil).
			Once()
		stockRepo.
			On("AddHardReserved", mock.Anything, companyID, productID, model.LocationPrimary, int64(-4)).
			Return(nil).
			Once()

		svc := NewReservationService(repo, stockRepo, fakeTxManager{})

		n, err := svc.Release(context.Background(), companyID, ref, model.ReleaseCancelled, actorID)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("second release is a no-op", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockReservationRepository(t)
		stockRepo := mocks.NewMockStockRepository(t)

		repo.
			On("ReleaseByReference", mock.Anything, companyID, ref, model.ReleaseCancelled, actorID).
			Return([]model.StockReservation{}, nil).
			Once()

		svc := NewReservationService(repo, stockRepo, fakeTxManager{})

		n, err := svc.Release(context.Background(), companyID, ref, model.ReleaseCancelled, actorID)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		stockRepo.AssertNotCalled(t, "AddSoftReserved", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		stockRepo.AssertNotCalled(t, "AddHardReserved", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid reference rejected", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockReservationRepository(t)
		stockRepo := mocks.NewMockStockRepository(t)

		svc := NewReservationService(repo, stockRepo, fakeTxManager{})

		_, err := svc.Release(context.Background(), companyID, model.Ref{}, model.ReleaseCancelled, actorID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
	})
}

func TestServiceReleaseExpiredSoft(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()

	companyID := uuid.New()
	productID := uuid.New()
	actorID := uuid.New()

	t.Run("pages until the backlog is empty", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockReservationRepository(t)
		stockRepo := mocks.NewMockStockRepository(t)

		id1, id2 := uuid.New(), uuid.New()
		page := []model.StockReservation{
			{ID: id1, CompanyID: companyID, ProductID: productID, Location: model.LocationPrimary, Type: model.ReservationSoft, Quantity: 2},
			{ID: id2, CompanyID: companyID, ProductID: productID, Location: model.LocationPrimary, Type: model.ReservationSoft, Quantity: 1},
		}

		repo.
			On("ExpiredSoftPage", mock.Anything, mock.Anything, uint64(sweepPageSize)).
			Return(page, nil).
			Once()
		repo.
			On("ReleaseByIDs", mock.Anything, []uuid.UUID{id1, id2}, model.ReleaseExpired, actorID).
			Return(page, nil).
			Once()
		stockRepo.
			On("AddSoftReserved", mock.Anything, companyID, productID, model.LocationPrimary, int64(-3)).
			Return(nil).
			Once()
		// Second pass finds nothing and stops.
		repo.
			On("ExpiredSoftPage", mock.Anything, mock.Anything, uint64(sweepPageSize)).
			Return([]model.StockReservation{}, nil).
			Once()

		svc := NewReservationService(repo, stockRepo, fakeTxManager{})

		result, err := svc.ReleaseExpiredSoft(context.Background(), actorID)
		require.NoError(t, err)
		assert.Equal(t, 2, result.ReleasedCount)
		assert.Equal(t, 1, result.BatchesProcessed)
		assert.Empty(t, result.Errors)
	})

	t.Run("page load failure is reported", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockReservationRepository(t)
		stockRepo := mocks.NewMockStockRepository(t)

		repo.
			On("ExpiredSoftPage", mock.Anything, mock.Anything, uint64(sweepPageSize)).
			Return(nil, errors.New("db read failed")).
			Once()

		svc := NewReservationService(repo, stockRepo, fakeTxManager{})

		result, err := svc.ReleaseExpiredSoft(context.Background(), actorID)
		require.Error(t, err)
		assert.ErrorContains(t, err, "db read failed")
		require.NotNil(t, result)
		assert.Len(t, result.Errors, 1)
	})
}
