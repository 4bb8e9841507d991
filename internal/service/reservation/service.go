package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/db"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/logger"
)

const sweepPageSize = 100

type ReservationRepository interface {
	Create(ctx context.Context, res *model.StockReservation) (uuid.UUID, error)
	ActiveByReference(ctx context.Context, companyID uuid.UUID, ref model.Ref) ([]model.StockReservation, error)
	ReleaseByReference(ctx context.Context, companyID uuid.UUID, ref model.Ref, reason model.ReleaseReason, actorID uuid.UUID) ([]model.StockReservation, error)
	ReleaseMatching(ctx context.Context, companyID uuid.UUID, ref model.Ref, productID uuid.UUID, location model.Location, reason model.ReleaseReason, actorID uuid.UUID) ([]model.StockReservation, error)
	ReleaseByIDs(ctx context.Context, ids []uuid.UUID, reason model.ReleaseReason, actorID uuid.UUID) ([]model.StockReservation, error)
	ExpiredSoftPage(ctx context.Context, cutoff time.Time, limit uint64) ([]model.StockReservation, error)
}

type StockRepository interface {
	EnsureLevel(ctx context.Context, companyID, productID uuid.UUID, location model.Location) error
	LevelForUpdate(ctx context.Context, companyID, productID uuid.UUID, location model.Location) (*model.StockLevel, error)
	AddSoftReserved(ctx context.Context, companyID, productID uuid.UUID, location model.Location, delta int64) error
	AddHardReserved(ctx context.Context, companyID, productID uuid.UUID, location model.Location, delta int64) error
}

type service struct {
	repo      ReservationRepository
	stockRepo StockRepository
	txManager db.TxManager
	now       func() time.Time
}

func NewReservationService(
	repo ReservationRepository,
	stockRepo StockRepository,
	txManager db.TxManager,
) *service {
	return &service{
		repo:      repo,
		stockRepo: stockRepo,
		txManager: txManager,
		now:       time.Now,
	}
}

type ReserveParams struct {
	ProductID uuid.UUID
	Location  model.Location
	Quantity  int64
	Reference model.Ref
	// SOFT reservations only.
	ExpiresAt *time.Time
	ActorID   uuid.UUID
}

type ReserveResult struct {
	ReservationID uuid.UUID
	// Set when the reservation over-commits available stock. The
	// reservation is still recorded; quotes and orders may be taken
	// against backordered stock.
	Warning string
}

// ReserveSoft records a non-binding hold. It never gates on stock
// sufficiency; over-commit is surfaced as a warning.
func (s *service) ReserveSoft(
	ctx context.Context,
	companyID uuid.UUID,
	p ReserveParams,
) (*ReserveResult, error) {
	const op = "reservation.service.ReserveSoft"

	if p.Quantity <= 0 || !p.Location.Valid() || !p.Reference.Valid() || p.ExpiresAt == nil {
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	var result ReserveResult
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		lvl, err := s.lockLevel(ctx, companyID, p.ProductID, p.Location)
		if err != nil {
			return err
		}

		if lvl.SoftReserved+lvl.HardReserved+p.Quantity > lvl.OnHand {
			result.Warning = fmt.Sprintf(
				"soft reservation over-commits stock: on hand %d, reserved %d, requested %d",
				lvl.OnHand, lvl.SoftReserved+lvl.HardReserved, p.Quantity,
			)
		}

		id, err := s.repo.Create(ctx, &model.StockReservation{
			CompanyID: companyID,
			ProductID: p.ProductID,
			Location:  p.Location,
			Type:      model.ReservationSoft,
			Quantity:  p.Quantity,
			Reference: p.Reference,
			ExpiresAt: p.ExpiresAt,
			CreatedBy: p.ActorID,
		})
		if err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}
		result.ReservationID = id

		return s.stockRepo.AddSoftReserved(ctx, companyID, p.ProductID, p.Location, p.Quantity)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &result, nil
}

// ReserveHard records a binding hold. Unlike soft reservations it is
// gated: hard-reserved stock may never exceed on-hand.
func (s *service) ReserveHard(
	ctx context.Context,
	companyID uuid.UUID,
	p ReserveParams,
) (*ReserveResult, error) {
	const op = "reservation.service.ReserveHard"

	if p.Quantity <= 0 || !p.Location.Valid() || !p.Reference.Valid() {
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	var result ReserveResult
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		lvl, err := s.lockLevel(ctx, companyID, p.ProductID, p.Location)
		if err != nil {
			return err
		}

		if lvl.HardReserved+p.Quantity > lvl.OnHand {
			return fmt.Errorf(
				"available to promise %d, requested %d: %w",
				lvl.AvailableToPromise(), p.Quantity, model.ErrInsufficientStock,
			)
		}

		id, err := s.repo.Create(ctx, &model.StockReservation{
			CompanyID: companyID,
			ProductID: p.ProductID,
			Location:  p.Location,
			Type:      model.ReservationHard,
			Quantity:  p.Quantity,
			Reference: p.Reference,
			CreatedBy: p.ActorID,
		})
		if err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}
		result.ReservationID = id

		return s.stockRepo.AddHardReserved(ctx, companyID, p.ProductID, p.Location, p.Quantity)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &result, nil
}

func (s *service) lockLevel(
	ctx context.Context,
	companyID, productID uuid.UUID,
	location model.Location,
) (*model.StockLevel, error) {
	if err := s.stockRepo.EnsureLevel(ctx, companyID, productID, location); err != nil {
		return nil, fmt.Errorf("ensure level: %w", err)
	}
	lvl, err := s.stockRepo.LevelForUpdate(ctx, companyID, productID, location)
	if err != nil {
		return nil, fmt.Errorf("lock level: %w", err)
	}
	return lvl, nil
}

// Release releases every un-released reservation for the reference and
// decrements the matching counters. Releasing twice is a no-op the
// second time.
func (s *service) Release(
	ctx context.Context,
	companyID uuid.UUID,
	ref model.Ref,
	reason model.ReleaseReason,
	actorID uuid.UUID,
) (int, error) {
	const op = "reservation.service.Release"

	if !ref.Valid() {
		return 0, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	var released []model.StockReservation
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		var err error
		released, err = s.repo.ReleaseByReference(ctx, companyID, ref, reason, actorID)
		if err != nil {
			return err
		}
		return s.decrementCounters(ctx, released)
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return len(released), nil
}

// ReleaseMatching releases the reference's reservations for one product
// at one location, e.g. when a picking slip consumes the order's hold.
func (s *service) ReleaseMatching(
	ctx context.Context,
	companyID uuid.UUID,
	ref model.Ref,
	productID uuid.UUID,
	location model.Location,
	reason model.ReleaseReason,
	actorID uuid.UUID,
) (int, error) {
	const op = "reservation.service.ReleaseMatching"

	var released []model.StockReservation
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		var err error
		released, err = s.repo.ReleaseMatching(ctx, companyID, ref, productID, location, reason, actorID)
		if err != nil {
			return err
		}
		return s.decrementCounters(ctx, released)
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return len(released), nil
}

type counterKey struct {
	companyID uuid.UUID
	productID uuid.UUID
	location  model.Location
	resType   model.ReservationType
}

func (s *service) decrementCounters(ctx context.Context, released []model.StockReservation) error {
	grouped := lo.GroupBy(released, func(r model.StockReservation) counterKey {
		return counterKey{
			companyID: r.CompanyID,
			productID: r.ProductID,
			location:  r.Location,
			resType:   r.Type,
		}
	})

	for key, rows := range grouped {
		total := lo.SumBy(rows, func(r model.StockReservation) int64 { return r.Quantity })

		var err error
		if key.resType == model.ReservationHard {
			err = s.stockRepo.AddHardReserved(ctx, key.companyID, key.productID, key.location, -total)
		} else {
			err = s.stockRepo.AddSoftReserved(ctx, key.companyID, key.productID, key.location, -total)
		}
		if err != nil {
			return fmt.Errorf("decrement reserved counter: %w", err)
		}
	}
	return nil
}

// ReleaseExpiredSoft sweeps expired SOFT reservations in fixed-size
// pages, each page committed in its own transaction. A mid-run failure
// loses only the in-flight page.
func (s *service) ReleaseExpiredSoft(ctx context.Context, actorID uuid.UUID) (*model.SweepResult, error) {
	const op = "reservation.service.ReleaseExpiredSoft"

	result := &model.SweepResult{}
	for {
		var pageReleased int
		err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
			page, err := s.repo.ExpiredSoftPage(ctx, s.now(), sweepPageSize)
			if err != nil {
				return fmt.Errorf("load page: %w", err)
			}
			if len(page) == 0 {
				return nil
			}

			ids := lo.Map(page, func(r model.StockReservation, _ int) uuid.UUID { return r.ID })
			released, err := s.repo.ReleaseByIDs(ctx, ids, model.ReleaseExpired, actorID)
			if err != nil {
				return fmt.Errorf("release page: %w", err)
			}
			if err := s.decrementCounters(ctx, released); err != nil {
				return err
			}

			pageReleased = len(released)
			return nil
		})
		if err != nil {
			logger.Error(ctx, "expired reservation sweep page failed", logger.ErrorF(err))
			result.Errors = append(result.Errors, err.Error())
			return result, fmt.Errorf("%s: %w", op, err)
		}

		if pageReleased == 0 {
			break
		}
		result.ReleasedCount += pageReleased
		result.BatchesProcessed++
	}

	return result, nil
}

// ActiveByReference lists the un-released reservations held by a document.
func (s *service) ActiveByReference(
	ctx context.Context,
	companyID uuid.UUID,
	ref model.Ref,
) ([]model.StockReservation, error) {
	const op = "reservation.service.ActiveByReference"

	out, err := s.repo.ActiveByReference(ctx, companyID, ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}
