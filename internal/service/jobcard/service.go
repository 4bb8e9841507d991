package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/db"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/logger"
	stock "github.com/gglatilla/nusaf-platform-sub000/internal/service/stock"
)

type JobCardRepository interface {
	JobCardByID(ctx context.Context, companyID, id uuid.UUID) (*model.JobCard, error)
	SetStatus(ctx context.Context, companyID, id uuid.UUID, status model.JobCardStatus) error
	AppendWarnings(ctx context.Context, companyID, id uuid.UUID, warnings []string) error
}

type BomRepository interface {
	JobCardLines(ctx context.Context, jobCardID uuid.UUID) ([]model.JobCardBomLine, error)
}

type StockRepository interface {
	Level(ctx context.Context, companyID, productID uuid.UUID, location model.Location) (*model.StockLevel, error)
}

type StockService interface {
	ApplyMovement(ctx context.Context, companyID uuid.UUID, p stock.ApplyMovementParams) (*model.StockMovement, error)
}

type ReservationService interface {
	Release(ctx context.Context, companyID uuid.UUID, ref model.Ref, reason model.ReleaseReason, actorID uuid.UUID) (int, error)
}

type OrderStatusRefresher interface {
	RefreshFulfillmentStatus(ctx context.Context, companyID, orderID, actorID uuid.UUID) error
}

type StatusNotifier interface {
	NotifyStatusChange(ctx context.Context, event model.DocumentStatusEvent)
}

type service struct {
	repo         JobCardRepository
	bomRepo      BomRepository
	stockRepo    StockRepository
	stockService StockService
	reservations ReservationService
	orderRefresh OrderStatusRefresher
	notifier     StatusNotifier
	txManager    db.TxManager
	now          func() time.Time
}

func NewJobCardService(
	repo JobCardRepository,
	bomRepo BomRepository,
	stockRepo StockRepository,
	stockService StockService,
	reservations ReservationService,
	orderRefresh OrderStatusRefresher,
	notifier StatusNotifier,
	txManager db.TxManager,
) *service {
	return &service{
		repo:         repo,
		bomRepo:      bomRepo,
		stockRepo:    stockRepo,
		stockService: stockService,
		reservations: reservations,
		orderRefresh: orderRefresh,
		notifier:     notifier,
		txManager:    txManager,
		now:          time.Now,
	}
}

// Start begins the build. Material availability is checked against the
// snapshot and any shortfall is recorded as a warning on the card; a
// shortage never blocks the start, the floor decides whether to proceed.
func (s *service) Start(ctx context.Context, companyID, jobCardID, actorID uuid.UUID) ([]string, error) {
	const op = "jobcard.service.Start"

	var warnings []string
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		jc, err := s.repo.JobCardByID(ctx, companyID, jobCardID)
		if err != nil {
			return err
		}
		if !jc.Status.CanTransitionTo(model.JobCardInProgress) {
			return model.InvalidTransitionError(string(jc.Status), string(model.JobCardInProgress))
		}

		lines, err := s.bomRepo.JobCardLines(ctx, jobCardID)
		if err != nil {
			return err
		}
		warnings, err = s.materialWarnings(ctx, companyID, lines)
		if err != nil {
			return err
		}
		if len(warnings) > 0 {
			if err := s.repo.AppendWarnings(ctx, companyID, jobCardID, warnings); err != nil {
				return fmt.Errorf("record warnings: %w", err)
			}
		}

		return s.repo.SetStatus(ctx, companyID, jobCardID, model.JobCardInProgress)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.notify(ctx, companyID, jobCardID, nil, model.JobCardPending, model.JobCardInProgress, actorID)
	return warnings, nil
}

func (s *service) materialWarnings(
	ctx context.Context,
	companyID uuid.UUID,
	lines []model.JobCardBomLine,
) ([]string, error) {
	var warnings []string
	for _, line := range lines {
		if line.IsOptional {
			continue
		}
		needed := line.ConsumedQuantity()

		onHand := int64(0)
		lvl, err := s.stockRepo.Level(ctx, companyID, line.ComponentProductID, model.LocationPrimary)
		switch {
		case err == nil:
			onHand = lvl.OnHand
		case errors.Is(err, model.ErrNotFound):
		default:
			return nil, fmt.Errorf("read component level: %w", err)
		}

		if onHand < needed {
			warnings = append(warnings, fmt.Sprintf(
				"component %s: on hand %d, required %d",
				line.ComponentProductID, onHand, needed))
		}
	}
	return warnings, nil
}

func (s *service) Hold(ctx context.Context, companyID, jobCardID, actorID uuid.UUID) error {
	const op = "jobcard.service.Hold"

	old, err := s.transition(ctx, companyID, jobCardID, model.JobCardOnHold)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.notify(ctx, companyID, jobCardID, nil, old, model.JobCardOnHold, actorID)
	return nil
}

func (s *service) Resume(ctx context.Context, companyID, jobCardID, actorID uuid.UUID) error {
	const op = "jobcard.service.Resume"

	old, err := s.transition(ctx, companyID, jobCardID, model.JobCardInProgress)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.notify(ctx, companyID, jobCardID, nil, old, model.JobCardInProgress, actorID)
	return nil
}

// Complete books the build: the job's component holds are released, the
// required components are consumed from the primary warehouse per the
// snapshot, and the finished quantity is received there, all in one
// transaction. Consumption rounds fractional totals up.
func (s *service) Complete(ctx context.Context, companyID, jobCardID, actorID uuid.UUID) error {
	const op = "jobcard.service.Complete"
	log := logger.With(logger.String("job_card_id", jobCardID.String()))

	var orderID uuid.UUID
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		jc, err := s.repo.JobCardByID(ctx, companyID, jobCardID)
		if err != nil {
			return err
		}
		if !jc.Status.CanTransitionTo(model.JobCardComplete) {
			return model.InvalidTransitionError(string(jc.Status), string(model.JobCardComplete))
		}
		orderID = jc.OrderID

		// Holds go first so consumption is not counted against them.
		if _, err := s.reservations.Release(
			ctx, companyID, model.JobCardRef(jobCardID), model.ReleaseConsumed, actorID,
		); err != nil {
			return fmt.Errorf("release component holds: %w", err)
		}

		lines, err := s.bomRepo.JobCardLines(ctx, jobCardID)
		if err != nil {
			return err
		}
		for _, line := range lines {
			if line.IsOptional {
				continue
			}
			if _, err := s.stockService.ApplyMovement(ctx, companyID, stock.ApplyMovementParams{
				ProductID: line.ComponentProductID,
				Location:  model.LocationPrimary,
				Type:      model.MovementManufactureOut,
				Quantity:  line.ConsumedQuantity(),
				Reference: model.JobCardRef(jobCardID),
				ActorID:   actorID,
			}); err != nil {
				return fmt.Errorf("consume component: %w", err)
			}
		}

		if _, err := s.stockService.ApplyMovement(ctx, companyID, stock.ApplyMovementParams{
			ProductID: jc.ProductID,
			Location:  model.LocationPrimary,
			Type:      model.MovementManufactureIn,
			Quantity:  jc.Quantity,
			Reference: model.JobCardRef(jobCardID),
			ActorID:   actorID,
		}); err != nil {
			return fmt.Errorf("receive finished goods: %w", err)
		}

		return s.repo.SetStatus(ctx, companyID, jobCardID, model.JobCardComplete)
	})
	if err != nil {
		log.Error(ctx, "complete job card", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.orderRefresh.RefreshFulfillmentStatus(ctx, companyID, orderID, actorID); err != nil {
		log.Warn(ctx, "refresh order status", logger.ErrorF(err))
	}
	s.notify(ctx, companyID, jobCardID, &orderID, model.JobCardInProgress, model.JobCardComplete, actorID)
	return nil
}

// Cancel abandons the build and returns its component holds to the pool.
func (s *service) Cancel(ctx context.Context, companyID, jobCardID, actorID uuid.UUID) error {
	const op = "jobcard.service.Cancel"

	var orderID uuid.UUID
	var old model.JobCardStatus
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		jc, err := s.repo.JobCardByID(ctx, companyID, jobCardID)
		if err != nil {
			return err
		}
		if !jc.Status.CanTransitionTo(model.JobCardCancelled) {
			return model.InvalidTransitionError(string(jc.Status), string(model.JobCardCancelled))
		}
		orderID = jc.OrderID
		old = jc.Status

		if _, err := s.reservations.Release(
			ctx, companyID, model.JobCardRef(jobCardID), model.ReleaseCancelled, actorID,
		); err != nil {
			return fmt.Errorf("release component holds: %w", err)
		}

		return s.repo.SetStatus(ctx, companyID, jobCardID, model.JobCardCancelled)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.orderRefresh.RefreshFulfillmentStatus(ctx, companyID, orderID, actorID); err != nil {
		logger.Warn(ctx, "refresh order status", logger.ErrorF(err))
	}
	s.notify(ctx, companyID, jobCardID, &orderID, old, model.JobCardCancelled, actorID)
	return nil
}

func (s *service) JobCardByID(ctx context.Context, companyID, jobCardID uuid.UUID) (*model.JobCard, []model.JobCardBomLine, error) {
	const op = "jobcard.service.JobCardByID"

	jc, err := s.repo.JobCardByID(ctx, companyID, jobCardID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	lines, err := s.bomRepo.JobCardLines(ctx, jobCardID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	return jc, lines, nil
}

func (s *service) transition(
	ctx context.Context,
	companyID, jobCardID uuid.UUID,
	to model.JobCardStatus,
) (model.JobCardStatus, error) {
	var old model.JobCardStatus
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		jc, err := s.repo.JobCardByID(ctx, companyID, jobCardID)
		if err != nil {
			return err
		}
		old = jc.Status
		if !jc.Status.CanTransitionTo(to) {
			return model.InvalidTransitionError(string(jc.Status), string(to))
		}
		return s.repo.SetStatus(ctx, companyID, jobCardID, to)
	})
	return old, err
}

func (s *service) notify(
	ctx context.Context,
	companyID, jobCardID uuid.UUID,
	orderID *uuid.UUID,
	oldStatus, newStatus model.JobCardStatus,
	actorID uuid.UUID,
) {
	s.notifier.NotifyStatusChange(ctx, model.DocumentStatusEvent{
		EventID:      uuid.New(),
		CompanyID:    companyID,
		DocumentType: model.RefJobCard,
		DocumentID:   jobCardID,
		OrderID:      orderID,
		OldStatus:    string(oldStatus),
		NewStatus:    string(newStatus),
		ActorID:      actorID,
		OccurredAt:   s.now(),
	})
}
