package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/db"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/logger"
	stock "github.com/gglatilla/nusaf-platform-sub000/internal/service/stock"
)

type PickingSlipRepository interface {
	SlipByID(ctx context.Context, companyID, id uuid.UUID) (*model.PickingSlip, error)
	Lines(ctx context.Context, slipID uuid.UUID) ([]model.PickingSlipLine, error)
	SetStatus(ctx context.Context, companyID, id uuid.UUID, status model.PickingSlipStatus) error
	SetAssignee(ctx context.Context, companyID, id, userID uuid.UUID) error
	SetLinePicked(ctx context.Context, slipID, lineID uuid.UUID, quantity int64) error
}

type OrderLineRepository interface {
	AddLinePicked(ctx context.Context, lineID uuid.UUID, delta int64) error
}

type StockService interface {
	ApplyMovement(ctx context.Context, companyID uuid.UUID, p stock.ApplyMovementParams) (*model.StockMovement, error)
}

type ReservationService interface {
	ReleaseMatching(ctx context.Context, companyID uuid.UUID, ref model.Ref, productID uuid.UUID, location model.Location, reason model.ReleaseReason, actorID uuid.UUID) (int, error)
}

// OrderStatusRefresher re-derives the parent order's status after this
// slip reaches a terminal state.
type OrderStatusRefresher interface {
	RefreshFulfillmentStatus(ctx context.Context, companyID, orderID, actorID uuid.UUID) error
}

type StatusNotifier interface {
	NotifyStatusChange(ctx context.Context, event model.DocumentStatusEvent)
}

type service struct {
	repo          PickingSlipRepository
	orderLineRepo OrderLineRepository
	stockService  StockService
	reservations  ReservationService
	orderRefresh  OrderStatusRefresher
	notifier      StatusNotifier
	txManager     db.TxManager
	now           func() time.Time
}

func NewPickingSlipService(
	repo PickingSlipRepository,
	orderLineRepo OrderLineRepository,
	stockService StockService,
	reservations ReservationService,
	orderRefresh OrderStatusRefresher,
	notifier StatusNotifier,
	txManager db.TxManager,
) *service {
	return &service{
		repo:          repo,
		orderLineRepo: orderLineRepo,
		stockService:  stockService,
		reservations:  reservations,
		orderRefresh:  orderRefresh,
		notifier:      notifier,
		txManager:     txManager,
		now:           time.Now,
	}
}

func (s *service) Assign(ctx context.Context, companyID, slipID, userID uuid.UUID) error {
	const op = "pickingslip.service.Assign"

	slip, err := s.repo.SlipByID(ctx, companyID, slipID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if slip.Status.Terminal() {
		return fmt.Errorf("%s: %w", op,
			model.InvalidTransitionError(string(slip.Status), string(slip.Status)))
	}

	if err := s.repo.SetAssignee(ctx, companyID, slipID, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) Start(ctx context.Context, companyID, slipID, actorID uuid.UUID) error {
	const op = "pickingslip.service.Start"

	old, err := s.transition(ctx, companyID, slipID, model.PickingSlipInProgress)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.notify(ctx, companyID, slipID, nil, old, model.PickingSlipInProgress, actorID)
	return nil
}

// UpdateLinePicked records warehouse progress on one line. The picked
// quantity is absolute, so re-submitting a count is safe.
func (s *service) UpdateLinePicked(
	ctx context.Context,
	companyID, slipID, lineID uuid.UUID,
	quantity int64,
) error {
	const op = "pickingslip.service.UpdateLinePicked"

	if quantity < 0 {
		return fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		slip, err := s.repo.SlipByID(ctx, companyID, slipID)
		if err != nil {
			return err
		}
		if slip.Status != model.PickingSlipInProgress {
			return model.InvalidTransitionError(string(slip.Status), string(model.PickingSlipInProgress))
		}

		lines, err := s.repo.Lines(ctx, slipID)
		if err != nil {
			return err
		}
		for _, l := range lines {
			if l.ID != lineID {
				continue
			}
			if quantity > l.QuantityRequired {
				return fmt.Errorf("picked %d exceeds required %d: %w",
					quantity, l.QuantityRequired, model.ErrValidation)
			}
			return s.repo.SetLinePicked(ctx, slipID, lineID, quantity)
		}
		return model.ErrNotFound
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Complete closes the slip: every line must be fully picked. Each line
// issues stock from the slip's warehouse, consumes the order's matching
// hard hold and rolls the picked quantity up to the order line, all in
// one transaction.
func (s *service) Complete(ctx context.Context, companyID, slipID, actorID uuid.UUID) error {
	const op = "pickingslip.service.Complete"
	log := logger.With(logger.String("picking_slip_id", slipID.String()))

	var orderID uuid.UUID
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		slip, err := s.repo.SlipByID(ctx, companyID, slipID)
		if err != nil {
			return err
		}
		if !slip.Status.CanTransitionTo(model.PickingSlipComplete) {
			return model.InvalidTransitionError(string(slip.Status), string(model.PickingSlipComplete))
		}
		orderID = slip.OrderID

		lines, err := s.repo.Lines(ctx, slipID)
		if err != nil {
			return err
		}
		for _, l := range lines {
			if !l.FullyPicked() {
				return fmt.Errorf("line %s picked %d of %d: %w",
					l.ID, l.QuantityPicked, l.QuantityRequired, model.ErrValidation)
			}
		}

		for _, l := range lines {
			if _, err := s.stockService.ApplyMovement(ctx, companyID, stock.ApplyMovementParams{
				ProductID: l.ProductID,
				Location:  slip.Location,
				Type:      model.MovementIssue,
				Quantity:  l.QuantityPicked,
				Reference: model.PickingSlipRef(slipID),
				ActorID:   actorID,
			}); err != nil {
				return fmt.Errorf("issue stock: %w", err)
			}

			if _, err := s.reservations.ReleaseMatching(
				ctx, companyID, model.SalesOrderRef(slip.OrderID),
				l.ProductID, slip.Location, model.ReleaseConsumed, actorID,
			); err != nil {
				return fmt.Errorf("consume order hold: %w", err)
			}

			if err := s.orderLineRepo.AddLinePicked(ctx, l.OrderLineID, l.QuantityPicked); err != nil {
				return fmt.Errorf("roll up picked quantity: %w", err)
			}
		}

		return s.repo.SetStatus(ctx, companyID, slipID, model.PickingSlipComplete)
	})
	if err != nil {
		log.Error(ctx, "complete picking slip", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.orderRefresh.RefreshFulfillmentStatus(ctx, companyID, orderID, actorID); err != nil {
		log.Warn(ctx, "refresh order status", logger.ErrorF(err))
	}
	s.notify(ctx, companyID, slipID, &orderID, model.PickingSlipInProgress, model.PickingSlipComplete, actorID)
	return nil
}

// Cancel closes the slip without stock effects. The order keeps its hard
// holds; a replanning pass decides what happens to them.
func (s *service) Cancel(ctx context.Context, companyID, slipID, actorID uuid.UUID) error {
	const op = "pickingslip.service.Cancel"

	var orderID uuid.UUID
	var old model.PickingSlipStatus
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		slip, err := s.repo.SlipByID(ctx, companyID, slipID)
		if err != nil {
			return err
		}
		if !slip.Status.CanTransitionTo(model.PickingSlipCancelled) {
			return model.InvalidTransitionError(string(slip.Status), string(model.PickingSlipCancelled))
		}
		orderID = slip.OrderID
		old = slip.Status

		return s.repo.SetStatus(ctx, companyID, slipID, model.PickingSlipCancelled)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.orderRefresh.RefreshFulfillmentStatus(ctx, companyID, orderID, actorID); err != nil {
		logger.Warn(ctx, "refresh order status", logger.ErrorF(err))
	}
	s.notify(ctx, companyID, slipID, &orderID, old, model.PickingSlipCancelled, actorID)
	return nil
}

func (s *service) SlipByID(ctx context.Context, companyID, slipID uuid.UUID) (*model.PickingSlip, []model.PickingSlipLine, error) {
	const op = "pickingslip.service.SlipByID"

	slip, err := s.repo.SlipByID(ctx, companyID, slipID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	lines, err := s.repo.Lines(ctx, slipID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	return slip, lines, nil
}

func (s *service) transition(
	ctx context.Context,
	companyID, slipID uuid.UUID,
	to model.PickingSlipStatus,
) (model.PickingSlipStatus, error) {
	var old model.PickingSlipStatus
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		slip, err := s.repo.SlipByID(ctx, companyID, slipID)
		if err != nil {
			return err
		}
		old = slip.Status
		if !slip.Status.CanTransitionTo(to) {
			return model.InvalidTransitionError(string(slip.Status), string(to))
		}
		return s.repo.SetStatus(ctx, companyID, slipID, to)
	})
	return old, err
}

func (s *service) notify(
	ctx context.Context,
	companyID, slipID uuid.UUID,
	orderID *uuid.UUID,
	oldStatus, newStatus model.PickingSlipStatus,
	actorID uuid.UUID,
) {
	s.notifier.NotifyStatusChange(ctx, model.DocumentStatusEvent{
		EventID:      uuid.New(),
		CompanyID:    companyID,
		DocumentType: model.RefPickingSlip,
		DocumentID:   slipID,
		OrderID:      orderID,
		OldStatus:    string(oldStatus),
		NewStatus:    string(newStatus),
		ActorID:      actorID,
		OccurredAt:   s.now(),
	})
}
