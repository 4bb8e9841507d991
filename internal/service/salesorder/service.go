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
	reservation "github.com/gglatilla/nusaf-platform-sub000/internal/service/reservation"
)

// softReservationTTL bounds how long a confirmed order may sit on a soft
// hold before the sweeper reclaims it.
const softReservationTTL = 7 * 24 * time.Hour

type OrderRepository interface {
	OrderByID(ctx context.Context, companyID, id uuid.UUID) (*model.SalesOrder, error)
	OrderByIDForUpdate(ctx context.Context, companyID, id uuid.UUID) (*model.SalesOrder, error)
	Lines(ctx context.Context, orderID uuid.UUID) ([]model.SalesOrderLine, error)
	SetStatus(ctx context.Context, companyID, id uuid.UUID, from, to model.OrderStatus) error
	AddLineShipped(ctx context.Context, lineID uuid.UUID, delta int64) error
}

type PickingSlipRepository interface {
	ByOrder(ctx context.Context, companyID, orderID uuid.UUID) ([]model.PickingSlip, error)
	SetStatus(ctx context.Context, companyID, id uuid.UUID, status model.PickingSlipStatus) error
}

type JobCardRepository interface {
	ByOrder(ctx context.Context, companyID, orderID uuid.UUID) ([]model.JobCard, error)
	SetStatus(ctx context.Context, companyID, id uuid.UUID, status model.JobCardStatus) error
}

type TransferRepository interface {
	ByOrder(ctx context.Context, companyID, orderID uuid.UUID) ([]model.TransferRequest, error)
	SetStatus(ctx context.Context, companyID, id uuid.UUID, status model.TransferStatus) error
}

type ReservationService interface {
	ReserveSoft(ctx context.Context, companyID uuid.UUID, p reservation.ReserveParams) (*reservation.ReserveResult, error)
	Release(ctx context.Context, companyID uuid.UUID, ref model.Ref, reason model.ReleaseReason, actorID uuid.UUID) (int, error)
}

type StatusNotifier interface {
	NotifyStatusChange(ctx context.Context, event model.DocumentStatusEvent)
}

type service struct {
	repo         OrderRepository
	slipRepo     PickingSlipRepository
	jobRepo      JobCardRepository
	transferRepo TransferRepository
	reservations ReservationService
	notifier     StatusNotifier
	txManager    db.TxManager
	now          func() time.Time
}

func NewSalesOrderService(
	repo OrderRepository,
	slipRepo PickingSlipRepository,
	jobRepo JobCardRepository,
	transferRepo TransferRepository,
	reservations ReservationService,
	notifier StatusNotifier,
	txManager db.TxManager,
) *service {
	return &service{
		repo:         repo,
		slipRepo:     slipRepo,
		jobRepo:      jobRepo,
		transferRepo: transferRepo,
		reservations: reservations,
		notifier:     notifier,
		txManager:    txManager,
		now:          time.Now,
	}
}

// Confirm commits a draft order and places a soft hold on every line at
// the order's home warehouse. Over-committed lines confirm anyway; the
// warnings tell sales what is backordered.
func (s *service) Confirm(
	ctx context.Context,
	companyID, orderID, actorID uuid.UUID,
) ([]string, error) {
	const op = "salesorder.service.Confirm"

	var warnings []string
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		order, err := s.repo.OrderByIDForUpdate(ctx, companyID, orderID)
		if err != nil {
			return err
		}
		if !order.Status.CanTransitionTo(model.OrderConfirmed) {
			return model.InvalidTransitionError(string(order.Status), string(model.OrderConfirmed))
		}

		lines, err := s.repo.Lines(ctx, orderID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return fmt.Errorf("order has no lines: %w", model.ErrValidation)
		}

		expiresAt := s.now().Add(softReservationTTL)
		for _, line := range lines {
			res, err := s.reservations.ReserveSoft(ctx, companyID, reservation.ReserveParams{
				ProductID: line.ProductID,
				Location:  order.Location,
				Quantity:  line.QuantityOrdered,
				Reference: model.SalesOrderRef(orderID),
				ExpiresAt: &expiresAt,
				ActorID:   actorID,
			})
			if err != nil {
				return fmt.Errorf("soft reserve line: %w", err)
			}
			if res.Warning != "" {
				warnings = append(warnings, res.Warning)
			}
		}

		return s.repo.SetStatus(ctx, companyID, orderID, order.Status, model.OrderConfirmed)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.notify(ctx, companyID, orderID, model.OrderDraft, model.OrderConfirmed, actorID)
	return warnings, nil
}

func (s *service) Hold(ctx context.Context, companyID, orderID, actorID uuid.UUID) error {
	const op = "salesorder.service.Hold"

	from, err := s.transition(ctx, companyID, orderID, model.OrderOnHold)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.notify(ctx, companyID, orderID, from, model.OrderOnHold, actorID)
	return nil
}

// Resume recomputes where the order left off: an order with fulfillment
// documents goes back to PROCESSING, one without goes back to CONFIRMED.
func (s *service) Resume(ctx context.Context, companyID, orderID, actorID uuid.UUID) error {
	const op = "salesorder.service.Resume"

	var target model.OrderStatus
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		order, err := s.repo.OrderByIDForUpdate(ctx, companyID, orderID)
		if err != nil {
			return err
		}
		if order.Status != model.OrderOnHold {
			return model.InvalidTransitionError(string(order.Status), string(model.OrderProcessing))
		}

		hasDocs, err := s.hasFulfillmentDocuments(ctx, companyID, orderID)
		if err != nil {
			return err
		}
		target = model.OrderConfirmed
		if hasDocs {
			target = model.OrderProcessing
		}

		return s.repo.SetStatus(ctx, companyID, orderID, model.OrderOnHold, target)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.notify(ctx, companyID, orderID, model.OrderOnHold, target, actorID)
	return nil
}

// Ship moves the order out the door. Stock was already issued when the
// picking slips completed, so this only rolls picked quantities into
// shipped and picks SHIPPED or PARTIALLY_SHIPPED from line coverage.
func (s *service) Ship(ctx context.Context, companyID, orderID, actorID uuid.UUID) error {
	const op = "salesorder.service.Ship"

	var target model.OrderStatus
	var from model.OrderStatus
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		order, err := s.repo.OrderByIDForUpdate(ctx, companyID, orderID)
		if err != nil {
			return err
		}
		from = order.Status

		lines, err := s.repo.Lines(ctx, orderID)
		if err != nil {
			return err
		}

		shippedAll := true
		anyToShip := false
		for _, line := range lines {
			delta := line.QuantityPicked - line.QuantityShipped
			if delta > 0 {
				anyToShip = true
				if err := s.repo.AddLineShipped(ctx, line.ID, delta); err != nil {
					return fmt.Errorf("ship line: %w", err)
				}
			}
			if line.QuantityPicked < line.QuantityOrdered {
				shippedAll = false
			}
		}
		if !anyToShip {
			return fmt.Errorf("nothing picked to ship: %w", model.ErrValidation)
		}

		target = model.OrderShipped
		if !shippedAll {
			target = model.OrderPartiallyShipped
		}
		if !order.Status.CanTransitionTo(target) {
			return model.InvalidTransitionError(string(order.Status), string(target))
		}

		return s.repo.SetStatus(ctx, companyID, orderID, order.Status, target)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.notify(ctx, companyID, orderID, from, target, actorID)
	return nil
}

func (s *service) MarkDelivered(ctx context.Context, companyID, orderID, actorID uuid.UUID) error {
	const op = "salesorder.service.MarkDelivered"

	from, err := s.transition(ctx, companyID, orderID, model.OrderDelivered)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.notify(ctx, companyID, orderID, from, model.OrderDelivered, actorID)
	return nil
}

func (s *service) Invoice(ctx context.Context, companyID, orderID, actorID uuid.UUID) error {
	const op = "salesorder.service.Invoice"

	from, err := s.transition(ctx, companyID, orderID, model.OrderInvoiced)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.notify(ctx, companyID, orderID, from, model.OrderInvoiced, actorID)
	return nil
}

func (s *service) Close(ctx context.Context, companyID, orderID, actorID uuid.UUID) error {
	const op = "salesorder.service.Close"

	from, err := s.transition(ctx, companyID, orderID, model.OrderClosed)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.notify(ctx, companyID, orderID, from, model.OrderClosed, actorID)
	return nil
}

// Cancel cancels the order and cascades to its open fulfillment
// documents, releasing every hold they carry. Transfers already in
// transit are spared; the goods arrive and restock the destination.
func (s *service) Cancel(ctx context.Context, companyID, orderID, actorID uuid.UUID) error {
	const op = "salesorder.service.Cancel"
	log := logger.With(logger.String("order_id", orderID.String()))

	var from model.OrderStatus
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		order, err := s.repo.OrderByIDForUpdate(ctx, companyID, orderID)
		if err != nil {
			return err
		}
		from = order.Status
		if !order.Status.CanTransitionTo(model.OrderCancelled) {
			return model.InvalidTransitionError(string(order.Status), string(model.OrderCancelled))
		}

		if err := s.cancelChildren(ctx, companyID, orderID, actorID); err != nil {
			return err
		}

		if _, err := s.reservations.Release(
			ctx, companyID, model.SalesOrderRef(orderID), model.ReleaseCancelled, actorID,
		); err != nil {
			return fmt.Errorf("release order holds: %w", err)
		}

		return s.repo.SetStatus(ctx, companyID, orderID, order.Status, model.OrderCancelled)
	})
	if err != nil {
		log.Error(ctx, "cancel order", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.notify(ctx, companyID, orderID, from, model.OrderCancelled, actorID)
	return nil
}

func (s *service) cancelChildren(ctx context.Context, companyID, orderID, actorID uuid.UUID) error {
	slips, err := s.slipRepo.ByOrder(ctx, companyID, orderID)
	if err != nil {
		return err
	}
	for _, slip := range slips {
		if slip.Status.Terminal() {
			continue
		}
		if err := s.slipRepo.SetStatus(ctx, companyID, slip.ID, model.PickingSlipCancelled); err != nil {
			return fmt.Errorf("cancel picking slip: %w", err)
		}
	}

	jobs, err := s.jobRepo.ByOrder(ctx, companyID, orderID)
	if err != nil {
		return err
	}
	for _, jc := range jobs {
		if jc.Status.Terminal() {
			continue
		}
		if err := s.jobRepo.SetStatus(ctx, companyID, jc.ID, model.JobCardCancelled); err != nil {
			return fmt.Errorf("cancel job card: %w", err)
		}
		if _, err := s.reservations.Release(
			ctx, companyID, model.JobCardRef(jc.ID), model.ReleaseCancelled, actorID,
		); err != nil {
			return fmt.Errorf("release job card holds: %w", err)
		}
	}

	transfers, err := s.transferRepo.ByOrder(ctx, companyID, orderID)
	if err != nil {
		return err
	}
	for _, tr := range transfers {
		// An in-transit transfer completes on its own.
		if tr.Status != model.TransferPending {
			continue
		}
		if err := s.transferRepo.SetStatus(ctx, companyID, tr.ID, model.TransferCancelled); err != nil {
			return fmt.Errorf("cancel transfer: %w", err)
		}
	}

	return nil
}

// RefreshFulfillmentStatus re-derives the order status from its children
// after one of them reaches a terminal state. It only ever moves the
// order forward, and only while it is in the fulfillment phase.
func (s *service) RefreshFulfillmentStatus(ctx context.Context, companyID, orderID, actorID uuid.UUID) error {
	const op = "salesorder.service.RefreshFulfillmentStatus"

	var from, target model.OrderStatus
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		order, err := s.repo.OrderByIDForUpdate(ctx, companyID, orderID)
		if err != nil {
			return err
		}
		from, target = order.Status, ""

		if order.Status != model.OrderConfirmed && order.Status != model.OrderProcessing {
			return nil
		}

		slips, err := s.slipRepo.ByOrder(ctx, companyID, orderID)
		if err != nil {
			return err
		}
		jobs, err := s.jobRepo.ByOrder(ctx, companyID, orderID)
		if err != nil {
			return err
		}
		transfers, err := s.transferRepo.ByOrder(ctx, companyID, orderID)
		if err != nil {
			return err
		}

		total := len(slips) + len(jobs) + len(transfers)
		if total == 0 {
			return nil
		}

		allDone := lo.EveryBy(slips, func(ps model.PickingSlip) bool { return ps.Status.Terminal() }) &&
			lo.EveryBy(jobs, func(j model.JobCard) bool { return j.Status.Terminal() }) &&
			lo.EveryBy(transfers, func(t model.TransferRequest) bool { return t.Status.Terminal() })

		if order.Status == model.OrderConfirmed {
			if err := s.repo.SetStatus(ctx, companyID, orderID, model.OrderConfirmed, model.OrderProcessing); err != nil {
				return err
			}
			target = model.OrderProcessing
		}
		if allDone {
			if err := s.repo.SetStatus(ctx, companyID, orderID, model.OrderProcessing, model.OrderReadyToShip); err != nil {
				return err
			}
			target = model.OrderReadyToShip
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if target != "" && target != from {
		s.notify(ctx, companyID, orderID, from, target, actorID)
	}
	return nil
}

func (s *service) OrderByID(ctx context.Context, companyID, orderID uuid.UUID) (*model.SalesOrder, error) {
	const op = "salesorder.service.OrderByID"

	order, err := s.repo.OrderByID(ctx, companyID, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return order, nil
}

func (s *service) hasFulfillmentDocuments(ctx context.Context, companyID, orderID uuid.UUID) (bool, error) {
	slips, err := s.slipRepo.ByOrder(ctx, companyID, orderID)
	if err != nil {
		return false, err
	}
	if len(slips) > 0 {
		return true, nil
	}
	jobs, err := s.jobRepo.ByOrder(ctx, companyID, orderID)
	if err != nil {
		return false, err
	}
	if len(jobs) > 0 {
		return true, nil
	}
	transfers, err := s.transferRepo.ByOrder(ctx, companyID, orderID)
	if err != nil {
		return false, err
	}
	return len(transfers) > 0, nil
}

func (s *service) transition(
	ctx context.Context,
	companyID, orderID uuid.UUID,
	to model.OrderStatus,
) (model.OrderStatus, error) {
	var from model.OrderStatus
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		order, err := s.repo.OrderByIDForUpdate(ctx, companyID, orderID)
		if err != nil {
			return err
		}
		from = order.Status
		if !order.Status.CanTransitionTo(to) {
			return model.InvalidTransitionError(string(order.Status), string(to))
		}
		return s.repo.SetStatus(ctx, companyID, orderID, order.Status, to)
	})
	return from, err
}

func (s *service) notify(
	ctx context.Context,
	companyID, orderID uuid.UUID,
	oldStatus, newStatus model.OrderStatus,
	actorID uuid.UUID,
) {
	s.notifier.NotifyStatusChange(ctx, model.DocumentStatusEvent{
		EventID:      uuid.New(),
		CompanyID:    companyID,
		DocumentType: model.RefSalesOrder,
		DocumentID:   orderID,
		OrderID:      &orderID,
		OldStatus:    string(oldStatus),
		NewStatus:    string(newStatus),
		ActorID:      actorID,
		OccurredAt:   s.now(),
	})
}
