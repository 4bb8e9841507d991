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
	stock "github.com/gglatilla/nusaf-platform-sub000/internal/service/stock"
)

type TransferRepository interface {
	Create(ctx context.Context, tr *model.TransferRequest) (uuid.UUID, error)
	CreateLines(ctx context.Context, lines []model.TransferLine) error
	TransferByID(ctx context.Context, companyID, id uuid.UUID) (*model.TransferRequest, error)
	Lines(ctx context.Context, transferID uuid.UUID) ([]model.TransferLine, error)
	SetStatus(ctx context.Context, companyID, id uuid.UUID, status model.TransferStatus) error
	SetLineReceived(ctx context.Context, transferID, lineID uuid.UUID, quantity int64) error
}

type StockService interface {
	ApplyMovement(ctx context.Context, companyID uuid.UUID, p stock.ApplyMovementParams) (*model.StockMovement, error)
}

type OrderStatusRefresher interface {
	RefreshFulfillmentStatus(ctx context.Context, companyID, orderID, actorID uuid.UUID) error
}

type StatusNotifier interface {
	NotifyStatusChange(ctx context.Context, event model.DocumentStatusEvent)
}

type service struct {
	repo         TransferRepository
	stockService StockService
	orderRefresh OrderStatusRefresher
	notifier     StatusNotifier
	txManager    db.TxManager
	now          func() time.Time
}

func NewTransferService(
	repo TransferRepository,
	stockService StockService,
	orderRefresh OrderStatusRefresher,
	notifier StatusNotifier,
	txManager db.TxManager,
) *service {
	return &service{
		repo:         repo,
		stockService: stockService,
		orderRefresh: orderRefresh,
		notifier:     notifier,
		txManager:    txManager,
		now:          time.Now,
	}
}

type CreateLineParams struct {
	ProductID uuid.UUID
	Quantity  int64
}

// Create opens a standalone rebalancing transfer between the two
// warehouses. Order-linked transfers are created by plan execution only.
func (s *service) Create(
	ctx context.Context,
	companyID uuid.UUID,
	from, to model.Location,
	lines []CreateLineParams,
) (*model.TransferRequest, error) {
	const op = "transfer.service.Create"

	if !from.Valid() || !to.Valid() || from == to || len(lines) == 0 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
		}
	}

	tr := model.TransferRequest{
		CompanyID:    companyID,
		FromLocation: from,
		ToLocation:   to,
		Status:       model.TransferPending,
	}
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		id, err := s.repo.Create(ctx, &tr)
		if err != nil {
			return err
		}
		tr.ID = id

		return s.repo.CreateLines(ctx, lo.Map(lines, func(l CreateLineParams, _ int) model.TransferLine {
			return model.TransferLine{
				TransferID:        id,
				ProductID:         l.ProductID,
				QuantityRequested: l.Quantity,
			}
		}))
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &tr, nil
}

// Ship dispatches the transfer: every line's requested quantity leaves
// the source warehouse and the goods go in transit.
func (s *service) Ship(ctx context.Context, companyID, transferID, actorID uuid.UUID) error {
	const op = "transfer.service.Ship"
	log := logger.With(logger.String("transfer_id", transferID.String()))

	var orderID *uuid.UUID
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		tr, err := s.repo.TransferByID(ctx, companyID, transferID)
		if err != nil {
			return err
		}
		if !tr.Status.CanTransitionTo(model.TransferInTransit) {
			return model.InvalidTransitionError(string(tr.Status), string(model.TransferInTransit))
		}
		orderID = tr.OrderID

		lines, err := s.repo.Lines(ctx, transferID)
		if err != nil {
			return err
		}
		for _, l := range lines {
			if _, err := s.stockService.ApplyMovement(ctx, companyID, stock.ApplyMovementParams{
				ProductID: l.ProductID,
				Location:  tr.FromLocation,
				Type:      model.MovementTransferOut,
				Quantity:  l.QuantityRequested,
				Reference: model.TransferRequestRef(transferID),
				ActorID:   actorID,
			}); err != nil {
				return fmt.Errorf("dispatch line: %w", err)
			}
		}

		return s.repo.SetStatus(ctx, companyID, transferID, model.TransferInTransit)
	})
	if err != nil {
		log.Error(ctx, "ship transfer", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.notify(ctx, companyID, transferID, orderID, model.TransferPending, model.TransferInTransit, actorID)
	return nil
}

// UpdateLineReceived records the count taken at the destination dock. The
// count may come in below the requested quantity but never above it.
func (s *service) UpdateLineReceived(
	ctx context.Context,
	companyID, transferID, lineID uuid.UUID,
	quantity int64,
) error {
	const op = "transfer.service.UpdateLineReceived"

	if quantity < 1 {
		return fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		tr, err := s.repo.TransferByID(ctx, companyID, transferID)
		if err != nil {
			return err
		}
		if tr.Status != model.TransferInTransit {
			return model.InvalidTransitionError(string(tr.Status), string(model.TransferInTransit))
		}

		lines, err := s.repo.Lines(ctx, transferID)
		if err != nil {
			return err
		}
		for _, l := range lines {
			if l.ID != lineID {
				continue
			}
			if quantity > l.QuantityRequested {
				return fmt.Errorf("received %d exceeds requested %d: %w",
					quantity, l.QuantityRequested, model.ErrValidation)
			}
			return s.repo.SetLineReceived(ctx, transferID, lineID, quantity)
		}
		return model.ErrNotFound
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Receive books the transfer in. Every line needs a recorded count first;
// each counted quantity is received into the destination warehouse.
func (s *service) Receive(ctx context.Context, companyID, transferID, actorID uuid.UUID) error {
	const op = "transfer.service.Receive"
	log := logger.With(logger.String("transfer_id", transferID.String()))

	var orderID *uuid.UUID
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		tr, err := s.repo.TransferByID(ctx, companyID, transferID)
		if err != nil {
			return err
		}
		if !tr.Status.CanTransitionTo(model.TransferReceived) {
			return model.InvalidTransitionError(string(tr.Status), string(model.TransferReceived))
		}
		orderID = tr.OrderID

		lines, err := s.repo.Lines(ctx, transferID)
		if err != nil {
			return err
		}
		for _, l := range lines {
			if l.QuantityReceived == nil {
				return fmt.Errorf("line %s has no received count: %w", l.ID, model.ErrValidation)
			}
		}

		for _, l := range lines {
			if _, err := s.stockService.ApplyMovement(ctx, companyID, stock.ApplyMovementParams{
				ProductID: l.ProductID,
				Location:  tr.ToLocation,
				Type:      model.MovementTransferIn,
				Quantity:  *l.QuantityReceived,
				Reference: model.TransferRequestRef(transferID),
				ActorID:   actorID,
			}); err != nil {
				return fmt.Errorf("receive line: %w", err)
			}
		}

		return s.repo.SetStatus(ctx, companyID, transferID, model.TransferReceived)
	})
	if err != nil {
		log.Error(ctx, "receive transfer", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if orderID != nil {
		if err := s.orderRefresh.RefreshFulfillmentStatus(ctx, companyID, *orderID, actorID); err != nil {
			log.Warn(ctx, "refresh order status", logger.ErrorF(err))
		}
	}
	s.notify(ctx, companyID, transferID, orderID, model.TransferInTransit, model.TransferReceived, actorID)
	return nil
}

// Cancel is only possible before dispatch; the transition table rejects
// an in-transit cancel.
func (s *service) Cancel(ctx context.Context, companyID, transferID, actorID uuid.UUID) error {
	const op = "transfer.service.Cancel"

	var orderID *uuid.UUID
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		tr, err := s.repo.TransferByID(ctx, companyID, transferID)
		if err != nil {
			return err
		}
		if !tr.Status.CanTransitionTo(model.TransferCancelled) {
			return model.InvalidTransitionError(string(tr.Status), string(model.TransferCancelled))
		}
		orderID = tr.OrderID

		return s.repo.SetStatus(ctx, companyID, transferID, model.TransferCancelled)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if orderID != nil {
		if err := s.orderRefresh.RefreshFulfillmentStatus(ctx, companyID, *orderID, actorID); err != nil {
			logger.Warn(ctx, "refresh order status", logger.ErrorF(err))
		}
	}
	s.notify(ctx, companyID, transferID, orderID, model.TransferPending, model.TransferCancelled, actorID)
	return nil
}

func (s *service) TransferByID(ctx context.Context, companyID, transferID uuid.UUID) (*model.TransferRequest, []model.TransferLine, error) {
	const op = "transfer.service.TransferByID"

	tr, err := s.repo.TransferByID(ctx, companyID, transferID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	lines, err := s.repo.Lines(ctx, transferID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	return tr, lines, nil
}

func (s *service) notify(
	ctx context.Context,
	companyID, transferID uuid.UUID,
	orderID *uuid.UUID,
	oldStatus, newStatus model.TransferStatus,
	actorID uuid.UUID,
) {
	s.notifier.NotifyStatusChange(ctx, model.DocumentStatusEvent{
		EventID:      uuid.New(),
		CompanyID:    companyID,
		DocumentType: model.RefTransferRequest,
		DocumentID:   transferID,
		OrderID:      orderID,
		OldStatus:    string(oldStatus),
		NewStatus:    string(newStatus),
		ActorID:      actorID,
		OccurredAt:   s.now(),
	})
}
