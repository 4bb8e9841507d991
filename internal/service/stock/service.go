package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/db"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/logger"
)

type StockRepository interface {
	EnsureLevel(ctx context.Context, companyID, productID uuid.UUID, location model.Location) error
	Level(ctx context.Context, companyID, productID uuid.UUID, location model.Location) (*model.StockLevel, error)
	LevelForUpdate(ctx context.Context, companyID, productID uuid.UUID, location model.Location) (*model.StockLevel, error)
	Levels(ctx context.Context, companyID uuid.UUID, productIDs []uuid.UUID) ([]model.StockLevel, error)
	SetOnHand(ctx context.Context, companyID, productID uuid.UUID, location model.Location, onHand int64) error
	InsertMovement(ctx context.Context, m *model.StockMovement) (uuid.UUID, error)
	MovementsByReference(ctx context.Context, companyID uuid.UUID, ref model.Ref) ([]model.StockMovement, error)
}

type AdjustmentRepository interface {
	Create(ctx context.Context, adj *model.StockAdjustment) (uuid.UUID, error)
	AdjustmentByID(ctx context.Context, companyID, id uuid.UUID) (*model.StockAdjustment, error)
	Decide(ctx context.Context, companyID, id uuid.UUID, status model.AdjustmentStatus, decidedBy uuid.UUID) error
}

type service struct {
	repo      StockRepository
	adjRepo   AdjustmentRepository
	txManager db.TxManager
}

func NewStockService(
	repo StockRepository,
	adjRepo AdjustmentRepository,
	txManager db.TxManager,
) *service {
	return &service{
		repo:      repo,
		adjRepo:   adjRepo,
		txManager: txManager,
	}
}

type ApplyMovementParams struct {
	ProductID uuid.UUID
	Location  model.Location
	Type      model.MovementType
	// Magnitude; the sign is derived from the movement type.
	Quantity  int64
	Reference model.Ref
	ActorID   uuid.UUID
}

// ApplyMovement is the only write path for on-hand stock. It pairs the
// level update with exactly one ledger row carrying the resulting balance,
// inside one transaction, holding the (product, location) row lock.
func (s *service) ApplyMovement(
	ctx context.Context,
	companyID uuid.UUID,
	p ApplyMovementParams,
) (*model.StockMovement, error) {
	const op = "stock.service.ApplyMovement"

	if p.Quantity <= 0 || !p.Location.Valid() || !p.Reference.Valid() {
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	signed := p.Quantity
	if !p.Type.Inbound() {
		signed = -p.Quantity
	}

	var movement *model.StockMovement
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		if err := s.repo.EnsureLevel(ctx, companyID, p.ProductID, p.Location); err != nil {
			return fmt.Errorf("ensure level: %w", err)
		}

		lvl, err := s.repo.LevelForUpdate(ctx, companyID, p.ProductID, p.Location)
		if err != nil {
			return fmt.Errorf("lock level: %w", err)
		}

		balance := lvl.OnHand + signed
		if balance < 0 {
			return fmt.Errorf("on hand %d, requested %d: %w",
				lvl.OnHand, p.Quantity, model.ErrInsufficientStock)
		}

		if err := s.repo.SetOnHand(ctx, companyID, p.ProductID, p.Location, balance); err != nil {
			return fmt.Errorf("set on hand: %w", err)
		}

		movement = &model.StockMovement{
			CompanyID:    companyID,
			ProductID:    p.ProductID,
			Location:     p.Location,
			Type:         p.Type,
			Quantity:     signed,
			BalanceAfter: balance,
			Reference:    p.Reference,
			ActorID:      p.ActorID,
		}
		id, err := s.repo.InsertMovement(ctx, movement)
		if err != nil {
			return fmt.Errorf("insert movement: %w", err)
		}
		movement.ID = id

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return movement, nil
}

func (s *service) Level(
	ctx context.Context,
	companyID, productID uuid.UUID,
	location model.Location,
) (*model.StockLevel, error) {
	const op = "stock.service.Level"

	lvl, err := s.repo.Level(ctx, companyID, productID, location)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return lvl, nil
}

// Movements returns the ledger trail left by one document.
func (s *service) Movements(
	ctx context.Context,
	companyID uuid.UUID,
	ref model.Ref,
) ([]model.StockMovement, error) {
	const op = "stock.service.Movements"

	if !ref.Valid() {
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	out, err := s.repo.MovementsByReference(ctx, companyID, ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

type CreateAdjustmentParams struct {
	ProductID uuid.UUID
	Location  model.Location
	Delta     int64
	Reason    string
	ActorID   uuid.UUID
}

func (s *service) CreateAdjustment(
	ctx context.Context,
	companyID uuid.UUID,
	p CreateAdjustmentParams,
) (uuid.UUID, error) {
	const op = "stock.service.CreateAdjustment"

	if p.Delta == 0 || !p.Location.Valid() || p.Reason == "" {
		return uuid.Nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	id, err := s.adjRepo.Create(ctx, &model.StockAdjustment{
		CompanyID: companyID,
		ProductID: p.ProductID,
		Location:  p.Location,
		Delta:     p.Delta,
		Reason:    p.Reason,
		Status:    model.AdjustmentPending,
		CreatedBy: p.ActorID,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// ApproveAdjustment applies the correction to the ledger. The approver
// must not be the creator.
func (s *service) ApproveAdjustment(
	ctx context.Context,
	companyID, adjustmentID, actorID uuid.UUID,
) error {
	const op = "stock.service.ApproveAdjustment"
	log := logger.With(
		logger.String("adjustment_id", adjustmentID.String()),
		logger.String("actor_id", actorID.String()),
	)

	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		adj, err := s.adjRepo.AdjustmentByID(ctx, companyID, adjustmentID)
		if err != nil {
			return err
		}

		if adj.Status != model.AdjustmentPending {
			return model.InvalidTransitionError(string(adj.Status), string(model.AdjustmentApproved))
		}
		if adj.CreatedBy == actorID {
			return fmt.Errorf("approver must differ from creator: %w", model.ErrValidation)
		}

		if err := s.adjRepo.Decide(ctx, companyID, adjustmentID, model.AdjustmentApproved, actorID); err != nil {
			return err
		}

		movementType := model.MovementAdjustmentIn
		quantity := adj.Delta
		if adj.Delta < 0 {
			movementType = model.MovementAdjustmentOut
			quantity = -adj.Delta
		}

		_, err = s.ApplyMovement(ctx, companyID, ApplyMovementParams{
			ProductID: adj.ProductID,
			Location:  adj.Location,
			Type:      movementType,
			Quantity:  quantity,
			Reference: model.StockAdjustmentRef(adj.ID),
			ActorID:   actorID,
		})
		return err
	})
	if err != nil {
		log.Error(ctx, "approve adjustment", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *service) RejectAdjustment(
	ctx context.Context,
	companyID, adjustmentID, actorID uuid.UUID,
) error {
	const op = "stock.service.RejectAdjustment"

	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		adj, err := s.adjRepo.AdjustmentByID(ctx, companyID, adjustmentID)
		if err != nil {
			return err
		}

		if adj.Status != model.AdjustmentPending {
			return model.InvalidTransitionError(string(adj.Status), string(model.AdjustmentRejected))
		}

		return s.adjRepo.Decide(ctx, companyID, adjustmentID, model.AdjustmentRejected, actorID)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
