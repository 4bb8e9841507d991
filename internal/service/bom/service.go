package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
)

type BomRepository interface {
	ItemsByParent(ctx context.Context, companyID, parentProductID uuid.UUID) ([]model.BomItem, error)
}

type StockRepository interface {
	Levels(ctx context.Context, companyID uuid.UUID, productIDs []uuid.UUID) ([]model.StockLevel, error)
}

type service struct {
	repo      BomRepository
	stockRepo StockRepository
}

func NewBomService(repo BomRepository, stockRepo StockRepository) *service {
	return &service{repo: repo, stockRepo: stockRepo}
}

// Explode expands a manufactured product into component requirements for
// the build quantity. Required quantity scales linearly; fractional
// per-unit ratios stay fractional here and are rounded up only when
// consumption is recorded.
func (s *service) Explode(
	ctx context.Context,
	companyID, productID uuid.UUID,
	quantity int64,
	includeOptional bool,
) ([]model.BomComponent, error) {
	const op = "bom.service.Explode"

	if quantity <= 0 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	items, err := s.repo.ItemsByParent(ctx, companyID, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	qty := decimal.NewFromInt(quantity)
	out := make([]model.BomComponent, 0, len(items))
	for _, item := range items {
		if item.IsOptional && !includeOptional {
			continue
		}
		out = append(out, model.BomComponent{
			ComponentProductID: item.ComponentProductID,
			RequiredQuantity:   item.QuantityPerUnit.Mul(qty),
			IsOptional:         item.IsOptional,
		})
	}
	return out, nil
}

// CheckStock joins the explosion against available-to-promise at one
// location. Manufacturing always happens at the primary warehouse, but
// the location is a parameter so planners can ask what-if questions.
func (s *service) CheckStock(
	ctx context.Context,
	companyID, productID uuid.UUID,
	quantity int64,
	location model.Location,
) (*model.StockCheck, error) {
	const op = "bom.service.CheckStock"

	if !location.Valid() {
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	components, err := s.Explode(ctx, companyID, productID, quantity, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(components) == 0 {
		return &model.StockCheck{CanFulfill: true, Readiness: model.ReadinessReady}, nil
	}

	ids := lo.Map(components, func(c model.BomComponent, _ int) uuid.UUID { return c.ComponentProductID })
	levels, err := s.stockRepo.Levels(ctx, companyID, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	atp := make(map[uuid.UUID]int64, len(levels))
	for _, lvl := range levels {
		if lvl.Location == location {
			atp[lvl.ProductID] = lvl.AvailableToPromise()
		}
	}

	check := &model.StockCheck{Components: make([]model.ComponentAvailability, 0, len(components))}
	for _, c := range components {
		available := atp[c.ComponentProductID]
		needed := c.RequiredQuantity.Ceil().IntPart()

		shortfall := needed - available
		if shortfall < 0 {
			shortfall = 0
		}

		check.Components = append(check.Components, model.ComponentAvailability{
			BomComponent: c,
			Available:    available,
			Shortfall:    shortfall,
		})
	}

	check.Readiness = classify(check.Components)
	check.CanFulfill = check.Readiness == model.ReadinessReady
	return check, nil
}

// classify looks only at required components: READY when none are short,
// SHORTAGE when all are, PARTIAL otherwise.
func classify(components []model.ComponentAvailability) model.Readiness {
	required := lo.Filter(components, func(c model.ComponentAvailability, _ int) bool {
		return !c.IsOptional
	})
	if len(required) == 0 {
		return model.ReadinessReady
	}

	short := lo.CountBy(required, func(c model.ComponentAvailability) bool {
		return c.Shortfall > 0
	})
	switch {
	case short == 0:
		return model.ReadinessReady
	case short == len(required):
		return model.ReadinessShortage
	default:
		return model.ReadinessPartial
	}
}
