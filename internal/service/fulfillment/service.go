package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/db"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/logger"
	planner "github.com/gglatilla/nusaf-platform-sub000/internal/service/planner"
	reservation "github.com/gglatilla/nusaf-platform-sub000/internal/service/reservation"
)

type OrderRepository interface {
	OrderByID(ctx context.Context, companyID, id uuid.UUID) (*model.SalesOrder, error)
	OrderByIDForUpdate(ctx context.Context, companyID, id uuid.UUID) (*model.SalesOrder, error)
	Lines(ctx context.Context, orderID uuid.UUID) ([]model.SalesOrderLine, error)
	SetStatus(ctx context.Context, companyID, id uuid.UUID, from, to model.OrderStatus) error
}

type ProductRepository interface {
	ProductsByIDs(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]model.Product, error)
}

type StockRepository interface {
	Level(ctx context.Context, companyID, productID uuid.UUID, location model.Location) (*model.StockLevel, error)
	Levels(ctx context.Context, companyID uuid.UUID, productIDs []uuid.UUID) ([]model.StockLevel, error)
}

type PickingSlipRepository interface {
	Create(ctx context.Context, slip *model.PickingSlip) (uuid.UUID, error)
	CreateLines(ctx context.Context, lines []model.PickingSlipLine) error
}

type JobCardRepository interface {
	Create(ctx context.Context, jc *model.JobCard) (uuid.UUID, error)
	AppendWarnings(ctx context.Context, companyID, id uuid.UUID, warnings []string) error
}

type BomRepository interface {
	InsertJobCardLines(ctx context.Context, lines []model.JobCardBomLine) error
}

type TransferRepository interface {
	Create(ctx context.Context, tr *model.TransferRequest) (uuid.UUID, error)
	CreateLines(ctx context.Context, lines []model.TransferLine) error
}

type BomService interface {
	CheckStock(ctx context.Context, companyID, productID uuid.UUID, quantity int64, location model.Location) (*model.StockCheck, error)
}

type ReservationService interface {
	ReserveHard(ctx context.Context, companyID uuid.UUID, p reservation.ReserveParams) (*reservation.ReserveResult, error)
	Release(ctx context.Context, companyID uuid.UUID, ref model.Ref, reason model.ReleaseReason, actorID uuid.UUID) (int, error)
}

type StatusNotifier interface {
	NotifyStatusChange(ctx context.Context, event model.DocumentStatusEvent)
}

type service struct {
	orderRepo    OrderRepository
	productRepo  ProductRepository
	stockRepo    StockRepository
	slipRepo     PickingSlipRepository
	jobRepo      JobCardRepository
	bomRepo      BomRepository
	transferRepo TransferRepository
	bomService   BomService
	reservations ReservationService
	notifier     StatusNotifier
	txManager    db.TxManager
	now          func() time.Time
}

func NewFulfillmentService(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	stockRepo StockRepository,
	slipRepo PickingSlipRepository,
	jobRepo JobCardRepository,
	bomRepo BomRepository,
	transferRepo TransferRepository,
	bomService BomService,
	reservations ReservationService,
	notifier StatusNotifier,
	txManager db.TxManager,
) *service {
	return &service{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		stockRepo:    stockRepo,
		slipRepo:     slipRepo,
		jobRepo:      jobRepo,
		bomRepo:      bomRepo,
		transferRepo: transferRepo,
		bomService:   bomService,
		reservations: reservations,
		notifier:     notifier,
		txManager:    txManager,
		now:          time.Now,
	}
}

// GeneratePlan previews the documents needed to fulfill a CONFIRMED order.
// It writes nothing: the same order can be planned any number of times and
// the caller decides whether to execute.
func (s *service) GeneratePlan(
	ctx context.Context,
	companyID, orderID uuid.UUID,
) (*model.FulfillmentPlan, error) {
	const op = "fulfillment.service.GeneratePlan"

	order, err := s.orderRepo.OrderByID(ctx, companyID, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if order.Status != model.OrderConfirmed {
		return nil, fmt.Errorf("%s: %w", op,
			model.InvalidTransitionError(string(order.Status), string(model.OrderProcessing)))
	}

	lines, err := s.orderRepo.Lines(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	plan := &model.FulfillmentPlan{
		OrderID:     orderID,
		CompanyID:   companyID,
		GeneratedAt: s.now(),
	}

	outstanding := lo.Filter(lines, func(l model.SalesOrderLine, _ int) bool {
		return l.QuantityOrdered > l.QuantityPicked
	})
	if len(outstanding) == 0 {
		plan.Warnings = append(plan.Warnings, "order has no outstanding quantity")
		return plan, nil
	}

	productIDs := lo.Uniq(lo.Map(outstanding, func(l model.SalesOrderLine, _ int) uuid.UUID {
		return l.ProductID
	}))
	products, err := s.productRepo.ProductsByIDs(ctx, companyID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	levels, err := s.stockRepo.Levels(ctx, companyID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	requests := make([]planner.LineRequest, 0, len(outstanding))
	for _, line := range outstanding {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("%s: product %s: %w", op, line.ProductID, model.ErrNotFound)
		}
		requests = append(requests, planner.LineRequest{
			OrderLineID:         line.ID,
			ProductID:           line.ProductID,
			Quantity:            line.QuantityOrdered - line.QuantityPicked,
			RequiresManufacture: product.RequiresManufacture(),
		})
	}

	allocations := planner.Allocate(order.Location, requests, planner.BuildATPView(levels))

	var pickLines []model.PlannedPickLine
	var transferLines []model.PlannedTransferLine
	for _, alloc := range allocations {
		if alloc.PickQuantity > 0 {
			pickLines = append(pickLines, model.PlannedPickLine{
				OrderLineID: alloc.OrderLineID,
				ProductID:   alloc.ProductID,
				Quantity:    alloc.PickQuantity,
			})
		}
		if alloc.TransferQuantity > 0 {
			transferLines = append(transferLines, model.PlannedTransferLine{
				OrderLineID: alloc.OrderLineID,
				ProductID:   alloc.ProductID,
				Quantity:    alloc.TransferQuantity,
			})
		}
		if alloc.ManufactureQuantity > 0 {
			jc, err := s.planJobCard(ctx, companyID, alloc)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			if jc.Readiness != model.ReadinessReady {
				plan.Warnings = append(plan.Warnings, fmt.Sprintf(
					"job card for product %s has component readiness %s",
					alloc.ProductID, jc.Readiness))
			}
			plan.JobCards = append(plan.JobCards, *jc)
		}
		if alloc.PurchaseQuantity > 0 {
			plan.PurchaseSuggestions = append(plan.PurchaseSuggestions, model.PurchaseSuggestion{
				OrderLineID: alloc.OrderLineID,
				ProductID:   alloc.ProductID,
				Location:    order.Location,
				Quantity:    alloc.PurchaseQuantity,
			})
			plan.Warnings = append(plan.Warnings, fmt.Sprintf(
				"product %s short by %d across both warehouses",
				alloc.ProductID, alloc.PurchaseQuantity))
		}
	}

	if len(pickLines) > 0 {
		plan.PickingSlips = append(plan.PickingSlips, model.PlannedPickingSlip{
			Location: order.Location,
			Lines:    pickLines,
		})
	}
	if len(transferLines) > 0 {
		plan.Transfers = append(plan.Transfers, model.PlannedTransfer{
			FromLocation: order.Location.Other(),
			ToLocation:   order.Location,
			Lines:        transferLines,
		})
	}

	plan.CanProceed = len(plan.PickingSlips)+len(plan.JobCards)+len(plan.Transfers) > 0
	return plan, nil
}

// planJobCard snapshots the bill of materials and its readiness at the
// primary warehouse, the only site that manufactures.
func (s *service) planJobCard(
	ctx context.Context,
	companyID uuid.UUID,
	alloc planner.LineAllocation,
) (*model.PlannedJobCard, error) {
	check, err := s.bomService.CheckStock(
		ctx, companyID, alloc.ProductID, alloc.ManufactureQuantity, model.LocationPrimary)
	if err != nil {
		return nil, fmt.Errorf("check components: %w", err)
	}

	return &model.PlannedJobCard{
		OrderLineID: alloc.OrderLineID,
		ProductID:   alloc.ProductID,
		Quantity:    alloc.ManufactureQuantity,
		Components: lo.Map(check.Components, func(c model.ComponentAvailability, _ int) model.BomComponent {
			return c.BomComponent
		}),
		Readiness: check.Readiness,
	}, nil
}

// ExecutePlan turns a generated plan into real documents inside one
// transaction. The order row lock plus the CONFIRMED check make a second
// execution of the same plan fail instead of doubling the documents.
func (s *service) ExecutePlan(
	ctx context.Context,
	companyID uuid.UUID,
	plan *model.FulfillmentPlan,
	actorID uuid.UUID,
) (*model.ExecutedPlan, error) {
	const op = "fulfillment.service.ExecutePlan"
	log := logger.With(logger.String("order_id", plan.OrderID.String()))

	if plan.OrderID == uuid.Nil || plan.CompanyID != companyID {
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}
	if !plan.CanProceed {
		return nil, fmt.Errorf("%s: plan has nothing to execute: %w", op, model.ErrValidation)
	}

	executed := &model.ExecutedPlan{}
	err := s.txManager.ReadCommitted(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.OrderByIDForUpdate(ctx, companyID, plan.OrderID)
		if err != nil {
			return err
		}
		if order.Status != model.OrderConfirmed {
			return model.InvalidTransitionError(string(order.Status), string(model.OrderProcessing))
		}

		// The order's quote-time soft holds are superseded by the hard
		// reservations created below.
		if _, err := s.reservations.Release(
			ctx, companyID, model.SalesOrderRef(order.ID), model.ReleaseConsumed, actorID,
		); err != nil {
			return fmt.Errorf("release soft holds: %w", err)
		}

		if err := s.createPickingSlips(ctx, companyID, order, plan, actorID, executed); err != nil {
			return err
		}
		if err := s.createJobCards(ctx, companyID, order, plan, actorID, executed); err != nil {
			return err
		}
		if err := s.createTransfers(ctx, companyID, order, plan, executed); err != nil {
			return err
		}

		return s.orderRepo.SetStatus(ctx, companyID, order.ID, model.OrderConfirmed, model.OrderProcessing)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "fulfillment plan executed",
		logger.Int("picking_slips", len(executed.PickingSlips)),
		logger.Int("job_cards", len(executed.JobCards)),
		logger.Int("transfers", len(executed.TransferRequests)),
	)

	s.notifier.NotifyStatusChange(ctx, model.DocumentStatusEvent{
		EventID:      uuid.New(),
		CompanyID:    companyID,
		DocumentType: model.RefSalesOrder,
		DocumentID:   plan.OrderID,
		OrderID:      &plan.OrderID,
		OldStatus:    string(model.OrderConfirmed),
		NewStatus:    string(model.OrderProcessing),
		ActorID:      actorID,
		OccurredAt:   s.now(),
	})

	return executed, nil
}

func (s *service) createPickingSlips(
	ctx context.Context,
	companyID uuid.UUID,
	order *model.SalesOrder,
	plan *model.FulfillmentPlan,
	actorID uuid.UUID,
	executed *model.ExecutedPlan,
) error {
	for _, planned := range plan.PickingSlips {
		slip := model.PickingSlip{
			CompanyID: companyID,
			OrderID:   order.ID,
			Location:  planned.Location,
			Status:    model.PickingSlipPending,
		}
		id, err := s.slipRepo.Create(ctx, &slip)
		if err != nil {
			return fmt.Errorf("create picking slip: %w", err)
		}
		slip.ID = id

		lines := lo.Map(planned.Lines, func(l model.PlannedPickLine, _ int) model.PickingSlipLine {
			return model.PickingSlipLine{
				PickingSlipID:    id,
				OrderLineID:      l.OrderLineID,
				ProductID:        l.ProductID,
				QuantityRequired: l.Quantity,
			}
		})
		if err := s.slipRepo.CreateLines(ctx, lines); err != nil {
			return fmt.Errorf("create picking slip lines: %w", err)
		}

		// Hard holds belong to the order; picking slip completion
		// consumes the matching slice.
		for _, l := range planned.Lines {
			if _, err := s.reservations.ReserveHard(ctx, companyID, reservation.ReserveParams{
				ProductID: l.ProductID,
				Location:  planned.Location,
				Quantity:  l.Quantity,
				Reference: model.SalesOrderRef(order.ID),
				ActorID:   actorID,
			}); err != nil {
				return fmt.Errorf("reserve pick stock: %w", err)
			}
		}

		executed.PickingSlips = append(executed.PickingSlips, slip)
	}
	return nil
}

func (s *service) createJobCards(
	ctx context.Context,
	companyID uuid.UUID,
	order *model.SalesOrder,
	plan *model.FulfillmentPlan,
	actorID uuid.UUID,
	executed *model.ExecutedPlan,
) error {
	for _, planned := range plan.JobCards {
		jc := model.JobCard{
			CompanyID:   companyID,
			OrderID:     order.ID,
			OrderLineID: planned.OrderLineID,
			ProductID:   planned.ProductID,
			Quantity:    planned.Quantity,
			Status:      model.JobCardPending,
		}
		id, err := s.jobRepo.Create(ctx, &jc)
		if err != nil {
			return fmt.Errorf("create job card: %w", err)
		}
		jc.ID = id

		buildQty := decimal.NewFromInt(planned.Quantity)
		snapshot := lo.Map(planned.Components, func(c model.BomComponent, _ int) model.JobCardBomLine {
			return model.JobCardBomLine{
				JobCardID:          id,
				ComponentProductID: c.ComponentProductID,
				QuantityPerUnit:    c.RequiredQuantity.Div(buildQty),
				TotalRequired:      c.RequiredQuantity,
				IsOptional:         c.IsOptional,
			}
		})
		if err := s.bomRepo.InsertJobCardLines(ctx, snapshot); err != nil {
			return fmt.Errorf("snapshot bom: %w", err)
		}

		warnings, err := s.reserveComponents(ctx, companyID, id, snapshot, actorID)
		if err != nil {
			return err
		}
		if len(warnings) > 0 {
			if err := s.jobRepo.AppendWarnings(ctx, companyID, id, warnings); err != nil {
				return fmt.Errorf("record job warnings: %w", err)
			}
			jc.Warnings = warnings
			executed.Warnings = append(executed.Warnings, warnings...)
		}

		executed.JobCards = append(executed.JobCards, jc)
	}
	return nil
}

// reserveComponents hard-reserves required components at the primary
// warehouse, capped at what is available. A shortfall never blocks the
// job card; it is recorded as a warning and the job starts anyway.
func (s *service) reserveComponents(
	ctx context.Context,
	companyID, jobCardID uuid.UUID,
	snapshot []model.JobCardBomLine,
	actorID uuid.UUID,
) ([]string, error) {
	var warnings []string
	for _, line := range snapshot {
		if line.IsOptional {
			continue
		}
		needed := line.ConsumedQuantity()

		available := int64(0)
		lvl, err := s.stockRepo.Level(ctx, companyID, line.ComponentProductID, model.LocationPrimary)
		switch {
		case err == nil:
			available = lvl.AvailableToPromise()
		case errors.Is(err, model.ErrNotFound):
		default:
			return nil, fmt.Errorf("read component level: %w", err)
		}

		toReserve := needed
		if available < toReserve {
			toReserve = available
		}
		if toReserve > 0 {
			if _, err := s.reservations.ReserveHard(ctx, companyID, reservation.ReserveParams{
				ProductID: line.ComponentProductID,
				Location:  model.LocationPrimary,
				Quantity:  toReserve,
				Reference: model.JobCardRef(jobCardID),
				ActorID:   actorID,
			}); err != nil {
				return nil, fmt.Errorf("reserve component: %w", err)
			}
		}
		if toReserve < needed {
			warnings = append(warnings, fmt.Sprintf(
				"component %s: reserved %d of %d required",
				line.ComponentProductID, toReserve, needed))
		}
	}
	return warnings, nil
}

func (s *service) createTransfers(
	ctx context.Context,
	companyID uuid.UUID,
	order *model.SalesOrder,
	plan *model.FulfillmentPlan,
	executed *model.ExecutedPlan,
) error {
	for _, planned := range plan.Transfers {
		tr := model.TransferRequest{
			CompanyID:    companyID,
			OrderID:      &order.ID,
			FromLocation: planned.FromLocation,
			ToLocation:   planned.ToLocation,
			Status:       model.TransferPending,
		}
		id, err := s.transferRepo.Create(ctx, &tr)
		if err != nil {
			return fmt.Errorf("create transfer: %w", err)
		}
		tr.ID = id

		lines := lo.Map(planned.Lines, func(l model.PlannedTransferLine, _ int) model.TransferLine {
			return model.TransferLine{
				TransferID:        id,
				ProductID:         l.ProductID,
				QuantityRequested: l.Quantity,
			}
		})
		if err := s.transferRepo.CreateLines(ctx, lines); err != nil {
			return fmt.Errorf("create transfer lines: %w", err)
		}

		executed.TransferRequests = append(executed.TransferRequests, tr)
	}
	return nil
}
