package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gglatilla/nusaf-platform-sub000/internal/model"
	stock "github.com/gglatilla/nusaf-platform-sub000/internal/service/stock"
	transfer "github.com/gglatilla/nusaf-platform-sub000/internal/service/transfer"
)

const (
	headerCompanyID = "X-Company-ID"
	headerActorID   = "X-Actor-ID"
)

type FulfillmentService interface {
	GeneratePlan(ctx context.Context, companyID, orderID uuid.UUID) (*model.FulfillmentPlan, error)
	ExecutePlan(ctx context.Context, companyID uuid.UUID, plan *model.FulfillmentPlan, actorID uuid.UUID) (*model.ExecutedPlan, error)
}

type SalesOrderService interface {
	OrderByID(ctx context.Context, companyID, orderID uuid.UUID) (*model.SalesOrder, error)
	Confirm(ctx context.Context, companyID, orderID, actorID uuid.UUID) ([]string, error)
	Hold(ctx context.Context, companyID, orderID, actorID uuid.UUID) error
	Resume(ctx context.Context, companyID, orderID, actorID uuid.UUID) error
	Ship(ctx context.Context, companyID, orderID, actorID uuid.UUID) error
	MarkDelivered(ctx context.Context, companyID, orderID, actorID uuid.UUID) error
	Invoice(ctx context.Context, companyID, orderID, actorID uuid.UUID) error
	Close(ctx context.Context, companyID, orderID, actorID uuid.UUID) error
	Cancel(ctx context.Context, companyID, orderID, actorID uuid.UUID) error
}

type PickingSlipService interface {
	SlipByID(ctx context.Context, companyID, slipID uuid.UUID) (*model.PickingSlip, []model.PickingSlipLine, error)
	Assign(ctx context.Context, companyID, slipID, userID uuid.UUID) error
	Start(ctx context.Context, companyID, slipID, actorID uuid.UUID) error
	UpdateLinePicked(ctx context.Context, companyID, slipID, lineID uuid.UUID, quantity int64) error
	Complete(ctx context.Context, companyID, slipID, actorID uuid.UUID) error
	Cancel(ctx context.Context, companyID, slipID, actorID uuid.UUID) error
}

type JobCardService interface {
	JobCardByID(ctx context.Context, companyID, jobCardID uuid.UUID) (*model.JobCard, []model.JobCardBomLine, error)
	Start(ctx context.Context, companyID, jobCardID, actorID uuid.UUID) ([]string, error)
	Hold(ctx context.Context, companyID, jobCardID, actorID uuid.UUID) error
	Resume(ctx context.Context, companyID, jobCardID, actorID uuid.UUID) error
	Complete(ctx context.Context, companyID, jobCardID, actorID uuid.UUID) error
	Cancel(ctx context.Context, companyID, jobCardID, actorID uuid.UUID) error
}

type TransferService interface {
	TransferByID(ctx context.Context, companyID, transferID uuid.UUID) (*model.TransferRequest, []model.TransferLine, error)
	Create(ctx context.Context, companyID uuid.UUID, from, to model.Location, lines []transfer.CreateLineParams) (*model.TransferRequest, error)
	Ship(ctx context.Context, companyID, transferID, actorID uuid.UUID) error
	UpdateLineReceived(ctx context.Context, companyID, transferID, lineID uuid.UUID, quantity int64) error
	Receive(ctx context.Context, companyID, transferID, actorID uuid.UUID) error
	Cancel(ctx context.Context, companyID, transferID, actorID uuid.UUID) error
}

type StockService interface {
	Level(ctx context.Context, companyID, productID uuid.UUID, location model.Location) (*model.StockLevel, error)
	Movements(ctx context.Context, companyID uuid.UUID, ref model.Ref) ([]model.StockMovement, error)
	CreateAdjustment(ctx context.Context, companyID uuid.UUID, p stock.CreateAdjustmentParams) (uuid.UUID, error)
	ApproveAdjustment(ctx context.Context, companyID, adjustmentID, actorID uuid.UUID) error
	RejectAdjustment(ctx context.Context, companyID, adjustmentID, actorID uuid.UUID) error
}

type ReservationService interface {
	ReleaseExpiredSoft(ctx context.Context, actorID uuid.UUID) (*model.SweepResult, error)
}

type handler struct {
	fulfillment  FulfillmentService
	orders       SalesOrderService
	slips        PickingSlipService
	jobs         JobCardService
	transfers    TransferService
	stock        StockService
	reservations ReservationService
}

func NewFulfillmentHandler(
	fulfillment FulfillmentService,
	orders SalesOrderService,
	slips PickingSlipService,
	jobs JobCardService,
	transfers TransferService,
	stockService StockService,
	reservations ReservationService,
) *handler {
	return &handler{
		fulfillment:  fulfillment,
		orders:       orders,
		slips:        slips,
		jobs:         jobs,
		transfers:    transfers,
		stock:        stockService,
		reservations: reservations,
	}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/orders/{orderID}", func(r chi.Router) {
		r.Get("/", h.getOrder)
		r.Post("/confirm", h.confirmOrder)
		r.Post("/plan", h.planOrder)
		r.Post("/execute", h.executeOrder)
		r.Post("/hold", h.orderAction(SalesOrderService.Hold))
		r.Post("/resume", h.orderAction(SalesOrderService.Resume))
		r.Post("/ship", h.orderAction(SalesOrderService.Ship))
		r.Post("/deliver", h.orderAction(SalesOrderService.MarkDelivered))
		r.Post("/invoice", h.orderAction(SalesOrderService.Invoice))
		r.Post("/close", h.orderAction(SalesOrderService.Close))
		r.Post("/cancel", h.orderAction(SalesOrderService.Cancel))
	})

	r.Route("/picking-slips/{slipID}", func(r chi.Router) {
		r.Get("/", h.getPickingSlip)
		r.Post("/assign", h.assignPickingSlip)
		r.Post("/start", h.startPickingSlip)
		r.Post("/complete", h.completePickingSlip)
		r.Post("/cancel", h.cancelPickingSlip)
		r.Patch("/lines/{lineID}", h.updatePickedLine)
	})

	r.Route("/job-cards/{jobCardID}", func(r chi.Router) {
		r.Get("/", h.getJobCard)
		r.Post("/start", h.startJobCard)
		r.Post("/hold", h.jobCardAction(JobCardService.Hold))
		r.Post("/resume", h.jobCardAction(JobCardService.Resume))
		r.Post("/complete", h.jobCardAction(JobCardService.Complete))
		r.Post("/cancel", h.jobCardAction(JobCardService.Cancel))
	})

	r.Route("/transfers", func(r chi.Router) {
		r.Post("/", h.createTransfer)
		r.Route("/{transferID}", func(r chi.Router) {
			r.Get("/", h.getTransfer)
			r.Post("/ship", h.transferAction(TransferService.Ship))
			r.Post("/receive", h.transferAction(TransferService.Receive))
			r.Post("/cancel", h.transferAction(TransferService.Cancel))
			r.Patch("/lines/{lineID}", h.updateReceivedLine)
		})
	})

	r.Route("/stock", func(r chi.Router) {
		r.Get("/levels/{productID}", h.getStockLevel)
		r.Get("/movements", h.getMovements)
		r.Post("/adjustments", h.createAdjustment)
		r.Post("/adjustments/{adjustmentID}/approve", h.approveAdjustment)
		r.Post("/adjustments/{adjustmentID}/reject", h.rejectAdjustment)
	})

	r.Post("/reservations/sweep", h.sweepReservations)

	return r
}

type requestScope struct {
	companyID uuid.UUID
	actorID   uuid.UUID
}

func (h *handler) scope(w http.ResponseWriter, r *http.Request) (requestScope, bool) {
	companyID, err := uuid.Parse(r.Header.Get(headerCompanyID))
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing or invalid "+headerCompanyID+" header")
		return requestScope{}, false
	}
	actorID, err := uuid.Parse(r.Header.Get(headerActorID))
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing or invalid "+headerActorID+" header")
		return requestScope{}, false
	}
	return requestScope{companyID: companyID, actorID: actorID}, true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func (h *handler) getOrder(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	orderID, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}

	order, err := h.orders.OrderByID(r.Context(), sc.companyID, orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *handler) confirmOrder(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	orderID, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}

	warnings, err := h.orders.Confirm(r.Context(), sc.companyID, orderID, sc.actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"warnings": warnings})
}

func (h *handler) planOrder(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	orderID, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}

	plan, err := h.fulfillment.GeneratePlan(r.Context(), sc.companyID, orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// executeOrder regenerates the plan against current stock and executes it
// in one call; the preview endpoint is advisory and never trusted as
// execution input.
func (h *handler) executeOrder(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	orderID, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}

	plan, err := h.fulfillment.GeneratePlan(r.Context(), sc.companyID, orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	executed, err := h.fulfillment.ExecutePlan(r.Context(), sc.companyID, plan, sc.actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, executed)
}

type orderActionFunc func(svc SalesOrderService, ctx context.Context, companyID, orderID, actorID uuid.UUID) error

func (h *handler) orderAction(action orderActionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := h.scope(w, r)
		if !ok {
			return
		}
		orderID, ok := pathUUID(w, r, "orderID")
		if !ok {
			return
		}

		if err := action(h.orders, r.Context(), sc.companyID, orderID, sc.actorID); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *handler) getPickingSlip(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	slipID, ok := pathUUID(w, r, "slipID")
	if !ok {
		return
	}

	slip, lines, err := h.slips.SlipByID(r.Context(), sc.companyID, slipID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"picking_slip": slip, "lines": lines})
}

func (h *handler) assignPickingSlip(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	slipID, ok := pathUUID(w, r, "slipID")
	if !ok {
		return
	}

	var req struct {
		UserID uuid.UUID `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "invalid body: user_id required")
		return
	}

	if err := h.slips.Assign(r.Context(), sc.companyID, slipID, req.UserID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) startPickingSlip(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	slipID, ok := pathUUID(w, r, "slipID")
	if !ok {
		return
	}

	if err := h.slips.Start(r.Context(), sc.companyID, slipID, sc.actorID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) completePickingSlip(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	slipID, ok := pathUUID(w, r, "slipID")
	if !ok {
		return
	}

	if err := h.slips.Complete(r.Context(), sc.companyID, slipID, sc.actorID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) cancelPickingSlip(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	slipID, ok := pathUUID(w, r, "slipID")
	if !ok {
		return
	}

	if err := h.slips.Cancel(r.Context(), sc.companyID, slipID, sc.actorID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) updatePickedLine(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	slipID, ok := pathUUID(w, r, "slipID")
	if !ok {
		return
	}
	lineID, ok := pathUUID(w, r, "lineID")
	if !ok {
		return
	}

	var req struct {
		QuantityPicked int64 `json:"quantity_picked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if err := h.slips.UpdateLinePicked(r.Context(), sc.companyID, slipID, lineID, req.QuantityPicked); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) getJobCard(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	jobCardID, ok := pathUUID(w, r, "jobCardID")
	if !ok {
		return
	}

	jc, lines, err := h.jobs.JobCardByID(r.Context(), sc.companyID, jobCardID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"job_card": jc, "bom_lines": lines})
}

func (h *handler) startJobCard(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	jobCardID, ok := pathUUID(w, r, "jobCardID")
	if !ok {
		return
	}

	warnings, err := h.jobs.Start(r.Context(), sc.companyID, jobCardID, sc.actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"warnings": warnings})
}

type jobCardActionFunc func(svc JobCardService, ctx context.Context, companyID, jobCardID, actorID uuid.UUID) error

func (h *handler) jobCardAction(action jobCardActionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := h.scope(w, r)
		if !ok {
			return
		}
		jobCardID, ok := pathUUID(w, r, "jobCardID")
		if !ok {
			return
		}

		if err := action(h.jobs, r.Context(), sc.companyID, jobCardID, sc.actorID); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *handler) createTransfer(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}

	var req struct {
		FromLocation model.Location `json:"from_location"`
		ToLocation   model.Location `json:"to_location"`
		Lines        []struct {
			ProductID uuid.UUID `json:"product_id"`
			Quantity  int64     `json:"quantity"`
		} `json:"lines"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	lines := make([]transfer.CreateLineParams, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, transfer.CreateLineParams{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	tr, err := h.transfers.Create(r.Context(), sc.companyID, req.FromLocation, req.ToLocation, lines)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tr)
}

func (h *handler) getTransfer(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	transferID, ok := pathUUID(w, r, "transferID")
	if !ok {
		return
	}

	tr, lines, err := h.transfers.TransferByID(r.Context(), sc.companyID, transferID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transfer": tr, "lines": lines})
}

type transferActionFunc func(svc TransferService, ctx context.Context, companyID, transferID, actorID uuid.UUID) error

func (h *handler) transferAction(action transferActionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc, ok := h.scope(w, r)
		if !ok {
			return
		}
		transferID, ok := pathUUID(w, r, "transferID")
		if !ok {
			return
		}

		if err := action(h.transfers, r.Context(), sc.companyID, transferID, sc.actorID); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *handler) updateReceivedLine(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	transferID, ok := pathUUID(w, r, "transferID")
	if !ok {
		return
	}
	lineID, ok := pathUUID(w, r, "lineID")
	if !ok {
		return
	}

	var req struct {
		QuantityReceived int64 `json:"quantity_received"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if err := h.transfers.UpdateLineReceived(r.Context(), sc.companyID, transferID, lineID, req.QuantityReceived); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) getStockLevel(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	productID, ok := pathUUID(w, r, "productID")
	if !ok {
		return
	}

	location := model.Location(r.URL.Query().Get("location"))
	if !location.Valid() {
		writeError(w, http.StatusBadRequest, "invalid location")
		return
	}

	lvl, err := h.stock.Level(r.Context(), sc.companyID, productID, location)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"level":                lvl,
		"available_to_promise": lvl.AvailableToPromise(),
	})
}

func (h *handler) getMovements(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}

	refID, err := uuid.Parse(r.URL.Query().Get("reference_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reference_id")
		return
	}
	ref := model.Ref{
		Kind: model.RefKind(r.URL.Query().Get("reference_type")),
		ID:   refID,
	}

	movements, err := h.stock.Movements(r.Context(), sc.companyID, ref)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"movements": movements})
}

func (h *handler) createAdjustment(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}

	var req struct {
		ProductID uuid.UUID      `json:"product_id"`
		Location  model.Location `json:"location"`
		Delta     int64          `json:"delta"`
		Reason    string         `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	id, err := h.stock.CreateAdjustment(r.Context(), sc.companyID, stock.CreateAdjustmentParams{
		ProductID: req.ProductID,
		Location:  req.Location,
		Delta:     req.Delta,
		Reason:    req.Reason,
		ActorID:   sc.actorID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"adjustment_id": id})
}

func (h *handler) approveAdjustment(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	adjustmentID, ok := pathUUID(w, r, "adjustmentID")
	if !ok {
		return
	}

	if err := h.stock.ApproveAdjustment(r.Context(), sc.companyID, adjustmentID, sc.actorID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) rejectAdjustment(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}
	adjustmentID, ok := pathUUID(w, r, "adjustmentID")
	if !ok {
		return
	}

	if err := h.stock.RejectAdjustment(r.Context(), sc.companyID, adjustmentID, sc.actorID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) sweepReservations(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.scope(w, r)
	if !ok {
		return
	}

	result, err := h.reservations.ReleaseExpiredSoft(r.Context(), sc.actorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInvalidTransition), errors.Is(err, model.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrInsufficientStock):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]any{"code": code, "message": message})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
