package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/nopasawa/Suki/internal/dto/request"
	"github.com/nopasawa/Suki/internal/usecase"
	"github.com/nopasawa/Suki/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// Submit handles POST /api/orders/{tableID} (guest, no auth - reached
// via the table's QR code)
func (h *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	tableID := chi.URLParam(r, "tableID")
	if tableID == "" {
		utils.ResponseBadRequest(w, "Table ID is required", nil)
		return
	}

	var req request.SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	batch, err := h.service.SubmitItems(r.Context(), tableID, req.Items)
	if err != nil {
		handleServiceError(w, h.log, err, "submit order")
		return
	}

	utils.ResponseCreated(w, "success", batch)
}

// ListPending handles GET /api/kitchen/orders (chef)
func (h *OrderHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.service.ListPendingByTable(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list pending orders")
		return
	}

	utils.ResponseSuccess(w, "success", grouped)
}

// Serve handles POST /api/kitchen/orders/{orderID}/serve (chef)
func (h *OrderHandler) Serve(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		utils.ResponseBadRequest(w, "Order ID is required", nil)
		return
	}

	order, err := h.service.Serve(r.Context(), orderID)
	if err != nil {
		handleServiceError(w, h.log, err, "serve order")
		return
	}

	utils.ResponseSuccess(w, "success", order)
}

// ListByTable handles GET /api/admin/tables/{tableID}/orders (admin)
func (h *OrderHandler) ListByTable(w http.ResponseWriter, r *http.Request) {
	tableID := chi.URLParam(r, "tableID")
	if tableID == "" {
		utils.ResponseBadRequest(w, "Table ID is required", nil)
		return
	}

	orders, err := h.service.ListByTable(r.Context(), tableID)
	if err != nil {
		handleServiceError(w, h.log, err, "list orders by table")
		return
	}

	utils.ResponseSuccess(w, "success", orders)
}
