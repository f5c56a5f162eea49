package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/nopasawa/Suki/internal/dto/request"
	"github.com/nopasawa/Suki/internal/dto/response"
	"github.com/nopasawa/Suki/internal/usecase"
	"github.com/nopasawa/Suki/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TableHandler struct {
	service usecase.TableService
	log     *zap.Logger
}

func NewTableHandler(service usecase.TableService, log *zap.Logger) *TableHandler {
	return &TableHandler{
		service: service,
		log:     log.With(zap.String("handler", "table")),
	}
}

// ListAvailable handles GET /api/tables/available (cashier)
func (h *TableHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	available, err := h.service.ListAvailable(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list available tables")
		return
	}

	utils.ResponseSuccess(w, "success", &response.AvailableTablesResponse{Available: available})
}

// ListTables handles GET /api/tables (cashier)
func (h *TableHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.service.ListTables(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list tables")
		return
	}

	utils.ResponseSuccess(w, "success", tables)
}

// Open handles POST /api/tables (cashier)
func (h *TableHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req request.OpenTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	table, err := h.service.Open(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "open table")
		return
	}

	utils.ResponseCreated(w, "success", table)
}

// Checkout handles POST /api/tables/{tableID}/checkout (cashier)
func (h *TableHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	tableID := chi.URLParam(r, "tableID")
	if tableID == "" {
		utils.ResponseBadRequest(w, "Table ID is required", nil)
		return
	}

	if err := h.service.Checkout(r.Context(), tableID); err != nil {
		handleServiceError(w, h.log, err, "checkout table")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
