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

type MenuHandler struct {
	service usecase.MenuService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log.With(zap.String("handler", "menu")),
	}
}

// GetMenu handles GET /api/admin/menu (admin)
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.service.GetMenu(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get menu")
		return
	}

	utils.ResponseSuccess(w, "success", menu)
}

// GetMenuForTable handles GET /api/menu/{tableID} (guest, no auth -
// reached via the table's QR code)
func (h *MenuHandler) GetMenuForTable(w http.ResponseWriter, r *http.Request) {
	tableID := chi.URLParam(r, "tableID")
	if tableID == "" {
		utils.ResponseBadRequest(w, "Table ID is required", nil)
		return
	}

	menu, err := h.service.GetMenuForTable(r.Context(), tableID)
	if err != nil {
		handleServiceError(w, h.log, err, "get menu for table")
		return
	}

	utils.ResponseSuccess(w, "success", menu)
}

// AddItem handles POST /api/admin/menu (admin)
func (h *MenuHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req request.MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	item, err := h.service.AddItem(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add menu item")
		return
	}

	utils.ResponseCreated(w, "success", item)
}

// RemoveItem handles DELETE /api/admin/menu/{name} (admin)
func (h *MenuHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		utils.ResponseBadRequest(w, "Menu item name is required", nil)
		return
	}

	if err := h.service.RemoveItem(r.Context(), name); err != nil {
		handleServiceError(w, h.log, err, "remove menu item")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
