package inventory

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"monolith-service/internal/httputil"
	"monolith-service/internal/metrics"
	"monolith-service/internal/resource"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewHandler(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/inventory", func(r chi.Router) {
		r.Get("/", h.GetAllItems)
		r.Post("/", h.CreateItem)
		r.Get("/{id:[0-9]+}", h.GetItem)
		r.Put("/{id:[0-9]+}", h.UpdateItem)
		r.Delete("/{id:[0-9]+}", h.DeleteItem)
	})
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		h.logger.InfoContext(r.Context(), "invalid create inventory item body", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Bad request")
		return
	}

	h.logger.InfoContext(r.Context(), "creating inventory item")
	item, err := h.service.CreateItem(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err, 0, "Failed to create inventory item")
		return
	}

	h.metrics.RecordCreated(r.Context(), ResourceName)

	httputil.RespondWithJSON(w, http.StatusCreated, item)
}

func (h *Handler) GetAllItems(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "fetching inventory")

	items, err := h.service.GetAllItems(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, 0, "Failed to fetch inventory")
		return
	}

	h.metrics.RecordListViewed(r.Context(), ResourceName)

	httputil.RespondWithJSON(w, http.StatusOK, items)
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusNotFound, "Inventory item not found")
		return
	}

	h.logger.InfoContext(r.Context(), "fetching inventory item by ID", "id", id)
	item, err := h.service.GetItemByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, id, "Failed to fetch inventory item")
		return
	}

	h.metrics.RecordViewed(r.Context(), ResourceName)

	httputil.RespondWithJSON(w, http.StatusOK, item)
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusNotFound, "Inventory item not found")
		return
	}

	var req UpdateItemRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		if _, lookupErr := h.service.GetItemByID(r.Context(), id); lookupErr != nil {
			h.handleServiceError(w, r, lookupErr, id, "Failed to update inventory item")
			return
		}
		h.logger.InfoContext(r.Context(), "invalid update inventory item body", "id", id, "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Bad request")
		return
	}

	h.logger.InfoContext(r.Context(), "updating inventory item", "id", id)
	item, err := h.service.UpdateItem(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err, id, "Failed to update inventory item")
		return
	}

	h.metrics.RecordUpdated(r.Context(), ResourceName)

	httputil.RespondWithJSON(w, http.StatusOK, item)
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusNotFound, "Inventory item not found")
		return
	}

	h.logger.InfoContext(r.Context(), "deleting inventory item", "id", id)
	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err, id, "Failed to delete inventory item")
		return
	}

	h.metrics.RecordDeleted(r.Context(), ResourceName)

	httputil.RespondWithMessage(w, http.StatusOK, "Inventory item deleted successfully")
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, id int, failure string) {
	ctx := r.Context()

	if errors.Is(err, ErrItemNotFound) {
		h.logger.InfoContext(ctx, "inventory item not found", "id", id)
		httputil.RespondWithError(w, http.StatusNotFound, "Inventory item not found")
		return
	}

	var verr *resource.ValidationError
	if errors.As(err, &verr) {
		h.logger.InfoContext(ctx, "missing required fields", "resource", ResourceName, "fields", verr.Fields)
		httputil.RespondWithError(w, http.StatusBadRequest, verr.Error())
		return
	}

	if errors.Is(err, resource.ErrInvalidInput) {
		h.logger.InfoContext(ctx, "invalid input", "resource", ResourceName, "id", id, "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.ErrorContext(ctx, "internal error", "resource", ResourceName, "id", id, "error", err)
	httputil.RespondWithError(w, http.StatusInternalServerError, failure)
}
