package contact

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
	router.Route("/contacts", func(r chi.Router) {
		r.Get("/", h.GetAllContacts)
		r.Post("/", h.CreateContact)
		r.Get("/{id:[0-9]+}", h.GetContact)
		r.Put("/{id:[0-9]+}", h.UpdateContact)
		r.Delete("/{id:[0-9]+}", h.DeleteContact)
	})
}

func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		h.logger.InfoContext(r.Context(), "invalid create contact body", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Bad request")
		return
	}

	h.logger.InfoContext(r.Context(), "creating contact")
	contact, err := h.service.CreateContact(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err, 0, "Failed to create contact")
		return
	}

	h.metrics.RecordCreated(r.Context(), ResourceName)

	httputil.RespondWithJSON(w, http.StatusCreated, contact)
}

func (h *Handler) GetAllContacts(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "fetching all contacts")

	contacts, err := h.service.GetAllContacts(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, 0, "Failed to fetch contacts")
		return
	}

	h.metrics.RecordListViewed(r.Context(), ResourceName)

	httputil.RespondWithJSON(w, http.StatusOK, contacts)
}

func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusNotFound, "Contact not found")
		return
	}

	h.logger.InfoContext(r.Context(), "fetching contact by ID", "id", id)
	contact, err := h.service.GetContactByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, id, "Failed to fetch contact")
		return
	}

	h.metrics.RecordViewed(r.Context(), ResourceName)

	httputil.RespondWithJSON(w, http.StatusOK, contact)
}

func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusNotFound, "Contact not found")
		return
	}

	var req UpdateContactRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		if _, lookupErr := h.service.GetContactByID(r.Context(), id); lookupErr != nil {
			h.handleServiceError(w, r, lookupErr, id, "Failed to update contact")
			return
		}
		h.logger.InfoContext(r.Context(), "invalid update contact body", "id", id, "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Bad request")
		return
	}

	h.logger.InfoContext(r.Context(), "updating contact", "id", id)
	contact, err := h.service.UpdateContact(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err, id, "Failed to update contact")
		return
	}

	h.metrics.RecordUpdated(r.Context(), ResourceName)

	httputil.RespondWithJSON(w, http.StatusOK, contact)
}

func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondWithError(w, http.StatusNotFound, "Contact not found")
		return
	}

	h.logger.InfoContext(r.Context(), "deleting contact", "id", id)
	if err := h.service.DeleteContact(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err, id, "Failed to delete contact")
		return
	}

	h.metrics.RecordDeleted(r.Context(), ResourceName)

	httputil.RespondWithMessage(w, http.StatusOK, "Contact deleted successfully")
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, id int, failure string) {
	ctx := r.Context()

	if errors.Is(err, ErrContactNotFound) {
		h.logger.InfoContext(ctx, "contact not found", "id", id)
		httputil.RespondWithError(w, http.StatusNotFound, "Contact not found")
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
