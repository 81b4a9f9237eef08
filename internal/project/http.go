package project

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
	router.Route("/projects", func(r chi.Router) {
		r.Get("/", h.GetAllProjects)
		r.Post("/", h.CreateProject)
		r.Get("/{id:[0-9]+}", h.GetProject)
		r.Put("/{id:[0-9]+}", h.UpdateProject)
		r.Delete("/{id:[0-9]+}", h.DeleteProject)
	})
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		h.logger.InfoContext(r.Context(), "invalid create project body", "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Bad request")
		return
	}

	h.logger.InfoContext(r.Context(), "creating project", "name", req.Name)
	project, err := h.service.CreateProject(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err, 0, "Failed to create project")
		return
	}

	h.metrics.RecordCreated(r.Context(), ResourceName)

	httputil.RespondWithJSON(w, http.StatusCreated, project)
}

func (h *Handler) GetAllProjects(w http.ResponseWriter, r *http.Request) {
	h.logger.InfoContext(r.Context(), "fetching all projects")

	projects, err := h.service.GetAllProjects(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, 0, "Failed to fetch projects")
		return
	}

	h.metrics.RecordListViewed(r.Context(), ResourceName)

	httputil.RespondWithJSON(w, http.StatusOK, projects)
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	h.logger.InfoContext(r.Context(), "fetching project by ID", "id", id)
	project, err := h.service.GetProjectByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err, id, "Failed to fetch project")
		return
	}

	h.metrics.RecordViewed(r.Context(), ResourceName)

	httputil.RespondWithJSON(w, http.StatusOK, project)
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		// An unknown id is reported before a bad body.
		if _, lookupErr := h.service.GetProjectByID(r.Context(), id); lookupErr != nil {
			h.handleServiceError(w, r, lookupErr, id, "Failed to update project")
			return
		}
		h.logger.InfoContext(r.Context(), "invalid update project body", "id", id, "error", err)
		httputil.RespondWithError(w, http.StatusBadRequest, "Bad request")
		return
	}

	h.logger.InfoContext(r.Context(), "updating project", "id", id)
	project, err := h.service.UpdateProject(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err, id, "Failed to update project")
		return
	}

	h.metrics.RecordUpdated(r.Context(), ResourceName)

	httputil.RespondWithJSON(w, http.StatusOK, project)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	h.logger.InfoContext(r.Context(), "deleting project", "id", id)
	if err := h.service.DeleteProject(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err, id, "Failed to delete project")
		return
	}

	h.metrics.RecordDeleted(r.Context(), ResourceName)

	httputil.RespondWithMessage(w, http.StatusOK, "Project deleted successfully")
}

func projectID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		// Only reachable for ids that overflow int.
		httputil.RespondWithError(w, http.StatusNotFound, "Project not found")
		return 0, false
	}
	return id, true
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, id int, failure string) {
	ctx := r.Context()

	if errors.Is(err, ErrProjectNotFound) {
		h.logger.InfoContext(ctx, "project not found", "id", id)
		httputil.RespondWithError(w, http.StatusNotFound, "Project not found")
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
