package app

import (
	"log/slog"
	"net/http"

	"monolith-service/internal/contact"
	"monolith-service/internal/health"
	"monolith-service/internal/inventory"
	"monolith-service/internal/metrics"
	"monolith-service/internal/middleware"
	"monolith-service/internal/project"
	"monolith-service/internal/resource"
	"monolith-service/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Dependencies are the collaborators shared by every resource family.
type Dependencies struct {
	DB          *bun.DB
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	Publisher   resource.Publisher
	CORSOrigins []string
}

// Models lists the tables created by migrations.
func Models() []interface{} {
	return []interface{}{
		(*project.Project)(nil),
		(*inventory.Item)(nil),
		(*contact.Contact)(nil),
	}
}

// NewRouter wires the /api resource handlers, health endpoints and the
// static frontend behind the shared middleware stack.
func NewRouter(deps Dependencies) (http.Handler, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m := deps.Metrics
	if m == nil {
		m = metrics.NewMock()
	}

	webHandler, err := web.NewHandler()
	if err != nil {
		return nil, err
	}

	var pinger health.Pinger
	if deps.DB != nil {
		pinger = deps.DB
	}
	healthHandler := health.NewHandler(pinger)

	notifier := resource.NewNotifier(deps.Publisher, logger)

	projectHandler := project.NewHandler(
		project.NewService(project.NewRepository(deps.DB, m), notifier), logger, m)
	inventoryHandler := inventory.NewHandler(
		inventory.NewService(inventory.NewRepository(deps.DB, m), notifier), logger, m)
	contactHandler := contact.NewHandler(
		contact.NewService(contact.NewRepository(deps.DB, m), notifier), logger, m)

	router := chi.NewRouter()
	router.Use(middleware.CORS(deps.CORSOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Recoverer(logger))

	router.NotFound(web.NotFound)
	router.MethodNotAllowed(web.MethodNotAllowed)

	router.Route("/api", func(api chi.Router) {
		healthHandler.RegisterRoutes(api)
		projectHandler.RegisterRoutes(api)
		inventoryHandler.RegisterRoutes(api)
		contactHandler.RegisterRoutes(api)
	})

	webHandler.RegisterRoutes(router)

	return router, nil
}
