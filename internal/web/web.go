package web

import (
	"embed"
	"io/fs"
	"net/http"

	"monolith-service/internal/httputil"

	"github.com/go-chi/chi/v5"
)

//go:embed static
var content embed.FS

// Pages are the frontend entry points that render index.html.
var Pages = []string{"/", "/projects", "/inventory", "/contacts"}

type Handler struct {
	index  []byte
	assets http.Handler
}

func NewHandler() (*Handler, error) {
	index, err := content.ReadFile("static/index.html")
	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(content, "static")
	if err != nil {
		return nil, err
	}

	return &Handler{
		index:  index,
		assets: http.StripPrefix("/static/", http.FileServer(http.FS(static))),
	}, nil
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	for _, page := range Pages {
		router.Get(page, h.Index)
	}
	router.Handle("/static/*", h.assets)
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(h.index)
}

// NotFound is the JSON fallback for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithError(w, http.StatusNotFound, "Resource not found")
}

// MethodNotAllowed is the JSON fallback for a known path with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
