package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"monolith-service/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	h, err := web.NewHandler()
	require.NoError(t, err)

	router := chi.NewRouter()
	router.NotFound(web.NotFound)
	h.RegisterRoutes(router)
	return router
}

func TestWeb(t *testing.T) {
	router := newRouter(t)

	t.Run("Pages", func(t *testing.T) {
		for _, page := range web.Pages {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, page, nil))

			assert.Equal(t, http.StatusOK, rec.Code, page)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, rec.Body.String(), "/static/js/app.js")
		}
	})

	t.Run("Asset", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/js/app.js", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "API_BASE")
	})

	t.Run("UnknownPath", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Resource not found"}`, rec.Body.String())
	})
}
