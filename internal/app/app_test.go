package app_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"monolith-service/internal/app"
	"monolith-service/internal/config"
	"monolith-service/internal/metrics"
	"monolith-service/internal/middleware"
	"monolith-service/testing/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter(t *testing.T) {
	db := testdb.NewSQLite(t, app.Models()...)
	router, err := app.NewRouter(app.Dependencies{
		DB:          db,
		Logger:      discardLogger(),
		Metrics:     metrics.NewMock(),
		CORSOrigins: []string{"*"},
	})
	require.NoError(t, err)

	t.Run("ResourceFamilies", func(t *testing.T) {
		for _, family := range []string{"/api/projects", "/api/inventory", "/api/contacts"} {
			w := serve(router, http.MethodGet, family, "")
			assert.Equal(t, http.StatusOK, w.Code, family)
			assert.JSONEq(t, `[]`, w.Body.String(), family)
		}
	})

	t.Run("Health", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/health", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "AWS Monolith API is running", body["message"])
		assert.NotEmpty(t, body["timestamp"])
	})

	t.Run("Ready", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/ready", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UnknownAPIPath", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/unknown", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Resource not found"}`, w.Body.String())
	})

	t.Run("NonIntegerID", func(t *testing.T) {
		for _, path := range []string{"/api/projects/abc", "/api/inventory/1.5", "/api/contacts/-1"} {
			w := serve(router, http.MethodGet, path, "")
			assert.Equal(t, http.StatusNotFound, w.Code, path)
			assert.JSONEq(t, `{"error":"Resource not found"}`, w.Body.String(), path)
		}
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		w := serve(router, http.MethodPatch, "/api/projects/1", `{}`)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
	})

	t.Run("RequestIDHeader", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/health", "")
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

		w = serve(router, http.MethodGet, "/api/nowhere", "")
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("CORS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Frontend", func(t *testing.T) {
		for _, path := range []string{"/", "/projects", "/inventory", "/contacts"} {
			w := serve(router, http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, w.Code, path)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html", path)
		}
	})

	t.Run("CrossFamilyIndependence", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/api/projects", `{"name":"Shared","owner":"o","status":"active"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		w = serve(router, http.MethodPost, "/api/contacts", `{"first_name":"a","last_name":"b","email":"shared@example.com"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = serve(router, http.MethodDelete, "/api/projects/1", "")
		require.Equal(t, http.StatusOK, w.Code)

		w = serve(router, http.MethodGet, "/api/contacts/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRouter_StoreClosed(t *testing.T) {
	db := testdb.NewSQLite(t, app.Models()...)
	router, err := app.NewRouter(app.Dependencies{DB: db, Logger: discardLogger()})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	w := serve(router, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")

	w = serve(router, http.MethodGet, "/api/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = serve(router, http.MethodGet, "/api/inventory", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch inventory"}`, w.Body.String())
}

func TestApp_NewAndShutdown(t *testing.T) {
	cfg, err := config.Load("test", t.TempDir())
	require.NoError(t, err)
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = "file:app_test?mode=memory&cache=shared"
	cfg.Events.Driver = "none"
	cfg.Telemetry.Enabled = false

	ctx := context.Background()
	application, err := app.New(ctx, cfg, discardLogger())
	require.NoError(t, err)

	w := serve(application.Handler(), http.MethodPost, "/api/inventory",
		`{"name":"n","sku":"s","quantity":1,"unit_price":1,"category":"c","reorder_level":1}`)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	require.NoError(t, application.Shutdown(ctx))
}

func TestMigrate(t *testing.T) {
	cfg, err := config.Load("test", t.TempDir())
	require.NoError(t, err)
	cfg.Database.DSN = "file:migrate_test?mode=memory&cache=shared"

	require.NoError(t, app.Migrate(context.Background(), cfg, discardLogger()))
}
