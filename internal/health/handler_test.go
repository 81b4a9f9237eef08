package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"monolith-service/internal/health"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(ctx context.Context) error {
	return p.err
}

func serve(t *testing.T, pinger health.Pinger, path string) *httptest.ResponseRecorder {
	t.Helper()
	router := chi.NewRouter()
	health.NewHandler(pinger).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	t.Run("HealthyEvenWhenStoreDown", func(t *testing.T) {
		rec := serve(t, fakePinger{err: errors.New("connection refused")}, "/health")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "AWS Monolith API is running", body["message"])

		ts, err := time.Parse(time.RFC3339Nano, body["timestamp"])
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), ts, time.Minute)
	})

	t.Run("Ready", func(t *testing.T) {
		rec := serve(t, fakePinger{}, "/ready")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
	})

	t.Run("NotReady", func(t *testing.T) {
		rec := serve(t, fakePinger{err: errors.New("closed")}, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
	})

	t.Run("NoStore", func(t *testing.T) {
		rec := serve(t, nil, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
