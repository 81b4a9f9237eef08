package contact_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"monolith-service/internal/contact"
	"monolith-service/internal/metrics"
	"monolith-service/internal/resource"
	"monolith-service/testing/testdb"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactHandler(t *testing.T) {
	db := testdb.NewSQLite(t, (*contact.Contact)(nil))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo := contact.NewRepository(db, metrics.NewMock())
	service := contact.NewService(repo, resource.NewNotifier(nil, logger))
	handler := contact.NewHandler(service, logger, metrics.NewMock())

	router := chi.NewRouter()
	router.Route("/api", handler.RegisterRoutes)

	sendTo := func(t *testing.T, r http.Handler, method, path string, reader io.Reader) (int, map[string]any) {
		t.Helper()
		req := httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var out map[string]any
		if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		}
		return w.Code, out
	}

	send := func(t *testing.T, method, path string, body any) (int, map[string]any) {
		t.Helper()
		var reader io.Reader
		if body != nil {
			data, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(data)
		}
		return sendTo(t, router, method, path, reader)
	}

	sendRaw := func(t *testing.T, method, path, body string) (int, map[string]any) {
		t.Helper()
		return sendTo(t, router, method, path, strings.NewReader(body))
	}

	contactPath := func(id any) string {
		return "/api/contacts/" + strconv.Itoa(int(id.(float64)))
	}

	reset := func(t *testing.T) {
		testdb.TruncateSQLite(t, db, contact.TableName)
	}

	t.Run("CreateContact_Defaults", func(t *testing.T) {
		reset(t)

		code, got := send(t, http.MethodPost, "/api/contacts", map[string]any{
			"first_name": "Ada",
			"last_name":  "Lovelace",
			"email":      "ada@example.com",
			"company":    "Analytical Engines",
			"notes":      nil,
		})
		require.Equal(t, http.StatusCreated, code)
		assert.NotZero(t, got["id"])
		assert.Equal(t, "active", got["status"])
		assert.Equal(t, "Analytical Engines", got["company"])
		assert.Equal(t, "", got["phone"])
		assert.Nil(t, got["notes"])
		assert.Equal(t, got["created_at"], got["updated_at"])
	})

	t.Run("CreateContact_NullStatusDefaults", func(t *testing.T) {
		reset(t)

		code, got := send(t, http.MethodPost, "/api/contacts", map[string]any{
			"first_name": "A", "last_name": "B", "email": "ab@example.com", "status": nil,
		})
		require.Equal(t, http.StatusCreated, code)
		assert.Equal(t, "active", got["status"])
	})

	t.Run("CreateContact_MissingEmail", func(t *testing.T) {
		reset(t)

		code, got := send(t, http.MethodPost, "/api/contacts", map[string]any{"first_name": "A", "last_name": "B"})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Missing required fields: first_name, last_name, email", got["error"])
	})

	t.Run("CreateContact_DuplicateEmail", func(t *testing.T) {
		reset(t)

		payload := map[string]any{"first_name": "A", "last_name": "B", "email": "dup@example.com"}
		code, _ := send(t, http.MethodPost, "/api/contacts", payload)
		require.Equal(t, http.StatusCreated, code)

		code, got := send(t, http.MethodPost, "/api/contacts", payload)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "Failed to create contact", got["error"])
	})

	t.Run("UpdateContact", func(t *testing.T) {
		reset(t)

		_, created := send(t, http.MethodPost, "/api/contacts", map[string]any{
			"first_name": "Grace", "last_name": "Hopper", "email": "grace@example.com", "phone": "555-0100",
		})

		code, updated := send(t, http.MethodPut, contactPath(created["id"]), map[string]any{
			"job_title": "Rear Admiral",
			"phone":     nil,
			"status":    "inactive",
		})
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Rear Admiral", updated["job_title"])
		assert.Nil(t, updated["phone"])
		assert.Equal(t, "inactive", updated["status"])
		assert.Equal(t, "Grace", updated["first_name"])
		assert.Equal(t, created["email"], updated["email"])

		code, got := send(t, http.MethodPut, contactPath(created["id"]), map[string]any{"status": nil})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "status cannot be null", got["error"])
	})

	t.Run("UpdateContact_RoundTrip", func(t *testing.T) {
		reset(t)

		_, created := send(t, http.MethodPost, "/api/contacts", map[string]any{
			"first_name": "R", "last_name": "T", "email": "rt@example.com", "department": nil,
		})

		code, updated := send(t, http.MethodPut, contactPath(created["id"]), created)
		require.Equal(t, http.StatusOK, code)
		for key, value := range created {
			if key == "updated_at" {
				continue
			}
			assert.Equal(t, value, updated[key], key)
		}
	})

	t.Run("DeleteContact", func(t *testing.T) {
		reset(t)

		_, created := send(t, http.MethodPost, "/api/contacts", map[string]any{
			"first_name": "D", "last_name": "E", "email": "de@example.com",
		})

		code, got := send(t, http.MethodDelete, contactPath(created["id"]), nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Contact deleted successfully", got["message"])

		code, got = send(t, http.MethodDelete, contactPath(created["id"]), nil)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "Contact not found", got["error"])
	})

	t.Run("MissingID", func(t *testing.T) {
		reset(t)

		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			code, got := send(t, method, contactPath(float64(31337)), map[string]any{"email": nil})
			assert.Equal(t, http.StatusNotFound, code, method)
			assert.Equal(t, "Contact not found", got["error"])
		}
	})

	t.Run("CreateContact_MalformedJSON", func(t *testing.T) {
		reset(t)

		code, got := sendRaw(t, http.MethodPost, "/api/contacts", `{"first_name": "A",`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Bad request", got["error"])

		code, got = sendRaw(t, http.MethodPost, "/api/contacts", `{"first_name": 1, "last_name": "B", "email": "x@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Bad request", got["error"])

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contacts", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("UpdateContact_MalformedBody", func(t *testing.T) {
		reset(t)

		code, got := sendRaw(t, http.MethodPut, contactPath(float64(4242)), `{"status": `)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "Contact not found", got["error"])

		_, created := send(t, http.MethodPost, "/api/contacts", map[string]any{
			"first_name": "M", "last_name": "B", "email": "mb@example.com",
		})
		code, got = sendRaw(t, http.MethodPut, contactPath(created["id"]), `{"status": `)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Bad request", got["error"])
	})

	t.Run("StoreFailure", func(t *testing.T) {
		closed := testdb.NewSQLite(t, (*contact.Contact)(nil))
		require.NoError(t, closed.Close())

		brokenRouter := chi.NewRouter()
		contact.NewHandler(
			contact.NewService(contact.NewRepository(closed, metrics.NewMock()), nil),
			logger, metrics.NewMock(),
		).RegisterRoutes(brokenRouter)

		code, got := sendTo(t, brokenRouter, http.MethodGet, "/contacts", nil)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "Failed to fetch contacts", got["error"])

		code, got = sendTo(t, brokenRouter, http.MethodGet, "/contacts/1", nil)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "Failed to fetch contact", got["error"])
	})
}
