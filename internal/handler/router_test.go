//go:build unit

package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"roomhub/internal/handler"
	"roomhub/internal/handler/api"
	"roomhub/internal/handler/middleware"
	"roomhub/internal/pkg/authtoken"
	"roomhub/internal/pkg/clock"
	"roomhub/internal/pkg/config"
	"roomhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestEngineWithConfig(t, config.NewTestConfig(t.TempDir()))
}

func newTestEngineWithConfig(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clk := clock.NewMockClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))

	listingStore := usecase.NewListingStore(cfg)
	projector := usecase.NewCatalogProjector(usecase.NewCatalogStore(cfg))
	listings := usecase.NewListingUseCase(listingStore, projector, clk)
	bookings := usecase.NewBookingUseCase(usecase.NewBookingStore(cfg), listingStore, clk)
	presence := usecase.NewPresenceTracker(usecase.NewVisitStore(cfg), clk, cfg)

	engine := gin.New()
	handler.NewRouter(
		engine,
		cfg,
		api.NewListingHandler(listings),
		api.NewBookingHandler(bookings),
		api.NewCatalogHandler(projector),
		api.NewPresenceHandler(presence),
		middleware.NewAuthMiddleware(authtoken.NewService(testSecret)),
	)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func validListingBody() map[string]any {
	return map[string]any{
		"owner":    "partner#00001",
		"title":    "Phòng A",
		"type":     "Phòng trọ",
		"price":    1500000,
		"area":     "20m²",
		"address":  "12 Nguyễn Trãi",
		"district": "Thanh Xuân",
		"city":     "Hà Nội",
		"images":   []string{"a.jpg"},
	}
}

func TestHealthEndpoint(t *testing.T) {
	engine := newTestEngine(t)
	rec := doJSON(t, engine, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestListingEndpoints(t *testing.T) {
	engine := newTestEngine(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/listings", validListingBody(), nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.EqualValues(t, 1, decodeBody(t, rec)["id"])

	t.Run("missing field returns 400 with the field name", func(t *testing.T) {
		body := validListingBody()
		delete(body, "title")
		rec := doJSON(t, engine, http.MethodPost, "/api/listings", body, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "title", decodeBody(t, rec)["field"])
	})

	t.Run("approve projects into the catalog", func(t *testing.T) {
		rec := doJSON(t, engine, http.MethodPut, "/api/listings/1/approve",
			map[string]any{"moderator": "f1"}, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "approved", decodeBody(t, rec)["status"])

		rec = doJSON(t, engine, http.MethodGet, "/api/catalog", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var entries []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "new_1", entries[0]["id"])
	})

	t.Run("double approve returns 409", func(t *testing.T) {
		rec := doJSON(t, engine, http.MethodPut, "/api/listings/1/approve",
			map[string]any{"moderator": "f1"}, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown listing returns 404", func(t *testing.T) {
		rec := doJSON(t, engine, http.MethodGet, "/api/listings/99", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		rec := doJSON(t, engine, http.MethodGet, "/api/listings/abc", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete request from non-owner returns 403", func(t *testing.T) {
		rec := doJSON(t, engine, http.MethodPut, "/api/listings/1/request-delete",
			map[string]any{"owner": "partner#00002", "reason": "x"}, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("approved delete removes listing and catalog entry", func(t *testing.T) {
		rec := doJSON(t, engine, http.MethodPut, "/api/listings/1/request-delete",
			map[string]any{"owner": "partner#00001", "reason": "chuyển nhà"}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, engine, http.MethodPut, "/api/listings/1/approve-delete",
			map[string]any{"moderator": "f1"}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, engine, http.MethodGet, "/api/listings/1", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = doJSON(t, engine, http.MethodGet, "/api/catalog", nil, nil)
		var entries []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
		assert.Empty(t, entries)
	})
}

func TestListingActorFromToken(t *testing.T) {
	engine := newTestEngine(t)

	tokens := authtoken.NewService(testSecret)
	token, err := tokens.GenerateToken("partner#00001", authtoken.RolePartner, time.Hour)
	require.NoError(t, err)

	body := validListingBody()
	delete(body, "owner")
	rec := doJSON(t, engine, http.MethodPost, "/api/listings", body,
		map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/listings/1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partner#00001", decodeBody(t, rec)["owner"])
}

// Actor resolution runs before the logging middleware, so a request
// authenticated by token shows up in the log with its actor_id.
func TestRequestLogCarriesActorID(t *testing.T) {
	cfg := config.NewTestConfig(t.TempDir())
	cfg.Log.Level = "info"

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	engine := newTestEngineWithConfig(t, cfg)

	tokens := authtoken.NewService(testSecret)
	token, err := tokens.GenerateToken("partner#00001", authtoken.RolePartner, time.Hour)
	require.NoError(t, err)

	body := validListingBody()
	delete(body, "owner")
	rec := doJSON(t, engine, http.MethodPost, "/api/listings", body,
		map[string]string{"Authorization": "Bearer " + token})

	os.Stdout = origStdout
	require.NoError(t, w.Close())
	logged, err := io.ReadAll(r)
	require.NoError(t, err)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(logged), "actor_id=")
	assert.Contains(t, string(logged), "partner#00001")
}

func TestBookingEndpoints(t *testing.T) {
	engine := newTestEngine(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/bookings", map[string]any{
		"catalogId":  "new_1",
		"title":      "Phòng A",
		"price":      "1.5 - 2.5 triệu",
		"name":       "Nguyen A",
		"phone":      "0900000000",
		"nationalId": "123",
		"date":       "2024-01-15",
		"time":       "09:00",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.EqualValues(t, 1, decodeBody(t, rec)["id"])

	rec = doJSON(t, engine, http.MethodPut, "/api/bookings/1/confirm",
		map[string]any{"actor": "partner#00001"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "confirmed", body["status"])
	assert.Equal(t, "1500000 - 2500000", body["property_price"])

	rec = doJSON(t, engine, http.MethodPut, "/api/bookings/1/cancel",
		map[string]any{"actor": "customer", "reason": "đổi lịch"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cancelled", decodeBody(t, rec)["status"])

	rec = doJSON(t, engine, http.MethodPut, "/api/bookings/1/cancel",
		map[string]any{"actor": "customer"}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, engine, http.MethodPut, "/api/bookings/99/confirm",
		map[string]any{"actor": "partner#00001"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogViewEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/listings", validListingBody(), nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, engine, http.MethodPut, "/api/listings/1/approve",
		map[string]any{"moderator": "f1"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/catalog/new_1/view", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decodeBody(t, rec)["views"])

	rec = doJSON(t, engine, http.MethodPost, "/api/catalog/new_99/view", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPresenceEndpoints(t *testing.T) {
	engine := newTestEngine(t)

	// No session id yet: the server issues one.
	rec := doJSON(t, engine, http.MethodPost, "/api/presence/ping", map[string]any{}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	issued, _ := body["sessionId"].(string)
	require.NotEmpty(t, issued)
	assert.EqualValues(t, 1, body["online"])
	assert.EqualValues(t, 1, body["total"])

	// Subsequent pings carry the issued id and do not inflate the total.
	rec = doJSON(t, engine, http.MethodPost, "/api/presence/ping",
		map[string]any{"sessionId": issued}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.EqualValues(t, 1, body["online"])
	assert.EqualValues(t, 1, body["total"])

	rec = doJSON(t, engine, http.MethodPost, "/api/presence/disconnect",
		map[string]any{"sessionId": issued}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
