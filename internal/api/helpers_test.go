package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pageza/gilded-spoon/backend/internal/kitchen"
	"github.com/pageza/gilded-spoon/backend/internal/middleware"
	"github.com/pageza/gilded-spoon/backend/internal/service"
	"github.com/pageza/gilded-spoon/backend/internal/testhelpers"
)

const testJWTSecret = "test-jwt-secret"

// setupTestRouter wires a router with an in-memory session store and a sqlite journal
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	kitchenService := service.NewKitchenService(
		kitchen.NewResolver(nil),
		service.NewMemorySessionStore(time.Hour),
		service.NewGormJournal(db),
	)
	tokens := service.NewTokenService(testJWTSecret, time.Hour)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	RegisterRoutes(router, NewKitchenHandler(kitchenService, tokens), NewHealthHandler(nil), nil)
	return router
}

// doJSON sends body as JSON and returns the recorder
func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decode unmarshals the recorder body into v
func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

// startSession creates a game and returns its token
func startSession(t *testing.T, router http.Handler) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/sessions", "", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp SessionResponse
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
