package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionGameFlow(t *testing.T) {
	router := setupTestRouter(t)
	token := startSession(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/session", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var state StateResponse
	decode(t, w, &state)
	assert.Len(t, state.Inventory, 8)
	assert.Empty(t, state.Selection)
	assert.Nil(t, state.Result)
	assert.NotNil(t, state.DiscoveredRecipes)

	for _, ing := range []string{"Milk", "Egg", "Egg"} {
		w = doJSON(t, router, http.MethodPost, "/api/v1/session/selection", token, SelectRequest{Ingredient: ing})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	decode(t, w, &state)
	assert.Equal(t, []string{"Milk", "Egg", "Egg"}, state.Selection)
	for _, item := range state.Inventory {
		assert.Equal(t, item.Name == "Milk" || item.Name == "Egg", item.Selected, item.Name)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/session/cook", token, TechniqueRequest{Technique: "Fry"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var performed PerformResponse
	decode(t, w, &performed)
	assert.Equal(t, "Omelette", performed.Dish.Name)
	assert.True(t, performed.Matched)
	require.NotNil(t, performed.State.Result)
	assert.Equal(t, "Omelette", performed.State.Result.Name)
	assert.Len(t, performed.State.Selection, 3)

	w = doJSON(t, router, http.MethodPost, "/api/v1/session/cook", token, TechniqueRequest{Technique: "Bake"})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &performed)
	assert.Equal(t, "Muddled Mess", performed.Dish.Name)
	assert.False(t, performed.Matched)

	w = doJSON(t, router, http.MethodGet, "/api/v1/session/history?limit=10", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		History []HistoryEntry `json:"history"`
	}
	decode(t, w, &history)
	assert.Len(t, history.History, 2)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/session/selection", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &state)
	assert.Empty(t, state.Selection)
	assert.Nil(t, state.Result)
}

func TestSessionCookRequiresSelection(t *testing.T) {
	router := setupTestRouter(t)
	token := startSession(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/session/cook", token, TechniqueRequest{Technique: "Whisk"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	decode(t, w, &resp)
	assert.Equal(t, "You must select ingredients before cooking!", resp["error"])
}

func TestSessionSelectUnknownIngredient(t *testing.T) {
	router := setupTestRouter(t)
	token := startSession(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/session/selection", token, SelectRequest{Ingredient: "Unicorn Horn"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionRoutesRequireToken(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/session", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionsAreIsolated(t *testing.T) {
	router := setupTestRouter(t)
	first := startSession(t, router)
	second := startSession(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/session/selection", first, SelectRequest{Ingredient: "Salt"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/session", second, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var state StateResponse
	decode(t, w, &state)
	assert.Empty(t, state.Selection)
}
