package api

import (
	"time"

	"github.com/pageza/gilded-spoon/backend/internal/game"
	"github.com/pageza/gilded-spoon/backend/internal/kitchen"
	"github.com/pageza/gilded-spoon/backend/internal/model"
)

// CookRequest is the body of the stateless cook endpoint
type CookRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
	Technique   string   `json:"technique" binding:"required"`
}

// SelectRequest adds one ingredient to the session's selection
type SelectRequest struct {
	Ingredient string `json:"ingredient" binding:"required"`
}

// TechniqueRequest applies a technique to the session's selection
type TechniqueRequest struct {
	Technique string `json:"technique" binding:"required"`
}

// DishResponse wraps a cook result
type DishResponse struct {
	Dish    kitchen.Dish `json:"dish"`
	Matched bool         `json:"matched"`
}

// InventoryItem is one inventory entry with its highlight flag
type InventoryItem struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// StateResponse is everything a client needs to draw the kitchen
type StateResponse struct {
	Inventory         []InventoryItem `json:"inventory"`
	Selection         []string        `json:"selection"`
	DiscoveredRecipes []string        `json:"discovered_recipes"`
	Result            *kitchen.Dish   `json:"result"`
}

// SessionResponse is returned when a new game starts
type SessionResponse struct {
	Token     string        `json:"token"`
	SessionID string        `json:"session_id"`
	State     StateResponse `json:"state"`
}

// PerformResponse is returned after applying a technique in a session
type PerformResponse struct {
	DishResponse
	State StateResponse `json:"state"`
}

// HistoryEntry is one journal line
type HistoryEntry struct {
	Ingredients []string  `json:"ingredients"`
	Technique   string    `json:"technique"`
	Dish        string    `json:"dish"`
	Matched     bool      `json:"matched"`
	CookedAt    time.Time `json:"cooked_at"`
}

func newStateResponse(state game.State) StateResponse {
	resp := StateResponse{
		Inventory:         make([]InventoryItem, len(state.Inventory)),
		Selection:         make([]string, len(state.Selection)),
		DiscoveredRecipes: state.DiscoveredRecipes,
		Result:            state.LastResult,
	}
	if resp.DiscoveredRecipes == nil {
		resp.DiscoveredRecipes = []string{}
	}
	for i, ing := range state.Inventory {
		resp.Inventory[i] = InventoryItem{Name: string(ing), Selected: state.IsSelected(ing)}
	}
	for i, ing := range state.Selection {
		resp.Selection[i] = string(ing)
	}
	return resp
}

func newDishResponse(dish kitchen.Dish) DishResponse {
	return DishResponse{Dish: dish, Matched: !kitchen.IsFallback(dish)}
}

func newHistoryEntries(attempts []model.CookAttempt) []HistoryEntry {
	entries := make([]HistoryEntry, len(attempts))
	for i, a := range attempts {
		entries[i] = HistoryEntry{
			Ingredients: []string(a.Ingredients),
			Technique:   a.Technique,
			Dish:        a.DishName,
			Matched:     a.Matched,
			CookedAt:    a.CreatedAt,
		}
	}
	return entries
}
