// Package game owns a player's kitchen state. Every command returns a new
// snapshot and leaves the receiver untouched.
package game

import (
	"errors"
	"fmt"

	"github.com/pageza/gilded-spoon/backend/internal/kitchen"
)

var (
	// ErrEmptySelection is returned when a technique is applied to nothing
	ErrEmptySelection = errors.New("no ingredients selected")
	// ErrNotInInventory is returned when selecting an ingredient the player does not have
	ErrNotInInventory = errors.New("ingredient is not in the inventory")
)

// StartingInventory is what every new game begins with
var StartingInventory = []kitchen.Ingredient{
	"Egg",
	"Flour",
	"Milk",
	"Glimmering Fish Scale",
	"Cave Mushroom",
	"Salt",
	"Sugar",
	"Dragon Pepper",
}

// State is the full state of one game
type State struct {
	Inventory []kitchen.Ingredient `json:"inventory"`
	Selection []kitchen.Ingredient `json:"selection"`
	// DiscoveredRecipes is reserved for recipe discovery and stays empty.
	DiscoveredRecipes []string      `json:"discovered_recipes"`
	LastResult        *kitchen.Dish `json:"last_result,omitempty"`
}

// NewState returns a fresh game with the starting inventory
func NewState() State {
	inventory := make([]kitchen.Ingredient, len(StartingInventory))
	copy(inventory, StartingInventory)
	return State{
		Inventory:         inventory,
		Selection:         []kitchen.Ingredient{},
		DiscoveredRecipes: []string{},
	}
}

// Select adds ingredient to the selection. Selecting it again adds another.
func (s State) Select(ingredient kitchen.Ingredient) (State, error) {
	if !s.HasIngredient(ingredient) {
		return s, fmt.Errorf("%w: %s", ErrNotInInventory, ingredient)
	}
	next := s.clone()
	next.Selection = append(next.Selection, ingredient)
	return next, nil
}

// Clear empties the selection and forgets the last result
func (s State) Clear() State {
	next := s.clone()
	next.Selection = []kitchen.Ingredient{}
	next.LastResult = nil
	return next
}

// Perform applies technique to the current selection. The selection is kept
// so the player can try another technique on the same ingredients.
func (s State) Perform(resolver *kitchen.Resolver, technique kitchen.Technique) (State, kitchen.Dish, error) {
	if len(s.Selection) == 0 {
		return s, kitchen.Dish{}, ErrEmptySelection
	}
	dish := resolver.Cook(s.Selection, technique)
	next := s.clone()
	next.LastResult = &dish
	return next, dish, nil
}

// HasIngredient reports whether ingredient is in the inventory
func (s State) HasIngredient(ingredient kitchen.Ingredient) bool {
	for _, ing := range s.Inventory {
		if ing == ingredient {
			return true
		}
	}
	return false
}

// IsSelected reports whether ingredient appears in the selection at least once
func (s State) IsSelected(ingredient kitchen.Ingredient) bool {
	for _, ing := range s.Selection {
		if ing == ingredient {
			return true
		}
	}
	return false
}

func (s State) clone() State {
	next := State{
		Inventory:         append([]kitchen.Ingredient{}, s.Inventory...),
		Selection:         append([]kitchen.Ingredient{}, s.Selection...),
		DiscoveredRecipes: append([]string{}, s.DiscoveredRecipes...),
	}
	if s.LastResult != nil {
		dish := *s.LastResult
		next.LastResult = &dish
	}
	return next
}
