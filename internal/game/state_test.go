package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/gilded-spoon/backend/internal/kitchen"
)

func TestNewState(t *testing.T) {
	state := NewState()
	assert.Len(t, state.Inventory, 8)
	assert.Empty(t, state.Selection)
	assert.NotNil(t, state.DiscoveredRecipes)
	assert.Nil(t, state.LastResult)
	assert.True(t, state.HasIngredient("Glimmering Fish Scale"))
}

func TestSelectAllowsDuplicates(t *testing.T) {
	state := NewState()
	state, err := state.Select("Egg")
	require.NoError(t, err)
	state, err = state.Select("Egg")
	require.NoError(t, err)

	assert.Equal(t, kitchen.Ingredients("Egg", "Egg"), state.Selection)
	assert.True(t, state.IsSelected("Egg"))
	assert.False(t, state.IsSelected("Milk"))
}

func TestSelectRejectsUnknownIngredient(t *testing.T) {
	state := NewState()
	next, err := state.Select("Unicorn Horn")
	assert.ErrorIs(t, err, ErrNotInInventory)
	assert.Empty(t, next.Selection)
}

func TestCommandsDoNotMutateReceiver(t *testing.T) {
	original := NewState()
	selected, err := original.Select("Egg")
	require.NoError(t, err)

	assert.Empty(t, original.Selection)
	assert.Len(t, selected.Selection, 1)

	cooked, _, err := selected.Perform(kitchen.NewResolver(nil), kitchen.Fry)
	require.NoError(t, err)
	assert.Nil(t, selected.LastResult)
	require.NotNil(t, cooked.LastResult)
}

func TestPerform(t *testing.T) {
	resolver := kitchen.NewResolver(nil)
	state := NewState()
	for _, ing := range []kitchen.Ingredient{"Milk", "Egg", "Egg"} {
		var err error
		state, err = state.Select(ing)
		require.NoError(t, err)
	}

	state, dish, err := state.Perform(resolver, kitchen.Fry)
	require.NoError(t, err)
	assert.Equal(t, "Omelette", dish.Name)
	assert.Equal(t, &dish, state.LastResult)
	assert.Equal(t, kitchen.Ingredients("Milk", "Egg", "Egg"), state.Selection)
}

func TestPerformRequiresSelection(t *testing.T) {
	_, _, err := NewState().Perform(kitchen.NewResolver(nil), kitchen.Bake)
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestClear(t *testing.T) {
	state, err := NewState().Select("Salt")
	require.NoError(t, err)
	state, _, err = state.Perform(kitchen.NewResolver(nil), kitchen.Fry)
	require.NoError(t, err)

	state = state.Clear()
	assert.Empty(t, state.Selection)
	assert.Nil(t, state.LastResult)
	assert.Len(t, state.Inventory, 8)
}
