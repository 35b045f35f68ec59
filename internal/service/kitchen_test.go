package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/gilded-spoon/backend/internal/game"
	"github.com/pageza/gilded-spoon/backend/internal/kitchen"
	"github.com/pageza/gilded-spoon/backend/internal/mocks"
	"github.com/pageza/gilded-spoon/backend/internal/model"
	"github.com/pageza/gilded-spoon/backend/internal/testhelpers"
)

func newTestKitchenService(t *testing.T) *KitchenService {
	db := testhelpers.SetupTestDatabase(t)
	return NewKitchenService(kitchen.NewResolver(nil), NewMemorySessionStore(time.Hour), NewGormJournal(db))
}

func TestKitchenServiceSessionFlow(t *testing.T) {
	svc := newTestKitchenService(t)
	ctx := context.Background()

	id, state, err := svc.NewSession(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Selection)

	for _, ing := range []kitchen.Ingredient{"Flour", "Salt"} {
		_, err = svc.Select(ctx, id, ing)
		require.NoError(t, err)
	}

	state, dish, err := svc.Perform(ctx, id, kitchen.Bake)
	require.NoError(t, err)
	assert.Equal(t, "Hardtack", dish.Name)
	require.NotNil(t, state.LastResult)
	assert.Equal(t, "Hardtack", state.LastResult.Name)

	stored, err := svc.State(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, state, stored)

	history, err := svc.History(ctx, id, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Flour,Salt+Bake", history[0].CombinationKey)
	assert.True(t, history[0].Matched)
	assert.Equal(t, model.StringArray{"Flour", "Salt"}, history[0].Ingredients)

	state, err = svc.Clear(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, state.Selection)
	assert.Nil(t, state.LastResult)
}

func TestKitchenServicePerformEmptySelection(t *testing.T) {
	svc := newTestKitchenService(t)
	ctx := context.Background()

	id, _, err := svc.NewSession(ctx)
	require.NoError(t, err)

	_, _, err = svc.Perform(ctx, id, kitchen.Fry)
	assert.ErrorIs(t, err, game.ErrEmptySelection)

	history, err := svc.History(ctx, id, 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestKitchenServiceUnknownSession(t *testing.T) {
	svc := newTestKitchenService(t)
	ctx := context.Background()

	_, err := svc.Select(ctx, uuid.New(), "Egg")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.History(ctx, uuid.New(), 10)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestKitchenServiceCook(t *testing.T) {
	svc := newTestKitchenService(t)
	ctx := context.Background()

	dish, err := svc.Cook(ctx, kitchen.Ingredients("Salt"), kitchen.Fry)
	require.NoError(t, err)
	assert.True(t, kitchen.IsFallback(dish))

	_, err = svc.Cook(ctx, nil, kitchen.Fry)
	assert.ErrorIs(t, err, game.ErrEmptySelection)

	assert.Equal(t, 7, svc.RecipeCount())
}

func TestKitchenServiceJournalFailureDoesNotFailCook(t *testing.T) {
	journal := new(mocks.MockJournal)
	journal.On("Record", mock.Anything, mock.MatchedBy(func(a *model.CookAttempt) bool {
		return a.CombinationKey == "Egg+Fry" && a.Matched && a.SessionID == nil
	})).Return(errors.New("disk full")).Once()

	svc := NewKitchenService(kitchen.NewResolver(nil), NewMemorySessionStore(time.Hour), journal)
	dish, err := svc.Cook(context.Background(), kitchen.Ingredients("Egg"), kitchen.Fry)
	require.NoError(t, err)
	assert.Equal(t, "Fried Egg", dish.Name)

	journal.AssertExpectations(t)
}

func TestKitchenServiceWithoutJournal(t *testing.T) {
	svc := NewKitchenService(kitchen.NewResolver(nil), NewMemorySessionStore(time.Hour), nil)
	ctx := context.Background()

	id, _, err := svc.NewSession(ctx)
	require.NoError(t, err)

	history, err := svc.History(ctx, id, 5)
	require.NoError(t, err)
	assert.Empty(t, history)
}
