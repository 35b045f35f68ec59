package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/pageza/gilded-spoon/backend/internal/game"
	"github.com/pageza/gilded-spoon/backend/internal/kitchen"
	"github.com/pageza/gilded-spoon/backend/internal/model"
)

const defaultHistoryLimit = 20

// KitchenService runs game commands against stored sessions
type KitchenService struct {
	resolver *kitchen.Resolver
	sessions SessionStore
	journal  Journal
}

var _ IKitchenService = (*KitchenService)(nil)

// NewKitchenService creates a KitchenService. journal may be nil, in which
// case attempts are not recorded.
func NewKitchenService(resolver *kitchen.Resolver, sessions SessionStore, journal Journal) *KitchenService {
	return &KitchenService{
		resolver: resolver,
		sessions: sessions,
		journal:  journal,
	}
}

// NewSession starts a game with the starting inventory
func (s *KitchenService) NewSession(ctx context.Context) (uuid.UUID, game.State, error) {
	state := game.NewState()
	id, err := s.sessions.Create(ctx, state)
	if err != nil {
		return uuid.Nil, game.State{}, fmt.Errorf("failed to create session: %w", err)
	}
	return id, state, nil
}

func (s *KitchenService) State(ctx context.Context, sessionID uuid.UUID) (game.State, error) {
	return s.sessions.Get(ctx, sessionID)
}

func (s *KitchenService) Select(ctx context.Context, sessionID uuid.UUID, ingredient kitchen.Ingredient) (game.State, error) {
	return s.update(ctx, sessionID, func(state game.State) (game.State, error) {
		return state.Select(ingredient)
	})
}

func (s *KitchenService) Clear(ctx context.Context, sessionID uuid.UUID) (game.State, error) {
	return s.update(ctx, sessionID, func(state game.State) (game.State, error) {
		return state.Clear(), nil
	})
}

// Perform applies technique to the session's selection and records the attempt
func (s *KitchenService) Perform(ctx context.Context, sessionID uuid.UUID, technique kitchen.Technique) (game.State, kitchen.Dish, error) {
	var dish kitchen.Dish
	state, err := s.update(ctx, sessionID, func(state game.State) (game.State, error) {
		next, d, err := state.Perform(s.resolver, technique)
		dish = d
		return next, err
	})
	if err != nil {
		return game.State{}, kitchen.Dish{}, err
	}

	s.record(ctx, &sessionID, state.Selection, technique, dish)
	return state, dish, nil
}

// Cook resolves a one-off combination outside any session
func (s *KitchenService) Cook(ctx context.Context, ingredients []kitchen.Ingredient, technique kitchen.Technique) (kitchen.Dish, error) {
	if len(ingredients) == 0 {
		return kitchen.Dish{}, game.ErrEmptySelection
	}
	dish := s.resolver.Cook(ingredients, technique)
	s.record(ctx, nil, ingredients, technique, dish)
	return dish, nil
}

// History returns the most recent journal entries of a session
func (s *KitchenService) History(ctx context.Context, sessionID uuid.UUID, limit int) ([]model.CookAttempt, error) {
	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		return nil, err
	}
	if s.journal == nil {
		return []model.CookAttempt{}, nil
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.journal.ForSession(ctx, sessionID, limit)
}

// RecipeCount returns how many recipes the book knows
func (s *KitchenService) RecipeCount() int {
	return s.resolver.Book().Len()
}

func (s *KitchenService) update(ctx context.Context, sessionID uuid.UUID, apply func(game.State) (game.State, error)) (game.State, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return game.State{}, err
	}
	next, err := apply(state)
	if err != nil {
		return game.State{}, err
	}
	if err := s.sessions.Save(ctx, sessionID, next); err != nil {
		return game.State{}, err
	}
	return next, nil
}

// record appends to the journal. A failed write is logged and otherwise ignored.
func (s *KitchenService) record(ctx context.Context, sessionID *uuid.UUID, ingredients []kitchen.Ingredient, technique kitchen.Technique, dish kitchen.Dish) {
	if s.journal == nil {
		return
	}
	names := make(model.StringArray, len(ingredients))
	for i, ing := range ingredients {
		names[i] = string(ing)
	}
	attempt := &model.CookAttempt{
		SessionID:      sessionID,
		Ingredients:    names,
		Technique:      technique.String(),
		CombinationKey: kitchen.NewCombinationKey(ingredients, technique).String(),
		DishName:       dish.Name,
		Matched:        !kitchen.IsFallback(dish),
	}
	if err := s.journal.Record(ctx, attempt); err != nil {
		log.Printf("Failed to record cook attempt %s: %v", attempt.CombinationKey, err)
	}
}
