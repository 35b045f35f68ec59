package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/gilded-spoon/backend/internal/game"
	"github.com/pageza/gilded-spoon/backend/internal/kitchen"
	"github.com/pageza/gilded-spoon/backend/internal/model"
)

// SessionStore keeps one game.State per session
type SessionStore interface {
	Create(ctx context.Context, state game.State) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (game.State, error)
	Save(ctx context.Context, id uuid.UUID, state game.State) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Journal records cook attempts
type Journal interface {
	Record(ctx context.Context, attempt *model.CookAttempt) error
	ForSession(ctx context.Context, sessionID uuid.UUID, limit int) ([]model.CookAttempt, error)
}

// IKitchenService defines the game operations exposed over HTTP
type IKitchenService interface {
	NewSession(ctx context.Context) (uuid.UUID, game.State, error)
	State(ctx context.Context, sessionID uuid.UUID) (game.State, error)
	Select(ctx context.Context, sessionID uuid.UUID, ingredient kitchen.Ingredient) (game.State, error)
	Clear(ctx context.Context, sessionID uuid.UUID) (game.State, error)
	Perform(ctx context.Context, sessionID uuid.UUID, technique kitchen.Technique) (game.State, kitchen.Dish, error)
	Cook(ctx context.Context, ingredients []kitchen.Ingredient, technique kitchen.Technique) (kitchen.Dish, error)
	History(ctx context.Context, sessionID uuid.UUID, limit int) ([]model.CookAttempt, error)
	RecipeCount() int
}

// ITokenService issues and checks session tokens
type ITokenService interface {
	Issue(sessionID uuid.UUID) (string, error)
	ValidateToken(token string) (*SessionClaims, error)
}
