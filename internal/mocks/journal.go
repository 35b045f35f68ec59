package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/gilded-spoon/backend/internal/model"
)

// MockJournal is a mock implementation of the cook journal
type MockJournal struct {
	mock.Mock
}

// Record mocks the Record method
func (m *MockJournal) Record(ctx context.Context, attempt *model.CookAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

// ForSession mocks the ForSession method
func (m *MockJournal) ForSession(ctx context.Context, sessionID uuid.UUID, limit int) ([]model.CookAttempt, error) {
	args := m.Called(ctx, sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CookAttempt), args.Error(1)
}
