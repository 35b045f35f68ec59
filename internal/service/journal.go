package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/gilded-spoon/backend/internal/model"
)

// GormJournal writes cook attempts through gorm
type GormJournal struct {
	db *gorm.DB
}

var _ Journal = (*GormJournal)(nil)

func NewGormJournal(db *gorm.DB) *GormJournal {
	return &GormJournal{db: db}
}

func (j *GormJournal) Record(ctx context.Context, attempt *model.CookAttempt) error {
	return j.db.WithContext(ctx).Create(attempt).Error
}

// ForSession returns the newest attempts of a session first
func (j *GormJournal) ForSession(ctx context.Context, sessionID uuid.UUID, limit int) ([]model.CookAttempt, error) {
	var attempts []model.CookAttempt
	err := j.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}
