package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/gilded-spoon/backend/config"
	"github.com/pageza/gilded-spoon/backend/internal/model"
)

func TestNewSQLiteAndMigrate(t *testing.T) {
	t.Setenv("ENV", "test")
	db, err := New(&config.Config{DBDriver: config.DriverSQLite, DBPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, RunMigrations(db))
	require.NoError(t, HealthCheck(context.Background(), db))

	attempt := model.CookAttempt{
		Ingredients:    model.StringArray{"Egg"},
		Technique:      "Fry",
		CombinationKey: "Egg+Fry",
		DishName:       "Fried Egg",
		Matched:        true,
	}
	require.NoError(t, db.Create(&attempt).Error)
	assert.NotZero(t, attempt.ID)

	var stored model.CookAttempt
	require.NoError(t, db.First(&stored, "id = ?", attempt.ID).Error)
	assert.Equal(t, model.StringArray{"Egg"}, stored.Ingredients)
	assert.Nil(t, stored.SessionID)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New(&config.Config{DBDriver: "mysql"})
	assert.Error(t, err)
}
