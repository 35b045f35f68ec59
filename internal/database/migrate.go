package database

import (
	"fmt"
	"log"

	"github.com/pageza/gilded-spoon/backend/internal/model"
	"gorm.io/gorm"
)

// RunMigrations brings the journal schema up to date. Postgres deployments
// may also run the SQL files under migrations/ with cmd/migrate; AutoMigrate
// is a no-op once those are applied.
func RunMigrations(db *gorm.DB) error {
	log.Printf("Running GORM auto-migration for %s", db.Dialector.Name())
	if err := db.AutoMigrate(&model.CookAttempt{}); err != nil {
		return fmt.Errorf("failed to migrate cook journal: %w", err)
	}
	return nil
}
