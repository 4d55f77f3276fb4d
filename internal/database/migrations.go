package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/fleetops/ship-management-api/internal/models"
)

// Migrate creates or updates the schema. Order matters: referenced
// tables first.
func Migrate(db *gorm.DB) error {
	logrus.Info("running database migrations")
	err := db.AutoMigrate(
		&models.User{},
		&models.Ship{},
		&models.UserShipAssignment{},
		&models.CrewRank{},
		&models.CrewMember{},
		&models.ChartOfAccount{},
		&models.BudgetEntry{},
		&models.AccountTransaction{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("database migrations completed")
	return nil
}
