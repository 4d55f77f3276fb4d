package repository

import (
	"github.com/fleetops/ship-management-api/internal/models"
	"gorm.io/gorm"
)

// GormShipRepository is a GORM implementation of ShipRepository
type GormShipRepository struct {
	db *gorm.DB
}

// NewShipRepository creates a new ShipRepository
func NewShipRepository(db *gorm.DB) ShipRepository {
	return &GormShipRepository{db: db}
}

// FindAll returns all ships ordered by name
func (r *GormShipRepository) FindAll() ([]models.Ship, error) {
	var ships []models.Ship
	if err := r.db.Order("ship_name").Find(&ships).Error; err != nil {
		return nil, err
	}
	return ships, nil
}

// FindActive returns ships with status "Active" ordered by name
func (r *GormShipRepository) FindActive() ([]models.Ship, error) {
	var ships []models.Ship
	if err := r.db.Where("status = ?", models.ShipStatusActive).
		Order("ship_name").Find(&ships).Error; err != nil {
		return nil, err
	}
	return ships, nil
}

// FindByCode finds a ship by its code
func (r *GormShipRepository) FindByCode(shipCode string) (*models.Ship, error) {
	var ship models.Ship
	if err := r.db.Where("ship_code = ?", shipCode).First(&ship).Error; err != nil {
		return nil, err
	}
	return &ship, nil
}

// Create inserts a new ship
func (r *GormShipRepository) Create(ship *models.Ship) error {
	return r.db.Create(ship).Error
}

// Update persists changes to an existing ship
func (r *GormShipRepository) Update(ship *models.Ship) error {
	return r.db.Save(ship).Error
}
