package services

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/fleetops/ship-management-api/internal/models"
	"github.com/fleetops/ship-management-api/internal/repository"
)

// ShipService provides business logic for ship operations.
type ShipService struct {
	shipRepo repository.ShipRepository
}

// NewShipService creates a new ShipService.
func NewShipService(shipRepo repository.ShipRepository) *ShipService {
	return &ShipService{shipRepo: shipRepo}
}

// CreateShipInput represents parameters to create a ship.
type CreateShipInput struct {
	ShipCode       string
	ShipName       string
	FiscalYearCode string
	Status         string
}

// UpdateShipInput represents the mutable fields of a ship.
type UpdateShipInput struct {
	ShipName       string
	FiscalYearCode string
	Status         string
}

// validateFiscalYearCode checks the 4-digit MMDD shape. The check is
// syntactic only: "9999" passes, matching the documented contract.
func validateFiscalYearCode(code string) error {
	if len(code) != 4 {
		return ErrInvalidFiscalYearCode
	}
	if _, err := strconv.Atoi(code); err != nil {
		return ErrInvalidFiscalYearCode
	}
	return nil
}

// ListShips returns all ships.
func (s *ShipService) ListShips() ([]models.Ship, error) {
	ships, err := s.shipRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list ships: %w", err)
	}
	return ships, nil
}

// ListActiveShips returns ships with status "Active".
func (s *ShipService) ListActiveShips() ([]models.Ship, error) {
	ships, err := s.shipRepo.FindActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list active ships: %w", err)
	}
	return ships, nil
}

// GetShip returns one ship by code.
func (s *ShipService) GetShip(shipCode string) (*models.Ship, error) {
	ship, err := s.shipRepo.FindByCode(shipCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipNotFound
		}
		return nil, fmt.Errorf("failed to find ship: %w", err)
	}
	return ship, nil
}

// CreateShip validates the fiscal-year code and inserts the ship.
// Timestamps are set by the data layer, never by the caller.
func (s *ShipService) CreateShip(input CreateShipInput) (*models.Ship, error) {
	if err := validateFiscalYearCode(input.FiscalYearCode); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.ShipStatusActive
	}

	ship := &models.Ship{
		ShipCode:       input.ShipCode,
		ShipName:       input.ShipName,
		FiscalYearCode: input.FiscalYearCode,
		Status:         status,
	}
	if err := s.shipRepo.Create(ship); err != nil {
		return nil, fmt.Errorf("failed to create ship: %w", err)
	}
	return ship, nil
}

// UpdateShip mutates the name, fiscal-year code, and status of an
// existing ship. The ship code is immutable.
func (s *ShipService) UpdateShip(shipCode string, input UpdateShipInput) (*models.Ship, error) {
	if err := validateFiscalYearCode(input.FiscalYearCode); err != nil {
		return nil, err
	}

	ship, err := s.GetShip(shipCode)
	if err != nil {
		return nil, err
	}

	ship.ShipName = input.ShipName
	ship.FiscalYearCode = input.FiscalYearCode
	if input.Status != "" {
		ship.Status = input.Status
	}

	if err := s.shipRepo.Update(ship); err != nil {
		return nil, fmt.Errorf("failed to update ship: %w", err)
	}
	return ship, nil
}
