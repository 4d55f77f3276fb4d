package dto

import (
	"time"

	"github.com/fleetops/ship-management-api/internal/models"
)

// ShipDTO represents a ship in API responses
type ShipDTO struct {
	ShipCode       string    `json:"ship_code"`
	ShipName       string    `json:"ship_name"`
	FiscalYearCode string    `json:"fiscal_year_code"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateShipRequest is the body for POST /api/ships
type CreateShipRequest struct {
	ShipCode       string `json:"ship_code" binding:"required"`
	ShipName       string `json:"ship_name" binding:"required"`
	FiscalYearCode string `json:"fiscal_year_code" binding:"required"`
	Status         string `json:"status"`
}

// UpdateShipRequest is the body for PUT /api/ships/:shipCode. The ship
// code itself is immutable and never part of the body.
type UpdateShipRequest struct {
	ShipName       string `json:"ship_name" binding:"required"`
	FiscalYearCode string `json:"fiscal_year_code" binding:"required"`
	Status         string `json:"status"`
}

// ToShipDTO converts a Ship model to ShipDTO
func ToShipDTO(ship models.Ship) ShipDTO {
	return ShipDTO{
		ShipCode:       ship.ShipCode,
		ShipName:       ship.ShipName,
		FiscalYearCode: ship.FiscalYearCode,
		Status:         ship.Status,
		CreatedAt:      ship.CreatedAt,
		UpdatedAt:      ship.UpdatedAt,
	}
}

// ToShipDTOs converts a slice of Ship models
func ToShipDTOs(ships []models.Ship) []ShipDTO {
	out := make([]ShipDTO, len(ships))
	for i, s := range ships {
		out[i] = ToShipDTO(s)
	}
	return out
}
