package models

import (
	"time"
)

type Ship struct {
	ShipCode       string    `gorm:"primarykey;type:varchar(10)" json:"ship_code"`
	ShipName       string    `gorm:"type:varchar(100);not null" json:"ship_name"`
	FiscalYearCode string    `gorm:"type:varchar(4);not null" json:"fiscal_year_code"`
	Status         string    `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Assignments []UserShipAssignment `gorm:"foreignKey:ShipCode" json:"-"`
	CrewMembers []CrewMember         `gorm:"foreignKey:ShipCode" json:"-"`
}

const ShipStatusActive = "Active"
