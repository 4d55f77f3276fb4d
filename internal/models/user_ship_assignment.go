package models

import (
	"time"
)

// UserShipAssignment links a user to a ship. The row's existence is the
// sole source of truth for "does user X have access to ship Y".
type UserShipAssignment struct {
	UserID    int       `gorm:"primarykey;column:user_id" json:"user_id"`
	ShipCode  string    `gorm:"primarykey;type:varchar(10)" json:"ship_code"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
	Ship Ship `gorm:"foreignKey:ShipCode" json:"-"`
}
