package models

import (
	"time"
)

type User struct {
	UserID    int       `gorm:"primarykey;column:user_id" json:"user_id"`
	UserName  string    `gorm:"type:varchar(100);not null" json:"user_name"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	Role      string    `gorm:"type:varchar(50)" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Assignments []UserShipAssignment `gorm:"foreignKey:UserID" json:"-"`
}
