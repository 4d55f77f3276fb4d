package models

import (
	"time"
)

// CrewMember rows are populated by the migration utility and read-only
// from the API's perspective.
type CrewMember struct {
	CrewID      string    `gorm:"primarykey;column:crew_id;type:varchar(20)" json:"crew_id"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100);not null" json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Nationality string    `gorm:"type:varchar(50)" json:"nationality"`
	RankID      int       `gorm:"column:rank_id" json:"rank_id"`
	ShipCode    string    `gorm:"type:varchar(10);index" json:"ship_code"`
	SignOnDate  time.Time `json:"sign_on_date"`
	Status      string    `gorm:"type:varchar(20)" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Rank CrewRank `gorm:"foreignKey:RankID" json:"rank,omitempty"`
}

type CrewRank struct {
	RankID     int       `gorm:"primarykey;column:rank_id" json:"rank_id"`
	RankName   string    `gorm:"type:varchar(50);not null" json:"rank_name"`
	RankOrder  int       `json:"rank_order"`
	Department string    `gorm:"type:varchar(50)" json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
