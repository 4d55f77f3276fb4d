package models

import (
	"time"
)

// ChartOfAccount is the account taxonomy underlying financial report
// lines. AccountGroup identifies the roll-up bucket used by summary
// reports.
type ChartOfAccount struct {
	AccountNumber    string    `gorm:"primarykey;type:varchar(10)" json:"account_number"`
	Description      string    `gorm:"type:varchar(200);not null" json:"description"`
	AccountGroup     string    `gorm:"type:varchar(10);index" json:"account_group"`
	GroupDescription string    `gorm:"type:varchar(200)" json:"group_description"`
	CreatedAt        time.Time `json:"created_at"`
}

// BudgetEntry holds the budgeted amount for one account on one ship in
// one reporting month.
type BudgetEntry struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	ShipCode      string    `gorm:"type:varchar(10);index:idx_budget_scope" json:"ship_code"`
	AccountNumber string    `gorm:"type:varchar(10);index:idx_budget_scope" json:"account_number"`
	Period        string    `gorm:"type:varchar(7);index:idx_budget_scope" json:"period"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// AccountTransaction is a posted actual. Period is denormalized from
// TxnDate so period and year-to-date aggregation stay plain string
// range scans.
type AccountTransaction struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	ShipCode      string    `gorm:"type:varchar(10);index:idx_txn_scope" json:"ship_code"`
	AccountNumber string    `gorm:"type:varchar(10);index:idx_txn_scope" json:"account_number"`
	Period        string    `gorm:"type:varchar(7);index:idx_txn_scope" json:"period"`
	TxnDate       time.Time `json:"txn_date"`
	Amount        float64   `json:"amount"`
	Description   string    `gorm:"type:varchar(200)" json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}
