package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fleetops/ship-management-api/internal/config"
	"github.com/fleetops/ship-management-api/internal/database"
	"github.com/fleetops/ship-management-api/internal/models"
)

// Connectivity check: opens the configured database, pings it, and
// prints per-table record counts.
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	if err := database.Connect(cfg); err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	db := database.GetDB()

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("error getting connection handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logrus.Fatalf("ping failed: %v", err)
	}
	fmt.Println("connection ok")
	fmt.Println("------------------------------------------")

	tables := []struct {
		name  string
		model interface{}
	}{
		{"Ships", &models.Ship{}},
		{"Users", &models.User{}},
		{"UserShipAssignments", &models.UserShipAssignment{}},
		{"CrewMembers", &models.CrewMember{}},
		{"CrewRanks", &models.CrewRank{}},
		{"ChartOfAccounts", &models.ChartOfAccount{}},
		{"BudgetEntries", &models.BudgetEntry{}},
		{"AccountTransactions", &models.AccountTransaction{}},
	}

	for _, table := range tables {
		var count int64
		if err := db.Model(table.model).Count(&count).Error; err != nil {
			fmt.Printf("%-25s: error (%v)\n", table.name, err)
			continue
		}
		fmt.Printf("%-25s: %6d records\n", table.name, count)
	}
	fmt.Println("------------------------------------------")
}
