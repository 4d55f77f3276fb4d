package main

import (
	"flag"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fleetops/ship-management-api/internal/config"
	"github.com/fleetops/ship-management-api/internal/database"
	"github.com/fleetops/ship-management-api/internal/models"
)

// Schema migration utility. Run with -seed to also load the reference
// data (crew ranks, chart of accounts) the API reads but never writes.
func main() {
	seed := flag.Bool("seed", false, "insert reference data after migrating")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	if err := database.Connect(cfg); err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	db := database.GetDB()

	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("error migrating schema: %v", err)
	}

	if *seed {
		if err := seedReferenceData(db); err != nil {
			logrus.Fatalf("error seeding reference data: %v", err)
		}
		logrus.Info("reference data seeded")
	}
}

// seedReferenceData inserts crew ranks and the chart of accounts.
// Re-running is harmless: existing rows are left untouched.
func seedReferenceData(db *gorm.DB) error {
	ranks := []models.CrewRank{
		{RankID: 1, RankName: "Master", RankOrder: 1, Department: "Deck"},
		{RankID: 2, RankName: "Chief Officer", RankOrder: 2, Department: "Deck"},
		{RankID: 3, RankName: "Second Officer", RankOrder: 3, Department: "Deck"},
		{RankID: 4, RankName: "Third Officer", RankOrder: 4, Department: "Deck"},
		{RankID: 5, RankName: "Chief Engineer", RankOrder: 5, Department: "Engine"},
		{RankID: 6, RankName: "Second Engineer", RankOrder: 6, Department: "Engine"},
		{RankID: 7, RankName: "Third Engineer", RankOrder: 7, Department: "Engine"},
		{RankID: 8, RankName: "Bosun", RankOrder: 8, Department: "Deck"},
		{RankID: 9, RankName: "Able Seaman", RankOrder: 9, Department: "Deck"},
		{RankID: 10, RankName: "Oiler", RankOrder: 10, Department: "Engine"},
		{RankID: 11, RankName: "Cook", RankOrder: 11, Department: "Catering"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&ranks).Error; err != nil {
		return err
	}

	accounts := []models.ChartOfAccount{
		{AccountNumber: "6100010", Description: "Crew Wages", AccountGroup: "6100000", GroupDescription: "Crew Costs"},
		{AccountNumber: "6100020", Description: "Crew Travel", AccountGroup: "6100000", GroupDescription: "Crew Costs"},
		{AccountNumber: "6100030", Description: "Crew Victualling", AccountGroup: "6100000", GroupDescription: "Crew Costs"},
		{AccountNumber: "6200010", Description: "Lubricating Oil", AccountGroup: "6200000", GroupDescription: "Consumables"},
		{AccountNumber: "6200020", Description: "Fresh Water", AccountGroup: "6200000", GroupDescription: "Consumables"},
		{AccountNumber: "6300010", Description: "Deck Stores", AccountGroup: "6300000", GroupDescription: "Stores"},
		{AccountNumber: "6300020", Description: "Engine Stores", AccountGroup: "6300000", GroupDescription: "Stores"},
		{AccountNumber: "6400010", Description: "Hull Insurance", AccountGroup: "6400000", GroupDescription: "Insurance"},
		{AccountNumber: "6400020", Description: "P&I Insurance", AccountGroup: "6400000", GroupDescription: "Insurance"},
		{AccountNumber: "7000010", Description: "Dry Docking", AccountGroup: "7000000", GroupDescription: "Maintenance"},
		{AccountNumber: "7000020", Description: "Spare Parts", AccountGroup: "7000000", GroupDescription: "Maintenance"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&accounts).Error
}
