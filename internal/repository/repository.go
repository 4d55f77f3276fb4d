package repository

import (
	"time"

	"github.com/fleetops/ship-management-api/internal/models"
)

// ShipRepository defines the interface for ship data access
type ShipRepository interface {
	// FindAll returns all ships ordered by name
	FindAll() ([]models.Ship, error)

	// FindActive returns ships with status "Active" ordered by name
	FindActive() ([]models.Ship, error)

	// FindByCode finds a ship by its code
	FindByCode(shipCode string) (*models.Ship, error)

	// Create inserts a new ship
	Create(ship *models.Ship) error

	// Update persists changes to an existing ship
	Update(ship *models.Ship) error
}

// UserRepository defines the interface for user and assignment data access
type UserRepository interface {
	// FindAll returns all users ordered by name
	FindAll() ([]models.User, error)

	// FindByID finds a user by ID
	FindByID(userID int) (*models.User, error)

	// Create inserts a new user; the store assigns the ID
	Create(user *models.User) error

	// FindShips returns the ships assigned to a user ordered by name
	FindShips(userID int) ([]models.Ship, error)

	// AssignShip inserts the (user, ship) pair; inserting an existing
	// pair is a no-op
	AssignShip(userID int, shipCode string) error

	// RemoveShip deletes the (user, ship) pair; deleting an absent pair
	// is not an error
	RemoveShip(userID int, shipCode string) error
}

// CrewListFilter holds the parameters of a crew list query. Page and
// PageSize are assumed already coerced into their valid ranges.
type CrewListFilter struct {
	ShipCode      string
	PageNumber    int
	PageSize      int
	SortColumn    string
	SortDirection string
	SearchTerm    string
}

// CrewListRow is the raw projection of one crew list row before the
// service derives age and formatted dates.
type CrewListRow struct {
	RankName    string
	CrewID      string `gorm:"column:crew_id"`
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Nationality string
	SignOnDate  time.Time
	Status      string
}

// CrewRepository defines the interface for crew list retrieval
type CrewRepository interface {
	// List returns one page of crew rows for a ship together with the
	// total matching count, both produced under the same filter.
	List(filter CrewListFilter) ([]CrewListRow, int64, error)
}

// FinancialReportRow is the per-account aggregation the financial
// report is built from. Variances are never stored here; the service
// computes them.
type FinancialReportRow struct {
	AccountNumber    string
	Description      string
	AccountGroup     string
	GroupDescription string
	PeriodActual     float64
	PeriodBudget     float64
	YTDActual        float64 `gorm:"column:ytd_actual"`
	YTDBudget        float64 `gorm:"column:ytd_budget"`
}

// FinancialRepository defines the interface for financial report data
type FinancialRepository interface {
	// ReportLines returns one row per account that has activity or
	// budget for the ship in the year-to-date window ending at period.
	ReportLines(shipCode, period string) ([]FinancialReportRow, error)
}
