package repository

import (
	"fmt"
	"strings"

	"github.com/fleetops/ship-management-api/internal/constants"
	"github.com/fleetops/ship-management-api/internal/models"
	"gorm.io/gorm"
)

// crewSortColumns is the allow-list of sortable columns. Anything not
// in here falls back to the default sort; caller-supplied names are
// never concatenated into SQL.
var crewSortColumns = map[string]string{
	"RankName":    "crew_ranks.rank_name",
	"CrewId":      "crew_members.crew_id",
	"FirstName":   "crew_members.first_name",
	"LastName":    "crew_members.last_name",
	"Nationality": "crew_members.nationality",
	"SignOnDate":  "crew_members.sign_on_date",
}

// GormCrewRepository is a GORM implementation of CrewRepository
type GormCrewRepository struct {
	db *gorm.DB
}

// NewCrewRepository creates a new CrewRepository
func NewCrewRepository(db *gorm.DB) CrewRepository {
	return &GormCrewRepository{db: db}
}

// List returns one page of crew rows for a ship together with the total
// matching count. Count and page come from the same filtered query so
// the two can never disagree about what matched.
func (r *GormCrewRepository) List(filter CrewListFilter) ([]CrewListRow, int64, error) {
	query := r.db.Model(&models.CrewMember{}).
		Joins("JOIN crew_ranks ON crew_ranks.rank_id = crew_members.rank_id").
		Where("crew_members.ship_code = ?", filter.ShipCode)

	if term := strings.TrimSpace(filter.SearchTerm); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where(
			`LOWER(crew_members.crew_id) LIKE ?
				OR LOWER(crew_members.first_name) LIKE ?
				OR LOWER(crew_members.last_name) LIKE ?
				OR LOWER(crew_ranks.rank_name) LIKE ?
				OR LOWER(crew_members.nationality) LIKE ?`,
			pattern, pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := crewSortColumns[filter.SortColumn]
	if !ok {
		column = crewSortColumns[constants.DefaultCrewSortColumn]
	}
	direction := constants.SortAscending
	if strings.EqualFold(filter.SortDirection, constants.SortDescending) {
		direction = constants.SortDescending
	}

	offset := (filter.PageNumber - 1) * filter.PageSize

	var rows []CrewListRow
	err := query.
		Select(`crew_ranks.rank_name,
			crew_members.crew_id,
			crew_members.first_name,
			crew_members.last_name,
			crew_members.date_of_birth,
			crew_members.nationality,
			crew_members.sign_on_date,
			crew_members.status`).
		Order(fmt.Sprintf("%s %s", column, direction)).
		Order("crew_members.crew_id").
		Offset(offset).
		Limit(filter.PageSize).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}
