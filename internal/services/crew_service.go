package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/fleetops/ship-management-api/internal/constants"
	"github.com/fleetops/ship-management-api/internal/dto"
	"github.com/fleetops/ship-management-api/internal/repository"
	"github.com/fleetops/ship-management-api/internal/utils"
)

// CrewService provides the paginated crew list.
type CrewService struct {
	crewRepo repository.CrewRepository
}

// NewCrewService creates a new CrewService.
func NewCrewService(crewRepo repository.CrewRepository) *CrewService {
	return &CrewService{crewRepo: crewRepo}
}

// CrewListInput carries the raw, un-coerced request parameters.
type CrewListInput struct {
	ShipCode      string
	AsOfDate      *time.Time
	PageNumber    int
	PageSize      int
	SortColumn    string
	SortDirection string
	SearchTerm    string
}

// ListCrew returns one page of crew for a ship. Page number is floored
// at 1, page size outside [1,100] falls back to 20, and the response
// echoes the coerced values. Zero matches yield an empty page with
// zero totals.
func (s *CrewService) ListCrew(input CrewListInput) (*dto.PagedCrewListDTO, error) {
	if strings.TrimSpace(input.ShipCode) == "" {
		return nil, ErrShipCodeRequired
	}

	page := utils.NormalizePageNumber(input.PageNumber)
	size := utils.NormalizePageSize(input.PageSize)

	sortColumn := input.SortColumn
	if sortColumn == "" {
		sortColumn = constants.DefaultCrewSortColumn
	}
	sortDirection := input.SortDirection
	if sortDirection == "" {
		sortDirection = constants.SortAscending
	}

	asOf := time.Now().UTC()
	if input.AsOfDate != nil {
		asOf = *input.AsOfDate
	}

	rows, total, err := s.crewRepo.List(repository.CrewListFilter{
		ShipCode:      input.ShipCode,
		PageNumber:    page,
		PageSize:      size,
		SortColumn:    sortColumn,
		SortDirection: sortDirection,
		SearchTerm:    input.SearchTerm,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list crew: %w", err)
	}

	items := make([]dto.CrewListItemDTO, len(rows))
	for i, row := range rows {
		items[i] = dto.CrewListItemDTO{
			RankName:            row.RankName,
			CrewID:              row.CrewID,
			FirstName:           row.FirstName,
			LastName:            row.LastName,
			Age:                 ageAt(row.DateOfBirth, asOf),
			Nationality:         row.Nationality,
			SignOnDate:          row.SignOnDate,
			SignOnDateFormatted: row.SignOnDate.Format(constants.SignOnDateFormat),
			Status:              row.Status,
		}
	}

	return &dto.PagedCrewListDTO{
		Crew:         items,
		TotalRecords: total,
		TotalPages:   utils.TotalPages(total, size),
		CurrentPage:  page,
		PageSize:     size,
	}, nil
}

// ageAt computes whole years between a date of birth and a reference
// date, counting the birthday itself as already reached.
func ageAt(dateOfBirth, asOf time.Time) int {
	age := asOf.Year() - dateOfBirth.Year()
	anniversary := time.Date(asOf.Year(), dateOfBirth.Month(), dateOfBirth.Day(), 0, 0, 0, 0, time.UTC)
	reference := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	if reference.Before(anniversary) {
		age--
	}
	return age
}
