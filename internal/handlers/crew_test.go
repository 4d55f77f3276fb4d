package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fleetops/ship-management-api/internal/database"
	"github.com/fleetops/ship-management-api/internal/dto"
	"github.com/fleetops/ship-management-api/internal/models"
	"github.com/fleetops/ship-management-api/internal/repository"
	"github.com/fleetops/ship-management-api/internal/services"
)

type crewTestEnv struct {
	db      *gorm.DB
	handler *CrewHandler
}

func setupCrewTestEnv(t *testing.T) crewTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	database.SetDB(db)

	handler := NewCrewHandler(services.NewCrewService(repository.NewCrewRepository(db)))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return crewTestEnv{db: db, handler: handler}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedCrew(t *testing.T, db *gorm.DB) {
	t.Helper()

	ranks := []models.CrewRank{
		{RankID: 1, RankName: "Master", RankOrder: 1, Department: "Deck"},
		{RankID: 2, RankName: "Chief Officer", RankOrder: 2, Department: "Deck"},
		{RankID: 9, RankName: "Able Seaman", RankOrder: 9, Department: "Deck"},
	}
	require.NoError(t, db.Create(&ranks).Error)

	crew := []models.CrewMember{
		{
			CrewID: "C001", FirstName: "James", LastName: "Wilson",
			DateOfBirth: date(1975, time.March, 10), Nationality: "British",
			RankID: 1, ShipCode: "SHIP01",
			SignOnDate: date(2024, time.November, 5), Status: "Onboard",
		},
		{
			CrewID: "C002", FirstName: "Maria", LastName: "Santos",
			DateOfBirth: date(1988, time.July, 22), Nationality: "Filipino",
			RankID: 2, ShipCode: "SHIP01",
			SignOnDate: date(2025, time.January, 15), Status: "Onboard",
		},
		{
			CrewID: "C003", FirstName: "Ivan", LastName: "Petrov",
			DateOfBirth: date(1995, time.December, 1), Nationality: "Russian",
			RankID: 9, ShipCode: "SHIP01",
			SignOnDate: date(2025, time.February, 1), Status: "Onboard",
		},
		{
			CrewID: "C004", FirstName: "Elena", LastName: "Ivanova",
			DateOfBirth: date(1990, time.May, 20), Nationality: "Russian",
			RankID: 2, ShipCode: "SHIP02",
			SignOnDate: date(2025, time.March, 1), Status: "Onboard",
		},
	}
	require.NoError(t, db.Create(&crew).Error)
}

func listCrew(t *testing.T, env crewTestEnv, url string) (dto.PagedCrewListDTO, int) {
	t.Helper()

	c, w := testContext(http.MethodGet, url, nil)
	env.handler.ListCrew(c)

	var response dto.PagedCrewListDTO
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	}
	return response, w.Code
}

func TestCrewHandler_ListCrew_MissingShipCode(t *testing.T) {
	env := setupCrewTestEnv(t)

	_, code := listCrew(t, env, "/api/crew")

	require.Equal(t, http.StatusBadRequest, code)
}

func TestCrewHandler_ListCrew_Defaults(t *testing.T) {
	env := setupCrewTestEnv(t)
	seedCrew(t, env.db)

	response, code := listCrew(t, env, "/api/crew?shipCode=SHIP01")

	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 3, response.TotalRecords)
	require.Equal(t, 1, response.TotalPages)
	require.Equal(t, 1, response.CurrentPage)
	require.Equal(t, 20, response.PageSize)

	// Default sort is RankName ascending.
	require.Len(t, response.Crew, 3)
	require.Equal(t, "Able Seaman", response.Crew[0].RankName)
	require.Equal(t, "Chief Officer", response.Crew[1].RankName)
	require.Equal(t, "Master", response.Crew[2].RankName)

	require.Equal(t, "05 Nov 2024", response.Crew[2].SignOnDateFormatted)
}

func TestCrewHandler_ListCrew_PageCoercion(t *testing.T) {
	env := setupCrewTestEnv(t)
	seedCrew(t, env.db)

	response, code := listCrew(t, env, "/api/crew?shipCode=SHIP01&pageNumber=0&pageSize=500")

	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 1, response.CurrentPage)
	require.Equal(t, 20, response.PageSize)

	response, code = listCrew(t, env, "/api/crew?shipCode=SHIP01&pageSize=-3")

	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 20, response.PageSize)
}

func TestCrewHandler_ListCrew_Paging(t *testing.T) {
	env := setupCrewTestEnv(t)
	seedCrew(t, env.db)

	response, code := listCrew(t, env, "/api/crew?shipCode=SHIP01&pageNumber=2&pageSize=2")

	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 3, response.TotalRecords)
	require.Equal(t, 2, response.TotalPages)
	require.Equal(t, 2, response.CurrentPage)
	require.Equal(t, 2, response.PageSize)
	require.Len(t, response.Crew, 1)
	require.Equal(t, "Master", response.Crew[0].RankName)
}

func TestCrewHandler_ListCrew_ZeroMatches(t *testing.T) {
	env := setupCrewTestEnv(t)
	seedCrew(t, env.db)

	response, code := listCrew(t, env, "/api/crew?shipCode=GHOST&pageNumber=3&pageSize=50")

	require.Equal(t, http.StatusOK, code)
	require.Empty(t, response.Crew)
	require.EqualValues(t, 0, response.TotalRecords)
	require.Equal(t, 0, response.TotalPages)
	// The coerced request values are echoed unchanged.
	require.Equal(t, 3, response.CurrentPage)
	require.Equal(t, 50, response.PageSize)
}

func TestCrewHandler_ListCrew_Search(t *testing.T) {
	env := setupCrewTestEnv(t)
	seedCrew(t, env.db)

	response, code := listCrew(t, env, "/api/crew?shipCode=SHIP01&searchTerm=santos")

	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 1, response.TotalRecords)
	require.Len(t, response.Crew, 1)
	require.Equal(t, "C002", response.Crew[0].CrewID)

	// Whitespace-only terms mean no filter.
	response, code = listCrew(t, env, "/api/crew?shipCode=SHIP01&searchTerm=%20%20")

	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 3, response.TotalRecords)
}

func TestCrewHandler_ListCrew_SortDirection(t *testing.T) {
	env := setupCrewTestEnv(t)
	seedCrew(t, env.db)

	response, code := listCrew(t, env, "/api/crew?shipCode=SHIP01&sortColumn=CrewId&sortDirection=DESC")

	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "C003", response.Crew[0].CrewID)
	require.Equal(t, "C001", response.Crew[2].CrewID)
}

func TestCrewHandler_ListCrew_UnknownSortColumnFallsBack(t *testing.T) {
	env := setupCrewTestEnv(t)
	seedCrew(t, env.db)

	response, code := listCrew(t, env, "/api/crew?shipCode=SHIP01&sortColumn=Robert%27%29%3B%20DROP%20TABLE%20crew_members%3B--")

	require.Equal(t, http.StatusOK, code)
	require.Len(t, response.Crew, 3)
	require.Equal(t, "Able Seaman", response.Crew[0].RankName)
}

func TestCrewHandler_ListCrew_AgeAsOfDate(t *testing.T) {
	env := setupCrewTestEnv(t)
	seedCrew(t, env.db)

	// C002 was born 1988-07-22: the day before the birthday she is 36.
	response, code := listCrew(t, env, "/api/crew?shipCode=SHIP01&searchTerm=C002&asOfDate=2025-07-21")

	require.Equal(t, http.StatusOK, code)
	require.Len(t, response.Crew, 1)
	require.Equal(t, 36, response.Crew[0].Age)

	response, code = listCrew(t, env, "/api/crew?shipCode=SHIP01&searchTerm=C002&asOfDate=2025-07-22")

	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 37, response.Crew[0].Age)
}

func TestCrewHandler_ListCrew_BadAsOfDate(t *testing.T) {
	env := setupCrewTestEnv(t)

	_, code := listCrew(t, env, "/api/crew?shipCode=SHIP01&asOfDate=21-07-2025")

	require.Equal(t, http.StatusBadRequest, code)
}
