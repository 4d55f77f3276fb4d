package constants

// Pagination bounds for the crew list endpoint.
const (
	MinPageNumber   = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Crew list sorting defaults.
const (
	DefaultCrewSortColumn = "RankName"
	SortAscending         = "ASC"
	SortDescending        = "DESC"
)

// Date formats used in query parameters and responses.
const (
	DateFormat       = "2006-01-02"
	SignOnDateFormat = "02 Jan 2006"
)

// PeriodLength is the exact length of a "YYYY-MM" reporting period.
const PeriodLength = 7
