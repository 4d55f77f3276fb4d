package dto

import (
	"time"
)

// CrewListItemDTO is one row of the paginated crew list
type CrewListItemDTO struct {
	RankName            string    `json:"rank_name"`
	CrewID              string    `json:"crew_id"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	Age                 int       `json:"age"`
	Nationality         string    `json:"nationality"`
	SignOnDate          time.Time `json:"sign_on_date"`
	SignOnDateFormatted string    `json:"sign_on_date_formatted"`
	Status              string    `json:"status"`
}

// PagedCrewListDTO is the crew list page plus its pagination metadata.
// CurrentPage and PageSize echo the effective (coerced) request values.
type PagedCrewListDTO struct {
	Crew         []CrewListItemDTO `json:"crew"`
	TotalRecords int64             `json:"total_records"`
	TotalPages   int               `json:"total_pages"`
	CurrentPage  int               `json:"current_page"`
	PageSize     int               `json:"page_size"`
}
