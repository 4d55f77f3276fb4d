package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fleetops/ship-management-api/internal/constants"
	"github.com/fleetops/ship-management-api/internal/httperr"
	"github.com/fleetops/ship-management-api/internal/services"
)

type CrewHandler struct {
	crewService *services.CrewService
}

func NewCrewHandler(crewService *services.CrewService) *CrewHandler {
	return &CrewHandler{crewService: crewService}
}

// ListCrew godoc
// @Summary Paginated crew list for a ship
// @Tags crew
// @Produce json
// @Param shipCode query string true "Ship code"
// @Param asOfDate query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Param pageNumber query int false "1-based page number"
// @Param pageSize query int false "Page size, 1-100"
// @Param sortColumn query string false "Sort column" default(RankName)
// @Param sortDirection query string false "ASC or DESC" default(ASC)
// @Param searchTerm query string false "Free-text filter"
// @Success 200 {object} dto.PagedCrewListDTO
// @Failure 400 {object} httperr.APIError
// @Router /crew [get]
func (h *CrewHandler) ListCrew(c *gin.Context) {
	input := services.CrewListInput{
		ShipCode:      c.Query("shipCode"),
		SortColumn:    c.Query("sortColumn"),
		SortDirection: c.Query("sortDirection"),
		SearchTerm:    c.Query("searchTerm"),
	}

	// Unparseable numbers fall through as zero and get coerced to the
	// defaults downstream.
	input.PageNumber, _ = strconv.Atoi(c.Query("pageNumber"))
	input.PageSize, _ = strconv.Atoi(c.Query("pageSize"))

	if raw := c.Query("asOfDate"); raw != "" {
		asOf, err := time.Parse(constants.DateFormat, raw)
		if err != nil {
			httperr.BadRequest(c, services.ErrInvalidAsOfDate.Error())
			return
		}
		input.AsOfDate = &asOf
	}

	page, err := h.crewService.ListCrew(input)
	if err != nil {
		httperr.Respond(c, "ListCrew", err, logrus.Fields{"ship_code": input.ShipCode})
		return
	}
	c.JSON(http.StatusOK, page)
}
