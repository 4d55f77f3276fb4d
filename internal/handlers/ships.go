package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fleetops/ship-management-api/internal/dto"
	"github.com/fleetops/ship-management-api/internal/httperr"
	"github.com/fleetops/ship-management-api/internal/services"
)

type ShipHandler struct {
	shipService *services.ShipService
}

func NewShipHandler(shipService *services.ShipService) *ShipHandler {
	return &ShipHandler{shipService: shipService}
}

// ListShips godoc
// @Summary List all ships
// @Tags ships
// @Produce json
// @Success 200 {array} dto.ShipDTO
// @Router /ships [get]
func (h *ShipHandler) ListShips(c *gin.Context) {
	ships, err := h.shipService.ListShips()
	if err != nil {
		httperr.Respond(c, "ListShips", err, nil)
		return
	}
	c.JSON(http.StatusOK, dto.ToShipDTOs(ships))
}

// ListActiveShips godoc
// @Summary List ships with status Active
// @Tags ships
// @Produce json
// @Success 200 {array} dto.ShipDTO
// @Router /ships/active [get]
func (h *ShipHandler) ListActiveShips(c *gin.Context) {
	ships, err := h.shipService.ListActiveShips()
	if err != nil {
		httperr.Respond(c, "ListActiveShips", err, nil)
		return
	}
	c.JSON(http.StatusOK, dto.ToShipDTOs(ships))
}

// GetShip godoc
// @Summary Get one ship by code
// @Tags ships
// @Produce json
// @Param shipCode path string true "Ship code"
// @Success 200 {object} dto.ShipDTO
// @Failure 404 {object} httperr.APIError
// @Router /ships/{shipCode} [get]
func (h *ShipHandler) GetShip(c *gin.Context) {
	shipCode := c.Param("shipCode")

	ship, err := h.shipService.GetShip(shipCode)
	if err != nil {
		httperr.Respond(c, "GetShip", err, logrus.Fields{"ship_code": shipCode})
		return
	}
	c.JSON(http.StatusOK, dto.ToShipDTO(*ship))
}

// CreateShip godoc
// @Summary Create a ship
// @Tags ships
// @Accept json
// @Produce json
// @Param ship body dto.CreateShipRequest true "Ship"
// @Success 201 {object} dto.ShipDTO
// @Failure 400 {object} httperr.APIError
// @Router /ships [post]
func (h *ShipHandler) CreateShip(c *gin.Context) {
	var req dto.CreateShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	ship, err := h.shipService.CreateShip(services.CreateShipInput{
		ShipCode:       req.ShipCode,
		ShipName:       req.ShipName,
		FiscalYearCode: req.FiscalYearCode,
		Status:         req.Status,
	})
	if err != nil {
		httperr.Respond(c, "CreateShip", err, logrus.Fields{"ship_code": req.ShipCode})
		return
	}
	c.JSON(http.StatusCreated, dto.ToShipDTO(*ship))
}

// UpdateShip godoc
// @Summary Update a ship's mutable fields
// @Tags ships
// @Accept json
// @Param shipCode path string true "Ship code"
// @Param ship body dto.UpdateShipRequest true "Ship"
// @Success 204
// @Failure 400 {object} httperr.APIError
// @Failure 404 {object} httperr.APIError
// @Router /ships/{shipCode} [put]
func (h *ShipHandler) UpdateShip(c *gin.Context) {
	shipCode := c.Param("shipCode")

	var req dto.UpdateShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	_, err := h.shipService.UpdateShip(shipCode, services.UpdateShipInput{
		ShipName:       req.ShipName,
		FiscalYearCode: req.FiscalYearCode,
		Status:         req.Status,
	})
	if err != nil {
		httperr.Respond(c, "UpdateShip", err, logrus.Fields{"ship_code": shipCode})
		return
	}
	c.Status(http.StatusNoContent)
}
