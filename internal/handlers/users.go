package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fleetops/ship-management-api/internal/dto"
	"github.com/fleetops/ship-management-api/internal/httperr"
	"github.com/fleetops/ship-management-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func userIDParam(c *gin.Context) (int, bool) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		httperr.BadRequest(c, "Invalid user ID")
		return 0, false
	}
	return userID, true
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserDTO
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		httperr.Respond(c, "ListUsers", err, nil)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// GetUser godoc
// @Summary Get one user by ID
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.UserDTO
// @Failure 404 {object} httperr.APIError
// @Router /users/{userId} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		httperr.Respond(c, "GetUser", err, logrus.Fields{"user_id": userID})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User"
// @Success 201 {object} dto.UserDTO
// @Failure 400 {object} httperr.APIError
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(services.CreateUserInput{
		UserName: req.UserName,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		httperr.Respond(c, "CreateUser", err, nil)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// GetUserShips godoc
// @Summary Get a user together with their assigned ships
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.UserShipsDTO
// @Failure 404 {object} httperr.APIError
// @Router /users/{userId}/ships [get]
func (h *UserHandler) GetUserShips(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	user, ships, err := h.userService.GetUserWithShips(userID)
	if err != nil {
		httperr.Respond(c, "GetUserShips", err, logrus.Fields{"user_id": userID})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserShipsDTO(*user, ships))
}

// AssignShip godoc
// @Summary Assign a ship to a user
// @Tags users
// @Accept json
// @Param userId path int true "User ID"
// @Param assignment body dto.AssignShipRequest true "Ship code"
// @Success 204
// @Failure 400 {object} httperr.APIError
// @Failure 404 {object} httperr.APIError
// @Router /users/{userId}/ships [post]
func (h *UserHandler) AssignShip(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var req dto.AssignShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.userService.AssignShip(userID, req.ShipCode); err != nil {
		httperr.Respond(c, "AssignShip", err, logrus.Fields{
			"user_id":   userID,
			"ship_code": req.ShipCode,
		})
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveShip godoc
// @Summary Remove a ship assignment from a user
// @Tags users
// @Param userId path int true "User ID"
// @Param shipCode path string true "Ship code"
// @Success 204
// @Failure 404 {object} httperr.APIError
// @Router /users/{userId}/ships/{shipCode} [delete]
func (h *UserHandler) RemoveShip(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	shipCode := c.Param("shipCode")

	if err := h.userService.RemoveShip(userID, shipCode); err != nil {
		httperr.Respond(c, "RemoveShip", err, logrus.Fields{
			"user_id":   userID,
			"ship_code": shipCode,
		})
		return
	}
	c.Status(http.StatusNoContent)
}
