package dto

import (
	"time"

	"github.com/fleetops/ship-management-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	UserID    int       `json:"user_id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserRequest is the body for POST /api/users
type CreateUserRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AssignShipRequest is the body for POST /api/users/:userId/ships
type AssignShipRequest struct {
	ShipCode string `json:"ship_code"`
}

// UserShipsDTO is the combined "user plus assigned ships" read
type UserShipsDTO struct {
	UserID   int       `json:"user_id"`
	UserName string    `json:"user_name"`
	Ships    []ShipDTO `json:"ships"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		UserID:    user.UserID,
		UserName:  user.UserName,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserDTOs converts a slice of User models
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, u := range users {
		out[i] = ToUserDTO(u)
	}
	return out
}

// ToUserShipsDTO combines a user with their assigned ships
func ToUserShipsDTO(user models.User, ships []models.Ship) UserShipsDTO {
	return UserShipsDTO{
		UserID:   user.UserID,
		UserName: user.UserName,
		Ships:    ToShipDTOs(ships),
	}
}
