package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/fleetops/ship-management-api/internal/models"
	"github.com/fleetops/ship-management-api/internal/repository"
)

// UserService provides business logic for user and assignment
// operations.
type UserService struct {
	userRepo repository.UserRepository
	shipRepo repository.ShipRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, shipRepo repository.ShipRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		shipRepo: shipRepo,
	}
}

// CreateUserInput represents parameters to create a user.
type CreateUserInput struct {
	UserName string
	Email    string
	Role     string
}

// ListUsers returns all users.
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns one user by ID.
func (s *UserService) GetUser(userID int) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateUser inserts a user; the store assigns the ID and timestamps.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	user := &models.User{
		UserName: input.UserName,
		Email:    input.Email,
		Role:     input.Role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUserWithShips returns a user together with their assigned ships.
// The two reads are not wrapped in a transaction; a concurrent
// assignment change between them is accepted.
func (s *UserService) GetUserWithShips(userID int) (*models.User, []models.Ship, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, nil, err
	}

	ships, err := s.userRepo.FindShips(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list user ships: %w", err)
	}
	return user, ships, nil
}

// AssignShip records that a user has access to a ship. Assigning an
// already-assigned ship is a no-op that still succeeds. Both the user
// and the ship must exist.
func (s *UserService) AssignShip(userID int, shipCode string) error {
	if strings.TrimSpace(shipCode) == "" {
		return ErrShipCodeRequired
	}

	if _, err := s.GetUser(userID); err != nil {
		return err
	}

	if _, err := s.shipRepo.FindByCode(shipCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShipNotFound
		}
		return fmt.Errorf("failed to find ship: %w", err)
	}

	if err := s.userRepo.AssignShip(userID, shipCode); err != nil {
		return fmt.Errorf("failed to assign ship: %w", err)
	}
	return nil
}

// RemoveShip deletes the assignment pair. Removing an assignment that
// does not exist succeeds and changes nothing.
func (s *UserService) RemoveShip(userID int, shipCode string) error {
	if _, err := s.GetUser(userID); err != nil {
		return err
	}

	if err := s.userRepo.RemoveShip(userID, shipCode); err != nil {
		return fmt.Errorf("failed to remove ship assignment: %w", err)
	}
	return nil
}
