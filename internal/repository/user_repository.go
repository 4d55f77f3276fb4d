package repository

import (
	"github.com/fleetops/ship-management-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// FindAll returns all users ordered by name
func (r *GormUserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("user_name").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(userID int) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user; the store assigns the ID
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindShips returns the ships assigned to a user ordered by name
func (r *GormUserRepository) FindShips(userID int) ([]models.Ship, error) {
	var ships []models.Ship
	err := r.db.
		Joins("JOIN user_ship_assignments ON user_ship_assignments.ship_code = ships.ship_code").
		Where("user_ship_assignments.user_id = ?", userID).
		Order("ships.ship_name").
		Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

// AssignShip inserts the (user, ship) pair; inserting an existing pair
// is a no-op
func (r *GormUserRepository) AssignShip(userID int, shipCode string) error {
	assignment := models.UserShipAssignment{
		UserID:   userID,
		ShipCode: shipCode,
	}
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "ship_code"}},
			DoNothing: true,
		}).
		Create(&assignment).Error
}

// RemoveShip deletes the (user, ship) pair; deleting an absent pair is
// not an error
func (r *GormUserRepository) RemoveShip(userID int, shipCode string) error {
	return r.db.Where("user_id = ? AND ship_code = ?", userID, shipCode).
		Delete(&models.UserShipAssignment{}).Error
}
