package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fleetops/ship-management-api/internal/database"
	"github.com/fleetops/ship-management-api/internal/dto"
	"github.com/fleetops/ship-management-api/internal/models"
	"github.com/fleetops/ship-management-api/internal/repository"
	"github.com/fleetops/ship-management-api/internal/services"
)

type userTestEnv struct {
	db      *gorm.DB
	handler *UserHandler
}

func setupUserTestEnv(t *testing.T) userTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	shipRepo := repository.NewShipRepository(db)
	handler := NewUserHandler(services.NewUserService(userRepo, shipRepo))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return userTestEnv{db: db, handler: handler}
}

func createTestUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{UserName: name, Email: name + "@example.com", Role: "Operator"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func assignmentCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.UserShipAssignment{}).Count(&count).Error)
	return count
}

func TestUserHandler_CreateUser(t *testing.T) {
	env := setupUserTestEnv(t)

	payload := dto.CreateUserRequest{UserName: "alice", Email: "alice@example.com", Role: "Manager"}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	c, w := testContext(http.MethodPost, "/api/users", body)

	env.handler.CreateUser(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.UserID)
	require.Equal(t, "alice", response.UserName)
}

func TestUserHandler_CreateUser_MissingName(t *testing.T) {
	env := setupUserTestEnv(t)

	c, w := testContext(http.MethodPost, "/api/users", []byte(`{"email":"x@example.com"}`))

	env.handler.CreateUser(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	env := setupUserTestEnv(t)

	c, w := testContext(http.MethodGet, "/api/users/99", nil)
	c.Params = gin.Params{{Key: "userId", Value: "99"}}

	env.handler.GetUser(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_AssignShip_Idempotent(t *testing.T) {
	env := setupUserTestEnv(t)
	user := createTestUser(t, env.db, "alice")
	createTestShip(t, env.db, "SHIP01", "MV Northern Star", "Active")

	body := []byte(`{"ship_code":"SHIP01"}`)

	for i := 0; i < 2; i++ {
		c, w := testContext(http.MethodPost, "/api/users/1/ships", body)
		c.Params = gin.Params{{Key: "userId", Value: "1"}}

		env.handler.AssignShip(c)
		c.Writer.WriteHeaderNow()

		require.Equal(t, http.StatusNoContent, w.Code, "call %d", i+1)
	}

	require.EqualValues(t, 1, assignmentCount(t, env.db))

	var assignment models.UserShipAssignment
	require.NoError(t, env.db.First(&assignment).Error)
	require.Equal(t, user.UserID, assignment.UserID)
	require.Equal(t, "SHIP01", assignment.ShipCode)
}

func TestUserHandler_AssignShip_UserNotFound(t *testing.T) {
	env := setupUserTestEnv(t)
	createTestShip(t, env.db, "SHIP01", "MV Northern Star", "Active")

	c, w := testContext(http.MethodPost, "/api/users/42/ships", []byte(`{"ship_code":"SHIP01"}`))
	c.Params = gin.Params{{Key: "userId", Value: "42"}}

	env.handler.AssignShip(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Zero(t, assignmentCount(t, env.db))
}

func TestUserHandler_AssignShip_ShipNotFound(t *testing.T) {
	env := setupUserTestEnv(t)
	createTestUser(t, env.db, "alice")

	c, w := testContext(http.MethodPost, "/api/users/1/ships", []byte(`{"ship_code":"GHOST"}`))
	c.Params = gin.Params{{Key: "userId", Value: "1"}}

	env.handler.AssignShip(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Zero(t, assignmentCount(t, env.db))
}

func TestUserHandler_AssignShip_BlankCode(t *testing.T) {
	env := setupUserTestEnv(t)
	createTestUser(t, env.db, "alice")

	c, w := testContext(http.MethodPost, "/api/users/1/ships", []byte(`{"ship_code":"   "}`))
	c.Params = gin.Params{{Key: "userId", Value: "1"}}

	env.handler.AssignShip(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_RemoveShip_AbsentPair(t *testing.T) {
	env := setupUserTestEnv(t)
	createTestUser(t, env.db, "alice")

	c, w := testContext(http.MethodDelete, "/api/users/1/ships/SHIP01", nil)
	c.Params = gin.Params{
		{Key: "userId", Value: "1"},
		{Key: "shipCode", Value: "SHIP01"},
	}

	env.handler.RemoveShip(c)
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Zero(t, assignmentCount(t, env.db))
}

func TestUserHandler_RemoveShip(t *testing.T) {
	env := setupUserTestEnv(t)
	user := createTestUser(t, env.db, "alice")
	createTestShip(t, env.db, "SHIP01", "MV Northern Star", "Active")
	require.NoError(t, env.db.Create(&models.UserShipAssignment{UserID: user.UserID, ShipCode: "SHIP01"}).Error)

	c, w := testContext(http.MethodDelete, "/api/users/1/ships/SHIP01", nil)
	c.Params = gin.Params{
		{Key: "userId", Value: "1"},
		{Key: "shipCode", Value: "SHIP01"},
	}

	env.handler.RemoveShip(c)
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Zero(t, assignmentCount(t, env.db))
}

func TestUserHandler_GetUserShips(t *testing.T) {
	env := setupUserTestEnv(t)
	user := createTestUser(t, env.db, "alice")
	createTestShip(t, env.db, "SHIP02", "MV Zulu", "Active")
	createTestShip(t, env.db, "SHIP01", "MV Alpha", "Active")
	createTestShip(t, env.db, "SHIP03", "MV Unassigned", "Active")
	require.NoError(t, env.db.Create(&models.UserShipAssignment{UserID: user.UserID, ShipCode: "SHIP01"}).Error)
	require.NoError(t, env.db.Create(&models.UserShipAssignment{UserID: user.UserID, ShipCode: "SHIP02"}).Error)

	c, w := testContext(http.MethodGet, "/api/users/1/ships", nil)
	c.Params = gin.Params{{Key: "userId", Value: "1"}}

	env.handler.GetUserShips(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserShipsDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.UserID, response.UserID)
	require.Len(t, response.Ships, 2)
	require.Equal(t, "MV Alpha", response.Ships[0].ShipName)
	require.Equal(t, "MV Zulu", response.Ships[1].ShipName)
}

func TestUserHandler_GetUserShips_UserNotFound(t *testing.T) {
	env := setupUserTestEnv(t)

	c, w := testContext(http.MethodGet, "/api/users/99/ships", nil)
	c.Params = gin.Params{{Key: "userId", Value: "99"}}

	env.handler.GetUserShips(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}
