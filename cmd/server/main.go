package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/fleetops/ship-management-api/docs"
	"github.com/fleetops/ship-management-api/internal/config"
	"github.com/fleetops/ship-management-api/internal/database"
	"github.com/fleetops/ship-management-api/internal/handlers"
	"github.com/fleetops/ship-management-api/internal/middleware"
	"github.com/fleetops/ship-management-api/internal/repository"
	"github.com/fleetops/ship-management-api/internal/services"
)

// @title Ship Management API
// @version 1.0
// @description CRUD API for ships, users, crew lists, and financial reports.
// @BasePath /api
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	db := database.GetDB()

	shipRepo := repository.NewShipRepository(db)
	userRepo := repository.NewUserRepository(db)
	crewRepo := repository.NewCrewRepository(db)
	financialRepo := repository.NewFinancialRepository(db)

	shipService := services.NewShipService(shipRepo)
	userService := services.NewUserService(userRepo, shipRepo)
	crewService := services.NewCrewService(crewRepo)
	financialService := services.NewFinancialService(financialRepo)

	shipHandler := handlers.NewShipHandler(shipService)
	userHandler := handlers.NewUserHandler(userService)
	crewHandler := handlers.NewCrewHandler(crewService)
	financialHandler := handlers.NewFinancialHandler(financialService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		ships := api.Group("/ships")
		{
			ships.GET("", shipHandler.ListShips)
			ships.GET("/active", shipHandler.ListActiveShips)
			ships.GET("/:shipCode", shipHandler.GetShip)
			ships.POST("", shipHandler.CreateShip)
			ships.PUT("/:shipCode", shipHandler.UpdateShip)
		}

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:userId", userHandler.GetUser)
			users.POST("", userHandler.CreateUser)
			users.GET("/:userId/ships", userHandler.GetUserShips)
			users.POST("/:userId/ships", userHandler.AssignShip)
			users.DELETE("/:userId/ships/:shipCode", userHandler.RemoveShip)
		}

		api.GET("/crew", crewHandler.ListCrew)

		financial := api.Group("/financial")
		{
			financial.GET("/report", financialHandler.GetReport)
			financial.GET("/report/summary", financialHandler.GetReportSummary)
			financial.GET("/report/detail", financialHandler.GetReportDetail)
		}
	}

	addr := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	logrus.Infof("server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
