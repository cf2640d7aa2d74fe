package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotel-api/config"
	"hotel-api/controllers"
	"hotel-api/middleware"
	"hotel-api/services"
	"hotel-api/services/logger"
)

const apiVersion = "1.0.0"

// SetupRoutes gắn toàn bộ endpoint của API vào router
func SetupRoutes(router *gin.Engine, db *gorm.DB, rdb *redis.Client, m *melody.Melody) {
	log := logger.NewDefaultLogger(logger.InfoLevel)

	roomService := services.NewRoomService(db, rdb, log)
	bookingService := services.NewBookingService(db, rdb, m, log, config.MaxStayDays())
	statsService := services.NewStatsService(db, rdb)
	searchService := services.NewSearchService(db)

	roomController := controllers.NewRoomController(roomService, rdb)
	bookingController := controllers.NewBookingController(bookingService)
	statsController := controllers.NewStatsController(statsService)
	searchController := controllers.NewSearchController(searchService)
	authController := controllers.NewAuthController(db)
	systemController := controllers.NewSystemController(db, apiVersion)

	// Admin nhận cả secret (query/header) lẫn Bearer token từ /api/login
	adminOnly := middleware.AdminRequired(middleware.NewChainAuthorizer(
		middleware.NewTokenAuthorizer(),
		middleware.NewSecretAuthorizer(),
	))

	router.Use(middleware.SessionMiddleware())

	router.GET("/", systemController.Home)
	router.GET("/ping", systemController.Ping)

	api := router.Group("/api")

	api.GET("/health", systemController.Health)
	api.POST("/login", authController.Login)
	api.GET("/search", searchController.Search)
	api.GET("/stats", statsController.Summary)

	api.GET("/rooms", roomController.List)
	api.GET("/rooms/available", roomController.Available)
	api.GET("/rooms/:id", roomController.Get)
	api.POST("/rooms", adminOnly, roomController.Create)
	api.PUT("/rooms/:id", adminOnly, roomController.Update)
	api.PATCH("/rooms/:id", adminOnly, roomController.Update)
	api.DELETE("/rooms/:id", adminOnly, roomController.Delete)
	api.POST("/rooms/:id/images", adminOnly, roomController.UploadImage)

	api.POST("/bookings", bookingController.Create)
	api.GET("/bookings", bookingController.List)
	api.GET("/bookings/check-availability", bookingController.CheckAvailability)
	api.GET("/bookings/:id", bookingController.Get)
	api.PUT("/bookings/:id", bookingController.Update)
	api.PUT("/bookings/:id/status", bookingController.UpdateStatus)
	api.DELETE("/bookings/:id", adminOnly, bookingController.Delete)
}
