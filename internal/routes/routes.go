package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CourtsideServices01/court-booking-api/internal/audit"
	"github.com/CourtsideServices01/court-booking-api/internal/config"
	"github.com/CourtsideServices01/court-booking-api/internal/handlers"
	infraRepo "github.com/CourtsideServices01/court-booking-api/internal/infra/repository"
	"github.com/CourtsideServices01/court-booking-api/internal/middleware"
	"github.com/CourtsideServices01/court-booking-api/internal/tokenstore"
	ucBooking "github.com/CourtsideServices01/court-booking-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	revoker *tokenstore.Revoker,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	listUserBookingsUC := ucBooking.NewListUserBookings(
		bookingRepo,
	)

	availabilityUC := ucBooking.NewListCourtAvailability(
		bookingRepo,
	)

	sportBookingsUC := ucBooking.NewListSportBookings(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, revoker)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listUserBookingsUC,
	)

	managerHandler := handlers.NewManagerHandler(
		db,
		auditDispatcher,
		availabilityUC,
		sportBookingsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimit(
			cfg.AuthRateLimit,
			time.Duration(cfg.AuthRateWindowSec)*time.Second,
		))
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		bookings := api.Group("/bookings")
		bookings.Use(middleware.AuthMiddleware(cfg, revoker))
		{
			bookings.POST("/book", bookingHandler.Book)
			bookings.GET("/bookings", bookingHandler.ListMine)
		}

		// ------------------------------
		// MANAGER / CATALOG
		// ------------------------------
		manager := api.Group("/manager")
		manager.Use(middleware.AuthMiddleware(cfg, revoker))
		{
			// Catalog reads and center creation need auth only.
			manager.POST("/center", managerHandler.CreateCenter)
			manager.GET("/centers", managerHandler.ListCenters)
			manager.GET("/centers/:id/sports", managerHandler.ListSportsByCenter)
			manager.GET("/sports/:id/courts", managerHandler.ListCourtsBySport)

			managerOnly := manager.Group("/")
			managerOnly.Use(middleware.RequireManager())
			{
				managerOnly.POST("/sport", managerHandler.CreateSport)
				managerOnly.POST("/court", managerHandler.CreateCourt)
				managerOnly.PUT("/court/:id/slots", managerHandler.UpdateSlots)
				managerOnly.GET("/bookings/sport/:id", managerHandler.ListBookingsBySport)
				managerOnly.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
