package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/nearbiz/internal/audit"
	"github.com/BruksfildServices01/nearbiz/internal/auth"
	"github.com/BruksfildServices01/nearbiz/internal/config"
	domain "github.com/BruksfildServices01/nearbiz/internal/domain/appointment"
	"github.com/BruksfildServices01/nearbiz/internal/handlers"
	"github.com/BruksfildServices01/nearbiz/internal/infra/cache"
	"github.com/BruksfildServices01/nearbiz/internal/infra/nearbiz"
	infraRepo "github.com/BruksfildServices01/nearbiz/internal/infra/repository"
	"github.com/BruksfildServices01/nearbiz/internal/middleware"
	"github.com/BruksfildServices01/nearbiz/internal/timezone"
	ucAccount "github.com/BruksfildServices01/nearbiz/internal/usecase/account"
	ucAppointment "github.com/BruksfildServices01/nearbiz/internal/usecase/appointment"
	ucDiscovery "github.com/BruksfildServices01/nearbiz/internal/usecase/discovery"
)

const tokenTTL = 24 * time.Hour

// Infra groups the long-lived dependencies built in main.
type Infra struct {
	DB       *gorm.DB
	Upstream *nearbiz.Client
	Cache    cache.Cache
	Audit    *audit.Dispatcher
	Log      *zap.Logger
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, infra Infra) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerMin, infra.Log))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.Timezone)
	now := timezone.ClockIn(loc)

	directory := infraRepo.NewDirectory(infra.Upstream, infra.Cache, cfg.CacheTTL, infra.Log)
	userRepo := infraRepo.NewUserGormRepository(infra.DB)
	auditLogRepo := infraRepo.NewAuditLogGormRepository(infra.DB)

	tokens := auth.NewIssuer(cfg.JWTSecret, tokenTTL)

	slotOpts := domain.SlotOptions{
		Granularity:        cfg.SlotGranularity(),
		FallbackWhenClosed: cfg.SlotsFallbackWhenClosed,
	}

	// ======================================================
	// 🧠 USE CASES — ACCOUNTS
	// ======================================================
	var accountOpts []ucAccount.Option
	if cfg.MirrorRegistration {
		accountOpts = append(accountOpts, ucAccount.WithMirror(infra.Upstream))
	}

	accounts := ucAccount.NewService(
		userRepo,
		directory,
		tokens,
		infra.Audit,
		infra.Log,
		accountOpts...,
	)

	// ======================================================
	// 🧠 USE CASES — DISCOVERY
	// ======================================================
	searchNearbyUC := ucDiscovery.NewSearchNearby(
		directory,
		cfg.DefaultLocation(),
		cfg.DefaultRadiusKm,
		now,
		infra.Log,
	)

	getRouteUC := ucDiscovery.NewGetRoute(directory)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(
		directory,
		loc,
		now,
		slotOpts,
		infra.Log,
	)

	createBookingUC := ucAppointment.NewCreateBooking(
		directory,
		infra.Audit,
		loc,
		now,
		slotOpts,
		infra.Log,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(accounts)
	meHandler := handlers.NewMeHandler(accounts)

	discoveryHandler := handlers.NewDiscoveryHandler(
		searchNearbyUC,
		getRouteUC,
		cfg.DefaultLocation(),
	)
	businessHandler := handlers.NewBusinessHandler(directory)

	appointmentHandler := handlers.NewAppointmentHandler(
		getAvailabilityUC,
		createBookingUC,
		accounts,
		loc,
		now,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogRepo)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🗺️ DISCOVERY
		// ------------------------------
		api.GET("/categories", discoveryHandler.Categories)
		api.GET("/businesses/nearby", discoveryHandler.Nearby)
		api.GET("/businesses/:id", businessHandler.Get)
		api.GET("/businesses/:id/route", discoveryHandler.Route)

		// ------------------------------
		// 📅 SCHEDULING
		// ------------------------------
		api.GET("/businesses/:id/technicians", businessHandler.Technicians)
		api.GET("/businesses/:id/services", businessHandler.Services)
		api.GET("/businesses/:id/availability", appointmentHandler.Availability)
		api.GET("/calendar", appointmentHandler.Calendar)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
