package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-book/internal/audit"
	"github.com/BruksfildServices01/barber-book/internal/cache"
	"github.com/BruksfildServices01/barber-book/internal/config"
	domain "github.com/BruksfildServices01/barber-book/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-book/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-book/internal/infra/repository"
	"github.com/BruksfildServices01/barber-book/internal/middleware"
	"github.com/BruksfildServices01/barber-book/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-book/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(log))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	var repo domain.Repository = infraRepo.NewAppointmentGormRepository(db)

	var catalogCache *cache.CatalogCache
	if rdb != nil {
		catalogCache = cache.NewCatalogCache(repo, rdb, log)
		repo = catalogCache
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(repo, auditDispatcher)
	updateUC := ucAppointment.NewUpdateAppointment(repo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(repo, auditDispatcher)
	confirmUC := ucAppointment.NewConfirmAppointment(repo, auditDispatcher)
	completeUC := ucAppointment.NewCompleteAppointment(repo, auditDispatcher)
	deleteUC := ucAppointment.NewDeleteAppointment(repo, auditDispatcher)
	availabilityUC := ucAppointment.NewGetAvailability(repo)
	queries := ucAppointment.NewAppointmentQueries(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	barbershopHandler := handlers.NewBarbershopHandler(db, invalidator(catalogCache))
	serviceHandler := handlers.NewServiceHandler(db, invalidator(catalogCache))
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		updateUC,
		cancelUC,
		confirmUC,
		completeUC,
		deleteUC,
		availabilityUC,
		queries,
	)

	// ======================================================
	// HEALTH
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/register-client", authHandler.RegisterClient)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC READS
		// ------------------------------
		api.GET("/barbershops/slug/:slug", barbershopHandler.FindBySlug)
		api.GET("/barbershops/:barbershop_id", barbershopHandler.FindByID)
		api.GET("/barbershops/:barbershop_id/barbers", barbershopHandler.ListBarbers)
		api.GET("/barbershops/:barbershop_id/services", serviceHandler.FindByBarbershop)
		api.GET("/services/:id", serviceHandler.FindByID)
		api.GET("/barbers/:barber_id/working-hours", workingHoursHandler.FindByBarber)
		api.GET("/appointments/availability", appointmentHandler.Availability)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// Appointments
			secured.GET("/appointments", appointmentHandler.FindAll)
			secured.GET("/appointments/range", appointmentHandler.FindByDateRange)
			secured.GET("/appointments/barber/:barber_id", appointmentHandler.FindByBarber)
			secured.GET("/appointments/client/:client_id", appointmentHandler.FindByClient)
			secured.GET("/appointments/barbershop/:barbershop_id", appointmentHandler.FindByBarbershop)
			secured.GET("/appointments/:id", appointmentHandler.FindByID)
			secured.POST(
				"/appointments/barber/:barber_id/barbershop/:barbershop_id",
				appointmentHandler.Create,
			)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// Shop management
			staff := secured.Group("/")
			staff.Use(middleware.RequireRole(models.RoleOwner, models.RoleManager))
			{
				staff.PATCH("/barbershops/:barbershop_id", barbershopHandler.Update)
				staff.POST("/barbershops/:barbershop_id/services", serviceHandler.Create)
				staff.PATCH("/services/:id", serviceHandler.Update)
				staff.DELETE("/services/:id", serviceHandler.Delete)
				staff.PUT("/barbers/:barber_id/working-hours", workingHoursHandler.Put)
			}
		}
	}
}

// invalidator keeps the nil check in one place: a nil *CatalogCache must
// become a nil interface, not a typed nil.
func invalidator(c *cache.CatalogCache) handlers.CatalogInvalidator {
	if c == nil {
		return nil
	}
	return c
}
