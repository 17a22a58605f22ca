package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Ealanisln/vetify-api/internal/audit"
	"github.com/Ealanisln/vetify-api/internal/config"
	"github.com/Ealanisln/vetify-api/internal/handlers"
	infraRepo "github.com/Ealanisln/vetify-api/internal/infra/repository"
	"github.com/Ealanisln/vetify-api/internal/metrics"
	"github.com/Ealanisln/vetify-api/internal/middleware"
	"github.com/Ealanisln/vetify-api/internal/permissions"
	"github.com/Ealanisln/vetify-api/internal/ratelimit"
	ucAppointment "github.com/Ealanisln/vetify-api/internal/usecase/appointment"
	ucAvailability "github.com/Ealanisln/vetify-api/internal/usecase/availability"
	ucCash "github.com/Ealanisln/vetify-api/internal/usecase/cash"
)

// Deps are the process-wide singletons the routes are built from. A nil
// Limiter leaves the public API unthrottled; a nil Now uses the wall clock.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Logger  zerolog.Logger
	Audit   *audit.Dispatcher
	Limiter ratelimit.Limiter
	Now     func() time.Time
}

// publicRateWindow is the window PUBLIC_RATE_LIMIT is counted over.
const publicRateWindow = time.Minute

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.CORSMiddleware())

	now := d.Now
	if now == nil {
		now = time.Now
	}

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(d.DB)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	cashRepo := infraRepo.NewCashGormRepository(d.DB)
	auditLogger := audit.New(d.DB)

	resolver := ucAvailability.NewResolver(availabilityRepo, now)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(
		ucAvailability.NewGetAvailableSlots(resolver),
		ucAvailability.NewCheckSlotConflict(resolver),
	)

	businessHoursHandler := handlers.NewBusinessHoursHandler(
		ucAvailability.NewBusinessHours(availabilityRepo, resolver, d.Audit),
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewBook(appointmentRepo, resolver, d.Audit),
		ucAppointment.NewReschedule(appointmentRepo, resolver, d.Audit),
		ucAppointment.NewCancelAppointment(appointmentRepo, d.Audit, now),
		ucAppointment.NewCompleteAppointment(appointmentRepo, d.Audit, now),
		ucAppointment.NewMarkNoShow(appointmentRepo, d.Audit),
		ucAppointment.NewListAppointmentsByDate(appointmentRepo, resolver),
	)

	requestHandler := handlers.NewRequestHandler(
		ucAppointment.NewSubmitRequest(appointmentRepo, resolver, d.Audit),
		ucAppointment.NewListRequests(appointmentRepo),
		ucAppointment.NewConfirmRequest(appointmentRepo, resolver, d.Audit),
		ucAppointment.NewRejectRequest(appointmentRepo, d.Audit),
	)

	cashHandler := handlers.NewCashHandler(handlers.CashUseCases{
		OpenDrawer:  ucCash.NewOpenDrawer(cashRepo, d.Audit, now),
		CloseDrawer: ucCash.NewCloseDrawer(cashRepo, d.Audit, now),
		StartShift:  ucCash.NewStartShift(cashRepo, d.Audit, now),
		EndShift:    ucCash.NewEndShift(cashRepo, d.Audit, now),
		Handoff:     ucCash.NewHandoff(cashRepo, d.Audit, now),
		Record:      ucCash.NewRecordTransaction(cashRepo, d.Audit),
		Reports:     ucCash.NewReports(cashRepo),
	})

	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	metrics.Register()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public/:slug")
		if d.Limiter != nil {
			publicAPI.Use(middleware.RateLimit(d.Limiter, publicRateWindow))
		}
		{
			publicAPI.GET("/availability", availabilityHandler.PublicSlots)
			publicAPI.POST("/availability/check", availabilityHandler.PublicCheck)
			publicAPI.POST("/appointment-requests", requestHandler.Submit)
		}

		// ------------------------------
		// STAFF API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			can := middleware.RequireCapability
			const (
				read  = permissions.ActionRead
				write = permissions.ActionWrite
			)

			secured.GET("/availability", can(permissions.FeatureAppointments, read), availabilityHandler.Slots)
			secured.POST("/availability/check", can(permissions.FeatureAppointments, read), availabilityHandler.Check)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			appts := secured.Group("/appointments")
			{
				appts.GET("", can(permissions.FeatureAppointments, read), appointmentHandler.ListByDate)
				appts.POST("", can(permissions.FeatureAppointments, write), appointmentHandler.Create)
				appts.PATCH("/:id/reschedule", can(permissions.FeatureAppointments, write), appointmentHandler.Reschedule)
				appts.PATCH("/:id/cancel", can(permissions.FeatureAppointments, write), appointmentHandler.Cancel)
				appts.PATCH("/:id/complete", can(permissions.FeatureAppointments, write), appointmentHandler.Complete)
				appts.PATCH("/:id/no-show", can(permissions.FeatureAppointments, write), appointmentHandler.NoShow)
			}

			requests := secured.Group("/appointment-requests")
			{
				requests.GET("", can(permissions.FeatureRequests, read), requestHandler.List)
				requests.PATCH("/:id/confirm", can(permissions.FeatureRequests, write), requestHandler.Confirm)
				requests.PATCH("/:id/reject", can(permissions.FeatureRequests, write), requestHandler.Reject)
			}

			// ------------------------------
			// BUSINESS HOURS
			// ------------------------------
			hours := secured.Group("/business-hours")
			{
				hours.GET("", can(permissions.FeatureBusinessHours, read), businessHoursHandler.Get)
				hours.PUT("", can(permissions.FeatureBusinessHours, write), businessHoursHandler.Update)
				hours.PUT("/overrides", can(permissions.FeatureBusinessHours, write), businessHoursHandler.SetOverride)
			}

			// ------------------------------
			// CASH
			// ------------------------------
			drawers := secured.Group("/cash/drawers")
			{
				drawers.POST("", can(permissions.FeatureCash, write), cashHandler.OpenDrawer)
				drawers.POST("/:id/close", can(permissions.FeatureCash, write), cashHandler.CloseDrawer)
				drawers.POST("/:id/transactions", can(permissions.FeatureCash, write), cashHandler.RecordTransaction)
				drawers.GET("/:id/balance", can(permissions.FeatureCash, read), cashHandler.DrawerBalance)
				drawers.GET("/:id/breakdown", can(permissions.FeatureCashReports, read), cashHandler.Breakdown)
			}

			shifts := secured.Group("/cash/shifts")
			{
				shifts.POST("", can(permissions.FeatureCash, write), cashHandler.StartShift)
				shifts.GET("/stats", can(permissions.FeatureCashReports, read), cashHandler.Stats)
				shifts.POST("/:id/end", can(permissions.FeatureCash, write), cashHandler.EndShift)
				shifts.POST("/:id/handoff", can(permissions.FeatureCash, write), cashHandler.Handoff)
				shifts.GET("/:id/balance", can(permissions.FeatureCash, read), cashHandler.ShiftBalance)
			}

			secured.GET("/audit-logs", can(permissions.FeatureAuditLogs, read), auditLogsHandler.List)
		}
	}
}
