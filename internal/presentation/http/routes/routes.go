package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alisinasultani/citycenter-api/internal/config"
	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
	"github.com/alisinasultani/citycenter-api/internal/presentation/http/handler"
	"github.com/alisinasultani/citycenter-api/internal/presentation/http/middleware"
	"github.com/alisinasultani/citycenter-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Period    *handler.PeriodHandler
	Receipt   *handler.ReceiptHandler
	Customer  *handler.CustomerHandler
	Staff     *handler.StaffHandler
	Athlete   *handler.AthleteHandler
	User      *handler.UserHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuthURL)
		auth.POST("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.GET("/auth/me", h.Auth.Me)
	protected.PATCH("/auth/profile", h.Auth.UpdateProfile)
	protected.POST("/auth/change-password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard/stats", middleware.RequirePermission("view-dashboard"), h.Dashboard.Stats)

	// Billing ledgers, one group per kind
	registerPeriodRoutes(protected, h, "/rent", enum.KindRent)
	registerPeriodRoutes(protected, h, "/services", enum.KindService)
	registerPeriodRoutes(protected, h, "/units/bills", enum.KindUtility)
	registerPeriodRoutes(protected, h, "/salaries", enum.KindSalary)

	// Receipts
	registerReceiptRoutes(protected, h)

	// Directories
	registerCustomerRoutes(protected, h)
	registerStaffRoutes(protected, h)
	registerAthleteRoutes(protected, h)

	// Users and roles (admin)
	registerUserRoutes(protected, h)

	// Company settings
	settings := protected.Group("/settings")
	settings.Use(middleware.RequirePermission("manage-settings"))
	{
		settings.GET("", h.Settings.Get)
		settings.PATCH("", h.Settings.Update)
	}
}

func registerPeriodRoutes(protected *gin.RouterGroup, h *Handlers, path string, kind enum.BillingKind) {
	periods := protected.Group(path)
	{
		view := periods.Group("")
		view.Use(middleware.RequirePermission("view-billing"))
		{
			view.GET("", h.Period.List(kind))
			view.GET("/:id", h.Period.Get)
			view.GET("/:id/totals", h.Period.Totals)
		}

		manage := periods.Group("")
		manage.Use(middleware.RequirePermission("manage-billing"))
		{
			manage.POST("", h.Period.Create(kind))
			manage.POST("/:id/payees", h.Period.AddPayee)
			manage.PATCH("/:id", h.Period.Submit)
			manage.PATCH("/:id/entry", h.Period.EditField)
			manage.DELETE("/:id", h.Period.Delete)
		}
	}
}

func registerReceiptRoutes(protected *gin.RouterGroup, h *Handlers) {
	receipts := protected.Group("/receipts")
	receipts.Use(middleware.RequirePermission("view-billing"))
	{
		receipts.GET("/:periodID/:payeeID", h.Receipt.Get)
		receipts.GET("/:periodID/:payeeID/pdf", h.Receipt.PDF)
		receipts.POST("/:periodID/:payeeID/print", middleware.RequirePermission("print-receipts"), h.Receipt.Print)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission("manage-customers"))
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PATCH("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerStaffRoutes(protected *gin.RouterGroup, h *Handlers) {
	staff := protected.Group("/staff")
	staff.Use(middleware.RequirePermission("manage-staff"))
	{
		staff.GET("", h.Staff.List)
		staff.POST("", h.Staff.Create)
		staff.GET("/:id", h.Staff.Get)
		staff.PATCH("/:id", h.Staff.Update)
		staff.DELETE("/:id", h.Staff.Delete)
	}
}

func registerAthleteRoutes(protected *gin.RouterGroup, h *Handlers) {
	athletes := protected.Group("/athletes")
	athletes.Use(middleware.RequirePermission("manage-athletes"))
	{
		athletes.GET("", h.Athlete.List)
		athletes.POST("", h.Athlete.Create)
		athletes.GET("/:id", h.Athlete.Get)
		athletes.PATCH("/:id", h.Athlete.Update)
		athletes.DELETE("/:id", h.Athlete.Delete)

		athletes.GET("/:id/fees", h.Athlete.ListFees)
		athletes.POST("/:id/fees", h.Athlete.RecordFee)
	}

	fees := protected.Group("/fees")
	fees.Use(middleware.RequirePermission("manage-athletes"))
	{
		fees.GET("", h.Athlete.ListFeesByPeriod)
		fees.PATCH("/:feeID", h.Athlete.UpdateFee)
		fees.DELETE("/:feeID", h.Athlete.DeleteFee)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PATCH("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
		users.POST("/:id/roles", h.User.AssignRole)
		users.DELETE("/:id/roles", h.User.RemoveRole)
	}

	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}
}
