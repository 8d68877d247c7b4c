package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/alisinasultani/citycenter-api/internal/application/service"
	"github.com/alisinasultani/citycenter-api/internal/config"
	"github.com/alisinasultani/citycenter-api/internal/infrastructure/database"
	"github.com/alisinasultani/citycenter-api/internal/infrastructure/repository"
	"github.com/alisinasultani/citycenter-api/internal/presentation/http/handler"
	"github.com/alisinasultani/citycenter-api/internal/presentation/http/routes"
	"github.com/alisinasultani/citycenter-api/pkg/email"
	"github.com/alisinasultani/citycenter-api/pkg/oauth"
	"github.com/alisinasultani/citycenter-api/pkg/pdf"
	"github.com/alisinasultani/citycenter-api/pkg/printer"
	"github.com/alisinasultani/citycenter-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default roles, permissions and the admin account
	if err := database.SeedDefaultData(db, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	periodRepo := repository.NewBillingPeriodRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	athleteRepo := repository.NewAthleteRepository(db)
	athleteFeeRepo := repository.NewAthleteFeeRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUser,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromAddress,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
	})

	// Initialize the receipt printer
	transport, err := printer.NewTransportFromConfig(
		cfg.Printer.Transport,
		cfg.Printer.Device,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		transport = printer.NewNullTransport()
	}
	receiptPrinter := printer.NewPrinter(transport, 0)

	// Initialize the PDF renderer
	renderer := pdf.NewReceiptRenderer(cfg.PDF.FontPath, cfg.PDF.FontName)

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService, googleOAuthService)
	periodService := service.NewPeriodService(periodRepo, customerRepo, staffRepo)
	receiptService := service.NewReceiptService(periodRepo, customerRepo, staffRepo, settingsRepo, renderer, receiptPrinter)
	customerService := service.NewCustomerService(customerRepo)
	staffService := service.NewStaffService(staffRepo)
	athleteService := service.NewAthleteService(athleteRepo, athleteFeeRepo)
	userService := service.NewUserService(userRepo, roleRepo)
	dashboardService := service.NewDashboardService(periodRepo, customerRepo, staffRepo, athleteRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize handlers
	h := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Period:    handler.NewPeriodHandler(periodService),
		Receipt:   handler.NewReceiptHandler(receiptService),
		Customer:  handler.NewCustomerHandler(customerService),
		Staff:     handler.NewStaffHandler(staffService),
		Athlete:   handler.NewAthleteHandler(athleteService),
		User:      handler.NewUserHandler(userService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Settings:  handler.NewSettingsHandler(settingsService),
	}

	// Setup routes and start the server
	router := routes.Setup(h, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	addr := ":" + cfg.App.Port
	log.Printf("%s listening on %s", cfg.App.Name, addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
