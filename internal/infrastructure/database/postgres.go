package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/alisinasultani/citycenter-api/internal/config"
	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.LogQueries {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// User-related entities
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.PasswordResetToken{},

		// Directory entities
		&entity.Customer{},
		&entity.Staff{},
		&entity.Athlete{},
		&entity.AthleteFee{},

		// Billing entities
		&entity.BillingPeriod{},

		// System entities
		&entity.CompanySettings{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default roles, permissions and the admin user
func SeedDefaultData(db *gorm.DB, adminEmail, adminPassword string) error {
	log.Println("Seeding default data...")

	permissions := []entity.Permission{
		{Name: "view-dashboard", Resource: "dashboard", Action: "view"},
		{Name: "manage-billing", Resource: "billing", Action: "manage"},
		{Name: "view-billing", Resource: "billing", Action: "view"},
		{Name: "manage-customers", Resource: "customers", Action: "manage"},
		{Name: "manage-staff", Resource: "staff", Action: "manage"},
		{Name: "manage-athletes", Resource: "athletes", Action: "manage"},
		{Name: "manage-users", Resource: "users", Action: "manage"},
		{Name: "manage-settings", Resource: "settings", Action: "manage"},
		{Name: "print-receipts", Resource: "receipts", Action: "print"},
	}

	for i := range permissions {
		var existing entity.Permission
		if err := db.Where("name = ?", permissions[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&permissions[i]).Error; err != nil {
				log.Printf("Warning: failed to create permission %s: %v", permissions[i].Name, err)
			}
		}
	}

	var allPermissions []entity.Permission
	db.Find(&allPermissions)

	pick := func(names ...string) []entity.Permission {
		var out []entity.Permission
		for _, name := range names {
			for _, p := range allPermissions {
				if p.Name == name {
					out = append(out, p)
					break
				}
			}
		}
		return out
	}

	// Admin gets everything.
	var adminRole entity.Role
	if err := db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		adminRole = entity.Role{
			Name:        "admin",
			Description: "Full access to billing, directories and administration",
			Permissions: allPermissions,
		}
		if err := db.Create(&adminRole).Error; err != nil {
			log.Printf("Warning: failed to create admin role: %v", err)
		}
	}

	// Accountant edits ledgers and prints receipts but does not manage users.
	var accountantRole entity.Role
	if err := db.Where("name = ?", "accountant").First(&accountantRole).Error; err != nil {
		accountantRole = entity.Role{
			Name:        "accountant",
			Description: "Edits billing periods and prints receipts",
			Permissions: pick(
				"view-dashboard",
				"manage-billing",
				"view-billing",
				"manage-customers",
				"manage-staff",
				"manage-athletes",
				"print-receipts",
			),
		}
		if err := db.Create(&accountantRole).Error; err != nil {
			log.Printf("Warning: failed to create accountant role: %v", err)
		}
	}

	// Viewer reads everything but never writes a ledger.
	var viewerRole entity.Role
	if err := db.Where("name = ?", "viewer").First(&viewerRole).Error; err != nil {
		viewerRole = entity.Role{
			Name:        "viewer",
			Description: "Read-only access to dashboards and billing",
			Permissions: pick(
				"view-dashboard",
				"view-billing",
			),
		}
		if err := db.Create(&viewerRole).Error; err != nil {
			log.Printf("Warning: failed to create viewer role: %v", err)
		}
	}

	// Seed the initial admin account.
	if adminEmail != "" && adminPassword != "" {
		var existing entity.User
		if err := db.Where("email = ?", adminEmail).First(&existing).Error; err != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash admin password: %w", err)
			}
			admin := entity.User{
				Email:     adminEmail,
				Password:  string(hashed),
				FirstName: "Admin",
				IsActive:  true,
				Roles:     []entity.Role{adminRole},
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("Warning: failed to create admin user: %v", err)
			} else {
				log.Printf("Seeded admin user %s", adminEmail)
			}
		}
	}

	// Seed the receipt header settings row.
	var settings entity.CompanySettings
	if err := db.First(&settings).Error; err != nil {
		settings = entity.CompanySettings{
			Name:       "مرکز تجارتی سیتی سنتر",
			FooterNote: "تشکر از پرداخت شما",
		}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to seed company settings: %v", err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
