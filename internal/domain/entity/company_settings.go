package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanySettings holds the building identity printed on receipt headers.
// A single row is seeded on first run and edited in place.
type CompanySettings struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Address     string         `gorm:"type:varchar(255)" json:"address"`
	Phone       string         `gorm:"type:varchar(50)" json:"phone"`
	Email       string         `gorm:"type:varchar(255)" json:"email"`
	Logo        string         `gorm:"type:text" json:"logo"`
	FooterNote  string         `gorm:"type:varchar(255)" json:"footer_note"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name
func (CompanySettings) TableName() string {
	return "company_settings"
}

// BeforeCreate hook to generate UUID
func (s *CompanySettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
