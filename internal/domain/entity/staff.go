package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff is a building employee paid through the salary ledger.
type Staff struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string         `gorm:"type:varchar(100);not null" json:"name"`
	LastName   string         `gorm:"type:varchar(100)" json:"last_name"`
	FatherName string         `gorm:"type:varchar(100)" json:"father_name"`
	Position   string         `gorm:"type:varchar(100)" json:"position"`
	Phone      string         `gorm:"type:varchar(20)" json:"phone"`
	Salary     float64        `gorm:"type:decimal(12,2);default:0" json:"salary"`
	Picture    string         `gorm:"type:text" json:"picture"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	HiredAt    *time.Time     `json:"hired_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name
func (Staff) TableName() string {
	return "staff"
}

// BeforeCreate hook to generate UUID
func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// FullName returns the staff member's full name
func (s *Staff) FullName() string {
	if s.LastName == "" {
		return s.Name
	}
	return s.Name + " " + s.LastName
}
