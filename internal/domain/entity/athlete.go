package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Athlete is a member of the building's gym.
type Athlete struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string         `gorm:"type:varchar(100);not null" json:"name"`
	LastName   string         `gorm:"type:varchar(100)" json:"last_name"`
	FatherName string         `gorm:"type:varchar(100)" json:"father_name"`
	Phone      string         `gorm:"type:varchar(20)" json:"phone"`
	Sport      string         `gorm:"type:varchar(100)" json:"sport"`
	Picture    string         `gorm:"type:text" json:"picture"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	JoinedAt   *time.Time     `json:"joined_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Fees []AthleteFee `gorm:"foreignKey:AthleteID" json:"fees,omitempty"`
}

// TableName specifies the table name
func (Athlete) TableName() string {
	return "athletes"
}

// BeforeCreate hook to generate UUID
func (a *Athlete) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// FullName returns the athlete's full name
func (a *Athlete) FullName() string {
	if a.LastName == "" {
		return a.Name
	}
	return a.Name + " " + a.LastName
}

// AthleteFee is one month's membership fee for an athlete. Unlike the
// ledgered kinds, fees are individual rows rather than period documents,
// but the remainder follows the same charge minus taken rule.
type AthleteFee struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	AthleteID uuid.UUID      `gorm:"type:uuid;not null;index" json:"athlete_id"`
	Year      int            `gorm:"not null" json:"year"`
	Month     string         `gorm:"type:varchar(20);not null" json:"month"`
	Fee       float64        `gorm:"type:decimal(12,2);default:0" json:"fee"`
	Taken     float64        `gorm:"type:decimal(12,2);default:0" json:"taken"`
	Remainder float64        `gorm:"type:decimal(12,2);default:0" json:"remainder"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Athlete *Athlete `gorm:"foreignKey:AthleteID" json:"athlete,omitempty"`
}

// TableName specifies the table name
func (AthleteFee) TableName() string {
	return "athlete_fees"
}

// BeforeCreate hook to generate UUID
func (f *AthleteFee) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// Recalculate refreshes the derived remainder before persisting.
func (f *AthleteFee) Recalculate() {
	f.Remainder = f.Fee - f.Taken
}

// BeforeSave keeps the stored remainder consistent with fee and taken.
func (f *AthleteFee) BeforeSave(tx *gorm.DB) error {
	f.Recalculate()
	return nil
}
