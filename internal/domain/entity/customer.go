package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a shopkeeper renting a unit in the building. Customers are
// the payees of rent, service and utility ledgers.
type Customer struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string         `gorm:"type:varchar(100);not null" json:"name"`
	LastName   string         `gorm:"type:varchar(100)" json:"last_name"`
	FatherName string         `gorm:"type:varchar(100)" json:"father_name"`
	Code       string         `gorm:"type:varchar(50);uniqueIndex" json:"code"`
	Phone      string         `gorm:"type:varchar(20)" json:"phone"`
	ShopNumber string         `gorm:"type:varchar(20)" json:"shop_number"`
	Floor      string         `gorm:"type:varchar(50);index" json:"floor"`
	Picture    string         `gorm:"type:text" json:"picture"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

// BeforeCreate hook to generate UUID
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// FullName returns the customer's full name
func (c *Customer) FullName() string {
	if c.LastName == "" {
		return c.Name
	}
	return c.Name + " " + c.LastName
}
