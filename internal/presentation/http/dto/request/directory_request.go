package request

import "time"

// CreateCustomerRequest represents the create customer request body
type CreateCustomerRequest struct {
	Name       string `json:"name" binding:"required"`
	LastName   string `json:"last_name"`
	FatherName string `json:"father_name"`
	Code       string `json:"code"`
	Phone      string `json:"phone"`
	ShopNumber string `json:"shop_number"`
	Floor      string `json:"floor"`
	Picture    string `json:"picture"`
}

// UpdateCustomerRequest represents the update customer request body
type UpdateCustomerRequest struct {
	Name       *string `json:"name"`
	LastName   *string `json:"last_name"`
	FatherName *string `json:"father_name"`
	Phone      *string `json:"phone"`
	ShopNumber *string `json:"shop_number"`
	Floor      *string `json:"floor"`
	Picture    *string `json:"picture"`
	IsActive   *bool   `json:"is_active"`
}

// CreateStaffRequest represents the create staff request body
type CreateStaffRequest struct {
	Name       string     `json:"name" binding:"required"`
	LastName   string     `json:"last_name"`
	FatherName string     `json:"father_name"`
	Position   string     `json:"position"`
	Phone      string     `json:"phone"`
	Salary     float64    `json:"salary"`
	Picture    string     `json:"picture"`
	HiredAt    *time.Time `json:"hired_at"`
}

// UpdateStaffRequest represents the update staff request body
type UpdateStaffRequest struct {
	Name       *string  `json:"name"`
	LastName   *string  `json:"last_name"`
	FatherName *string  `json:"father_name"`
	Position   *string  `json:"position"`
	Phone      *string  `json:"phone"`
	Salary     *float64 `json:"salary"`
	Picture    *string  `json:"picture"`
	IsActive   *bool    `json:"is_active"`
}

// CreateAthleteRequest represents the create athlete request body
type CreateAthleteRequest struct {
	Name       string     `json:"name" binding:"required"`
	LastName   string     `json:"last_name"`
	FatherName string     `json:"father_name"`
	Phone      string     `json:"phone"`
	Sport      string     `json:"sport"`
	Picture    string     `json:"picture"`
	JoinedAt   *time.Time `json:"joined_at"`
}

// UpdateAthleteRequest represents the update athlete request body
type UpdateAthleteRequest struct {
	Name       *string `json:"name"`
	LastName   *string `json:"last_name"`
	FatherName *string `json:"father_name"`
	Phone      *string `json:"phone"`
	Sport      *string `json:"sport"`
	Picture    *string `json:"picture"`
	IsActive   *bool   `json:"is_active"`
}
