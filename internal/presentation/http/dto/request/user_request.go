package request

// CreateUserRequest represents the create user request body
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"required"`
}

// UpdateUserRequest represents the update user request body
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	IsActive  *bool   `json:"is_active"`
}

// RoleRequest represents a role grant or revoke body
type RoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateSettingsRequest represents the company settings update body
type UpdateSettingsRequest struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Logo       *string `json:"logo"`
	FooterNote *string `json:"footer_note"`
}
