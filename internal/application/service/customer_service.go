package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
	"github.com/alisinasultani/citycenter-api/internal/domain/repository"
	"github.com/alisinasultani/citycenter-api/pkg/apperror"
	"github.com/alisinasultani/citycenter-api/pkg/pagination"
)

// CustomerService handles shopkeeper directory operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name       string
	LastName   string
	FatherName string
	Code       string
	Phone      string
	ShopNumber string
	Floor      string
	Picture    string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("Invalid customer", []apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}

	if input.Code != "" {
		existing, err := s.customerRepo.GetByCode(ctx, input.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A customer with this code already exists")
		}
	}

	customer := &entity.Customer{
		Name:       input.Name,
		LastName:   input.LastName,
		FatherName: input.FatherName,
		Code:       input.Code,
		Phone:      input.Phone,
		ShopNumber: input.ShopNumber,
		Floor:      input.Floor,
		Picture:    input.Picture,
		IsActive:   true,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with directory filters
func (s *CustomerService) ListCustomers(ctx context.Context, filter repository.CustomerFilter, params *pagination.PaginationParams) (*pagination.PaginatedResult[*entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, filter, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Name       *string
	LastName   *string
	FatherName *string
	Phone      *string
	ShopNumber *string
	Floor      *string
	Picture    *string
	IsActive   *bool
}

// UpdateCustomer updates an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.LastName != nil {
		customer.LastName = *input.LastName
	}
	if input.FatherName != nil {
		customer.FatherName = *input.FatherName
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.ShopNumber != nil {
		customer.ShopNumber = *input.ShopNumber
	}
	if input.Floor != nil {
		customer.Floor = *input.Floor
	}
	if input.Picture != nil {
		customer.Picture = *input.Picture
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer removes a customer from the directory
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}
