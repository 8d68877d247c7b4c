package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
	"github.com/alisinasultani/citycenter-api/internal/domain/repository"
	"github.com/alisinasultani/citycenter-api/pkg/apperror"
	"github.com/alisinasultani/citycenter-api/pkg/pagination"
)

// StaffService handles staff directory operations
type StaffService struct {
	staffRepo repository.StaffRepository
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo repository.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

// CreateStaffInput represents the create staff input
type CreateStaffInput struct {
	Name       string
	LastName   string
	FatherName string
	Position   string
	Phone      string
	Salary     float64
	Picture    string
	HiredAt    *time.Time
}

// CreateStaff creates a new staff member
func (s *StaffService) CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.Staff, error) {
	var fields []apperror.FieldError
	if input.Name == "" {
		fields = append(fields, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.Salary < 0 {
		fields = append(fields, apperror.FieldError{Field: "salary", Message: "Salary cannot be negative"})
	}
	if len(fields) > 0 {
		return nil, apperror.NewValidationError("Invalid staff member", fields)
	}

	staff := &entity.Staff{
		Name:       input.Name,
		LastName:   input.LastName,
		FatherName: input.FatherName,
		Position:   input.Position,
		Phone:      input.Phone,
		Salary:     input.Salary,
		Picture:    input.Picture,
		IsActive:   true,
		HiredAt:    input.HiredAt,
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// GetStaff retrieves a staff member by ID
func (s *StaffService) GetStaff(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}
	return staff, nil
}

// ListStaff lists staff members with directory filters
func (s *StaffService) ListStaff(ctx context.Context, filter repository.StaffFilter, params *pagination.PaginationParams) (*pagination.PaginatedResult[*entity.Staff], error) {
	staff, total, err := s.staffRepo.List(ctx, filter, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(staff, pag), nil
}

// UpdateStaffInput represents the update staff input
type UpdateStaffInput struct {
	Name       *string
	LastName   *string
	FatherName *string
	Position   *string
	Phone      *string
	Salary     *float64
	Picture    *string
	IsActive   *bool
}

// UpdateStaff updates an existing staff member
func (s *StaffService) UpdateStaff(ctx context.Context, id uuid.UUID, input *UpdateStaffInput) (*entity.Staff, error) {
	staff, err := s.GetStaff(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		staff.Name = *input.Name
	}
	if input.LastName != nil {
		staff.LastName = *input.LastName
	}
	if input.FatherName != nil {
		staff.FatherName = *input.FatherName
	}
	if input.Position != nil {
		staff.Position = *input.Position
	}
	if input.Phone != nil {
		staff.Phone = *input.Phone
	}
	if input.Salary != nil {
		if *input.Salary < 0 {
			return nil, apperror.NewValidationError("Invalid staff member", []apperror.FieldError{
				{Field: "salary", Message: "Salary cannot be negative"},
			})
		}
		staff.Salary = *input.Salary
	}
	if input.Picture != nil {
		staff.Picture = *input.Picture
	}
	if input.IsActive != nil {
		staff.IsActive = *input.IsActive
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// DeleteStaff removes a staff member from the directory
func (s *StaffService) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetStaff(ctx, id); err != nil {
		return err
	}
	return s.staffRepo.Delete(ctx, id)
}
