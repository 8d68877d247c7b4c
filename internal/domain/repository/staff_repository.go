package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
	"github.com/alisinasultani/citycenter-api/pkg/pagination"
)

// StaffFilter holds the staff directory search criteria
type StaffFilter struct {
	Search   string
	Position string
	IsActive *bool
}

// StaffRepository defines the interface for staff data access
type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error)
	List(ctx context.Context, filter StaffFilter, params *pagination.PaginationParams) ([]*entity.Staff, int64, error)
	ListActive(ctx context.Context) ([]*entity.Staff, error)
	Update(ctx context.Context, staff *entity.Staff) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
