package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
	"github.com/alisinasultani/citycenter-api/pkg/pagination"
)

// AthleteFilter holds the athlete directory search criteria
type AthleteFilter struct {
	Search   string
	Sport    string
	IsActive *bool
}

// AthleteRepository defines the interface for athlete data access
type AthleteRepository interface {
	Create(ctx context.Context, athlete *entity.Athlete) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Athlete, error)
	List(ctx context.Context, filter AthleteFilter, params *pagination.PaginationParams) ([]*entity.Athlete, int64, error)
	Update(ctx context.Context, athlete *entity.Athlete) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// AthleteFeeRepository defines the interface for athlete fee data access
type AthleteFeeRepository interface {
	Create(ctx context.Context, fee *entity.AthleteFee) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AthleteFee, error)
	GetByAthleteAndPeriod(ctx context.Context, athleteID uuid.UUID, year int, month string) (*entity.AthleteFee, error)
	ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]*entity.AthleteFee, error)
	ListByPeriod(ctx context.Context, year int, month string) ([]*entity.AthleteFee, error)
	Update(ctx context.Context, fee *entity.AthleteFee) error
	Delete(ctx context.Context, id uuid.UUID) error
}
