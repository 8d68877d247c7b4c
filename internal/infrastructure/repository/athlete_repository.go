package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
	domainRepo "github.com/alisinasultani/citycenter-api/internal/domain/repository"
	"github.com/alisinasultani/citycenter-api/pkg/pagination"
)

type athleteRepository struct {
	db *gorm.DB
}

// NewAthleteRepository creates a new athlete repository
func NewAthleteRepository(db *gorm.DB) domainRepo.AthleteRepository {
	return &athleteRepository{db: db}
}

func (r *athleteRepository) Create(ctx context.Context, athlete *entity.Athlete) error {
	return r.db.WithContext(ctx).Create(athlete).Error
}

func (r *athleteRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Athlete, error) {
	var athlete entity.Athlete
	err := r.db.WithContext(ctx).First(&athlete, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &athlete, err
}

func (r *athleteRepository) List(ctx context.Context, filter domainRepo.AthleteFilter, params *pagination.PaginationParams) ([]*entity.Athlete, int64, error) {
	var athletes []*entity.Athlete
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Athlete{})

	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR last_name ILIKE ? OR father_name ILIKE ?",
			search, search, search)
	}
	if filter.Sport != "" {
		query = query.Where("sport = ?", filter.Sport)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&athletes).Error

	return athletes, total, err
}

func (r *athleteRepository) Update(ctx context.Context, athlete *entity.Athlete) error {
	return r.db.WithContext(ctx).Save(athlete).Error
}

func (r *athleteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Athlete{}, "id = ?", id).Error
}

func (r *athleteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Athlete{}).Count(&count).Error
	return count, err
}

type athleteFeeRepository struct {
	db *gorm.DB
}

// NewAthleteFeeRepository creates a new athlete fee repository
func NewAthleteFeeRepository(db *gorm.DB) domainRepo.AthleteFeeRepository {
	return &athleteFeeRepository{db: db}
}

func (r *athleteFeeRepository) Create(ctx context.Context, fee *entity.AthleteFee) error {
	return r.db.WithContext(ctx).Create(fee).Error
}

func (r *athleteFeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AthleteFee, error) {
	var fee entity.AthleteFee
	err := r.db.WithContext(ctx).Preload("Athlete").First(&fee, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &fee, err
}

func (r *athleteFeeRepository) GetByAthleteAndPeriod(ctx context.Context, athleteID uuid.UUID, year int, month string) (*entity.AthleteFee, error) {
	var fee entity.AthleteFee
	err := r.db.WithContext(ctx).
		First(&fee, "athlete_id = ? AND year = ? AND month = ?", athleteID, year, month).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &fee, err
}

func (r *athleteFeeRepository) ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]*entity.AthleteFee, error) {
	var fees []*entity.AthleteFee
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("year DESC, created_at DESC").
		Find(&fees).Error
	return fees, err
}

func (r *athleteFeeRepository) ListByPeriod(ctx context.Context, year int, month string) ([]*entity.AthleteFee, error) {
	var fees []*entity.AthleteFee
	err := r.db.WithContext(ctx).
		Preload("Athlete").
		Where("year = ? AND month = ?", year, month).
		Find(&fees).Error
	return fees, err
}

func (r *athleteFeeRepository) Update(ctx context.Context, fee *entity.AthleteFee) error {
	return r.db.WithContext(ctx).Save(fee).Error
}

func (r *athleteFeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.AthleteFee{}, "id = ?", id).Error
}
