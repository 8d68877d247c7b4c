package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
	"github.com/alisinasultani/citycenter-api/internal/domain/repository"
	"github.com/alisinasultani/citycenter-api/internal/ledger"
	"github.com/alisinasultani/citycenter-api/pkg/apperror"
	"github.com/alisinasultani/citycenter-api/pkg/pagination"
)

// AthleteService handles gym member and fee operations
type AthleteService struct {
	athleteRepo repository.AthleteRepository
	feeRepo     repository.AthleteFeeRepository
}

// NewAthleteService creates a new athlete service
func NewAthleteService(athleteRepo repository.AthleteRepository, feeRepo repository.AthleteFeeRepository) *AthleteService {
	return &AthleteService{athleteRepo: athleteRepo, feeRepo: feeRepo}
}

// CreateAthleteInput represents the create athlete input
type CreateAthleteInput struct {
	Name       string
	LastName   string
	FatherName string
	Phone      string
	Sport      string
	Picture    string
	JoinedAt   *time.Time
}

// CreateAthlete creates a new athlete
func (s *AthleteService) CreateAthlete(ctx context.Context, input *CreateAthleteInput) (*entity.Athlete, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("Invalid athlete", []apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}

	athlete := &entity.Athlete{
		Name:       input.Name,
		LastName:   input.LastName,
		FatherName: input.FatherName,
		Phone:      input.Phone,
		Sport:      input.Sport,
		Picture:    input.Picture,
		IsActive:   true,
		JoinedAt:   input.JoinedAt,
	}

	if err := s.athleteRepo.Create(ctx, athlete); err != nil {
		return nil, err
	}

	return athlete, nil
}

// GetAthlete retrieves an athlete by ID
func (s *AthleteService) GetAthlete(ctx context.Context, id uuid.UUID) (*entity.Athlete, error) {
	athlete, err := s.athleteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if athlete == nil {
		return nil, apperror.NewNotFoundError("Athlete")
	}
	return athlete, nil
}

// ListAthletes lists athletes with directory filters
func (s *AthleteService) ListAthletes(ctx context.Context, filter repository.AthleteFilter, params *pagination.PaginationParams) (*pagination.PaginatedResult[*entity.Athlete], error) {
	athletes, total, err := s.athleteRepo.List(ctx, filter, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(athletes, pag), nil
}

// UpdateAthleteInput represents the update athlete input
type UpdateAthleteInput struct {
	Name       *string
	LastName   *string
	FatherName *string
	Phone      *string
	Sport      *string
	Picture    *string
	IsActive   *bool
}

// UpdateAthlete updates an existing athlete
func (s *AthleteService) UpdateAthlete(ctx context.Context, id uuid.UUID, input *UpdateAthleteInput) (*entity.Athlete, error) {
	athlete, err := s.GetAthlete(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		athlete.Name = *input.Name
	}
	if input.LastName != nil {
		athlete.LastName = *input.LastName
	}
	if input.FatherName != nil {
		athlete.FatherName = *input.FatherName
	}
	if input.Phone != nil {
		athlete.Phone = *input.Phone
	}
	if input.Sport != nil {
		athlete.Sport = *input.Sport
	}
	if input.Picture != nil {
		athlete.Picture = *input.Picture
	}
	if input.IsActive != nil {
		athlete.IsActive = *input.IsActive
	}

	if err := s.athleteRepo.Update(ctx, athlete); err != nil {
		return nil, err
	}

	return athlete, nil
}

// DeleteAthlete removes an athlete from the directory
func (s *AthleteService) DeleteAthlete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetAthlete(ctx, id); err != nil {
		return err
	}
	return s.athleteRepo.Delete(ctx, id)
}

// RecordFeeInput represents a monthly membership fee
type RecordFeeInput struct {
	AthleteID uuid.UUID
	Year      int
	Month     string
	Fee       interface{}
	Taken     interface{}
}

// RecordFee records one month's membership fee for an athlete. Amounts go
// through the same tolerant coercion as ledger entries and the remainder is
// derived, never accepted from the caller.
func (s *AthleteService) RecordFee(ctx context.Context, input *RecordFeeInput) (*entity.AthleteFee, error) {
	var fields []apperror.FieldError
	if input.Year <= 0 {
		fields = append(fields, apperror.FieldError{Field: "year", Message: "Year is required"})
	}
	if ledger.MonthIndex(input.Month) < 0 {
		fields = append(fields, apperror.FieldError{Field: "month", Message: "Unknown month name"})
	}
	if len(fields) > 0 {
		return nil, apperror.NewValidationError("Invalid fee", fields)
	}

	if _, err := s.GetAthlete(ctx, input.AthleteID); err != nil {
		return nil, err
	}

	existing, err := s.feeRepo.GetByAthleteAndPeriod(ctx, input.AthleteID, input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A fee for this month already exists")
	}

	fee := &entity.AthleteFee{
		AthleteID: input.AthleteID,
		Year:      input.Year,
		Month:     input.Month,
		Fee:       ledger.ParseAmount(input.Fee),
		Taken:     ledger.ParseAmount(input.Taken),
	}
	fee.Recalculate()

	if err := s.feeRepo.Create(ctx, fee); err != nil {
		return nil, err
	}

	return fee, nil
}

// UpdateFeeInput represents a fee edit
type UpdateFeeInput struct {
	Fee   interface{}
	Taken interface{}
}

// UpdateFee edits an existing fee record
func (s *AthleteService) UpdateFee(ctx context.Context, id uuid.UUID, input *UpdateFeeInput) (*entity.AthleteFee, error) {
	fee, err := s.feeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fee == nil {
		return nil, apperror.NewNotFoundError("Fee record")
	}

	if input.Fee != nil {
		fee.Fee = ledger.ParseAmount(input.Fee)
	}
	if input.Taken != nil {
		fee.Taken = ledger.ParseAmount(input.Taken)
	}
	fee.Recalculate()

	if err := s.feeRepo.Update(ctx, fee); err != nil {
		return nil, err
	}

	return fee, nil
}

// ListFees lists an athlete's fee history
func (s *AthleteService) ListFees(ctx context.Context, athleteID uuid.UUID) ([]*entity.AthleteFee, error) {
	if _, err := s.GetAthlete(ctx, athleteID); err != nil {
		return nil, err
	}
	return s.feeRepo.ListByAthlete(ctx, athleteID)
}

// ListFeesByPeriod lists all fees recorded for one month
func (s *AthleteService) ListFeesByPeriod(ctx context.Context, year int, month string) ([]*entity.AthleteFee, error) {
	return s.feeRepo.ListByPeriod(ctx, year, month)
}

// DeleteFee removes a fee record
func (s *AthleteService) DeleteFee(ctx context.Context, id uuid.UUID) error {
	fee, err := s.feeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if fee == nil {
		return apperror.NewNotFoundError("Fee record")
	}
	return s.feeRepo.Delete(ctx, id)
}
