package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
	domainRepo "github.com/alisinasultani/citycenter-api/internal/domain/repository"
)

type billingPeriodRepository struct {
	db *gorm.DB
}

// NewBillingPeriodRepository creates a new billing period repository
func NewBillingPeriodRepository(db *gorm.DB) domainRepo.BillingPeriodRepository {
	return &billingPeriodRepository{db: db}
}

func (r *billingPeriodRepository) Create(ctx context.Context, period *entity.BillingPeriod) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *billingPeriodRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.BillingPeriod, error) {
	var period entity.BillingPeriod
	err := r.db.WithContext(ctx).First(&period, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &period, err
}

func (r *billingPeriodRepository) GetByIdentity(ctx context.Context, kind enum.BillingKind, scope *string, year int, month string) (*entity.BillingPeriod, error) {
	var period entity.BillingPeriod
	query := r.db.WithContext(ctx).
		Where("kind = ? AND year = ? AND month = ?", kind, year, month)
	if scope != nil {
		query = query.Where("scope = ?", *scope)
	} else {
		query = query.Where("scope IS NULL")
	}

	err := query.First(&period).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &period, err
}

func (r *billingPeriodRepository) ListByKind(ctx context.Context, kind enum.BillingKind) ([]*entity.BillingPeriod, error) {
	var periods []*entity.BillingPeriod
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("year DESC, created_at DESC").
		Find(&periods).Error
	return periods, err
}

func (r *billingPeriodRepository) Update(ctx context.Context, period *entity.BillingPeriod) error {
	return r.db.WithContext(ctx).Save(period).Error
}

func (r *billingPeriodRepository) UpdateLedger(ctx context.Context, id uuid.UUID, ledger entity.LedgerMap) error {
	return r.db.WithContext(ctx).
		Model(&entity.BillingPeriod{}).
		Where("id = ?", id).
		Update("ledger", ledger).Error
}

func (r *billingPeriodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.BillingPeriod{}, "id = ?", id).Error
}
