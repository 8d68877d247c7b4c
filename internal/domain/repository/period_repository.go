package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
)

// BillingPeriodRepository defines the interface for billing period data access
type BillingPeriodRepository interface {
	Create(ctx context.Context, period *entity.BillingPeriod) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BillingPeriod, error)
	GetByIdentity(ctx context.Context, kind enum.BillingKind, scope *string, year int, month string) (*entity.BillingPeriod, error)
	ListByKind(ctx context.Context, kind enum.BillingKind) ([]*entity.BillingPeriod, error)
	Update(ctx context.Context, period *entity.BillingPeriod) error
	UpdateLedger(ctx context.Context, id uuid.UUID, ledger entity.LedgerMap) error
	Delete(ctx context.Context, id uuid.UUID) error
}
