package repository

import (
	"context"

	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
)

// SettingsRepository defines the interface for company settings data access
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.CompanySettings, error)
	Save(ctx context.Context, settings *entity.CompanySettings) error
}
