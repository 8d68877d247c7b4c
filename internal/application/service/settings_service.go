package service

import (
	"context"

	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
	"github.com/alisinasultani/citycenter-api/internal/domain/repository"
	"github.com/alisinasultani/citycenter-api/pkg/apperror"
)

// SettingsService handles the receipt header settings
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the company settings row
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.CompanySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewNotFoundError("Company settings")
	}
	return settings, nil
}

// UpdateSettingsInput represents the settings update input
type UpdateSettingsInput struct {
	Name       *string
	Address    *string
	Phone      *string
	Email      *string
	Logo       *string
	FooterNote *string
}

// UpdateSettings edits the company settings row in place
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.CompanySettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewValidationError("Invalid settings", []apperror.FieldError{
				{Field: "name", Message: "Name cannot be empty"},
			})
		}
		settings.Name = *input.Name
	}
	if input.Address != nil {
		settings.Address = *input.Address
	}
	if input.Phone != nil {
		settings.Phone = *input.Phone
	}
	if input.Email != nil {
		settings.Email = *input.Email
	}
	if input.Logo != nil {
		settings.Logo = *input.Logo
	}
	if input.FooterNote != nil {
		settings.FooterNote = *input.FooterNote
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
