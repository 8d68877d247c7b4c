package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
	"github.com/alisinasultani/citycenter-api/internal/domain/repository"
	"github.com/alisinasultani/citycenter-api/pkg/apperror"
	"github.com/alisinasultani/citycenter-api/pkg/email"
	"github.com/alisinasultani/citycenter-api/pkg/oauth"
	"github.com/alisinasultani/citycenter-api/pkg/utils"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo      repository.UserRepository
	roleRepo      repository.RoleRepository
	resetRepo     repository.PasswordResetTokenRepository
	jwtManager    *utils.JWTManager
	emailService  *email.EmailService
	googleService *oauth.GoogleOAuthService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	resetRepo repository.PasswordResetTokenRepository,
	jwtManager *utils.JWTManager,
	emailService *email.EmailService,
	googleService *oauth.GoogleOAuthService,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		resetRepo:     resetRepo,
		jwtManager:    jwtManager,
		emailService:  emailService,
		googleService: googleService,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates a user and issues tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperror.ErrUserInactive
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) issueTokens(ctx context.Context, user *entity.User) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(
		user.ID, user.Email, user.GetRoleNames(), user.GetPermissions())
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		log.Printf("Warning: failed to record last login for %s: %v", user.Email, err)
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken exchanges a refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(ctx, user)
}

// GetCurrentUser returns the authenticated user's profile
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePassword changes the authenticated user's password
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	user, err := s.GetCurrentUser(ctx, input.UserID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return apperror.NewBadRequestError("Current password is incorrect")
	}
	if len(input.NewPassword) < 8 {
		return apperror.NewValidationError("Invalid password", []apperror.FieldError{
			{Field: "new_password", Message: "Password must be at least 8 characters"},
		})
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	return s.userRepo.Update(ctx, user)
}

// UpdateProfileInput represents the update profile input
type UpdateProfileInput struct {
	UserID    uuid.UUID
	FirstName *string
	LastName  *string
	Phone     *string
	Picture   *string
}

// UpdateProfile updates the authenticated user's profile
func (s *AuthService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error) {
	user, err := s.GetCurrentUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Picture != nil {
		user.Picture = *input.Picture
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ForgotPassword starts the password reset flow. It always succeeds from
// the caller's point of view so email addresses cannot be probed.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}
	if user == nil || !user.IsActive {
		return nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	token := hex.EncodeToString(buf)

	reset := &entity.PasswordResetToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := s.resetRepo.Create(ctx, reset); err != nil {
		return err
	}

	if err := s.emailService.SendPasswordResetEmail(user.Email, token); err != nil {
		log.Printf("Warning: failed to send reset email to %s: %v", user.Email, err)
	}

	return nil
}

// ResetPasswordInput represents the reset password input
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ResetPassword completes the password reset flow
func (s *AuthService) ResetPassword(ctx context.Context, input *ResetPasswordInput) error {
	if len(input.NewPassword) < 8 {
		return apperror.NewValidationError("Invalid password", []apperror.FieldError{
			{Field: "new_password", Message: "Password must be at least 8 characters"},
		})
	}

	reset, err := s.resetRepo.GetByToken(ctx, input.Token)
	if err != nil {
		return err
	}
	if reset == nil || reset.IsExpired() || reset.IsUsed() {
		return apperror.NewBadRequestError("Reset token is invalid or expired")
	}

	user, err := s.userRepo.GetByID(ctx, reset.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	return s.resetRepo.MarkUsed(ctx, reset.ID)
}

// GoogleAuthURL returns the consent URL and state for the Google flow
func (s *AuthService) GoogleAuthURL() (url, state string, err error) {
	if !s.googleService.IsConfigured() {
		return "", "", apperror.NewBadRequestError("Google sign-in is not configured")
	}
	state, err = s.googleService.GenerateState()
	if err != nil {
		return "", "", err
	}
	return s.googleService.GetAuthURL(state), state, nil
}

// GoogleLogin completes the Google OAuth flow. Accounts are matched by
// Google ID first, then by verified email. Unknown accounts are rejected,
// this dashboard has no self-service signup.
func (s *AuthService) GoogleLogin(ctx context.Context, code string) (*LoginOutput, error) {
	if !s.googleService.IsConfigured() {
		return nil, apperror.NewBadRequestError("Google sign-in is not configured")
	}

	token, err := s.googleService.ExchangeCode(ctx, code)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid Google authorization code")
	}

	info, err := s.googleService.GetUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByGoogleID(ctx, info.ID)
	if err != nil {
		return nil, err
	}
	if user == nil && info.VerifiedEmail {
		user, err = s.userRepo.GetByEmail(ctx, info.Email)
		if err != nil {
			return nil, err
		}
		if user != nil {
			user.GoogleID = info.ID
			if user.Picture == "" {
				user.Picture = info.Picture
			}
			if err := s.userRepo.Update(ctx, user); err != nil {
				return nil, err
			}
		}
	}
	if user == nil {
		return nil, apperror.NewAppError(403, "No account exists for this Google identity")
	}
	if !user.IsActive {
		return nil, apperror.ErrUserInactive
	}

	return s.issueTokens(ctx, user)
}
