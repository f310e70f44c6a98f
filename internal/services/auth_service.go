// internal/services/auth_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/printcraft/store-backend/internal/models"
	"github.com/printcraft/store-backend/internal/utils"
)

type AuthService struct {
	db       *gorm.DB
	tokenTTL int // hours
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string            `json:"token"`
	Admin *models.AdminUser `json:"admin"`
}

func NewAuthService(db *gorm.DB, tokenTTLHours int) *AuthService {
	return &AuthService{db: db, tokenTTL: tokenTTLHours}
}

// Login checks back-office credentials and issues a JWT. Wrong username
// and wrong password produce the same error, so the response never
// reveals which part failed.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var admin models.AdminUser
	if err := s.db.WithContext(ctx).Where("username = ?", req.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !admin.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAdminJWT(admin.ID, admin.Username, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{Token: token, Admin: &admin}, nil
}

// ChangePassword rotates the admin password after verifying the
// current one.
func (s *AuthService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("new password must be at least 8 characters")
	}

	var admin models.AdminUser
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("database error: %w", err)
	}

	if !admin.CheckPassword(currentPassword) {
		return ErrInvalidCredentials
	}

	if err := admin.SetPassword(newPassword); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&admin).
		Update("password_hash", admin.PasswordHash).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
