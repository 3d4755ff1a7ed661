package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sangkips/bookstore-api/internal/domain/entity"
	"github.com/sangkips/bookstore-api/internal/domain/repository"
	"github.com/sangkips/bookstore-api/pkg/apperror"
	"github.com/sangkips/bookstore-api/pkg/utils"
)

// AuthService handles admin authentication
type AuthService struct {
	adminRepo  repository.AdminRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(adminRepo repository.AdminRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtManager: jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Admin       *entity.Admin
	AccessToken string
	ExpiresIn   int64
}

// Login authenticates an admin and returns an access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, admin.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(admin.ID, admin.Email, utils.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginOutput{
		Admin:       admin,
		AccessToken: accessToken,
		ExpiresIn:   int64(s.jwtManager.ExpiresIn().Seconds()),
	}, nil
}

// RegisterInput represents the admin registration input
type RegisterInput struct {
	FullName     string
	BusinessName string
	PhoneNumber  string
	Email        string
	Password     string
}

// Register creates a new admin account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.Admin, error) {
	existing, err := s.adminRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &entity.Admin{
		FullName:     strings.TrimSpace(input.FullName),
		BusinessName: input.BusinessName,
		PhoneNumber:  input.PhoneNumber,
		Email:        input.Email,
		Password:     hashed,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return admin, nil
}
