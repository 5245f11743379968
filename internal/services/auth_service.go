package services

import (
	"errors"
	"time"

	"arenaapp_backend/internal/auth"
	"arenaapp_backend/internal/config"
	"arenaapp_backend/internal/logger"
	"arenaapp_backend/internal/models"
	"arenaapp_backend/internal/repositories"
	"arenaapp_backend/internal/services/dto"
	"arenaapp_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	CurrentUser(db *gorm.DB, userID string) (*dto.UserProfile, error)

	// EnsureAdmin seeds the configured admin account on startup if it does
	// not exist yet.
	EnsureAdmin(db *gorm.DB) error
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	cfg := config.GetConfig()
	token, err := auth.GenerateToken(
		cfg.JWT.Secret,
		user.ID,
		user.Email,
		string(user.Role),
		time.Duration(cfg.JWT.TTL)*time.Minute,
	)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserProfile(user),
	}, nil
}

func (s *AuthServiceImpl) CurrentUser(db *gorm.DB, userID string) (*dto.UserProfile, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User no longer exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserProfile(user), nil
}

func (s *AuthServiceImpl) EnsureAdmin(db *gorm.DB) error {
	cfg := config.GetConfig()
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("admin seed skipped, no credentials configured")
		return nil
	}

	if _, err := s.userRepo.FindByEmail(db, cfg.Admin.Email); err == nil {
		return nil
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        cfg.Admin.Email,
		Name:         cfg.Admin.Name,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := s.userRepo.Create(db, admin); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil
		}
		return err
	}

	logger.Info("admin account seeded", "email", cfg.Admin.Email)
	return nil
}
