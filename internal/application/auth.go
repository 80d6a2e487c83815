package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/api/middleware"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/config"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/utils"
	"gorm.io/gorm"
)

type AuthService struct {
	Repos *repository.Repos
}

func NewAuthService(repos *repository.Repos) *AuthService {
	return &AuthService{
		Repos: repos,
	}
}

// Register creates a user with role "user".
func (s *AuthService) Register(ctx context.Context, input user.RegisterInput) (*user.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return nil, newError(ErrValidation, "username, email, and password are required")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, ErrPasswordHashFailure
	}

	usr := &user.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     user.RoleUser,
	}
	if input.Avatar != nil && *input.Avatar != "" {
		usr.Avatar = input.Avatar
	}

	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if err := ensureUnique(tx, email, username, 0); err != nil {
			return err
		}
		if err := tx.User.CreateUser(usr); err != nil {
			return conflict(err, ErrEmailTaken)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return usr, nil
}

// Login checks credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, input user.LoginInput) (*user.User, string, error) {
	if input.Email == "" || input.Password == "" {
		return nil, "", newError(ErrValidation, "email and password are required")
	}

	usr, err := s.Repos.WithContext(ctx).User.GetUserByEmail(strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !utils.CheckPassword(usr.Password, input.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.ID, usr.Username, config.TokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return &usr, token, nil
}

// ensureUnique rejects an email or username already held by a user other than selfID.
// Empty values are not checked.
func ensureUnique(repos *repository.Repos, email, username string, selfID uint) error {
	if email != "" {
		existing, err := repos.User.GetUserByEmail(email)
		if err == nil && existing.ID != selfID {
			return ErrEmailTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	if username != "" {
		existing, err := repos.User.GetUserByUsername(username)
		if err == nil && existing.ID != selfID {
			return ErrUsernameTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return nil
}
