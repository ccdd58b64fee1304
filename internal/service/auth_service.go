package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quillpad-server/internal/domain"
	"quillpad-server/internal/repository"
	"quillpad-server/pkg/hash"
	"quillpad-server/pkg/jwt"
)

type AuthService struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExp time.Duration) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExp,
	}
}

func (s *AuthService) Register(ctx context.Context, req *domain.RegisterRequest) error {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return ErrEmailTaken
	}

	hashed, err := hash.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.userRepo.Create(ctx, req.Email, hashed); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost a race against a concurrent registration; the unique
			// constraint caught it.
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login collapses unknown email and wrong password into the same failure so
// the endpoint cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !hash.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.Email, s.jwtExpiration, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
