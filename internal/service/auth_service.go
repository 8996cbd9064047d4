package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"blogql-be/internal/jwt"
	"blogql-be/internal/models"
	"blogql-be/internal/repository"
	"blogql-be/internal/validation"
)

// invalidCredentials is deliberately identical for "no such user" and "wrong
// password" to avoid user enumeration.
const invalidCredentials = "Invalid credentials."

// AuthService defines the interface for signup/signin business logic.
// The returned payload carries user errors as data; the error return is
// reserved for collaborator faults and propagates untouched.
type AuthService interface {
	Signup(ctx context.Context, email, password, name, bio string) (*models.AuthPayload, error)
	Signin(ctx context.Context, email, password string) (*models.AuthPayload, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Signup validates the input, creates the user with their profile, and returns
// a token. Any validation failure short-circuits before a single write.
func (s *authService) Signup(ctx context.Context, email, password, name, bio string) (*models.AuthPayload, error) {
	if userErr := validation.ValidateSignup(email, password, name, bio); userErr != nil {
		return models.AuthFailure(userErr.Message), nil
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return models.AuthFailure("User with this email already exists"), nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// User and profile are written in one transaction
	user, err := s.userRepo.CreateWithProfile(ctx, email, string(hashedPassword), name, bio)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthPayload{
		UserErrors: []models.UserError{},
		Token:      &token,
	}, nil
}

// Signin authenticates a user by email and password and returns a token
func (s *authService) Signin(ctx context.Context, email, password string) (*models.AuthPayload, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return models.AuthFailure(invalidCredentials), nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.AuthFailure(invalidCredentials), nil
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthPayload{
		UserErrors: []models.UserError{},
		Token:      &token,
	}, nil
}
