package services

import (
	"errors"
	"fmt"

	"github.com/morisawa/ideapool/internal/models"
	"github.com/morisawa/ideapool/internal/repository"
	"github.com/morisawa/ideapool/internal/validation"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUserNotFound         = errors.New("user does not exist")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles signup, credential checks, and profile reads.
type AuthService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// Signup validates the fields, hashes the password, and creates the user.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	name, err := validation.Name(input.Name)
	if err != nil {
		return nil, err
	}
	email, err := validation.Email(input.Email)
	if err != nil {
		return nil, err
	}
	password, err := validation.Password(input.Password)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}

	if err := s.userRepo.Create(user); err != nil {
		// A concurrent signup can still lose the race to the unique
		// index; report it the same as the pre-check.
		return nil, ErrEmailTaken
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	email, err := validation.Email(input.Email)
	if err != nil {
		return nil, err
	}
	if _, err := validation.Password(input.Password); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user's profile by email.
func (s *AuthService) GetUser(email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
