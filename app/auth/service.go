package auth

import (
	"errors"
	"fmt"

	"blogview/app/models"
	"blogview/app/repositories"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown usernames and wrong
// passwords so login failures don't leak which one it was.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Service registers accounts and checks credentials. It is the whole
// of authentication; nothing outside this package sees a password.
type Service struct {
	userRepo repositories.UserRepository
}

// NewService creates a new auth Service
func NewService(userRepo repositories.UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

// Register creates an account with a bcrypt-hashed password.
func (s *Service) Register(username, password, email string) (*models.User, error) {
	if len(password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	user.BeforeCreate()
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user: %v", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate resolves a username/password pair to a user.
func (s *Service) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err == repositories.ErrNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
