package services

import (
	"fmt"

	"blogview/app/models"
	"blogview/app/repositories"
)

// ProfileInput carries the fields a user may change on their own
// profile. Everything else on the account is off limits here.
type ProfileInput struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
}

// UserService handles profile updates for the signed-in user.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateProfile applies the input to the viewer's own account.
func (s *UserService) UpdateProfile(viewer *models.User, input ProfileInput) (*models.User, error) {
	if viewer == nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(viewer.ID)
	if err != nil {
		return nil, err
	}

	if input.Username != "" && input.Username != user.Username {
		if _, err := s.userRepo.GetByUsername(input.Username); err == nil {
			return nil, fmt.Errorf("username %q already taken", input.Username)
		} else if err != repositories.ErrNotFound {
			return nil, err
		}
		user.Username = input.Username
	}
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	if input.Email != "" {
		user.Email = input.Email
	}

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %v", err)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
