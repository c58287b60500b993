package services

import (
	"errors"
	"fmt"

	"blogview/app/models"
	"blogview/app/repositories"
)

// ErrSuperuserRequired means a catalog mutation was attempted by a
// regular account.
var ErrSuperuserRequired = errors.New("superuser required")

// CatalogService manages categories and locations. These are editorial
// fixtures, so every mutation requires a superuser.
type CatalogService struct {
	categoryRepo repositories.CategoryRepository
	locationRepo repositories.LocationRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(categoryRepo repositories.CategoryRepository, locationRepo repositories.LocationRepository) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

func (s *CatalogService) gate(viewer *models.User) error {
	if viewer == nil {
		return ErrUnauthenticated
	}
	if !viewer.IsSuperuser {
		return ErrSuperuserRequired
	}
	return nil
}

// CreateCategory creates a category; a missing slug is derived from
// the title.
func (s *CatalogService) CreateCategory(viewer *models.User, category *models.Category) error {
	if err := s.gate(viewer); err != nil {
		return err
	}
	category.BeforeCreate()
	if err := category.Validate(); err != nil {
		return fmt.Errorf("invalid category: %v", err)
	}
	return s.categoryRepo.Create(category)
}

// UpdateCategory updates an existing category
func (s *CatalogService) UpdateCategory(viewer *models.User, category *models.Category) error {
	if err := s.gate(viewer); err != nil {
		return err
	}
	existing, err := s.categoryRepo.GetByID(category.ID)
	if err != nil {
		return err
	}
	category.CreatedAt = existing.CreatedAt
	if category.Slug == "" {
		category.Slug = existing.Slug
	}
	if err := category.Validate(); err != nil {
		return fmt.Errorf("invalid category: %v", err)
	}
	return s.categoryRepo.Update(category)
}

// ListCategories returns every category, published or not.
func (s *CatalogService) ListCategories() ([]*models.Category, error) {
	return s.categoryRepo.ListAll()
}

// CreateLocation creates a location
func (s *CatalogService) CreateLocation(viewer *models.User, location *models.Location) error {
	if err := s.gate(viewer); err != nil {
		return err
	}
	location.BeforeCreate()
	if err := location.Validate(); err != nil {
		return fmt.Errorf("invalid location: %v", err)
	}
	return s.locationRepo.Create(location)
}

// UpdateLocation updates an existing location
func (s *CatalogService) UpdateLocation(viewer *models.User, location *models.Location) error {
	if err := s.gate(viewer); err != nil {
		return err
	}
	existing, err := s.locationRepo.GetByID(location.ID)
	if err != nil {
		return err
	}
	location.CreatedAt = existing.CreatedAt
	if err := location.Validate(); err != nil {
		return fmt.Errorf("invalid location: %v", err)
	}
	return s.locationRepo.Update(location)
}

// ListLocations returns every location.
func (s *CatalogService) ListLocations() ([]*models.Location, error) {
	return s.locationRepo.ListAll()
}
