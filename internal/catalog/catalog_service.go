package catalog

import (
	"context"
	"fmt"
	"time"

	"autobid-server/internal/aucterrors"
	"autobid-server/internal/models"
	"autobid-server/internal/repository"
)

// DefaultPageSize is applied when a catalog query omits the page size
const DefaultPageSize = 4

// CatalogService implements the listing queries and the ownership policy
// for car listings
type CatalogService struct {
	cars repository.CarStore
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(cars repository.CarStore) *CatalogService {
	return &CatalogService{cars: cars}
}

// ListAllCars returns the unfiltered catalog
func (s *CatalogService) ListAllCars(ctx context.Context) ([]models.Car, error) {
	cars, err := s.cars.ListCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list cars: %w", err)
	}
	return cars, nil
}

// SearchCatalog returns one filtered/sorted page of the catalog
func (s *CatalogService) SearchCatalog(ctx context.Context, q repository.CatalogQuery) ([]models.Car, error) {
	if q.Page < 0 || q.Size < 0 {
		return nil, fmt.Errorf("service: %w - negative page or size", aucterrors.ErrInvalidInput)
	}
	if q.Sort != "" && q.Sort != repository.SortAscending && q.Sort != repository.SortDescending {
		return nil, fmt.Errorf("service: %w - unknown sort %q", aucterrors.ErrInvalidInput, q.Sort)
	}
	if q.Size == 0 {
		q.Size = DefaultPageSize
	}

	cars, err := s.cars.SearchCars(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search cars: %w", err)
	}
	return cars, nil
}

// CountCatalog returns the total match count for the same predicate
// SearchCatalog pages over
func (s *CatalogService) CountCatalog(ctx context.Context, brand, search string) (int64, error) {
	count, err := s.cars.CountCars(ctx, repository.CatalogQuery{Brand: brand, Search: search})
	if err != nil {
		return 0, fmt.Errorf("service: failed to count cars: %w", err)
	}
	return count, nil
}

// GetCar returns a single listing by id
func (s *CatalogService) GetCar(ctx context.Context, id string) (models.Car, error) {
	if id == "" {
		return models.Car{}, fmt.Errorf("service: %w - empty car ID", aucterrors.ErrInvalidInput)
	}
	car, err := s.cars.GetCarByID(ctx, id)
	if err != nil {
		return models.Car{}, fmt.Errorf("service: failed to get car %s: %w", id, err)
	}
	return car, nil
}

// ListCarsForUser returns the listings where the principal is the seller or
// a bidding counterparty. The email path parameter is only a display hint;
// access is granted solely on the resolved principal.
func (s *CatalogService) ListCarsForUser(ctx context.Context, principal models.Principal, email string) ([]models.Car, error) {
	if email == "" {
		return nil, fmt.Errorf("service: %w - empty email", aucterrors.ErrInvalidInput)
	}
	if principal.Email != email {
		return nil, fmt.Errorf("service: cars of %s requested by %s: %w", email, principal.Email, aucterrors.ErrForbidden)
	}

	cars, err := s.cars.ListCarsByParticipant(ctx, principal.Email)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list cars for %s: %w", principal.Email, err)
	}
	return cars, nil
}

// CreateCar inserts a new listing. The owner identity always comes from the
// resolved principal, never from the request body.
func (s *CatalogService) CreateCar(ctx context.Context, principal models.Principal, car models.Car) (models.Car, error) {
	car.SellerEmail = principal.Email
	car.SellerName = principal.Name
	car.SellerPhoto = principal.Photo
	car.CreatedAt = time.Now().UTC()
	if car.AvailabilityStatus == "" {
		car.AvailabilityStatus = "Available"
	}

	created, err := s.cars.InsertCar(ctx, car)
	if err != nil {
		return models.Car{}, fmt.Errorf("service: failed to create car for %s: %w", principal.Email, err)
	}
	return created, nil
}

// UpdateCar replaces the mutable fields of a listing owned by the principal.
// A request without a gallery list keeps the stored one.
func (s *CatalogService) UpdateCar(ctx context.Context, principal models.Principal, id string, car models.Car, replaceGallery bool) (models.Car, error) {
	if err := s.authorizeOwner(ctx, principal, id); err != nil {
		return models.Car{}, err
	}

	updated, err := s.cars.ReplaceCar(ctx, id, car, replaceGallery)
	if err != nil {
		return models.Car{}, fmt.Errorf("service: failed to update car %s: %w", id, err)
	}
	return updated, nil
}

// DeleteCar removes a listing owned by the principal. Bids that reference
// the listing stay untouched.
func (s *CatalogService) DeleteCar(ctx context.Context, principal models.Principal, id string) error {
	if err := s.authorizeOwner(ctx, principal, id); err != nil {
		return err
	}

	if err := s.cars.DeleteCar(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete car %s: %w", id, err)
	}
	return nil
}

// authorizeOwner resolves the listing first so an unknown id reads as
// NotFound rather than Forbidden.
func (s *CatalogService) authorizeOwner(ctx context.Context, principal models.Principal, id string) error {
	if id == "" {
		return fmt.Errorf("service: %w - empty car ID", aucterrors.ErrInvalidInput)
	}
	existing, err := s.cars.GetCarByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service: failed to load car %s: %w", id, err)
	}
	if existing.SellerEmail != principal.Email {
		return fmt.Errorf("service: car %s not owned by %s: %w", id, principal.Email, aucterrors.ErrForbidden)
	}
	return nil
}
