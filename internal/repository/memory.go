package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"autobid-server/internal/aucterrors"
	model "autobid-server/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is a concurrency-safe in-memory implementation of CarStore
// and BidStore. It mirrors the query semantics of the Mongo store and
// backs the unit and integration tests.
type MemoryStore struct {
	mu       sync.RWMutex
	cars     map[string]model.Car // key: car id (hex)
	carOrder []string             // car ids in insertion order
	bids     map[string]model.Bid // key: bid id (hex)
	bidOrder []string             // bid ids in insertion order
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cars: make(map[string]model.Car),
		bids: make(map[string]model.Bid),
	}
}

// matchesCatalog applies the brand filter AND'd with the OR-group search
// over model/brand/category, the same predicate the Mongo store builds.
func matchesCatalog(car model.Car, q CatalogQuery) bool {
	if q.Brand != "" && car.BrandName != q.Brand {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(car.ModelName), needle) &&
			!strings.Contains(strings.ToLower(car.BrandName), needle) &&
			!strings.Contains(strings.ToLower(car.Category), needle) {
			return false
		}
	}
	return true
}

// InsertCar stores a car, assigning an id when absent
func (s *MemoryStore) InsertCar(_ context.Context, car model.Car) (model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if car.ID.IsZero() {
		car.ID = primitive.NewObjectID()
	}
	id := car.ID.Hex()
	if _, exists := s.cars[id]; !exists {
		s.carOrder = append(s.carOrder, id)
	}
	s.cars[id] = car
	return car, nil
}

// ListCars returns the full catalog in insertion order
func (s *MemoryStore) ListCars(_ context.Context) ([]model.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cars := make([]model.Car, 0, len(s.carOrder))
	for _, id := range s.carOrder {
		cars = append(cars, s.cars[id])
	}
	return cars, nil
}

// SearchCars returns one catalog page for q. Ties on dateline keep
// insertion order (stable sort).
func (s *MemoryStore) SearchCars(_ context.Context, q CatalogQuery) ([]model.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]model.Car, 0)
	for _, id := range s.carOrder {
		if matchesCatalog(s.cars[id], q) {
			matched = append(matched, s.cars[id])
		}
	}

	switch q.Sort {
	case SortAscending:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Dateline.Before(matched[j].Dateline)
		})
	case SortDescending:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Dateline.After(matched[j].Dateline)
		})
	}

	if q.Size <= 0 {
		return matched, nil
	}
	start := q.Page * q.Size
	if start >= int64(len(matched)) {
		return []model.Car{}, nil
	}
	end := start + q.Size
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return append([]model.Car(nil), matched[start:end]...), nil
}

// CountCars returns the unpaginated result-set size for q
func (s *MemoryStore) CountCars(_ context.Context, q CatalogQuery) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, car := range s.cars {
		if matchesCatalog(car, q) {
			count++
		}
	}
	return count, nil
}

// GetCarByID returns a single car or ErrCarNotFound
func (s *MemoryStore) GetCarByID(_ context.Context, id string) (model.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	car, ok := s.cars[id]
	if !ok {
		return model.Car{}, fmt.Errorf("get car %s: %w", id, aucterrors.ErrCarNotFound)
	}
	return car, nil
}

// ListCarsByParticipant returns cars where email is the recorded seller or
// has a recorded bid as the counterparty
func (s *MemoryStore) ListCarsByParticipant(_ context.Context, email string) ([]model.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bidCarIDs := make(map[string]bool)
	for _, bid := range s.bids {
		if bid.BidderEmail == email {
			bidCarIDs[bid.CarID.Hex()] = true
		}
	}

	cars := make([]model.Car, 0)
	for _, id := range s.carOrder {
		car := s.cars[id]
		if car.SellerEmail == email || bidCarIDs[id] {
			cars = append(cars, car)
		}
	}
	return cars, nil
}

// ReplaceCar overwrites the mutable fields of an existing car. The stored
// gallery survives unless replaceGallery is set; owner identity and the
// creation timestamp are never replaced.
func (s *MemoryStore) ReplaceCar(_ context.Context, id string, car model.Car, replaceGallery bool) (model.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.cars[id]
	if !ok {
		return model.Car{}, fmt.Errorf("replace car %s: %w", id, aucterrors.ErrCarNotFound)
	}

	existing.BrandName = car.BrandName
	existing.ModelName = car.ModelName
	existing.Category = car.Category
	existing.Country = car.Country
	existing.PriceRange = car.PriceRange
	existing.Dateline = car.Dateline
	existing.AvailabilityStatus = car.AvailabilityStatus
	existing.MainImage = car.MainImage
	existing.Features = car.Features
	if replaceGallery {
		existing.GalleryImages = car.GalleryImages
	}

	s.cars[id] = existing
	return existing, nil
}

// DeleteCar removes a car. Bids referencing it are intentionally left in
// place (no cascade).
func (s *MemoryStore) DeleteCar(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cars[id]; !ok {
		return fmt.Errorf("delete car %s: %w", id, aucterrors.ErrCarNotFound)
	}
	delete(s.cars, id)
	for i, orderID := range s.carOrder {
		if orderID == id {
			s.carOrder = append(s.carOrder[:i], s.carOrder[i+1:]...)
			break
		}
	}
	return nil
}

// InsertBid stores a bid, assigning an id when absent
func (s *MemoryStore) InsertBid(_ context.Context, bid model.Bid) (model.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bid.ID.IsZero() {
		bid.ID = primitive.NewObjectID()
	}
	id := bid.ID.Hex()
	if _, exists := s.bids[id]; !exists {
		s.bidOrder = append(s.bidOrder, id)
	}
	s.bids[id] = bid
	return bid, nil
}

// GetBidByID returns a single bid or ErrBidNotFound
func (s *MemoryStore) GetBidByID(_ context.Context, id string) (model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bid, ok := s.bids[id]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", id, aucterrors.ErrBidNotFound)
	}
	return bid, nil
}

// ListBidsByBidder returns all bids placed by email, in insertion order
func (s *MemoryStore) ListBidsByBidder(_ context.Context, email string) ([]model.Bid, error) {
	return s.listBids(func(b model.Bid) bool { return b.BidderEmail == email })
}

// ListBidsBySeller returns all bids received by email as the seller
func (s *MemoryStore) ListBidsBySeller(_ context.Context, email string) ([]model.Bid, error) {
	return s.listBids(func(b model.Bid) bool { return b.SellerEmail == email })
}

func (s *MemoryStore) listBids(match func(model.Bid) bool) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, id := range s.bidOrder {
		if match(s.bids[id]) {
			bids = append(bids, s.bids[id])
		}
	}
	return bids, nil
}

// UpdateBidStatus sets the status of an existing bid and returns the
// updated document
func (s *MemoryStore) UpdateBidStatus(_ context.Context, id string, status model.BidStatus) (model.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bid, ok := s.bids[id]
	if !ok {
		return model.Bid{}, fmt.Errorf("update bid %s: %w", id, aucterrors.ErrBidNotFound)
	}
	bid.Status = status
	s.bids[id] = bid
	return bid, nil
}
