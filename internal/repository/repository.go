package repository

import (
	"context"

	model "autobid-server/internal/models"
)

// Sort directions accepted by CatalogQuery. An empty Sort leaves the
// catalog in insertion order.
const (
	SortAscending  = "asc"
	SortDescending = "dsc"
)

// CatalogQuery carries the filter/search/sort/pagination parameters for
// catalog reads. The same query must drive both the page fetch and the
// count so pagination is always computed against the population being
// paged.
type CatalogQuery struct {
	Brand  string // exact brand_name match when non-empty
	Search string // case-insensitive substring over model/brand/category
	Sort   string // SortAscending, SortDescending or empty
	Page   int64  // zero-based page index
	Size   int64  // page size; Size <= 0 means no pagination
}

// CarStore defines persistent storage for car listings
type CarStore interface {
	InsertCar(ctx context.Context, car model.Car) (model.Car, error)
	ListCars(ctx context.Context) ([]model.Car, error)
	SearchCars(ctx context.Context, q CatalogQuery) ([]model.Car, error)
	CountCars(ctx context.Context, q CatalogQuery) (int64, error)
	GetCarByID(ctx context.Context, id string) (model.Car, error)
	ListCarsByParticipant(ctx context.Context, email string) ([]model.Car, error)
	ReplaceCar(ctx context.Context, id string, car model.Car, replaceGallery bool) (model.Car, error)
	DeleteCar(ctx context.Context, id string) error
}

// BidStore defines persistent storage for bids
type BidStore interface {
	InsertBid(ctx context.Context, bid model.Bid) (model.Bid, error)
	GetBidByID(ctx context.Context, id string) (model.Bid, error)
	ListBidsByBidder(ctx context.Context, email string) ([]model.Bid, error)
	ListBidsBySeller(ctx context.Context, email string) ([]model.Bid, error)
	UpdateBidStatus(ctx context.Context, id string, status model.BidStatus) (model.Bid, error)
}
