package helpers

import "time"

// Request/Response DTOs

// SessionRequest is the principal record posted to /jwt
type SessionRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// PriceRangeInput enforces min <= max at the binding layer
type PriceRangeInput struct {
	MinPrice float64 `json:"min_price" binding:"gte=0"`
	MaxPrice float64 `json:"max_price" binding:"gtefield=MinPrice"`
}

type CreateCarRequest struct {
	BrandName          string          `json:"brand_name" binding:"required"`
	ModelName          string          `json:"model_name" binding:"required"`
	Category           string          `json:"category"`
	Country            string          `json:"country"`
	PriceRange         PriceRangeInput `json:"price_range" binding:"required"`
	Dateline           time.Time       `json:"dateline"`
	AvailabilityStatus string          `json:"availability_status" binding:"omitempty,oneof=Available 'Coming Soon' 'Sold Out'"`
	MainImage          string          `json:"main_image"`
	GalleryImages      []string        `json:"gallery_images"`
	Features           []string        `json:"features"`
}

// UpdateCarRequest carries the full replacement document. A nil (absent)
// gallery_images keeps the stored gallery.
type UpdateCarRequest struct {
	BrandName          string          `json:"brand_name" binding:"required"`
	ModelName          string          `json:"model_name" binding:"required"`
	Category           string          `json:"category"`
	Country            string          `json:"country"`
	PriceRange         PriceRangeInput `json:"price_range" binding:"required"`
	Dateline           time.Time       `json:"dateline"`
	AvailabilityStatus string          `json:"availability_status" binding:"omitempty,oneof=Available 'Coming Soon' 'Sold Out'"`
	MainImage          string          `json:"main_image"`
	GalleryImages      []string        `json:"gallery_images"`
	Features           []string        `json:"features"`
}

type PlaceBidRequest struct {
	CarID    string    `json:"carId" binding:"required"`
	BidPrice float64   `json:"bid_price" binding:"required,gt=0"`
	Comments string    `json:"comments"`
	Dateline time.Time `json:"dateline"`
}

type TransitionBidRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Approved Rejected Completed"`
}

// CatalogQueryRequest binds the /all-cars query string
type CatalogQueryRequest struct {
	Filter string `form:"filter"`
	Search string `form:"search"`
	Sort   string `form:"sort" binding:"omitempty,oneof=asc dsc"`
	Page   int64  `form:"page" binding:"gte=0"`
	Size   int64  `form:"size" binding:"gte=0"`
}

// CountQueryRequest binds the /cars-count query string
type CountQueryRequest struct {
	Brand  string `form:"brand"`
	Search string `form:"search"`
}

type BidResponse struct {
	BidID       string  `json:"bid_id"`
	CarID       string  `json:"car_id"`
	BidderEmail string  `json:"bidder_email"`
	SellerEmail string  `json:"seller_email"`
	BidPrice    float64 `json:"bid_price"`
	Status      string  `json:"status"`
	Comments    string  `json:"comments"`
	Dateline    string  `json:"dateline"`
	CreatedAt   string  `json:"created_at"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

// TransitionResponse reports the bid after a transition request and whether
// anything actually changed (no-op requests answer Changed=false).
type TransitionResponse struct {
	Bid     BidResponse `json:"bid"`
	Changed bool        `json:"changed"`
}
