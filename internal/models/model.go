package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Principal is an authenticated identity resolved from a session token
type Principal struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// PriceRange holds the bidding bounds for a car listing
type PriceRange struct {
	MinPrice float64 `bson:"min_price" json:"min_price"`
	MaxPrice float64 `bson:"max_price" json:"max_price"`
}

// Car represents a vehicle listed for auction-style bidding
type Car struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BrandName          string             `bson:"brand_name" json:"brand_name"`
	ModelName          string             `bson:"model_name" json:"model_name"`
	Category           string             `bson:"category" json:"category"`
	Country            string             `bson:"country" json:"country"`
	PriceRange         PriceRange         `bson:"price_range" json:"price_range"`
	Dateline           time.Time          `bson:"dateline" json:"dateline"`
	AvailabilityStatus string             `bson:"availability_status" json:"availability_status"`
	SellerEmail        string             `bson:"seller_email" json:"seller_email"`
	SellerName         string             `bson:"seller_name" json:"seller_name"`
	SellerPhoto        string             `bson:"seller_photo" json:"seller_photo"`
	MainImage          string             `bson:"main_image" json:"main_image"`
	GalleryImages      []string           `bson:"gallery_images" json:"gallery_images"`
	Features           []string           `bson:"features" json:"features"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
}

// BidStatus is the lifecycle state of a bid
type BidStatus string

const (
	BidPending   BidStatus = "Pending"
	BidApproved  BidStatus = "Approved"
	BidRejected  BidStatus = "Rejected"
	BidCompleted BidStatus = "Completed"
)

// Known reports whether s is one of the defined bid states
func (s BidStatus) Known() bool {
	switch s {
	case BidPending, BidApproved, BidRejected, BidCompleted:
		return true
	}
	return false
}

// Terminal reports whether no transition may leave s
func (s BidStatus) Terminal() bool {
	return s == BidRejected || s == BidCompleted
}

// Bid represents an offer placed on a car listing
type Bid struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CarID       primitive.ObjectID `bson:"car_id" json:"carId"`
	BidderEmail string             `bson:"bidder_email" json:"bidder_email"`
	SellerEmail string             `bson:"seller_email" json:"seller_email"`
	BidPrice    float64            `bson:"bid_price" json:"bid_price"`
	Status      BidStatus          `bson:"status" json:"status"`
	Dateline    time.Time          `bson:"dateline" json:"dateline"`
	Comments    string             `bson:"comments" json:"comments"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
