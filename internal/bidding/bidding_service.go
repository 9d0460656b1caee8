package bidding

import (
	"context"
	"fmt"
	"time"

	"autobid-server/internal/aucterrors"
	"autobid-server/internal/models"
	"autobid-server/internal/repository"
)

// BiddingService implements bid creation, scoped retrieval and the bid
// status state machine
type BiddingService struct {
	bids repository.BidStore
	cars repository.CarStore
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(bids repository.BidStore, cars repository.CarStore) *BiddingService {
	return &BiddingService{bids: bids, cars: cars}
}

// PlaceBid validates and records a bid by the principal on a car. Owners
// may not bid on their own listing and the price must reach the listing's
// minimum (equality accepted).
func (s *BiddingService) PlaceBid(ctx context.Context, principal models.Principal, carID string, price float64, comments string, dateline time.Time) (models.Bid, error) {
	if carID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty car ID", aucterrors.ErrInvalidInput)
	}
	if price <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid price", aucterrors.ErrInvalidInput)
	}

	car, err := s.cars.GetCarByID(ctx, carID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to load car %s for bid: %w", carID, err)
	}
	if car.SellerEmail == principal.Email {
		return models.Bid{}, fmt.Errorf("service: %s bidding on own car %s: %w", principal.Email, carID, aucterrors.ErrForbidden)
	}
	if price < car.PriceRange.MinPrice {
		return models.Bid{}, fmt.Errorf("service: %w - minimum is %.2f", aucterrors.ErrBidTooLow, car.PriceRange.MinPrice)
	}

	bid := models.Bid{
		CarID:       car.ID,
		BidderEmail: principal.Email,
		SellerEmail: car.SellerEmail,
		BidPrice:    price,
		Status:      models.BidPending,
		Comments:    comments,
		Dateline:    dateline,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.bids.InsertBid(ctx, bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on car %s by %s: %w", carID, principal.Email, err)
	}
	return created, nil
}

// BidsByBidder returns the bids the principal has placed
func (s *BiddingService) BidsByBidder(ctx context.Context, principal models.Principal, email string) ([]models.Bid, error) {
	return s.scopedBids(ctx, principal, email, s.bids.ListBidsByBidder)
}

// BidsBySeller returns the bids the principal has received on its listings
func (s *BiddingService) BidsBySeller(ctx context.Context, principal models.Principal, email string) ([]models.Bid, error) {
	return s.scopedBids(ctx, principal, email, s.bids.ListBidsBySeller)
}

func (s *BiddingService) scopedBids(ctx context.Context, principal models.Principal, email string, list func(context.Context, string) ([]models.Bid, error)) ([]models.Bid, error) {
	if email == "" {
		return nil, fmt.Errorf("service: %w - empty email", aucterrors.ErrInvalidInput)
	}
	if principal.Email != email {
		return nil, fmt.Errorf("service: bids of %s requested by %s: %w", email, principal.Email, aucterrors.ErrForbidden)
	}

	bids, err := list(ctx, principal.Email)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for %s: %w", principal.Email, err)
	}
	return bids, nil
}

// Transition moves a bid to target. The returned bool reports whether the
// status actually changed; a same-state request is a no-op, not an error.
// Approve/Reject are seller moves, Complete is a bidder move out of
// Approved, and terminal states accept nothing.
func (s *BiddingService) Transition(ctx context.Context, principal models.Principal, bidID string, target models.BidStatus) (models.Bid, bool, error) {
	if bidID == "" {
		return models.Bid{}, false, fmt.Errorf("service: %w - empty bid ID", aucterrors.ErrInvalidInput)
	}
	if !target.Known() {
		return models.Bid{}, false, fmt.Errorf("service: %w - unknown status %q", aucterrors.ErrInvalidInput, target)
	}

	bid, err := s.bids.GetBidByID(ctx, bidID)
	if err != nil {
		return models.Bid{}, false, fmt.Errorf("service: failed to load bid %s: %w", bidID, err)
	}

	if bid.Status == target {
		// no-op, still restricted to the bid's participants
		if principal.Email != bid.SellerEmail && principal.Email != bid.BidderEmail {
			return models.Bid{}, false, fmt.Errorf("service: bid %s not visible to %s: %w", bidID, principal.Email, aucterrors.ErrForbidden)
		}
		return bid, false, nil
	}

	switch target {
	case models.BidApproved, models.BidRejected:
		if principal.Email != bid.SellerEmail {
			return models.Bid{}, false, fmt.Errorf("service: %s may not settle bid %s: %w", principal.Email, bidID, aucterrors.ErrForbidden)
		}
	case models.BidCompleted:
		if principal.Email != bid.BidderEmail {
			return models.Bid{}, false, fmt.Errorf("service: %s may not complete bid %s: %w", principal.Email, bidID, aucterrors.ErrForbidden)
		}
	default:
		return models.Bid{}, false, fmt.Errorf("service: nobody may move bid %s to %s: %w", bidID, target, aucterrors.ErrForbidden)
	}

	if !validTransition(bid.Status, target) {
		return models.Bid{}, false, fmt.Errorf("service: bid %s cannot go %s -> %s: %w", bidID, bid.Status, target, aucterrors.ErrInvalidTransition)
	}

	updated, err := s.bids.UpdateBidStatus(ctx, bidID, target)
	if err != nil {
		return models.Bid{}, false, fmt.Errorf("service: failed to update bid %s: %w", bidID, err)
	}
	return updated, true, nil
}

// validTransition encodes the fixed edges of the bid state machine:
// Pending -> Approved | Rejected, Approved -> Completed.
func validTransition(from, to models.BidStatus) bool {
	switch from {
	case models.BidPending:
		return to == models.BidApproved || to == models.BidRejected
	case models.BidApproved:
		return to == models.BidCompleted
	}
	return false
}
