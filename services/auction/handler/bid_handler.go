package handler

import (
	"context"
	"net/http"
	"time"

	"autobid-server/internal/aucterrors"
	model "autobid-server/internal/models"
	"autobid-server/services/auction/helpers"
	"autobid-server/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, principal model.Principal, carID string, price float64, comments string, dateline time.Time) (model.Bid, error)
	BidsByBidder(ctx context.Context, principal model.Principal, email string) ([]model.Bid, error)
	BidsBySeller(ctx context.Context, principal model.Principal, email string) ([]model.Bid, error)
	Transition(ctx context.Context, principal model.Principal, bidID string, target model.BidStatus) (model.Bid, bool, error)
}

type BidHandler struct {
	service BiddingServiceInterface
}

func NewBidHandler(service BiddingServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// PlaceBidHandler handles POST /bid
func (h *BidHandler) PlaceBidHandler(c *gin.Context) {
	principal, ok := helpers.PrincipalFromContext(c)
	if !ok {
		helpers.RespondDomainError(c, "PlaceBidHandler", aucterrors.ErrUnauthenticated, nil)
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), principal, req.CarID, req.BidPrice, req.Comments, req.Dateline)
	if err != nil {
		helpers.RespondDomainError(c, "PlaceBidHandler", err, map[string]any{
			"car_id": req.CarID,
			"bidder": principal.Email,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":    bid.ID.Hex(),
		"car_id":    req.CarID,
		"bidder":    principal.Email,
		"bid_price": bid.BidPrice,
	})
}

// MyBidsHandler handles GET /my-bids/:email
func (h *BidHandler) MyBidsHandler(c *gin.Context) {
	principal, ok := helpers.PrincipalFromContext(c)
	if !ok {
		helpers.RespondDomainError(c, "MyBidsHandler", aucterrors.ErrUnauthenticated, nil)
		return
	}

	email := c.Param("email")
	bids, err := h.service.BidsByBidder(c.Request.Context(), principal, email)
	if err != nil {
		helpers.RespondDomainError(c, "MyBidsHandler", err, map[string]any{
			"path_email":      email,
			"principal_email": principal.Email,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("MyBidsHandler", "bids retrieved successfully", map[string]any{
		"bidder": principal.Email,
		"count":  len(bids),
	})
}

// BidRequestsHandler handles GET /my-request/:email
func (h *BidHandler) BidRequestsHandler(c *gin.Context) {
	principal, ok := helpers.PrincipalFromContext(c)
	if !ok {
		helpers.RespondDomainError(c, "BidRequestsHandler", aucterrors.ErrUnauthenticated, nil)
		return
	}

	email := c.Param("email")
	bids, err := h.service.BidsBySeller(c.Request.Context(), principal, email)
	if err != nil {
		helpers.RespondDomainError(c, "BidRequestsHandler", err, map[string]any{
			"path_email":      email,
			"principal_email": principal.Email,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bid requests retrieved successfully")
	helpers.LogSuccess("BidRequestsHandler", "bid requests retrieved successfully", map[string]any{
		"seller": principal.Email,
		"count":  len(bids),
	})
}

// TransitionBidHandler handles PATCH /bid/:id
func (h *BidHandler) TransitionBidHandler(c *gin.Context) {
	principal, ok := helpers.PrincipalFromContext(c)
	if !ok {
		helpers.RespondDomainError(c, "TransitionBidHandler", aucterrors.ErrUnauthenticated, nil)
		return
	}

	var req helpers.TransitionBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "TransitionBidHandler", err)
		return
	}

	id := c.Param("id")
	bid, changed, err := h.service.Transition(c.Request.Context(), principal, id, model.BidStatus(req.Status))
	if err != nil {
		helpers.RespondDomainError(c, "TransitionBidHandler", err, map[string]any{
			"bid_id":    id,
			"target":    req.Status,
			"principal": principal.Email,
		})
		return
	}

	message := "bid status unchanged"
	if changed {
		message = "bid status updated successfully"
	}
	utils.JSONResponse(c, http.StatusOK, helpers.TransitionResponse{Bid: helpers.ToBidResponse(bid), Changed: changed}, message)
	helpers.LogSuccess("TransitionBidHandler", message, map[string]any{
		"bid_id":  id,
		"status":  string(bid.Status),
		"changed": changed,
	})
}
