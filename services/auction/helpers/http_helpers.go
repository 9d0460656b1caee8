package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"autobid-server/internal/aucterrors"
	model "autobid-server/internal/models"
	"autobid-server/utils"

	"github.com/gin-gonic/gin"
)

// PrincipalContextKey is where the session middleware stores the resolved
// principal on the request context
const PrincipalContextKey = "principal"

// PrincipalFromContext returns the principal resolved by the session
// middleware, if any
func PrincipalFromContext(c *gin.Context) (model.Principal, bool) {
	value, exists := c.Get(PrincipalContextKey)
	if !exists {
		return model.Principal{}, false
	}
	principal, ok := value.(model.Principal)
	return principal, ok
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, aucterrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthorized access"
	case errors.Is(err, aucterrors.ErrForbidden):
		return http.StatusForbidden, "forbidden access"
	case errors.Is(err, aucterrors.ErrCarNotFound):
		return http.StatusNotFound, "car not found"
	case errors.Is(err, aucterrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, aucterrors.ErrBidTooLow):
		return http.StatusUnprocessableEntity, "bid below minimum price"
	case errors.Is(err, aucterrors.ErrInvalidTransition):
		return http.StatusConflict, "invalid bid status transition"
	case errors.Is(err, aucterrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondDomainError maps err, sends the uniform error envelope with the
// public message only (wrapped internals never reach the body) and logs the
// real error.
func RespondDomainError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, errors.New(message), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, fields)
		return
	}
	utils.Warn(handlerName+": "+message, fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToBidResponse converts a stored bid to its wire shape
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:       bid.ID.Hex(),
		CarID:       bid.CarID.Hex(),
		BidderEmail: bid.BidderEmail,
		SellerEmail: bid.SellerEmail,
		BidPrice:    bid.BidPrice,
		Status:      string(bid.Status),
		Comments:    bid.Comments,
		Dateline:    bid.Dateline.UTC().Format(time.RFC3339),
		CreatedAt:   bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}
