package handler

import (
	"context"
	"net/http"

	"autobid-server/internal/aucterrors"
	model "autobid-server/internal/models"
	"autobid-server/internal/repository"
	"autobid-server/services/auction/helpers"
	"autobid-server/utils"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	ListAllCars(ctx context.Context) ([]model.Car, error)
	SearchCatalog(ctx context.Context, q repository.CatalogQuery) ([]model.Car, error)
	CountCatalog(ctx context.Context, brand, search string) (int64, error)
	GetCar(ctx context.Context, id string) (model.Car, error)
	ListCarsForUser(ctx context.Context, principal model.Principal, email string) ([]model.Car, error)
	CreateCar(ctx context.Context, principal model.Principal, car model.Car) (model.Car, error)
	UpdateCar(ctx context.Context, principal model.Principal, id string, car model.Car, replaceGallery bool) (model.Car, error)
	DeleteCar(ctx context.Context, principal model.Principal, id string) error
}

type CarHandler struct {
	service CatalogServiceInterface
}

func NewCarHandler(service CatalogServiceInterface) *CarHandler {
	return &CarHandler{service: service}
}

// ListCarsHandler handles GET /cars
func (h *CarHandler) ListCarsHandler(c *gin.Context) {
	cars, err := h.service.ListAllCars(c.Request.Context())
	if err != nil {
		helpers.RespondDomainError(c, "ListCarsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, cars, "cars retrieved successfully")
}

// SearchCarsHandler handles GET /all-cars
func (h *CarHandler) SearchCarsHandler(c *gin.Context) {
	var req helpers.CatalogQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		helpers.HandleBindError(c, "SearchCarsHandler", err)
		return
	}

	cars, err := h.service.SearchCatalog(c.Request.Context(), repository.CatalogQuery{
		Brand:  req.Filter,
		Search: req.Search,
		Sort:   req.Sort,
		Page:   req.Page,
		Size:   req.Size,
	})
	if err != nil {
		helpers.RespondDomainError(c, "SearchCarsHandler", err, map[string]any{
			"filter": req.Filter,
			"search": req.Search,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, cars, "cars retrieved successfully")
}

// CountCarsHandler handles GET /cars-count
func (h *CarHandler) CountCarsHandler(c *gin.Context) {
	var req helpers.CountQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		helpers.HandleBindError(c, "CountCarsHandler", err)
		return
	}

	count, err := h.service.CountCatalog(c.Request.Context(), req.Brand, req.Search)
	if err != nil {
		helpers.RespondDomainError(c, "CountCarsHandler", err, map[string]any{
			"brand":  req.Brand,
			"search": req.Search,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.CountResponse{Count: count}, "car count retrieved successfully")
}

// GetCarHandler handles GET /car/:id
func (h *CarHandler) GetCarHandler(c *gin.Context) {
	id := c.Param("id")
	car, err := h.service.GetCar(c.Request.Context(), id)
	if err != nil {
		helpers.RespondDomainError(c, "GetCarHandler", err, map[string]any{"car_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, car, "car retrieved successfully")
}

// MyCarsHandler handles GET /cars/:email
func (h *CarHandler) MyCarsHandler(c *gin.Context) {
	principal, ok := helpers.PrincipalFromContext(c)
	if !ok {
		helpers.RespondDomainError(c, "MyCarsHandler", aucterrors.ErrUnauthenticated, nil)
		return
	}

	email := c.Param("email")
	cars, err := h.service.ListCarsForUser(c.Request.Context(), principal, email)
	if err != nil {
		helpers.RespondDomainError(c, "MyCarsHandler", err, map[string]any{
			"path_email":      email,
			"principal_email": principal.Email,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, cars, "cars retrieved successfully")
	helpers.LogSuccess("MyCarsHandler", "cars retrieved successfully", map[string]any{
		"email": principal.Email,
		"count": len(cars),
	})
}

// CreateCarHandler handles POST /car
func (h *CarHandler) CreateCarHandler(c *gin.Context) {
	principal, ok := helpers.PrincipalFromContext(c)
	if !ok {
		helpers.RespondDomainError(c, "CreateCarHandler", aucterrors.ErrUnauthenticated, nil)
		return
	}

	var req helpers.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCarHandler", err)
		return
	}

	created, err := h.service.CreateCar(c.Request.Context(), principal, carFromCreateRequest(req))
	if err != nil {
		helpers.RespondDomainError(c, "CreateCarHandler", err, map[string]any{"seller": principal.Email})
		return
	}

	utils.JSONResponse(c, http.StatusOK, created, "car created successfully")
	helpers.LogSuccess("CreateCarHandler", "car created successfully", map[string]any{
		"car_id": created.ID.Hex(),
		"seller": principal.Email,
	})
}

// UpdateCarHandler handles PUT /car/:id
func (h *CarHandler) UpdateCarHandler(c *gin.Context) {
	principal, ok := helpers.PrincipalFromContext(c)
	if !ok {
		helpers.RespondDomainError(c, "UpdateCarHandler", aucterrors.ErrUnauthenticated, nil)
		return
	}

	var req helpers.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateCarHandler", err)
		return
	}

	id := c.Param("id")
	replaceGallery := req.GalleryImages != nil
	updated, err := h.service.UpdateCar(c.Request.Context(), principal, id, carFromUpdateRequest(req), replaceGallery)
	if err != nil {
		helpers.RespondDomainError(c, "UpdateCarHandler", err, map[string]any{
			"car_id": id,
			"seller": principal.Email,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "car updated successfully")
	helpers.LogSuccess("UpdateCarHandler", "car updated successfully", map[string]any{
		"car_id": id,
		"seller": principal.Email,
	})
}

// DeleteCarHandler handles DELETE /car/:id
func (h *CarHandler) DeleteCarHandler(c *gin.Context) {
	principal, ok := helpers.PrincipalFromContext(c)
	if !ok {
		helpers.RespondDomainError(c, "DeleteCarHandler", aucterrors.ErrUnauthenticated, nil)
		return
	}

	id := c.Param("id")
	if err := h.service.DeleteCar(c.Request.Context(), principal, id); err != nil {
		helpers.RespondDomainError(c, "DeleteCarHandler", err, map[string]any{
			"car_id": id,
			"seller": principal.Email,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"deleted": true}, "car deleted successfully")
	helpers.LogSuccess("DeleteCarHandler", "car deleted successfully", map[string]any{
		"car_id": id,
		"seller": principal.Email,
	})
}

func carFromCreateRequest(req helpers.CreateCarRequest) model.Car {
	return model.Car{
		BrandName:          req.BrandName,
		ModelName:          req.ModelName,
		Category:           req.Category,
		Country:            req.Country,
		PriceRange:         model.PriceRange{MinPrice: req.PriceRange.MinPrice, MaxPrice: req.PriceRange.MaxPrice},
		Dateline:           req.Dateline,
		AvailabilityStatus: req.AvailabilityStatus,
		MainImage:          req.MainImage,
		GalleryImages:      req.GalleryImages,
		Features:           req.Features,
	}
}

func carFromUpdateRequest(req helpers.UpdateCarRequest) model.Car {
	return model.Car{
		BrandName:          req.BrandName,
		ModelName:          req.ModelName,
		Category:           req.Category,
		Country:            req.Country,
		PriceRange:         model.PriceRange{MinPrice: req.PriceRange.MinPrice, MaxPrice: req.PriceRange.MaxPrice},
		Dateline:           req.Dateline,
		AvailabilityStatus: req.AvailabilityStatus,
		MainImage:          req.MainImage,
		GalleryImages:      req.GalleryImages,
		Features:           req.Features,
	}
}
