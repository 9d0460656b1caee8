package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autobid-server/internal/aucterrors"
	model "autobid-server/internal/models"
	"autobid-server/internal/repository"
	"autobid-server/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testSeller = model.Principal{Email: "seller@example.com", Name: "Test Seller"}

// asPrincipal injects an authenticated identity the way the session
// middleware does
func asPrincipal(p model.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(helpers.PrincipalContextKey, p)
		c.Next()
	}
}

func sampleCar() model.Car {
	return model.Car{
		ID:          primitive.NewObjectID(),
		BrandName:   "Toyota",
		ModelName:   "Supra",
		Category:    "Sports",
		SellerEmail: testSeller.Email,
		PriceRange:  model.PriceRange{MinPrice: 30000, MaxPrice: 45000},
		Dateline:    time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Test SearchCarsHandler
func TestSearchCarsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewCarHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/all-cars", handler.SearchCarsHandler)

	tests := []struct {
		name           string
		queryString    string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data []map[string]any)
	}{
		{
			name:        "success_full_query",
			queryString: "?filter=Toyota&search=supra&sort=asc&page=1&size=8",
			mockSetup: func() {
				mockService.EXPECT().
					SearchCatalog(gomock.Any(), repository.CatalogQuery{
						Brand:  "Toyota",
						Search: "supra",
						Sort:   repository.SortAscending,
						Page:   1,
						Size:   8,
					}).
					Return([]model.Car{sampleCar()}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "cars retrieved successfully",
			validateData: func(t *testing.T, data []map[string]any) {
				require.Len(t, data, 1)
				require.Equal(t, "Supra", data[0]["model_name"])
			},
		},
		{
			name:        "success_empty_query",
			queryString: "",
			mockSetup: func() {
				mockService.EXPECT().
					SearchCatalog(gomock.Any(), repository.CatalogQuery{}).
					Return([]model.Car{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "cars retrieved successfully",
			validateData: func(t *testing.T, data []map[string]any) {
				require.Len(t, data, 0)
			},
		},
		{
			name:           "invalid_sort_value",
			queryString:    "?sort=sideways",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "negative_page",
			queryString:    "?page=-1",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "non_numeric_size",
			queryString:    "?size=lots",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "service_generic_error",
			queryString: "?filter=BMW",
			mockSetup: func() {
				mockService.EXPECT().
					SearchCatalog(gomock.Any(), repository.CatalogQuery{Brand: "BMW"}).
					Return(nil, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/all-cars"+tc.queryString, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				dataRaw := resp["data"].([]any)
				data := make([]map[string]any, len(dataRaw))
				for i, v := range dataRaw {
					data[i] = v.(map[string]any)
				}
				tc.validateData(t, data)
			}
		})
	}
}

// Test CountCarsHandler
func TestCountCarsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewCarHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/cars-count", handler.CountCarsHandler)

	tests := []struct {
		name           string
		queryString    string
		mockSetup      func()
		expectedStatus int
		expectedCount  float64
	}{
		{
			name:        "count_all",
			queryString: "",
			mockSetup: func() {
				mockService.EXPECT().CountCatalog(gomock.Any(), "", "").Return(int64(42), nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  42,
		},
		{
			name:        "count_filtered",
			queryString: "?brand=Toyota&search=sedan",
			mockSetup: func() {
				mockService.EXPECT().CountCatalog(gomock.Any(), "Toyota", "sedan").Return(int64(3), nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  3,
		},
		{
			name:        "service_generic_error",
			queryString: "?brand=BMW",
			mockSetup: func() {
				mockService.EXPECT().CountCatalog(gomock.Any(), "BMW", "").Return(int64(0), errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/cars-count"+tc.queryString, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			if w.Code == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]any)
				require.Equal(t, tc.expectedCount, data["count"])
			}
		})
	}
}

// Test GetCarHandler
func TestGetCarHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewCarHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/car/:id", handler.GetCarHandler)

	car := sampleCar()

	tests := []struct {
		name           string
		carID          string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:  "success",
			carID: car.ID.Hex(),
			mockSetup: func() {
				mockService.EXPECT().GetCar(gomock.Any(), car.ID.Hex()).Return(car, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "car retrieved successfully",
		},
		{
			name:  "not_found",
			carID: "deadbeef",
			mockSetup: func() {
				mockService.EXPECT().
					GetCar(gomock.Any(), "deadbeef").
					Return(model.Car{}, aucterrors.ErrCarNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "car not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/car/"+tc.carID, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test CreateCarHandler
func TestCreateCarHandler(t *testing.T) {
	validBody := helpers.CreateCarRequest{
		BrandName:  "Toyota",
		ModelName:  "Supra",
		Category:   "Sports",
		PriceRange: helpers.PriceRangeInput{MinPrice: 30000, MaxPrice: 45000},
	}

	tests := []struct {
		name           string
		principal      *model.Principal
		requestBody    any
		mockSetup      func(m *MockCatalogServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			principal:   &testSeller,
			requestBody: validBody,
			mockSetup: func(m *MockCatalogServiceInterface) {
				m.EXPECT().
					CreateCar(gomock.Any(), testSeller, gomock.Any()).
					Return(sampleCar(), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "car created successfully",
		},
		{
			name:           "no_principal_is_unauthorized",
			principal:      nil,
			requestBody:    validBody,
			mockSetup:      func(m *MockCatalogServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "unauthorized access",
		},
		{
			name:           "invalid_json",
			principal:      &testSeller,
			requestBody:    `{invalid json}`,
			mockSetup:      func(m *MockCatalogServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:      "missing_brand",
			principal: &testSeller,
			requestBody: helpers.CreateCarRequest{
				ModelName:  "Supra",
				PriceRange: helpers.PriceRangeInput{MinPrice: 30000, MaxPrice: 45000},
			},
			mockSetup:      func(m *MockCatalogServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:      "max_below_min_price",
			principal: &testSeller,
			requestBody: helpers.CreateCarRequest{
				BrandName:  "Toyota",
				ModelName:  "Supra",
				PriceRange: helpers.PriceRangeInput{MinPrice: 30000, MaxPrice: 100},
			},
			mockSetup:      func(m *MockCatalogServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:      "unknown_availability_status",
			principal: &testSeller,
			requestBody: helpers.CreateCarRequest{
				BrandName:          "Toyota",
				ModelName:          "Supra",
				PriceRange:         helpers.PriceRangeInput{MinPrice: 30000, MaxPrice: 45000},
				AvailabilityStatus: "Gone",
			},
			mockSetup:      func(m *MockCatalogServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "service_generic_error",
			principal:   &testSeller,
			requestBody: validBody,
			mockSetup: func(m *MockCatalogServiceInterface) {
				m.EXPECT().
					CreateCar(gomock.Any(), testSeller, gomock.Any()).
					Return(model.Car{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockCatalogServiceInterface(ctrl)
			tc.mockSetup(mockService)
			handler := NewCarHandler(mockService)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			if tc.principal != nil {
				router.POST("/car", asPrincipal(*tc.principal), handler.CreateCarHandler)
			} else {
				router.POST("/car", handler.CreateCarHandler)
			}

			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/car", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test UpdateCarHandler gallery semantics
func TestUpdateCarHandler(t *testing.T) {
	car := sampleCar()

	baseBody := func() map[string]any {
		return map[string]any{
			"brand_name":  "Toyota",
			"model_name":  "Supra GR",
			"price_range": map[string]any{"min_price": 32000.0, "max_price": 48000.0},
		}
	}

	tests := []struct {
		name               string
		body               map[string]any
		wantReplaceGallery bool
	}{
		{
			name:               "absent_gallery_keeps_stored_one",
			body:               baseBody(),
			wantReplaceGallery: false,
		},
		{
			name: "explicit_gallery_replaces_stored_one",
			body: func() map[string]any {
				b := baseBody()
				b["gallery_images"] = []string{"new.jpg"}
				return b
			}(),
			wantReplaceGallery: true,
		},
		{
			name: "explicit_empty_gallery_clears_stored_one",
			body: func() map[string]any {
				b := baseBody()
				b["gallery_images"] = []string{}
				return b
			}(),
			wantReplaceGallery: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockCatalogServiceInterface(ctrl)
			mockService.EXPECT().
				UpdateCar(gomock.Any(), testSeller, car.ID.Hex(), gomock.Any(), tc.wantReplaceGallery).
				Return(car, nil)

			handler := NewCarHandler(mockService)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.PUT("/car/:id", asPrincipal(testSeller), handler.UpdateCarHandler)

			reqBody, err := json.Marshal(tc.body)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPut, "/car/"+car.ID.Hex(), bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
		})
	}
}

// Test DeleteCarHandler / MyCarsHandler authorization mapping
func TestOwnerRouteErrorMapping(t *testing.T) {
	car := sampleCar()

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedMsg    string
	}{
		{name: "forbidden", serviceErr: aucterrors.ErrForbidden, expectedStatus: http.StatusForbidden, expectedMsg: "forbidden access"},
		{name: "not_found", serviceErr: aucterrors.ErrCarNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "car not found"},
		{name: "generic", serviceErr: errors.New("database failure"), expectedStatus: http.StatusInternalServerError, expectedMsg: "internal server error"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockCatalogServiceInterface(ctrl)
			mockService.EXPECT().
				DeleteCar(gomock.Any(), testSeller, car.ID.Hex()).
				Return(tc.serviceErr)

			handler := NewCarHandler(mockService)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.DELETE("/car/:id", asPrincipal(testSeller), handler.DeleteCarHandler)

			req := httptest.NewRequest(http.MethodDelete, "/car/"+car.ID.Hex(), nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}

	t.Run("my_cars_scoped_to_principal", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := NewMockCatalogServiceInterface(ctrl)
		mockService.EXPECT().
			ListCarsForUser(gomock.Any(), testSeller, "other@example.com").
			Return(nil, aucterrors.ErrForbidden)

		handler := NewCarHandler(mockService)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/cars/:email", asPrincipal(testSeller), handler.MyCarsHandler)

		req := httptest.NewRequest(http.MethodGet, "/cars/other@example.com", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
