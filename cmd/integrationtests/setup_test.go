package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"autobid-server/internal/auth"
	"autobid-server/internal/bidding"
	"autobid-server/internal/catalog"
	"autobid-server/internal/repository"
	"autobid-server/internal/server"
	"autobid-server/services/auction/handler"
	"autobid-server/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "integration-test-secret"

// SetupTestRouter initializes the router over an in-memory store for
// integration testing.
func SetupTestRouter() (*gin.Engine, *repository.MemoryStore) {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore()
	catalogService := catalog.NewCatalogService(store)
	biddingService := bidding.NewBiddingService(store, store)
	sessions := auth.NewSessionManager(testSecret)
	router := server.SetupRouter(catalogService, biddingService, sessions, nil)
	return router, store
}

// LoginAs creates a session through POST /jwt and returns the session cookie.
func LoginAs(t *testing.T, router *gin.Engine, email, name string) *http.Cookie {
	t.Helper()

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/jwt", helpers.SessionRequest{Email: email, Name: name}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == handler.SessionCookieName {
			return c
		}
	}
	t.Fatalf("no session cookie returned for %s", email)
	return nil
}

// ExecuteRequestAndParse executes an HTTP request on the given router,
// optionally authenticated with cookie, and parses the response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, cookie *http.Cookie) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 && json.Valid(w.Body.Bytes()) {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// DataObject extracts the data field of a success envelope as an object.
func DataObject(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response data is not an object: %v", resp)
	return data
}

// DataList extracts the data field of a success envelope as a list.
func DataList(t *testing.T, resp map[string]any) []map[string]any {
	t.Helper()
	raw, ok := resp["data"].([]any)
	require.True(t, ok, "response data is not a list: %v", resp)
	list := make([]map[string]any, len(raw))
	for i, v := range raw {
		list[i] = v.(map[string]any)
	}
	return list
}

// CreateListing posts a car as the given session and returns its id.
func CreateListing(t *testing.T, router *gin.Engine, cookie *http.Cookie, req helpers.CreateCarRequest) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/car", req, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	id, ok := DataObject(t, resp)["_id"].(string)
	require.True(t, ok, "created car has no id")
	require.NotEmpty(t, id)
	return id
}

// listing is a ready-to-post car body with sensible defaults.
func listing(brand, modelName string, minPrice float64) helpers.CreateCarRequest {
	return helpers.CreateCarRequest{
		BrandName:  brand,
		ModelName:  modelName,
		Category:   "Sedan",
		PriceRange: helpers.PriceRangeInput{MinPrice: minPrice, MaxPrice: minPrice * 2},
	}
}
