package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wedding_server/controllers"
	"wedding_server/routes"
	"wedding_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminPassword = "castle-secret"

func newGiftRouter() *mux.Router {
	claimService := &services.ClaimService{Store: newMemStore()}
	r := mux.NewRouter()
	routes.RegisterGiftRoutes(r, claimService, testAdminPassword)
	return r
}

func claimBody(itemID, claimedBy string) *strings.Reader {
	return strings.NewReader(`{"itemId":"` + itemID + `","claimedBy":"` + claimedBy + `"}`)
}

func TestClaimGift_SuccessThenConflict(t *testing.T) {
	router := newGiftRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/gifts", claimBody("kitchenaid", "Alice")))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, created.Success)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/gifts", claimBody("kitchenaid", "Bob")))
	require.Equal(t, http.StatusConflict, rec.Code)

	var conflict struct {
		Claimed bool `json:"claimed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conflict))
	assert.True(t, conflict.Claimed)
}

func TestClaimGift_MissingFields(t *testing.T) {
	router := newGiftRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/gifts", strings.NewReader(`{"itemId":"kitchenaid"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetClaimedGifts(t *testing.T) {
	router := newGiftRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/gifts", claimBody("camera", "Carol")))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/gifts", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		ClaimedGifts []string `json:"claimedGifts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, []string{"camera"}, response.ClaimedGifts)
}

func TestAdminClaims_RequiresSecret(t *testing.T) {
	router := newGiftRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/gifts/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest("GET", "/api/gifts/admin", nil)
	req.Header.Set("x-admin-password", testAdminPassword)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("GET", "/api/gifts/admin", nil)
	req.AddCookie(&http.Cookie{Name: controllers.AdminAuthCookie, Value: testAdminPassword})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
