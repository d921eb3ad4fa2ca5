package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"user_service/internal/feature/users/adapters"
	"user_service/internal/feature/users/domain/entity"
	usershandler "user_service/internal/feature/users/transport/handler"
	"user_service/internal/feature/users/usecase"
)

// newTestServer wires the real stack, repositories through handlers, on
// an in-memory SQLite database.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&entity.UserProfile{}, &entity.UserAddress{}))

	tx := adapters.NewTxManager(db)
	profiles := adapters.NewProfileRepository(db)
	addresses := adapters.NewAddressRepository(db)

	profileUC := usecase.NewProfileUsecase(profiles, tx)
	addressUC := usecase.NewAddressUsecase(addresses, profiles, tx)

	return NewRouter(
		usershandler.NewProfileHandler(profileUC),
		usershandler.NewAddressHandler(addressUC),
		5*time.Second,
	)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProfile(t *testing.T, r *gin.Engine, email string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/userProfile/createUser", gin.H{
		"authUserId": "auth-" + email, "firstName": "Ada", "lastName": "Lovelace", "email": email,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var id uint
	_, err := fmt.Sscanf(w.Body.String(), "User profile created successfully with ID: %d", &id)
	require.NoError(t, err)
	return id
}

func createAddress(t *testing.T, r *gin.Engine, profileID uint) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/userAddress/createUserAddress", gin.H{
		"userProfile": gin.H{"id": profileID},
		"line1":       "1 Main St", "city": "Springfield", "country": "US",
		"postalCode": "01234", "isDefault": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var id uint
	_, err := fmt.Sscanf(w.Body.String(), "User address created successfully with ID: %d", &id)
	require.NoError(t, err)
	return id
}

func TestRouter_ProfileLifecycle(t *testing.T) {
	r := newTestServer(t)

	id := createProfile(t, r, "ada@x.io")

	// Round-trip: the stored profile comes back intact.
	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/userProfile/getUser/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "ada@x.io", got["email"])
	assert.Equal(t, "Ada", got["firstName"])
	assert.Equal(t, []any{}, got["addresses"])
	assert.Nil(t, got["updatedAt"])

	// Edit: timestamps move, identity stays.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/userProfile/editUser/%d", id), gin.H{
		"authUserId": "auth-ada@x.io", "firstName": "Grace", "lastName": "Hopper", "email": "ada@x.io",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, fmt.Sprintf("User Profile got updated for user Id: %d", id), w.Body.String())

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/userProfile/getUser/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Grace", got["firstName"])
	assert.NotNil(t, got["updatedAt"])
	assert.NotNil(t, got["createdAt"], "createdAt must survive an edit")

	// Delete, then the id is gone.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/userProfile/removeUserProfile/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, fmt.Sprintf("User Profile got deleted for user Id: %d", id), w.Body.String())

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/userProfile/getUser/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_EmailUniqueness(t *testing.T) {
	r := newTestServer(t)

	createProfile(t, r, "dup@x.io")

	w := doJSON(t, r, http.MethodPost, "/userProfile/createUser", gin.H{
		"authUserId": "auth-2", "firstName": "Eve", "lastName": "Clone", "email": "dup@x.io",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"INVALID_ARGUMENT","message":"User with email already exists: dup@x.io"}`, w.Body.String())
}

func TestRouter_BlankEmailRejected(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/userProfile/createUser", gin.H{
		"authUserId": "auth-1", "firstName": "Ada", "lastName": "Lovelace", "email": "   ",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"INVALID_ARGUMENT","message":"Email is required"}`, w.Body.String())
}

func TestRouter_AddressLifecycle(t *testing.T) {
	r := newTestServer(t)

	profileID := createProfile(t, r, "owner@x.io")
	addressID := createAddress(t, r, profileID)

	// The address response embeds its owner, without the owner's addresses.
	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/userAddress/getUser/%d", addressID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "01234", got["postalCode"])
	owner, ok := got["userProfile"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(profileID), owner["id"])
	_, hasAddresses := owner["addresses"]
	assert.False(t, hasAddresses)

	// The profile response embeds the address, without a back-reference.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/userProfile/getUser/%d", profileID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	nested, ok := got["addresses"].([]any)
	require.True(t, ok)
	require.Len(t, nested, 1)
	assert.NotContains(t, w.Body.String(), "userProfile\":", "nested addresses must not embed the profile")

	// Edit without a profile reference keeps the owner.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/userAddress/editUser/%d", addressID), gin.H{
		"line1": "2 Oak Ave", "city": "Springfield", "country": "US", "isDefault": false,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, fmt.Sprintf("User Address got updated for user Id: %d", addressID), w.Body.String())

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/userAddress/getUser/%d", addressID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "2 Oak Ave", got["line1"])
	owner, ok = got["userProfile"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(profileID), owner["id"], "owner must survive an edit without a reference")

	// Delete the address.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/userAddress/removeUserAddress/%d", addressID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, fmt.Sprintf("User Address got deleted for user Id: %d", addressID), w.Body.String())

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/userAddress/getUser/%d", addressID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_AddressForMissingProfile(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/userAddress/createUserAddress", gin.H{
		"userProfile": gin.H{"id": 9999},
		"line1":       "1 Main St", "city": "Springfield", "country": "US", "isDefault": false,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"INVALID_ARGUMENT","message":"UserProfile with ID 9999 does not exist"}`, w.Body.String())
}

func TestRouter_ReHomingRejected(t *testing.T) {
	r := newTestServer(t)

	first := createProfile(t, r, "first@x.io")
	second := createProfile(t, r, "second@x.io")
	addressID := createAddress(t, r, first)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/userAddress/editUser/%d", addressID), gin.H{
		"userProfile": gin.H{"id": second},
		"line1":       "1 Main St", "city": "Springfield", "country": "US", "isDefault": false,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"INVALID_ARGUMENT","message":"UserAddress cannot be moved to a different UserProfile"}`, w.Body.String())
}

func TestRouter_CascadeDelete(t *testing.T) {
	r := newTestServer(t)

	profileID := createProfile(t, r, "cascade@x.io")
	addressID := createAddress(t, r, profileID)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/userProfile/removeUserProfile/%d", profileID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The child follows its parent.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/userAddress/getUser/%d", addressID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// And the collection endpoints agree.
	w = doJSON(t, r, http.MethodGet, "/userAddress/getAllUsers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRouter_MultipleDefaultAddressesAllowed(t *testing.T) {
	r := newTestServer(t)

	profileID := createProfile(t, r, "defaults@x.io")
	createAddress(t, r, profileID)
	createAddress(t, r, profileID)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/userProfile/getUser/%d", profileID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	nested, ok := got["addresses"].([]any)
	require.True(t, ok)
	assert.Len(t, nested, 2)
}

func TestRouter_Healthz(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
