package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeby-aftab/trip-ai-backend/middleware"
	"github.com/codeby-aftab/trip-ai-backend/store"
)

func newUserRouter() *gin.Engine {
	handler := NewUserHandler(store.NewUserStore(store.NewMemoryKV()))

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	users := r.Group("/v1/users/:id")
	{
		users.POST("/login", handler.LoginHandler)
		users.POST("/logout", handler.LogoutHandler)
		users.GET("/profile", handler.GetProfileHandler)
		users.PUT("/profile", handler.UpdateProfileHandler)
		users.GET("/trips", handler.ListTripsHandler)
		users.POST("/trips", handler.SaveTripHandler)
		users.DELETE("/trips", handler.DeleteTripHandler)
	}
	return r
}

func TestLogin_CreatesProfileFromName(t *testing.T) {
	r := newUserRouter()

	w := doJSON(r, "POST", "/v1/users/u1/login", `{"name":"Aftab"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"loggedIn":true`)

	w = doJSON(r, "GET", "/v1/users/u1/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Aftab"`)
}

func TestLogin_WithoutBody(t *testing.T) {
	r := newUserRouter()

	w := doJSON(r, "POST", "/v1/users/u1/login", "")
	require.Equal(t, http.StatusOK, w.Code)

	// No name supplied, so no profile was created.
	w = doJSON(r, "GET", "/v1/users/u1/profile", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogin_DoesNotOverwriteExistingProfile(t *testing.T) {
	r := newUserRouter()

	w := doJSON(r, "PUT", "/v1/users/u1/profile", `{"name":"Original","homeCity":"Lahore"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "POST", "/v1/users/u1/login", `{"name":"Impostor"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "GET", "/v1/users/u1/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Original"`)
}

func TestProfileUpdateAndGet(t *testing.T) {
	r := newUserRouter()

	w := doJSON(r, "GET", "/v1/users/u1/profile", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")

	w = doJSON(r, "PUT", "/v1/users/u1/profile", `{"name":"Aftab","homeCity":"Lahore"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "GET", "/v1/users/u1/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"homeCity":"Lahore"`)
}

func TestSavedTripsFlow(t *testing.T) {
	r := newUserRouter()

	plan := `{"planName":"Budget Plan","destination":"Paris, France","totalCost":900}`

	w := doJSON(r, "POST", "/v1/users/u1/trips", plan)
	require.Equal(t, http.StatusCreated, w.Code)

	// Saving the same snapshot twice conflicts.
	w = doJSON(r, "POST", "/v1/users/u1/trips", plan)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")

	w = doJSON(r, "GET", "/v1/users/u1/trips", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"savedTrips"`)
	assert.Contains(t, w.Body.String(), "Budget Plan")

	key := url.QueryEscape("Budget Plan|Paris, France|900")
	w = doJSON(r, "DELETE", fmt.Sprintf("/v1/users/u1/trips?key=%s", key), "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "GET", "/v1/users/u1/trips", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"savedTrips":[]`)
}

func TestDeleteTrip_MissingKey(t *testing.T) {
	r := newUserRouter()

	w := doJSON(r, "DELETE", "/v1/users/u1/trips", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestDeleteTrip_UnknownKey(t *testing.T) {
	r := newUserRouter()

	w := doJSON(r, "DELETE", "/v1/users/u1/trips?key="+url.QueryEscape("Nope|Nowhere|1"), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogoutFlow(t *testing.T) {
	r := newUserRouter()

	w := doJSON(r, "POST", "/v1/users/u1/login", `{"name":"Aftab"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "POST", "/v1/users/u1/logout", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"loggedIn":false`)

	// Logout wipes the profile with the session.
	w = doJSON(r, "GET", "/v1/users/u1/profile", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
