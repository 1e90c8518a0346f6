package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/codeby-aftab/trip-ai-backend/errors"
	"github.com/codeby-aftab/trip-ai-backend/store"
	"github.com/codeby-aftab/trip-ai-backend/types"
)

// UserHandler exposes the local account surface: login flag, profile and
// saved trips, all backed by the key-value collaborator.
type UserHandler struct {
	users *store.UserStore
}

func NewUserHandler(users *store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

type LoginRequest struct {
	Name string `json:"name,omitempty"`
}

// LoginHandler marks the user as logged in. When a name is supplied and no
// profile exists yet, a fresh profile is created for it.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	userID := c.Param("id")

	var req LoginRequest
	if c.Request.ContentLength > 0 && !bindJSONOrError(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if err := h.users.SetLoggedIn(ctx, userID); err != nil {
		_ = c.Error(err)
		return
	}

	if req.Name != "" {
		if _, err := h.users.GetProfile(ctx, userID); apperrors.IsType(err, apperrors.NotFoundError) {
			if err := h.users.SaveProfile(ctx, userID, types.UserProfile{Name: req.Name}); err != nil {
				_ = c.Error(err)
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"loggedIn": true})
}

// LogoutHandler clears all of the user's stored keys.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	if err := h.users.Logout(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"loggedIn": false})
}

// GetProfileHandler returns the user's stored profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	profile, err := h.users.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler replaces the user's stored profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	var profile types.UserProfile
	if !bindJSONOrError(c, &profile) {
		return
	}

	if err := h.users.SaveProfile(c.Request.Context(), c.Param("id"), profile); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveTripHandler appends one plan snapshot to the user's saved trips.
// Saving the same (planName, destination, totalCost) twice yields 409.
func (h *UserHandler) SaveTripHandler(c *gin.Context) {
	var plan types.TripPlan
	if !bindJSONOrError(c, &plan) {
		return
	}

	if err := h.users.SaveTrip(c.Request.Context(), c.Param("id"), plan); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"saved": true})
}

// ListTripsHandler returns the user's saved trips in insertion order.
func (h *UserHandler) ListTripsHandler(c *gin.Context) {
	trips, err := h.users.ListTrips(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"savedTrips": trips})
}

// DeleteTripHandler removes one saved trip by its composite key, supplied
// as the "key" query parameter.
func (h *UserHandler) DeleteTripHandler(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		_ = c.Error(apperrors.ValidationFailed("Missing trip key", "the key query parameter is required"))
		return
	}

	if err := h.users.DeleteTrip(c.Request.Context(), c.Param("id"), key); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
