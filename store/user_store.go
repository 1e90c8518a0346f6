package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	apperrors "github.com/codeby-aftab/trip-ai-backend/errors"
	"github.com/codeby-aftab/trip-ai-backend/logger"
	"github.com/codeby-aftab/trip-ai-backend/types"
)

// UserStore keeps the login flag, user profile and saved-trip snapshots in
// the key-value collaborator. Saved trips are append-only and deduplicated
// by the loose (planName, destination, totalCost) composite key.
type UserStore struct {
	kv KVStore
}

func NewUserStore(kv KVStore) *UserStore {
	return &UserStore{kv: kv}
}

func loggedInKey(userID string) string { return fmt.Sprintf("user:%s:logged_in", userID) }
func profileKey(userID string) string  { return fmt.Sprintf("user:%s:profile", userID) }
func tripsKey(userID string) string    { return fmt.Sprintf("user:%s:saved_trips", userID) }

// SetLoggedIn marks a user session as active.
func (s *UserStore) SetLoggedIn(ctx context.Context, userID string) error {
	if err := s.kv.Set(ctx, loggedInKey(userID), "true"); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

// IsLoggedIn reports whether a user session is active.
func (s *UserStore) IsLoggedIn(ctx context.Context, userID string) (bool, error) {
	value, err := s.kv.Get(ctx, loggedInKey(userID))
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.NewStorageError(err)
	}
	return value == "true", nil
}

// Logout clears all of the user's keys: flag, profile and saved trips.
func (s *UserStore) Logout(ctx context.Context, userID string) error {
	err := s.kv.Delete(ctx, loggedInKey(userID), profileKey(userID), tripsKey(userID))
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	logger.GetLogger().Infow("User logged out, keys cleared", "userID", userID)
	return nil
}

// SaveProfile stores the user's profile.
func (s *UserStore) SaveProfile(ctx context.Context, userID string, profile types.UserProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	if err := s.kv.Set(ctx, profileKey(userID), string(payload)); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

// GetProfile loads the user's profile, failing with NotFound when absent.
func (s *UserStore) GetProfile(ctx context.Context, userID string) (*types.UserProfile, error) {
	value, err := s.kv.Get(ctx, profileKey(userID))
	if errors.Is(err, ErrKeyNotFound) {
		return nil, apperrors.NotFound("Profile", userID)
	}
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	var profile types.UserProfile
	if err := json.Unmarshal([]byte(value), &profile); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return &profile, nil
}

// SaveTrip appends a plan snapshot to the user's saved trips. A plan with
// the same (planName, destination, totalCost) key is rejected with Conflict.
func (s *UserStore) SaveTrip(ctx context.Context, userID string, plan types.TripPlan) error {
	trips, err := s.ListTrips(ctx, userID)
	if err != nil {
		return err
	}

	key := plan.DuplicateKey()
	for _, saved := range trips {
		if saved.DuplicateKey() == key {
			return apperrors.NewConflictError("Trip already saved", key)
		}
	}

	trips = append(trips, plan)
	payload, err := json.Marshal(trips)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	if err := s.kv.Set(ctx, tripsKey(userID), string(payload)); err != nil {
		return apperrors.NewStorageError(err)
	}

	logger.GetLogger().Infow("Trip saved", "userID", userID, "plan", plan.PlanName, "destination", plan.Destination)
	return nil
}

// ListTrips returns the user's saved trips in insertion order. A user with
// no saved trips gets an empty list, not an error.
func (s *UserStore) ListTrips(ctx context.Context, userID string) ([]types.TripPlan, error) {
	value, err := s.kv.Get(ctx, tripsKey(userID))
	if errors.Is(err, ErrKeyNotFound) {
		return []types.TripPlan{}, nil
	}
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	var trips []types.TripPlan
	if err := json.Unmarshal([]byte(value), &trips); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return trips, nil
}

// DeleteTrip removes one saved trip by its composite key.
func (s *UserStore) DeleteTrip(ctx context.Context, userID, duplicateKey string) error {
	trips, err := s.ListTrips(ctx, userID)
	if err != nil {
		return err
	}

	remaining := make([]types.TripPlan, 0, len(trips))
	for _, saved := range trips {
		if saved.DuplicateKey() != duplicateKey {
			remaining = append(remaining, saved)
		}
	}
	if len(remaining) == len(trips) {
		return apperrors.NotFound("Saved trip", duplicateKey)
	}

	payload, err := json.Marshal(remaining)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	if err := s.kv.Set(ctx, tripsKey(userID), string(payload)); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}
