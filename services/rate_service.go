package services

import (
	"context"
	"sync"

	"github.com/codeby-aftab/trip-ai-backend/logger"
	"github.com/codeby-aftab/trip-ai-backend/pkg/exchangerate"
	"github.com/codeby-aftab/trip-ai-backend/types"
)

// RateService holds an immutable exchange-rate snapshot for the lifetime of
// the session. The snapshot is fetched once at startup and replaced only by
// an explicit Refresh; there is no automatic expiry. Nothing may mutate a
// table once it has been handed out.
type RateService struct {
	client exchangerate.ClientInterface
	base   string

	mu       sync.RWMutex
	snapshot types.RateTable
}

// NewRateService creates a rate service fetching rates relative to base.
// A nil client puts the service in static mode, serving the built-in table.
func NewRateService(client exchangerate.ClientInterface, base string) *RateService {
	s := &RateService{client: client, base: base}
	if client == nil {
		s.snapshot = exchangerate.StaticRates()
	}
	return s
}

// Snapshot returns the current rate table, or nil when no table has been
// fetched yet. Callers treat the returned table as read-only.
func (s *RateService) Snapshot() types.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Refresh fetches a fresh rate table and installs it as the new snapshot.
// On failure the previous snapshot is kept, so a refresh can never make the
// display pipeline worse than it already was.
func (s *RateService) Refresh(ctx context.Context) (types.RateTable, error) {
	log := logger.GetLogger()

	if s.client == nil {
		log.Debug("Rate service in static mode; refresh is a no-op")
		return s.Snapshot(), nil
	}

	rates, err := s.client.FetchRates(ctx, s.base)
	if err != nil {
		log.Warnw("Rate refresh failed, keeping previous snapshot", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.snapshot = rates
	s.mu.Unlock()

	log.Infow("Exchange-rate snapshot refreshed", "base", s.base, "rates", len(rates))
	return rates, nil
}
