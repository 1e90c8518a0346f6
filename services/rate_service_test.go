package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeby-aftab/trip-ai-backend/types"
)

type fakeRateClient struct {
	rates types.RateTable
	err   error
	calls int
}

func (f *fakeRateClient) FetchRates(ctx context.Context, base string) (types.RateTable, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rates, nil
}

func TestRateService_NilSnapshotBeforeFirstRefresh(t *testing.T) {
	svc := NewRateService(&fakeRateClient{}, "USD")
	assert.Nil(t, svc.Snapshot())
}

func TestRateService_RefreshInstallsSnapshot(t *testing.T) {
	client := &fakeRateClient{rates: types.RateTable{"EUR": 0.92}}
	svc := NewRateService(client, "USD")

	rates, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.92, rates["EUR"])
	assert.Equal(t, 0.92, svc.Snapshot()["EUR"])
}

func TestRateService_FailedRefreshKeepsPreviousSnapshot(t *testing.T) {
	client := &fakeRateClient{rates: types.RateTable{"EUR": 0.92}}
	svc := NewRateService(client, "USD")

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	client.err = errors.New("boom")
	_, err = svc.Refresh(context.Background())
	require.Error(t, err)

	assert.Equal(t, 0.92, svc.Snapshot()["EUR"], "a failed refresh must not clear the snapshot")
}

func TestRateService_StaticMode(t *testing.T) {
	svc := NewRateService(nil, "USD")

	snapshot := svc.Snapshot()
	require.NotNil(t, snapshot, "static mode serves the built-in table immediately")
	assert.Equal(t, 1.0, snapshot["USD"])

	rates, err := svc.Refresh(context.Background())
	require.NoError(t, err, "refresh is a no-op in static mode")
	assert.Equal(t, snapshot, rates)
}
