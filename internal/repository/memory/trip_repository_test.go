package memory

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delivery-map-service/internal/domain"
	"github.com/delivery-map-service/internal/pkg/errors"
)

func TestTripRepository_CreateGet(t *testing.T) {
	repo := NewTripRepository()
	seed := domain.LatLng{Lat: -16.5, Lng: -68.15}

	trip := domain.NewTrip("trip-1", &seed)
	require.NoError(t, repo.Create(trip))

	got, err := repo.Get("trip-1")
	require.NoError(t, err)
	assert.Equal(t, "trip-1", got.ID)
	assert.Equal(t, seed, got.Waypoints[0])

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.Get("missing")
		assert.ErrorIs(t, err, errors.ErrTripNotFound)
	})

	t.Run("get returns a snapshot", func(t *testing.T) {
		got, err := repo.Get("trip-1")
		require.NoError(t, err)
		got.Append(domain.LatLng{Lat: 1, Lng: 1})

		again, err := repo.Get("trip-1")
		require.NoError(t, err)
		assert.Len(t, again.Waypoints, 1)
	})
}

func TestTripRepository_Update(t *testing.T) {
	repo := NewTripRepository()
	require.NoError(t, repo.Create(domain.NewTrip("trip-1", nil)))

	t.Run("applies the mutation", func(t *testing.T) {
		updated, err := repo.Update("trip-1", func(trip *domain.Trip) error {
			trip.Append(domain.LatLng{Lat: -16.48, Lng: -68.24})
			return nil
		})
		require.NoError(t, err)
		assert.Len(t, updated.Waypoints, 1)

		got, err := repo.Get("trip-1")
		require.NoError(t, err)
		assert.Len(t, got.Waypoints, 1)
	})

	t.Run("a failed mutation leaves the trip untouched", func(t *testing.T) {
		boom := stderrors.New("boom")
		_, err := repo.Update("trip-1", func(trip *domain.Trip) error {
			trip.Append(domain.LatLng{Lat: 0, Lng: 0})
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := repo.Get("trip-1")
		require.NoError(t, err)
		assert.Len(t, got.Waypoints, 1)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.Update("missing", func(trip *domain.Trip) error { return nil })
		assert.ErrorIs(t, err, errors.ErrTripNotFound)
	})
}

func TestTripRepository_Delete(t *testing.T) {
	repo := NewTripRepository()
	require.NoError(t, repo.Create(domain.NewTrip("trip-1", nil)))

	require.NoError(t, repo.Delete("trip-1"))

	_, err := repo.Get("trip-1")
	assert.ErrorIs(t, err, errors.ErrTripNotFound)
}
