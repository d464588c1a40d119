package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrip(t *testing.T) {
	t.Run("seeded trip starts with one waypoint", func(t *testing.T) {
		seed := LatLng{Lat: -16.5, Lng: -68.15}
		trip := NewTrip("trip-1", &seed)

		require.Len(t, trip.Waypoints, 1)
		assert.Equal(t, seed, trip.Waypoints[0])
		assert.Equal(t, ModeIdle, trip.Mode.Kind)
		assert.Nil(t, trip.Route)
	})

	t.Run("unseeded trip starts empty", func(t *testing.T) {
		trip := NewTrip("trip-2", nil)

		assert.Empty(t, trip.Waypoints)
		assert.Nil(t, trip.Seed)
	})
}

func TestTrip_Click(t *testing.T) {
	seed := LatLng{Lat: -16.5, Lng: -68.15}
	point := LatLng{Lat: -16.48, Lng: -68.24}

	t.Run("idle click is a no-op", func(t *testing.T) {
		trip := NewTrip("trip-1", &seed)

		added := trip.Click(point)

		assert.False(t, added)
		assert.Len(t, trip.Waypoints, 1)
	})

	t.Run("manual mode stays on across clicks", func(t *testing.T) {
		trip := NewTrip("trip-1", &seed)
		trip.ToggleManual()

		assert.True(t, trip.Click(point))
		assert.True(t, trip.Click(LatLng{Lat: -16.49, Lng: -68.20}))

		assert.Len(t, trip.Waypoints, 3)
		assert.Equal(t, ModeManual, trip.Mode.Kind)
	})

	t.Run("scoped mode is single-shot", func(t *testing.T) {
		trip := NewTrip("trip-1", &seed)
		trip.EnterScoped(42)

		added := trip.Click(point)

		assert.True(t, added)
		assert.True(t, trip.AddressAdded[42])
		assert.Equal(t, ModeIdle, trip.Mode.Kind)

		// Second click lands in idle and changes nothing.
		assert.False(t, trip.Click(LatLng{Lat: -16.49, Lng: -68.20}))
		assert.Len(t, trip.Waypoints, 2)
	})

	t.Run("duplicate points are allowed", func(t *testing.T) {
		trip := NewTrip("trip-1", &seed)
		trip.ToggleManual()

		trip.Click(point)
		trip.Click(point)

		assert.Len(t, trip.Waypoints, 3)
		assert.Equal(t, trip.Waypoints[1], trip.Waypoints[2])
	})
}

func TestTrip_ToggleManual(t *testing.T) {
	trip := NewTrip("trip-1", nil)

	trip.ToggleManual()
	assert.Equal(t, ModeManual, trip.Mode.Kind)

	trip.ToggleManual()
	assert.Equal(t, ModeIdle, trip.Mode.Kind)

	t.Run("toggle replaces scoped mode", func(t *testing.T) {
		trip.EnterScoped(7)
		trip.ToggleManual()

		assert.Equal(t, ModeManual, trip.Mode.Kind)
		assert.Zero(t, trip.Mode.PedidoID)
	})
}

func TestTrip_Reset(t *testing.T) {
	t.Run("seeded trip keeps the seed", func(t *testing.T) {
		seed := LatLng{Lat: -16.5, Lng: -68.15}
		trip := NewTrip("trip-1", &seed)
		trip.ToggleManual()
		trip.Click(LatLng{Lat: -16.48, Lng: -68.24})
		trip.Route = &RouteResult{DistanceMeters: 3500}

		gen := trip.Generation
		trip.Reset()

		require.Len(t, trip.Waypoints, 1)
		assert.Equal(t, seed, trip.Waypoints[0])
		assert.Nil(t, trip.Route)
		assert.Equal(t, gen+1, trip.Generation)
	})

	t.Run("unseeded trip goes empty", func(t *testing.T) {
		trip := NewTrip("trip-2", nil)
		trip.ToggleManual()
		trip.Click(LatLng{Lat: -16.48, Lng: -68.24})

		trip.Reset()

		assert.Empty(t, trip.Waypoints)
	})
}

func TestTrip_Clone(t *testing.T) {
	seed := LatLng{Lat: -16.5, Lng: -68.15}
	trip := NewTrip("trip-1", &seed)
	trip.ToggleManual()
	trip.Click(LatLng{Lat: -16.48, Lng: -68.24})
	trip.AddressAdded[9] = true
	trip.Route = &RouteResult{
		Coordinates:    []LatLng{seed, {Lat: -16.48, Lng: -68.24}},
		DistanceMeters: 3500,
	}

	clone := trip.Clone()
	clone.Append(LatLng{Lat: -16.4, Lng: -68.1})
	clone.AddressAdded[10] = true
	clone.Route.Coordinates[0] = LatLng{}

	assert.Len(t, trip.Waypoints, 2)
	assert.False(t, trip.AddressAdded[10])
	assert.Equal(t, seed, trip.Route.Coordinates[0])
}

func TestRouteResult_Display(t *testing.T) {
	r := &RouteResult{DistanceMeters: 3500, PredictedTimeMin: 8.3}

	assert.Equal(t, "3.50 km", r.DistanceDisplay())
	assert.Equal(t, "8 min", r.TimeDisplay())
}

func TestFilterPending(t *testing.T) {
	pedidos := []Pedido{
		{ID: 1, Estado: EstadoPendiente},
		{ID: 2, Estado: EstadoCompletado},
		{ID: 3, Estado: EstadoPendiente},
	}

	pending := FilterPending(pedidos)

	require.Len(t, pending, 2)
	assert.Equal(t, int64(1), pending[0].ID)
	assert.Equal(t, int64(3), pending[1].ID)
}

func TestBoundsOf(t *testing.T) {
	points := []LatLng{
		{Lat: -16.5, Lng: -68.15},
		{Lat: -16.48, Lng: -68.24},
		{Lat: -16.52, Lng: -68.10},
	}

	box := BoundsOf(points)

	assert.Equal(t, -16.52, box.MinLat)
	assert.Equal(t, -16.48, box.MaxLat)
	assert.Equal(t, -68.24, box.MinLng)
	assert.Equal(t, -68.10, box.MaxLng)
}
