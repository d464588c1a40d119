package planner

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/delivery-map-service/internal/config"
	"github.com/delivery-map-service/internal/domain"
)

// gridDistances makes tour order easy to reason about in tests:
// distance is the euclidean degree distance scaled to meters.
type gridDistances struct{}

func (gridDistances) Meters(from, to domain.LatLng) float64 {
	dLat := to.Lat - from.Lat
	dLng := to.Lng - from.Lng
	return math.Sqrt(dLat*dLat+dLng*dLng) * 1000
}

func testConfig() *config.PlannerConfig {
	return &config.PlannerConfig{
		Enabled:        true,
		SpeedKmh:       30,
		StepMeters:     1e9, // every leg collapses to its endpoints
		DistCoefPerKm:  0.25,
		BaseTimeCoef:   1.1,
		ThursdayUplift: 4,
	}
}

func TestPlanner_Plan(t *testing.T) {
	logger := zap.NewNop()

	t.Run("fewer than 2 waypoints", func(t *testing.T) {
		p := New(testConfig(), gridDistances{}, logger)

		_, err := p.Plan([]domain.LatLng{{Lat: 1, Lng: 1}})
		assert.ErrorIs(t, err, ErrInsufficientWaypoints)
	})

	t.Run("two waypoints make an out-and-back", func(t *testing.T) {
		p := New(testConfig(), gridDistances{}, logger)

		depot := domain.LatLng{Lat: 0, Lng: 0}
		stop := domain.LatLng{Lat: 3, Lng: 4}

		plan, err := p.Plan([]domain.LatLng{depot, stop})
		require.NoError(t, err)

		require.Len(t, plan.Coordinates, 3)
		assert.Equal(t, depot, plan.Coordinates[0])
		assert.Equal(t, stop, plan.Coordinates[1])
		assert.Equal(t, depot, plan.Coordinates[2])
		assert.InDelta(t, 10000, plan.DistanceMeters, 1e-9)
	})

	t.Run("greedy nearest neighbor from the depot", func(t *testing.T) {
		p := New(testConfig(), gridDistances{}, logger)

		depot := domain.LatLng{Lat: 0, Lng: 0}
		far := domain.LatLng{Lat: 10, Lng: 0}
		near := domain.LatLng{Lat: 1, Lng: 0}
		mid := domain.LatLng{Lat: 5, Lng: 0}

		plan, err := p.Plan([]domain.LatLng{depot, far, near, mid})
		require.NoError(t, err)

		// Visit order: depot, near, mid, far, depot.
		require.Len(t, plan.Coordinates, 5)
		assert.Equal(t, depot, plan.Coordinates[0])
		assert.Equal(t, near, plan.Coordinates[1])
		assert.Equal(t, mid, plan.Coordinates[2])
		assert.Equal(t, far, plan.Coordinates[3])
		assert.Equal(t, depot, plan.Coordinates[4])
	})

	t.Run("equidistant stops break ties on lower index", func(t *testing.T) {
		p := New(testConfig(), gridDistances{}, logger)

		depot := domain.LatLng{Lat: 0, Lng: 0}
		east := domain.LatLng{Lat: 0, Lng: 1}
		west := domain.LatLng{Lat: 0, Lng: -1}

		plan, err := p.Plan([]domain.LatLng{depot, east, west})
		require.NoError(t, err)

		assert.Equal(t, east, plan.Coordinates[1])

		// Same input, same tour, every time.
		for i := 0; i < 5; i++ {
			again, err := p.Plan([]domain.LatLng{depot, east, west})
			require.NoError(t, err)
			assert.Equal(t, plan.Coordinates, again.Coordinates)
		}
	})

	t.Run("leg geometry interpolates intermediate points", func(t *testing.T) {
		cfg := testConfig()
		cfg.StepMeters = 250
		p := New(cfg, gridDistances{}, logger)

		depot := domain.LatLng{Lat: 0, Lng: 0}
		stop := domain.LatLng{Lat: 1, Lng: 0} // 1000m per leg, 4 steps

		plan, err := p.Plan([]domain.LatLng{depot, stop})
		require.NoError(t, err)

		// 4 steps out plus 4 back, shared endpoints kept once.
		require.Len(t, plan.Coordinates, 9)
		assert.Equal(t, depot, plan.Coordinates[0])
		assert.InDelta(t, 0.25, plan.Coordinates[1].Lat, 1e-9)
		assert.Equal(t, stop, plan.Coordinates[4])
		assert.Equal(t, depot, plan.Coordinates[8])
	})

	t.Run("base time follows the configured speed", func(t *testing.T) {
		p := New(testConfig(), gridDistances{}, logger)

		plan, err := p.Plan([]domain.LatLng{{Lat: 0, Lng: 0}, {Lat: 3, Lng: 4}})
		require.NoError(t, err)

		// 10 km at 30 km/h is 1200 seconds.
		assert.InDelta(t, 1200, plan.BaseTimeSec, 1e-6)
	})
}

func TestPlanner_ThursdayUplift(t *testing.T) {
	logger := zap.NewNop()
	waypoints := []domain.LatLng{{Lat: 0, Lng: 0}, {Lat: 3, Lng: 4}}

	wednesday := time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC)
	thursday := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, time.Wednesday, wednesday.Weekday())
	require.Equal(t, time.Thursday, thursday.Weekday())

	base := New(testConfig(), gridDistances{}, logger).
		WithClock(func() time.Time { return wednesday })
	uplifted := New(testConfig(), gridDistances{}, logger).
		WithClock(func() time.Time { return thursday })

	basePlan, err := base.Plan(waypoints)
	require.NoError(t, err)
	upliftedPlan, err := uplifted.Plan(waypoints)
	require.NoError(t, err)

	assert.InDelta(t, 4, upliftedPlan.PredictedTimeMin-basePlan.PredictedTimeMin, 1e-9)
}

func TestTimePredictor_PredictMinutes(t *testing.T) {
	predictor := TimePredictor{
		DistCoefPerKm:  0.25,
		BaseTimeCoef:   1.1,
		ThursdayUplift: 4,
	}
	monday := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())

	// 10 km and 1200 s: 0.25*10 + 1.1*20 = 24.5 minutes.
	minutes := predictor.PredictMinutes(10000, 1200, monday)
	assert.InDelta(t, 24.5, minutes, 1e-9)
}

func TestHaversineProvider(t *testing.T) {
	p := NewHaversineProvider()

	// One degree of longitude at the equator is roughly 111.19 km.
	meters := p.Meters(domain.LatLng{Lat: 0, Lng: 0}, domain.LatLng{Lat: 0, Lng: 1})
	assert.InDelta(t, 111190, meters, 100)

	assert.Zero(t, p.Meters(domain.LatLng{Lat: -16.5, Lng: -68.15}, domain.LatLng{Lat: -16.5, Lng: -68.15}))
}
