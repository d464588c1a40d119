// Package planner is the embedded routing engine behind /api/find-route.
// It orders the stops with a greedy nearest-neighbor tour from the depot
// (waypoint 0), stitches per-leg geometry, and predicts delivery time.
// The design prioritizes determinism and simplicity over optimality.
package planner

import (
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/delivery-map-service/internal/config"
	"github.com/delivery-map-service/internal/domain"
)

var ErrInsufficientWaypoints = errors.New("at least 2 waypoints are required")

// Plan is the computed tour: stitched path geometry plus totals.
type Plan struct {
	Coordinates      []domain.LatLng
	DistanceMeters   float64
	BaseTimeSec      float64
	PredictedTimeMin float64
}

type Planner struct {
	distances  DistanceProvider
	predictor  TimePredictor
	speedKmh   float64
	stepMeters float64
	logger     *zap.Logger
	now        func() time.Time
}

func New(cfg *config.PlannerConfig, distances DistanceProvider, logger *zap.Logger) *Planner {
	return &Planner{
		distances: distances,
		predictor: TimePredictor{
			DistCoefPerKm:  cfg.DistCoefPerKm,
			BaseTimeCoef:   cfg.BaseTimeCoef,
			ThursdayUplift: cfg.ThursdayUplift,
		},
		speedKmh:   cfg.SpeedKmh,
		stepMeters: cfg.StepMeters,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock overrides the planner's clock. Test hook for the day-of-week
// dependent predictor.
func (p *Planner) WithClock(now func() time.Time) *Planner {
	p.now = now
	return p
}

// Plan computes the round trip through all waypoints, starting and ending
// at the depot (waypoint 0).
func (p *Planner) Plan(waypoints []domain.LatLng) (*Plan, error) {
	if len(waypoints) < 2 {
		return nil, ErrInsufficientWaypoints
	}

	tour := p.tour(waypoints)

	var path []domain.LatLng
	var totalMeters float64
	for i := 0; i < len(tour)-1; i++ {
		from := waypoints[tour[i]]
		to := waypoints[tour[i+1]]
		totalMeters += p.distances.Meters(from, to)

		leg := p.legGeometry(from, to)
		if len(path) > 0 {
			// Consecutive legs share an endpoint; keep it once.
			leg = leg[1:]
		}
		path = append(path, leg...)
	}

	baseTimeSec := totalMeters / (p.speedKmh / 3.6)
	predicted := p.predictor.PredictMinutes(totalMeters, baseTimeSec, p.now())

	p.logger.Debug("Route planned",
		zap.Int("waypoints", len(waypoints)),
		zap.Int("path_points", len(path)),
		zap.Float64("distance_meters", totalMeters))

	return &Plan{
		Coordinates:      path,
		DistanceMeters:   totalMeters,
		BaseTimeSec:      baseTimeSec,
		PredictedTimeMin: predicted,
	}, nil
}

// tour returns the visit order as waypoint indexes, depot first and last.
// Two waypoints make a plain out-and-back; three or more use the greedy
// nearest-neighbor heuristic with a deterministic tie-break on index.
func (p *Planner) tour(waypoints []domain.LatLng) []int {
	n := len(waypoints)
	if n == 2 {
		return []int{0, 1, 0}
	}

	unvisited := make(map[int]bool, n-1)
	for i := 1; i < n; i++ {
		unvisited[i] = true
	}

	order := make([]int, 0, n+1)
	order = append(order, 0)
	current := 0

	for len(unvisited) > 0 {
		next := -1
		best := math.MaxFloat64
		for i := 1; i < n; i++ {
			if !unvisited[i] {
				continue
			}
			d := p.distances.Meters(waypoints[current], waypoints[i])
			if d < best || (d == best && (next == -1 || i < next)) {
				best = d
				next = i
			}
		}
		order = append(order, next)
		delete(unvisited, next)
		current = next
	}

	return append(order, 0)
}

// legGeometry interpolates intermediate points along a leg so the rendered
// polyline follows the path instead of jumping stop to stop. Step length is
// approximate; every leg has at least its two endpoints.
func (p *Planner) legGeometry(from, to domain.LatLng) []domain.LatLng {
	meters := p.distances.Meters(from, to)
	steps := int(math.Round(meters / p.stepMeters))
	if steps < 1 {
		steps = 1
	}

	points := make([]domain.LatLng, 0, steps+1)
	for s := 0; s <= steps; s++ {
		f := float64(s) / float64(steps)
		points = append(points, domain.LatLng{
			Lat: from.Lat + (to.Lat-from.Lat)*f,
			Lng: from.Lng + (to.Lng-from.Lng)*f,
		})
	}
	return points
}
