package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/delivery-map-service/internal/domain"
	"github.com/delivery-map-service/internal/domain/repository"
	"github.com/delivery-map-service/internal/pkg/errors"
	"github.com/delivery-map-service/internal/usecase/dto"
)

// TripUseCase - waypoint store and map interaction for route sessions
type TripUseCase struct {
	trips  repository.TripRepository
	routes repository.RouteProvider
	logger *zap.Logger
}

func NewTripUseCase(
	trips repository.TripRepository,
	routes repository.RouteProvider,
	logger *zap.Logger,
) *TripUseCase {
	return &TripUseCase{
		trips:  trips,
		routes: routes,
		logger: logger,
	}
}

// Create starts a new trip session, seeded with the optional start point.
func (uc *TripUseCase) Create(seed *domain.LatLng) (*dto.TripState, error) {
	trip := domain.NewTrip(uuid.NewString(), seed)
	if err := uc.trips.Create(trip); err != nil {
		return nil, err
	}

	uc.logger.Info("Trip session created",
		zap.String("trip_id", trip.ID),
		zap.Bool("seeded", seed != nil))

	return dto.NewTripState(trip), nil
}

func (uc *TripUseCase) Get(id string) (*dto.TripState, error) {
	trip, err := uc.trips.Get(id)
	if err != nil {
		return nil, err
	}
	return dto.NewTripState(trip), nil
}

// Click applies one map click. The trip's mode decides whether the point
// becomes a waypoint; clicks while idle change nothing.
func (uc *TripUseCase) Click(id string, point domain.LatLng) (*dto.TripState, error) {
	trip, err := uc.trips.Update(id, func(t *domain.Trip) error {
		t.Click(point)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.NewTripState(trip), nil
}

// ToggleMode flips manual add-mode on or off.
func (uc *TripUseCase) ToggleMode(id string) (*dto.TripState, error) {
	trip, err := uc.trips.Update(id, func(t *domain.Trip) error {
		t.ToggleManual()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.NewTripState(trip), nil
}

// Clear resets the trip to its seed and drops the computed route.
func (uc *TripUseCase) Clear(id string) (*dto.TripState, error) {
	trip, err := uc.trips.Update(id, func(t *domain.Trip) error {
		t.Reset()
		t.Mode = domain.Idle()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.NewTripState(trip), nil
}

// ComputeRoute sends the trip's waypoints to the routing backend and stores
// the result. At most one computation runs per trip; a result that lands
// after a clear is discarded by the generation check. A failed computation
// leaves the waypoints intact so the operator can retry.
func (uc *TripUseCase) ComputeRoute(ctx context.Context, id string) (*dto.TripState, error) {
	snapshot, err := uc.trips.Update(id, func(t *domain.Trip) error {
		if len(t.Waypoints) < 2 {
			return errors.ErrInsufficientWaypoints
		}
		if t.Computing {
			return errors.ErrComputationInProgress
		}
		t.Computing = true
		t.Route = nil
		t.Mode = domain.Idle()
		return nil
	})
	if err != nil {
		return nil, err
	}

	waypoints := snapshot.Waypoints
	generation := snapshot.Generation

	result, routeErr := uc.routes.ComputeRoute(ctx, waypoints)

	stale := false
	trip, err := uc.trips.Update(id, func(t *domain.Trip) error {
		t.Computing = false
		if routeErr != nil {
			return nil
		}
		if t.Generation != generation {
			stale = true
			return nil
		}
		t.Route = result
		return nil
	})
	if routeErr != nil {
		uc.logger.Warn("Route computation failed",
			zap.String("trip_id", id),
			zap.Error(routeErr))
		return nil, routeErr
	}
	if err != nil {
		return nil, err
	}
	if stale {
		uc.logger.Debug("Discarding stale route result",
			zap.String("trip_id", id),
			zap.Uint64("generation", generation))
		return dto.NewTripState(trip), nil
	}

	uc.logger.Info("Route computed",
		zap.String("trip_id", id),
		zap.Int("stops", result.Stops),
		zap.Float64("distance_meters", result.DistanceMeters),
		zap.Int64("latency_ms", result.LatencyMs))

	return dto.NewTripState(trip), nil
}
