package repository

import (
	"context"

	"github.com/delivery-map-service/internal/domain"
)

// RouteProvider computes a route through the given waypoints in order of
// appearance. Implementations report failures through the route error
// taxonomy in pkg/errors and never retry.
type RouteProvider interface {
	ComputeRoute(ctx context.Context, waypoints []domain.LatLng) (*domain.RouteResult, error)
}
