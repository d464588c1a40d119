package planner

import (
	"github.com/delivery-map-service/internal/domain"
	"github.com/delivery-map-service/internal/pkg/utils"
)

// DistanceProvider returns travel distance in meters between two points.
type DistanceProvider interface {
	Meters(from, to domain.LatLng) float64
}

// haversineProvider approximates road distance with great-circle distance.
// Good enough without a road graph; swap in a matrix-backed provider when
// one is available.
type haversineProvider struct{}

func NewHaversineProvider() DistanceProvider {
	return haversineProvider{}
}

func (haversineProvider) Meters(from, to domain.LatLng) float64 {
	return utils.HaversineDistance(from.Lat, from.Lng, to.Lat, to.Lng) * 1000
}
