package repository

import "github.com/delivery-map-service/internal/domain"

// TripRepository holds live trip sessions. Implementations must hand out
// snapshots: callers mutate trips only through Update.
type TripRepository interface {
	// Create stores a new trip.
	Create(trip *domain.Trip) error

	// Get returns a snapshot of the trip.
	Get(id string) (*domain.Trip, error)

	// Update applies fn to the trip under the store's lock and returns a
	// snapshot of the result. An error from fn aborts the update.
	Update(id string, fn func(*domain.Trip) error) (*domain.Trip, error)

	// Delete removes the trip.
	Delete(id string) error
}
