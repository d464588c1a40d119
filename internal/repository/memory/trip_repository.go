package memory

import (
	"sync"

	"github.com/delivery-map-service/internal/domain"
	"github.com/delivery-map-service/internal/domain/repository"
	"github.com/delivery-map-service/internal/pkg/errors"
)

// tripRepository keeps live trips in process memory. Trips are UI-session
// state: they are never persisted and die with the service.
type tripRepository struct {
	mu    sync.RWMutex
	trips map[string]*domain.Trip
}

func NewTripRepository() repository.TripRepository {
	return &tripRepository{
		trips: make(map[string]*domain.Trip),
	}
}

func (r *tripRepository) Create(trip *domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trips[trip.ID] = trip.Clone()
	return nil
}

func (r *tripRepository) Get(id string) (*domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	trip, ok := r.trips[id]
	if !ok {
		return nil, errors.ErrTripNotFound
	}
	return trip.Clone(), nil
}

func (r *tripRepository) Update(id string, fn func(*domain.Trip) error) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	trip, ok := r.trips[id]
	if !ok {
		return nil, errors.ErrTripNotFound
	}
	// Mutate a clone so a failed update leaves the trip untouched.
	next := trip.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	r.trips[id] = next
	return next.Clone(), nil
}

func (r *tripRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.trips, id)
	return nil
}
