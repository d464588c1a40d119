package repository

import (
	"context"

	"github.com/delivery-map-service/internal/domain"
)

// HandoffRepository stores the cross-session handoff intent.
type HandoffRepository interface {
	// Publish records the intent, replacing any previous one.
	Publish(ctx context.Context, intent domain.HandoffIntent) error

	// Consume atomically reads and deletes the intent. Returns (nil, nil)
	// when no intent is stored; two concurrent consumers can never both
	// observe the same intent.
	Consume(ctx context.Context) (*domain.HandoffIntent, error)
}
