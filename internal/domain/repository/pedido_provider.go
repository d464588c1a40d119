package repository

import (
	"context"

	"github.com/delivery-map-service/internal/domain"
)

// PedidoProvider is the order collaborator contract. The map session only
// lists pedidos and flips their estado; everything else about orders lives
// outside this service.
type PedidoProvider interface {
	// List returns all pedidos known to the collaborator. Filtering to
	// pending happens on the caller side.
	List(ctx context.Context) ([]domain.Pedido, error)

	// UpdateEstado sets the estado of one pedido.
	UpdateEstado(ctx context.Context, id int64, estado string) error
}
