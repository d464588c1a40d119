package postgres

import (
	"context"
	"fmt"

	"github.com/delivery-map-service/internal/domain"
	"github.com/delivery-map-service/internal/domain/repository"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// pedidoRepository serves pedidos from the dashboard database directly.
// It is the single-binary alternative to the HTTP collaborator adapter,
// matching the original deployment where the backend owned the pedidos
// table. Columns are the original's; nothing is added.
type pedidoRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewPedidoRepository(db *DB) repository.PedidoProvider {
	return &pedidoRepository{
		db:     db,
		logger: db.logger,
	}
}

const listPedidosQuery = `
	SELECT
		p.id,
		p.cliente_id,
		COALESCE(p.estado, '') AS estado,
		COALESCE(p.prioridad, '') AS prioridad,
		COALESCE(p.total, 0) AS total,
		COALESCE(
			array_agg(d.producto_id ORDER BY d.producto_id)
				FILTER (WHERE d.producto_id IS NOT NULL),
			'{}'
		) AS producto_ids
	FROM pedidos p
	LEFT JOIN pedido_detalles d ON d.pedido_id = p.id
	GROUP BY p.id
	ORDER BY p.id`

func (r *pedidoRepository) List(ctx context.Context) ([]domain.Pedido, error) {
	rows, err := r.db.QueryxContext(ctx, listPedidosQuery)
	if err != nil {
		r.logger.Error("Failed to query pedidos", zap.Error(err))
		return nil, fmt.Errorf("query pedidos: %w", err)
	}
	defer rows.Close()

	var pedidos []domain.Pedido
	for rows.Next() {
		var p domain.Pedido
		var productoIDs []int64
		if err := rows.Scan(
			&p.ID,
			&p.ClienteID,
			&p.Estado,
			&p.Prioridad,
			&p.Total,
			pq.Array(&productoIDs),
		); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		p.ProductoIDs = productoIDs
		pedidos = append(pedidos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pedidos: %w", err)
	}

	return pedidos, nil
}

func (r *pedidoRepository) UpdateEstado(ctx context.Context, id int64, estado string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pedidos SET estado = $1 WHERE id = $2`, estado, id)
	if err != nil {
		r.logger.Error("Failed to update pedido estado",
			zap.Int64("pedido_id", id), zap.Error(err))
		return fmt.Errorf("update pedido %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update pedido %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("pedido %d not found", id)
	}

	return nil
}
