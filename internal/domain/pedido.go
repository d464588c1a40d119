package domain

// Pedido estado values on the wire. Kept in the dashboard's vocabulary.
const (
	EstadoPendiente  = "pendiente"
	EstadoCompletado = "completado"
)

// Pedido is an order as reported by the dashboard backend. The map session
// does not own it; it only cross-references pending pedidos with the
// address-entry workflow.
type Pedido struct {
	ID          int64   `json:"id"`
	ClienteID   int64   `json:"cliente_id"`
	Estado      string  `json:"estado"`
	Prioridad   string  `json:"prioridad"`
	Total       float64 `json:"total"`
	ProductoIDs []int64 `json:"producto_ids,omitempty"`
}

// Pending reports whether the pedido is still awaiting delivery.
func (p Pedido) Pending() bool {
	return p.Estado == EstadoPendiente
}

// FilterPending keeps only pedidos in estado "pendiente".
func FilterPending(pedidos []Pedido) []Pedido {
	out := make([]Pedido, 0, len(pedidos))
	for _, p := range pedidos {
		if p.Pending() {
			out = append(out, p)
		}
	}
	return out
}
