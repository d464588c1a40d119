package domain

// HandoffIntent is the one-shot signal written by the order-creation flow:
// "after the next map session starts, enter address-entry mode for this
// pedido". Consumed exactly once.
type HandoffIntent struct {
	PedidoID int64 `json:"pedido_id"`
}
