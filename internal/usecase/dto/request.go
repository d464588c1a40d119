package dto

// Point - coordinate payload shared by requests
type Point struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// CreateTripRequest - start a new waypoint route session, optionally seeded
// with a starting coordinate (the depot)
type CreateTripRequest struct {
	InitialCoord *Point `json:"initial_coord,omitempty" validate:"omitempty"`
}

// ClickRequest - one map click forwarded by the browser adapter
type ClickRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// ModeRequest - manual add-mode control
type ModeRequest struct {
	Action string `json:"action" validate:"required,oneof=toggle"`
}

// HandoffRequest - written by the order-creation flow when a new pedido
// needs an address
type HandoffRequest struct {
	PedidoID int64 `json:"pedido_id" validate:"required,min=1"`
}
