package dto

import (
	"github.com/delivery-map-service/internal/domain"
	"github.com/delivery-map-service/internal/render"
)

// TripState is the full session snapshot the browser adapter renders from.
type TripState struct {
	ID             string          `json:"id"`
	Waypoints      []domain.LatLng `json:"waypoints"`
	Mode           domain.AddMode  `json:"mode"`
	Route          *RouteInfo      `json:"route,omitempty"`
	Scene          *render.Scene   `json:"scene"`
	PendingHandoff *int64          `json:"pending_handoff,omitempty"`
}

// RouteInfo is the trip panel payload: raw metrics plus the formatted
// values the panel displays.
type RouteInfo struct {
	DistanceMeters   float64 `json:"distance_meters"`
	PredictedTimeMin float64 `json:"predicted_time_min"`
	LatencyMs        int64   `json:"latency_ms"`
	Stops            int     `json:"stops"`
	Distance         string  `json:"distance"`
	Time             string  `json:"time"`
}

// PendingPedido is a pending order cross-referenced with the session's
// address flag.
type PendingPedido struct {
	ID           int64   `json:"id"`
	ClienteID    int64   `json:"cliente_id"`
	Estado       string  `json:"estado"`
	Prioridad    string  `json:"prioridad"`
	Total        float64 `json:"total"`
	AddressAdded bool    `json:"address_added"`
}

// PendingPedidosResponse lists the pedidos awaiting delivery.
type PendingPedidosResponse struct {
	Pedidos []PendingPedido `json:"pedidos"`
}

// StartAddAddressResponse confirms scoped add-mode was entered.
type StartAddAddressResponse struct {
	Trip   *TripState `json:"trip"`
	Notice string     `json:"notice"`
}

// MarkDeliveredResponse reports whether the estado update was performed.
// Delivered is false when the pedido had no address added this session
// (the request is a no-op then, no collaborator call is made).
type MarkDeliveredResponse struct {
	Delivered bool       `json:"delivered"`
	Trip      *TripState `json:"trip"`
}

// NewTripState converts a trip snapshot, composing the declarative scene.
func NewTripState(trip *domain.Trip) *TripState {
	state := &TripState{
		ID:        trip.ID,
		Waypoints: trip.Waypoints,
		Mode:      trip.Mode,
	}

	if trip.Route != nil {
		state.Route = NewRouteInfo(trip.Route)
		if scene, err := render.BuildScene(trip.Waypoints, trip.Route.Coordinates); err == nil {
			state.Scene = scene
		}
	}
	if state.Scene == nil {
		state.Scene = render.MarkerScene(trip.Waypoints)
	}

	return state
}

func NewRouteInfo(r *domain.RouteResult) *RouteInfo {
	return &RouteInfo{
		DistanceMeters:   r.DistanceMeters,
		PredictedTimeMin: r.PredictedTimeMin,
		LatencyMs:        r.LatencyMs,
		Stops:            r.Stops,
		Distance:         r.DistanceDisplay(),
		Time:             r.TimeDisplay(),
	}
}

// NewPendingPedidos cross-references pending pedidos with the trip flags.
func NewPendingPedidos(pedidos []domain.Pedido, flags map[int64]bool) *PendingPedidosResponse {
	out := make([]PendingPedido, 0, len(pedidos))
	for _, p := range pedidos {
		out = append(out, PendingPedido{
			ID:           p.ID,
			ClienteID:    p.ClienteID,
			Estado:       p.Estado,
			Prioridad:    p.Prioridad,
			Total:        p.Total,
			AddressAdded: flags[p.ID],
		})
	}
	return &PendingPedidosResponse{Pedidos: out}
}
