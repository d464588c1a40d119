package errors

import "net/http"

var (
	ErrInsufficientWaypoints = New(
		"INSUFFICIENT_WAYPOINTS",
		"At least 2 waypoints are required to compute a route",
		http.StatusBadRequest,
	)

	ErrRouteComputationFailed = New(
		"ROUTE_COMPUTATION_FAILED",
		"Route computation failed",
		http.StatusBadGateway,
	)

	ErrEmptyRoute = New(
		"EMPTY_ROUTE",
		"Routing service returned no coordinates for the route",
		http.StatusBadGateway,
	)

	ErrTransportError = New(
		"TRANSPORT_ERROR",
		"Could not reach the routing service",
		http.StatusBadGateway,
	)

	ErrTripNotFound = New(
		"TRIP_NOT_FOUND",
		"Trip session not found",
		http.StatusNotFound,
	)

	ErrComputationInProgress = New(
		"COMPUTATION_IN_PROGRESS",
		"A route computation is already in progress for this trip",
		http.StatusConflict,
	)

	ErrPedidoUpdateFailed = New(
		"PEDIDO_UPDATE_FAILED",
		"Could not update the pedido status",
		http.StatusBadGateway,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
