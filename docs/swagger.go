// Package docs Delivery Map Service API.
//
// Servicio de sesiones de ruta para el panel de despachos. Gestiona waypoints
// de viaje, el modo de agregado de direcciones, el cálculo de rutas y la
// vinculación con pedidos pendientes.
//
// Capacidades principales:
// - Sesiones de viaje con waypoints y semilla inicial
// - Modo manual y modo dirigido de agregado de puntos
// - Cálculo de rutas con distancia y tiempo estimado
// - Listado de pedidos pendientes y marcado de entregas
// - Intento de traspaso entre la creación de pedidos y el mapa
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
