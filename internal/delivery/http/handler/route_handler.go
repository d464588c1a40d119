package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/delivery-map-service/internal/domain"
	"github.com/delivery-map-service/internal/pkg/utils"
	"github.com/delivery-map-service/internal/usecase/planner"
)

// RouteHandler serves /api/find-route with the embedded planner. The
// endpoint keeps the routing backend's own envelope (success/message/route)
// so route clients can point at this service or a remote backend
// interchangeably.
type RouteHandler struct {
	planner *planner.Planner
	logger  *zap.Logger
}

func NewRouteHandler(p *planner.Planner, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		planner: p,
		logger:  logger,
	}
}

type findRouteRequest struct {
	Waypoints [][]float64 `json:"waypoints"`
}

type findRouteResponse struct {
	Success        bool          `json:"success"`
	Route          *routePayload `json:"route,omitempty"`
	ProcessingTime float64       `json:"processing_time_ms,omitempty"`
	Message        string        `json:"message,omitempty"`
}

type routePayload struct {
	Coordinates      [][]float64 `json:"coordinates"`
	DistanceMeters   float64     `json:"distance_meters"`
	BaseTimeSec      float64     `json:"base_time_sec"`
	PredictedTimeMin float64     `json:"predicted_time_min"`
}

// FindRoute - compute the best route through the submitted waypoints
func (h *RouteHandler) FindRoute(c *fiber.Ctx) error {
	start := time.Now()

	var req findRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(findRouteResponse{
			Success: false,
			Message: "Cuerpo de la petición inválido",
		})
	}

	if len(req.Waypoints) < 2 {
		return c.Status(fiber.StatusBadRequest).JSON(findRouteResponse{
			Success: false,
			Message: "Se requieren al menos 2 puntos de ruta",
		})
	}

	waypoints := make([]domain.LatLng, 0, len(req.Waypoints))
	for _, pair := range req.Waypoints {
		if len(pair) != 2 || !utils.ValidateCoordinates(pair[0], pair[1]) {
			return c.Status(fiber.StatusBadRequest).JSON(findRouteResponse{
				Success: false,
				Message: "Coordenadas inválidas",
			})
		}
		waypoints = append(waypoints, domain.LatLng{Lat: pair[0], Lng: pair[1]})
	}

	plan, err := h.planner.Plan(waypoints)
	if err != nil {
		h.logger.Error("Route planning failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(findRouteResponse{
			Success: false,
			Message: "Error al calcular ruta: " + err.Error(),
		})
	}

	coords := make([][]float64, 0, len(plan.Coordinates))
	for _, p := range plan.Coordinates {
		coords = append(coords, p.Pair())
	}

	return c.JSON(findRouteResponse{
		Success: true,
		Route: &routePayload{
			Coordinates:      coords,
			DistanceMeters:   round2(plan.DistanceMeters),
			BaseTimeSec:      round2(plan.BaseTimeSec),
			PredictedTimeMin: round2(plan.PredictedTimeMin),
		},
		ProcessingTime: round2(float64(time.Since(start).Microseconds()) / 1000),
	})
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
