package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/delivery-map-service/internal/config"
	"github.com/delivery-map-service/internal/domain"
	"github.com/delivery-map-service/internal/domain/repository"
	"github.com/delivery-map-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates the route client for the configured routing backend.
func NewClient(cfg *config.RoutingConfig, logger *zap.Logger) repository.RouteProvider {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// findRouteRequest is the body of POST /api/find-route.
type findRouteRequest struct {
	Waypoints [][]float64 `json:"waypoints"`
}

// findRouteResponse is the routing backend envelope.
type findRouteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Route   struct {
		Coordinates      [][]float64 `json:"coordinates"`
		DistanceMeters   float64     `json:"distance_meters"`
		PredictedTimeMin float64     `json:"predicted_time_min"`
	} `json:"route"`
}

// ComputeRoute serializes the waypoints as [lat, lng] pairs, issues one
// request to the routing backend and measures the round trip. Fewer than 2
// waypoints fail fast without touching the network. No failure is retried.
func (c *client) ComputeRoute(ctx context.Context, waypoints []domain.LatLng) (*domain.RouteResult, error) {
	if len(waypoints) < 2 {
		return nil, errors.ErrInsufficientWaypoints
	}

	payload := findRouteRequest{Waypoints: make([][]float64, 0, len(waypoints))}
	for _, wp := range waypoints {
		payload.Waypoints = append(payload.Waypoints, wp.Pair())
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.ErrTransportError.WithMessage(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/find-route", bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create find-route request", zap.Error(err))
		return nil, errors.ErrTransportError.WithMessage(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Calling routing backend",
		zap.String("url", c.baseURL+"/api/find-route"),
		zap.Int("waypoints", len(waypoints)))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Routing backend unreachable", zap.Error(err))
		return nil, errors.ErrTransportError
	}
	defer resp.Body.Close()

	latency := time.Since(start).Milliseconds()

	var decoded findRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.logger.Error("Failed to decode find-route response", zap.Error(err))
		return nil, errors.ErrTransportError
	}

	// The server reports its own failures through the envelope; the message
	// is passed through verbatim for display.
	if !decoded.Success {
		if decoded.Message != "" {
			return nil, errors.ErrRouteComputationFailed.WithMessage(decoded.Message)
		}
		return nil, errors.ErrRouteComputationFailed
	}

	if len(decoded.Route.Coordinates) == 0 {
		return nil, errors.ErrEmptyRoute
	}

	coords := make([]domain.LatLng, 0, len(decoded.Route.Coordinates))
	for _, pair := range decoded.Route.Coordinates {
		if len(pair) != 2 {
			return nil, errors.ErrEmptyRoute
		}
		coords = append(coords, domain.LatLng{Lat: pair[0], Lng: pair[1]})
	}

	c.logger.Debug("Route computed",
		zap.Int("coordinates", len(coords)),
		zap.Float64("distance_meters", decoded.Route.DistanceMeters),
		zap.Int64("latency_ms", latency))

	return &domain.RouteResult{
		Coordinates:      coords,
		DistanceMeters:   decoded.Route.DistanceMeters,
		PredictedTimeMin: decoded.Route.PredictedTimeMin,
		LatencyMs:        latency,
		Stops:            len(waypoints),
	}, nil
}
