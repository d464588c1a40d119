package pedidos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/delivery-map-service/internal/config"
	"github.com/delivery-map-service/internal/domain"
	"github.com/delivery-map-service/internal/domain/repository"
	"go.uber.org/zap"
)

// Client talks to the dashboard backend's pedido API. This is the primary
// adapter: the map session treats orders as an external collaborator.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func NewClient(cfg *config.PedidosConfig, logger *zap.Logger) repository.PedidoProvider {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// listResponse is the GET /api/pedidos wire shape.
type listResponse struct {
	Pedidos []pedidoWire `json:"pedidos"`
}

type pedidoWire struct {
	ID        int64   `json:"id"`
	ClienteID int64   `json:"cliente_id"`
	Estado    string  `json:"estado"`
	Prioridad string  `json:"prioridad"`
	Total     float64 `json:"total"`
}

// updateResponse is the PUT /api/pedidos/{id} acknowledgement. Only the
// success flag is contractually enforced.
type updateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (c *Client) List(ctx context.Context) ([]domain.Pedido, error) {
	url := fmt.Sprintf("%s/api/pedidos", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create pedidos request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch pedidos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pedidos API returned status %d", resp.StatusCode)
	}

	var decoded listResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode pedidos response: %w", err)
	}

	out := make([]domain.Pedido, 0, len(decoded.Pedidos))
	for _, p := range decoded.Pedidos {
		out = append(out, domain.Pedido{
			ID:        p.ID,
			ClienteID: p.ClienteID,
			Estado:    p.Estado,
			Prioridad: p.Prioridad,
			Total:     p.Total,
		})
	}

	c.logger.Debug("Pedidos fetched", zap.Int("count", len(out)))
	return out, nil
}

func (c *Client) UpdateEstado(ctx context.Context, id int64, estado string) error {
	url := fmt.Sprintf("%s/api/pedidos/%d", c.baseURL, id)

	body, err := json.Marshal(map[string]string{"estado": estado})
	if err != nil {
		return fmt.Errorf("marshal estado update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create estado update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("update pedido %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pedidos API returned status %d", resp.StatusCode)
	}

	var decoded updateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("decode estado update response: %w", err)
	}
	if !decoded.Success {
		if decoded.Message != "" {
			return fmt.Errorf("pedidos API rejected update: %s", decoded.Message)
		}
		return fmt.Errorf("pedidos API rejected update for pedido %d", id)
	}

	c.logger.Debug("Pedido estado updated",
		zap.Int64("pedido_id", id),
		zap.String("estado", estado))
	return nil
}
