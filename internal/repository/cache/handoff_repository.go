package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/delivery-map-service/internal/domain"
	"github.com/delivery-map-service/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// handoffRepository keeps the one-shot handoff intent in redis. The
// original dashboard parked this record in browser localStorage across a
// full page reload; server-side it becomes a single key read with GETDEL,
// which makes the consume-once guarantee atomic instead of best-effort.
type handoffRepository struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

func NewHandoffRepository(redis *Redis, key string) repository.HandoffRepository {
	return &handoffRepository{
		client: redis.Client(),
		key:    key,
		logger: redis.logger,
	}
}

func (r *handoffRepository) Publish(ctx context.Context, intent domain.HandoffIntent) error {
	data, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("marshal handoff intent: %w", err)
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		r.logger.Error("Failed to publish handoff intent", zap.Error(err))
		return fmt.Errorf("publish handoff intent: %w", err)
	}

	r.logger.Debug("Handoff intent published", zap.Int64("pedido_id", intent.PedidoID))
	return nil
}

func (r *handoffRepository) Consume(ctx context.Context) (*domain.HandoffIntent, error) {
	data, err := r.client.GetDel(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, nil // nothing pending
	}
	if err != nil {
		r.logger.Error("Failed to consume handoff intent", zap.Error(err))
		return nil, fmt.Errorf("consume handoff intent: %w", err)
	}

	var intent domain.HandoffIntent
	if err := json.Unmarshal(data, &intent); err != nil {
		// A malformed record is dropped, matching the original's
		// try/catch around the stored JSON.
		r.logger.Warn("Discarding malformed handoff intent", zap.Error(err))
		return nil, nil
	}

	r.logger.Debug("Handoff intent consumed", zap.Int64("pedido_id", intent.PedidoID))
	return &intent, nil
}
