package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/delivery-map-service/internal/domain"
	"github.com/delivery-map-service/internal/domain/repository"
	"github.com/delivery-map-service/internal/pkg/errors"
	"github.com/delivery-map-service/internal/usecase/dto"
)

// Operator prompt shown when scoped add-mode starts. Kept in the
// dashboard's language.
const addAddressNotice = "Modo: agregue la dirección haciendo clic en el mapa."

// PedidoUseCase - links pending pedidos to the address-entry workflow
type PedidoUseCase struct {
	pedidos     repository.PedidoProvider
	handoff     repository.HandoffRepository
	trips       repository.TripRepository
	logger      *zap.Logger
	settleDelay time.Duration

	// lastPending is served when a refresh fails, so a flaky collaborator
	// does not blank the panel mid-session.
	mu          sync.RWMutex
	lastPending []domain.Pedido
}

func NewPedidoUseCase(
	pedidos repository.PedidoProvider,
	handoff repository.HandoffRepository,
	trips repository.TripRepository,
	logger *zap.Logger,
	settleDelay time.Duration,
) *PedidoUseCase {
	return &PedidoUseCase{
		pedidos:     pedidos,
		handoff:     handoff,
		trips:       trips,
		logger:      logger,
		settleDelay: settleDelay,
	}
}

// ListPending fetches pedidos from the collaborator and filters to estado
// "pendiente". A fetch failure keeps the previous list and is only logged;
// it never interrupts the session.
func (uc *PedidoUseCase) ListPending(ctx context.Context, tripID string) (*dto.PendingPedidosResponse, error) {
	pending, fresh := uc.refreshPending(ctx)

	// Address flags whose pedido left the pending list are stale; drop
	// them so the trip does not accumulate dead entries. Only a fresh
	// fetch is trusted for this.
	trip, err := uc.trips.Update(tripID, func(t *domain.Trip) error {
		if !fresh {
			return nil
		}
		alive := make(map[int64]bool, len(pending))
		for _, p := range pending {
			alive[p.ID] = true
		}
		for id := range t.AddressAdded {
			if !alive[id] {
				delete(t.AddressAdded, id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewPendingPedidos(pending, trip.AddressAdded), nil
}

// StartAddAddress puts the trip in single-shot add-mode for the pedido:
// the next map click records its delivery address.
func (uc *PedidoUseCase) StartAddAddress(tripID string, pedidoID int64) (*dto.StartAddAddressResponse, error) {
	trip, err := uc.trips.Update(tripID, func(t *domain.Trip) error {
		t.EnterScoped(pedidoID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Scoped add-mode entered",
		zap.String("trip_id", tripID),
		zap.Int64("pedido_id", pedidoID))

	return &dto.StartAddAddressResponse{
		Trip:   dto.NewTripState(trip),
		Notice: addAddressNotice,
	}, nil
}

// MarkDelivered completes a pedido. Without the session's address flag the
// call is a no-op and no collaborator request is made. A failed update
// keeps the flag so the action stays retryable.
func (uc *PedidoUseCase) MarkDelivered(ctx context.Context, tripID string, pedidoID int64) (*dto.MarkDeliveredResponse, error) {
	trip, err := uc.trips.Get(tripID)
	if err != nil {
		return nil, err
	}

	if !trip.AddressAdded[pedidoID] {
		uc.logger.Debug("MarkDelivered skipped, no address added",
			zap.String("trip_id", tripID),
			zap.Int64("pedido_id", pedidoID))
		return &dto.MarkDeliveredResponse{
			Delivered: false,
			Trip:      dto.NewTripState(trip),
		}, nil
	}

	if err := uc.pedidos.UpdateEstado(ctx, pedidoID, domain.EstadoCompletado); err != nil {
		uc.logger.Error("Failed to mark pedido delivered",
			zap.Int64("pedido_id", pedidoID),
			zap.Error(err))
		return nil, errors.ErrPedidoUpdateFailed.WithMessage(err.Error())
	}

	trip, err = uc.trips.Update(tripID, func(t *domain.Trip) error {
		delete(t.AddressAdded, pedidoID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Refresh so the delivered pedido leaves the pending list right away.
	uc.refreshPending(ctx)

	uc.logger.Info("Pedido marked delivered",
		zap.String("trip_id", tripID),
		zap.Int64("pedido_id", pedidoID))

	return &dto.MarkDeliveredResponse{
		Delivered: true,
		Trip:      dto.NewTripState(trip),
	}, nil
}

// PublishHandoff records the one-shot intent for the next session start.
// Called by the order-creation flow after a new pedido is saved.
func (uc *PedidoUseCase) PublishHandoff(ctx context.Context, pedidoID int64) error {
	return uc.handoff.Publish(ctx, domain.HandoffIntent{PedidoID: pedidoID})
}

// ResumeHandoff consumes a pending handoff intent at session start. When
// one exists, scoped add-mode for its pedido is entered automatically after
// the settle delay, giving the map surface time to finish initializing.
// Returns the pedido id the session will resume with, or nil.
func (uc *PedidoUseCase) ResumeHandoff(ctx context.Context, tripID string) *int64 {
	intent, err := uc.handoff.Consume(ctx)
	if err != nil {
		// Session start must survive a broken handoff store.
		uc.logger.Warn("Failed to consume handoff intent", zap.Error(err))
		return nil
	}
	if intent == nil {
		return nil
	}

	pedidoID := intent.PedidoID
	uc.logger.Info("Resuming address entry from handoff",
		zap.String("trip_id", tripID),
		zap.Int64("pedido_id", pedidoID),
		zap.Duration("settle_delay", uc.settleDelay))

	time.AfterFunc(uc.settleDelay, func() {
		if _, err := uc.StartAddAddress(tripID, pedidoID); err != nil {
			uc.logger.Warn("Handoff resume failed",
				zap.String("trip_id", tripID),
				zap.Int64("pedido_id", pedidoID),
				zap.Error(err))
		}
	})

	return &pedidoID
}

// refreshPending fetches and filters the pending list, falling back to the
// previous one on failure. The second return value reports freshness.
func (uc *PedidoUseCase) refreshPending(ctx context.Context) ([]domain.Pedido, bool) {
	pedidos, err := uc.pedidos.List(ctx)
	if err != nil {
		uc.logger.Warn("Failed to fetch pedidos, keeping previous list", zap.Error(err))
		uc.mu.RLock()
		defer uc.mu.RUnlock()
		return append([]domain.Pedido(nil), uc.lastPending...), false
	}

	pending := domain.FilterPending(pedidos)
	uc.mu.Lock()
	uc.lastPending = append([]domain.Pedido(nil), pending...)
	uc.mu.Unlock()
	return pending, true
}
