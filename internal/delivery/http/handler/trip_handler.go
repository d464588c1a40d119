package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/delivery-map-service/internal/domain"
	"github.com/delivery-map-service/internal/pkg/utils"
	"github.com/delivery-map-service/internal/pkg/validator"
	"github.com/delivery-map-service/internal/usecase"
	"github.com/delivery-map-service/internal/usecase/dto"
)

// TripHandler - trip session endpoints
type TripHandler struct {
	tripUC   *usecase.TripUseCase
	pedidoUC *usecase.PedidoUseCase
	logger   *zap.Logger
}

func NewTripHandler(tripUC *usecase.TripUseCase, pedidoUC *usecase.PedidoUseCase, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		tripUC:   tripUC,
		pedidoUC: pedidoUC,
		logger:   logger,
	}
}

// Create - start a trip session; consumes a pending handoff intent if one
// was left by the order-creation flow
func (h *TripHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTripRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	var seed *domain.LatLng
	if req.InitialCoord != nil {
		seed = &domain.LatLng{Lat: req.InitialCoord.Lat, Lng: req.InitialCoord.Lng}
	}

	state, err := h.tripUC.Create(seed)
	if err != nil {
		return utils.SendError(c, err)
	}

	state.PendingHandoff = h.pedidoUC.ResumeHandoff(c.Context(), state.ID)

	return utils.SendSuccess(c, state, nil)
}

// Get - current trip state
func (h *TripHandler) Get(c *fiber.Ctx) error {
	state, err := h.tripUC.Get(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, state, nil)
}

// Click - apply one map click to the trip
func (h *TripHandler) Click(c *fiber.Ctx) error {
	var req dto.ClickRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	state, err := h.tripUC.Click(c.Params("id"), domain.LatLng{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, state, nil)
}

// Mode - toggle manual add-mode
func (h *TripHandler) Mode(c *fiber.Ctx) error {
	var req dto.ModeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	state, err := h.tripUC.ToggleMode(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, state, nil)
}

// Clear - reset the trip to its seed
func (h *TripHandler) Clear(c *fiber.Ctx) error {
	state, err := h.tripUC.Clear(c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, state, nil)
}

// ComputeRoute - send waypoints to the routing backend and render the result
func (h *TripHandler) ComputeRoute(c *fiber.Ctx) error {
	state, err := h.tripUC.ComputeRoute(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, state, nil)
}
