package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/delivery-map-service/internal/pkg/utils"
	"github.com/delivery-map-service/internal/pkg/validator"
	"github.com/delivery-map-service/internal/usecase"
	"github.com/delivery-map-service/internal/usecase/dto"
)

// PedidoHandler - pending-order linkage endpoints
type PedidoHandler struct {
	pedidoUC *usecase.PedidoUseCase
	logger   *zap.Logger
}

func NewPedidoHandler(pedidoUC *usecase.PedidoUseCase, logger *zap.Logger) *PedidoHandler {
	return &PedidoHandler{
		pedidoUC: pedidoUC,
		logger:   logger,
	}
}

// ListPending - pending pedidos with session address flags
func (h *PedidoHandler) ListPending(c *fiber.Ctx) error {
	result, err := h.pedidoUC.ListPending(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Pedidos),
	})
}

// StartAddAddress - next map click records this pedido's address
func (h *PedidoHandler) StartAddAddress(c *fiber.Ctx) error {
	pedidoID, err := strconv.ParseInt(c.Params("pedidoID"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid pedido id"})
	}

	result, err := h.pedidoUC.StartAddAddress(c.Params("id"), pedidoID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// MarkDelivered - complete a pedido whose address was added this session
func (h *PedidoHandler) MarkDelivered(c *fiber.Ctx) error {
	pedidoID, err := strconv.ParseInt(c.Params("pedidoID"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid pedido id"})
	}

	result, err := h.pedidoUC.MarkDelivered(c.Context(), c.Params("id"), pedidoID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// PublishHandoff - entry point for the order-creation flow: record the
// one-shot intent consumed by the next trip session
func (h *PedidoHandler) PublishHandoff(c *fiber.Ctx) error {
	var req dto.HandoffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.pedidoUC.PublishHandoff(c.Context(), req.PedidoID); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"published": true}, nil)
}
