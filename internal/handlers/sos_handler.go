package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/charhateom/qrakhsa/dto"
	"github.com/charhateom/qrakhsa/internal/repository"
)

type SOSHandler struct {
	sos    SOSRaiser
	logger *zap.Logger
}

func NewSOSHandler(sos SOSRaiser, logger *zap.Logger) *SOSHandler {
	return &SOSHandler{sos: sos, logger: logger}
}

// Raise godoc
// @Summary Raise an SOS alert for an employee
// @Tags sos
// @Produce json
// @Param id path string true "Employee id"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/sos/{id}/sos [post]
func (h *SOSHandler) Raise(c *fiber.Ctx) error {
	if _, err := h.sos.Raise(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "employee not found")
		}
		h.logger.Error("raise sos", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return c.JSON(dto.MessageResponse{Message: "sos alert sent and logged"})
}
