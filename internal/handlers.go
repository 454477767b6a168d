package internal

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/DrGermanius/ReceiptProcessor/internal/model"
)

const (
	DetailReceiptInvalid = "The receipt is invalid."
	DetailNotFound       = "No receipt found for that ID."
	DetailInternal       = "Internal server error."
)

type Handlers struct {
	Service IService
	logger  *zap.SugaredLogger
}

func NewHandlers(Service IService, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, logger: logger}
}

func (h *Handlers) ProcessReceipt(c *fiber.Ctx) error {
	id, err := h.Service.ProcessReceipt(c.Context(), c.Body())
	if err != nil {
		if errors.Is(err, ErrReceiptInvalid) {
			h.logger.Debugf("Rejected receipt: %s", err.Error())
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorOutput{Detail: DetailReceiptInvalid})
		}
		h.logger.Errorf("Error on process receipt request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorOutput{Detail: DetailInternal})
	}

	return c.Status(fiber.StatusOK).JSON(model.ProcessOutput{ID: id})
}

func (h *Handlers) GetPoints(c *fiber.Ctx) error {
	id := c.Params("id")

	points, err := h.Service.GetPoints(c.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.logger.Debugf("No receipt for id %q", id)
			return c.Status(fiber.StatusNotFound).JSON(model.ErrorOutput{Detail: DetailNotFound})
		}
		h.logger.Errorf("Error on get points request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorOutput{Detail: DetailInternal})
	}

	return c.Status(fiber.StatusOK).JSON(model.PointsOutput{Points: points})
}

// NotFound answers any unmatched path under /receipts, so ids that cannot
// form a route get the same response as unknown ones.
func (h *Handlers) NotFound(c *fiber.Ctx) error {
	h.logger.Debugf("No route for %s %s", c.Method(), c.Path())
	return c.Status(fiber.StatusNotFound).JSON(model.ErrorOutput{Detail: DetailNotFound})
}
