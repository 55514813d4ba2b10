package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/ports"
	"github.com/seu-repo/moto-frota/internal/service/alert"
)

type AlertHandler struct {
	service ports.AlertService
	log     *zap.Logger
}

func NewAlertHandler(service ports.AlertService, log *zap.Logger) *AlertHandler {
	return &AlertHandler{
		service: service,
		log:     log,
	}
}

func alertStatus(err error) int {
	if errors.Is(err, alert.ErrNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

func (h *AlertHandler) Create(c *fiber.Ctx) error {
	var a domain.Alert
	if err := c.BodyParser(&a); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if a.UserID == "" {
		if userID, ok := c.Locals("user_id").(string); ok {
			a.UserID = userID
		}
	}

	if err := h.service.Raise(c.Context(), &a); err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondCreated(c, a)
}

func (h *AlertHandler) List(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	status := c.Query("status")
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	alerts, err := h.service.ListForUser(c.Context(), userID, status, limit, offset)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, alerts)
}

func (h *AlertHandler) Get(c *fiber.Ctx) error {
	a, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, alertStatus(err), err.Error())
	}
	return respondOK(c, a)
}

func (h *AlertHandler) MarkRead(c *fiber.Ctx) error {
	a, err := h.service.MarkRead(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, alertStatus(err), err.Error())
	}
	return respondOK(c, a)
}

func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	a, err := h.service.Resolve(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, alertStatus(err), err.Error())
	}
	return respondOK(c, a)
}

func (h *AlertHandler) Dismiss(c *fiber.Ctx) error {
	a, err := h.service.Dismiss(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, alertStatus(err), err.Error())
	}
	return respondOK(c, a)
}

func (h *AlertHandler) CountOpen(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	count, err := h.service.CountOpen(c.Context(), userID)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.Map{"count": count})
}
