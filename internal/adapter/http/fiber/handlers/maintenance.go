package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/ports"
	"github.com/seu-repo/moto-frota/internal/service/maintenance"
)

type MaintenanceHandler struct {
	service ports.MaintenanceService
	log     *zap.Logger
}

func NewMaintenanceHandler(service ports.MaintenanceService, log *zap.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		service: service,
		log:     log,
	}
}

// maintenanceStatus maps a service error to its HTTP status.
func maintenanceStatus(err error) int {
	switch {
	case errors.Is(err, maintenance.ErrNotFound),
		errors.Is(err, maintenance.ErrLineItemNotFound),
		errors.Is(err, maintenance.ErrVehicleNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, maintenance.ErrInvalidStatus),
		errors.Is(err, maintenance.ErrInvalidCategory),
		errors.Is(err, maintenance.ErrInvalidQuantity),
		errors.Is(err, maintenance.ErrInvalidUnitPrice):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	var m domain.MaintenanceRecord
	if err := c.BodyParser(&m); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if userID, ok := c.Locals("user_id").(string); ok {
		m.CreatedBy = userID
	}

	if err := h.service.Create(c.Context(), &m); err != nil {
		return respondError(c, maintenanceStatus(err), err.Error())
	}
	return respondCreated(c, m)
}

func (h *MaintenanceHandler) Get(c *fiber.Ctx) error {
	m, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, maintenanceStatus(err), err.Error())
	}
	return respondOK(c, m)
}

func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	filter := make(map[string]interface{})
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}
	if serviceType := c.Query("service_type"); serviceType != "" {
		filter["service_type"] = serviceType
	}

	records, err := h.service.List(c.Context(), filter)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, records)
}

func (h *MaintenanceHandler) ListByVehicle(c *fiber.Ctx) error {
	records, err := h.service.ListByVehicle(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, records)
}

func (h *MaintenanceHandler) Update(c *fiber.Ctx) error {
	var m domain.MaintenanceRecord
	if err := c.BodyParser(&m); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updated, err := h.service.Update(c.Context(), c.Params("id"), &m)
	if err != nil {
		return respondError(c, maintenanceStatus(err), err.Error())
	}
	return respondOK(c, updated)
}

func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Deactivate(c.Context(), c.Params("id")); err != nil {
		return respondError(c, maintenanceStatus(err), err.Error())
	}
	return respondOK(c, fiber.Map{"deactivated": true})
}

func (h *MaintenanceHandler) AddLineItem(c *fiber.Ctx) error {
	var item domain.MaintenanceLineItem
	if err := c.BodyParser(&item); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.AddLineItem(c.Context(), c.Params("id"), &item); err != nil {
		return respondError(c, maintenanceStatus(err), err.Error())
	}
	return respondCreated(c, item)
}

func (h *MaintenanceHandler) ListLineItems(c *fiber.Ctx) error {
	items, err := h.service.ListLineItems(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, maintenanceStatus(err), err.Error())
	}
	return respondOK(c, items)
}

func (h *MaintenanceHandler) UpdateLineItem(c *fiber.Ctx) error {
	var item domain.MaintenanceLineItem
	if err := c.BodyParser(&item); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updated, err := h.service.UpdateLineItem(c.Context(), c.Params("itemId"), &item)
	if err != nil {
		return respondError(c, maintenanceStatus(err), err.Error())
	}
	return respondOK(c, updated)
}

func (h *MaintenanceHandler) RemoveLineItem(c *fiber.Ctx) error {
	if err := h.service.RemoveLineItem(c.Context(), c.Params("itemId")); err != nil {
		return respondError(c, maintenanceStatus(err), err.Error())
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
