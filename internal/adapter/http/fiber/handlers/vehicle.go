package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/ports"
	"github.com/seu-repo/moto-frota/internal/service/vehicle"
)

type VehicleHandler struct {
	service ports.VehicleService
	log     *zap.Logger
}

func NewVehicleHandler(service ports.VehicleService, log *zap.Logger) *VehicleHandler {
	return &VehicleHandler{
		service: service,
		log:     log,
	}
}

func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var v domain.Vehicle
	if err := c.BodyParser(&v); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if userID, ok := c.Locals("user_id").(string); ok {
		v.CreatedBy = userID
	}

	if err := h.service.Create(c.Context(), &v); err != nil {
		var verrs vehicle.ValidationErrors
		if errors.As(err, &verrs) {
			return respondValidation(c, verrs)
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondCreated(c, v)
}

func (h *VehicleHandler) Get(c *fiber.Ctx) error {
	v, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Vehicle not found")
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, v)
}

func (h *VehicleHandler) List(c *fiber.Ctx) error {
	filter := make(map[string]interface{})
	if active := c.Query("active"); active != "" {
		filter["active"] = active == "true"
	}
	if brand := c.Query("brand"); brand != "" {
		filter["brand"] = brand
	}
	if fuelType := c.Query("fuel_type"); fuelType != "" {
		filter["fuel_type"] = fuelType
	}
	if year := c.Query("year"); year != "" {
		if y, err := strconv.Atoi(year); err == nil {
			filter["year"] = y
		}
	}

	vehicles, err := h.service.List(c.Context(), filter)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, vehicles)
}

func (h *VehicleHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	activeOnly := c.Query("active", "true") == "true"

	vehicles, err := h.service.Search(c.Context(), term, activeOnly)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, vehicles)
}

func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	var patch domain.VehiclePatch
	if err := c.BodyParser(&patch); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updated, err := h.service.Update(c.Context(), c.Params("id"), &patch)
	if err != nil {
		var verrs vehicle.ValidationErrors
		if errors.As(err, &verrs) {
			return respondValidation(c, verrs)
		}
		if errors.Is(err, vehicle.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Vehicle not found")
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, updated)
}

func (h *VehicleHandler) UpdateOdometer(c *fiber.Ctx) error {
	var body struct {
		CurrentKm int `json:"current_km"`
	}
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updated, err := h.service.UpdateOdometer(c.Context(), c.Params("id"), body.CurrentKm)
	if err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Vehicle not found")
		}
		if errors.Is(err, vehicle.ErrOdometerRegression) {
			return respondError(c, fiber.StatusBadRequest, err.Error())
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, updated)
}

func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Deactivate(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Vehicle not found")
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.Map{"deactivated": true})
}

func (h *VehicleHandler) BrandStats(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "5"))

	stats, err := h.service.BrandStats(c.Context(), limit)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, stats)
}
