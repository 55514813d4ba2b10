package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/ports"
	"github.com/seu-repo/moto-frota/internal/service/reporting"
)

type ReportHandler struct {
	service ports.ReportingService
	log     *zap.Logger
}

func NewReportHandler(service ports.ReportingService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log,
	}
}

func (h *ReportHandler) MonthlySpend(c *fiber.Ctx) error {
	months, _ := strconv.Atoi(c.Query("months", "6"))

	dateField := ports.SpendByCompletedAt
	if c.Query("date_field") == "planned" {
		dateField = ports.SpendByPlannedDate
	}

	buckets, err := h.service.MonthlySpend(c.Context(), months, dateField)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, buckets)
}

func (h *ReportHandler) SpendByVehicle(c *fiber.Ctx) error {
	spend, err := h.service.SpendByVehicle(c.Context())
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, spend)
}

func (h *ReportHandler) SpendByCategory(c *fiber.Ctx) error {
	spend, err := h.service.SpendByCategory(c.Context())
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, spend)
}

func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	summary, err := h.service.Dashboard(c.Context())
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, summary)
}

func (h *ReportHandler) NextMaintenances(c *fiber.Ctx) error {
	projections, err := h.service.NextMaintenances(c.Context(), time.Now(), c.Query("vehicle_id"))
	if err != nil {
		if errors.Is(err, reporting.ErrVehicleNotFound) {
			return respondError(c, fiber.StatusNotFound, "Vehicle not found")
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, projections)
}
