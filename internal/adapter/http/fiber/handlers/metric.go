package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/ports"
	"github.com/seu-repo/moto-frota/internal/service/metric"
)

type MetricHandler struct {
	service ports.MetricService
	log     *zap.Logger
}

func NewMetricHandler(service ports.MetricService, log *zap.Logger) *MetricHandler {
	return &MetricHandler{
		service: service,
		log:     log,
	}
}

func metricStatus(err error) int {
	switch {
	case errors.Is(err, metric.ErrNotFound), errors.Is(err, metric.ErrVehicleNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, metric.ErrDuplicateKey):
		return fiber.StatusConflict
	case errors.Is(err, metric.ErrInvalidKey), errors.Is(err, metric.ErrInvalidPeriod):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *MetricHandler) Create(c *fiber.Ctx) error {
	var m domain.Metric
	if err := c.BodyParser(&m); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.CreateMetric(c.Context(), &m); err != nil {
		return respondError(c, metricStatus(err), err.Error())
	}
	return respondCreated(c, m)
}

func (h *MetricHandler) Get(c *fiber.Ctx) error {
	m, err := h.service.GetMetric(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, metricStatus(err), err.Error())
	}
	return respondOK(c, m)
}

func (h *MetricHandler) List(c *fiber.Ctx) error {
	activeOnly := c.Query("active", "true") == "true"

	metrics, err := h.service.ListMetrics(c.Context(), activeOnly)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, metrics)
}

func (h *MetricHandler) Update(c *fiber.Ctx) error {
	var m domain.Metric
	if err := c.BodyParser(&m); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updated, err := h.service.UpdateMetric(c.Context(), c.Params("id"), &m)
	if err != nil {
		return respondError(c, metricStatus(err), err.Error())
	}
	return respondOK(c, updated)
}

func (h *MetricHandler) RecordValue(c *fiber.Ctx) error {
	var v domain.MetricValue
	if err := c.BodyParser(&v); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	v.MetricID = c.Params("id")
	if userID, ok := c.Locals("user_id").(string); ok {
		v.CreatedBy = userID
	}

	if err := h.service.RecordValue(c.Context(), &v); err != nil {
		return respondError(c, metricStatus(err), err.Error())
	}
	return respondCreated(c, v)
}

func (h *MetricHandler) ListValues(c *fiber.Ctx) error {
	var vehicleID *string
	if v := c.Query("vehicle_id"); v != "" {
		vehicleID = &v
	}

	var from, to time.Time
	if f := c.Query("from"); f != "" {
		if parsed, err := time.Parse("2006-01-02", f); err == nil {
			from = parsed
		}
	}
	if t := c.Query("to"); t != "" {
		if parsed, err := time.Parse("2006-01-02", t); err == nil {
			to = parsed
		}
	}

	values, err := h.service.ListValues(c.Context(), c.Params("id"), vehicleID, from, to)
	if err != nil {
		return respondError(c, metricStatus(err), err.Error())
	}
	return respondOK(c, values)
}
