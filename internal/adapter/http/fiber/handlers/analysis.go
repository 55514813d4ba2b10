package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/ports"
	"github.com/seu-repo/moto-frota/internal/service/analysis"
)

type AnalysisHandler struct {
	service ports.AnalysisService
	log     *zap.Logger
}

func NewAnalysisHandler(service ports.AnalysisService, log *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		log:     log,
	}
}

func analysisStatus(err error) int {
	switch {
	case errors.Is(err, analysis.ErrNotFound), errors.Is(err, analysis.ErrVehicleNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, analysis.ErrInvalidScore), errors.Is(err, analysis.ErrInvalidType):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *AnalysisHandler) Create(c *fiber.Ctx) error {
	var a domain.TechnicalAnalysis
	if err := c.BodyParser(&a); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if userID, ok := c.Locals("user_id").(string); ok {
		a.CreatedBy = userID
	}

	if err := h.service.Create(c.Context(), &a); err != nil {
		return respondError(c, analysisStatus(err), err.Error())
	}
	return respondCreated(c, a)
}

func (h *AnalysisHandler) Get(c *fiber.Ctx) error {
	a, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, analysisStatus(err), err.Error())
	}
	return respondOK(c, a)
}

func (h *AnalysisHandler) List(c *fiber.Ctx) error {
	filter := make(map[string]interface{})
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if analysisType := c.Query("type"); analysisType != "" {
		filter["type"] = analysisType
	}

	analyses, err := h.service.List(c.Context(), filter)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, analyses)
}

func (h *AnalysisHandler) ListByVehicle(c *fiber.Ctx) error {
	analyses, err := h.service.ListByVehicle(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, analyses)
}

func (h *AnalysisHandler) Recent(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "5"))

	analyses, err := h.service.Recent(c.Context(), limit)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, analyses)
}

func (h *AnalysisHandler) Update(c *fiber.Ctx) error {
	var a domain.TechnicalAnalysis
	if err := c.BodyParser(&a); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updated, err := h.service.Update(c.Context(), c.Params("id"), &a)
	if err != nil {
		return respondError(c, analysisStatus(err), err.Error())
	}
	return respondOK(c, updated)
}

func (h *AnalysisHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, analysisStatus(err), err.Error())
	}
	return respondOK(c, fiber.Map{"deleted": true})
}
