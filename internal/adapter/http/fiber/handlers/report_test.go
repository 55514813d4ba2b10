package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/ports"
	"github.com/seu-repo/moto-frota/internal/service/reporting"
)

// mockReportingService is a function-field mock of ports.ReportingService.
type mockReportingService struct {
	MonthlySpendFunc     func(ctx context.Context, months int, dateField ports.SpendDateField) ([]domain.MonthlySpend, error)
	SpendByVehicleFunc   func(ctx context.Context) ([]domain.VehicleSpend, error)
	SpendByCategoryFunc  func(ctx context.Context) ([]domain.CategorySpend, error)
	DashboardFunc        func(ctx context.Context) (*domain.DashboardSummary, error)
	NextMaintenancesFunc func(ctx context.Context, now time.Time, vehicleID string) ([]domain.MaintenanceProjection, error)
}

func (m *mockReportingService) MonthlySpend(ctx context.Context, months int, dateField ports.SpendDateField) ([]domain.MonthlySpend, error) {
	if m.MonthlySpendFunc != nil {
		return m.MonthlySpendFunc(ctx, months, dateField)
	}
	return nil, nil
}

func (m *mockReportingService) SpendByVehicle(ctx context.Context) ([]domain.VehicleSpend, error) {
	if m.SpendByVehicleFunc != nil {
		return m.SpendByVehicleFunc(ctx)
	}
	return nil, nil
}

func (m *mockReportingService) SpendByCategory(ctx context.Context) ([]domain.CategorySpend, error) {
	if m.SpendByCategoryFunc != nil {
		return m.SpendByCategoryFunc(ctx)
	}
	return nil, nil
}

func (m *mockReportingService) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	if m.DashboardFunc != nil {
		return m.DashboardFunc(ctx)
	}
	return &domain.DashboardSummary{}, nil
}

func (m *mockReportingService) NextMaintenances(ctx context.Context, now time.Time, vehicleID string) ([]domain.MaintenanceProjection, error) {
	if m.NextMaintenancesFunc != nil {
		return m.NextMaintenancesFunc(ctx, now, vehicleID)
	}
	return nil, nil
}

func newReportApp(svc *mockReportingService) *fiber.App {
	logger, _ := zap.NewDevelopment()
	handler := NewReportHandler(svc, logger)

	app := fiber.New()
	app.Get("/dashboard", handler.Dashboard)
	app.Get("/reports/monthly-spend", handler.MonthlySpend)
	app.Get("/reports/next-maintenances", handler.NextMaintenances)
	return app
}

func TestReportHandler_MonthlySpend_QueryParam(t *testing.T) {
	// Arrange
	var gotMonths int
	var gotField ports.SpendDateField
	svc := &mockReportingService{
		MonthlySpendFunc: func(ctx context.Context, months int, dateField ports.SpendDateField) ([]domain.MonthlySpend, error) {
			gotMonths = months
			gotField = dateField
			return []domain.MonthlySpend{{Month: "03/2026", Total: 450.00, Count: 2}}, nil
		},
	}
	app := newReportApp(svc)

	req := httptest.NewRequest("GET", "/reports/monthly-spend?months=12", nil)

	// Act
	resp, err := app.Test(req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 12, gotMonths)
	assert.Equal(t, ports.SpendByCompletedAt, gotField)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.True(t, env.Success)

	var buckets []domain.MonthlySpend
	require.NoError(t, json.Unmarshal(env.Data, &buckets))
	require.Len(t, buckets, 1)
	assert.Equal(t, "03/2026", buckets[0].Month)
}

func TestReportHandler_MonthlySpend_DefaultsToSix(t *testing.T) {
	// Arrange
	var gotMonths int
	svc := &mockReportingService{
		MonthlySpendFunc: func(ctx context.Context, months int, dateField ports.SpendDateField) ([]domain.MonthlySpend, error) {
			gotMonths = months
			return nil, nil
		},
	}
	app := newReportApp(svc)

	req := httptest.NewRequest("GET", "/reports/monthly-spend", nil)

	// Act
	_, err := app.Test(req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 6, gotMonths)
}

func TestReportHandler_Dashboard_Envelope(t *testing.T) {
	// Arrange
	svc := &mockReportingService{
		DashboardFunc: func(ctx context.Context) (*domain.DashboardSummary, error) {
			return &domain.DashboardSummary{TotalVehicles: 4, ActiveVehicles: 3}, nil
		},
	}
	app := newReportApp(svc)

	req := httptest.NewRequest("GET", "/dashboard", nil)

	// Act
	resp, err := app.Test(req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.True(t, env.Success)

	var summary domain.DashboardSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 4, summary.TotalVehicles)
	assert.Equal(t, 3, summary.ActiveVehicles)
}

func TestReportHandler_Dashboard_ServiceError(t *testing.T) {
	// Arrange
	svc := &mockReportingService{
		DashboardFunc: func(ctx context.Context) (*domain.DashboardSummary, error) {
			return nil, errors.New("database unavailable")
		},
	}
	app := newReportApp(svc)

	req := httptest.NewRequest("GET", "/dashboard", nil)

	// Act
	resp, err := app.Test(req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.False(t, env.Success)
	assert.Equal(t, "database unavailable", env.Message)
}

func TestReportHandler_NextMaintenances(t *testing.T) {
	// Arrange
	var gotVehicleID string
	svc := &mockReportingService{
		NextMaintenancesFunc: func(ctx context.Context, now time.Time, vehicleID string) ([]domain.MaintenanceProjection, error) {
			gotVehicleID = vehicleID
			return []domain.MaintenanceProjection{
				{VehicleLabel: "Honda CG 160", DaysUntil: 3, Urgency: domain.ProjectionUrgencyHigh},
			}, nil
		},
	}
	app := newReportApp(svc)

	req := httptest.NewRequest("GET", "/reports/next-maintenances", nil)

	// Act
	resp, err := app.Test(req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, gotVehicleID)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var projections []domain.MaintenanceProjection
	require.NoError(t, json.Unmarshal(env.Data, &projections))
	require.Len(t, projections, 1)
	assert.Equal(t, domain.ProjectionUrgencyHigh, projections[0].Urgency)
}

func TestReportHandler_NextMaintenances_VehicleScope(t *testing.T) {
	// Arrange
	var gotVehicleID string
	svc := &mockReportingService{
		NextMaintenancesFunc: func(ctx context.Context, now time.Time, vehicleID string) ([]domain.MaintenanceProjection, error) {
			gotVehicleID = vehicleID
			return []domain.MaintenanceProjection{{VehicleID: vehicleID}}, nil
		},
	}
	app := newReportApp(svc)

	req := httptest.NewRequest("GET", "/reports/next-maintenances?vehicle_id=veh-7", nil)

	// Act
	resp, err := app.Test(req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "veh-7", gotVehicleID)
}

func TestReportHandler_NextMaintenances_UnknownVehicle(t *testing.T) {
	// Arrange
	svc := &mockReportingService{
		NextMaintenancesFunc: func(ctx context.Context, now time.Time, vehicleID string) ([]domain.MaintenanceProjection, error) {
			return nil, reporting.ErrVehicleNotFound
		},
	}
	app := newReportApp(svc)

	req := httptest.NewRequest("GET", "/reports/next-maintenances?vehicle_id=ghost", nil)

	// Act
	resp, err := app.Test(req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
