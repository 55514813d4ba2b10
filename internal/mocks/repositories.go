package mocks

import (
	"context"
	"time"

	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/ports"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	SaveFunc        func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	FindAdminsFunc  func(ctx context.Context) ([]domain.User, error)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindAdmins(ctx context.Context) ([]domain.User, error) {
	if m.FindAdminsFunc != nil {
		return m.FindAdminsFunc(ctx)
	}
	return []domain.User{}, nil
}

// MockVehicleRepository is a mock implementation of VehicleRepository
type MockVehicleRepository struct {
	SaveFunc             func(ctx context.Context, v *domain.Vehicle) error
	FindByIDFunc         func(ctx context.Context, id string) (*domain.Vehicle, error)
	FindByPlateFunc      func(ctx context.Context, plate string) (*domain.Vehicle, error)
	FindByChassisFunc    func(ctx context.Context, chassis string) (*domain.Vehicle, error)
	FindAllFunc          func(ctx context.Context, filter map[string]interface{}) ([]domain.Vehicle, error)
	SearchFunc           func(ctx context.Context, term string, activeOnly bool) ([]domain.Vehicle, error)
	UpdateFunc           func(ctx context.Context, v *domain.Vehicle) error
	DeactivateFunc       func(ctx context.Context, id string) error
	CountByActiveFunc    func(ctx context.Context) (int, int, error)
	CountByBrandFunc     func(ctx context.Context, limit int) ([]domain.BrandCount, error)
	SumCurrentKmFunc     func(ctx context.Context, activeOnly bool) (int64, error)
	FindLatestActiveFunc func(ctx context.Context) (*domain.Vehicle, error)
}

func (m *MockVehicleRepository) Save(ctx context.Context, v *domain.Vehicle) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, v)
	}
	return nil
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockVehicleRepository) FindByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	if m.FindByPlateFunc != nil {
		return m.FindByPlateFunc(ctx, plate)
	}
	return nil, nil
}

func (m *MockVehicleRepository) FindByChassis(ctx context.Context, chassis string) (*domain.Vehicle, error) {
	if m.FindByChassisFunc != nil {
		return m.FindByChassisFunc(ctx, chassis)
	}
	return nil, nil
}

func (m *MockVehicleRepository) FindAll(ctx context.Context, filter map[string]interface{}) ([]domain.Vehicle, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, filter)
	}
	return []domain.Vehicle{}, nil
}

func (m *MockVehicleRepository) Search(ctx context.Context, term string, activeOnly bool) ([]domain.Vehicle, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, term, activeOnly)
	}
	return []domain.Vehicle{}, nil
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, v)
	}
	return nil
}

func (m *MockVehicleRepository) Deactivate(ctx context.Context, id string) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

func (m *MockVehicleRepository) CountByActive(ctx context.Context) (int, int, error) {
	if m.CountByActiveFunc != nil {
		return m.CountByActiveFunc(ctx)
	}
	return 0, 0, nil
}

func (m *MockVehicleRepository) CountByBrand(ctx context.Context, limit int) ([]domain.BrandCount, error) {
	if m.CountByBrandFunc != nil {
		return m.CountByBrandFunc(ctx, limit)
	}
	return []domain.BrandCount{}, nil
}

func (m *MockVehicleRepository) SumCurrentKm(ctx context.Context, activeOnly bool) (int64, error) {
	if m.SumCurrentKmFunc != nil {
		return m.SumCurrentKmFunc(ctx, activeOnly)
	}
	return 0, nil
}

func (m *MockVehicleRepository) FindLatestActive(ctx context.Context) (*domain.Vehicle, error) {
	if m.FindLatestActiveFunc != nil {
		return m.FindLatestActiveFunc(ctx)
	}
	return nil, nil
}

// MockMaintenanceRepository is a mock implementation of MaintenanceRepository
type MockMaintenanceRepository struct {
	SaveFunc                func(ctx context.Context, rec *domain.MaintenanceRecord) error
	FindByIDFunc            func(ctx context.Context, id string) (*domain.MaintenanceRecord, error)
	FindAllFunc             func(ctx context.Context, filter map[string]interface{}) ([]domain.MaintenanceRecord, error)
	FindByVehicleIDFunc     func(ctx context.Context, vehicleID string) ([]domain.MaintenanceRecord, error)
	UpdateFunc              func(ctx context.Context, rec *domain.MaintenanceRecord) error
	DeactivateFunc          func(ctx context.Context, id string) error
	SaveLineItemFunc        func(ctx context.Context, item *domain.MaintenanceLineItem) error
	FindLineItemsFunc       func(ctx context.Context, maintenanceID string) ([]domain.MaintenanceLineItem, error)
	FindLineItemByIDFunc    func(ctx context.Context, id string) (*domain.MaintenanceLineItem, error)
	DeleteLineItemFunc      func(ctx context.Context, id string) error
	SumAndCountByMonthFunc  func(ctx context.Context, dateField ports.SpendDateField, since time.Time) ([]ports.MonthlyAgg, error)
	SumAndCountByVehicleFunc func(ctx context.Context) ([]ports.VehicleAgg, error)
	GroupByServiceTypeFunc  func(ctx context.Context) ([]ports.CategoryAgg, error)
	FindEarliestPendingFunc func(ctx context.Context, vehicleID string, notBefore time.Time) (*domain.MaintenanceRecord, error)
	CountAllFunc            func(ctx context.Context) (int, error)
	CountCreatedSinceFunc   func(ctx context.Context, since time.Time) (int, error)
	CountPendingFunc        func(ctx context.Context) (int, error)
	SumActualCostFunc       func(ctx context.Context) (float64, error)
}

func (m *MockMaintenanceRepository) Save(ctx context.Context, rec *domain.MaintenanceRecord) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, rec)
	}
	return nil
}

func (m *MockMaintenanceRepository) FindByID(ctx context.Context, id string) (*domain.MaintenanceRecord, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMaintenanceRepository) FindAll(ctx context.Context, filter map[string]interface{}) ([]domain.MaintenanceRecord, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, filter)
	}
	return []domain.MaintenanceRecord{}, nil
}

func (m *MockMaintenanceRepository) FindByVehicleID(ctx context.Context, vehicleID string) ([]domain.MaintenanceRecord, error) {
	if m.FindByVehicleIDFunc != nil {
		return m.FindByVehicleIDFunc(ctx, vehicleID)
	}
	return []domain.MaintenanceRecord{}, nil
}

func (m *MockMaintenanceRepository) Update(ctx context.Context, rec *domain.MaintenanceRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, rec)
	}
	return nil
}

func (m *MockMaintenanceRepository) Deactivate(ctx context.Context, id string) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

func (m *MockMaintenanceRepository) SaveLineItem(ctx context.Context, item *domain.MaintenanceLineItem) error {
	if m.SaveLineItemFunc != nil {
		return m.SaveLineItemFunc(ctx, item)
	}
	return nil
}

func (m *MockMaintenanceRepository) FindLineItems(ctx context.Context, maintenanceID string) ([]domain.MaintenanceLineItem, error) {
	if m.FindLineItemsFunc != nil {
		return m.FindLineItemsFunc(ctx, maintenanceID)
	}
	return []domain.MaintenanceLineItem{}, nil
}

func (m *MockMaintenanceRepository) FindLineItemByID(ctx context.Context, id string) (*domain.MaintenanceLineItem, error) {
	if m.FindLineItemByIDFunc != nil {
		return m.FindLineItemByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMaintenanceRepository) DeleteLineItem(ctx context.Context, id string) error {
	if m.DeleteLineItemFunc != nil {
		return m.DeleteLineItemFunc(ctx, id)
	}
	return nil
}

func (m *MockMaintenanceRepository) SumAndCountByMonth(ctx context.Context, dateField ports.SpendDateField, since time.Time) ([]ports.MonthlyAgg, error) {
	if m.SumAndCountByMonthFunc != nil {
		return m.SumAndCountByMonthFunc(ctx, dateField, since)
	}
	return []ports.MonthlyAgg{}, nil
}

func (m *MockMaintenanceRepository) SumAndCountByVehicle(ctx context.Context) ([]ports.VehicleAgg, error) {
	if m.SumAndCountByVehicleFunc != nil {
		return m.SumAndCountByVehicleFunc(ctx)
	}
	return []ports.VehicleAgg{}, nil
}

func (m *MockMaintenanceRepository) GroupByServiceType(ctx context.Context) ([]ports.CategoryAgg, error) {
	if m.GroupByServiceTypeFunc != nil {
		return m.GroupByServiceTypeFunc(ctx)
	}
	return []ports.CategoryAgg{}, nil
}

func (m *MockMaintenanceRepository) FindEarliestPending(ctx context.Context, vehicleID string, notBefore time.Time) (*domain.MaintenanceRecord, error) {
	if m.FindEarliestPendingFunc != nil {
		return m.FindEarliestPendingFunc(ctx, vehicleID, notBefore)
	}
	return nil, nil
}

func (m *MockMaintenanceRepository) CountAll(ctx context.Context) (int, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx)
	}
	return 0, nil
}

func (m *MockMaintenanceRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	if m.CountCreatedSinceFunc != nil {
		return m.CountCreatedSinceFunc(ctx, since)
	}
	return 0, nil
}

func (m *MockMaintenanceRepository) CountPending(ctx context.Context) (int, error) {
	if m.CountPendingFunc != nil {
		return m.CountPendingFunc(ctx)
	}
	return 0, nil
}

func (m *MockMaintenanceRepository) SumActualCost(ctx context.Context) (float64, error) {
	if m.SumActualCostFunc != nil {
		return m.SumActualCostFunc(ctx)
	}
	return 0, nil
}

// MockAnalysisRepository is a mock implementation of AnalysisRepository
type MockAnalysisRepository struct {
	SaveFunc                func(ctx context.Context, a *domain.TechnicalAnalysis) error
	FindByIDFunc            func(ctx context.Context, id string) (*domain.TechnicalAnalysis, error)
	FindAllFunc             func(ctx context.Context, filter map[string]interface{}) ([]domain.TechnicalAnalysis, error)
	FindByVehicleIDFunc     func(ctx context.Context, vehicleID string) ([]domain.TechnicalAnalysis, error)
	FindRecentCompletedFunc func(ctx context.Context, limit int) ([]domain.TechnicalAnalysis, error)
	UpdateFunc              func(ctx context.Context, a *domain.TechnicalAnalysis) error
	DeleteFunc              func(ctx context.Context, id string) error
}

func (m *MockAnalysisRepository) FindRecentCompleted(ctx context.Context, limit int) ([]domain.TechnicalAnalysis, error) {
	if m.FindRecentCompletedFunc != nil {
		return m.FindRecentCompletedFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockAnalysisRepository) Save(ctx context.Context, a *domain.TechnicalAnalysis) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *MockAnalysisRepository) FindByID(ctx context.Context, id string) (*domain.TechnicalAnalysis, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAnalysisRepository) FindAll(ctx context.Context, filter map[string]interface{}) ([]domain.TechnicalAnalysis, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, filter)
	}
	return []domain.TechnicalAnalysis{}, nil
}

func (m *MockAnalysisRepository) FindByVehicleID(ctx context.Context, vehicleID string) ([]domain.TechnicalAnalysis, error) {
	if m.FindByVehicleIDFunc != nil {
		return m.FindByVehicleIDFunc(ctx, vehicleID)
	}
	return []domain.TechnicalAnalysis{}, nil
}

func (m *MockAnalysisRepository) Update(ctx context.Context, a *domain.TechnicalAnalysis) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *MockAnalysisRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockMetricRepository is a mock implementation of MetricRepository
type MockMetricRepository struct {
	SaveMetricFunc      func(ctx context.Context, metric *domain.Metric) error
	FindMetricByIDFunc  func(ctx context.Context, id string) (*domain.Metric, error)
	FindMetricByKeyFunc func(ctx context.Context, key string) (*domain.Metric, error)
	FindMetricsFunc     func(ctx context.Context, activeOnly bool) ([]domain.Metric, error)
	UpdateMetricFunc    func(ctx context.Context, metric *domain.Metric) error
	UpsertValueFunc     func(ctx context.Context, v *domain.MetricValue) error
	FindValuesFunc      func(ctx context.Context, metricID string, vehicleID *string, from, to time.Time) ([]domain.MetricValue, error)
}

func (m *MockMetricRepository) SaveMetric(ctx context.Context, metric *domain.Metric) error {
	if m.SaveMetricFunc != nil {
		return m.SaveMetricFunc(ctx, metric)
	}
	return nil
}

func (m *MockMetricRepository) FindMetricByID(ctx context.Context, id string) (*domain.Metric, error) {
	if m.FindMetricByIDFunc != nil {
		return m.FindMetricByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMetricRepository) FindMetricByKey(ctx context.Context, key string) (*domain.Metric, error) {
	if m.FindMetricByKeyFunc != nil {
		return m.FindMetricByKeyFunc(ctx, key)
	}
	return nil, nil
}

func (m *MockMetricRepository) FindMetrics(ctx context.Context, activeOnly bool) ([]domain.Metric, error) {
	if m.FindMetricsFunc != nil {
		return m.FindMetricsFunc(ctx, activeOnly)
	}
	return []domain.Metric{}, nil
}

func (m *MockMetricRepository) UpdateMetric(ctx context.Context, metric *domain.Metric) error {
	if m.UpdateMetricFunc != nil {
		return m.UpdateMetricFunc(ctx, metric)
	}
	return nil
}

func (m *MockMetricRepository) UpsertValue(ctx context.Context, v *domain.MetricValue) error {
	if m.UpsertValueFunc != nil {
		return m.UpsertValueFunc(ctx, v)
	}
	return nil
}

func (m *MockMetricRepository) FindValues(ctx context.Context, metricID string, vehicleID *string, from, to time.Time) ([]domain.MetricValue, error) {
	if m.FindValuesFunc != nil {
		return m.FindValuesFunc(ctx, metricID, vehicleID, from, to)
	}
	return []domain.MetricValue{}, nil
}

// MockAlertRepository is a mock implementation of AlertRepository
type MockAlertRepository struct {
	SaveFunc         func(ctx context.Context, a *domain.Alert) error
	FindByIDFunc     func(ctx context.Context, id string) (*domain.Alert, error)
	FindByUserIDFunc func(ctx context.Context, userID string, status string, limit, offset int) ([]domain.Alert, error)
	UpdateFunc       func(ctx context.Context, a *domain.Alert) error
	CountOpenFunc    func(ctx context.Context, userID string) (int, error)
	CountOpenAllFunc func(ctx context.Context) (int, error)
}

func (m *MockAlertRepository) Save(ctx context.Context, a *domain.Alert) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *MockAlertRepository) FindByID(ctx context.Context, id string) (*domain.Alert, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAlertRepository) FindByUserID(ctx context.Context, userID string, status string, limit, offset int) ([]domain.Alert, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID, status, limit, offset)
	}
	return []domain.Alert{}, nil
}

func (m *MockAlertRepository) Update(ctx context.Context, a *domain.Alert) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *MockAlertRepository) CountOpen(ctx context.Context, userID string) (int, error) {
	if m.CountOpenFunc != nil {
		return m.CountOpenFunc(ctx, userID)
	}
	return 0, nil
}

func (m *MockAlertRepository) CountOpenAll(ctx context.Context) (int, error) {
	if m.CountOpenAllFunc != nil {
		return m.CountOpenAllFunc(ctx)
	}
	return 0, nil
}
