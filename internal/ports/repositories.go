package ports

import (
	"context"
	"time"

	"github.com/seu-repo/moto-frota/internal/domain"
)

type VehicleRepository interface {
	Save(ctx context.Context, v *domain.Vehicle) error
	FindByID(ctx context.Context, id string) (*domain.Vehicle, error)
	FindByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	FindByChassis(ctx context.Context, chassis string) (*domain.Vehicle, error)
	FindAll(ctx context.Context, filter map[string]interface{}) ([]domain.Vehicle, error)
	Search(ctx context.Context, term string, activeOnly bool) ([]domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Deactivate(ctx context.Context, id string) error
	CountByActive(ctx context.Context) (total int, active int, err error)
	CountByBrand(ctx context.Context, limit int) ([]domain.BrandCount, error)
	SumCurrentKm(ctx context.Context, activeOnly bool) (int64, error)
	FindLatestActive(ctx context.Context) (*domain.Vehicle, error)
}

type MaintenanceRepository interface {
	Save(ctx context.Context, m *domain.MaintenanceRecord) error
	FindByID(ctx context.Context, id string) (*domain.MaintenanceRecord, error)
	FindAll(ctx context.Context, filter map[string]interface{}) ([]domain.MaintenanceRecord, error)
	FindByVehicleID(ctx context.Context, vehicleID string) ([]domain.MaintenanceRecord, error)
	Update(ctx context.Context, m *domain.MaintenanceRecord) error
	Deactivate(ctx context.Context, id string) error

	SaveLineItem(ctx context.Context, item *domain.MaintenanceLineItem) error
	FindLineItems(ctx context.Context, maintenanceID string) ([]domain.MaintenanceLineItem, error)
	FindLineItemByID(ctx context.Context, id string) (*domain.MaintenanceLineItem, error)
	DeleteLineItem(ctx context.Context, id string) error

	// Aggregations backing the reporting engine. dateField selects which
	// timestamp column buckets the rows (see SpendDateField). CountAll and
	// SumActualCost span the whole history with no active or date filter.
	SumAndCountByMonth(ctx context.Context, dateField SpendDateField, since time.Time) ([]MonthlyAgg, error)
	SumAndCountByVehicle(ctx context.Context) ([]VehicleAgg, error)
	GroupByServiceType(ctx context.Context) ([]CategoryAgg, error)
	FindEarliestPending(ctx context.Context, vehicleID string, notBefore time.Time) (*domain.MaintenanceRecord, error)
	CountAll(ctx context.Context) (int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
	CountPending(ctx context.Context) (int, error)
	SumActualCost(ctx context.Context) (float64, error)
}

// SpendDateField is the timestamp column a monthly aggregation buckets by.
// Keeping it an enum keeps raw column names out of caller hands.
type SpendDateField string

const (
	SpendByCompletedAt SpendDateField = "completed_at"
	SpendByPlannedDate SpendDateField = "planned_date"
)

// MonthlyAgg is one raw month bucket straight from the database, before the
// reporting service fills gaps and formats labels.
type MonthlyAgg struct {
	Month time.Time
	Total float64
	Count int
}

// VehicleAgg is one vehicle's raw cost accumulation.
type VehicleAgg struct {
	VehicleID string
	Total     float64
	Count     int
}

// CategoryAgg is one service-type grouping row.
type CategoryAgg struct {
	ServiceType string
	Count       int
	Total       float64
}

type AnalysisRepository interface {
	Save(ctx context.Context, a *domain.TechnicalAnalysis) error
	FindByID(ctx context.Context, id string) (*domain.TechnicalAnalysis, error)
	FindAll(ctx context.Context, filter map[string]interface{}) ([]domain.TechnicalAnalysis, error)
	FindByVehicleID(ctx context.Context, vehicleID string) ([]domain.TechnicalAnalysis, error)
	FindRecentCompleted(ctx context.Context, limit int) ([]domain.TechnicalAnalysis, error)
	Update(ctx context.Context, a *domain.TechnicalAnalysis) error
	Delete(ctx context.Context, id string) error
}

type MetricRepository interface {
	SaveMetric(ctx context.Context, m *domain.Metric) error
	FindMetricByID(ctx context.Context, id string) (*domain.Metric, error)
	FindMetricByKey(ctx context.Context, key string) (*domain.Metric, error)
	FindMetrics(ctx context.Context, activeOnly bool) ([]domain.Metric, error)
	UpdateMetric(ctx context.Context, m *domain.Metric) error

	UpsertValue(ctx context.Context, v *domain.MetricValue) error
	FindValues(ctx context.Context, metricID string, vehicleID *string, from, to time.Time) ([]domain.MetricValue, error)
}

type AlertRepository interface {
	Save(ctx context.Context, a *domain.Alert) error
	FindByID(ctx context.Context, id string) (*domain.Alert, error)
	FindByUserID(ctx context.Context, userID string, status string, limit, offset int) ([]domain.Alert, error)
	Update(ctx context.Context, a *domain.Alert) error
	CountOpen(ctx context.Context, userID string) (int, error)
	CountOpenAll(ctx context.Context) (int, error)
}

type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAdmins(ctx context.Context) ([]domain.User, error)
}
