package ports

import (
	"context"
	"time"

	"github.com/seu-repo/moto-frota/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, error) // token, refresh, err
	Register(ctx context.Context, user *domain.User) error
	RefreshToken(ctx context.Context, token string) (string, error)
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
}

type VehicleService interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	Get(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context, filter map[string]interface{}) ([]domain.Vehicle, error)
	Search(ctx context.Context, term string, activeOnly bool) ([]domain.Vehicle, error)
	Update(ctx context.Context, id string, patch *domain.VehiclePatch) (*domain.Vehicle, error)
	UpdateOdometer(ctx context.Context, id string, km int) (*domain.Vehicle, error)
	Deactivate(ctx context.Context, id string) error
	BrandStats(ctx context.Context, limit int) ([]domain.BrandCount, error)
}

type MaintenanceService interface {
	Create(ctx context.Context, m *domain.MaintenanceRecord) error
	Get(ctx context.Context, id string) (*domain.MaintenanceRecord, error)
	List(ctx context.Context, filter map[string]interface{}) ([]domain.MaintenanceRecord, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.MaintenanceRecord, error)
	Update(ctx context.Context, id string, m *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error)
	Deactivate(ctx context.Context, id string) error

	AddLineItem(ctx context.Context, maintenanceID string, item *domain.MaintenanceLineItem) error
	ListLineItems(ctx context.Context, maintenanceID string) ([]domain.MaintenanceLineItem, error)
	UpdateLineItem(ctx context.Context, id string, item *domain.MaintenanceLineItem) (*domain.MaintenanceLineItem, error)
	RemoveLineItem(ctx context.Context, id string) error
}

type AnalysisService interface {
	Create(ctx context.Context, a *domain.TechnicalAnalysis) error
	Get(ctx context.Context, id string) (*domain.TechnicalAnalysis, error)
	List(ctx context.Context, filter map[string]interface{}) ([]domain.TechnicalAnalysis, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.TechnicalAnalysis, error)
	Recent(ctx context.Context, limit int) ([]domain.TechnicalAnalysis, error)
	Update(ctx context.Context, id string, a *domain.TechnicalAnalysis) (*domain.TechnicalAnalysis, error)
	Delete(ctx context.Context, id string) error
}

// ReportingService is the aggregation core behind the dashboard and the
// analysis endpoints.
type ReportingService interface {
	MonthlySpend(ctx context.Context, months int, dateField SpendDateField) ([]domain.MonthlySpend, error)
	SpendByVehicle(ctx context.Context) ([]domain.VehicleSpend, error)
	SpendByCategory(ctx context.Context) ([]domain.CategorySpend, error)
	Dashboard(ctx context.Context) (*domain.DashboardSummary, error)
	NextMaintenances(ctx context.Context, now time.Time, vehicleID string) ([]domain.MaintenanceProjection, error)
}

type MetricService interface {
	CreateMetric(ctx context.Context, m *domain.Metric) error
	GetMetric(ctx context.Context, id string) (*domain.Metric, error)
	ListMetrics(ctx context.Context, activeOnly bool) ([]domain.Metric, error)
	UpdateMetric(ctx context.Context, id string, m *domain.Metric) (*domain.Metric, error)
	RecordValue(ctx context.Context, v *domain.MetricValue) error
	ListValues(ctx context.Context, metricID string, vehicleID *string, from, to time.Time) ([]domain.MetricValue, error)
}

type AlertService interface {
	Raise(ctx context.Context, a *domain.Alert) error
	Get(ctx context.Context, id string) (*domain.Alert, error)
	ListForUser(ctx context.Context, userID string, status string, limit, offset int) ([]domain.Alert, error)
	MarkRead(ctx context.Context, id string) (*domain.Alert, error)
	Resolve(ctx context.Context, id string) (*domain.Alert, error)
	Dismiss(ctx context.Context, id string) (*domain.Alert, error)
	CountOpen(ctx context.Context, userID string) (int, error)
}

// EmailService handles email notifications
type EmailService interface {
	// Send sends a generic email
	Send(ctx context.Context, to, subject, body string) error

	// SendHTML sends an HTML email
	SendHTML(ctx context.Context, to, subject, htmlBody string) error

	// SendWelcome sends a welcome email to a new user
	SendWelcome(ctx context.Context, user *domain.User) error

	// SendAlert sends an alert notification
	SendAlert(ctx context.Context, user *domain.User, alert *domain.Alert) error

	// SendMaintenanceDue warns that a planned maintenance is coming up
	SendMaintenanceDue(ctx context.Context, user *domain.User, projection *domain.MaintenanceProjection) error
}

// SecretManager provides access to externally managed secrets.
type SecretManager interface {
	GetSecret(ctx context.Context, path, key string) (string, error)
	GetDatabaseURL(ctx context.Context) (string, error)
	GetJWTSecret(ctx context.Context) (string, error)
}
