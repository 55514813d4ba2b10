package metric

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/ports"
)

var (
	// ErrNotFound is returned when the metric does not exist.
	ErrNotFound = errors.New("metric not found")
	// ErrDuplicateKey is returned when the metric key is taken.
	ErrDuplicateKey = errors.New("metric key already exists")
	// ErrInvalidKey is returned when the metric key is empty.
	ErrInvalidKey = errors.New("metric key is required")
	// ErrInvalidPeriod is returned for an unknown aggregation period.
	ErrInvalidPeriod = errors.New("invalid metric period")
	// ErrVehicleNotFound is returned when the referenced vehicle does not exist.
	ErrVehicleNotFound = errors.New("vehicle not found")
)

var validPeriods = map[domain.MetricPeriod]bool{
	domain.MetricPeriodDaily:   true,
	domain.MetricPeriodWeekly:  true,
	domain.MetricPeriodMonthly: true,
	domain.MetricPeriodYearly:  true,
}

type Service struct {
	repo        ports.MetricRepository
	vehicleRepo ports.VehicleRepository
	log         *zap.Logger
}

func NewService(repo ports.MetricRepository, vehicleRepo ports.VehicleRepository, log *zap.Logger) ports.MetricService {
	return &Service{
		repo:        repo,
		vehicleRepo: vehicleRepo,
		log:         log,
	}
}

func (s *Service) CreateMetric(ctx context.Context, m *domain.Metric) error {
	m.Key = strings.TrimSpace(strings.ToLower(m.Key))
	if m.Key == "" {
		return ErrInvalidKey
	}

	existing, err := s.repo.FindMetricByKey(ctx, m.Key)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateKey
	}

	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.Active = true
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now

	return s.repo.SaveMetric(ctx, m)
}

func (s *Service) GetMetric(ctx context.Context, id string) (*domain.Metric, error) {
	m, err := s.repo.FindMetricByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *Service) ListMetrics(ctx context.Context, activeOnly bool) ([]domain.Metric, error) {
	return s.repo.FindMetrics(ctx, activeOnly)
}

func (s *Service) UpdateMetric(ctx context.Context, id string, in *domain.Metric) (*domain.Metric, error) {
	existing, err := s.repo.FindMetricByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	existing.Name = in.Name
	existing.Description = in.Description
	if in.Type != "" {
		existing.Type = in.Type
	}
	existing.Unit = in.Unit
	existing.Active = in.Active
	existing.UpdatedAt = time.Now()

	if err := s.repo.UpdateMetric(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// RecordValue stores one observation. Re-recording the same metric, vehicle,
// date and period overwrites the previous value.
func (s *Service) RecordValue(ctx context.Context, v *domain.MetricValue) error {
	m, err := s.repo.FindMetricByID(ctx, v.MetricID)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrNotFound
	}

	if v.VehicleID != nil {
		vehicle, err := s.vehicleRepo.FindByID(ctx, *v.VehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return ErrVehicleNotFound
		}
	}

	if v.Period == "" {
		v.Period = domain.MetricPeriodMonthly
	}
	if !validPeriods[v.Period] {
		return ErrInvalidPeriod
	}

	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if v.ReferenceDate.IsZero() {
		v.ReferenceDate = time.Now()
	}
	v.CreatedAt = time.Now()

	return s.repo.UpsertValue(ctx, v)
}

func (s *Service) ListValues(ctx context.Context, metricID string, vehicleID *string, from, to time.Time) ([]domain.MetricValue, error) {
	m, err := s.repo.FindMetricByID(ctx, metricID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}

	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(-1, 0, 0)
	}
	return s.repo.FindValues(ctx, metricID, vehicleID, from, to)
}
