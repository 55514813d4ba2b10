package postgres

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/ports"
)

type MetricRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewMetricRepository(db *gorm.DB, log *zap.Logger) ports.MetricRepository {
	return &MetricRepository{
		db:  db,
		log: log,
	}
}

func (r *MetricRepository) SaveMetric(ctx context.Context, m *domain.Metric) error {
	result := r.db.WithContext(ctx).Save(m)
	if result.Error != nil {
		r.log.Error("Failed to save metric", zap.Error(result.Error))
		return result.Error
	}
	return nil
}

func (r *MetricRepository) FindMetricByID(ctx context.Context, id string) (*domain.Metric, error) {
	var m domain.Metric
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *MetricRepository) FindMetricByKey(ctx context.Context, key string) (*domain.Metric, error) {
	var m domain.Metric
	err := r.db.WithContext(ctx).First(&m, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *MetricRepository) FindMetrics(ctx context.Context, activeOnly bool) ([]domain.Metric, error) {
	var ms []domain.Metric
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Order("name ASC").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return ms, nil
}

func (r *MetricRepository) UpdateMetric(ctx context.Context, m *domain.Metric) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// UpsertValue replaces the value when (metric, vehicle, date, period) already
// has an observation.
func (r *MetricRepository) UpsertValue(ctx context.Context, v *domain.MetricValue) error {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "metric_id"},
			{Name: "vehicle_id"},
			{Name: "reference_date"},
			{Name: "period"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"value", "created_by"}),
	}).Create(v)
	if result.Error != nil {
		r.log.Error("Failed to upsert metric value", zap.Error(result.Error))
		return result.Error
	}
	return nil
}

func (r *MetricRepository) FindValues(ctx context.Context, metricID string, vehicleID *string, from, to time.Time) ([]domain.MetricValue, error) {
	var vs []domain.MetricValue
	query := r.db.WithContext(ctx).
		Where("metric_id = ? AND reference_date >= ? AND reference_date <= ?", metricID, from, to)
	if vehicleID != nil {
		query = query.Where("vehicle_id = ?", *vehicleID)
	}
	err := query.Order("reference_date ASC").Find(&vs).Error
	if err != nil {
		return nil, err
	}
	return vs, nil
}
