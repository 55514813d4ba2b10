package postgres

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/ports"
)

type MaintenanceRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewMaintenanceRepository(db *gorm.DB, log *zap.Logger) ports.MaintenanceRepository {
	return &MaintenanceRepository{
		db:  db,
		log: log,
	}
}

func (r *MaintenanceRepository) Save(ctx context.Context, m *domain.MaintenanceRecord) error {
	result := r.db.WithContext(ctx).Save(m)
	if result.Error != nil {
		r.log.Error("Failed to save maintenance record", zap.Error(result.Error))
		return result.Error
	}
	return nil
}

func (r *MaintenanceRepository) FindByID(ctx context.Context, id string) (*domain.MaintenanceRecord, error) {
	var m domain.MaintenanceRecord
	err := r.db.WithContext(ctx).Preload("LineItems").Preload("Vehicle").First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *MaintenanceRepository) FindAll(ctx context.Context, filter map[string]interface{}) ([]domain.MaintenanceRecord, error) {
	var ms []domain.MaintenanceRecord
	query := r.db.WithContext(ctx).Preload("LineItems")
	if status, ok := filter["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if category, ok := filter["category"]; ok {
		query = query.Where("category = ?", category)
	}
	if serviceType, ok := filter["service_type"]; ok {
		query = query.Where("service_type = ?", serviceType)
	}
	if active, ok := filter["active"]; ok {
		query = query.Where("active = ?", active)
	}

	result := query.Order("created_at DESC").Find(&ms)
	if result.Error != nil {
		return nil, result.Error
	}
	return ms, nil
}

func (r *MaintenanceRepository) FindByVehicleID(ctx context.Context, vehicleID string) ([]domain.MaintenanceRecord, error) {
	var ms []domain.MaintenanceRecord
	err := r.db.WithContext(ctx).
		Preload("LineItems").
		Where("vehicle_id = ? AND active = ?", vehicleID, true).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return ms, nil
}

func (r *MaintenanceRepository) Update(ctx context.Context, m *domain.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MaintenanceRepository) Deactivate(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&domain.MaintenanceRecord{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MaintenanceRepository) SaveLineItem(ctx context.Context, item *domain.MaintenanceLineItem) error {
	result := r.db.WithContext(ctx).Save(item)
	if result.Error != nil {
		r.log.Error("Failed to save line item", zap.Error(result.Error))
		return result.Error
	}
	return nil
}

func (r *MaintenanceRepository) FindLineItems(ctx context.Context, maintenanceID string) ([]domain.MaintenanceLineItem, error) {
	var items []domain.MaintenanceLineItem
	err := r.db.WithContext(ctx).
		Where("maintenance_id = ?", maintenanceID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MaintenanceRepository) FindLineItemByID(ctx context.Context, id string) (*domain.MaintenanceLineItem, error) {
	var item domain.MaintenanceLineItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *MaintenanceRepository) DeleteLineItem(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.MaintenanceLineItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MaintenanceRepository) SumAndCountByMonth(ctx context.Context, dateField ports.SpendDateField, since time.Time) ([]ports.MonthlyAgg, error) {
	column := "completed_at"
	if dateField == ports.SpendByPlannedDate {
		column = "planned_date"
	}

	var rows []ports.MonthlyAgg
	err := r.db.WithContext(ctx).
		Model(&domain.MaintenanceRecord{}).
		Select("date_trunc('month', "+column+") AS month, COALESCE(SUM(actual_cost), 0) AS total, COUNT(*) AS count").
		Where("active = ? AND "+column+" IS NOT NULL AND "+column+" >= ?", true, since).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		r.log.Error("Failed to aggregate spend by month", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (r *MaintenanceRepository) SumAndCountByVehicle(ctx context.Context) ([]ports.VehicleAgg, error) {
	var rows []ports.VehicleAgg
	err := r.db.WithContext(ctx).
		Model(&domain.MaintenanceRecord{}).
		Select("vehicle_id, COALESCE(SUM(actual_cost), 0) AS total, COUNT(*) AS count").
		Where("active = ?", true).
		Group("vehicle_id").
		Scan(&rows).Error
	if err != nil {
		r.log.Error("Failed to aggregate spend by vehicle", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (r *MaintenanceRepository) GroupByServiceType(ctx context.Context) ([]ports.CategoryAgg, error) {
	var rows []ports.CategoryAgg
	err := r.db.WithContext(ctx).
		Model(&domain.MaintenanceRecord{}).
		Select("service_type, COUNT(*) AS count, COALESCE(SUM(actual_cost), 0) AS total").
		Where("active = ?", true).
		Group("service_type").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		r.log.Error("Failed to group by service type", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (r *MaintenanceRepository) FindEarliestPending(ctx context.Context, vehicleID string, notBefore time.Time) (*domain.MaintenanceRecord, error) {
	var m domain.MaintenanceRecord
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND active = ? AND status IN ? AND planned_date >= ?",
			vehicleID, true,
			[]domain.MaintenanceStatus{domain.MaintenanceStatusPlanned, domain.MaintenanceStatusPurchased},
			notBefore).
		Order("planned_date ASC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// CountAll spans the whole history, soft-deleted records included.
func (r *MaintenanceRepository) CountAll(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.MaintenanceRecord{}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *MaintenanceRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.MaintenanceRecord{}).
		Where("active = ? AND created_at >= ?", true, since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *MaintenanceRepository) CountPending(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.MaintenanceRecord{}).
		Where("active = ? AND status IN ?", true,
			[]domain.MaintenanceStatus{domain.MaintenanceStatusPlanned, domain.MaintenanceStatusPurchased}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// SumActualCost grand-totals every recorded cost, no active or date filter.
func (r *MaintenanceRepository) SumActualCost(ctx context.Context) (float64, error) {
	var sum *float64
	err := r.db.WithContext(ctx).
		Model(&domain.MaintenanceRecord{}).
		Select("SUM(actual_cost)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}
