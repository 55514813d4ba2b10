package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/ports"
)

type VehicleRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewVehicleRepository(db *gorm.DB, log *zap.Logger) ports.VehicleRepository {
	return &VehicleRepository{
		db:  db,
		log: log,
	}
}

func (r *VehicleRepository) Save(ctx context.Context, v *domain.Vehicle) error {
	result := r.db.WithContext(ctx).Save(v)
	if result.Error != nil {
		r.log.Error("Failed to save vehicle", zap.Error(result.Error))
		return result.Error
	}
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepository) FindByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := r.db.WithContext(ctx).First(&v, "plate = ?", plate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepository) FindByChassis(ctx context.Context, chassis string) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := r.db.WithContext(ctx).First(&v, "chassis = ?", chassis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepository) FindAll(ctx context.Context, filter map[string]interface{}) ([]domain.Vehicle, error) {
	var vs []domain.Vehicle
	query := r.db.WithContext(ctx)
	if active, ok := filter["active"]; ok {
		query = query.Where("active = ?", active)
	}
	if brand, ok := filter["brand"]; ok {
		query = query.Where("brand = ?", brand)
	}
	if fuelType, ok := filter["fuel_type"]; ok {
		query = query.Where("fuel_type = ?", fuelType)
	}
	if year, ok := filter["year"]; ok {
		query = query.Where("year = ?", year)
	}

	result := query.Order("created_at DESC").Find(&vs)
	if result.Error != nil {
		return nil, result.Error
	}
	return vs, nil
}

func (r *VehicleRepository) Search(ctx context.Context, term string, activeOnly bool) ([]domain.Vehicle, error) {
	var vs []domain.Vehicle
	pattern := "%" + term + "%"
	query := r.db.WithContext(ctx).
		Where("model ILIKE ? OR brand ILIKE ? OR plate ILIKE ? OR chassis ILIKE ?",
			pattern, pattern, pattern, pattern)
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	result := query.Order("created_at DESC").Find(&vs)
	if result.Error != nil {
		return nil, result.Error
	}
	return vs, nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VehicleRepository) Deactivate(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&domain.Vehicle{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VehicleRepository) CountByActive(ctx context.Context) (int, int, error) {
	var total, active int64
	if err := r.db.WithContext(ctx).Model(&domain.Vehicle{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&domain.Vehicle{}).Where("active = ?", true).Count(&active).Error; err != nil {
		return 0, 0, err
	}
	return int(total), int(active), nil
}

func (r *VehicleRepository) CountByBrand(ctx context.Context, limit int) ([]domain.BrandCount, error) {
	var rows []domain.BrandCount
	err := r.db.WithContext(ctx).
		Model(&domain.Vehicle{}).
		Select("brand, COUNT(*) AS count").
		Where("active = ?", true).
		Group("brand").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *VehicleRepository) SumCurrentKm(ctx context.Context, activeOnly bool) (int64, error) {
	var sum *int64
	query := r.db.WithContext(ctx).Model(&domain.Vehicle{}).Select("SUM(current_km)")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Scan(&sum).Error; err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (r *VehicleRepository) FindLatestActive(ctx context.Context) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}
