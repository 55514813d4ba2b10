package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/ports"
)

type AnalysisRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAnalysisRepository(db *gorm.DB, log *zap.Logger) ports.AnalysisRepository {
	return &AnalysisRepository{
		db:  db,
		log: log,
	}
}

func (r *AnalysisRepository) Save(ctx context.Context, a *domain.TechnicalAnalysis) error {
	result := r.db.WithContext(ctx).Save(a)
	if result.Error != nil {
		r.log.Error("Failed to save technical analysis", zap.Error(result.Error))
		return result.Error
	}
	return nil
}

func (r *AnalysisRepository) FindByID(ctx context.Context, id string) (*domain.TechnicalAnalysis, error) {
	var a domain.TechnicalAnalysis
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AnalysisRepository) FindAll(ctx context.Context, filter map[string]interface{}) ([]domain.TechnicalAnalysis, error) {
	var as []domain.TechnicalAnalysis
	query := r.db.WithContext(ctx)
	if status, ok := filter["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if analysisType, ok := filter["type"]; ok {
		query = query.Where("type = ?", analysisType)
	}

	result := query.Order("requested_at DESC").Find(&as)
	if result.Error != nil {
		return nil, result.Error
	}
	return as, nil
}

func (r *AnalysisRepository) FindByVehicleID(ctx context.Context, vehicleID string) ([]domain.TechnicalAnalysis, error) {
	var as []domain.TechnicalAnalysis
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("requested_at DESC").
		Find(&as).Error
	if err != nil {
		return nil, err
	}
	return as, nil
}

func (r *AnalysisRepository) FindRecentCompleted(ctx context.Context, limit int) ([]domain.TechnicalAnalysis, error) {
	var as []domain.TechnicalAnalysis
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.AnalysisStatusCompleted).
		Order("completed_at DESC").
		Limit(limit).
		Find(&as).Error
	if err != nil {
		return nil, err
	}
	return as, nil
}

func (r *AnalysisRepository) Update(ctx context.Context, a *domain.TechnicalAnalysis) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AnalysisRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.TechnicalAnalysis{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
