package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/ports"
)

type AlertRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAlertRepository(db *gorm.DB, log *zap.Logger) ports.AlertRepository {
	return &AlertRepository{
		db:  db,
		log: log,
	}
}

func (r *AlertRepository) Save(ctx context.Context, a *domain.Alert) error {
	result := r.db.WithContext(ctx).Save(a)
	if result.Error != nil {
		r.log.Error("Failed to save alert", zap.Error(result.Error))
		return result.Error
	}
	return nil
}

func (r *AlertRepository) FindByID(ctx context.Context, id string) (*domain.Alert, error) {
	var a domain.Alert
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AlertRepository) FindByUserID(ctx context.Context, userID string, status string, limit, offset int) ([]domain.Alert, error) {
	var as []domain.Alert
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&as).Error
	if err != nil {
		return nil, err
	}
	return as, nil
}

func (r *AlertRepository) Update(ctx context.Context, a *domain.Alert) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AlertRepository) CountOpen(ctx context.Context, userID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Alert{}).
		Where("user_id = ? AND status IN ?", userID,
			[]domain.AlertStatus{domain.AlertStatusActive, domain.AlertStatusRead}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *AlertRepository) CountOpenAll(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Alert{}).
		Where("status IN ?", []domain.AlertStatus{domain.AlertStatusActive, domain.AlertStatusRead}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
