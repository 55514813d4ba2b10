package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/ports"
)

var (
	// ErrNotFound is returned when the analysis does not exist.
	ErrNotFound = errors.New("technical analysis not found")
	// ErrVehicleNotFound is returned when the referenced vehicle does not exist.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrInvalidScore is returned when the score falls outside 0..10.
	ErrInvalidScore = errors.New("score must be between 0 and 10")
	// ErrInvalidType is returned for an unknown analysis type.
	ErrInvalidType = errors.New("invalid analysis type")
)

var validTypes = map[domain.AnalysisType]bool{
	domain.AnalysisTypeVisual:      true,
	domain.AnalysisTypeDiagnostic:  true,
	domain.AnalysisTypePerformance: true,
	domain.AnalysisTypeSafety:      true,
	domain.AnalysisTypeFull:        true,
}

type Service struct {
	repo        ports.AnalysisRepository
	vehicleRepo ports.VehicleRepository
	log         *zap.Logger
}

func NewService(repo ports.AnalysisRepository, vehicleRepo ports.VehicleRepository, log *zap.Logger) ports.AnalysisService {
	return &Service{
		repo:        repo,
		vehicleRepo: vehicleRepo,
		log:         log,
	}
}

func (s *Service) Create(ctx context.Context, a *domain.TechnicalAnalysis) error {
	v, err := s.vehicleRepo.FindByID(ctx, a.VehicleID)
	if err != nil {
		return err
	}
	if v == nil {
		return ErrVehicleNotFound
	}

	if a.Type == "" {
		a.Type = domain.AnalysisTypeVisual
	}
	if !validTypes[a.Type] {
		return ErrInvalidType
	}
	if err := validateScore(a.Score); err != nil {
		return err
	}

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Status == "" {
		a.Status = domain.AnalysisStatusPending
	}
	now := time.Now()
	if a.RequestedAt.IsZero() {
		a.RequestedAt = now
	}
	a.CreatedAt = now
	a.UpdatedAt = now
	applyStatusTimestamps(a, now)

	return s.repo.Save(ctx, a)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.TechnicalAnalysis, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, filter map[string]interface{}) ([]domain.TechnicalAnalysis, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *Service) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.TechnicalAnalysis, error) {
	return s.repo.FindByVehicleID(ctx, vehicleID)
}

// Recent returns the latest completed analyses for the dashboard feed.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.TechnicalAnalysis, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.repo.FindRecentCompleted(ctx, limit)
}

func (s *Service) Update(ctx context.Context, id string, in *domain.TechnicalAnalysis) (*domain.TechnicalAnalysis, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if in.Type != "" && !validTypes[in.Type] {
		return nil, ErrInvalidType
	}
	if err := validateScore(in.Score); err != nil {
		return nil, err
	}

	if in.Type != "" {
		existing.Type = in.Type
	}
	if in.Status != "" {
		existing.Status = in.Status
	}
	existing.Title = in.Title
	existing.Summary = in.Summary
	existing.Recommendations = in.Recommendations
	existing.Score = in.Score

	now := time.Now()
	existing.UpdatedAt = now
	applyStatusTimestamps(existing, now)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func validateScore(score *float64) error {
	if score == nil {
		return nil
	}
	if *score < 0 || *score > 10 {
		return ErrInvalidScore
	}
	return nil
}

func applyStatusTimestamps(a *domain.TechnicalAnalysis, now time.Time) {
	switch a.Status {
	case domain.AnalysisStatusInProgress:
		if a.StartedAt == nil {
			a.StartedAt = &now
		}
	case domain.AnalysisStatusCompleted:
		if a.StartedAt == nil {
			a.StartedAt = &now
		}
		if a.CompletedAt == nil {
			a.CompletedAt = &now
		}
	}
}
