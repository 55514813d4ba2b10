package vehicle

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/adapter/queue"
	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/observability/telemetry"
	"github.com/seu-repo/moto-frota/internal/ports"
)

var (
	// ErrNotFound is returned when the requested vehicle does not exist.
	ErrNotFound = errors.New("vehicle not found")
	// ErrOdometerRegression is returned when a new reading is below the
	// recorded one.
	ErrOdometerRegression = errors.New("odometer reading cannot decrease")
)

type Service struct {
	repo  ports.VehicleRepository
	cache ports.Cache
	mq    queue.MessageQueue
	log   *zap.Logger
}

func NewService(repo ports.VehicleRepository, cache ports.Cache, mq queue.MessageQueue, log *zap.Logger) ports.VehicleService {
	return &Service{
		repo:  repo,
		cache: cache,
		mq:    mq,
		log:   log,
	}
}

func (s *Service) Create(ctx context.Context, v *domain.Vehicle) error {
	v.Plate = NormalizePlate(v.Plate)
	v.Chassis = NormalizeChassis(v.Chassis)
	v.Renavam = strings.TrimSpace(v.Renavam)

	if errs := s.validate(ctx, v, ""); len(errs) > 0 {
		return errs
	}

	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	v.Active = true
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now

	if err := s.repo.Save(ctx, v); err != nil {
		return err
	}

	telemetry.VehiclesRegisteredTotal.Inc()
	s.publishRegistered(v)
	s.log.Info("Vehicle registered",
		zap.String("vehicle_id", v.ID),
		zap.String("plate", v.Plate),
	)
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Vehicle, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

func (s *Service) List(ctx context.Context, filter map[string]interface{}) ([]domain.Vehicle, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *Service) Search(ctx context.Context, term string, activeOnly bool) ([]domain.Vehicle, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		filter := map[string]interface{}{}
		if activeOnly {
			filter["active"] = true
		}
		return s.repo.FindAll(ctx, filter)
	}
	return s.repo.Search(ctx, term, activeOnly)
}

// Update applies a partial change. Only fields present in the patch are
// touched; everything else keeps its stored value. The merged record is
// validated as a whole so cross-field rules still hold.
func (s *Service) Update(ctx context.Context, id string, patch *domain.VehiclePatch) (*domain.Vehicle, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if patch.Model != nil && *patch.Model != "" {
		existing.Model = *patch.Model
	}
	if patch.Brand != nil && *patch.Brand != "" {
		existing.Brand = *patch.Brand
	}
	if patch.Year != nil {
		existing.Year = *patch.Year
	}
	if patch.YearEnd != nil {
		existing.YearEnd = patch.YearEnd
	}
	if patch.Color != nil {
		existing.Color = *patch.Color
	}
	if patch.EngineSizeCC != nil {
		existing.EngineSizeCC = *patch.EngineSizeCC
	}
	if patch.FuelType != nil {
		existing.FuelType = *patch.FuelType
	}
	if patch.CurrentKm != nil {
		existing.CurrentKm = *patch.CurrentKm
	}
	if patch.PurchaseKm != nil {
		existing.PurchaseKm = *patch.PurchaseKm
	}
	if patch.Plate != nil {
		if plate := NormalizePlate(*patch.Plate); plate != "" {
			existing.Plate = plate
		}
	}
	if patch.Chassis != nil {
		if chassis := NormalizeChassis(*patch.Chassis); chassis != "" {
			existing.Chassis = chassis
		}
	}
	if patch.Renavam != nil {
		if renavam := strings.TrimSpace(*patch.Renavam); renavam != "" {
			existing.Renavam = renavam
		}
	}
	if patch.PurchaseDate != nil {
		existing.PurchaseDate = patch.PurchaseDate
	}
	if patch.Notes != nil {
		existing.Notes = *patch.Notes
	}

	if errs := s.validate(ctx, existing, id); len(errs) > 0 {
		return nil, errs
	}
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// UpdateOdometer records a new reading. Readings only move forward; a lower
// value than the stored one is rejected.
func (s *Service) UpdateOdometer(ctx context.Context, id string, km int) (*domain.Vehicle, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if km < existing.CurrentKm {
		return nil, ErrOdometerRegression
	}

	existing.CurrentKm = km
	existing.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if v == nil {
		return ErrNotFound
	}
	return s.repo.Deactivate(ctx, id)
}

func (s *Service) BrandStats(ctx context.Context, limit int) ([]domain.BrandCount, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.repo.CountByBrand(ctx, limit)
}

// validate accumulates field violations instead of stopping at the first,
// so the client can fix the whole form at once. excludeID skips uniqueness
// conflicts against the record being updated.
func (s *Service) validate(ctx context.Context, v *domain.Vehicle, excludeID string) ValidationErrors {
	errs := ValidationErrors{}

	if !validName(v.Model) {
		errs.add("model", "model must be between 2 and 100 characters")
	}
	if !validName(v.Brand) {
		errs.add("brand", "brand must be between 2 and 100 characters")
	}
	if !validModelYear(v.Year) {
		errs.add("year", "year must be between 1900 and 2030")
	}
	if v.YearEnd != nil && !validModelYear(*v.YearEnd) {
		errs.add("year_end", "year must be between 1900 and 2030")
	}
	if v.CurrentKm < 0 {
		errs.add("current_km", "odometer cannot be negative")
	}
	if v.PurchaseKm < 0 {
		errs.add("purchase_km", "odometer cannot be negative")
	}

	if v.Plate != "" {
		if !validPlate(v.Plate) {
			errs.add("plate", "invalid plate format (expected ABC-1234 or ABC1D23)")
		} else if other, err := s.repo.FindByPlate(ctx, v.Plate); err == nil && other != nil && other.ID != excludeID {
			errs.add("plate", "plate already registered")
		}
	}

	if v.Chassis != "" {
		if !validChassis(v.Chassis) {
			errs.add("chassis", "chassis must be 17 characters (letters and digits, no I, O or Q)")
		} else if other, err := s.repo.FindByChassis(ctx, v.Chassis); err == nil && other != nil && other.ID != excludeID {
			errs.add("chassis", "chassis already registered")
		}
	}

	if v.Renavam != "" && !validRenavam(v.Renavam) {
		errs.add("renavam", "renavam must be exactly 11 digits")
	}

	return errs
}

func (s *Service) publishRegistered(v *domain.Vehicle) {
	if s.mq == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"vehicle_id": v.ID,
		"model":      v.Model,
		"brand":      v.Brand,
		"plate":      v.Plate,
	})
	if err != nil {
		return
	}
	if err := s.mq.Publish(queue.SubjectVehicleRegistered, payload); err != nil {
		s.log.Warn("Failed to publish vehicle registered event", zap.Error(err))
	}
}
