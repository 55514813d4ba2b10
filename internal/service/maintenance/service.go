package maintenance

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/adapter/queue"
	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/observability/telemetry"
	"github.com/seu-repo/moto-frota/internal/ports"
)

var (
	// ErrNotFound is returned when the maintenance record does not exist.
	ErrNotFound = errors.New("maintenance record not found")
	// ErrLineItemNotFound is returned when the line item does not exist.
	ErrLineItemNotFound = errors.New("line item not found")
	// ErrVehicleNotFound is returned when the referenced vehicle does not exist.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrInvalidStatus is returned for an unknown status value.
	ErrInvalidStatus = errors.New("invalid maintenance status")
	// ErrInvalidCategory is returned for an unknown category value.
	ErrInvalidCategory = errors.New("invalid maintenance category")
	// ErrInvalidQuantity is returned when a line item quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// ErrInvalidUnitPrice is returned when a line item unit price is negative.
	ErrInvalidUnitPrice = errors.New("unit price cannot be negative")
)

var validStatuses = map[domain.MaintenanceStatus]bool{
	domain.MaintenanceStatusPlanned:    true,
	domain.MaintenanceStatusPurchased:  true,
	domain.MaintenanceStatusInProgress: true,
	domain.MaintenanceStatusCompleted:  true,
	domain.MaintenanceStatusCancelled:  true,
}

var validCategories = map[domain.MaintenanceCategory]bool{
	domain.MaintenanceCategoryPreventive:  true,
	domain.MaintenanceCategoryCorrective:  true,
	domain.MaintenanceCategoryImprovement: true,
}

type Service struct {
	repo        ports.MaintenanceRepository
	vehicleRepo ports.VehicleRepository
	mq          queue.MessageQueue
	log         *zap.Logger
}

func NewService(repo ports.MaintenanceRepository, vehicleRepo ports.VehicleRepository, mq queue.MessageQueue, log *zap.Logger) ports.MaintenanceService {
	return &Service{
		repo:        repo,
		vehicleRepo: vehicleRepo,
		mq:          mq,
		log:         log,
	}
}

func (s *Service) Create(ctx context.Context, m *domain.MaintenanceRecord) error {
	v, err := s.vehicleRepo.FindByID(ctx, m.VehicleID)
	if err != nil {
		return err
	}
	if v == nil {
		return ErrVehicleNotFound
	}

	if m.Category == "" {
		m.Category = domain.MaintenanceCategoryPreventive
	}
	if m.Status == "" {
		m.Status = domain.MaintenanceStatusPlanned
	}
	if !validCategories[m.Category] {
		return ErrInvalidCategory
	}
	if !validStatuses[m.Status] {
		return ErrInvalidStatus
	}

	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.Active = true
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	s.applyStatusTimestamps(m, now)

	for i := range m.LineItems {
		item := &m.LineItems[i]
		if err := validateLineItem(item); err != nil {
			return err
		}
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.MaintenanceID = m.ID
		item.ComputeTotal()
		item.CreatedAt = now
		item.UpdatedAt = now
	}

	if err := s.repo.Save(ctx, m); err != nil {
		return err
	}

	telemetry.MaintenanceRecordsTotal.WithLabelValues(string(m.Category), string(m.Status)).Inc()
	if m.Status == domain.MaintenanceStatusCompleted {
		s.publishCompleted(m)
		if m.ActualCost != nil {
			telemetry.MaintenanceSpendTotal.Add(*m.ActualCost)
		}
	}
	s.log.Info("Maintenance record created",
		zap.String("maintenance_id", m.ID),
		zap.String("vehicle_id", m.VehicleID),
		zap.String("status", string(m.Status)),
	)
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.MaintenanceRecord, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, filter map[string]interface{}) ([]domain.MaintenanceRecord, error) {
	if filter == nil {
		filter = map[string]interface{}{}
	}
	if _, ok := filter["active"]; !ok {
		filter["active"] = true
	}
	return s.repo.FindAll(ctx, filter)
}

func (s *Service) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.MaintenanceRecord, error) {
	return s.repo.FindByVehicleID(ctx, vehicleID)
}

func (s *Service) Update(ctx context.Context, id string, in *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if in.Category != "" && !validCategories[in.Category] {
		return nil, ErrInvalidCategory
	}
	if in.Status != "" && !validStatuses[in.Status] {
		return nil, ErrInvalidStatus
	}

	wasCompleted := existing.Status == domain.MaintenanceStatusCompleted

	if in.Category != "" {
		existing.Category = in.Category
	}
	if in.Status != "" {
		existing.Status = in.Status
	}
	existing.ServiceType = in.ServiceType
	existing.Title = in.Title
	existing.Description = in.Description
	existing.OdometerKm = in.OdometerKm
	existing.NextDueKm = in.NextDueKm
	existing.PlannedDate = in.PlannedDate
	existing.Shop = in.Shop
	existing.Mechanic = in.Mechanic
	existing.EstimatedCost = in.EstimatedCost
	existing.ActualCost = in.ActualCost

	now := time.Now()
	existing.UpdatedAt = now
	s.applyStatusTimestamps(existing, now)

	// Preloaded associations would be written back with stale totals.
	existing.LineItems = nil
	existing.Vehicle = nil

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if !wasCompleted && existing.Status == domain.MaintenanceStatusCompleted {
		s.publishCompleted(existing)
		if existing.ActualCost != nil {
			telemetry.MaintenanceSpendTotal.Add(*existing.ActualCost)
		}
	}
	return existing, nil
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrNotFound
	}
	return s.repo.Deactivate(ctx, id)
}

func (s *Service) AddLineItem(ctx context.Context, maintenanceID string, item *domain.MaintenanceLineItem) error {
	m, err := s.repo.FindByID(ctx, maintenanceID)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrNotFound
	}

	if err := validateLineItem(item); err != nil {
		return err
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.MaintenanceID = maintenanceID
	item.ComputeTotal()
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	return s.repo.SaveLineItem(ctx, item)
}

func (s *Service) ListLineItems(ctx context.Context, maintenanceID string) ([]domain.MaintenanceLineItem, error) {
	m, err := s.repo.FindByID(ctx, maintenanceID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return s.repo.FindLineItems(ctx, maintenanceID)
}

func (s *Service) UpdateLineItem(ctx context.Context, id string, in *domain.MaintenanceLineItem) (*domain.MaintenanceLineItem, error) {
	existing, err := s.repo.FindLineItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrLineItemNotFound
	}

	if err := validateLineItem(in); err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Brand = in.Brand
	existing.Supplier = in.Supplier
	existing.Quantity = in.Quantity
	existing.UnitPrice = in.UnitPrice
	existing.ComputeTotal()
	existing.UpdatedAt = time.Now()

	if err := s.repo.SaveLineItem(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) RemoveLineItem(ctx context.Context, id string) error {
	existing, err := s.repo.FindLineItemByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrLineItemNotFound
	}
	return s.repo.DeleteLineItem(ctx, id)
}

// applyStatusTimestamps keeps the lifecycle dates consistent with the
// current status: stamped on the way forward, cleared when a record is
// reopened. CompletedAt is only ever set while the status is completed.
func (s *Service) applyStatusTimestamps(m *domain.MaintenanceRecord, now time.Time) {
	switch m.Status {
	case domain.MaintenanceStatusInProgress:
		if m.StartedAt == nil {
			m.StartedAt = &now
		}
		m.CompletedAt = nil
	case domain.MaintenanceStatusCompleted:
		if m.StartedAt == nil {
			m.StartedAt = &now
		}
		if m.CompletedAt == nil {
			m.CompletedAt = &now
		}
	case domain.MaintenanceStatusCancelled:
		// Work may have started before the cancellation; keep StartedAt.
		m.CompletedAt = nil
	default:
		m.StartedAt = nil
		m.CompletedAt = nil
	}
}

func validateLineItem(item *domain.MaintenanceLineItem) error {
	if item.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if item.UnitPrice < 0 {
		return ErrInvalidUnitPrice
	}
	return nil
}

func (s *Service) publishCompleted(m *domain.MaintenanceRecord) {
	if s.mq == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"maintenance_id": m.ID,
		"vehicle_id":     m.VehicleID,
		"service_type":   m.ServiceType,
		"actual_cost":    m.ActualCost,
	})
	if err != nil {
		return
	}
	if err := s.mq.Publish(queue.SubjectMaintenanceCompleted, payload); err != nil {
		s.log.Warn("Failed to publish maintenance completed event", zap.Error(err))
	}
}
