package alert

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/adapter/queue"
	"github.com/seu-repo/moto-frota/internal/adapter/websocket"
	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/observability/telemetry"
	"github.com/seu-repo/moto-frota/internal/ports"
)

// ErrNotFound is returned when the alert does not exist.
var ErrNotFound = errors.New("alert not found")

type Service struct {
	repo     ports.AlertRepository
	userRepo ports.UserRepository
	hub      *websocket.Hub
	mq       queue.MessageQueue
	email    ports.EmailService
	log      *zap.Logger
}

func NewService(
	repo ports.AlertRepository,
	userRepo ports.UserRepository,
	hub *websocket.Hub,
	mq queue.MessageQueue,
	email ports.EmailService,
	log *zap.Logger,
) ports.AlertService {
	return &Service{
		repo:     repo,
		userRepo: userRepo,
		hub:      hub,
		mq:       mq,
		email:    email,
		log:      log,
	}
}

// Raise persists a new alert, pushes it to the owner's open sessions and
// notifies by email when the user opted in.
func (s *Service) Raise(ctx context.Context, a *domain.Alert) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Severity == "" {
		a.Severity = domain.AlertSeverityMedium
	}
	if a.Type == "" {
		a.Type = domain.AlertTypeSystem
	}
	a.Status = domain.AlertStatusActive
	a.CreatedAt = time.Now()

	if err := s.repo.Save(ctx, a); err != nil {
		return err
	}

	payload, err := json.Marshal(a)
	if err == nil {
		if s.hub != nil {
			s.hub.SendToUser(a.UserID, payload)
		}
		if s.mq != nil {
			if err := s.mq.Publish(queue.SubjectAlertRaised, payload); err != nil {
				s.log.Warn("Failed to publish alert event", zap.Error(err))
			}
		}
	}

	s.notifyByEmail(ctx, a)

	telemetry.AlertsRaisedTotal.WithLabelValues(string(a.Type), string(a.Severity)).Inc()
	s.log.Info("Alert raised",
		zap.String("alert_id", a.ID),
		zap.String("user_id", a.UserID),
		zap.String("severity", string(a.Severity)),
	)
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Alert, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

func (s *Service) ListForUser(ctx context.Context, userID string, status string, limit, offset int) ([]domain.Alert, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.FindByUserID(ctx, userID, status, limit, offset)
}

func (s *Service) MarkRead(ctx context.Context, id string) (*domain.Alert, error) {
	return s.transition(ctx, id, domain.AlertStatusRead)
}

func (s *Service) Resolve(ctx context.Context, id string) (*domain.Alert, error) {
	return s.transition(ctx, id, domain.AlertStatusResolved)
}

func (s *Service) Dismiss(ctx context.Context, id string) (*domain.Alert, error) {
	return s.transition(ctx, id, domain.AlertStatusDismissed)
}

func (s *Service) CountOpen(ctx context.Context, userID string) (int, error) {
	return s.repo.CountOpen(ctx, userID)
}

func (s *Service) transition(ctx context.Context, id string, status domain.AlertStatus) (*domain.Alert, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	a.Status = status
	switch status {
	case domain.AlertStatusRead:
		if a.ReadAt == nil {
			a.ReadAt = &now
		}
	case domain.AlertStatusResolved:
		if a.ReadAt == nil {
			a.ReadAt = &now
		}
		a.ResolvedAt = &now
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) notifyByEmail(ctx context.Context, a *domain.Alert) {
	if s.email == nil {
		return
	}
	user, err := s.userRepo.FindByID(ctx, a.UserID)
	if err != nil || user == nil || !user.NotifyByEmail {
		return
	}
	if err := s.email.SendAlert(ctx, user, a); err != nil {
		s.log.Warn("Failed to email alert",
			zap.String("alert_id", a.ID),
			zap.Error(err),
		)
	}
}
