package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/adapter/queue"
	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/ports"
)

// Worker turns fleet events into alerts for every administrator and
// periodically scans for maintenance falling due.
type Worker struct {
	alerts       ports.AlertService
	userRepo     ports.UserRepository
	reporting    ports.ReportingService
	mq           queue.MessageQueue
	scanInterval time.Duration
	log          *zap.Logger
}

func NewWorker(
	alerts ports.AlertService,
	userRepo ports.UserRepository,
	reporting ports.ReportingService,
	mq queue.MessageQueue,
	scanInterval time.Duration,
	log *zap.Logger,
) *Worker {
	if scanInterval <= 0 {
		scanInterval = time.Hour
	}
	return &Worker{
		alerts:       alerts,
		userRepo:     userRepo,
		reporting:    reporting,
		mq:           mq,
		scanInterval: scanInterval,
		log:          log,
	}
}

// Start subscribes to fleet events and launches the due-maintenance scan
// loop. It returns after subscriptions are in place; the loop runs until ctx
// is cancelled.
func (w *Worker) Start(ctx context.Context) error {
	if w.mq != nil {
		if err := w.mq.Subscribe(queue.SubjectMaintenanceCompleted, w.handleMaintenanceCompleted); err != nil {
			return fmt.Errorf("subscribe %s: %w", queue.SubjectMaintenanceCompleted, err)
		}
		if err := w.mq.Subscribe(queue.SubjectMaintenanceDue, w.handleMaintenanceDue); err != nil {
			return fmt.Errorf("subscribe %s: %w", queue.SubjectMaintenanceDue, err)
		}
	}

	go w.scanLoop(ctx)
	return nil
}

func (w *Worker) scanLoop(ctx context.Context) {
	ticker := time.NewTicker(w.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.ScanDueMaintenances(ctx); err != nil {
				w.log.Error("Due-maintenance scan failed", zap.Error(err))
			}
		}
	}
}

// ScanDueMaintenances publishes an event for every urgent projection so the
// alert fan-out (and any external consumer) picks it up.
func (w *Worker) ScanDueMaintenances(ctx context.Context) error {
	projections, err := w.reporting.NextMaintenances(ctx, time.Now(), "")
	if err != nil {
		return err
	}

	for i := range projections {
		p := &projections[i]
		if p.Urgency != domain.ProjectionUrgencyHigh {
			continue
		}
		payload, err := json.Marshal(p)
		if err != nil {
			continue
		}
		if w.mq != nil {
			if err := w.mq.Publish(queue.SubjectMaintenanceDue, payload); err != nil {
				w.log.Warn("Failed to publish maintenance due event", zap.Error(err))
			}
		} else {
			// No broker configured; raise directly.
			if err := w.handleMaintenanceDue(payload); err != nil {
				w.log.Warn("Failed to raise due alert", zap.Error(err))
			}
		}
	}
	return nil
}

func (w *Worker) handleMaintenanceDue(data []byte) error {
	var p domain.MaintenanceProjection
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decode maintenance due event: %w", err)
	}

	title := fmt.Sprintf("Maintenance due in %d days", p.DaysUntil)
	message := fmt.Sprintf("%s: %s (%s) planned for %s",
		p.VehicleLabel, p.Title, p.ServiceType, p.PlannedDate.Format("02/01/2006"))

	return w.fanOutToAdmins(domain.AlertTypeMaintenance, domain.AlertSeverityHigh, title, message, &p.VehicleID)
}

func (w *Worker) handleMaintenanceCompleted(data []byte) error {
	var event struct {
		MaintenanceID string   `json:"maintenance_id"`
		VehicleID     string   `json:"vehicle_id"`
		ServiceType   string   `json:"service_type"`
		ActualCost    *float64 `json:"actual_cost"`
	}
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("decode maintenance completed event: %w", err)
	}

	message := fmt.Sprintf("Maintenance %s (%s) was completed", event.MaintenanceID, event.ServiceType)
	if event.ActualCost != nil {
		message = fmt.Sprintf("%s at R$ %.2f", message, *event.ActualCost)
	}

	return w.fanOutToAdmins(domain.AlertTypeMaintenance, domain.AlertSeverityLow, "Maintenance completed", message, &event.VehicleID)
}

func (w *Worker) fanOutToAdmins(alertType domain.AlertType, severity domain.AlertSeverity, title, message string, vehicleID *string) error {
	ctx := context.Background()
	admins, err := w.userRepo.FindAdmins(ctx)
	if err != nil {
		return err
	}

	for _, admin := range admins {
		a := &domain.Alert{
			UserID:    admin.ID,
			VehicleID: vehicleID,
			Type:      alertType,
			Severity:  severity,
			Title:     title,
			Message:   message,
		}
		if err := w.alerts.Raise(ctx, a); err != nil {
			w.log.Warn("Failed to raise alert for admin",
				zap.String("user_id", admin.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}
