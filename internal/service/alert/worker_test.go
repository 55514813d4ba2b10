package alert

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/seu-repo/moto-frota/internal/adapter/queue"
	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/mocks"
	"github.com/seu-repo/moto-frota/internal/ports"
)

type stubReporting struct {
	ports.ReportingService
	projections []domain.MaintenanceProjection
}

func (s *stubReporting) NextMaintenances(ctx context.Context, now time.Time, vehicleID string) ([]domain.MaintenanceProjection, error) {
	return s.projections, nil
}

func adminRepo(ids ...string) *mocks.MockUserRepository {
	return &mocks.MockUserRepository{
		FindAdminsFunc: func(ctx context.Context) ([]domain.User, error) {
			admins := make([]domain.User, 0, len(ids))
			for _, id := range ids {
				admins = append(admins, domain.User{ID: id, Role: domain.UserRoleAdmin})
			}
			return admins, nil
		},
	}
}

func TestWorker_StartSubscribes(t *testing.T) {
	// Arrange
	mockMQ := mocks.NewMockMessageQueue()
	service := NewService(&mocks.MockAlertRepository{}, &mocks.MockUserRepository{}, nil, nil, nil, newTestLogger())
	worker := NewWorker(service, adminRepo(), &stubReporting{}, mockMQ, time.Hour, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Act
	err := worker.Start(ctx)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mockMQ.Subscribers[queue.SubjectMaintenanceCompleted]) != 1 {
		t.Error("expected subscription to maintenance completed events")
	}
	if len(mockMQ.Subscribers[queue.SubjectMaintenanceDue]) != 1 {
		t.Error("expected subscription to maintenance due events")
	}
}

func TestWorker_MaintenanceDueFansOutToAdmins(t *testing.T) {
	// Arrange
	raised := []*domain.Alert{}
	mockRepo := &mocks.MockAlertRepository{
		SaveFunc: func(ctx context.Context, a *domain.Alert) error {
			raised = append(raised, a)
			return nil
		},
	}
	mockMQ := mocks.NewMockMessageQueue()
	service := NewService(mockRepo, &mocks.MockUserRepository{}, nil, nil, nil, newTestLogger())
	worker := NewWorker(service, adminRepo("admin-1", "admin-2"), &stubReporting{}, mockMQ, time.Hour, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := worker.Start(ctx); err != nil {
		t.Fatalf("failed to start worker: %v", err)
	}

	vehicleID := "veh-1"
	payload, _ := json.Marshal(domain.MaintenanceProjection{
		VehicleID:    vehicleID,
		VehicleLabel: "Honda CG 160",
		Title:        "Kit relação",
		ServiceType:  "chain_kit",
		PlannedDate:  time.Now().AddDate(0, 0, 3),
		DaysUntil:    3,
		Urgency:      domain.ProjectionUrgencyHigh,
	})

	// Act
	if err := mockMQ.Deliver(queue.SubjectMaintenanceDue, payload); err != nil {
		t.Fatalf("delivery failed: %v", err)
	}

	// Assert
	if len(raised) != 2 {
		t.Fatalf("expected one alert per admin, got %d", len(raised))
	}
	for _, a := range raised {
		if a.Type != domain.AlertTypeMaintenance {
			t.Errorf("expected maintenance alert, got %s", a.Type)
		}
		if a.Severity != domain.AlertSeverityHigh {
			t.Errorf("expected high severity, got %s", a.Severity)
		}
		if a.VehicleID == nil || *a.VehicleID != vehicleID {
			t.Error("expected alert to reference the vehicle")
		}
	}
}

func TestWorker_ScanPublishesUrgentOnly(t *testing.T) {
	// Arrange
	reporting := &stubReporting{
		projections: []domain.MaintenanceProjection{
			{VehicleID: "veh-1", DaysUntil: 3, Urgency: domain.ProjectionUrgencyHigh},
			{VehicleID: "veh-2", DaysUntil: 20, Urgency: domain.ProjectionUrgencyNormal},
		},
	}
	mockMQ := mocks.NewMockMessageQueue()
	service := NewService(&mocks.MockAlertRepository{}, &mocks.MockUserRepository{}, nil, nil, nil, newTestLogger())
	worker := NewWorker(service, adminRepo("admin-1"), reporting, mockMQ, time.Hour, newTestLogger())

	// Act
	err := worker.ScanDueMaintenances(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	published := mockMQ.PublishedMessages[queue.SubjectMaintenanceDue]
	if len(published) != 1 {
		t.Fatalf("expected 1 due event, got %d", len(published))
	}
	var p domain.MaintenanceProjection
	if err := json.Unmarshal(published[0], &p); err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}
	if p.VehicleID != "veh-1" {
		t.Errorf("expected urgent projection only, got %s", p.VehicleID)
	}
}

func TestWorker_ScanWithoutBrokerRaisesDirectly(t *testing.T) {
	// Arrange
	raised := 0
	mockRepo := &mocks.MockAlertRepository{
		SaveFunc: func(ctx context.Context, a *domain.Alert) error {
			raised++
			return nil
		},
	}
	reporting := &stubReporting{
		projections: []domain.MaintenanceProjection{
			{VehicleID: "veh-1", DaysUntil: 2, Urgency: domain.ProjectionUrgencyHigh},
		},
	}
	service := NewService(mockRepo, &mocks.MockUserRepository{}, nil, nil, nil, newTestLogger())
	worker := NewWorker(service, adminRepo("admin-1"), reporting, nil, time.Hour, newTestLogger())

	// Act
	err := worker.ScanDueMaintenances(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if raised != 1 {
		t.Errorf("expected a direct alert without a broker, got %d", raised)
	}
}
