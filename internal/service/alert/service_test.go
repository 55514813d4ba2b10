package alert

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/adapter/queue"
	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func TestRaise_DefaultsAndPublish(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var saved *domain.Alert

	mockRepo := &mocks.MockAlertRepository{
		SaveFunc: func(ctx context.Context, a *domain.Alert) error {
			saved = a
			return nil
		},
	}
	mockMQ := mocks.NewMockMessageQueue()
	service := NewService(mockRepo, &mocks.MockUserRepository{}, nil, mockMQ, nil, newTestLogger())

	a := &domain.Alert{
		UserID:  "user-1",
		Title:   "Revisão atrasada",
		Message: "CG 160 passou da data planejada",
	}

	// Act
	err := service.Raise(ctx, a)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if saved == nil {
		t.Fatal("expected alert to be saved")
	}
	if saved.ID == "" {
		t.Error("expected generated ID")
	}
	if saved.Severity != domain.AlertSeverityMedium {
		t.Errorf("expected default severity medium, got %s", saved.Severity)
	}
	if saved.Type != domain.AlertTypeSystem {
		t.Errorf("expected default type system, got %s", saved.Type)
	}
	if saved.Status != domain.AlertStatusActive {
		t.Errorf("expected status active, got %s", saved.Status)
	}
	if len(mockMQ.PublishedMessages[queue.SubjectAlertRaised]) != 1 {
		t.Error("expected raised event to be published")
	}
}

func TestRaise_RepositoryError(t *testing.T) {
	// Arrange
	ctx := context.Background()

	mockRepo := &mocks.MockAlertRepository{
		SaveFunc: func(ctx context.Context, a *domain.Alert) error {
			return errors.New("database error")
		},
	}
	mockMQ := mocks.NewMockMessageQueue()
	service := NewService(mockRepo, &mocks.MockUserRepository{}, nil, mockMQ, nil, newTestLogger())

	// Act
	err := service.Raise(ctx, &domain.Alert{UserID: "user-1"})

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(mockMQ.PublishedMessages[queue.SubjectAlertRaised]) != 0 {
		t.Error("failed save must not publish")
	}
}

func TestMarkRead_StampsReadAt(t *testing.T) {
	// Arrange
	ctx := context.Background()
	existing := &domain.Alert{ID: "alert-1", UserID: "user-1", Status: domain.AlertStatusActive}
	var updated *domain.Alert

	mockRepo := &mocks.MockAlertRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Alert, error) {
			if id == "alert-1" {
				clone := *existing
				return &clone, nil
			}
			return nil, nil
		},
		UpdateFunc: func(ctx context.Context, a *domain.Alert) error {
			updated = a
			return nil
		},
	}
	service := NewService(mockRepo, &mocks.MockUserRepository{}, nil, nil, nil, newTestLogger())

	// Act
	result, err := service.MarkRead(ctx, "alert-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Status != domain.AlertStatusRead {
		t.Errorf("expected status read, got %s", result.Status)
	}
	if result.ReadAt == nil {
		t.Error("expected ReadAt to be stamped")
	}
	if updated == nil {
		t.Error("expected update to be persisted")
	}
}

func TestResolve_StampsBothTimestamps(t *testing.T) {
	// Arrange
	ctx := context.Background()
	existing := &domain.Alert{ID: "alert-1", UserID: "user-1", Status: domain.AlertStatusActive}

	mockRepo := &mocks.MockAlertRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Alert, error) {
			clone := *existing
			return &clone, nil
		},
	}
	service := NewService(mockRepo, &mocks.MockUserRepository{}, nil, nil, nil, newTestLogger())

	// Act
	result, err := service.Resolve(ctx, "alert-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Status != domain.AlertStatusResolved {
		t.Errorf("expected status resolved, got %s", result.Status)
	}
	if result.ReadAt == nil || result.ResolvedAt == nil {
		t.Error("resolving stamps both ReadAt and ResolvedAt")
	}
}

func TestTransition_NotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := NewService(&mocks.MockAlertRepository{}, &mocks.MockUserRepository{}, nil, nil, nil, newTestLogger())

	// Act
	_, err := service.Dismiss(ctx, "missing")

	// Assert
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
