package domain

import (
	"time"
)

type AlertType string

const (
	AlertTypeMaintenance AlertType = "maintenance"
	AlertTypeSafety      AlertType = "safety"
	AlertTypePerformance AlertType = "performance"
	AlertTypeFinancial   AlertType = "financial"
	AlertTypeSystem      AlertType = "system"
)

type AlertSeverity string

const (
	AlertSeverityLow      AlertSeverity = "low"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityCritical AlertSeverity = "critical"
)

type AlertStatus string

const (
	AlertStatusActive    AlertStatus = "active"
	AlertStatusRead      AlertStatus = "read"
	AlertStatusResolved  AlertStatus = "resolved"
	AlertStatusDismissed AlertStatus = "dismissed"
)

type Alert struct {
	ID         string        `json:"id" gorm:"primaryKey"`
	UserID     string        `json:"user_id" gorm:"index"`
	VehicleID  *string       `json:"vehicle_id,omitempty" gorm:"index"`
	Type       AlertType     `json:"type"`
	Severity   AlertSeverity `json:"severity"`
	Title      string        `json:"title"`
	Message    string        `json:"message"`
	Status     AlertStatus   `json:"status" gorm:"index"`
	CreatedAt  time.Time     `json:"created_at"`
	ReadAt     *time.Time    `json:"read_at,omitempty"`
	ResolvedAt *time.Time    `json:"resolved_at,omitempty"`
}

// Open reports whether the alert still demands attention.
func (a *Alert) Open() bool {
	return a.Status == AlertStatusActive || a.Status == AlertStatusRead
}
