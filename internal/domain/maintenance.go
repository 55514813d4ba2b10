package domain

import (
	"time"

	"gorm.io/gorm"
)

type MaintenanceCategory string

const (
	MaintenanceCategoryPreventive  MaintenanceCategory = "preventive"
	MaintenanceCategoryCorrective  MaintenanceCategory = "corrective"
	MaintenanceCategoryImprovement MaintenanceCategory = "improvement"
)

type MaintenanceStatus string

const (
	MaintenanceStatusPlanned    MaintenanceStatus = "planned"
	MaintenanceStatusPurchased  MaintenanceStatus = "purchased"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
	MaintenanceStatusCancelled  MaintenanceStatus = "cancelled"
)

// Pending reports whether the record is still eligible for the
// next-maintenance projection.
func (s MaintenanceStatus) Pending() bool {
	return s == MaintenanceStatusPlanned || s == MaintenanceStatusPurchased
}

type MaintenanceRecord struct {
	ID            string                `json:"id" gorm:"primaryKey"`
	VehicleID     string                `json:"vehicle_id" gorm:"index"`
	Vehicle       *Vehicle              `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Category      MaintenanceCategory   `json:"category"`
	ServiceType   string                `json:"service_type" gorm:"index"`
	Status        MaintenanceStatus     `json:"status" gorm:"index"`
	Title         string                `json:"title"`
	Description   string                `json:"description,omitempty"`
	OdometerKm    int                   `json:"odometer_km"`
	NextDueKm     *int                  `json:"next_due_km,omitempty"`
	PlannedDate   *time.Time            `json:"planned_date,omitempty"`
	StartedAt     *time.Time            `json:"started_at,omitempty"`
	CompletedAt   *time.Time            `json:"completed_at,omitempty"`
	Shop          string                `json:"shop,omitempty"`
	Mechanic      string                `json:"mechanic,omitempty"`
	EstimatedCost *float64              `json:"estimated_cost,omitempty"`
	ActualCost    *float64              `json:"actual_cost,omitempty"`
	LineItems     []MaintenanceLineItem `json:"line_items,omitempty" gorm:"foreignKey:MaintenanceID"`
	Active        bool                  `json:"active" gorm:"default:true;index"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	CreatedBy     string                `json:"created_by,omitempty"`
}

// Overdue reports whether a still-pending record slipped past its planned date.
func (m *MaintenanceRecord) Overdue(now time.Time) bool {
	if m.PlannedDate == nil || !m.Status.Pending() {
		return false
	}
	return now.After(*m.PlannedDate)
}

type MaintenanceLineItem struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	MaintenanceID string    `json:"maintenance_id" gorm:"index"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand,omitempty"`
	Supplier      string    `json:"supplier,omitempty"`
	Quantity      float64   `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	LineTotal     float64   `json:"line_total"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ComputeTotal derives the line total from quantity and unit price.
func (i *MaintenanceLineItem) ComputeTotal() {
	i.LineTotal = i.Quantity * i.UnitPrice
}

// BeforeSave re-derives LineTotal on every write so a stale or tampered total
// can never reach the database.
func (i *MaintenanceLineItem) BeforeSave(tx *gorm.DB) error {
	i.ComputeTotal()
	return nil
}
