package domain

import (
	"time"
)

// MonthlySpend is one month bucket of completed-maintenance spending,
// labeled "MM/YYYY".
type MonthlySpend struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// VehicleSpend ranks a vehicle by its accumulated maintenance cost.
type VehicleSpend struct {
	VehicleID   string  `json:"vehicle_id"`
	Label       string  `json:"label"`
	Plate       string  `json:"plate,omitempty"`
	Total       float64 `json:"total"`
	Count       int     `json:"count"`
	KmTraveled  int     `json:"km_traveled"`
	CostPerKm   float64 `json:"cost_per_km"`
	AverageCost float64 `json:"average_cost"`
}

// CategorySpend groups maintenance records by service type.
type CategorySpend struct {
	ServiceType string  `json:"service_type"`
	Count       int     `json:"count"`
	Total       float64 `json:"total"`
	Average     float64 `json:"average"`
}

// BrandCount is one row of the fleet's brand distribution.
type BrandCount struct {
	Brand string `json:"brand"`
	Count int    `json:"count"`
}

// VehicleSnapshot is the condensed vehicle view embedded in the dashboard.
type VehicleSnapshot struct {
	ID        string    `json:"id"`
	Model     string    `json:"model"`
	Brand     string    `json:"brand"`
	Plate     string    `json:"plate,omitempty"`
	Year      int       `json:"year"`
	CurrentKm int       `json:"current_km"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardSummary is the composed landing-page payload.
type DashboardSummary struct {
	TotalVehicles    int              `json:"total_vehicles"`
	ActiveVehicles   int              `json:"active_vehicles"`
	TotalMaintenance int              `json:"total_maintenance"`
	TotalSpend       float64          `json:"total_spend"`
	AverageKm        float64          `json:"average_km"`
	RecentCount      int              `json:"recent_count"`
	MonthlySpend     []MonthlySpend   `json:"monthly_spend"`
	TopBrands        []BrandCount     `json:"top_brands"`
	LatestVehicle    *VehicleSnapshot `json:"latest_vehicle,omitempty"`
	PendingCount     int              `json:"pending_count"`
	OpenAlertCount   int              `json:"open_alert_count"`
	GeneratedAt      time.Time        `json:"generated_at"`
}

// ProjectionUrgency flags how soon a projected maintenance falls due.
type ProjectionUrgency string

const (
	ProjectionUrgencyNormal ProjectionUrgency = "normal"
	ProjectionUrgencyHigh   ProjectionUrgency = "high"
)

// MaintenanceProjection is the next pending maintenance of a vehicle.
type MaintenanceProjection struct {
	VehicleID     string            `json:"vehicle_id"`
	VehicleLabel  string            `json:"vehicle_label"`
	MaintenanceID string            `json:"maintenance_id"`
	Title         string            `json:"title"`
	ServiceType   string            `json:"service_type"`
	PlannedDate   time.Time         `json:"planned_date"`
	DaysUntil     int               `json:"days_until"`
	Urgency       ProjectionUrgency `json:"urgency"`
	NextDueKm     *int              `json:"next_due_km,omitempty"`
	KmRemaining   *int              `json:"km_remaining,omitempty"`
	EstimatedCost *float64          `json:"estimated_cost,omitempty"`
}
