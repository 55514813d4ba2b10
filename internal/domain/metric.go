package domain

import (
	"time"
)

type MetricType string

const (
	MetricTypeFinancial   MetricType = "financial"
	MetricTypeMaintenance MetricType = "maintenance"
	MetricTypePerformance MetricType = "performance"
	MetricTypeSafety      MetricType = "safety"
	MetricTypeConsumption MetricType = "consumption"
)

type MetricPeriod string

const (
	MetricPeriodDaily   MetricPeriod = "daily"
	MetricPeriodWeekly  MetricPeriod = "weekly"
	MetricPeriodMonthly MetricPeriod = "monthly"
	MetricPeriodYearly  MetricPeriod = "yearly"
)

type Metric struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Key         string     `json:"key" gorm:"uniqueIndex"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Type        MetricType `json:"type"`
	Unit        string     `json:"unit,omitempty"`
	Active      bool       `json:"active" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MetricValue is one observation of a metric, optionally scoped to a vehicle.
// (metric, vehicle, reference date, period) is unique; recording again upserts.
type MetricValue struct {
	ID            string       `json:"id" gorm:"primaryKey"`
	MetricID      string       `json:"metric_id" gorm:"index:idx_metric_value_key,unique"`
	VehicleID     *string      `json:"vehicle_id,omitempty" gorm:"index:idx_metric_value_key,unique"`
	Value         float64      `json:"value"`
	ReferenceDate time.Time    `json:"reference_date" gorm:"index:idx_metric_value_key,unique"`
	Period        MetricPeriod `json:"period" gorm:"default:monthly;index:idx_metric_value_key,unique"`
	CreatedAt     time.Time    `json:"created_at"`
	CreatedBy     string       `json:"created_by,omitempty"`
}
