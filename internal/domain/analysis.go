package domain

import (
	"time"
)

type AnalysisType string

const (
	AnalysisTypeVisual      AnalysisType = "visual"
	AnalysisTypeDiagnostic  AnalysisType = "diagnostic"
	AnalysisTypePerformance AnalysisType = "performance"
	AnalysisTypeSafety      AnalysisType = "safety"
	AnalysisTypeFull        AnalysisType = "full"
)

type AnalysisStatus string

const (
	AnalysisStatusPending    AnalysisStatus = "pending"
	AnalysisStatusInProgress AnalysisStatus = "in_progress"
	AnalysisStatusCompleted  AnalysisStatus = "completed"
	AnalysisStatusCancelled  AnalysisStatus = "cancelled"
)

type TechnicalAnalysis struct {
	ID              string         `json:"id" gorm:"primaryKey"`
	VehicleID       string         `json:"vehicle_id" gorm:"index"`
	Type            AnalysisType   `json:"type"`
	Status          AnalysisStatus `json:"status" gorm:"index"`
	Title           string         `json:"title"`
	Summary         string         `json:"summary,omitempty"`
	Recommendations string         `json:"recommendations,omitempty"`
	Score           *float64       `json:"score,omitempty"` // 0..10
	RequestedAt     time.Time      `json:"requested_at"`
	StartedAt       *time.Time     `json:"started_at,omitempty"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	CreatedBy       string         `json:"created_by,omitempty"`
}
