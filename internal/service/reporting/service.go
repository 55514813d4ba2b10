package reporting

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/observability/telemetry"
	"github.com/seu-repo/moto-frota/internal/ports"
)

// ErrVehicleNotFound is returned when a report is scoped to a vehicle
// that does not exist.
var ErrVehicleNotFound = errors.New("vehicle not found")

const (
	defaultMonths    = 6
	topBrandsLimit   = 5
	recentWindow     = 30 * 24 * time.Hour
	urgentWindowDays = 7
)

type Service struct {
	vehicleRepo     ports.VehicleRepository
	maintenanceRepo ports.MaintenanceRepository
	alertRepo       ports.AlertRepository
	log             *zap.Logger
}

func NewService(
	vehicleRepo ports.VehicleRepository,
	maintenanceRepo ports.MaintenanceRepository,
	alertRepo ports.AlertRepository,
	log *zap.Logger,
) ports.ReportingService {
	return &Service{
		vehicleRepo:     vehicleRepo,
		maintenanceRepo: maintenanceRepo,
		alertRepo:       alertRepo,
		log:             log,
	}
}

// MonthlySpend returns one bucket per month that has at least one matching
// record, oldest first. Buckets group on the completion date unless the
// caller asks for the planned date.
func (s *Service) MonthlySpend(ctx context.Context, months int, dateField ports.SpendDateField) ([]domain.MonthlySpend, error) {
	if months <= 0 {
		months = defaultMonths
	}
	if dateField == "" {
		dateField = ports.SpendByCompletedAt
	}

	start := monthStart(time.Now()).AddDate(0, -(months - 1), 0)

	rows, err := s.maintenanceRepo.SumAndCountByMonth(ctx, dateField, start)
	if err != nil {
		return nil, err
	}

	buckets := make([]domain.MonthlySpend, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, domain.MonthlySpend{
			Month: monthLabel(row.Month),
			Total: row.Total,
			Count: row.Count,
		})
	}
	return buckets, nil
}

// monthlyBuckets synthesizes a continuous trailing window ending at now,
// oldest first. Months without maintenance appear zeroed so the dashboard
// chart keeps a fixed axis.
func (s *Service) monthlyBuckets(ctx context.Context, now time.Time, months int) ([]domain.MonthlySpend, error) {
	start := monthStart(now).AddDate(0, -(months - 1), 0)

	rows, err := s.maintenanceRepo.SumAndCountByMonth(ctx, ports.SpendByCompletedAt, start)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]ports.MonthlyAgg, len(rows))
	for _, row := range rows {
		byMonth[monthLabel(row.Month)] = row
	}

	buckets := make([]domain.MonthlySpend, 0, months)
	for i := 0; i < months; i++ {
		m := start.AddDate(0, i, 0)
		label := monthLabel(m)
		bucket := domain.MonthlySpend{Month: label}
		if row, ok := byMonth[label]; ok {
			bucket.Total = row.Total
			bucket.Count = row.Count
		}
		buckets = append(buckets, bucket)
	}
	return buckets, nil
}

// SpendByVehicle ranks the active fleet by accumulated maintenance cost,
// highest first. Every active vehicle appears, even with no maintenance on
// file. Vehicles that never traveled report a zero cost per km rather than
// dividing by zero.
func (s *Service) SpendByVehicle(ctx context.Context) ([]domain.VehicleSpend, error) {
	vehicles, err := s.vehicleRepo.FindAll(ctx, map[string]interface{}{"active": true})
	if err != nil {
		return nil, err
	}

	aggs, err := s.maintenanceRepo.SumAndCountByVehicle(ctx)
	if err != nil {
		return nil, err
	}
	byVehicle := make(map[string]ports.VehicleAgg, len(aggs))
	for _, agg := range aggs {
		byVehicle[agg.VehicleID] = agg
	}

	result := make([]domain.VehicleSpend, 0, len(vehicles))
	for _, v := range vehicles {
		entry := domain.VehicleSpend{
			VehicleID:  v.ID,
			Label:      v.Brand + " " + v.Model,
			Plate:      v.Plate,
			KmTraveled: v.KmTraveled(),
		}
		if agg, ok := byVehicle[v.ID]; ok {
			entry.Total = agg.Total
			entry.Count = agg.Count
			if agg.Count > 0 {
				entry.AverageCost = agg.Total / float64(agg.Count)
			}
			if entry.KmTraveled > 0 {
				entry.CostPerKm = agg.Total / float64(entry.KmTraveled)
			}
		}
		result = append(result, entry)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})
	return result, nil
}

// SpendByCategory groups maintenance records by service type, most frequent
// first.
func (s *Service) SpendByCategory(ctx context.Context) ([]domain.CategorySpend, error) {
	aggs, err := s.maintenanceRepo.GroupByServiceType(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CategorySpend, 0, len(aggs))
	for _, agg := range aggs {
		entry := domain.CategorySpend{
			ServiceType: agg.ServiceType,
			Count:       agg.Count,
			Total:       agg.Total,
		}
		if agg.Count > 0 {
			entry.Average = agg.Total / float64(agg.Count)
		}
		result = append(result, entry)
	}
	return result, nil
}

// Dashboard composes the landing-page summary. Every call queries the
// repositories fresh so counters reflect the latest writes.
func (s *Service) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	timer := prometheus.NewTimer(telemetry.ReportLatency.WithLabelValues("dashboard"))
	defer timer.ObserveDuration()

	now := time.Now()

	total, active, err := s.vehicleRepo.CountByActive(ctx)
	if err != nil {
		return nil, err
	}

	totalMaintenance, err := s.maintenanceRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	totalSpend, err := s.maintenanceRepo.SumActualCost(ctx)
	if err != nil {
		return nil, err
	}

	sumKm, err := s.vehicleRepo.SumCurrentKm(ctx, true)
	if err != nil {
		return nil, err
	}

	recent, err := s.maintenanceRepo.CountCreatedSince(ctx, now.Add(-recentWindow))
	if err != nil {
		return nil, err
	}

	monthly, err := s.monthlyBuckets(ctx, now, defaultMonths)
	if err != nil {
		return nil, err
	}

	brands, err := s.vehicleRepo.CountByBrand(ctx, topBrandsLimit)
	if err != nil {
		return nil, err
	}

	latest, err := s.vehicleRepo.FindLatestActive(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := s.maintenanceRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	openAlerts, err := s.alertRepo.CountOpenAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.DashboardSummary{
		TotalVehicles:    total,
		ActiveVehicles:   active,
		TotalMaintenance: totalMaintenance,
		TotalSpend:       totalSpend,
		AverageKm:        float64(sumKm) / float64(max(1, active)),
		RecentCount:      recent,
		MonthlySpend:     monthly,
		TopBrands:        brands,
		PendingCount:     pending,
		OpenAlertCount:   openAlerts,
		GeneratedAt:      now,
	}
	if latest != nil {
		summary.LatestVehicle = &domain.VehicleSnapshot{
			ID:        latest.ID,
			Model:     latest.Model,
			Brand:     latest.Brand,
			Plate:     latest.Plate,
			Year:      latest.Year,
			CurrentKm: latest.CurrentKm,
			CreatedAt: latest.CreatedAt,
		}
	}
	return summary, nil
}

// NextMaintenances projects, for each active vehicle, its earliest pending
// maintenance planned for today or later. A non-empty vehicleID narrows the
// projection to that vehicle. Projections within a week are flagged high
// urgency. Vehicles with nothing scheduled are omitted.
func (s *Service) NextMaintenances(ctx context.Context, now time.Time, vehicleID string) ([]domain.MaintenanceProjection, error) {
	var vehicles []domain.Vehicle
	if vehicleID != "" {
		v, err := s.vehicleRepo.FindByID(ctx, vehicleID)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, ErrVehicleNotFound
		}
		vehicles = []domain.Vehicle{*v}
	} else {
		all, err := s.vehicleRepo.FindAll(ctx, map[string]interface{}{"active": true})
		if err != nil {
			return nil, err
		}
		vehicles = all
	}

	today := dayStart(now)
	projections := make([]domain.MaintenanceProjection, 0, len(vehicles))
	for _, v := range vehicles {
		m, err := s.maintenanceRepo.FindEarliestPending(ctx, v.ID, today)
		if err != nil {
			return nil, err
		}
		if m == nil || m.PlannedDate == nil {
			continue
		}

		days := int(dayStart(*m.PlannedDate).Sub(today).Hours() / 24)
		urgency := domain.ProjectionUrgencyNormal
		if days <= urgentWindowDays {
			urgency = domain.ProjectionUrgencyHigh
		}

		p := domain.MaintenanceProjection{
			VehicleID:     v.ID,
			VehicleLabel:  v.Brand + " " + v.Model,
			MaintenanceID: m.ID,
			Title:         m.Title,
			ServiceType:   m.ServiceType,
			PlannedDate:   *m.PlannedDate,
			DaysUntil:     days,
			Urgency:       urgency,
			EstimatedCost: m.EstimatedCost,
		}
		if m.NextDueKm != nil {
			p.NextDueKm = m.NextDueKm
			// May go negative once the odometer passes the target.
			remaining := *m.NextDueKm - v.CurrentKm
			p.KmRemaining = &remaining
		}
		projections = append(projections, p)
	}

	sort.SliceStable(projections, func(i, j int) bool {
		return projections[i].PlannedDate.Before(projections[j].PlannedDate)
	})
	return projections, nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func monthLabel(t time.Time) string {
	return t.Format("01/2006")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
