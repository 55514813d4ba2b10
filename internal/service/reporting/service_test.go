package reporting

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/internal/mocks"
	"github.com/seu-repo/moto-frota/internal/ports"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func newTestService(
	vehicleRepo *mocks.MockVehicleRepository,
	maintenanceRepo *mocks.MockMaintenanceRepository,
	alertRepo *mocks.MockAlertRepository,
) ports.ReportingService {
	if vehicleRepo == nil {
		vehicleRepo = &mocks.MockVehicleRepository{}
	}
	if maintenanceRepo == nil {
		maintenanceRepo = &mocks.MockMaintenanceRepository{}
	}
	if alertRepo == nil {
		alertRepo = &mocks.MockAlertRepository{}
	}
	return NewService(vehicleRepo, maintenanceRepo, alertRepo, newTestLogger())
}

func TestMonthlySpend_ReturnsOnlyPopulatedMonths(t *testing.T) {
	// Arrange: a single month inside the window has data.
	ctx := context.Background()
	thisMonth := monthStart(time.Now())

	maintenanceRepo := &mocks.MockMaintenanceRepository{
		SumAndCountByMonthFunc: func(ctx context.Context, dateField ports.SpendDateField, since time.Time) ([]ports.MonthlyAgg, error) {
			if dateField != ports.SpendByCompletedAt {
				t.Errorf("expected completed_at bucketing, got %s", dateField)
			}
			return []ports.MonthlyAgg{
				{Month: thisMonth, Total: 145.90, Count: 1},
			}, nil
		},
	}
	service := newTestService(nil, maintenanceRepo, nil)

	// Act
	buckets, err := service.MonthlySpend(ctx, 6, ports.SpendByCompletedAt)

	// Assert: empty months are dropped, not zero-filled.
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	if buckets[0].Month != monthLabel(thisMonth) {
		t.Errorf("unexpected bucket label %q", buckets[0].Month)
	}
	if buckets[0].Total != 145.90 || buckets[0].Count != 1 {
		t.Errorf("unexpected bucket payload %+v", buckets[0])
	}
}

func TestMonthlySpend_KeepsRepositoryOrder(t *testing.T) {
	// Arrange: two populated months, oldest first from the repository.
	ctx := context.Background()
	thisMonth := monthStart(time.Now())
	threeBack := thisMonth.AddDate(0, -3, 0)

	maintenanceRepo := &mocks.MockMaintenanceRepository{
		SumAndCountByMonthFunc: func(ctx context.Context, dateField ports.SpendDateField, since time.Time) ([]ports.MonthlyAgg, error) {
			return []ports.MonthlyAgg{
				{Month: threeBack, Total: 450.00, Count: 3},
				{Month: thisMonth, Total: 145.90, Count: 1},
			}, nil
		},
	}
	service := newTestService(nil, maintenanceRepo, nil)

	// Act
	buckets, err := service.MonthlySpend(ctx, 6, ports.SpendByCompletedAt)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Month != monthLabel(threeBack) || buckets[0].Total != 450.00 {
		t.Errorf("unexpected first bucket %+v", buckets[0])
	}
	if buckets[1].Month != monthLabel(thisMonth) || buckets[1].Count != 1 {
		t.Errorf("unexpected second bucket %+v", buckets[1])
	}
}

func TestMonthlySpend_DefaultsToSixMonthWindow(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var gotSince time.Time
	maintenanceRepo := &mocks.MockMaintenanceRepository{
		SumAndCountByMonthFunc: func(ctx context.Context, dateField ports.SpendDateField, since time.Time) ([]ports.MonthlyAgg, error) {
			gotSince = since
			return nil, nil
		},
	}
	service := newTestService(nil, maintenanceRepo, nil)

	// Act
	buckets, err := service.MonthlySpend(ctx, 0, "")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(buckets) != 0 {
		t.Fatalf("expected no buckets without data, got %d", len(buckets))
	}
	wantSince := monthStart(time.Now()).AddDate(0, -5, 0)
	if !gotSince.Equal(wantSince) {
		t.Errorf("expected window start %s, got %s", wantSince, gotSince)
	}
}

func TestSpendByVehicle_IncludesZeroSpendVehicles(t *testing.T) {
	// Arrange: veh-3 is active but has no maintenance on file.
	ctx := context.Background()

	vehicleRepo := &mocks.MockVehicleRepository{
		FindAllFunc: func(ctx context.Context, filter map[string]interface{}) ([]domain.Vehicle, error) {
			if active, ok := filter["active"].(bool); !ok || !active {
				t.Error("expected the active fleet to be enumerated")
			}
			return []domain.Vehicle{
				{ID: "veh-1", Brand: "Honda", Model: "CG 160", Plate: "BRA2E19", CurrentKm: 5000, PurchaseKm: 5000, Active: true},
				{ID: "veh-2", Brand: "Yamaha", Model: "Fazer 250", Plate: "ABC-1234", CurrentKm: 12000, PurchaseKm: 3000, Active: true},
				{ID: "veh-3", Brand: "Suzuki", Model: "GS500", Plate: "DEF-5678", CurrentKm: 8000, PurchaseKm: 7000, Active: true},
			}, nil
		},
	}
	maintenanceRepo := &mocks.MockMaintenanceRepository{
		SumAndCountByVehicleFunc: func(ctx context.Context) ([]ports.VehicleAgg, error) {
			return []ports.VehicleAgg{
				{VehicleID: "veh-1", Total: 200.00, Count: 2},
				{VehicleID: "veh-2", Total: 900.00, Count: 3},
			}, nil
		},
	}
	service := newTestService(vehicleRepo, maintenanceRepo, nil)

	// Act
	result, err := service.SpendByVehicle(ctx)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("expected every active vehicle listed, got %d", len(result))
	}
	if result[0].VehicleID != "veh-2" {
		t.Errorf("expected highest spender first, got %s", result[0].VehicleID)
	}
	if result[0].Label != "Yamaha Fazer 250" {
		t.Errorf("unexpected label %q", result[0].Label)
	}
	if result[0].AverageCost != 300.00 {
		t.Errorf("expected average 300.00, got %.2f", result[0].AverageCost)
	}
	wantCostPerKm := 900.00 / 9000.0
	if result[0].CostPerKm != wantCostPerKm {
		t.Errorf("expected cost per km %.4f, got %.4f", wantCostPerKm, result[0].CostPerKm)
	}

	// The quiet vehicle still shows up, zeroed.
	last := result[2]
	if last.VehicleID != "veh-3" {
		t.Fatalf("expected veh-3 last, got %s", last.VehicleID)
	}
	if last.Total != 0 || last.Count != 0 || last.CostPerKm != 0 {
		t.Errorf("expected zeroed spend for veh-3, got %+v", last)
	}
	if last.Label != "Suzuki GS500" {
		t.Errorf("unexpected label %q", last.Label)
	}

	// The parked vehicle must not divide by zero.
	if result[1].VehicleID != "veh-1" {
		t.Fatalf("expected veh-1 second, got %s", result[1].VehicleID)
	}
	if result[1].CostPerKm != 0 {
		t.Errorf("expected zero cost per km for zero distance, got %.4f", result[1].CostPerKm)
	}
}

func TestSpendByCategory_Averages(t *testing.T) {
	// Arrange
	ctx := context.Background()

	maintenanceRepo := &mocks.MockMaintenanceRepository{
		GroupByServiceTypeFunc: func(ctx context.Context) ([]ports.CategoryAgg, error) {
			return []ports.CategoryAgg{
				{ServiceType: "oil_change", Count: 4, Total: 580.00},
				{ServiceType: "brakes", Count: 2, Total: 624.00},
			}, nil
		},
	}
	service := newTestService(nil, maintenanceRepo, nil)

	// Act
	result, err := service.SpendByCategory(ctx)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(result))
	}
	if result[0].Average != 145.00 {
		t.Errorf("expected average 145.00, got %.2f", result[0].Average)
	}
	if result[1].Average != 312.00 {
		t.Errorf("expected average 312.00, got %.2f", result[1].Average)
	}
}

func TestDashboard_ComposesSummary(t *testing.T) {
	// Arrange
	ctx := context.Background()

	vehicleRepo := &mocks.MockVehicleRepository{
		CountByActiveFunc: func(ctx context.Context) (int, int, error) {
			return 4, 3, nil
		},
		SumCurrentKmFunc: func(ctx context.Context, activeOnly bool) (int64, error) {
			if !activeOnly {
				t.Error("average km should consider active vehicles only")
			}
			return 97450, nil
		},
		CountByBrandFunc: func(ctx context.Context, limit int) ([]domain.BrandCount, error) {
			return []domain.BrandCount{{Brand: "Honda", Count: 2}, {Brand: "Yamaha", Count: 1}}, nil
		},
		FindLatestActiveFunc: func(ctx context.Context) (*domain.Vehicle, error) {
			return &domain.Vehicle{ID: "veh-9", Model: "XRE 300", Brand: "Honda", Plate: "XYZ9A87", Year: 2021}, nil
		},
	}
	maintenanceRepo := &mocks.MockMaintenanceRepository{
		CountAllFunc: func(ctx context.Context) (int, error) {
			return 11, nil
		},
		SumActualCostFunc: func(ctx context.Context) (float64, error) {
			return 1234.56, nil
		},
		CountCreatedSinceFunc: func(ctx context.Context, since time.Time) (int, error) {
			return 5, nil
		},
		CountPendingFunc: func(ctx context.Context) (int, error) {
			return 2, nil
		},
	}
	alertRepo := &mocks.MockAlertRepository{
		CountOpenAllFunc: func(ctx context.Context) (int, error) {
			return 7, nil
		},
	}
	service := newTestService(vehicleRepo, maintenanceRepo, alertRepo)

	// Act
	summary, err := service.Dashboard(ctx)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary.TotalVehicles != 4 || summary.ActiveVehicles != 3 {
		t.Errorf("unexpected vehicle counts: %d/%d", summary.ActiveVehicles, summary.TotalVehicles)
	}
	if summary.TotalMaintenance != 11 {
		t.Errorf("unexpected maintenance count %d", summary.TotalMaintenance)
	}
	if summary.TotalSpend != 1234.56 {
		t.Errorf("unexpected total spend %.2f", summary.TotalSpend)
	}
	wantAvg := 97450.0 / 3.0
	if summary.AverageKm != wantAvg {
		t.Errorf("expected average km %.2f, got %.2f", wantAvg, summary.AverageKm)
	}
	if summary.RecentCount != 5 {
		t.Errorf("unexpected recent count %d", summary.RecentCount)
	}
	if len(summary.MonthlySpend) != 6 {
		t.Errorf("expected 6 monthly buckets, got %d", len(summary.MonthlySpend))
	}
	if len(summary.TopBrands) != 2 || summary.TopBrands[0].Brand != "Honda" {
		t.Errorf("unexpected brand stats %+v", summary.TopBrands)
	}
	if summary.LatestVehicle == nil || summary.LatestVehicle.ID != "veh-9" {
		t.Error("expected latest vehicle snapshot")
	}
	if summary.PendingCount != 2 {
		t.Errorf("unexpected pending count %d", summary.PendingCount)
	}
	if summary.OpenAlertCount != 7 {
		t.Errorf("unexpected open alert count %d", summary.OpenAlertCount)
	}
}

func TestDashboard_SynthesizesContinuousBuckets(t *testing.T) {
	// Arrange: only two of the six trailing months have data. The dashboard
	// chart keeps a fixed axis, unlike the analysis endpoint.
	ctx := context.Background()
	thisMonth := monthStart(time.Now())
	threeBack := thisMonth.AddDate(0, -3, 0)

	maintenanceRepo := &mocks.MockMaintenanceRepository{
		SumAndCountByMonthFunc: func(ctx context.Context, dateField ports.SpendDateField, since time.Time) ([]ports.MonthlyAgg, error) {
			return []ports.MonthlyAgg{
				{Month: threeBack, Total: 450.00, Count: 3},
				{Month: thisMonth, Total: 145.90, Count: 1},
			}, nil
		},
	}
	service := newTestService(nil, maintenanceRepo, nil)

	// Act
	summary, err := service.Dashboard(ctx)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	buckets := summary.MonthlySpend
	if len(buckets) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(buckets))
	}

	// Oldest first, continuous labels.
	for i, b := range buckets {
		want := monthLabel(thisMonth.AddDate(0, i-5, 0))
		if b.Month != want {
			t.Errorf("bucket %d: expected label %s, got %s", i, want, b.Month)
		}
	}

	// Months without data are zeroed, not dropped.
	if buckets[0].Total != 0 || buckets[0].Count != 0 {
		t.Error("expected empty oldest bucket to be zeroed")
	}
	if buckets[2].Total != 450.00 || buckets[2].Count != 3 {
		t.Errorf("expected bucket three months back to carry data, got %+v", buckets[2])
	}
	if buckets[5].Total != 145.90 || buckets[5].Count != 1 {
		t.Errorf("expected current month bucket to carry data, got %+v", buckets[5])
	}
}

func TestDashboard_ZeroActiveVehicles(t *testing.T) {
	// Arrange: empty fleet must not divide by zero.
	ctx := context.Background()
	service := newTestService(&mocks.MockVehicleRepository{}, &mocks.MockMaintenanceRepository{}, &mocks.MockAlertRepository{})

	// Act
	summary, err := service.Dashboard(ctx)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary.AverageKm != 0 {
		t.Errorf("expected zero average km for empty fleet, got %.2f", summary.AverageKm)
	}
}

func TestDashboard_QueriesFreshEveryCall(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repoHits := 0
	vehicleRepo := &mocks.MockVehicleRepository{
		CountByActiveFunc: func(ctx context.Context) (int, int, error) {
			repoHits++
			return repoHits, repoHits, nil
		},
	}
	service := newTestService(vehicleRepo, nil, nil)

	// Act
	first, err := service.Dashboard(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := service.Dashboard(ctx)

	// Assert: the second call reflects the newer counts, nothing is reused.
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repoHits != 2 {
		t.Fatalf("expected 2 repository hits, got %d", repoHits)
	}
	if first.TotalVehicles != 1 || second.TotalVehicles != 2 {
		t.Errorf("expected fresh counts per call, got %d then %d", first.TotalVehicles, second.TotalVehicles)
	}
}

func TestNextMaintenances_UrgencyBoundary(t *testing.T) {
	// Arrange: one projection exactly at the 7-day edge, one beyond it.
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	in7 := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
	in8 := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)

	vehicleRepo := &mocks.MockVehicleRepository{
		FindAllFunc: func(ctx context.Context, filter map[string]interface{}) ([]domain.Vehicle, error) {
			return []domain.Vehicle{
				{ID: "veh-1", Brand: "Honda", Model: "CG 160", Active: true},
				{ID: "veh-2", Brand: "Yamaha", Model: "Fazer 250", Active: true},
				{ID: "veh-3", Brand: "Suzuki", Model: "GS500", Active: true},
			}, nil
		},
	}
	maintenanceRepo := &mocks.MockMaintenanceRepository{
		FindEarliestPendingFunc: func(ctx context.Context, vehicleID string, notBefore time.Time) (*domain.MaintenanceRecord, error) {
			switch vehicleID {
			case "veh-1":
				return &domain.MaintenanceRecord{ID: "m-1", VehicleID: vehicleID, Title: "Kit relação", ServiceType: "chain_kit", PlannedDate: &in7}, nil
			case "veh-2":
				return &domain.MaintenanceRecord{ID: "m-2", VehicleID: vehicleID, Title: "Pneu", ServiceType: "tires", PlannedDate: &in8}, nil
			}
			// veh-3 has nothing scheduled.
			return nil, nil
		},
	}
	service := newTestService(vehicleRepo, maintenanceRepo, nil)

	// Act
	projections, err := service.NextMaintenances(ctx, now, "")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(projections) != 2 {
		t.Fatalf("expected 2 projections, got %d", len(projections))
	}

	// Sorted by planned date: the 7-day one first.
	if projections[0].DaysUntil != 7 {
		t.Errorf("expected 7 days until, got %d", projections[0].DaysUntil)
	}
	if projections[0].Urgency != domain.ProjectionUrgencyHigh {
		t.Errorf("a projection 7 days out is urgent, got %s", projections[0].Urgency)
	}
	if projections[1].DaysUntil != 8 {
		t.Errorf("expected 8 days until, got %d", projections[1].DaysUntil)
	}
	if projections[1].Urgency != domain.ProjectionUrgencyNormal {
		t.Errorf("a projection 8 days out is not urgent, got %s", projections[1].Urgency)
	}
	if projections[0].VehicleLabel != "Honda CG 160" {
		t.Errorf("unexpected vehicle label %q", projections[0].VehicleLabel)
	}
}

func TestNextMaintenances_SameDayIsUrgent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	vehicleRepo := &mocks.MockVehicleRepository{
		FindAllFunc: func(ctx context.Context, filter map[string]interface{}) ([]domain.Vehicle, error) {
			return []domain.Vehicle{{ID: "veh-1", Brand: "Honda", Model: "CG 160", Active: true}}, nil
		},
	}
	maintenanceRepo := &mocks.MockMaintenanceRepository{
		FindEarliestPendingFunc: func(ctx context.Context, vehicleID string, notBefore time.Time) (*domain.MaintenanceRecord, error) {
			return &domain.MaintenanceRecord{ID: "m-1", VehicleID: vehicleID, PlannedDate: &today}, nil
		},
	}
	service := newTestService(vehicleRepo, maintenanceRepo, nil)

	// Act
	projections, err := service.NextMaintenances(ctx, now, "")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(projections) != 1 {
		t.Fatalf("expected 1 projection, got %d", len(projections))
	}
	if projections[0].DaysUntil != 0 {
		t.Errorf("expected 0 days until, got %d", projections[0].DaysUntil)
	}
	if projections[0].Urgency != domain.ProjectionUrgencyHigh {
		t.Error("same-day maintenance is urgent")
	}
}

func TestNextMaintenances_KmRemaining(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	planned := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	nextDue := 20000

	vehicleRepo := &mocks.MockVehicleRepository{
		FindAllFunc: func(ctx context.Context, filter map[string]interface{}) ([]domain.Vehicle, error) {
			return []domain.Vehicle{{ID: "veh-1", Brand: "Honda", Model: "CG 160", CurrentKm: 18450, Active: true}}, nil
		},
	}
	maintenanceRepo := &mocks.MockMaintenanceRepository{
		FindEarliestPendingFunc: func(ctx context.Context, vehicleID string, notBefore time.Time) (*domain.MaintenanceRecord, error) {
			return &domain.MaintenanceRecord{
				ID:          "m-1",
				VehicleID:   vehicleID,
				Title:       "Kit relação",
				ServiceType: "chain_kit",
				PlannedDate: &planned,
				NextDueKm:   &nextDue,
			}, nil
		},
	}
	service := newTestService(vehicleRepo, maintenanceRepo, nil)

	// Act
	projections, err := service.NextMaintenances(ctx, now, "")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(projections) != 1 {
		t.Fatalf("expected 1 projection, got %d", len(projections))
	}
	p := projections[0]
	if p.NextDueKm == nil || *p.NextDueKm != 20000 {
		t.Error("expected next due km to be carried through")
	}
	if p.KmRemaining == nil || *p.KmRemaining != 1550 {
		t.Errorf("expected 1550 km remaining, got %v", p.KmRemaining)
	}
}

func TestNextMaintenances_ScopedToVehicle(t *testing.T) {
	// Arrange
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	planned := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	vehicleRepo := &mocks.MockVehicleRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Vehicle, error) {
			if id != "veh-2" {
				t.Errorf("unexpected lookup for %s", id)
			}
			return &domain.Vehicle{ID: id, Brand: "Yamaha", Model: "Fazer 250", Active: true}, nil
		},
		FindAllFunc: func(ctx context.Context, filter map[string]interface{}) ([]domain.Vehicle, error) {
			t.Error("a scoped projection must not enumerate the fleet")
			return nil, nil
		},
	}
	maintenanceRepo := &mocks.MockMaintenanceRepository{
		FindEarliestPendingFunc: func(ctx context.Context, vehicleID string, notBefore time.Time) (*domain.MaintenanceRecord, error) {
			return &domain.MaintenanceRecord{ID: "m-2", VehicleID: vehicleID, Title: "Pneu", PlannedDate: &planned}, nil
		},
	}
	service := newTestService(vehicleRepo, maintenanceRepo, nil)

	// Act
	projections, err := service.NextMaintenances(ctx, now, "veh-2")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(projections) != 1 {
		t.Fatalf("expected 1 projection, got %d", len(projections))
	}
	if projections[0].VehicleID != "veh-2" {
		t.Errorf("expected veh-2 projection, got %s", projections[0].VehicleID)
	}
}

func TestNextMaintenances_UnknownVehicle(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := newTestService(&mocks.MockVehicleRepository{}, nil, nil)

	// Act
	_, err := service.NextMaintenances(ctx, time.Now(), "ghost")

	// Assert
	if err != ErrVehicleNotFound {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}
