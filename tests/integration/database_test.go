package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestDatabase_VehicleCRUD tests vehicle database operations
func TestDatabase_VehicleCRUD(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.DB == nil {
		t.Skip("Database not available")
	}

	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	ctx := context.Background()
	vehicleID := uuid.New().String()

	t.Run("CreateVehicle", func(t *testing.T) {
		_, err := env.DB.ExecContext(ctx, `
			INSERT INTO vehicles (id, model, brand, year, fuel_type, current_km, purchase_km, plate, chassis, renavam, active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		`, vehicleID, "CG 160 Titan", "Honda", 2023, "flex", 18450, 12, "BRA2E19", "9C2KC0850PR012345", "12345678901", true, time.Now())

		if err != nil {
			t.Fatalf("Failed to create vehicle: %v", err)
		}
	})

	t.Run("ReadVehicle", func(t *testing.T) {
		var model, brand, plate string
		err := env.DB.QueryRowContext(ctx, `
			SELECT model, brand, plate FROM vehicles WHERE id = $1
		`, vehicleID).Scan(&model, &brand, &plate)

		if err != nil {
			t.Fatalf("Failed to read vehicle: %v", err)
		}
		if model != "CG 160 Titan" {
			t.Errorf("Expected model 'CG 160 Titan', got '%s'", model)
		}
		if plate != "BRA2E19" {
			t.Errorf("Expected plate 'BRA2E19', got '%s'", plate)
		}
	})

	t.Run("PlateUniquenessLookup", func(t *testing.T) {
		var id string
		err := env.DB.QueryRowContext(ctx, `
			SELECT id FROM vehicles WHERE plate = $1
		`, "BRA2E19").Scan(&id)

		if err != nil {
			t.Fatalf("Failed to look up by plate: %v", err)
		}
		if id != vehicleID {
			t.Errorf("Expected vehicle '%s', got '%s'", vehicleID, id)
		}
	})

	t.Run("UpdateOdometer", func(t *testing.T) {
		_, err := env.DB.ExecContext(ctx, `
			UPDATE vehicles SET current_km = $1, updated_at = $2 WHERE id = $3
		`, 19200, time.Now(), vehicleID)

		if err != nil {
			t.Fatalf("Failed to update vehicle: %v", err)
		}

		var km int
		env.DB.QueryRowContext(ctx, `SELECT current_km FROM vehicles WHERE id = $1`, vehicleID).Scan(&km)
		if km != 19200 {
			t.Errorf("Expected odometer 19200, got %d", km)
		}
	})

	t.Run("SoftDelete", func(t *testing.T) {
		_, err := env.DB.ExecContext(ctx, `
			UPDATE vehicles SET active = FALSE, updated_at = $1 WHERE id = $2
		`, time.Now(), vehicleID)

		if err != nil {
			t.Fatalf("Failed to deactivate vehicle: %v", err)
		}

		var count int
		env.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM vehicles WHERE id = $1 AND active`, vehicleID).Scan(&count)
		if count != 0 {
			t.Error("Deactivated vehicle should not appear among active ones")
		}

		env.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM vehicles WHERE id = $1`, vehicleID).Scan(&count)
		if count != 1 {
			t.Error("Deactivation must not remove the row")
		}
	})
}

// TestDatabase_MaintenanceWithLineItems tests the maintenance aggregate
func TestDatabase_MaintenanceWithLineItems(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.DB == nil {
		t.Skip("Database not available")
	}

	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	ctx := context.Background()
	vehicleID := uuid.New().String()
	maintenanceID := uuid.New().String()

	env.DB.ExecContext(ctx, `
		INSERT INTO vehicles (id, model, brand, year, active, created_at, updated_at)
		VALUES ($1, 'Fazer 250', 'Yamaha', 2022, TRUE, $2, $2)
	`, vehicleID, time.Now())

	t.Run("CreateRecord", func(t *testing.T) {
		_, err := env.DB.ExecContext(ctx, `
			INSERT INTO maintenance_records (id, vehicle_id, category, service_type, status, title, odometer_km, actual_cost, completed_at, active, created_at, updated_at)
			VALUES ($1, $2, 'preventive', 'oil_change', 'completed', 'Troca de óleo', 29800, 145.90, $3, TRUE, $3, $3)
		`, maintenanceID, vehicleID, time.Now())

		if err != nil {
			t.Fatalf("Failed to create maintenance record: %v", err)
		}
	})

	t.Run("AttachLineItems", func(t *testing.T) {
		items := []struct {
			name      string
			quantity  float64
			unitPrice float64
		}{
			{"Óleo 10W30", 1.2, 54.90},
			{"Filtro de óleo", 1, 28.50},
		}
		for _, item := range items {
			_, err := env.DB.ExecContext(ctx, `
				INSERT INTO maintenance_line_items (id, maintenance_id, name, quantity, unit_price, line_total, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $4 * $5, $6, $6)
			`, uuid.New().String(), maintenanceID, item.name, item.quantity, item.unitPrice, time.Now())

			if err != nil {
				t.Fatalf("Failed to insert line item: %v", err)
			}
		}

		var count int
		env.DB.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM maintenance_line_items WHERE maintenance_id = $1
		`, maintenanceID).Scan(&count)
		if count != 2 {
			t.Errorf("Expected 2 line items, got %d", count)
		}
	})

	t.Run("LineTotalsSum", func(t *testing.T) {
		var total float64
		err := env.DB.QueryRowContext(ctx, `
			SELECT COALESCE(SUM(line_total), 0) FROM maintenance_line_items WHERE maintenance_id = $1
		`, maintenanceID).Scan(&total)

		if err != nil {
			t.Fatalf("Failed to sum line totals: %v", err)
		}
		want := 1.2*54.90 + 28.50
		if total < want-0.01 || total > want+0.01 {
			t.Errorf("Expected summed total %.2f, got %.2f", want, total)
		}
	})
}

// TestDatabase_MonthlySpendAggregation mirrors the reporting bucket query
func TestDatabase_MonthlySpendAggregation(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.DB == nil {
		t.Skip("Database not available")
	}

	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	ctx := context.Background()
	vehicleID := uuid.New().String()

	env.DB.ExecContext(ctx, `
		INSERT INTO vehicles (id, model, brand, year, active, created_at, updated_at)
		VALUES ($1, 'CG 160', 'Honda', 2023, TRUE, $2, $2)
	`, vehicleID, time.Now())

	now := time.Now()
	completions := []struct {
		completedAt time.Time
		cost        float64
	}{
		{now.AddDate(0, -2, 0), 200.00},
		{now.AddDate(0, -2, 0), 250.00},
		{now, 145.90},
	}
	for _, c := range completions {
		_, err := env.DB.ExecContext(ctx, `
			INSERT INTO maintenance_records (id, vehicle_id, category, service_type, status, title, actual_cost, completed_at, active, created_at, updated_at)
			VALUES ($1, $2, 'preventive', 'oil_change', 'completed', 'Manutenção', $3, $4, TRUE, $4, $4)
		`, uuid.New().String(), vehicleID, c.cost, c.completedAt)
		if err != nil {
			t.Fatalf("Failed to insert record: %v", err)
		}
	}

	since := now.AddDate(0, -5, 0)
	rows, err := env.DB.QueryContext(ctx, `
		SELECT date_trunc('month', completed_at) AS month,
		       COALESCE(SUM(actual_cost), 0) AS total,
		       COUNT(*) AS count
		FROM maintenance_records
		WHERE active AND completed_at IS NOT NULL AND completed_at >= $1
		GROUP BY month
		ORDER BY month ASC
	`, since)
	if err != nil {
		t.Fatalf("Aggregation query failed: %v", err)
	}
	defer rows.Close()

	type bucket struct {
		total float64
		count int
	}
	var buckets []bucket
	for rows.Next() {
		var month time.Time
		var b bucket
		if err := rows.Scan(&month, &b.total, &b.count); err != nil {
			t.Fatalf("Failed to scan bucket: %v", err)
		}
		buckets = append(buckets, b)
	}

	if len(buckets) != 2 {
		t.Fatalf("Expected 2 non-empty month buckets, got %d", len(buckets))
	}
	if buckets[0].total != 450.00 || buckets[0].count != 2 {
		t.Errorf("Expected oldest bucket 450.00/2, got %.2f/%d", buckets[0].total, buckets[0].count)
	}
	if buckets[1].total != 145.90 || buckets[1].count != 1 {
		t.Errorf("Expected current bucket 145.90/1, got %.2f/%d", buckets[1].total, buckets[1].count)
	}
}

// TestDatabase_AlertLifecycle tests alert status transitions
func TestDatabase_AlertLifecycle(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.DB == nil {
		t.Skip("Database not available")
	}

	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	ctx := context.Background()
	userID := uuid.New().String()
	alertID := uuid.New().String()

	env.DB.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password, role, status, created_at, updated_at)
		VALUES ($1, 'Admin', 'admin@frota.com', 'hash', 'admin', 'Active', $2, $2)
	`, userID, time.Now())

	t.Run("RaiseAlert", func(t *testing.T) {
		_, err := env.DB.ExecContext(ctx, `
			INSERT INTO alerts (id, user_id, type, severity, title, message, status, created_at)
			VALUES ($1, $2, 'maintenance', 'high', 'Revisão próxima', 'Kit relação em 5 dias', 'active', $3)
		`, alertID, userID, time.Now())

		if err != nil {
			t.Fatalf("Failed to raise alert: %v", err)
		}
	})

	t.Run("CountOpen", func(t *testing.T) {
		var count int
		err := env.DB.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM alerts WHERE user_id = $1 AND status IN ('active', 'read')
		`, userID).Scan(&count)

		if err != nil {
			t.Fatalf("Failed to count open alerts: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected 1 open alert, got %d", count)
		}
	})

	t.Run("Resolve", func(t *testing.T) {
		now := time.Now()
		_, err := env.DB.ExecContext(ctx, `
			UPDATE alerts SET status = 'resolved', read_at = $1, resolved_at = $1 WHERE id = $2
		`, now, alertID)

		if err != nil {
			t.Fatalf("Failed to resolve alert: %v", err)
		}

		var count int
		env.DB.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM alerts WHERE user_id = $1 AND status IN ('active', 'read')
		`, userID).Scan(&count)
		if count != 0 {
			t.Error("Resolved alert should not count as open")
		}
	})
}
