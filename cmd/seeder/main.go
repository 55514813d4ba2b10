package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-repo/moto-frota/internal/adapter/storage/postgres"
	"github.com/seu-repo/moto-frota/internal/domain"
	"github.com/seu-repo/moto-frota/pkg/config"
)

var (
	databaseURL   = flag.String("database", "", "PostgreSQL URL (defaults to config/env)")
	adminEmail    = flag.String("admin-email", "admin@moto-frota.com", "Admin user email")
	adminPassword = flag.String("admin-password", "admin123", "Admin user password")
	withHistory   = flag.Bool("history", true, "Seed maintenance history alongside the fleet")
	verbose       = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	url := *databaseURL
	if url == "" {
		cfg, err := config.Load()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		url = cfg.Database.URL
	}
	if url == "" {
		logger.Fatal("No database URL provided (use -database or DATABASE_URL)")
	}

	db, err := postgres.NewConnection(url, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := postgres.RunMigrations(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	userRepo := postgres.NewUserRepository(db, logger)
	vehicleRepo := postgres.NewVehicleRepository(db, logger)
	maintenanceRepo := postgres.NewMaintenanceRepository(db, logger)

	// Admin user, idempotent on email.
	admin, err := userRepo.FindByEmail(ctx, *adminEmail)
	if err != nil {
		logger.Fatal("Failed to look up admin user", zap.Error(err))
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*adminPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Fatal("Failed to hash admin password", zap.Error(err))
		}
		admin = &domain.User{
			ID:            uuid.New().String(),
			Name:          "Administrador",
			Email:         *adminEmail,
			Password:      string(hash),
			Role:          domain.UserRoleAdmin,
			Status:        "Active",
			NotifyByEmail: true,
		}
		if err := userRepo.Save(ctx, admin); err != nil {
			logger.Fatal("Failed to create admin user", zap.Error(err))
		}
		logger.Info("Admin user created", zap.String("email", admin.Email))
	}

	vehicles := sampleFleet(admin.ID)
	created := 0
	for i := range vehicles {
		v := &vehicles[i]
		existing, err := vehicleRepo.FindByPlate(ctx, v.Plate)
		if err != nil {
			logger.Fatal("Failed to look up vehicle", zap.Error(err))
		}
		if existing != nil {
			vehicles[i] = *existing
			continue
		}
		if err := vehicleRepo.Save(ctx, v); err != nil {
			logger.Fatal("Failed to seed vehicle", zap.String("plate", v.Plate), zap.Error(err))
		}
		created++
	}
	logger.Info("Fleet seeded", zap.Int("created", created), zap.Int("total", len(vehicles)))

	if *withHistory {
		records := 0
		for _, m := range sampleHistory(vehicles, admin.ID) {
			record := m
			if err := maintenanceRepo.Save(ctx, &record); err != nil {
				logger.Fatal("Failed to seed maintenance record", zap.String("title", record.Title), zap.Error(err))
			}
			records++
		}
		logger.Info("Maintenance history seeded", zap.Int("records", records))
	}

	logger.Info("Seeding complete")
}

func sampleFleet(createdBy string) []domain.Vehicle {
	purchase := func(year, month, day int) *time.Time {
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
		return &t
	}
	return []domain.Vehicle{
		{
			ID: uuid.New().String(), Model: "CG 160 Titan", Brand: "Honda", Year: 2023,
			Color: "Vermelha", EngineSizeCC: 162, FuelType: domain.FuelTypeFlex,
			CurrentKm: 18450, PurchaseKm: 12, Plate: "BRA2E19",
			Chassis: "9C2KC0850PR012345", Renavam: "12345678901",
			PurchaseDate: purchase(2023, 2, 10), Active: true, CreatedBy: createdBy,
		},
		{
			ID: uuid.New().String(), Model: "Fazer 250", Brand: "Yamaha", Year: 2022,
			Color: "Azul", EngineSizeCC: 249, FuelType: domain.FuelTypeFlex,
			CurrentKm: 31200, PurchaseKm: 8500, Plate: "ABC-1234",
			Chassis: "9C6KE1520NR054321", Renavam: "98765432109",
			PurchaseDate: purchase(2022, 6, 3), Active: true, CreatedBy: createdBy,
		},
		{
			ID: uuid.New().String(), Model: "XRE 300", Brand: "Honda", Year: 2021,
			Color: "Preta", EngineSizeCC: 291, FuelType: domain.FuelTypeFlex,
			CurrentKm: 47800, PurchaseKm: 21000, Plate: "XYZ9A87",
			Chassis: "9C2ND1110MR067890", Renavam: "45678912305",
			PurchaseDate: purchase(2021, 11, 22), Active: true, CreatedBy: createdBy,
		},
		{
			ID: uuid.New().String(), Model: "GS500", Brand: "Suzuki", Year: 2009,
			Color: "Prata", EngineSizeCC: 487, FuelType: domain.FuelTypeGasoline,
			CurrentKm: 88900, PurchaseKm: 62000, Plate: "DEF-5678",
			Chassis: "JS1BK111972101234", Renavam: "32165498707",
			PurchaseDate: purchase(2019, 4, 15), Active: false,
			Notes: "Aposentada da frota, aguardando venda.", CreatedBy: createdBy,
		},
	}
}

func sampleHistory(fleet []domain.Vehicle, createdBy string) []domain.MaintenanceRecord {
	if len(fleet) < 2 {
		return nil
	}
	now := time.Now()
	monthsAgo := func(n int) *time.Time {
		t := now.AddDate(0, -n, 0)
		return &t
	}
	daysAhead := func(n int) *time.Time {
		t := now.AddDate(0, 0, n)
		return &t
	}
	cost := func(v float64) *float64 { return &v }

	return []domain.MaintenanceRecord{
		{
			ID: uuid.New().String(), VehicleID: fleet[0].ID,
			Category: domain.MaintenanceCategoryPreventive, ServiceType: "oil_change",
			Status: domain.MaintenanceStatusCompleted, Title: "Troca de óleo e filtro",
			OdometerKm: 15000, CompletedAt: monthsAgo(2), Shop: "Oficina do Zé",
			ActualCost: cost(145.90), Active: true, CreatedBy: createdBy,
			LineItems: []domain.MaintenanceLineItem{
				{ID: uuid.New().String(), Name: "Óleo 10W30 semissintético", Brand: "Mobil", Quantity: 1.2, UnitPrice: 54.90},
				{ID: uuid.New().String(), Name: "Filtro de óleo", Brand: "Fram", Quantity: 1, UnitPrice: 28.50},
			},
		},
		{
			ID: uuid.New().String(), VehicleID: fleet[1].ID,
			Category: domain.MaintenanceCategoryCorrective, ServiceType: "brakes",
			Status: domain.MaintenanceStatusCompleted, Title: "Pastilhas e fluido de freio",
			OdometerKm: 29800, CompletedAt: monthsAgo(1), Shop: "Moto Center",
			ActualCost: cost(312.00), Active: true, CreatedBy: createdBy,
			LineItems: []domain.MaintenanceLineItem{
				{ID: uuid.New().String(), Name: "Par de pastilhas dianteiras", Brand: "Cobreq", Quantity: 1, UnitPrice: 89.90},
				{ID: uuid.New().String(), Name: "Fluido DOT 4", Quantity: 2, UnitPrice: 24.00},
			},
		},
		{
			ID: uuid.New().String(), VehicleID: fleet[0].ID,
			Category: domain.MaintenanceCategoryPreventive, ServiceType: "chain_kit",
			Status: domain.MaintenanceStatusPlanned, Title: "Troca do kit relação",
			OdometerKm: 18450, PlannedDate: daysAhead(5), NextDueKm: intPtr(20000),
			EstimatedCost: cost(380.00), Active: true, CreatedBy: createdBy,
		},
		{
			ID: uuid.New().String(), VehicleID: fleet[1].ID,
			Category: domain.MaintenanceCategoryPreventive, ServiceType: "tires",
			Status: domain.MaintenanceStatusPlanned, Title: "Pneu traseiro",
			OdometerKm: 31200, PlannedDate: daysAhead(21),
			EstimatedCost: cost(520.00), Active: true, CreatedBy: createdBy,
		},
	}
}

func intPtr(v int) *int { return &v }
