package domain

import (
	"fmt"
	"time"
)

type FuelType string

const (
	FuelTypeGasoline FuelType = "gasoline"
	FuelTypeEthanol  FuelType = "ethanol"
	FuelTypeFlex     FuelType = "flex"
	FuelTypeElectric FuelType = "electric"
	FuelTypeDiesel   FuelType = "diesel"
)

// KnownBrands mirrors the brand catalog offered by the admin UI. Free-text
// brands are still accepted; this list only drives form suggestions.
var KnownBrands = []string{
	"Bajaj", "BMW", "Dafra", "Ducati", "Harley-Davidson", "Honda",
	"Husqvarna", "Kawasaki", "KTM", "Royal Enfield", "Shineray",
	"Suzuki", "Triumph", "Yamaha",
}

type Vehicle struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	Model        string     `json:"model"`
	Brand        string     `json:"brand" gorm:"index"`
	Year         int        `json:"year"`
	YearEnd      *int       `json:"year_end,omitempty"`
	Color        string     `json:"color,omitempty"`
	EngineSizeCC int        `json:"engine_size_cc,omitempty"`
	FuelType     FuelType   `json:"fuel_type,omitempty"`
	CurrentKm    int        `json:"current_km"`
	PurchaseKm   int        `json:"purchase_km"`
	Plate        string     `json:"plate,omitempty"`
	Chassis      string     `json:"chassis,omitempty"`
	Renavam      string     `json:"renavam,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	Active       bool       `json:"active" gorm:"default:true;index"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	CreatedBy    string     `json:"created_by,omitempty" gorm:"index"`
}

// VehiclePatch carries a partial update. A nil field means "leave as is",
// which keeps an absent JSON key distinguishable from a zero value.
type VehiclePatch struct {
	Model        *string    `json:"model"`
	Brand        *string    `json:"brand"`
	Year         *int       `json:"year"`
	YearEnd      *int       `json:"year_end"`
	Color        *string    `json:"color"`
	EngineSizeCC *int       `json:"engine_size_cc"`
	FuelType     *FuelType  `json:"fuel_type"`
	CurrentKm    *int       `json:"current_km"`
	PurchaseKm   *int       `json:"purchase_km"`
	Plate        *string    `json:"plate"`
	Chassis      *string    `json:"chassis"`
	Renavam      *string    `json:"renavam"`
	PurchaseDate *time.Time `json:"purchase_date"`
	Notes        *string    `json:"notes"`
}

// KmTraveled is the distance covered since acquisition. Write-time validation
// keeps CurrentKm >= PurchaseKm, so this never goes negative for stored rows.
func (v *Vehicle) KmTraveled() int {
	return v.CurrentKm - v.PurchaseKm
}

// YearDisplay renders "2023" or "2023/2024" for split model years.
func (v *Vehicle) YearDisplay() string {
	if v.YearEnd != nil {
		return fmt.Sprintf("%d/%d", v.Year, *v.YearEnd)
	}
	return fmt.Sprintf("%d", v.Year)
}
