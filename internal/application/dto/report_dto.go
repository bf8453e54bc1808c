package dto

import "github.com/shopspring/decimal"

// StockPositionRow posição de estoque de um item em um local.
type StockPositionRow struct {
	ItemID            string `json:"item_id"`
	ItemName          string `json:"item_name"`
	UnitMeasure       string `json:"unit_measure"`
	HospitalID        string `json:"hospital_id,omitempty"`
	LocationName      string `json:"location_name"` // unidade, "Estoque Geral (X)" ou "Almoxarifado Central"
	Quantity          int64  `json:"quantity"`
	MinQuantity       int64  `json:"min_quantity"`
	StrategicQuantity int64  `json:"strategic_quantity"`
	BelowMinimum      bool   `json:"below_minimum"`
	BelowStrategic    bool   `json:"below_strategic"`
}

// StockPositionReport posição de estoque de um hospital (ou do central).
type StockPositionReport struct {
	HospitalID   string             `json:"hospital_id,omitempty"`
	HospitalName string             `json:"hospital_name"`
	Rows         []StockPositionRow `json:"rows"`
}

// ConsumptionRow consumo agregado de um item no período, com média diária
// e cobertura estimada do estoque atual.
type ConsumptionRow struct {
	ItemID        string          `json:"item_id"`
	ItemName      string          `json:"item_name"`
	TotalConsumed int64           `json:"total_consumed"`
	DailyAverage  decimal.Decimal `json:"daily_average"`
	CoverageDays  decimal.Decimal `json:"coverage_days"` // estoque atual / média diária
}

// MinimumAlertRow item no limite mínimo ou abaixo em algum local.
type MinimumAlertRow struct {
	ItemID       string `json:"item_id"`
	ItemName     string `json:"item_name"`
	LocationName string `json:"location_name"`
	Quantity     int64  `json:"quantity"`
	MinQuantity  int64  `json:"min_quantity"`
	Deficit      int64  `json:"deficit"` // MinQuantity - Quantity
}
