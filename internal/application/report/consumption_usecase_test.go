package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelfarias/almoxarifado-api/internal/application/report"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
)

func consumptionMovement(itemID, itemName, hospitalID, unitID string, qty int64, date time.Time) *entity.StockMovement {
	return &entity.StockMovement{
		ID:         itemID + date.Format("20060102"),
		Type:       entity.MovementTypeConsumption,
		ItemID:     itemID,
		ItemName:   itemName,
		HospitalID: hospitalID,
		UnitID:     unitID,
		Quantity:   qty,
		Date:       date,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Relatório de consumo
// ──────────────────────────────────────────────────────────────────────────────

// Consumo de 10 dias com 50 unidades e estoque central de 100 deve dar média
// diária 5 e cobertura de 20 dias.
func TestConsumption_MediaDiariaECobertura(t *testing.T) {
	items := &fakeItemRepo{items: map[string]*entity.Item{
		"item-1": {ID: "item-1", Name: "Seringa 10ml", CurrentQuantityCentral: 100},
	}}
	configs := &fakeConfigRepo{configs: map[string]*entity.StockConfig{}}
	movements := &fakeMovementRepo{}

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 10)
	for d := 0; d < 10; d++ {
		movements.movements = append(movements.movements,
			consumptionMovement("item-1", "Seringa 10ml", "hosp-1", "unit-1", 5, from.AddDate(0, 0, d)))
	}

	uc := report.NewConsumptionUseCase(movements, items, configs)
	rows, err := uc.Report("", "", from, to)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, int64(50), rows[0].TotalConsumed, "total do período deve somar as 10 linhas")
	assert.True(t, rows[0].DailyAverage.Equal(decimal.NewFromInt(5)),
		"média diária deve ser 5, veio %s", rows[0].DailyAverage)
	assert.True(t, rows[0].CoverageDays.Equal(decimal.NewFromInt(20)),
		"cobertura deve ser 100/5 = 20 dias, veio %s", rows[0].CoverageDays)
}

// Com hospital informado, a cobertura usa o saldo dos locais do hospital e
// não o estoque central.
func TestConsumption_EscopoHospitalUsaSaldoDoHospital(t *testing.T) {
	items := &fakeItemRepo{items: map[string]*entity.Item{
		"item-1": {ID: "item-1", Name: "Luva M", CurrentQuantityCentral: 9999},
	}}
	configs := &fakeConfigRepo{configs: map[string]*entity.StockConfig{
		"item-1_unit-1": {Key: "item-1_unit-1", ItemID: "item-1", HospitalID: "hosp-1", UnitID: "unit-1", Quantity: 30},
		"item-1_unit-2": {Key: "item-1_unit-2", ItemID: "item-1", HospitalID: "hosp-1", UnitID: "unit-2", Quantity: 10},
	}}
	movements := &fakeMovementRepo{}

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 4)
	for d := 0; d < 4; d++ {
		movements.movements = append(movements.movements,
			consumptionMovement("item-1", "Luva M", "hosp-1", "unit-1", 5, from.AddDate(0, 0, d)))
	}

	uc := report.NewConsumptionUseCase(movements, items, configs)
	rows, err := uc.Report("hosp-1", "", from, to)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// 20 consumidas em 4 dias -> média 5; saldo do hospital 30+10=40 -> 8 dias
	assert.True(t, rows[0].DailyAverage.Equal(decimal.NewFromInt(5)))
	assert.True(t, rows[0].CoverageDays.Equal(decimal.NewFromInt(8)),
		"cobertura deve usar o saldo do hospital (40), não o central")
}

// Entradas e saídas não contam como consumo.
func TestConsumption_IgnoraEntradasESaidas(t *testing.T) {
	items := &fakeItemRepo{items: map[string]*entity.Item{
		"item-1": {ID: "item-1", Name: "Soro 500ml", CurrentQuantityCentral: 10},
	}}
	configs := &fakeConfigRepo{configs: map[string]*entity.StockConfig{}}
	date := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	movements := &fakeMovementRepo{movements: []*entity.StockMovement{
		{ID: "m1", Type: entity.MovementTypeEntry, ItemID: "item-1", ItemName: "Soro 500ml", Quantity: 100, Date: date},
		{ID: "m2", Type: entity.MovementTypeExit, ItemID: "item-1", ItemName: "Soro 500ml", HospitalID: "hosp-1", Quantity: 40, Date: date},
	}}

	uc := report.NewConsumptionUseCase(movements, items, configs)
	rows, err := uc.Report("", "", date.AddDate(0, 0, -1), date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, rows, "sem movimentos de consumo o relatório deve vir vazio")
}

// Período invertido é erro de entrada.
func TestConsumption_PeriodoInvertido_RetornaErro(t *testing.T) {
	uc := report.NewConsumptionUseCase(&fakeMovementRepo{},
		&fakeItemRepo{items: map[string]*entity.Item{}},
		&fakeConfigRepo{configs: map[string]*entity.StockConfig{}})

	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	_, err := uc.Report("", "", from, from.AddDate(0, 0, -5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
