package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafaelfarias/almoxarifado-api/internal/application/dto"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
)

// ConsumptionUseCase agrega o consumo confirmado por item em um período e
// projeta média diária e dias de cobertura do estoque atual.
type ConsumptionUseCase struct {
	movementRepo repository.StockMovementRepository
	itemRepo     repository.ItemRepository
	configRepo   repository.StockConfigRepository
}

// NewConsumptionUseCase constrói o caso de uso de consumo.
func NewConsumptionUseCase(
	movementRepo repository.StockMovementRepository,
	itemRepo repository.ItemRepository,
	configRepo repository.StockConfigRepository,
) *ConsumptionUseCase {
	return &ConsumptionUseCase{
		movementRepo: movementRepo,
		itemRepo:     itemRepo,
		configRepo:   configRepo,
	}
}

// Report calcula o consumo por item no período. hospitalID/unitID vazios
// consideram o sistema inteiro; a cobertura usa o estoque do escopo pedido
// (central quando nenhum hospital é informado).
func (uc *ConsumptionUseCase) Report(hospitalID, unitID string, from, to time.Time) ([]dto.ConsumptionRow, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	totals, err := uc.movementRepo.SumConsumption(hospitalID, unitID, from, to)
	if err != nil {
		return nil, err
	}

	// Ao menos um dia, para o consumo do próprio dia não dividir por zero.
	days := decimal.NewFromFloat(to.Sub(from).Hours() / 24).Ceil()
	if days.LessThan(decimal.NewFromInt(1)) {
		days = decimal.NewFromInt(1)
	}

	rows := make([]dto.ConsumptionRow, 0, len(totals))
	for _, t := range totals {
		avg := decimal.NewFromInt(t.Total).Div(days).Round(2)

		current, err := uc.currentStock(t.ItemID, hospitalID, unitID)
		if err != nil {
			return nil, err
		}
		coverage := decimal.Zero
		if avg.GreaterThan(decimal.Zero) {
			coverage = decimal.NewFromInt(current).Div(avg).Round(1)
		}
		rows = append(rows, dto.ConsumptionRow{
			ItemID:        t.ItemID,
			ItemName:      t.ItemName,
			TotalConsumed: t.Total,
			DailyAverage:  avg,
			CoverageDays:  coverage,
		})
	}
	return rows, nil
}

// currentStock devolve o saldo atual do item no escopo do relatório.
func (uc *ConsumptionUseCase) currentStock(itemID, hospitalID, unitID string) (int64, error) {
	if hospitalID == "" {
		item, err := uc.itemRepo.GetByID(itemID)
		if err != nil {
			return 0, err
		}
		if item == nil {
			return 0, nil
		}
		return item.CurrentQuantityCentral, nil
	}
	configs, err := uc.configRepo.ListByHospital(hospitalID)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, cfg := range configs {
		if cfg.ItemID != itemID {
			continue
		}
		if unitID != "" && cfg.UnitID != unitID {
			continue
		}
		total += cfg.Quantity
	}
	return total, nil
}
