package report

import (
	"fmt"

	"github.com/rafaelfarias/almoxarifado-api/internal/application/dto"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
)

// AlertsUseCase lista itens no limite mínimo ou abaixo, no central e em
// qualquer local já abastecido.
type AlertsUseCase struct {
	itemRepo     repository.ItemRepository
	configRepo   repository.StockConfigRepository
	hospitalRepo repository.HospitalRepository
	unitRepo     repository.ServedUnitRepository
}

// NewAlertsUseCase constrói o caso de uso de alertas de reposição.
func NewAlertsUseCase(
	itemRepo repository.ItemRepository,
	configRepo repository.StockConfigRepository,
	hospitalRepo repository.HospitalRepository,
	unitRepo repository.ServedUnitRepository,
) *AlertsUseCase {
	return &AlertsUseCase{
		itemRepo:     itemRepo,
		configRepo:   configRepo,
		hospitalRepo: hospitalRepo,
		unitRepo:     unitRepo,
	}
}

// MinimumAlerts devolve os alertas do central seguidos dos alertas por local.
// Locais nunca abastecidos não aparecem: ausência de registro não é zero.
func (uc *AlertsUseCase) MinimumAlerts() ([]dto.MinimumAlertRow, error) {
	alerts := []dto.MinimumAlertRow{}

	centralItems, err := uc.itemRepo.ListBelowMinimumCentral()
	if err != nil {
		return nil, err
	}
	for _, item := range centralItems {
		alerts = append(alerts, dto.MinimumAlertRow{
			ItemID:       item.ID,
			ItemName:     item.Name,
			LocationName: centralLabel,
			Quantity:     item.CurrentQuantityCentral,
			MinQuantity:  item.MinQuantity,
			Deficit:      item.MinQuantity - item.CurrentQuantityCentral,
		})
	}

	configs, err := uc.configRepo.ListBelowMinimum()
	if err != nil {
		return nil, err
	}
	itemCache := map[string]*entity.Item{}
	for _, cfg := range configs {
		item, ok := itemCache[cfg.ItemID]
		if !ok {
			item, err = uc.itemRepo.GetByID(cfg.ItemID)
			if err != nil {
				return nil, err
			}
			itemCache[cfg.ItemID] = item
		}
		if item == nil {
			continue
		}
		alerts = append(alerts, dto.MinimumAlertRow{
			ItemID:       item.ID,
			ItemName:     item.Name,
			LocationName: uc.locationName(cfg),
			Quantity:     cfg.Quantity,
			MinQuantity:  cfg.MinQuantity,
			Deficit:      cfg.MinQuantity - cfg.Quantity,
		})
	}
	return alerts, nil
}

func (uc *AlertsUseCase) locationName(cfg *entity.StockConfig) string {
	if cfg.UnitID != "" {
		unit, _ := uc.unitRepo.GetByID(cfg.UnitID)
		if unit != nil {
			return unit.Name
		}
		return cfg.UnitID
	}
	hospital, _ := uc.hospitalRepo.GetByID(cfg.HospitalID)
	if hospital != nil {
		return fmt.Sprintf("Estoque Geral (%s)", hospital.Name)
	}
	return cfg.HospitalID
}
