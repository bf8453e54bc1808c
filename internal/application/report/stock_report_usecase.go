package report

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelfarias/almoxarifado-api/internal/application/dto"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
)

const centralLabel = "Almoxarifado Central"

// StockReportUseCase gera a posição de estoque por hospital ou do
// almoxarifado central, com sinalização de mínimo e estoque estratégico.
type StockReportUseCase struct {
	itemRepo     repository.ItemRepository
	hospitalRepo repository.HospitalRepository
	unitRepo     repository.ServedUnitRepository
	configRepo   repository.StockConfigRepository
	pdfGen       StockReportPDFGenerator
}

// NewStockReportUseCase constrói o caso de uso de posição de estoque.
func NewStockReportUseCase(
	itemRepo repository.ItemRepository,
	hospitalRepo repository.HospitalRepository,
	unitRepo repository.ServedUnitRepository,
	configRepo repository.StockConfigRepository,
	pdfGen StockReportPDFGenerator,
) *StockReportUseCase {
	return &StockReportUseCase{
		itemRepo:     itemRepo,
		hospitalRepo: hospitalRepo,
		unitRepo:     unitRepo,
		configRepo:   configRepo,
		pdfGen:       pdfGen,
	}
}

// HospitalPosition devolve a posição de todos os itens já abastecidos no
// hospital, uma linha por local (unidade ou estoque geral).
func (uc *StockReportUseCase) HospitalPosition(hospitalID string) (*dto.StockPositionReport, error) {
	hospital, err := uc.hospitalRepo.GetByID(hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, domain.ErrNotFound
	}
	configs, err := uc.configRepo.ListByHospital(hospitalID)
	if err != nil {
		return nil, err
	}

	itemCache := map[string]*entity.Item{}
	unitCache := map[string]*entity.ServedUnit{}

	rows := make([]dto.StockPositionRow, 0, len(configs))
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
			continue // item removido do catálogo, registro órfão
		}
		locationName := fmt.Sprintf("Estoque Geral (%s)", hospital.Name)
		if cfg.UnitID != "" {
			unit, ok := unitCache[cfg.UnitID]
			if !ok {
				unit, err = uc.unitRepo.GetByID(cfg.UnitID)
				if err != nil {
					return nil, err
				}
				unitCache[cfg.UnitID] = unit
			}
			if unit != nil {
				locationName = unit.Name
			} else {
				locationName = cfg.UnitID
			}
		}
		rows = append(rows, dto.StockPositionRow{
			ItemID:            item.ID,
			ItemName:          item.Name,
			UnitMeasure:       item.UnitMeasure,
			HospitalID:        hospitalID,
			LocationName:      locationName,
			Quantity:          cfg.Quantity,
			MinQuantity:       cfg.MinQuantity,
			StrategicQuantity: cfg.StrategicQuantity,
			BelowMinimum:      cfg.MinQuantity > 0 && cfg.Quantity <= cfg.MinQuantity,
			BelowStrategic:    cfg.StrategicQuantity > 0 && cfg.Quantity <= cfg.StrategicQuantity,
		})
	}
	return &dto.StockPositionReport{
		HospitalID:   hospitalID,
		HospitalName: hospital.Name,
		Rows:         rows,
	}, nil
}

// CentralPosition devolve a posição do almoxarifado central, uma linha por
// item do catálogo.
func (uc *StockReportUseCase) CentralPosition() (*dto.StockPositionReport, error) {
	const pageSize = 200
	rows := []dto.StockPositionRow{}
	for offset := 0; ; offset += pageSize {
		items, err := uc.itemRepo.List(pageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			rows = append(rows, dto.StockPositionRow{
				ItemID:       item.ID,
				ItemName:     item.Name,
				UnitMeasure:  item.UnitMeasure,
				LocationName: centralLabel,
				Quantity:     item.CurrentQuantityCentral,
				MinQuantity:  item.MinQuantity,
				BelowMinimum: item.MinQuantity > 0 && item.CurrentQuantityCentral <= item.MinQuantity,
			})
		}
		if len(items) < pageSize {
			break
		}
	}
	return &dto.StockPositionReport{HospitalName: centralLabel, Rows: rows}, nil
}

// HospitalPositionPDF gera o relatório de posição do hospital em PDF.
func (uc *StockReportUseCase) HospitalPositionPDF(ctx context.Context, hospitalID string) ([]byte, error) {
	position, err := uc.HospitalPosition(hospitalID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateStockPositionPDF(ctx, position, time.Now())
}

// CentralPositionPDF gera o relatório de posição do central em PDF.
func (uc *StockReportUseCase) CentralPositionPDF(ctx context.Context) ([]byte, error) {
	position, err := uc.CentralPosition()
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateStockPositionPDF(ctx, position, time.Now())
}
