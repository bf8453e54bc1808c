package movement

import (
	"github.com/rafaelfarias/almoxarifado-api/internal/application/dto"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
)

// HistoryUseCase consulta o histórico de movimentos. Leitura pura sobre o
// registro de auditoria; nenhum caminho daqui altera quantidades.
type HistoryUseCase struct {
	movementRepo repository.StockMovementRepository
}

// NewHistoryUseCase constrói o caso de uso de histórico.
func NewHistoryUseCase(movementRepo repository.StockMovementRepository) *HistoryUseCase {
	return &HistoryUseCase{movementRepo: movementRepo}
}

// List devolve os movimentos que batem com o filtro, mais recentes primeiro.
func (uc *HistoryUseCase) List(filter repository.MovementFilter) ([]dto.MovementResponse, error) {
	if filter.Type != "" && !entity.ValidMovementType(filter.Type) {
		return nil, domain.ErrInvalidInput
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	movements, err := uc.movementRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:           m.ID,
			ItemID:       m.ItemID,
			ItemName:     m.ItemName,
			Type:         m.Type,
			Quantity:     m.Quantity,
			Date:         m.Date,
			HospitalID:   m.HospitalID,
			HospitalName: m.HospitalName,
			UnitID:       m.UnitID,
			UnitName:     m.UnitName,
			PatientID:    m.PatientID,
			PatientName:  m.PatientName,
			Notes:        m.Notes,
			UserID:       m.UserID,
			UserName:     m.UserName,
			CreatedAt:    m.CreatedAt,
		})
	}
	return out, nil
}
