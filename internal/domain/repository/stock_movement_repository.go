package repository

import (
	"time"

	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
)

// MovementFilter filtros do histórico de movimentos.
type MovementFilter struct {
	ItemID     string
	HospitalID string
	UnitID     string
	Type       string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// ConsumptionTotal agregado de consumo de um item em um período.
type ConsumptionTotal struct {
	ItemID   string
	ItemName string
	Total    int64
}

// StockMovementRepository define o porto do registro de auditoria.
// Os movimentos são append-only: não há Update nem Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List(filter MovementFilter) ([]*entity.StockMovement, error)
	// SumConsumption agrega o consumo por item no período, opcionalmente
	// restrito a um hospital/unidade.
	SumConsumption(hospitalID, unitID string, from, to time.Time) ([]ConsumptionTotal, error)
}
