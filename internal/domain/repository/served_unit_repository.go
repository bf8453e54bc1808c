package repository

import "github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"

// ServedUnitRepository define o porto de persistência de unidades atendidas.
type ServedUnitRepository interface {
	Create(unit *entity.ServedUnit) error
	Update(unit *entity.ServedUnit) error
	GetByID(id string) (*entity.ServedUnit, error)
	ListByHospital(hospitalID string) ([]*entity.ServedUnit, error)
}
