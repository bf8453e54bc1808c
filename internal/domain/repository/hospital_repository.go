package repository

import "github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"

// HospitalRepository define o porto de persistência de hospitais e UBS.
type HospitalRepository interface {
	Create(hospital *entity.Hospital) error
	Update(hospital *entity.Hospital) error
	GetByID(id string) (*entity.Hospital, error)
	List() ([]*entity.Hospital, error)
}
