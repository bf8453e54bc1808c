package repository

import "github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"

// PatientRepository define o porto de persistência de pacientes.
type PatientRepository interface {
	Create(patient *entity.Patient) error
	Update(patient *entity.Patient) error
	GetByID(id string) (*entity.Patient, error)
	List(limit, offset int) ([]*entity.Patient, error)
}
