package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/dto"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
	"github.com/rafaelfarias/almoxarifado-api/pkg/cns"
)

// PatientUseCase casos de uso de pacientes. O CNS (Cartão Nacional de Saúde)
// é validado pelo módulo 11 antes de qualquer persistência.
type PatientUseCase struct {
	patientRepo  repository.PatientRepository
	hospitalRepo repository.HospitalRepository
}

// NewPatientUseCase constrói o caso de uso de pacientes.
func NewPatientUseCase(patientRepo repository.PatientRepository, hospitalRepo repository.HospitalRepository) *PatientUseCase {
	return &PatientUseCase{patientRepo: patientRepo, hospitalRepo: hospitalRepo}
}

// Create cadastra um paciente. A UBS de referência, quando informada,
// precisa existir e de fato ser uma UBS.
func (uc *PatientUseCase) Create(in dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	number := cns.Clean(in.CNS)
	if !cns.IsValid(number) {
		return nil, domain.ErrInvalidCNS
	}
	birthDate, err := time.Parse("2006-01-02", in.BirthDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.RegisteredUBSID != "" {
		hospital, err := uc.hospitalRepo.GetByID(in.RegisteredUBSID)
		if err != nil {
			return nil, err
		}
		if hospital == nil {
			return nil, domain.ErrNotFound
		}
		if !hospital.IsUBS() {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	patient := &entity.Patient{
		ID:              uuid.New().String(),
		Name:            name,
		BirthDate:       birthDate,
		CNS:             number,
		RegisteredUBSID: in.RegisteredUBSID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.patientRepo.Create(patient); err != nil {
		return nil, err
	}
	return toPatientResponse(patient), nil
}

// Update atualiza um paciente. CNS novo passa pela mesma validação do cadastro.
func (uc *PatientUseCase) Update(id string, in dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := uc.patientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrNotFound
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		patient.Name = name
	}
	if in.CNS != "" {
		number := cns.Clean(in.CNS)
		if !cns.IsValid(number) {
			return nil, domain.ErrInvalidCNS
		}
		patient.CNS = number
	}
	if in.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", in.BirthDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		patient.BirthDate = birthDate
	}
	if in.RegisteredUBSID != "" {
		hospital, err := uc.hospitalRepo.GetByID(in.RegisteredUBSID)
		if err != nil {
			return nil, err
		}
		if hospital == nil {
			return nil, domain.ErrNotFound
		}
		if !hospital.IsUBS() {
			return nil, domain.ErrInvalidInput
		}
		patient.RegisteredUBSID = in.RegisteredUBSID
	}
	patient.UpdatedAt = time.Now()
	if err := uc.patientRepo.Update(patient); err != nil {
		return nil, err
	}
	return toPatientResponse(patient), nil
}

// GetByID busca um paciente pelo ID.
func (uc *PatientUseCase) GetByID(id string) (*dto.PatientResponse, error) {
	patient, err := uc.patientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrNotFound
	}
	return toPatientResponse(patient), nil
}

// List lista pacientes paginados.
func (uc *PatientUseCase) List(page dto.PageRequest) ([]dto.PatientResponse, error) {
	page.DefaultPage()
	patients, err := uc.patientRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PatientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, *toPatientResponse(p))
	}
	return out, nil
}

func toPatientResponse(p *entity.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:              p.ID,
		Name:            p.Name,
		BirthDate:       p.BirthDate,
		CNS:             p.CNS,
		RegisteredUBSID: p.RegisteredUBSID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
