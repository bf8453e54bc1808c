package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/dto"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
)

// HospitalUseCase casos de uso de hospitais, UBS e suas unidades atendidas.
type HospitalUseCase struct {
	hospitalRepo repository.HospitalRepository
	unitRepo     repository.ServedUnitRepository
}

// NewHospitalUseCase constrói o caso de uso de hospitais.
func NewHospitalUseCase(hospitalRepo repository.HospitalRepository, unitRepo repository.ServedUnitRepository) *HospitalUseCase {
	return &HospitalUseCase{hospitalRepo: hospitalRepo, unitRepo: unitRepo}
}

// Create cadastra um hospital ou UBS. A natureza UBS é derivada do nome,
// não de um campo separado.
func (uc *HospitalUseCase) Create(in dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	hospital := &entity.Hospital{
		ID:        uuid.New().String(),
		Name:      name,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.hospitalRepo.Create(hospital); err != nil {
		return nil, err
	}
	return toHospitalResponse(hospital), nil
}

// Update atualiza nome e endereço de um hospital.
func (uc *HospitalUseCase) Update(id string, in dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	hospital, err := uc.hospitalRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, domain.ErrNotFound
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		hospital.Name = name
	}
	if in.Address != "" {
		hospital.Address = in.Address
	}
	hospital.UpdatedAt = time.Now()
	if err := uc.hospitalRepo.Update(hospital); err != nil {
		return nil, err
	}
	return toHospitalResponse(hospital), nil
}

// GetByID busca um hospital pelo ID.
func (uc *HospitalUseCase) GetByID(id string) (*dto.HospitalResponse, error) {
	hospital, err := uc.hospitalRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, domain.ErrNotFound
	}
	return toHospitalResponse(hospital), nil
}

// List lista todos os hospitais e UBS.
func (uc *HospitalUseCase) List() ([]dto.HospitalResponse, error) {
	hospitals, err := uc.hospitalRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.HospitalResponse, 0, len(hospitals))
	for _, h := range hospitals {
		out = append(out, *toHospitalResponse(h))
	}
	return out, nil
}

// CreateUnit cadastra uma unidade atendida dentro de um hospital existente.
func (uc *HospitalUseCase) CreateUnit(hospitalID string, in dto.CreateServedUnitRequest) (*dto.ServedUnitResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	hospital, err := uc.hospitalRepo.GetByID(hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	unit := &entity.ServedUnit{
		ID:         uuid.New().String(),
		HospitalID: hospitalID,
		Name:       name,
		Location:   in.Location,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.unitRepo.Create(unit); err != nil {
		return nil, err
	}
	return toServedUnitResponse(unit), nil
}

// ListUnits lista as unidades atendidas de um hospital.
func (uc *HospitalUseCase) ListUnits(hospitalID string) ([]dto.ServedUnitResponse, error) {
	hospital, err := uc.hospitalRepo.GetByID(hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, domain.ErrNotFound
	}
	units, err := uc.unitRepo.ListByHospital(hospitalID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServedUnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, *toServedUnitResponse(u))
	}
	return out, nil
}

func toHospitalResponse(h *entity.Hospital) *dto.HospitalResponse {
	return &dto.HospitalResponse{
		ID:        h.ID,
		Name:      h.Name,
		Address:   h.Address,
		IsUBS:     h.IsUBS(),
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func toServedUnitResponse(u *entity.ServedUnit) *dto.ServedUnitResponse {
	return &dto.ServedUnitResponse{
		ID:         u.ID,
		HospitalID: u.HospitalID,
		Name:       u.Name,
		Location:   u.Location,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
