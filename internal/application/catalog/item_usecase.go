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

// ItemUseCase casos de uso do catálogo de insumos.
type ItemUseCase struct {
	itemRepo repository.ItemRepository
}

// NewItemUseCase constrói o caso de uso de insumos.
func NewItemUseCase(itemRepo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo}
}

// Create cadastra um insumo. O código é único; o estoque central nasce zerado
// e só muda pelo motor de movimentação.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	code := strings.TrimSpace(in.Code)
	if name == "" || code == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.itemRepo.GetByCode(code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Name:        name,
		Code:        code,
		UnitMeasure: in.UnitMeasure,
		MinQuantity: in.MinQuantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update aplica atualização parcial de um insumo.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Code != nil {
		code := strings.TrimSpace(*in.Code)
		if code == "" {
			return nil, domain.ErrInvalidInput
		}
		if code != item.Code {
			existing, _ := uc.itemRepo.GetByCode(code)
			if existing != nil && existing.ID != item.ID {
				return nil, domain.ErrDuplicate
			}
			item.Code = code
		}
	}
	if in.UnitMeasure != nil {
		item.UnitMeasure = *in.UnitMeasure
	}
	if in.MinQuantity != nil {
		if *in.MinQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.MinQuantity = *in.MinQuantity
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID busca um insumo pelo ID.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List lista insumos paginados.
func (uc *ItemUseCase) List(page dto.PageRequest) ([]dto.ItemResponse, error) {
	page.DefaultPage()
	items, err := uc.itemRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:                     it.ID,
		Name:                   it.Name,
		Code:                   it.Code,
		UnitMeasure:            it.UnitMeasure,
		MinQuantity:            it.MinQuantity,
		CurrentQuantityCentral: it.CurrentQuantityCentral,
		CreatedAt:              it.CreatedAt,
		UpdatedAt:              it.UpdatedAt,
	}
}
