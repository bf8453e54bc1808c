package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelfarias/almoxarifado-api/internal/application/catalog"
	"github.com/rafaelfarias/almoxarifado-api/internal/application/dto"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
)

// fakeItemRepo fake em memória do repositório de insumos.
type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]*entity.Item{}}
}

func (r *fakeItemRepo) Create(item *entity.Item) error { r.items[item.ID] = item; return nil }
func (r *fakeItemRepo) Update(item *entity.Item) error { r.items[item.ID] = item; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	if item, ok := r.items[id]; ok {
		return item, nil
	}
	return nil, nil
}
func (r *fakeItemRepo) GetByCode(code string) (*entity.Item, error) {
	for _, item := range r.items {
		if item.Code == code {
			return item, nil
		}
	}
	return nil, nil
}
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) { return r.GetByID(id) }
func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	var list []*entity.Item
	for _, item := range r.items {
		list = append(list, item)
	}
	return list, nil
}
func (r *fakeItemRepo) UpdateCentralQuantity(id string, quantity int64) error {
	r.items[id].CurrentQuantityCentral = quantity
	return nil
}
func (r *fakeItemRepo) ListBelowMinimumCentral() ([]*entity.Item, error) { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo de insumos
// ──────────────────────────────────────────────────────────────────────────────

func TestItemCreate_EstoqueCentralNasceZerado(t *testing.T) {
	uc := catalog.NewItemUseCase(newFakeItemRepo())

	out, err := uc.Create(dto.CreateItemRequest{
		Name:        "Seringa descartável 10ml",
		Code:        "SER-10ML",
		UnitMeasure: "unidade",
		MinQuantity: 500,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "SER-10ML", out.Code)
	assert.Equal(t, int64(0), out.CurrentQuantityCentral,
		"insumo novo deve nascer sem estoque central")
}

func TestItemCreate_CodigoDuplicado_RetornaConflito(t *testing.T) {
	repo := newFakeItemRepo()
	uc := catalog.NewItemUseCase(repo)

	_, err := uc.Create(dto.CreateItemRequest{Name: "Luva M", Code: "LUV-M"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateItemRequest{Name: "Luva média", Code: "LUV-M"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "código repetido deve ser rejeitado")
}

func TestItemCreate_SemNomeOuCodigo_RetornaErro(t *testing.T) {
	uc := catalog.NewItemUseCase(newFakeItemRepo())

	_, err := uc.Create(dto.CreateItemRequest{Name: "  ", Code: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateItemRequest{Name: "Gaze", Code: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemUpdate_Parcial_PreservaDemaisCampos(t *testing.T) {
	repo := newFakeItemRepo()
	uc := catalog.NewItemUseCase(repo)

	created, err := uc.Create(dto.CreateItemRequest{
		Name:        "Soro fisiológico 500ml",
		Code:        "SF-500",
		UnitMeasure: "frasco",
		MinQuantity: 200,
	})
	require.NoError(t, err)

	newMin := int64(300)
	out, err := uc.Update(created.ID, dto.UpdateItemRequest{MinQuantity: &newMin})
	require.NoError(t, err)

	assert.Equal(t, int64(300), out.MinQuantity)
	assert.Equal(t, "Soro fisiológico 500ml", out.Name, "campos não enviados devem ficar como estavam")
	assert.Equal(t, "SF-500", out.Code)
}

func TestItemUpdate_CodigoDeOutroInsumo_RetornaConflito(t *testing.T) {
	repo := newFakeItemRepo()
	uc := catalog.NewItemUseCase(repo)

	_, err := uc.Create(dto.CreateItemRequest{Name: "Dipirona", Code: "DIP-500"})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreateItemRequest{Name: "Paracetamol", Code: "PAR-750"})
	require.NoError(t, err)

	taken := "DIP-500"
	_, err = uc.Update(b.ID, dto.UpdateItemRequest{Code: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestItemUpdate_Inexistente_RetornaNotFound(t *testing.T) {
	uc := catalog.NewItemUseCase(newFakeItemRepo())

	name := "Qualquer"
	_, err := uc.Update("nao-existe", dto.UpdateItemRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
