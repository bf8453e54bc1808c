package repository

import "github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"

// ItemRepository define o porto de persistência do catálogo de insumos.
// GetForUpdate é usado dentro de transações pelo motor de movimentação.
type ItemRepository interface {
	Create(item *entity.Item) error
	Update(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByCode(code string) (*entity.Item, error)
	List(limit, offset int) ([]*entity.Item, error)
	// GetForUpdate bloqueia a linha do item (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Item, error)
	// UpdateCentralQuantity grava a quantidade do almoxarifado central.
	UpdateCentralQuantity(id string, quantity int64) error
	// ListBelowMinimumCentral devolve itens com estoque central no limite mínimo ou abaixo.
	ListBelowMinimumCentral() ([]*entity.Item, error)
}
