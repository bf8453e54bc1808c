package repository

import "github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"

// StockConfigRepository define o porto dos registros de quantidade por local.
// Get e GetForUpdate devolvem nil quando o local nunca foi abastecido,
// sinal distinto de "abastecido com zero".
type StockConfigRepository interface {
	Get(key string) (*entity.StockConfig, error)
	// GetForUpdate bloqueia a linha do registro (SELECT FOR UPDATE).
	GetForUpdate(key string) (*entity.StockConfig, error)
	Upsert(config *entity.StockConfig) error
	ListByHospital(hospitalID string) ([]*entity.StockConfig, error)
	ListByItem(itemID string) ([]*entity.StockConfig, error)
	// ListBelowMinimum devolve registros com quantidade no limite mínimo ou abaixo.
	ListBelowMinimum() ([]*entity.StockConfig, error)
}
