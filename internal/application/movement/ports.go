package movement

import (
	"context"

	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa transação. Garante a atomicidade do motor:
// ou todas as linhas do lote confirmam, ou nenhuma alteração fica visível.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		configRepo repository.StockConfigRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
