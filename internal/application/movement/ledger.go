package movement

import (
	"fmt"
	"time"

	"github.com/rafaelfarias/almoxarifado-api/internal/domain"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/location"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/repository"
)

// ledgerRecord é a visão uniforme de um registro do razão de quantidades:
// o almoxarifado central (quantidade guardada no próprio Item) e os locais
// (StockConfig) passam pelo mesmo caminho de débito/crédito, em vez de
// ramificar a cada fase.
//
// As operações mutam apenas a projeção em memória; nada é persistido até
// flush, o que mantém a regra "nenhuma escrita antes de todas as linhas
// validarem".
type ledgerRecord struct {
	loc         location.Location
	item        *entity.Item
	cfg         *entity.StockConfig // nil = local nunca abastecido
	qty         int64               // quantidade projetada dentro do lote
	provisioned bool                // registro existe (central é sempre true)
	dirty       bool
}

// newCentralRecord constrói a visão do estoque central de um item.
func newCentralRecord(item *entity.Item) *ledgerRecord {
	return &ledgerRecord{
		loc:         location.Central(),
		item:        item,
		qty:         item.CurrentQuantityCentral,
		provisioned: true,
	}
}

// newLocationRecord constrói a visão do estoque de um item em uma unidade
// ou estoque geral. cfg pode ser nil (nunca abastecido).
func newLocationRecord(loc location.Location, item *entity.Item, cfg *entity.StockConfig) *ledgerRecord {
	r := &ledgerRecord{loc: loc, item: item, cfg: cfg}
	if cfg != nil {
		r.qty = cfg.Quantity
		r.provisioned = true
	}
	return r
}

// debit subtrai quantidade, rejeitando antes de qualquer escrita quando o
// local nunca foi abastecido ou o saldo projetado é insuficiente.
func (r *ledgerRecord) debit(q int64) error {
	if !r.provisioned {
		return fmt.Errorf("item %s em %s: %w", r.item.Name, r.loc, domain.ErrUnconfiguredLocation)
	}
	if r.qty < q {
		return fmt.Errorf("item %s em %s: disponível %d, solicitado %d: %w",
			r.item.Name, r.loc, r.qty, q, domain.ErrInsufficientStock)
	}
	r.qty -= q
	r.dirty = true
	return nil
}

// credit soma quantidade. Em local nunca abastecido a primeira
// transferência provisiona o registro com limites zerados; transferências
// nunca alteram limites existentes.
func (r *ledgerRecord) credit(q int64) {
	r.qty += q
	r.provisioned = true
	r.dirty = true
}

// flush persiste a projeção: quantidade central no Item, demais locais no
// StockConfig (criado na primeira transferência).
func (r *ledgerRecord) flush(
	itemRepo repository.ItemRepository,
	configRepo repository.StockConfigRepository,
	now time.Time,
) error {
	if !r.dirty {
		return nil
	}
	if r.loc.IsCentral() {
		r.item.CurrentQuantityCentral = r.qty
		return itemRepo.UpdateCentralQuantity(r.item.ID, r.qty)
	}
	cfg := r.cfg
	if cfg == nil {
		cfg = &entity.StockConfig{
			Key:        r.loc.ConfigKey(r.item.ID),
			ItemID:     r.item.ID,
			HospitalID: r.loc.HospitalID(),
			UnitID:     r.loc.UnitID(),
		}
		r.cfg = cfg
	}
	cfg.Quantity = r.qty
	cfg.UpdatedAt = now
	return configRepo.Upsert(cfg)
}
