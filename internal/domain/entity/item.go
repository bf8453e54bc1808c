package entity

import "time"

// Item representa um insumo do catálogo do almoxarifado central.
// CurrentQuantityCentral é a única quantidade guardada no próprio item e
// corresponde ao estoque físico no almoxarifado central; só o motor de
// movimentação a altera.
type Item struct {
	ID                     string
	Name                   string
	Code                   string // código único do insumo (usado na importação)
	UnitMeasure            string // caixa, frasco, unidade...
	MinQuantity            int64  // limite mínimo no central
	CurrentQuantityCentral int64
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
