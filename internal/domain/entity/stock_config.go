package entity

import "time"

// StockConfig é o registro de quantidade de um item em um local fora do
// almoxarifado central (unidade atendida ou estoque geral de UBS).
//
// A existência do registro é o único sinal de que o local já recebeu
// estoque daquele item: ausência significa "nunca abastecido", que é
// diferente de "abastecido com quantidade zero".
type StockConfig struct {
	Key               string // {itemId}_{unitId} ou {itemId}_{hospitalId}_UBSGERAL
	ItemID            string
	HospitalID        string
	UnitID            string // vazio quando o registro é de estoque geral de UBS
	Quantity          int64  // nunca negativa
	MinQuantity       int64  // limite mínimo do local
	StrategicQuantity int64  // limite estratégico (alerta de reposição)
	UpdatedAt         time.Time
}
