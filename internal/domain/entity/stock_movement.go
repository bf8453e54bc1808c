package entity

import "time"

// Tipos de movimento de estoque.
const (
	MovementTypeEntry       = "entry"       // entrada no almoxarifado central
	MovementTypeExit        = "exit"        // saída: baixa direta ou transferência para um local
	MovementTypeConsumption = "consumption" // consumo no local onde o estoque está
)

// ValidMovementType verifica se o tipo pertence ao enum.
func ValidMovementType(t string) bool {
	return t == MovementTypeEntry || t == MovementTypeExit || t == MovementTypeConsumption
}

// StockMovement é o registro imutável de auditoria de um movimento.
// Criado exatamente uma vez por linha de item confirmada, na mesma
// transação que altera as quantidades; nunca é atualizado nem apagado.
// Os nomes são resolvidos no momento da gravação para que o histórico
// sobreviva a renomeações no catálogo.
type StockMovement struct {
	ID           string
	ItemID       string
	ItemName     string
	Type         string
	Quantity     int64 // sempre positiva; o tipo dá o sentido
	Date         time.Time
	HospitalID   string // vazio = almoxarifado central
	HospitalName string
	UnitID       string // vazio com HospitalID preenchido = estoque geral de UBS
	UnitName     string // rótulo sintetizado: "Estoque Geral (X)" ou "Almoxarifado Central"
	PatientID    string
	PatientName  string
	Notes        string
	UserID       string
	UserName     string
	CreatedAt    time.Time
}
