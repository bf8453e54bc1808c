package entity

import "time"

// Patient representa um paciente vinculável a movimentos de consumo em UBS
// (estoque geral ou unidade). CNS é o número do Cartão Nacional de Saúde,
// validado por pkg/cns antes de persistir.
type Patient struct {
	ID              string
	Name            string
	BirthDate       time.Time
	CNS             string
	RegisteredUBSID string // UBS de cadastro (opcional)
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
