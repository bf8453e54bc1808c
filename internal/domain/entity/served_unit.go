package entity

import "time"

// ServedUnit representa uma ala, clínica ou setor dentro de um hospital.
// Nunca existe sem o hospital dono.
type ServedUnit struct {
	ID         string
	HospitalID string
	Name       string
	Location   string // descrição física: "2º andar, ala leste"
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
