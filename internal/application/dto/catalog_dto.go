package dto

import "time"

// ── Itens ─────────────────────────────────────────────────────────────────────

// CreateItemRequest body para criar um insumo do catálogo.
type CreateItemRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	UnitMeasure string `json:"unit_measure"`
	MinQuantity int64  `json:"min_quantity"`
}

// UpdateItemRequest campos opcionais de atualização de insumo.
// A quantidade central não é editável aqui: só o motor de movimentação a altera.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Code        *string `json:"code,omitempty"`
	UnitMeasure *string `json:"unit_measure,omitempty"`
	MinQuantity *int64  `json:"min_quantity,omitempty"`
}

// ItemResponse representação de insumo nas respostas.
type ItemResponse struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Code                   string    `json:"code"`
	UnitMeasure            string    `json:"unit_measure"`
	MinQuantity            int64     `json:"min_quantity"`
	CurrentQuantityCentral int64     `json:"current_quantity_central"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ── Hospitais e unidades ──────────────────────────────────────────────────────

// CreateHospitalRequest body para criar hospital/UBS.
type CreateHospitalRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// HospitalResponse representação de hospital nas respostas.
type HospitalResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	IsUBS     bool      `json:"is_ubs"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateServedUnitRequest body para criar unidade atendida.
type CreateServedUnitRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// ServedUnitResponse representação de unidade nas respostas.
type ServedUnitResponse struct {
	ID         string    `json:"id"`
	HospitalID string    `json:"hospital_id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ── Pacientes ─────────────────────────────────────────────────────────────────

// CreatePatientRequest body para cadastrar paciente. CNS validado antes de
// persistir.
type CreatePatientRequest struct {
	Name            string `json:"name"`
	BirthDate       string `json:"birth_date"` // 2006-01-02
	CNS             string `json:"cns"`
	RegisteredUBSID string `json:"registered_ubs_id,omitempty"`
}

// PatientResponse representação de paciente nas respostas.
type PatientResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	BirthDate       time.Time `json:"birth_date"`
	CNS             string    `json:"cns"`
	RegisteredUBSID string    `json:"registered_ubs_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
