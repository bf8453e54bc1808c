package dto

import "time"

// MovementLineRequest linha de item de um lote de movimentação.
type MovementLineRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

// ProcessMovementRequest body para POST /api/movements. As linhas
// compartilham tipo, data e local; o lote confirma ou aborta inteiro.
type ProcessMovementRequest struct {
	Type         string                `json:"type"`           // entry | exit | consumption
	Date         string                `json:"date,omitempty"` // 2006-01-02; vazio = hoje
	HospitalID   string                `json:"hospital_id,omitempty"`
	UnitID       string                `json:"unit_id,omitempty"`
	GeneralStock bool                  `json:"general_stock,omitempty"`
	PatientID    string                `json:"patient_id,omitempty"`
	Notes        string                `json:"notes,omitempty"`
	Lines        []MovementLineRequest `json:"lines"`
}

// MovementResponse um registro do histórico de movimentos.
type MovementResponse struct {
	ID           string    `json:"id"`
	ItemID       string    `json:"item_id"`
	ItemName     string    `json:"item_name"`
	Type         string    `json:"type"`
	Quantity     int64     `json:"quantity"`
	Date         time.Time `json:"date"`
	HospitalID   string    `json:"hospital_id,omitempty"`
	HospitalName string    `json:"hospital_name,omitempty"`
	UnitID       string    `json:"unit_id,omitempty"`
	UnitName     string    `json:"unit_name,omitempty"`
	PatientID    string    `json:"patient_id,omitempty"`
	PatientName  string    `json:"patient_name,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	CreatedAt    time.Time `json:"created_at"`
}
