package dto

import "time"

// RegisterRequest body para cadastro de usuário.
type RegisterRequest struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	Name                 string `json:"name"`
	Role                 string `json:"role,omitempty"` // padrão: user
	AssociatedHospitalID string `json:"hospital_id,omitempty"`
	AssociatedUnitID     string `json:"unit_id,omitempty"`
}

// LoginRequest body para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse representação de usuário nas respostas (sem hash).
type UserResponse struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	Name                 string    `json:"name"`
	Role                 string    `json:"role"`
	AssociatedHospitalID string    `json:"hospital_id,omitempty"`
	AssociatedUnitID     string    `json:"unit_id,omitempty"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// LoginResponse token + usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
