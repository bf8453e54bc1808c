package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin            = "admin"
	RoleCentralOperator  = "central_operator"
	RoleHospitalOperator = "hospital_operator"
	RoleUBSOperator      = "ubs_operator"
	RoleUser             = "user" // sem privilégios de movimentação
)

// User representa um usuário do sistema. Operadores de hospital/UBS podem
// ter escopo restrito a um hospital e, opcionalmente, a uma unidade dentro
// dele; o motor de movimentação usa esse escopo na autorização de consumo.
type User struct {
	ID                   string
	Email                string
	PasswordHash         string // hash bcrypt, nunca em claro após persistir
	Name                 string
	Role                 string
	AssociatedHospitalID string
	AssociatedUnitID     string
	Status               string // active, inactive
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// CanOperate indica se o papel participa de alguma movimentação de estoque.
func (u *User) CanOperate() bool {
	switch u.Role {
	case RoleAdmin, RoleCentralOperator, RoleHospitalOperator, RoleUBSOperator:
		return true
	}
	return false
}
