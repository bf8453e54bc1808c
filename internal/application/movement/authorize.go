package movement

import (
	"github.com/rafaelfarias/almoxarifado-api/internal/domain"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/entity"
	"github.com/rafaelfarias/almoxarifado-api/internal/domain/location"
)

// authorize decide se o usuário pode executar o tipo de movimento no local
// resolvido. Função pura sobre papel e escopo do usuário.
//
// entry e exit são operações do almoxarifado central: admin e
// central_operator. consumption é permitido para admin/central_operator em
// qualquer local; operadores de hospital/UBS só dentro do próprio escopo:
// um operador restrito a uma unidade não consome em outra unidade nem no
// estoque geral do mesmo hospital.
func authorize(user *entity.User, movType string, loc location.Location) error {
	switch movType {
	case entity.MovementTypeEntry, entity.MovementTypeExit:
		if user.Role == entity.RoleAdmin || user.Role == entity.RoleCentralOperator {
			return nil
		}
		return domain.ErrForbidden

	case entity.MovementTypeConsumption:
		switch user.Role {
		case entity.RoleAdmin, entity.RoleCentralOperator:
			return nil
		case entity.RoleHospitalOperator, entity.RoleUBSOperator:
			if loc.IsCentral() {
				return domain.ErrForbidden
			}
			if loc.HospitalID() != user.AssociatedHospitalID {
				return domain.ErrForbidden
			}
			if user.AssociatedUnitID != "" && loc.UnitID() != user.AssociatedUnitID {
				return domain.ErrForbidden
			}
			return nil
		}
		return domain.ErrForbidden
	}
	return domain.ErrInvalidInput
}
