// Package location modela o local de estoque como variante etiquetada:
// almoxarifado central, unidade atendida de um hospital ou estoque geral
// de uma UBS. A chave canônica do razão de quantidades deriva daqui.
package location

import "fmt"

// Kind identifica o tipo de local.
type Kind int

const (
	KindCentral Kind = iota
	KindUnit
	KindUBSGeneral
)

// Sufixo da chave de estoque geral de UBS.
const ubsGeneralSuffix = "UBSGERAL"

// Location é a seleção resolvida de local de estoque.
// Usar os construtores; o zero value é o almoxarifado central.
type Location struct {
	kind       Kind
	hospitalID string
	unitID     string
}

// Central devolve o local "almoxarifado central". Nunca carrega hospital
// nem unidade.
func Central() Location {
	return Location{kind: KindCentral}
}

// AtUnit devolve o local "unidade unitID do hospital hospitalID".
func AtUnit(hospitalID, unitID string) Location {
	return Location{kind: KindUnit, hospitalID: hospitalID, unitID: unitID}
}

// UBSGeneral devolve o local "estoque geral da UBS hospitalID".
func UBSGeneral(hospitalID string) Location {
	return Location{kind: KindUBSGeneral, hospitalID: hospitalID}
}

// Kind devolve o tipo do local.
func (l Location) Kind() Kind { return l.kind }

// IsCentral indica se o local é o almoxarifado central.
func (l Location) IsCentral() bool { return l.kind == KindCentral }

// HospitalID devolve o hospital do local (vazio no central).
func (l Location) HospitalID() string { return l.hospitalID }

// UnitID devolve a unidade do local (vazio no central e no estoque geral).
func (l Location) UnitID() string { return l.unitID }

// ConfigKey devolve a chave canônica do registro de estoque do item neste
// local. Determinística: a mesma seleção sempre produz a mesma chave.
//
//	central         → {itemID}_central (caso degenerado: a quantidade vive no Item)
//	unidade         → {itemID}_{unitID}
//	estoque geral   → {itemID}_{hospitalID}_UBSGERAL
func (l Location) ConfigKey(itemID string) string {
	switch l.kind {
	case KindUnit:
		return fmt.Sprintf("%s_%s", itemID, l.unitID)
	case KindUBSGeneral:
		return fmt.Sprintf("%s_%s_%s", itemID, l.hospitalID, ubsGeneralSuffix)
	default:
		return itemID + "_central"
	}
}

// String descreve o local para logs e mensagens de erro.
func (l Location) String() string {
	switch l.kind {
	case KindUnit:
		return fmt.Sprintf("unidade %s (hospital %s)", l.unitID, l.hospitalID)
	case KindUBSGeneral:
		return fmt.Sprintf("estoque geral (hospital %s)", l.hospitalID)
	default:
		return "almoxarifado central"
	}
}
