// Package cns valida o número do Cartão Nacional de Saúde (CNS).
//
// Dois formatos coexistem:
//
//   - definitivos (iniciados em 1 ou 2): derivados do PIS/PASPED; os 11
//     primeiros dígitos geram o dígito verificador pelo módulo 11 e o
//     número completo é PIS + "000"/"001" + DV;
//   - provisórios (iniciados em 7, 8 ou 9): válidos quando a soma
//     ponderada dos 15 dígitos (pesos 15..1) é múltipla de 11.
package cns

import "strings"

// Clean remove espaços e pontuação comum de um CNS digitado.
func Clean(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValid verifica formato e dígito verificador de um CNS.
func IsValid(s string) bool {
	cns := Clean(s)
	if len(cns) != 15 {
		return false
	}
	switch cns[0] {
	case '1', '2':
		return validDefinitive(cns)
	case '7', '8', '9':
		return validProvisional(cns)
	default:
		return false
	}
}

// validDefinitive recalcula o DV a partir dos 11 primeiros dígitos e
// compara com o número completo.
func validDefinitive(cns string) bool {
	pis := cns[:11]
	sum := 0
	for i, r := range pis {
		sum += int(r-'0') * (15 - i)
	}
	dv := 11 - sum%11
	if dv == 11 {
		dv = 0
	}
	suffix := "000"
	if dv == 10 {
		sum += 2
		dv = 11 - sum%11
		suffix = "001"
	}
	return cns == pis+suffix+string(rune('0'+dv))
}

// validProvisional aplica a soma ponderada módulo 11 sobre os 15 dígitos.
func validProvisional(cns string) bool {
	sum := 0
	for i, r := range cns {
		sum += int(r-'0') * (15 - i)
	}
	return sum%11 == 0
}
