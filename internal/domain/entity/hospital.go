package entity

import (
	"strings"
	"time"
)

// Hospital representa um hospital ou unidade básica de saúde (UBS) atendida
// pelo almoxarifado central.
type Hospital struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Marcadores que identificam uma unidade básica de saúde pelo nome.
var ubsMarkers = []string{"ubs", "unidade basica", "unidade básica", "posto de saude", "posto de saúde"}

// IsUBS indica se o hospital é uma UBS, elegível para estoque geral
// (quantidade não vinculada a uma unidade atendida específica).
func (h *Hospital) IsUBS() bool {
	name := strings.ToLower(h.Name)
	for _, marker := range ubsMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}
