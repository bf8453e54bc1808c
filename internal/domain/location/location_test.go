package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rafaelfarias/almoxarifado-api/internal/domain/location"
)

// A mesma seleção de local deve produzir sempre a mesma chave canônica.
func TestConfigKey_Idempotente(t *testing.T) {
	loc := location.AtUnit("hosp-1", "ala-2")
	assert.Equal(t, loc.ConfigKey("item-9"), loc.ConfigKey("item-9"),
		"resolver duas vezes a mesma seleção deve dar a mesma chave")
}

func TestConfigKey_Formatos(t *testing.T) {
	assert.Equal(t, "item-1_central", location.Central().ConfigKey("item-1"))
	assert.Equal(t, "item-1_ala-2", location.AtUnit("hosp-1", "ala-2").ConfigKey("item-1"))
	assert.Equal(t, "item-1_ubs-3_UBSGERAL", location.UBSGeneral("ubs-3").ConfigKey("item-1"))
}

func TestCentral_NaoCarregaIDs(t *testing.T) {
	loc := location.Central()
	assert.True(t, loc.IsCentral())
	assert.Empty(t, loc.HospitalID(), "central nunca carrega hospital")
	assert.Empty(t, loc.UnitID(), "central nunca carrega unidade")
}

func TestZeroValue_EhCentral(t *testing.T) {
	var loc location.Location
	assert.True(t, loc.IsCentral(), "o zero value deve ser o almoxarifado central")
}
