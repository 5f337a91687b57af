package consts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pfmo-ng/facility-api/consts"
)

func TestNormalizeState(t *testing.T) {
	mapping := map[string]string{
		"Lagos":                     "Lagos",
		"Lagos State":               "Lagos",
		"lagos":                     "Lagos",
		"KANO":                      "Kano",
		"Akwa Ibom State":           "Akwa Ibom",
		"Federal Capital Territory": "FCT",
		"Abuja":                     "FCT",
		"  Benue ":                  "Benue",
	}
	for in, expected := range mapping {
		state, err := consts.NormalizeState(in)
		assert.NoError(t, err)
		assert.Equal(t, expected, state)
	}

	_, err := consts.NormalizeState("Atlantis")
	assert.Error(t, err)
}

func TestZoneOfState(t *testing.T) {
	zone, err := consts.ZoneOfState("Enugu")
	assert.NoError(t, err)
	assert.Equal(t, "South East", zone)

	zone, err = consts.ZoneOfState("Abuja")
	assert.NoError(t, err)
	assert.Equal(t, "North Central", zone)

	_, err = consts.ZoneOfState("Gotham")
	assert.Error(t, err)
}

func TestStateZoneCovers37(t *testing.T) {
	assert.Len(t, consts.StateZone, 37)
}
