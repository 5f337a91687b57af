package consts

import (
	"fmt"
	"strings"
)

// Nigeria bounding box used for GPS sanity checks.
const (
	NigeriaMinLatitude  = 4.0
	NigeriaMaxLatitude  = 14.0
	NigeriaMinLongitude = 2.0
	NigeriaMaxLongitude = 15.0
)

// StateZone maps every Nigerian state (and the FCT) to its geopolitical zone.
var StateZone map[string]string

func init() {
	StateZone = make(map[string]string)

	StateZone["Benue"] = "North Central"
	StateZone["Kogi"] = "North Central"
	StateZone["Kwara"] = "North Central"
	StateZone["Nasarawa"] = "North Central"
	StateZone["Niger"] = "North Central"
	StateZone["Plateau"] = "North Central"
	StateZone["FCT"] = "North Central"

	StateZone["Adamawa"] = "North East"
	StateZone["Bauchi"] = "North East"
	StateZone["Borno"] = "North East"
	StateZone["Gombe"] = "North East"
	StateZone["Taraba"] = "North East"
	StateZone["Yobe"] = "North East"

	StateZone["Jigawa"] = "North West"
	StateZone["Kaduna"] = "North West"
	StateZone["Kano"] = "North West"
	StateZone["Katsina"] = "North West"
	StateZone["Kebbi"] = "North West"
	StateZone["Sokoto"] = "North West"
	StateZone["Zamfara"] = "North West"

	StateZone["Abia"] = "South East"
	StateZone["Anambra"] = "South East"
	StateZone["Ebonyi"] = "South East"
	StateZone["Enugu"] = "South East"
	StateZone["Imo"] = "South East"

	StateZone["Akwa Ibom"] = "South South"
	StateZone["Bayelsa"] = "South South"
	StateZone["Cross River"] = "South South"
	StateZone["Delta"] = "South South"
	StateZone["Edo"] = "South South"
	StateZone["Rivers"] = "South South"

	StateZone["Ekiti"] = "South West"
	StateZone["Lagos"] = "South West"
	StateZone["Ogun"] = "South West"
	StateZone["Ondo"] = "South West"
	StateZone["Osun"] = "South West"
	StateZone["Oyo"] = "South West"
}

// NormalizeState resolves a state name as reported by a device or geocoder
// ("Lagos State", "lagos", "Federal Capital Territory") into its canonical form.
func NormalizeState(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	trimmed = strings.TrimSuffix(trimmed, " State")

	if strings.EqualFold(trimmed, "Federal Capital Territory") || strings.EqualFold(trimmed, "Abuja") {
		trimmed = "FCT"
	}

	for state := range StateZone {
		if strings.EqualFold(state, trimmed) {
			return state, nil
		}
	}

	return "", fmt.Errorf("%s is not a Nigerian state", name)
}

// ZoneOfState returns the geopolitical zone of a state in any accepted spelling.
func ZoneOfState(state string) (string, error) {
	canonical, err := NormalizeState(state)
	if err != nil {
		return "", err
	}
	return StateZone[canonical], nil
}
