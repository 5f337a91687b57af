package geo

import (
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/pfmo-ng/facility-api/consts"
	"github.com/pfmo-ng/facility-api/external/geoinfo"
	"github.com/pfmo-ng/facility-api/schema"
)

var (
	ErrNoGeoInfoFound = fmt.Errorf("no geo information found")
)

// LocationResolver fills in the state and LGA of a GPS fix.
type LocationResolver interface {
	GetPoliticalInfo(schema.Location) (schema.Location, error)
}

// GeocodingLocationResolver resolves locations through reverse geocoding.
type GeocodingLocationResolver struct {
	client geoinfo.GeoInfo
}

func NewGeocodingLocationResolver(client geoinfo.GeoInfo) *GeocodingLocationResolver {
	return &GeocodingLocationResolver{
		client: client,
	}
}

// GetPoliticalInfo resolves the state and LGA of a location. A location that
// already carries a state is returned untouched.
func (g *GeocodingLocationResolver) GetPoliticalInfo(loc schema.Location) (schema.Location, error) {
	if loc.State != "" {
		return loc, nil
	}

	results, err := g.client.Get(loc)
	if err != nil {
		return loc, err
	}
	if len(results) == 0 {
		return loc, ErrNoGeoInfoFound
	}

	for _, result := range results {
		state, lga := administrativeAreas(result)
		if state == "" {
			continue
		}

		canonical, err := consts.NormalizeState(state)
		if err != nil {
			continue
		}

		loc.State = canonical
		loc.LGA = lga
		loc.Country = "Nigeria"
		return loc, nil
	}

	return loc, ErrNoGeoInfoFound
}

func administrativeAreas(result maps.GeocodingResult) (state, lga string) {
	for _, component := range result.AddressComponents {
		for _, t := range component.Types {
			switch t {
			case "administrative_area_level_1":
				state = component.LongName
			case "administrative_area_level_2":
				lga = component.LongName
			}
		}
	}
	return state, lga
}
