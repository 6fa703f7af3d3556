package providers

import (
	"encoding/json"
	"fmt"
)

// GeoPoint represents a geographic point with latitude and longitude
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// String renders the point as "lat,lon", the form provider APIs expect
func (p GeoPoint) String() string {
	return fmt.Sprintf("%g,%g", p.Latitude, p.Longitude)
}

// Address represents a structured address. All fields are optional;
// absent fields are omitted from serialized forms.
type Address struct {
	Street           string `json:"street,omitempty"`
	HouseNumber      string `json:"house_number,omitempty"`
	City             string `json:"city,omitempty"`
	Postcode         string `json:"postcode,omitempty"`
	Country          string `json:"country,omitempty"`
	CountryCode      string `json:"country_code,omitempty"`
	State            string `json:"state,omitempty"`
	FormattedAddress string `json:"formatted_address,omitempty"`
}

// QueryParams converts the address into structured query parameters
// for structured geocoding searches
func (a Address) QueryParams() map[string]string {
	params := make(map[string]string)
	if a.Street != "" {
		params["street"] = a.Street
	}
	if a.HouseNumber != "" {
		params["housenumber"] = a.HouseNumber
	}
	if a.City != "" {
		params["city"] = a.City
	}
	if a.Postcode != "" {
		params["postcode"] = a.Postcode
	}
	if a.Country != "" {
		params["country"] = a.Country
	}
	return params
}

// GeocodingResult is one candidate match from a geocoding operation
type GeocodingResult struct {
	Location GeoPoint `json:"location"`
	Address  Address  `json:"address"`

	// Provider-assigned match quality scores in [0,1]; nil when the
	// provider did not report them
	Confidence              *float64 `json:"confidence,omitempty"`
	ConfidenceBuildingLevel *float64 `json:"confidence_building_level,omitempty"`
	ConfidenceStreetLevel   *float64 `json:"confidence_street_level,omitempty"`
	ConfidenceCityLevel     *float64 `json:"confidence_city_level,omitempty"`

	// Raw is the unmodified provider feature this result was mapped from
	Raw json.RawMessage `json:"-"`
}

// AutocompleteResult is one suggestion from an address autocomplete operation
type AutocompleteResult struct {
	Address  Address  `json:"address"`
	Location GeoPoint `json:"location"`

	Raw json.RawMessage `json:"-"`
}

// DistanceMatrixResult holds pairwise travel distances and durations.
// Distances[i][j] and Durations[i][j] correspond to source i, target j;
// grid dimensions equal len(Sources) x len(Targets).
type DistanceMatrixResult struct {
	Distances [][]float64 `json:"distances"` // meters
	Durations [][]float64 `json:"durations"` // seconds
	Unit      string      `json:"unit"`
	Sources   []GeoPoint  `json:"sources,omitempty"`
	Targets   []GeoPoint  `json:"targets,omitempty"`
}
