package providers

import (
	"context"
)

// TravelMode selects the transport profile used for routing and
// distance-matrix calculations. The values are the provider wire tokens.
type TravelMode string

const (
	TravelModeDriving TravelMode = "drive"
	TravelModeWalking TravelMode = "walk"
	TravelModeCycling TravelMode = "bike"
	TravelModeTruck   TravelMode = "truck"
)

// DistanceUnit represents a distance measurement unit
type DistanceUnit string

const (
	DistanceUnitKilometers DistanceUnit = "km"
	DistanceUnitMiles      DistanceUnit = "mi"
	DistanceUnitMeters     DistanceUnit = "m"
)

// LocationProvider defines the interface for location service vendors.
// Implementations translate these operations into one vendor's REST API.
type LocationProvider interface {
	// Geocode converts address text to geographic coordinates,
	// ordered by provider relevance. An empty result is not an error.
	Geocode(ctx context.Context, query string) ([]GeocodingResult, error)

	// ReverseGeocode converts coordinates to address candidates
	ReverseGeocode(ctx context.Context, location GeoPoint) ([]Address, error)

	// Autocomplete returns address suggestions for a partial query.
	// Limit must be between 1 and 50.
	Autocomplete(ctx context.Context, query string, limit int) ([]AutocompleteResult, error)

	// DistanceMatrix calculates pairwise distances and durations between
	// two sets of points
	DistanceMatrix(ctx context.Context, sources, targets []GeoPoint, mode TravelMode, units DistanceUnit) (*DistanceMatrixResult, error)

	// Route calculates route distance and duration between two points
	Route(ctx context.Context, source, target GeoPoint, mode TravelMode) (*RouteInfo, error)

	// Close releases the provider's HTTP session. Safe to call more than once.
	Close() error
}
