// Package locationkit is a vendor-agnostic client SDK for location-based
// web services: geocoding, reverse geocoding, address autocomplete,
// distance matrices, and routing. The LocationClient facade delegates
// every operation to whichever LocationProvider it was constructed with.
package locationkit

import (
	"context"

	"github.com/geomaps/locationkit/pkg/errors"
	"github.com/geomaps/locationkit/providers"
)

// LocationClient is the high-level entry point for the SDK. It holds
// exactly one provider and forwards every call to it unchanged.
type LocationClient struct {
	provider providers.LocationProvider
}

// NewLocationClient creates a client backed by the given provider
func NewLocationClient(provider providers.LocationProvider) (*LocationClient, error) {
	if provider == nil {
		return nil, errors.NewValidationError("provider must implement LocationProvider")
	}
	return &LocationClient{provider: provider}, nil
}

// Geocode converts address text to geographic coordinates
func (c *LocationClient) Geocode(ctx context.Context, query string) ([]providers.GeocodingResult, error) {
	return c.provider.Geocode(ctx, query)
}

// ReverseGeocode converts geographic coordinates to address candidates
func (c *LocationClient) ReverseGeocode(ctx context.Context, location providers.GeoPoint) ([]providers.Address, error) {
	return c.provider.ReverseGeocode(ctx, location)
}

// Autocomplete returns address suggestions for a partial query
func (c *LocationClient) Autocomplete(ctx context.Context, query string, limit int) ([]providers.AutocompleteResult, error) {
	return c.provider.Autocomplete(ctx, query, limit)
}

// DistanceMatrix calculates pairwise distances and durations between
// two sets of points
func (c *LocationClient) DistanceMatrix(ctx context.Context, sources, targets []providers.GeoPoint, mode providers.TravelMode, units providers.DistanceUnit) (*providers.DistanceMatrixResult, error) {
	return c.provider.DistanceMatrix(ctx, sources, targets, mode, units)
}

// Route calculates route distance and duration between two points
func (c *LocationClient) Route(ctx context.Context, source, target providers.GeoPoint, mode providers.TravelMode) (*providers.RouteInfo, error) {
	return c.provider.Route(ctx, source, target, mode)
}

// Close releases the underlying provider's resources
func (c *LocationClient) Close() error {
	return c.provider.Close()
}
