package providers

import (
	"github.com/geomaps/locationkit/pkg/errors"
)

// RouteInfo holds route distance and duration. Canonical storage is
// kilometers and minutes; the meter and second accessors truncate.
type RouteInfo struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// RouteInfoInput supplies exactly one member of each pair: either
// DistanceMeters or DistanceKm, and either DurationSeconds or
// DurationMinutes. When both members of a pair are set the km/minutes
// value wins.
type RouteInfoInput struct {
	DistanceMeters  *float64
	DurationSeconds *float64
	DistanceKm      *float64
	DurationMinutes *float64
}

// NewRouteInfo constructs a RouteInfo from raw or pre-computed units
func NewRouteInfo(in RouteInfoInput) (*RouteInfo, error) {
	info := &RouteInfo{}

	switch {
	case in.DistanceKm != nil:
		info.DistanceKm = *in.DistanceKm
	case in.DistanceMeters != nil:
		info.DistanceKm = *in.DistanceMeters / 1000
	default:
		return nil, errors.NewValidationError("either DistanceMeters or DistanceKm must be provided")
	}

	switch {
	case in.DurationMinutes != nil:
		info.DurationMinutes = *in.DurationMinutes
	case in.DurationSeconds != nil:
		info.DurationMinutes = *in.DurationSeconds / 60
	default:
		return nil, errors.NewValidationError("either DurationSeconds or DurationMinutes must be provided")
	}

	return info, nil
}

// DistanceMeters returns the route distance in whole meters
func (r *RouteInfo) DistanceMeters() int {
	return int(r.DistanceKm * 1000)
}

// DurationSeconds returns the route duration in whole seconds
func (r *RouteInfo) DurationSeconds() int {
	return int(r.DurationMinutes * 60)
}
