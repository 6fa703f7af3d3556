package providers

import (
	"fmt"

	"github.com/geomaps/locationkit/pkg/errors"
)

// ValidatePoint validates a single location. It accepts a GeoPoint,
// a *GeoPoint, or an untyped map carrying "latitude" and "longitude"
// keys with numeric values; anything else fails validation. Latitude
// must lie in [-90, 90] and longitude in [-180, 180].
func ValidatePoint(name string, point interface{}) error {
	var lat, lon float64

	switch v := point.(type) {
	case GeoPoint:
		lat, lon = v.Latitude, v.Longitude
	case *GeoPoint:
		if v == nil {
			return errors.NewValidationError(fmt.Sprintf("%s must be a GeoPoint or a map with latitude and longitude", name))
		}
		lat, lon = v.Latitude, v.Longitude
	case map[string]interface{}:
		latVal, latOK := numericValue(v["latitude"])
		lonVal, lonOK := numericValue(v["longitude"])
		if !latOK || !lonOK {
			return errors.NewValidationError(fmt.Sprintf("%s must have 'latitude' and 'longitude' keys", name))
		}
		lat, lon = latVal, lonVal
	default:
		return errors.NewValidationError(fmt.Sprintf("%s must be a GeoPoint or a map with latitude and longitude", name))
	}

	if lat < -90 || lat > 90 {
		return errors.NewValidationError(fmt.Sprintf("%s latitude must be between -90 and 90", name))
	}
	if lon < -180 || lon > 180 {
		return errors.NewValidationError(fmt.Sprintf("%s longitude must be between -180 and 180", name))
	}
	return nil
}

// ValidatePointList validates every point in a list. The list must be
// non-empty; the first invalid element's error propagates, indexed by
// position.
func ValidatePointList(name string, points []GeoPoint) error {
	if len(points) == 0 {
		return errors.NewValidationError(fmt.Sprintf("%s must not be empty", name))
	}
	for idx, point := range points {
		if err := ValidatePoint(fmt.Sprintf("%s[%d]", name, idx), point); err != nil {
			return err
		}
	}
	return nil
}

func numericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
