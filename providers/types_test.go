package providers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoPointString(t *testing.T) {
	point := GeoPoint{Latitude: 40.7128, Longitude: -74.006}
	assert.Equal(t, "40.7128,-74.006", point.String())
}

func TestAddressQueryParams(t *testing.T) {
	addr := Address{
		Street:      "Main St",
		HouseNumber: "42",
		City:        "Springfield",
		Postcode:    "12345",
		Country:     "USA",
		// State and FormattedAddress are not structured query fields
		State:            "IL",
		FormattedAddress: "42 Main St, Springfield",
	}

	params := addr.QueryParams()
	assert.Equal(t, map[string]string{
		"street":      "Main St",
		"housenumber": "42",
		"city":        "Springfield",
		"postcode":    "12345",
		"country":     "USA",
	}, params)

	assert.Empty(t, Address{}.QueryParams())
}

func TestAddressOmitsAbsentFields(t *testing.T) {
	encoded, err := json.Marshal(Address{City: "Berlin"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"city":"Berlin"}`, string(encoded))
}
