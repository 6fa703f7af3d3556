// Package geoapify implements the LocationProvider interface against
// the Geoapify REST API. Documentation: https://apidocs.geoapify.com/
package geoapify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/geomaps/locationkit/internal/transport"
	"github.com/geomaps/locationkit/pkg/errors"
	"github.com/geomaps/locationkit/providers"
)

const (
	defaultBaseURL = "https://api.geoapify.com/v1"
	defaultTimeout = 10 * time.Second

	// Geoapify caps route matrix requests at 10x10 points on the free plan
	maxMatrixPoints = 10

	autocompleteMinLimit = 1
	autocompleteMaxLimit = 50
)

var _ providers.LocationProvider = (*Provider)(nil)

// Provider implements providers.LocationProvider using the Geoapify API
type Provider struct {
	apiKey  string
	baseURL string
	session *transport.Session
}

// Option overrides a Provider default
type Option func(*options)

type options struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// WithBaseURL overrides the API base URL (used for tests)
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithTimeout overrides the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// WithHTTPClient overrides the HTTP client (used for tests)
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// New creates a Geoapify provider. The API key must be non-empty and
// the timeout positive; both are checked before any network access.
func New(apiKey string, opts ...Option) (*Provider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.NewValidationError("API key must be a non-empty string")
	}

	o := options{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.timeout <= 0 {
		return nil, errors.NewValidationError("timeout must be positive")
	}

	return &Provider{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(o.baseURL, "/"),
		session: transport.NewSession(o.timeout, o.httpClient),
	}, nil
}

// Geocode converts address text to geographic coordinates. Results come
// back in the provider's relevance order; no matches is an empty slice,
// not an error.
func (p *Provider) Geocode(ctx context.Context, query string) ([]providers.GeocodingResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.NewValidationError("query must be a non-empty string")
	}

	params := url.Values{}
	params.Set("text", query)
	return p.geocodeRequest(ctx, params)
}

// GeocodeStructured issues a forward-geocoding request using the
// structured street/housenumber/city/postcode/country parameters
// instead of free text. At least one field must be set.
func (p *Provider) GeocodeStructured(ctx context.Context, addr providers.Address) ([]providers.GeocodingResult, error) {
	structured := addr.QueryParams()
	if len(structured) == 0 {
		return nil, errors.NewValidationError("at least one structured address field must be set")
	}

	params := url.Values{}
	for key, value := range structured {
		params.Set(key, value)
	}
	return p.geocodeRequest(ctx, params)
}

func (p *Provider) geocodeRequest(ctx context.Context, params url.Values) ([]providers.GeocodingResult, error) {
	params.Set("apiKey", p.apiKey)
	params.Set("format", "json")

	var resp featureCollection
	if err := p.session.Do(ctx, http.MethodGet, p.baseURL+"/geocode/search", params, nil, nil, &resp); err != nil {
		return nil, err
	}

	results := make([]providers.GeocodingResult, 0, len(resp.Features))
	for _, raw := range resp.Features {
		feature, point, ok := decodeFeature(raw)
		if !ok {
			continue
		}
		results = append(results, providers.GeocodingResult{
			Location:                point,
			Address:                 feature.Properties.address(),
			Confidence:              feature.Properties.Rank.Confidence,
			ConfidenceBuildingLevel: feature.Properties.Rank.ConfidenceBuildingLevel,
			ConfidenceStreetLevel:   feature.Properties.Rank.ConfidenceStreetLevel,
			ConfidenceCityLevel:     feature.Properties.Rank.ConfidenceCityLevel,
			Raw:                     raw,
		})
	}
	return results, nil
}

// ReverseGeocode converts coordinates to address candidates. The input
// location is not echoed on the results.
func (p *Provider) ReverseGeocode(ctx context.Context, location providers.GeoPoint) ([]providers.Address, error) {
	if err := providers.ValidatePoint("location", location); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(location.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(location.Longitude, 'f', -1, 64))
	params.Set("apiKey", p.apiKey)
	params.Set("format", "json")

	var resp featureCollection
	if err := p.session.Do(ctx, http.MethodGet, p.baseURL+"/geocode/reverse", params, nil, nil, &resp); err != nil {
		return nil, err
	}

	addresses := make([]providers.Address, 0, len(resp.Features))
	for _, raw := range resp.Features {
		var feature geoFeature
		if err := json.Unmarshal(raw, &feature); err != nil {
			continue
		}
		addresses = append(addresses, feature.Properties.address())
	}
	return addresses, nil
}

// Autocomplete returns address suggestions for a partial query.
// Limit must lie in [1, 50].
func (p *Provider) Autocomplete(ctx context.Context, query string, limit int) ([]providers.AutocompleteResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.NewValidationError("query must be a non-empty string")
	}
	if limit < autocompleteMinLimit || limit > autocompleteMaxLimit {
		return nil, errors.NewValidationError("limit must be between 1 and 50")
	}

	params := url.Values{}
	params.Set("text", query)
	params.Set("apiKey", p.apiKey)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))

	var resp featureCollection
	if err := p.session.Do(ctx, http.MethodGet, p.baseURL+"/geocode/autocomplete", params, nil, nil, &resp); err != nil {
		return nil, err
	}

	results := make([]providers.AutocompleteResult, 0, len(resp.Features))
	for _, raw := range resp.Features {
		feature, point, ok := decodeFeature(raw)
		if !ok {
			continue
		}
		results = append(results, providers.AutocompleteResult{
			Address:  feature.Properties.address(),
			Location: point,
			Raw:      raw,
		})
	}
	return results, nil
}

// DistanceMatrix calculates pairwise distances and durations between
// sources and targets. Both lists are capped at 10 points.
func (p *Provider) DistanceMatrix(ctx context.Context, sources, targets []providers.GeoPoint, mode providers.TravelMode, units providers.DistanceUnit) (*providers.DistanceMatrixResult, error) {
	if err := providers.ValidatePointList("sources", sources); err != nil {
		return nil, err
	}
	if err := providers.ValidatePointList("targets", targets); err != nil {
		return nil, err
	}
	if len(sources) > maxMatrixPoints || len(targets) > maxMatrixPoints {
		return nil, errors.NewValidationError("maximum 10 sources and 10 targets are supported per request")
	}

	params := url.Values{}
	params.Set("sources", joinPoints(sources))
	params.Set("targets", joinPoints(targets))
	params.Set("apiKey", p.apiKey)

	var resp matrixResponse
	if err := p.session.Do(ctx, http.MethodGet, p.baseURL+"/routematrix", params, nil, nil, &resp); err != nil {
		return nil, err
	}

	distances := make([][]float64, 0, len(resp.SourcesToTargets))
	durations := make([][]float64, 0, len(resp.SourcesToTargets))
	for _, row := range resp.SourcesToTargets {
		distanceRow := make([]float64, 0, len(row))
		durationRow := make([]float64, 0, len(row))
		for _, cell := range row {
			distanceRow = append(distanceRow, cell.Distance)
			durationRow = append(durationRow, cell.Time)
		}
		distances = append(distances, distanceRow)
		durations = append(durations, durationRow)
	}

	return &providers.DistanceMatrixResult{
		Distances: distances,
		Durations: durations,
		Unit:      "metric",
		Sources:   sources,
		Targets:   targets,
	}, nil
}

// Route calculates route distance and duration between two points.
// A successful response carrying zero route features is an API error:
// unlike a geocoding search, a route between valid points is expected
// to exist.
func (p *Provider) Route(ctx context.Context, source, target providers.GeoPoint, mode providers.TravelMode) (*providers.RouteInfo, error) {
	if err := providers.ValidatePoint("source", source); err != nil {
		return nil, err
	}
	if err := providers.ValidatePoint("target", target); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("from", source.String())
	params.Set("to", target.String())
	params.Set("mode", string(mode))
	params.Set("apiKey", p.apiKey)

	var resp featureCollection
	if err := p.session.Do(ctx, http.MethodGet, p.baseURL+"/routing", params, nil, nil, &resp); err != nil {
		return nil, err
	}

	if len(resp.Features) == 0 {
		return nil, errors.NewAPIError("no route found between the provided locations", nil)
	}

	var feature geoFeature
	if err := json.Unmarshal(resp.Features[0], &feature); err != nil {
		return nil, errors.NewAPIError("failed to parse route feature", err)
	}

	return providers.NewRouteInfo(providers.RouteInfoInput{
		DistanceMeters:  &feature.Properties.Distance,
		DurationSeconds: &feature.Properties.Time,
	})
}

// Close releases the provider's HTTP session
func (p *Provider) Close() error {
	return p.session.Close()
}

func joinPoints(points []providers.GeoPoint) string {
	parts := make([]string, 0, len(points))
	for _, point := range points {
		parts = append(parts, fmt.Sprintf("%g,%g", point.Latitude, point.Longitude))
	}
	return strings.Join(parts, "|")
}

// decodeFeature unmarshals one feature and extracts its point.
// Features without usable coordinates are skipped by the callers.
func decodeFeature(raw json.RawMessage) (geoFeature, providers.GeoPoint, bool) {
	var feature geoFeature
	if err := json.Unmarshal(raw, &feature); err != nil {
		return feature, providers.GeoPoint{}, false
	}
	coords := feature.Geometry.Coordinates
	if len(coords) < 2 {
		return feature, providers.GeoPoint{}, false
	}
	// The GeoJSON wire order is [longitude, latitude]; the internal
	// model stores latitude first, so the indices swap here.
	return feature, providers.GeoPoint{Latitude: coords[1], Longitude: coords[0]}, true
}

type featureCollection struct {
	Features []json.RawMessage `json:"features"`
}

type geoFeature struct {
	Properties geoProperties `json:"properties"`
	Geometry   geoGeometry   `json:"geometry"`
}

type geoProperties struct {
	Street      string  `json:"street"`
	HouseNumber string  `json:"housenumber"`
	City        string  `json:"city"`
	Postcode    string  `json:"postcode"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	State       string  `json:"state"`
	Formatted   string  `json:"formatted"`
	Rank        geoRank `json:"rank"`

	// Routing features only
	Distance float64 `json:"distance"`
	Time     float64 `json:"time"`
}

func (p geoProperties) address() providers.Address {
	return providers.Address{
		Street:           p.Street,
		HouseNumber:      p.HouseNumber,
		City:             p.City,
		Postcode:         p.Postcode,
		Country:          p.Country,
		CountryCode:      p.CountryCode,
		State:            p.State,
		FormattedAddress: p.Formatted,
	}
}

type geoRank struct {
	Confidence              *float64 `json:"confidence"`
	ConfidenceBuildingLevel *float64 `json:"confidence_building_level"`
	ConfidenceStreetLevel   *float64 `json:"confidence_street_level"`
	ConfidenceCityLevel     *float64 `json:"confidence_city_level"`
}

type geoGeometry struct {
	Coordinates []float64 `json:"coordinates"`
}

type matrixResponse struct {
	SourcesToTargets [][]matrixCell `json:"sources_to_targets"`
}

type matrixCell struct {
	Distance float64 `json:"distance"`
	Time     float64 `json:"time"`
}
