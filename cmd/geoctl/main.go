package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/geomaps/locationkit"
	"github.com/geomaps/locationkit/internal/observability"
	"github.com/geomaps/locationkit/pkg/config"
	"github.com/geomaps/locationkit/providers"
	"github.com/geomaps/locationkit/providers/geoapify"
)

const usage = `usage: geoctl <command> [args]

commands:
  geocode <query>
  reverse <lat> <lon>
  autocomplete <query> [limit]
  matrix <lat1> <lon1> <lat2> <lon2>
  route <lat1> <lon1> <lat2> <lon2>
`

func main() {
	cfg := config.Load()
	observability.InitLogger("geoctl", cfg.Log.Env, cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	provider, err := geoapify.New(
		cfg.Geoapify.APIKey,
		geoapify.WithBaseURL(cfg.Geoapify.BaseURL),
		geoapify.WithTimeout(cfg.Geoapify.Timeout),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create provider")
	}

	client, err := locationkit.NewLocationClient(provider)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create client")
	}
	defer client.Close()

	if err := run(context.Background(), client, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("command failed")
	}
}

func run(ctx context.Context, client *locationkit.LocationClient, command string, args []string) error {
	switch command {
	case "geocode":
		if len(args) < 1 {
			return fmt.Errorf("geocode requires a query")
		}
		results, err := client.Geocode(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(results)

	case "reverse":
		point, _, err := parsePoint(args)
		if err != nil {
			return err
		}
		addresses, err := client.ReverseGeocode(ctx, point)
		if err != nil {
			return err
		}
		return printJSON(addresses)

	case "autocomplete":
		if len(args) < 1 {
			return fmt.Errorf("autocomplete requires a query")
		}
		limit := 5
		if len(args) > 1 {
			parsed, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid limit %q", args[1])
			}
			limit = parsed
		}
		results, err := client.Autocomplete(ctx, args[0], limit)
		if err != nil {
			return err
		}
		return printJSON(results)

	case "matrix":
		source, rest, err := parsePoint(args)
		if err != nil {
			return err
		}
		target, _, err := parsePoint(rest)
		if err != nil {
			return err
		}
		result, err := client.DistanceMatrix(ctx,
			[]providers.GeoPoint{source},
			[]providers.GeoPoint{target},
			providers.TravelModeDriving,
			providers.DistanceUnitKilometers,
		)
		if err != nil {
			return err
		}
		return printJSON(result)

	case "route":
		source, rest, err := parsePoint(args)
		if err != nil {
			return err
		}
		target, _, err := parsePoint(rest)
		if err != nil {
			return err
		}
		info, err := client.Route(ctx, source, target, providers.TravelModeDriving)
		if err != nil {
			return err
		}
		return printJSON(info)

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func parsePoint(args []string) (providers.GeoPoint, []string, error) {
	if len(args) < 2 {
		return providers.GeoPoint{}, nil, fmt.Errorf("expected <lat> <lon>")
	}
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return providers.GeoPoint{}, nil, fmt.Errorf("invalid latitude %q", args[0])
	}
	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return providers.GeoPoint{}, nil, fmt.Errorf("invalid longitude %q", args[1])
	}
	return providers.GeoPoint{Latitude: lat, Longitude: lon}, args[2:], nil
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
