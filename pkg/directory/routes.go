package directory

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/kmbeta/kmbeta/pkg/kmb"
	"github.com/kmbeta/kmbeta/pkg/util"
)

// RouteVariant is one route number / direction / service type combination.
// Origin & destination are defined at this granularity, not per route number
type RouteVariant struct {
	Route       string
	ServiceType int
	Direction   Direction
	Origin      string
	Destination string
}

// RouteDirectory indexes route variants by upper-cased route number.
// The feed gives no uniqueness guarantee on the natural key, so duplicate
// variants are all retained - lookups stay deterministic because each
// bucket is sorted once at load
type RouteDirectory struct {
	variants map[string][]RouteVariant
}

func NewRouteDirectory(routes []kmb.Route, language kmb.Language) (*RouteDirectory, error) {
	variants := make(map[string][]RouteVariant)

	for _, route := range routes {
		if route.Route == "" {
			return nil, fmt.Errorf("%w: route record missing route number", ErrMalformedRecord)
		}

		serviceType, err := strconv.Atoi(route.ServiceType)
		if err != nil || serviceType < 1 {
			return nil, fmt.Errorf("%w: route %s has invalid service_type %q", ErrMalformedRecord, route.Route, route.ServiceType)
		}

		if route.Origin(language) == "" || route.Destination(language) == "" {
			return nil, fmt.Errorf("%w: route %s missing %s origin or destination name", ErrMalformedRecord, route.Route, language)
		}

		routeNumber := strings.ToUpper(route.Route)

		variants[routeNumber] = append(variants[routeNumber], RouteVariant{
			Route:       routeNumber,
			ServiceType: serviceType,
			Direction:   DirectionFromToken(route.Bound),
			Origin:      route.Origin(language),
			Destination: route.Destination(language),
		})
	}

	for _, routeVariants := range variants {
		slices.SortStableFunc(routeVariants, compareVariants)
	}

	return &RouteDirectory{variants: variants}, nil
}

// Find returns every variant of a route number, matched case-insensitively
func (d *RouteDirectory) Find(routeNumber string) ([]RouteVariant, error) {
	matches := d.variants[strings.ToUpper(routeNumber)]
	if len(matches) == 0 {
		return nil, &UnknownRouteError{Route: routeNumber}
	}

	return matches, nil
}

// FindFiltered narrows a route number down to one direction & service type.
// The ETA path uses this as its existence gate before doing any further
// network calls, so a miss reports the full attempted combination
func (d *RouteDirectory) FindFiltered(routeNumber string, direction Direction, serviceType int) ([]RouteVariant, error) {
	var matches []RouteVariant

	if direction.Known() {
		matches = slices.Clone(d.variants[strings.ToUpper(routeNumber)])
		util.InPlaceFilter(&matches, func(variant RouteVariant) bool {
			return variant.Direction == direction && variant.ServiceType == serviceType
		})
	}

	if len(matches) == 0 {
		return nil, &UnknownRouteVariantError{
			Route:       routeNumber,
			Direction:   direction,
			ServiceType: serviceType,
		}
	}

	return matches, nil
}

// All returns the entire directory ordered by route number, service type
// then direction
func (d *RouteDirectory) All() []RouteVariant {
	var all []RouteVariant
	for _, routeVariants := range d.variants {
		all = append(all, routeVariants...)
	}

	slices.SortStableFunc(all, compareVariants)

	return all
}

// Size returns the total number of route variants held
func (d *RouteDirectory) Size() int {
	size := 0
	for _, routeVariants := range d.variants {
		size += len(routeVariants)
	}

	return size
}

func compareVariants(a RouteVariant, b RouteVariant) int {
	if compare := strings.Compare(a.Route, b.Route); compare != 0 {
		return compare
	}
	if a.ServiceType != b.ServiceType {
		return a.ServiceType - b.ServiceType
	}

	return strings.Compare(string(a.Direction), string(b.Direction))
}
