package directory

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord marks a bulk-load record missing a required field.
// A single bad record fails the whole load - queries must never run
// against a partially built directory
var ErrMalformedRecord = errors.New("malformed record")

type UnknownStopError struct {
	StopID string
}

func (e *UnknownStopError) Error() string {
	return fmt.Sprintf("(stop: %s) does not exist!", e.StopID)
}

type UnknownRouteError struct {
	Route string
}

func (e *UnknownRouteError) Error() string {
	return fmt.Sprintf("(route: %s) does not exist!", e.Route)
}

type UnknownRouteVariantError struct {
	Route       string
	Direction   Direction
	ServiceType int
}

func (e *UnknownRouteVariantError) Error() string {
	return fmt.Sprintf("(route: %s, direction: %s, service_type: %d) does not exist!", e.Route, e.Direction, e.ServiceType)
}
