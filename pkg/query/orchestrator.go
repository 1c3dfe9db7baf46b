package query

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/kmbeta/kmbeta/pkg/directory"
	"github.com/kmbeta/kmbeta/pkg/eta"
	"github.com/kmbeta/kmbeta/pkg/kmb"
)

// Orchestrator owns the per-invocation directories and dispatches the
// three query kinds against them. Both directories are fully built by
// Load before any query runs and are read-only afterwards
type Orchestrator struct {
	Client   *kmb.Client
	Language kmb.Language

	Stops  *directory.StopDirectory
	Routes *directory.RouteDirectory
}

func NewOrchestrator(client *kmb.Client, language kmb.Language) *Orchestrator {
	return &Orchestrator{
		Client:   client,
		Language: language,
	}
}

// Load fetches & indexes the bulk stop and route listings. The two feeds
// are independent so they download concurrently; either failure aborts
// the invocation before any query dispatch
func (o *Orchestrator) Load(ctx context.Context) error {
	p := pool.New().WithErrors().WithContext(ctx)

	p.Go(func(ctx context.Context) error {
		stops, err := o.Client.Stops(ctx)
		if err != nil {
			return err
		}

		stopDirectory, err := directory.NewStopDirectory(stops, o.Language)
		if err != nil {
			return err
		}
		o.Stops = stopDirectory

		return nil
	})

	p.Go(func(ctx context.Context) error {
		routes, err := o.Client.Routes(ctx)
		if err != nil {
			return err
		}

		routeDirectory, err := directory.NewRouteDirectory(routes, o.Language)
		if err != nil {
			return err
		}
		o.Routes = routeDirectory

		return nil
	})

	if err := p.Wait(); err != nil {
		return err
	}

	log.Debug().
		Int("stops", o.Stops.Size()).
		Int("routes", o.Routes.Size()).
		Msg("Loaded directories")

	return nil
}

// Route answers a route lookup with every variant of the number
func (o *Orchestrator) Route(routeNumber string) ([]directory.RouteVariant, error) {
	return o.Routes.Find(strings.ToUpper(routeNumber))
}

// ETA answers a live arrival lookup for one route variant. The route
// directory validates the combination exists before the route-stop and
// arrival fetches are issued - both of those then run concurrently
func (o *Orchestrator) ETA(ctx context.Context, routeNumber string, direction directory.Direction, serviceType int) ([]eta.Row, error) {
	routeNumber = strings.ToUpper(routeNumber)

	if _, err := o.Routes.FindFiltered(routeNumber, direction, serviceType); err != nil {
		return nil, err
	}

	var routeStops []eta.RouteStopEntry
	var feed *kmb.ETAFeed

	p := pool.New().WithErrors().WithContext(ctx)

	p.Go(func(ctx context.Context) error {
		rows, err := o.Client.RouteStops(ctx, routeNumber, string(direction), serviceType)
		if err != nil {
			return err
		}

		routeStops, err = eta.BuildSequence(rows)

		return err
	})

	p.Go(func(ctx context.Context) error {
		var err error
		feed, err = o.Client.RouteETA(ctx, routeNumber, serviceType)

		return err
	})

	if err := p.Wait(); err != nil {
		return nil, err
	}

	return eta.Join(routeStops, feed, direction, o.Stops)
}

// All answers the full listing query in deterministic order
func (o *Orchestrator) All() []directory.RouteVariant {
	return o.Routes.All()
}
