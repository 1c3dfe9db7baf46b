package eta

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/kmbeta/kmbeta/pkg/kmb"
)

// RouteStopEntry is one stop's position within a route variant's path
type RouteStopEntry struct {
	Seq  int
	Stop string
}

// BuildSequence turns raw route-stop rows into display order. The sort is
// stable so rows sharing a sequence number keep their feed order, and an
// empty feed yields an empty sequence - the orchestrator's existence gate
// is what stops that from masquerading as a successful query
func BuildSequence(rows []kmb.RouteStop) ([]RouteStopEntry, error) {
	entries := make([]RouteStopEntry, 0, len(rows))

	for _, row := range rows {
		seq, err := strconv.Atoi(row.Seq)
		if err != nil {
			return nil, fmt.Errorf("route-stop row for stop %s has invalid seq %q", row.Stop, row.Seq)
		}

		entries = append(entries, RouteStopEntry{
			Seq:  seq,
			Stop: row.Stop,
		})
	}

	slices.SortStableFunc(entries, func(a RouteStopEntry, b RouteStopEntry) int {
		return a.Seq - b.Seq
	})

	return entries, nil
}
