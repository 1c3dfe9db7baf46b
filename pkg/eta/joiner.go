package eta

import (
	"strconv"

	"github.com/kmbeta/kmbeta/pkg/directory"
	"github.com/kmbeta/kmbeta/pkg/kmb"
)

// Row is one display-ready line of an ETA table. Each slot is either a
// countdown, the literal LEAVING, or empty
type Row struct {
	Seq      string
	StopName string
	ETA1     string
	ETA2     string
	ETA3     string
}

type slotKey struct {
	seq  int
	slot int
}

// Join matches a route variant's stop sequence against one arrival feed
// snapshot. Arrival events for the other direction are dropped, up to
// three upcoming arrivals are slotted per stop, and stops with no events
// get empty cells. A stop id the Stop Directory has never heard of fails
// the whole join - dropping the row would silently misalign the sequence
// column
func Join(routeStops []RouteStopEntry, feed *kmb.ETAFeed, direction directory.Direction, stops *directory.StopDirectory) ([]Row, error) {
	generatedAt, err := ParseGeneratedAt(feed.GeneratedTimestamp)
	if err != nil {
		return nil, err
	}

	slots := make(map[slotKey]string)
	for _, event := range feed.Entries {
		if !direction.MatchesToken(event.Dir) {
			continue
		}

		slots[slotKey{seq: event.Seq, slot: event.EtaSeq}] = FormatETA(event.Eta, generatedAt)
	}

	rows := make([]Row, 0, len(routeStops))
	for _, entry := range routeStops {
		stopName, err := stops.Lookup(entry.Stop)
		if err != nil {
			return nil, err
		}

		rows = append(rows, Row{
			Seq:      strconv.Itoa(entry.Seq),
			StopName: stopName,
			ETA1:     slots[slotKey{seq: entry.Seq, slot: 1}],
			ETA2:     slots[slotKey{seq: entry.Seq, slot: 2}],
			ETA3:     slots[slotKey{seq: entry.Seq, slot: 3}],
		})
	}

	return rows, nil
}
