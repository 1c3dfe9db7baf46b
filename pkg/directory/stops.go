package directory

import (
	"fmt"

	"github.com/kmbeta/kmbeta/pkg/kmb"
)

// StopDirectory maps stop identifiers to display names. Built once per
// invocation from the full bulk listing and read-only afterwards
type StopDirectory struct {
	names map[string]string
}

func NewStopDirectory(stops []kmb.Stop, language kmb.Language) (*StopDirectory, error) {
	names := make(map[string]string, len(stops))

	for _, stop := range stops {
		name := stop.Name(language)
		if stop.Stop == "" || name == "" {
			return nil, fmt.Errorf("%w: stop record missing id or %s name", ErrMalformedRecord, language)
		}

		// last record wins if the feed ever repeats an id
		names[stop.Stop] = name
	}

	return &StopDirectory{names: names}, nil
}

func (d *StopDirectory) Lookup(stopID string) (string, error) {
	name, ok := d.names[stopID]
	if !ok {
		return "", &UnknownStopError{StopID: stopID}
	}

	return name, nil
}

func (d *StopDirectory) Size() int {
	return len(d.names)
}
