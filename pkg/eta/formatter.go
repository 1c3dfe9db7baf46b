package eta

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidFeedTimestamp marks an arrival feed whose generated_timestamp
// is absent or unparseable. Every countdown is computed against that
// instant, so the whole ETA query fails rather than guessing a reference
var ErrInvalidFeedTimestamp = errors.New("arrival feed generated_timestamp is missing or invalid")

// ParseGeneratedAt parses the feed's snapshot instant
func ParseGeneratedAt(value string) (time.Time, error) {
	generatedAt, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFeedTimestamp, value)
	}

	return generatedAt, nil
}

// FormatETA renders one arrival instant as a countdown relative to the
// feed's snapshot instant. A nil or unparseable arrival renders as an
// empty cell - partial per-row data is routine, not an error. An arrival
// at or before the snapshot renders as LEAVING
func FormatETA(arrival *string, generatedAt time.Time) string {
	if arrival == nil {
		return ""
	}

	arrivalTime, err := time.Parse(time.RFC3339, *arrival)
	if err != nil {
		return ""
	}

	delta := int64(arrivalTime.Sub(generatedAt) / time.Second)
	if delta <= 0 {
		return "LEAVING"
	}

	// 3 chars for minutes, 2 for seconds so cells line up in the table
	return fmt.Sprintf("%3dm %2ds", delta/60, delta%60)
}
