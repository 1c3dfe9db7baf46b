package eta

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formatterReference = time.Date(2024, 6, 1, 12, 0, 0, 0, time.FixedZone("HKT", 8*60*60))

func arrivalAfter(delta time.Duration) *string {
	value := formatterReference.Add(delta).Format(time.RFC3339)
	return &value
}

func TestFormatETACountdown(t *testing.T) {
	assert.Equal(t, "  2m  5s", FormatETA(arrivalAfter(125*time.Second), formatterReference))
	assert.Equal(t, "  0m  1s", FormatETA(arrivalAfter(1*time.Second), formatterReference))
	assert.Equal(t, "  1m  0s", FormatETA(arrivalAfter(60*time.Second), formatterReference))
	assert.Equal(t, " 10m 59s", FormatETA(arrivalAfter(659*time.Second), formatterReference))
	assert.Equal(t, "100m  0s", FormatETA(arrivalAfter(6000*time.Second), formatterReference))
}

func TestFormatETALeaving(t *testing.T) {
	assert.Equal(t, "LEAVING", FormatETA(arrivalAfter(0), formatterReference))
	assert.Equal(t, "LEAVING", FormatETA(arrivalAfter(-5*time.Second), formatterReference))
	assert.Equal(t, "LEAVING", FormatETA(arrivalAfter(-time.Hour), formatterReference))
}

func TestFormatETAAbsentOrUnparseable(t *testing.T) {
	assert.Equal(t, "", FormatETA(nil, formatterReference))

	garbage := "not-a-timestamp"
	assert.Equal(t, "", FormatETA(&garbage, formatterReference))

	empty := ""
	assert.Equal(t, "", FormatETA(&empty, formatterReference))
}

func TestFormatETAHonoursOffsets(t *testing.T) {
	// same instant expressed in UTC still reads as LEAVING
	utc := formatterReference.UTC().Format(time.RFC3339)
	assert.Equal(t, "LEAVING", FormatETA(&utc, formatterReference))

	later := formatterReference.UTC().Add(90 * time.Second).Format(time.RFC3339)
	assert.Equal(t, "  1m 30s", FormatETA(&later, formatterReference))
}

func TestFormatETAMonotonic(t *testing.T) {
	// later arrivals never render "sooner": LEAVING only ever denotes a
	// non-positive delta, and positive deltas grow with the arrival time
	previousLeaving := true
	for _, deltaSeconds := range []int{-300, -1, 0, 1, 59, 60, 125, 3599, 7200} {
		rendered := FormatETA(arrivalAfter(time.Duration(deltaSeconds)*time.Second), formatterReference)

		if deltaSeconds <= 0 {
			require.Equal(t, "LEAVING", rendered, "delta %d", deltaSeconds)
			require.True(t, previousLeaving, "LEAVING after a countdown at delta %d", deltaSeconds)
		} else {
			require.NotEqual(t, "LEAVING", rendered, "delta %d", deltaSeconds)
			expected := fmt.Sprintf("%3dm %2ds", deltaSeconds/60, deltaSeconds%60)
			require.Equal(t, expected, rendered)
			previousLeaving = false
		}
	}
}

func TestParseGeneratedAt(t *testing.T) {
	generatedAt, err := ParseGeneratedAt("2024-06-01T12:00:00+08:00")
	require.NoError(t, err)
	assert.True(t, generatedAt.Equal(formatterReference))
}

func TestParseGeneratedAtInvalid(t *testing.T) {
	for _, value := range []string{"", "yesterday", "2024-06-01"} {
		_, err := ParseGeneratedAt(value)
		require.ErrorIs(t, err, ErrInvalidFeedTimestamp, "value %q", value)
	}
}
