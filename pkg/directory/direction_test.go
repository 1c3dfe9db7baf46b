package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionFromToken(t *testing.T) {
	assert.Equal(t, DirectionOutbound, DirectionFromToken("O"))
	assert.Equal(t, DirectionInbound, DirectionFromToken("I"))

	// every other token maps to the unnamed direction
	for _, token := range []string{"", "X", "o", "i", "OUT", "inbound"} {
		assert.Equal(t, directionUnnamed, DirectionFromToken(token), "token %q", token)
	}
}

func TestDirectionMatchesToken(t *testing.T) {
	assert.True(t, DirectionOutbound.MatchesToken("O"))
	assert.True(t, DirectionInbound.MatchesToken("I"))

	assert.False(t, DirectionOutbound.MatchesToken("I"))
	assert.False(t, DirectionInbound.MatchesToken("O"))

	// unnamed tokens match neither direction, and an unnamed direction
	// matches no token - not even another unnamed one
	assert.False(t, DirectionOutbound.MatchesToken("X"))
	assert.False(t, DirectionInbound.MatchesToken(""))
	assert.False(t, directionUnnamed.MatchesToken("X"))
	assert.False(t, ParseDirection("sideways").MatchesToken("O"))
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, DirectionInbound, ParseDirection("inbound"))
	assert.Equal(t, DirectionOutbound, ParseDirection("Outbound"))

	assert.False(t, ParseDirection("north").Known())
	assert.True(t, ParseDirection("INBOUND").Known())
}
