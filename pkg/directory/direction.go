package directory

import "strings"

type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"

	// directionUnnamed covers feed tokens other than O/I - records carrying
	// one are kept but never match a direction-filtered query
	directionUnnamed Direction = ""
)

// DirectionFromToken maps the feed's bound/dir token onto a direction
func DirectionFromToken(token string) Direction {
	switch token {
	case "O":
		return DirectionOutbound
	case "I":
		return DirectionInbound
	}

	return directionUnnamed
}

// ParseDirection accepts free text from the CLI. Anything other than
// inbound/outbound comes back as-is and will fail existence validation
// with the user's own words in the error message
func ParseDirection(value string) Direction {
	return Direction(strings.ToLower(value))
}

func (d Direction) Known() bool {
	return d == DirectionInbound || d == DirectionOutbound
}

// MatchesToken reports whether a feed token resolves to this direction.
// Unnamed directions match nothing on either side
func (d Direction) MatchesToken(token string) bool {
	mapped := DirectionFromToken(token)

	return mapped != directionUnnamed && mapped == d
}
