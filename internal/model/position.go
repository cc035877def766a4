package model

// Position is the ranked placement of a participation.
type Position string

const (
	PositionFirst       Position = "1st"
	PositionSecond      Position = "2nd"
	PositionThird       Position = "3rd"
	PositionParticipant Position = "participant"
)

// Valid reports whether p is a known position.
func (p Position) Valid() bool {
	switch p {
	case PositionFirst, PositionSecond, PositionThird, PositionParticipant:
		return true
	}
	return false
}

// Rank returns the sort key: 1st < 2nd < 3rd < participant < anything else.
func (p Position) Rank() int {
	switch p {
	case PositionFirst:
		return 1
	case PositionSecond:
		return 2
	case PositionThird:
		return 3
	case PositionParticipant:
		return 4
	default:
		return 5
	}
}
