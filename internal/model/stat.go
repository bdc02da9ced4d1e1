package model

// Stat names one of the three training stats
type Stat string

const (
	StatStrength    Stat = "STRENGTH"
	StatEndurance   Stat = "ENDURANCE"
	StatFlexibility Stat = "FLEXIBILITY"
)

// Stats lists every stat in a fixed order
var Stats = []Stat{StatStrength, StatEndurance, StatFlexibility}

// ParseStat converts a string to a Stat
func ParseStat(s string) (Stat, error) {
	switch Stat(s) {
	case StatStrength, StatEndurance, StatFlexibility:
		return Stat(s), nil
	default:
		return "", ErrInvalidStat
	}
}
