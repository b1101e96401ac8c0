package shared

// Location is a position in a named world
type Location struct {
	World string  `json:"world"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

// Above returns the location raised by the given number of blocks
func (l Location) Above(blocks float64) Location {
	l.Y += blocks
	return l
}

// IsZero reports whether the location is unset
func (l Location) IsZero() bool {
	return l.World == "" && l.X == 0 && l.Y == 0 && l.Z == 0
}
