// Package hexwar implements the rules of a turn-based hex-grid strategy
// game: the board, units, buildings, unit templates, research, combat
// resolution, pathfinding, and the authoritative action applier. It has
// no opinion about who issues actions; AI planners live elsewhere.
package hexwar

// Hex is a board position in axial coordinates. The third cube
// coordinate is implicit: s = -q - r.
type Hex struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// hexDirections are the six neighbor offsets in axial coordinates.
var hexDirections = [6]Hex{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent coordinates.
func (h Hex) Neighbors() [6]Hex {
	var out [6]Hex
	for i, d := range hexDirections {
		out[i] = Hex{Q: h.Q + d.Q, R: h.R + d.R}
	}
	return out
}

// HexDistance returns the hex distance between two coordinates: the max
// of the absolute cube-coordinate differences.
func HexDistance(a, b Hex) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
