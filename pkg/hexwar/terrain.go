package hexwar

import "math"

// Terrain identifies a tile type on the board.
type Terrain string

const (
	TerrainPlains   Terrain = "plains"
	TerrainRoad     Terrain = "road"
	TerrainForest   Terrain = "forest"
	TerrainHills    Terrain = "hills"
	TerrainMountain Terrain = "mountain"
	TerrainWater    Terrain = "water"
)

// Impassable is the sentinel movement cost for terrain a unit can never
// enter.
var Impassable = math.Inf(1)

// TerrainCosts maps terrain types to per-tile movement cost for one
// movement profile. A missing entry means the terrain is impassable for
// that profile. Costs below 1 are legal (roads are commonly 0.5).
type TerrainCosts map[Terrain]float64

// Cost returns the movement cost for the given terrain, or Impassable
// when the profile has no entry for it.
func (tc TerrainCosts) Cost(t Terrain) float64 {
	c, ok := tc[t]
	if !ok {
		return Impassable
	}
	return c
}

// Passable reports whether the profile can enter the given terrain.
func (tc TerrainCosts) Passable(t Terrain) bool {
	return !math.IsInf(tc.Cost(t), 1)
}

// MinCost returns the smallest finite cost in the profile, or Impassable
// when the profile cannot enter any terrain. Used to scale the A*
// heuristic so that sub-1 road costs keep it admissible.
func (tc TerrainCosts) MinCost() float64 {
	min := Impassable
	for _, c := range tc {
		if c < min {
			min = c
		}
	}
	return min
}

// DefaultCosts returns the standard ground movement profile. Water has
// no entry and stays impassable.
func DefaultCosts() TerrainCosts {
	return TerrainCosts{
		TerrainPlains:   1,
		TerrainRoad:     0.5,
		TerrainForest:   1.5,
		TerrainHills:    2,
		TerrainMountain: 3,
	}
}

// Clone returns an independent copy of the profile.
func (tc TerrainCosts) Clone() TerrainCosts {
	out := make(TerrainCosts, len(tc))
	for t, c := range tc {
		out[t] = c
	}
	return out
}
