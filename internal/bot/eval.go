package bot

import (
	"sort"

	"github.com/efreeman/hexfront/pkg/hexwar"
)

// nearestEnemyDistance returns the hex distance from pos to the closest
// enemy unit or enemy-owned building, or a large sentinel when the team
// has no visible enemy. Drives the front-line-first factory ordering.
func nearestEnemyDistance(gs *hexwar.GameState, pos hexwar.Hex, team hexwar.Team) int {
	const far = 1 << 20
	best := far
	for _, e := range gs.LiveEnemies(team) {
		if d := hexwar.HexDistance(pos, e.Pos); d < best {
			best = d
		}
	}
	for i := range gs.Buildings {
		b := &gs.Buildings[i]
		if b.Owner == team || b.Owner == hexwar.Neutral {
			continue
		}
		if d := hexwar.HexDistance(pos, b.Pos); d < best {
			best = d
		}
	}
	return best
}

// sortedReachable flattens a flood-fill result into a deterministic
// order: cheapest first, coordinates breaking ties. Map iteration order
// would make seeded games unreproducible.
func sortedReachable(reach map[hexwar.Hex]hexwar.ReachableTile) []hexwar.ReachableTile {
	out := make([]hexwar.ReachableTile, 0, len(reach))
	for _, rt := range reach {
		out = append(out, rt)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost < out[j].Cost
		}
		if out[i].Pos.Q != out[j].Pos.Q {
			return out[i].Pos.Q < out[j].Pos.Q
		}
		return out[i].Pos.R < out[j].Pos.R
	})
	return out
}

// nearestTargetPathCost returns the cheapest real path cost from pos to
// any target tile. Each target tile is temporarily lifted out of the
// blocked set so the path may end on it.
func nearestTargetPathCost(tm hexwar.TileMap, pos hexwar.Hex, targets []hexwar.Hex, costs hexwar.TerrainCosts, blocked map[hexwar.Hex]bool) (float64, bool) {
	best := hexwar.Impassable
	found := false
	for _, t := range targets {
		unblocked := false
		if blocked[t] {
			delete(blocked, t)
			unblocked = true
		}
		p := hexwar.FindPath(tm, pos, t, costs, blocked)
		if unblocked {
			blocked[t] = true
		}
		if p == nil {
			continue
		}
		if !found || p.Cost < best {
			best = p.Cost
			found = true
		}
	}
	return best, found
}
