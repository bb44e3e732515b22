package bot

import (
	"github.com/efreeman/hexfront/pkg/hexwar"
)

// planUnit runs the single-unit priority cascade, stopping at the first
// applicable rule: capture in place, move to capture, best attack,
// advance toward the nearest target, wait.
func (g *GreedyAI) planUnit(gs *hexwar.GameState, team hexwar.Team, u *hexwar.Unit) []hexwar.Action {
	// a. Capture in place.
	if b := gs.BuildingAt(u.Pos); b != nil && u.CanCapture && b.CapturableBy(team) {
		return []hexwar.Action{{Type: hexwar.ActionCapture, UnitID: u.ID}}
	}

	blocked, occupied := hexwar.MovementObstacles(gs, u)
	reach := sortedReachable(hexwar.ReachablePositions(gs.Grid, u.Pos, u.Speed, u.Costs, blocked, occupied))

	// b. Move to capture: nearest reachable tile with a capturable
	// building. reach is sorted cheapest first, so the first hit wins.
	if u.CanCapture {
		for _, rt := range reach {
			if rt.Pos == u.Pos {
				continue
			}
			if b := gs.BuildingAt(rt.Pos); b != nil && b.CapturableBy(team) {
				return []hexwar.Action{
					{Type: hexwar.ActionMove, UnitID: u.ID, Target: rt.Pos},
					{Type: hexwar.ActionCapture, UnitID: u.ID},
				}
			}
		}
	}

	// c. Best attack across the current tile and every reachable tile:
	// the (position, target) pair with strictly greater expected damage
	// than anything seen so far wins; ties keep the first found.
	if act, ok := g.planAttack(gs, team, u, reach); ok {
		return act
	}

	// d. Advance toward the nearest target by real pathfinding
	// distance, so blocking and terrain are respected.
	if act, ok := g.planAdvance(gs, team, u, reach, blocked); ok {
		return act
	}

	// e. Nothing to do.
	return []hexwar.Action{{Type: hexwar.ActionWait, UnitID: u.ID}}
}

func (g *GreedyAI) planAttack(gs *hexwar.GameState, team hexwar.Team, u *hexwar.Unit, reach []hexwar.ReachableTile) ([]hexwar.Action, bool) {
	enemies := gs.LiveEnemies(team)
	if len(enemies) == 0 || u.Attack <= 0 {
		return nil, false
	}

	positions := make([]hexwar.Hex, 0, len(reach)+1)
	positions = append(positions, u.Pos)
	for _, rt := range reach {
		if rt.Pos != u.Pos {
			positions = append(positions, rt.Pos)
		}
	}

	bestDamage := -1
	var bestPos, bestTarget hexwar.Hex
	for _, pos := range positions {
		for _, e := range enemies {
			if hexwar.HexDistance(pos, e.Pos) > u.Range {
				continue
			}
			if dmg := hexwar.ExpectedDamage(u, e); dmg > bestDamage {
				bestDamage = dmg
				bestPos = pos
				bestTarget = e.Pos
			}
		}
	}
	if bestDamage < 0 {
		return nil, false
	}

	var actions []hexwar.Action
	if bestPos != u.Pos {
		actions = append(actions, hexwar.Action{Type: hexwar.ActionMove, UnitID: u.ID, Target: bestPos})
	}
	actions = append(actions, hexwar.Action{Type: hexwar.ActionAttack, UnitID: u.ID, Target: bestTarget})
	return actions, true
}

// planAdvance moves to the reachable tile with the smallest real path
// distance to the nearest target. Targets are all live enemies, plus
// every non-owned building for capture-capable units. The target tile is
// lifted out of the blocked set for the distance query so the unit can
// path onto it, not merely toward it.
func (g *GreedyAI) planAdvance(gs *hexwar.GameState, team hexwar.Team, u *hexwar.Unit, reach []hexwar.ReachableTile, blocked map[hexwar.Hex]bool) ([]hexwar.Action, bool) {
	var targets []hexwar.Hex
	for _, e := range gs.LiveEnemies(team) {
		targets = append(targets, e.Pos)
	}
	if u.CanCapture {
		for i := range gs.Buildings {
			if gs.Buildings[i].CapturableBy(team) {
				targets = append(targets, gs.Buildings[i].Pos)
			}
		}
	}
	if len(targets) == 0 {
		return nil, false
	}

	bestDist := hexwar.Impassable
	var bestPos hexwar.Hex
	found := false
	for _, rt := range reach {
		d, ok := nearestTargetPathCost(gs.Grid, rt.Pos, targets, u.Costs, blocked)
		if !ok {
			continue
		}
		if !found || d < bestDist {
			bestDist = d
			bestPos = rt.Pos
			found = true
		}
	}
	if !found || bestPos == u.Pos {
		return nil, false
	}
	return []hexwar.Action{{Type: hexwar.ActionMove, UnitID: u.ID, Target: bestPos}}, true
}
