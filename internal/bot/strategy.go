package bot

import (
	"math/rand"

	"github.com/efreeman/hexfront/pkg/hexwar"
)

// Strategy produces one full turn of actions for a team from a
// read-only state snapshot. The returned list is ordered, always ends
// with EndTurn, and is never empty.
type Strategy interface {
	Name() string
	PlanTurn(gs *hexwar.GameState, team hexwar.Team) []hexwar.Action
}

// StrategyForDifficulty returns the strategy for a difficulty level.
// rng seeds any randomness the strategy uses; pass a fixed source for
// reproducible games.
func StrategyForDifficulty(difficulty string, rng *rand.Rand) Strategy {
	switch difficulty {
	case "idle":
		return IdleStrategy{}
	case "random":
		return NewRandomStrategy(rng)
	default:
		return NewGreedyAI(rng)
	}
}

// --- IdleStrategy ---

// IdleStrategy waits with every unit and ends the turn. Baseline
// opponent for arena runs and tests.
type IdleStrategy struct{}

func (IdleStrategy) Name() string { return "idle" }

func (IdleStrategy) PlanTurn(gs *hexwar.GameState, team hexwar.Team) []hexwar.Action {
	var actions []hexwar.Action
	for _, u := range gs.UnitsOf(team) {
		if u.HasActed {
			continue
		}
		actions = append(actions, hexwar.Action{Type: hexwar.ActionWait, UnitID: u.ID})
	}
	return append(actions, hexwar.Action{Type: hexwar.ActionEndTurn})
}

// --- RandomStrategy ---

// RandomStrategy produces random but valid turns: random affordable
// builds and random legal moves, attacking whatever ends up in range.
type RandomStrategy struct {
	rng *rand.Rand
}

// NewRandomStrategy returns a RandomStrategy drawing from rng. A nil
// rng gets a fresh non-deterministic source.
func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &RandomStrategy{rng: rng}
}

func (*RandomStrategy) Name() string { return "random" }

func (s *RandomStrategy) PlanTurn(gs *hexwar.GameState, team hexwar.Team) []hexwar.Action {
	ts := gs.Teams[team]
	var actions []hexwar.Action

	// Random production with a running funds counter so the batch
	// never overspends.
	if ts != nil {
		funds := ts.Resources.Funds
		for _, f := range gs.BuildingsOf(team, hexwar.BuildingFactory) {
			if gs.UnitAt(f.Pos) != nil {
				continue
			}
			var affordable []*hexwar.UnitTemplate
			for i := range ts.Templates {
				if ts.Templates[i].Cost <= funds {
					affordable = append(affordable, &ts.Templates[i])
				}
			}
			if len(affordable) == 0 {
				continue
			}
			pick := affordable[s.rng.Intn(len(affordable))]
			funds -= pick.Cost
			actions = append(actions, hexwar.Action{
				Type:       hexwar.ActionBuild,
				Factory:    f.Pos,
				TemplateID: pick.ID,
			})
		}
	}

	for _, u := range gs.UnitsOf(team) {
		if u.HasActed {
			continue
		}
		pos := u.Pos
		blocked, occupied := hexwar.MovementObstacles(gs, u)
		reach := sortedReachable(hexwar.ReachablePositions(gs.Grid, u.Pos, u.Speed, u.Costs, blocked, occupied))
		if len(reach) > 1 && s.rng.Float64() < 0.7 {
			dest := reach[s.rng.Intn(len(reach))]
			if dest.Pos != u.Pos {
				actions = append(actions, hexwar.Action{Type: hexwar.ActionMove, UnitID: u.ID, Target: dest.Pos})
				pos = dest.Pos
			}
		}

		attacked := false
		for _, e := range gs.LiveEnemies(team) {
			if hexwar.HexDistance(pos, e.Pos) <= u.Range {
				actions = append(actions, hexwar.Action{Type: hexwar.ActionAttack, UnitID: u.ID, Target: e.Pos})
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		if b := gs.BuildingAt(pos); b != nil && u.CanCapture && b.CapturableBy(team) {
			actions = append(actions, hexwar.Action{Type: hexwar.ActionCapture, UnitID: u.ID})
		} else {
			actions = append(actions, hexwar.Action{Type: hexwar.ActionWait, UnitID: u.ID})
		}
	}

	return append(actions, hexwar.Action{Type: hexwar.ActionEndTurn})
}
