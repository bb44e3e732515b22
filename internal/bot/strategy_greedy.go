package bot

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/efreeman/hexfront/pkg/hexwar"
)

// GreedyAI is the standard computer opponent: a strict ordered cascade
// of greedy heuristics with no lookahead, no backtracking, and no global
// optimization. Each turn it runs five phases in fixed order (research,
// template design, production, per-unit actions, end turn) and each
// phase takes the first acceptable choice it finds.
type GreedyAI struct {
	rng *rand.Rand
}

// NewGreedyAI returns a planner drawing randomness (template picks) from
// rng. A nil rng gets a fresh non-deterministic source; pass a seeded
// one for reproducible turns.
func NewGreedyAI(rng *rand.Rand) *GreedyAI {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &GreedyAI{rng: rng}
}

func (*GreedyAI) Name() string { return "greedy" }

// PlanTurn produces the team's whole turn up front. A phase with no
// opportunity simply contributes nothing; the list always ends with
// EndTurn.
func (g *GreedyAI) PlanTurn(gs *hexwar.GameState, team hexwar.Team) []hexwar.Action {
	var actions []hexwar.Action

	ts := gs.Teams[team]
	if ts != nil {
		if act, ok := g.planResearch(ts); ok {
			actions = append(actions, act)
		}
		actions = append(actions, g.planDesigns(ts)...)
		actions = append(actions, g.planProduction(gs, team, ts)...)
	}
	for _, u := range gs.UnitsOf(team) {
		if u.HasActed {
			continue
		}
		actions = append(actions, g.planUnit(gs, team, u)...)
	}

	return append(actions, hexwar.Action{Type: hexwar.ActionEndTurn})
}

// planResearch picks the cheapest affordable available tech; ties go to
// whichever sorts first. Zero or one research action per turn.
func (g *GreedyAI) planResearch(ts *hexwar.TeamState) (hexwar.Action, bool) {
	avail := ts.AvailableTechs()
	sort.SliceStable(avail, func(i, j int) bool {
		return avail[i].Cost < avail[j].Cost
	})
	for _, node := range avail {
		if node.Cost <= ts.Resources.Science {
			return hexwar.Action{Type: hexwar.ActionResearch, TechID: node.ID}, true
		}
	}
	return hexwar.Action{}, false
}

// planDesigns synthesizes one template per unused component. For each
// unlocked chassis with no template, it fits the first compatible weapon
// within capacity and then the first compatible system in the capacity
// left over; unused weapons and systems get the same treatment around
// the first chassis that can carry them. Components with no valid
// combination are skipped.
func (g *GreedyAI) planDesigns(ts *hexwar.TeamState) []hexwar.Action {
	usedChassis := make(map[string]bool)
	usedWeapons := make(map[string]bool)
	usedSystems := make(map[string]bool)
	names := make(map[string]bool)
	for i := range ts.Templates {
		t := &ts.Templates[i]
		usedChassis[t.Chassis] = true
		if t.Weapon != "" {
			usedWeapons[t.Weapon] = true
		}
		for _, s := range t.Systems {
			usedSystems[s] = true
		}
		names[t.ID] = true
	}

	var actions []hexwar.Action
	commit := func(chassis *hexwar.Chassis, weapon *hexwar.Weapon, system *hexwar.SystemModule) {
		act := hexwar.Action{
			Type:      hexwar.ActionDesign,
			Name:      designName(names, chassis.ID),
			ChassisID: chassis.ID,
		}
		usedChassis[chassis.ID] = true
		if weapon != nil {
			act.WeaponID = weapon.ID
			usedWeapons[weapon.ID] = true
		}
		if system != nil {
			act.SystemIDs = []string{system.ID}
			usedSystems[system.ID] = true
		}
		names[act.Name] = true
		actions = append(actions, act)
	}

	// Unused chassis first: a bare chassis is always a valid design, so
	// each one yields a template.
	for i := range ts.Chassis {
		chassis := &ts.Chassis[i]
		if usedChassis[chassis.ID] {
			continue
		}
		capacity := chassis.Capacity
		weapon := firstWeaponFitting(ts, chassis, capacity)
		if weapon != nil {
			capacity -= weapon.Weight
		}
		system := firstSystemFitting(ts, chassis, capacity)
		commit(chassis, weapon, system)
	}

	// Unused weapons: mount on the first chassis that can carry them.
	for i := range ts.Weapons {
		weapon := &ts.Weapons[i]
		if usedWeapons[weapon.ID] {
			continue
		}
		chassis := firstChassisCarrying(ts, weapon.Weight, weapon.Compatible)
		if chassis == nil {
			continue
		}
		system := firstSystemFitting(ts, chassis, chassis.Capacity-weapon.Weight)
		commit(chassis, weapon, system)
	}

	// Unused systems: first chassis that fits them, then the first
	// weapon that fits alongside.
	for i := range ts.Systems {
		system := &ts.Systems[i]
		if usedSystems[system.ID] {
			continue
		}
		chassis := firstChassisCarrying(ts, system.Weight, system.Compatible)
		if chassis == nil {
			continue
		}
		weapon := firstWeaponFitting(ts, chassis, chassis.Capacity-system.Weight)
		commit(chassis, weapon, system)
	}

	return actions
}

// planProduction walks the team's factories front-line first (ascending
// hex distance to the nearest enemy unit or building) and builds a
// uniformly random affordable template at each unoccupied one. The funds
// counter is shared across the phase, so later factories see the buying
// power left by earlier builds; this is the planner's only intra-turn
// state update.
func (g *GreedyAI) planProduction(gs *hexwar.GameState, team hexwar.Team, ts *hexwar.TeamState) []hexwar.Action {
	factories := gs.BuildingsOf(team, hexwar.BuildingFactory)
	sort.SliceStable(factories, func(i, j int) bool {
		return nearestEnemyDistance(gs, factories[i].Pos, team) < nearestEnemyDistance(gs, factories[j].Pos, team)
	})

	var actions []hexwar.Action
	funds := ts.Resources.Funds
	for _, f := range factories {
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
		// Uniform pick, deliberately not cheapest: variety beats
		// optimal spend here.
		pick := affordable[g.rng.Intn(len(affordable))]
		funds -= pick.Cost
		actions = append(actions, hexwar.Action{
			Type:       hexwar.ActionBuild,
			Factory:    f.Pos,
			TemplateID: pick.ID,
		})
	}
	return actions
}

// designName returns chassis-mkN for the first N not already taken.
func designName(taken map[string]bool, chassisID string) string {
	for n := 1; ; n++ {
		name := fmt.Sprintf("%s-mk%d", chassisID, n)
		if !taken[name] {
			return name
		}
	}
}

func firstWeaponFitting(ts *hexwar.TeamState, chassis *hexwar.Chassis, capacity int) *hexwar.Weapon {
	for i := range ts.Weapons {
		w := &ts.Weapons[i]
		if w.FitsChassis(chassis.ID) && w.Weight <= capacity {
			return w
		}
	}
	return nil
}

func firstSystemFitting(ts *hexwar.TeamState, chassis *hexwar.Chassis, capacity int) *hexwar.SystemModule {
	for i := range ts.Systems {
		s := &ts.Systems[i]
		if s.FitsChassis(chassis.ID) && s.Weight <= capacity {
			return s
		}
	}
	return nil
}

func firstChassisCarrying(ts *hexwar.TeamState, weight int, compatible []string) *hexwar.Chassis {
	for i := range ts.Chassis {
		c := &ts.Chassis[i]
		if weight > c.Capacity {
			continue
		}
		ok := len(compatible) == 0
		for _, id := range compatible {
			if id == c.ID {
				ok = true
				break
			}
		}
		if ok {
			return c
		}
	}
	return nil
}
