package hexwar

import "math/rand"

// The applier is the authoritative side of the planner/engine split:
// planners produce a whole turn's actions up front, and each action is
// re-validated against the current state when applied. An action that
// went stale between planning and application (a factory occupied by a
// fresh unit, a target already dead, funds spent earlier in the batch)
// is dropped silently; the rest of the batch continues.

// Per-building income collected at end of turn.
const (
	CityIncome     = 100 // funds per owned city
	FactoryIncome  = 50  // funds per owned factory
	LabScienceGain = 50  // science per owned lab
)

// SpendFunds deducts the amount if the balance covers it. A spend that
// would drive the balance negative is rejected untouched.
func (ts *TeamState) SpendFunds(amount int) bool {
	if amount < 0 || ts.Resources.Funds < amount {
		return false
	}
	ts.Resources.Funds -= amount
	return true
}

// SpendScience deducts the amount if the balance covers it.
func (ts *TeamState) SpendScience(amount int) bool {
	if amount < 0 || ts.Resources.Science < amount {
		return false
	}
	ts.Resources.Science -= amount
	return true
}

// ApplyAction validates and applies a single action for the team,
// reporting whether it took effect. rng supplies combat variance rolls;
// it must be non-nil when attack actions are possible.
func ApplyAction(gs *GameState, team Team, act Action, rng *rand.Rand) bool {
	ts := gs.Teams[team]
	if ts == nil {
		return false
	}

	switch act.Type {
	case ActionResearch:
		return applyResearch(gs, ts, act)
	case ActionDesign:
		return applyDesign(ts, act)
	case ActionBuild:
		return applyBuild(gs, team, ts, act)
	case ActionMove:
		return applyMove(gs, team, act)
	case ActionAttack:
		return applyAttack(gs, team, act, rng)
	case ActionCapture:
		return applyCapture(gs, team, act)
	case ActionWait:
		u := gs.UnitByID(act.UnitID)
		if u == nil || u.Team != team {
			return false
		}
		u.HasActed = true
		return true
	case ActionEndTurn:
		for _, u := range gs.UnitsOf(team) {
			u.HasActed = false
		}
		collectIncome(gs, team, ts)
		return true
	default:
		return false
	}
}

func applyResearch(gs *GameState, ts *TeamState, act Action) bool {
	var node *TechNode
	for i := range ts.Techs {
		if ts.Techs[i].ID == act.TechID {
			node = &ts.Techs[i]
			break
		}
	}
	if node == nil || !node.Available(ts.Techs) {
		return false
	}
	if !ts.SpendScience(node.Cost) {
		return false
	}
	node.Unlocked = true
	grantComponents(gs.Catalog, ts, node)
	return true
}

// grantComponents adds the node's components to the team's unlocked
// lists, skipping ids already present or missing from the catalog.
func grantComponents(cat *Catalog, ts *TeamState, node *TechNode) {
	if cat == nil {
		return
	}
	for _, id := range node.Chassis {
		if c, ok := cat.Chassis[id]; ok && ts.ChassisByID(id) == nil {
			ts.Chassis = append(ts.Chassis, c)
		}
	}
	for _, id := range node.Weapons {
		if w, ok := cat.Weapons[id]; ok && ts.WeaponByID(id) == nil {
			ts.Weapons = append(ts.Weapons, w)
		}
	}
	for _, id := range node.Systems {
		if s, ok := cat.Systems[id]; ok && ts.SystemByID(id) == nil {
			ts.Systems = append(ts.Systems, s)
		}
	}
}

func applyDesign(ts *TeamState, act Action) bool {
	if act.Name == "" || ts.TemplateByID(act.Name) != nil {
		return false
	}
	chassis := ts.ChassisByID(act.ChassisID)
	if chassis == nil {
		return false
	}
	var weapon *Weapon
	if act.WeaponID != "" {
		if weapon = ts.WeaponByID(act.WeaponID); weapon == nil {
			return false
		}
	}
	var systems []*SystemModule
	for _, id := range act.SystemIDs {
		s := ts.SystemByID(id)
		if s == nil {
			return false
		}
		systems = append(systems, s)
	}
	tpl, ok := DeriveTemplate(act.Name, act.Name, chassis, weapon, systems)
	if !ok {
		return false
	}
	ts.Templates = append(ts.Templates, tpl)
	return true
}

func applyBuild(gs *GameState, team Team, ts *TeamState, act Action) bool {
	b := gs.BuildingAt(act.Factory)
	if b == nil || b.Type != BuildingFactory || b.Owner != team {
		return false
	}
	if gs.UnitAt(b.Pos) != nil {
		return false // factory occupied since planning
	}
	tpl := ts.TemplateByID(act.TemplateID)
	if tpl == nil {
		return false
	}
	if !ts.SpendFunds(tpl.Cost) {
		return false
	}
	u := tpl.NewUnit(gs.NextUnitID(), team, b.Pos)
	u.HasActed = true // fresh units act next turn
	gs.Units = append(gs.Units, u)
	return true
}

func applyMove(gs *GameState, team Team, act Action) bool {
	u := gs.UnitByID(act.UnitID)
	if u == nil || u.Team != team {
		return false
	}
	if act.Target == u.Pos {
		return true
	}
	blocked, occupied := MovementObstacles(gs, u)
	reach := ReachablePositions(gs.Grid, u.Pos, u.Speed, u.Costs, blocked, occupied)
	if _, ok := reach[act.Target]; !ok {
		return false
	}
	u.Pos = act.Target
	return true
}

func applyAttack(gs *GameState, team Team, act Action, rng *rand.Rand) bool {
	u := gs.UnitByID(act.UnitID)
	if u == nil || u.Team != team {
		return false
	}
	target := gs.UnitAt(act.Target)
	if target == nil || target.Team == team {
		return false
	}
	if !InRange(u, target.Pos) {
		return false
	}
	u.HasActed = true
	Execute(u, target, RollVariance(rng), RollVariance(rng))
	return true
}

func applyCapture(gs *GameState, team Team, act Action) bool {
	u := gs.UnitByID(act.UnitID)
	if u == nil || u.Team != team || !u.CanCapture {
		return false
	}
	b := gs.BuildingAt(u.Pos)
	if b == nil || !b.CapturableBy(team) {
		return false
	}
	if b.CapturingUnit != u.ID {
		// A different unit starting over resets the counter.
		b.Resistance = DefaultCaptureResistance
		b.CapturingUnit = u.ID
	}
	u.HasActed = true
	b.Resistance -= u.Health
	if b.Resistance <= 0 {
		b.Owner = team
		b.Resistance = DefaultCaptureResistance
		b.CapturingUnit = ""
	}
	return true
}

func collectIncome(gs *GameState, team Team, ts *TeamState) {
	for i := range gs.Buildings {
		if gs.Buildings[i].Owner != team {
			continue
		}
		switch gs.Buildings[i].Type {
		case BuildingCity:
			ts.Resources.Funds += CityIncome
		case BuildingFactory:
			ts.Resources.Funds += FactoryIncome
		case BuildingLab:
			ts.Resources.Science += LabScienceGain
		}
	}
}

// MovementObstacles derives the pathfinding inputs for a unit: enemy
// positions block movement outright, friendly units can be passed
// through but not stopped on.
func MovementObstacles(gs *GameState, u *Unit) (blocked, occupied map[Hex]bool) {
	blocked = make(map[Hex]bool)
	occupied = make(map[Hex]bool)
	for i := range gs.Units {
		other := &gs.Units[i]
		if !other.IsAlive() || other.ID == u.ID {
			continue
		}
		if other.Team == u.Team {
			occupied[other.Pos] = true
		} else {
			blocked[other.Pos] = true
		}
	}
	return blocked, occupied
}

// RemoveDead prunes units with zero health and releases any capture
// they were holding.
func RemoveDead(gs *GameState) {
	dead := make(map[string]bool)
	live := gs.Units[:0]
	for i := range gs.Units {
		if gs.Units[i].IsAlive() {
			live = append(live, gs.Units[i])
		} else {
			dead[gs.Units[i].ID] = true
		}
	}
	gs.Units = live
	if len(dead) == 0 {
		return
	}
	for i := range gs.Buildings {
		b := &gs.Buildings[i]
		if b.CapturingUnit != "" && dead[b.CapturingUnit] {
			b.Resistance = DefaultCaptureResistance
			b.CapturingUnit = ""
		}
	}
}
