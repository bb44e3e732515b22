package hexwar

import "fmt"

// Resources is a team's spendable balances. Income collection raises
// them, spend calls lower them; a spend that would drive a balance
// negative is rejected by the applier, never performed.
type Resources struct {
	Funds   int
	Science int
}

// TeamState is everything one team owns besides units and buildings:
// balances, unlocked components, designed templates, and the research
// tree. The engine owns these records and passes them by reference into
// each planning call.
type TeamState struct {
	Resources Resources

	Chassis []Chassis
	Weapons []Weapon
	Systems []SystemModule

	Templates []UnitTemplate
	Techs     []TechNode
}

// TemplateByID returns the named template, or nil.
func (ts *TeamState) TemplateByID(id string) *UnitTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// ChassisByID returns the unlocked chassis, or nil.
func (ts *TeamState) ChassisByID(id string) *Chassis {
	for i := range ts.Chassis {
		if ts.Chassis[i].ID == id {
			return &ts.Chassis[i]
		}
	}
	return nil
}

// WeaponByID returns the unlocked weapon, or nil.
func (ts *TeamState) WeaponByID(id string) *Weapon {
	for i := range ts.Weapons {
		if ts.Weapons[i].ID == id {
			return &ts.Weapons[i]
		}
	}
	return nil
}

// SystemByID returns the unlocked system module, or nil.
func (ts *TeamState) SystemByID(id string) *SystemModule {
	for i := range ts.Systems {
		if ts.Systems[i].ID == id {
			return &ts.Systems[i]
		}
	}
	return nil
}

// AvailableTechs returns the nodes researchable right now.
func (ts *TeamState) AvailableTechs() []TechNode {
	var out []TechNode
	for i := range ts.Techs {
		if ts.Techs[i].Available(ts.Techs) {
			out = append(out, ts.Techs[i])
		}
	}
	return out
}

// GameState is a complete snapshot of the game. Planners treat it as
// read-only; only the applier mutates it.
type GameState struct {
	Grid      *Grid
	Catalog   *Catalog
	Units     []Unit
	Buildings []Building
	Teams     map[Team]*TeamState

	// Turn counts completed full rounds; unitSeq feeds generated unit
	// ids.
	Turn    int
	unitSeq int
}

// UnitAt returns the live unit on the tile, or nil.
func (gs *GameState) UnitAt(pos Hex) *Unit {
	for i := range gs.Units {
		if gs.Units[i].Pos == pos && gs.Units[i].IsAlive() {
			return &gs.Units[i]
		}
	}
	return nil
}

// UnitByID returns the live unit with the given id, or nil.
func (gs *GameState) UnitByID(id string) *Unit {
	for i := range gs.Units {
		if gs.Units[i].ID == id && gs.Units[i].IsAlive() {
			return &gs.Units[i]
		}
	}
	return nil
}

// BuildingAt returns the building on the tile, or nil.
func (gs *GameState) BuildingAt(pos Hex) *Building {
	for i := range gs.Buildings {
		if gs.Buildings[i].Pos == pos {
			return &gs.Buildings[i]
		}
	}
	return nil
}

// UnitsOf returns the live units belonging to the team.
func (gs *GameState) UnitsOf(team Team) []*Unit {
	var out []*Unit
	for i := range gs.Units {
		if gs.Units[i].Team == team && gs.Units[i].IsAlive() {
			out = append(out, &gs.Units[i])
		}
	}
	return out
}

// LiveEnemies returns the live units of every other team.
func (gs *GameState) LiveEnemies(team Team) []*Unit {
	var out []*Unit
	for i := range gs.Units {
		if gs.Units[i].Team != team && gs.Units[i].IsAlive() {
			out = append(out, &gs.Units[i])
		}
	}
	return out
}

// BuildingsOf returns the buildings owned by the team, optionally
// filtered by type (empty matches all).
func (gs *GameState) BuildingsOf(team Team, bt BuildingType) []*Building {
	var out []*Building
	for i := range gs.Buildings {
		if gs.Buildings[i].Owner != team {
			continue
		}
		if bt != "" && gs.Buildings[i].Type != bt {
			continue
		}
		out = append(out, &gs.Buildings[i])
	}
	return out
}

// TeamAlive reports whether the team still has a live unit or an owned
// building.
func (gs *GameState) TeamAlive(team Team) bool {
	return len(gs.UnitsOf(team)) > 0 || len(gs.BuildingsOf(team, "")) > 0
}

// NextUnitID generates a fresh unit id for production.
func (gs *GameState) NextUnitID() string {
	gs.unitSeq++
	return fmt.Sprintf("u%d", gs.unitSeq)
}

// Clone returns a deep copy of the snapshot. Needed by harnesses that
// replay or fork games; the grid and catalog are shared copies since
// neither changes during play.
func (gs *GameState) Clone() *GameState {
	c := &GameState{
		Grid:    gs.Grid,
		Catalog: gs.Catalog,
		Turn:    gs.Turn,
		unitSeq: gs.unitSeq,
	}
	c.Units = make([]Unit, len(gs.Units))
	copy(c.Units, gs.Units)
	for i := range c.Units {
		c.Units[i].Costs = gs.Units[i].Costs.Clone()
	}
	c.Buildings = make([]Building, len(gs.Buildings))
	copy(c.Buildings, gs.Buildings)
	c.Teams = make(map[Team]*TeamState, len(gs.Teams))
	for team, ts := range gs.Teams {
		cp := &TeamState{Resources: ts.Resources}
		cp.Chassis = append([]Chassis(nil), ts.Chassis...)
		cp.Weapons = append([]Weapon(nil), ts.Weapons...)
		cp.Systems = append([]SystemModule(nil), ts.Systems...)
		cp.Templates = append([]UnitTemplate(nil), ts.Templates...)
		cp.Techs = append([]TechNode(nil), ts.Techs...)
		c.Teams[team] = cp
	}
	return c
}

