package hexwar

import (
	"math/rand"
	"testing"
)

// skirmishState builds a radius-4 plains board with a red infantry
// template, a factory and a lab for red, and one unit per team facing
// each other.
func skirmishState() *GameState {
	gs := &GameState{
		Grid:    hexagonGrid(4),
		Catalog: NewCatalog(),
		Teams:   make(map[Team]*TeamState),
	}

	chassis := Chassis{ID: "infantry", Speed: 3, Capacity: 2, Cost: 100, Costs: DefaultCosts()}
	rifle := Weapon{ID: "rifle", Attack: 4, Range: 1, Weight: 1, Cost: 50}
	kit := SystemModule{ID: "kit", Weight: 1, Cost: 50, GrantsCapture: true}
	gs.Catalog.Chassis[chassis.ID] = chassis
	gs.Catalog.Weapons[rifle.ID] = rifle
	gs.Catalog.Systems[kit.ID] = kit

	tpl, _ := DeriveTemplate("rifleman", "rifleman", &chassis, &rifle, []*SystemModule{&kit})

	red := &TeamState{
		Resources: Resources{Funds: 500, Science: 100},
		Chassis:   []Chassis{chassis},
		Weapons:   []Weapon{rifle},
		Systems:   []SystemModule{kit},
		Templates: []UnitTemplate{tpl},
		Techs: []TechNode{
			{ID: "cheap", Cost: 50},
			{ID: "dear", Cost: 500},
		},
	}
	blue := &TeamState{
		Resources: Resources{Funds: 500},
		Templates: []UnitTemplate{tpl},
	}
	gs.Teams["red"] = red
	gs.Teams["blue"] = blue

	gs.Units = []Unit{
		tpl.NewUnit("r1", "red", Hex{Q: -2, R: 0}),
		tpl.NewUnit("b1", "blue", Hex{Q: 2, R: 0}),
	}
	gs.Buildings = []Building{
		{Pos: Hex{Q: -3, R: 0}, Type: BuildingFactory, Owner: "red", Resistance: DefaultCaptureResistance},
		{Pos: Hex{Q: -3, R: 1}, Type: BuildingLab, Owner: "red", Resistance: DefaultCaptureResistance},
		{Pos: Hex{Q: 3, R: 0}, Type: BuildingCity, Owner: "blue", Resistance: DefaultCaptureResistance},
	}
	return gs
}

func testRNG() *rand.Rand { return rand.New(rand.NewSource(42)) }

func TestApplyResearch(t *testing.T) {
	gs := skirmishState()
	ts := gs.Teams["red"]

	if ApplyAction(gs, "red", Action{Type: ActionResearch, TechID: "dear"}, testRNG()) {
		t.Error("unaffordable research should be rejected")
	}
	if !ApplyAction(gs, "red", Action{Type: ActionResearch, TechID: "cheap"}, testRNG()) {
		t.Fatal("affordable research should apply")
	}
	if ts.Resources.Science != 50 {
		t.Errorf("science = %d, want 50", ts.Resources.Science)
	}
	if !ts.Techs[0].Unlocked {
		t.Error("node should be unlocked")
	}
	if ApplyAction(gs, "red", Action{Type: ActionResearch, TechID: "cheap"}, testRNG()) {
		t.Error("re-researching an unlocked node should be rejected")
	}
}

func TestApplyResearchGrantsComponents(t *testing.T) {
	gs := skirmishState()
	gs.Catalog.Chassis["tracks"] = Chassis{ID: "tracks", Speed: 4, Capacity: 5, Cost: 400, Costs: DefaultCosts()}
	ts := gs.Teams["red"]
	ts.Techs = append(ts.Techs, TechNode{ID: "armor", Cost: 100, Chassis: []string{"tracks"}})

	if !ApplyAction(gs, "red", Action{Type: ActionResearch, TechID: "armor"}, testRNG()) {
		t.Fatal("research should apply")
	}
	if ts.ChassisByID("tracks") == nil {
		t.Error("researched chassis should be unlocked for the team")
	}
}

func TestApplyDesign(t *testing.T) {
	gs := skirmishState()
	ts := gs.Teams["red"]

	act := Action{Type: ActionDesign, Name: "scout", ChassisID: "infantry"}
	if !ApplyAction(gs, "red", act, testRNG()) {
		t.Fatal("bare-chassis design should apply")
	}
	if ts.TemplateByID("scout") == nil {
		t.Fatal("template should exist")
	}
	if ApplyAction(gs, "red", act, testRNG()) {
		t.Error("duplicate template name should be rejected")
	}
	if ApplyAction(gs, "red", Action{Type: ActionDesign, Name: "x", ChassisID: "tracks"}, testRNG()) {
		t.Error("design on a locked chassis should be rejected")
	}
}

func TestApplyBuild(t *testing.T) {
	gs := skirmishState()
	ts := gs.Teams["red"]
	factory := Hex{Q: -3, R: 0}

	act := Action{Type: ActionBuild, Factory: factory, TemplateID: "rifleman"}
	if !ApplyAction(gs, "red", act, testRNG()) {
		t.Fatal("build should apply")
	}
	if ts.Resources.Funds != 300 {
		t.Errorf("funds = %d, want 500-200", ts.Resources.Funds)
	}
	u := gs.UnitAt(factory)
	if u == nil || u.Team != "red" {
		t.Fatal("new unit should stand on the factory")
	}
	if !u.HasActed {
		t.Error("fresh unit acts next turn, not this one")
	}
	if ApplyAction(gs, "red", act, testRNG()) {
		t.Error("build at an occupied factory should be rejected")
	}
	if ApplyAction(gs, "blue", Action{Type: ActionBuild, Factory: factory, TemplateID: "rifleman"}, testRNG()) {
		t.Error("build at an enemy factory should be rejected")
	}
}

func TestApplyBuildInsufficientFunds(t *testing.T) {
	gs := skirmishState()
	gs.Teams["red"].Resources.Funds = 100
	act := Action{Type: ActionBuild, Factory: Hex{Q: -3, R: 0}, TemplateID: "rifleman"}
	if ApplyAction(gs, "red", act, testRNG()) {
		t.Error("unaffordable build should be rejected")
	}
	if gs.Teams["red"].Resources.Funds != 100 {
		t.Error("rejected build must not spend funds")
	}
}

func TestApplyMove(t *testing.T) {
	gs := skirmishState()
	u := gs.UnitByID("r1")

	if ApplyAction(gs, "red", Action{Type: ActionMove, UnitID: "r1", Target: Hex{Q: 4, R: 0}}, testRNG()) {
		t.Error("move beyond the speed budget should be rejected")
	}
	if u.Pos != (Hex{Q: -2, R: 0}) {
		t.Error("rejected move must not relocate the unit")
	}
	if !ApplyAction(gs, "red", Action{Type: ActionMove, UnitID: "r1", Target: Hex{Q: 0, R: 0}}, testRNG()) {
		t.Fatal("legal move should apply")
	}
	if u.Pos != (Hex{Q: 0, R: 0}) {
		t.Errorf("unit at %v, want origin", u.Pos)
	}
	if u.HasActed {
		t.Error("moving alone does not end the unit's turn")
	}
}

func TestApplyMoveCannotStopOnEnemy(t *testing.T) {
	gs := skirmishState()
	gs.UnitByID("r1").Pos = Hex{Q: 1, R: 0}
	if ApplyAction(gs, "red", Action{Type: ActionMove, UnitID: "r1", Target: Hex{Q: 2, R: 0}}, testRNG()) {
		t.Error("moving onto an enemy tile should be rejected")
	}
}

func TestApplyAttack(t *testing.T) {
	gs := skirmishState()
	gs.UnitByID("r1").Pos = Hex{Q: 1, R: 0}

	if ApplyAction(gs, "red", Action{Type: ActionAttack, UnitID: "r1", Target: Hex{Q: -3, R: 0}}, testRNG()) {
		t.Error("attacking an empty tile should be rejected")
	}
	if !ApplyAction(gs, "red", Action{Type: ActionAttack, UnitID: "r1", Target: Hex{Q: 2, R: 0}}, testRNG()) {
		t.Fatal("in-range attack should apply")
	}
	if gs.UnitByID("b1").Health >= MaxHealth {
		t.Error("defender should have taken damage")
	}
	if !gs.UnitByID("r1").HasActed {
		t.Error("attacking ends the unit's turn")
	}
}

func TestApplyAttackOutOfRange(t *testing.T) {
	gs := skirmishState()
	if ApplyAction(gs, "red", Action{Type: ActionAttack, UnitID: "r1", Target: Hex{Q: 2, R: 0}}, testRNG()) {
		t.Error("attack from distance 4 with range 1 should be rejected")
	}
}

func TestApplyCaptureDrainAndTransfer(t *testing.T) {
	gs := skirmishState()
	u := gs.UnitByID("r1")
	u.Pos = Hex{Q: 3, R: 0} // blue city
	u.Health = 6

	if !ApplyAction(gs, "red", Action{Type: ActionCapture, UnitID: "r1"}, testRNG()) {
		t.Fatal("capture should apply")
	}
	b := gs.BuildingAt(u.Pos)
	if b.Resistance != 4 {
		t.Errorf("resistance = %d, want 10-6", b.Resistance)
	}
	if b.Owner != "blue" {
		t.Error("ownership must not transfer before resistance hits zero")
	}

	u.HasActed = false
	if !ApplyAction(gs, "red", Action{Type: ActionCapture, UnitID: "r1"}, testRNG()) {
		t.Fatal("second capture tick should apply")
	}
	if b.Owner != "red" {
		t.Error("ownership should transfer at zero resistance")
	}
	if b.Resistance != DefaultCaptureResistance {
		t.Errorf("resistance = %d, want reset to %d", b.Resistance, DefaultCaptureResistance)
	}
	if b.CapturingUnit != "" {
		t.Error("capturing unit should clear on transfer")
	}
}

func TestApplyCaptureInterruptedByOtherUnit(t *testing.T) {
	gs := skirmishState()
	city := gs.BuildingAt(Hex{Q: 3, R: 0})
	city.Resistance = 2
	city.CapturingUnit = "someone-else"

	u := gs.UnitByID("r1")
	u.Pos = city.Pos
	u.Health = 1

	if !ApplyAction(gs, "red", Action{Type: ActionCapture, UnitID: "r1"}, testRNG()) {
		t.Fatal("capture should apply")
	}
	// Counter resets to full before this unit's first tick.
	if city.Resistance != DefaultCaptureResistance-1 {
		t.Errorf("resistance = %d, want %d", city.Resistance, DefaultCaptureResistance-1)
	}
	if city.Owner != "blue" {
		t.Error("ownership must not transfer")
	}
}

func TestApplyCaptureRequiresCapability(t *testing.T) {
	gs := skirmishState()
	u := gs.UnitByID("r1")
	u.Pos = Hex{Q: 3, R: 0}
	u.CanCapture = false
	if ApplyAction(gs, "red", Action{Type: ActionCapture, UnitID: "r1"}, testRNG()) {
		t.Error("capture without the capability should be rejected")
	}
}

func TestApplyEndTurnIncomeAndReset(t *testing.T) {
	gs := skirmishState()
	ts := gs.Teams["red"]
	gs.UnitByID("r1").HasActed = true

	if !ApplyAction(gs, "red", Action{Type: ActionEndTurn}, testRNG()) {
		t.Fatal("end turn always applies")
	}
	if ts.Resources.Funds != 550 {
		t.Errorf("funds = %d, want 500 + factory 50", ts.Resources.Funds)
	}
	if ts.Resources.Science != 150 {
		t.Errorf("science = %d, want 100 + lab 50", ts.Resources.Science)
	}
	if gs.UnitByID("r1").HasActed {
		t.Error("end turn resets HasActed")
	}

	blue := gs.Teams["blue"]
	ApplyAction(gs, "blue", Action{Type: ActionEndTurn}, testRNG())
	if blue.Resources.Funds != 600 {
		t.Errorf("blue funds = %d, want 500 + city 100", blue.Resources.Funds)
	}
}

func TestApplyUnknownUnitRejected(t *testing.T) {
	gs := skirmishState()
	for _, typ := range []ActionType{ActionMove, ActionAttack, ActionCapture, ActionWait} {
		if ApplyAction(gs, "red", Action{Type: typ, UnitID: "ghost", Target: Hex{}}, testRNG()) {
			t.Errorf("%v for an unknown unit should be rejected", typ)
		}
	}
}

func TestRemoveDeadReleasesCapture(t *testing.T) {
	gs := skirmishState()
	city := gs.BuildingAt(Hex{Q: 3, R: 0})
	city.Resistance = 3
	city.CapturingUnit = "r1"
	gs.UnitByID("r1").Health = 0

	RemoveDead(gs)
	if gs.UnitByID("r1") != nil {
		t.Error("dead unit should be pruned")
	}
	if city.Resistance != DefaultCaptureResistance || city.CapturingUnit != "" {
		t.Errorf("capture should be released: resistance %d, unit %q", city.Resistance, city.CapturingUnit)
	}
}
