package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/efreeman/hexfront/pkg/hexwar"
)

func TestDefaultScenario(t *testing.T) {
	gs := Default()

	if len(gs.Teams) != 2 {
		t.Fatalf("teams = %d, want 2", len(gs.Teams))
	}
	for _, team := range []hexwar.Team{"red", "blue"} {
		ts := gs.Teams[team]
		if ts == nil {
			t.Fatalf("missing team %s", team)
		}
		if ts.Resources.Funds != 400 {
			t.Errorf("%s funds = %d, want 400", team, ts.Resources.Funds)
		}
		if ts.TemplateByID("rifleman") == nil {
			t.Errorf("%s missing the rifleman template", team)
		}
		if len(ts.Techs) != 3 {
			t.Errorf("%s techs = %d, want 3", team, len(ts.Techs))
		}
		if units := gs.UnitsOf(team); len(units) != 1 {
			t.Errorf("%s units = %d, want 1", team, len(units))
		}
		if buildings := gs.BuildingsOf(team, ""); len(buildings) != 3 {
			t.Errorf("%s buildings = %d, want 3", team, len(buildings))
		}
	}

	// The map is a radius-5 hexagon with terrain overrides applied.
	if terr, ok := gs.Grid.TileAt(hexwar.Hex{Q: 0, R: 0}); !ok || terr != hexwar.TerrainRoad {
		t.Errorf("origin terrain = %v, want road", terr)
	}
	if _, ok := gs.Grid.TileAt(hexwar.Hex{Q: 6, R: 0}); ok {
		t.Error("tile outside the radius should not exist")
	}

	// Derived template stats come from the components.
	tpl := gs.Teams["red"].TemplateByID("rifleman")
	if tpl.Attack != 4 || !tpl.CanCapture {
		t.Errorf("rifleman = attack %d capture %v", tpl.Attack, tpl.CanCapture)
	}
	if tpl.Cost != 200 {
		t.Errorf("rifleman cost = %d, want chassis+rifle+kit", tpl.Cost)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	const tiny = `
name: tiny
map:
  radius: 2
catalog:
  chassis:
    - {id: foot, name: Foot, speed: 2, capacity: 1, cost: 50}
teams:
  solo:
    funds: 100
    chassis: [foot]
    templates:
      - {id: walker, chassis: foot}
    units:
      - {template: walker, pos: {q: 0, r: 0}}
`
	if err := os.WriteFile(path, []byte(tiny), 0o644); err != nil {
		t.Fatal(err)
	}
	gs, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(gs.UnitsOf("solo")) != 1 {
		t.Fatalf("units = %d, want 1", len(gs.UnitsOf("solo")))
	}
	u := gs.UnitsOf("solo")[0]
	if u.Speed != 2 || u.Attack != 0 {
		t.Errorf("unit = %+v", u)
	}
}

func TestLoadRejectsDanglingReferences(t *testing.T) {
	cases := map[string]string{
		"unknown chassis": `
map: {radius: 1}
teams:
  a:
    chassis: [ghost]
`,
		"unknown template": `
map: {radius: 1}
catalog:
  chassis: [{id: foot, speed: 1, capacity: 1}]
teams:
  a:
    chassis: [foot]
    units: [{template: ghost, pos: {q: 0, r: 0}}]
`,
		"unit off the map": `
map: {radius: 1}
catalog:
  chassis: [{id: foot, speed: 1, capacity: 1}]
teams:
  a:
    chassis: [foot]
    templates: [{id: walker, chassis: foot}]
    units: [{template: walker, pos: {q: 9, r: 9}}]
`,
		"empty map": `
teams:
  a: {funds: 1}
`,
	}
	for name, yml := range cases {
		if _, err := FromBytes([]byte(yml)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoadRejectsInvalidTemplate(t *testing.T) {
	const overweight = `
map: {radius: 1}
catalog:
  chassis: [{id: foot, speed: 1, capacity: 1}]
  weapons: [{id: mortar, attack: 5, range: 2, weight: 3, cost: 10}]
teams:
  a:
    chassis: [foot]
    weapons: [mortar]
    templates: [{id: bad, chassis: foot, weapon: mortar}]
`
	if _, err := FromBytes([]byte(overweight)); err == nil {
		t.Error("over-capacity template should fail the load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
