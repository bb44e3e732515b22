// Package scenario loads starting game states from YAML files and
// provides a built-in default skirmish.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/efreeman/hexfront/pkg/hexwar"
)

// File is the YAML schema of a scenario. Everything is declared by id
// and resolved against the catalog when the game state is assembled.
type File struct {
	Name string `yaml:"name"`
	Map  struct {
		Radius int `yaml:"radius"` // hexes of plains around origin, 0 = tiles only
		Tiles  []struct {
			Pos     hexwar.Hex     `yaml:"pos"`
			Terrain hexwar.Terrain `yaml:"terrain"`
		} `yaml:"tiles"`
	} `yaml:"map"`
	Catalog struct {
		Chassis []ChassisDef `yaml:"chassis"`
		Weapons []WeaponDef  `yaml:"weapons"`
		Systems []SystemDef  `yaml:"systems"`
	} `yaml:"catalog"`
	Techs []TechDef          `yaml:"techs"`
	Teams map[string]TeamDef `yaml:"teams"`
}

type ChassisDef struct {
	ID       string             `yaml:"id"`
	Name     string             `yaml:"name"`
	Speed    float64            `yaml:"speed"`
	Capacity int                `yaml:"capacity"`
	Cost     int                `yaml:"cost"`
	Costs    map[string]float64 `yaml:"costs"` // terrain overrides
	Armored  bool               `yaml:"armored"`
}

type WeaponDef struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Attack        int      `yaml:"attack"`
	Range         int      `yaml:"range"`
	Weight        int      `yaml:"weight"`
	Cost          int      `yaml:"cost"`
	ArmorPiercing bool     `yaml:"armor_piercing"`
	Compatible    []string `yaml:"compatible"`
}

type SystemDef struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Weight        int      `yaml:"weight"`
	Cost          int      `yaml:"cost"`
	Compatible    []string `yaml:"compatible"`
	GrantsCapture bool     `yaml:"grants_capture"`
	GrantsBuild   bool     `yaml:"grants_build"`
	GrantsArmor   bool     `yaml:"grants_armor"`
}

type TechDef struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Cost     int      `yaml:"cost"`
	Requires []string `yaml:"requires"`
	Chassis  []string `yaml:"chassis"`
	Weapons  []string `yaml:"weapons"`
	Systems  []string `yaml:"systems"`
}

type TeamDef struct {
	Funds     int           `yaml:"funds"`
	Science   int           `yaml:"science"`
	Chassis   []string      `yaml:"chassis"` // components unlocked from the start
	Weapons   []string      `yaml:"weapons"`
	Systems   []string      `yaml:"systems"`
	Templates []TemplateDef `yaml:"templates"`
	Units     []UnitDef     `yaml:"units"`
	Buildings []BuildingDef `yaml:"buildings"`
}

type TemplateDef struct {
	ID      string   `yaml:"id"`
	Chassis string   `yaml:"chassis"`
	Weapon  string   `yaml:"weapon"`
	Systems []string `yaml:"systems"`
}

type UnitDef struct {
	Template string     `yaml:"template"`
	Pos      hexwar.Hex `yaml:"pos"`
}

type BuildingDef struct {
	Type hexwar.BuildingType `yaml:"type"`
	Pos  hexwar.Hex          `yaml:"pos"`
}

// Load reads and assembles a scenario file.
func Load(path string) (*hexwar.GameState, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return FromBytes(b)
}

// FromBytes assembles a game state from raw scenario YAML.
func FromBytes(b []byte) (*hexwar.GameState, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return f.Build()
}

// Build resolves the declarative file into a playable state. Every id
// reference is checked; a dangling one fails the whole load.
func (f *File) Build() (*hexwar.GameState, error) {
	gs := &hexwar.GameState{
		Grid:    hexwar.NewGrid(),
		Catalog: hexwar.NewCatalog(),
		Teams:   make(map[hexwar.Team]*hexwar.TeamState),
	}

	if f.Map.Radius > 0 {
		fillHexagon(gs.Grid, f.Map.Radius)
	}
	for _, t := range f.Map.Tiles {
		gs.Grid.SetTile(t.Pos, t.Terrain)
	}
	if gs.Grid.Len() == 0 {
		return nil, fmt.Errorf("scenario %q has an empty map", f.Name)
	}

	for _, d := range f.Catalog.Chassis {
		gs.Catalog.Chassis[d.ID] = hexwar.Chassis{
			ID: d.ID, Name: d.Name, Speed: d.Speed, Capacity: d.Capacity,
			Cost: d.Cost, Costs: terrainCosts(d.Costs), Armored: d.Armored,
		}
	}
	for _, d := range f.Catalog.Weapons {
		gs.Catalog.Weapons[d.ID] = hexwar.Weapon{
			ID: d.ID, Name: d.Name, Attack: d.Attack, Range: d.Range,
			Weight: d.Weight, Cost: d.Cost, ArmorPiercing: d.ArmorPiercing,
			Compatible: d.Compatible,
		}
	}
	for _, d := range f.Catalog.Systems {
		gs.Catalog.Systems[d.ID] = hexwar.SystemModule{
			ID: d.ID, Name: d.Name, Weight: d.Weight, Cost: d.Cost,
			Compatible: d.Compatible, GrantsCapture: d.GrantsCapture,
			GrantsBuild: d.GrantsBuild, GrantsArmor: d.GrantsArmor,
		}
	}

	unitSeq := 0
	for name, def := range f.Teams {
		team := hexwar.Team(name)
		ts := &hexwar.TeamState{
			Resources: hexwar.Resources{Funds: def.Funds, Science: def.Science},
		}
		for _, id := range def.Chassis {
			c, ok := gs.Catalog.Chassis[id]
			if !ok {
				return nil, fmt.Errorf("team %s: unknown chassis %q", name, id)
			}
			ts.Chassis = append(ts.Chassis, c)
		}
		for _, id := range def.Weapons {
			w, ok := gs.Catalog.Weapons[id]
			if !ok {
				return nil, fmt.Errorf("team %s: unknown weapon %q", name, id)
			}
			ts.Weapons = append(ts.Weapons, w)
		}
		for _, id := range def.Systems {
			s, ok := gs.Catalog.Systems[id]
			if !ok {
				return nil, fmt.Errorf("team %s: unknown system %q", name, id)
			}
			ts.Systems = append(ts.Systems, s)
		}
		for _, td := range f.Techs {
			ts.Techs = append(ts.Techs, hexwar.TechNode{
				ID: td.ID, Name: td.Name, Cost: td.Cost, Requires: td.Requires,
				Chassis: td.Chassis, Weapons: td.Weapons, Systems: td.Systems,
			})
		}
		for _, td := range def.Templates {
			tpl, err := buildTemplate(ts, td)
			if err != nil {
				return nil, fmt.Errorf("team %s: %w", name, err)
			}
			ts.Templates = append(ts.Templates, tpl)
		}
		gs.Teams[team] = ts

		for _, ud := range def.Units {
			tpl := ts.TemplateByID(ud.Template)
			if tpl == nil {
				return nil, fmt.Errorf("team %s: unit references unknown template %q", name, ud.Template)
			}
			if _, ok := gs.Grid.TileAt(ud.Pos); !ok {
				return nil, fmt.Errorf("team %s: unit at %v is off the map", name, ud.Pos)
			}
			unitSeq++
			gs.Units = append(gs.Units, tpl.NewUnit(fmt.Sprintf("%s-u%d", name, unitSeq), team, ud.Pos))
		}
		for _, bd := range def.Buildings {
			if _, ok := gs.Grid.TileAt(bd.Pos); !ok {
				return nil, fmt.Errorf("team %s: building at %v is off the map", name, bd.Pos)
			}
			gs.Buildings = append(gs.Buildings, hexwar.Building{
				Pos: bd.Pos, Type: bd.Type, Owner: team,
				Resistance: hexwar.DefaultCaptureResistance,
			})
		}
	}

	return gs, nil
}

func buildTemplate(ts *hexwar.TeamState, td TemplateDef) (hexwar.UnitTemplate, error) {
	chassis := ts.ChassisByID(td.Chassis)
	if chassis == nil {
		return hexwar.UnitTemplate{}, fmt.Errorf("template %q: chassis %q not unlocked", td.ID, td.Chassis)
	}
	var weapon *hexwar.Weapon
	if td.Weapon != "" {
		if weapon = ts.WeaponByID(td.Weapon); weapon == nil {
			return hexwar.UnitTemplate{}, fmt.Errorf("template %q: weapon %q not unlocked", td.ID, td.Weapon)
		}
	}
	var systems []*hexwar.SystemModule
	for _, id := range td.Systems {
		s := ts.SystemByID(id)
		if s == nil {
			return hexwar.UnitTemplate{}, fmt.Errorf("template %q: system %q not unlocked", td.ID, id)
		}
		systems = append(systems, s)
	}
	tpl, ok := hexwar.DeriveTemplate(td.ID, td.ID, chassis, weapon, systems)
	if !ok {
		return hexwar.UnitTemplate{}, fmt.Errorf("template %q: invalid component combination", td.ID)
	}
	return tpl, nil
}

func terrainCosts(overrides map[string]float64) hexwar.TerrainCosts {
	costs := hexwar.DefaultCosts()
	for k, v := range overrides {
		costs[hexwar.Terrain(k)] = v
	}
	return costs
}

// fillHexagon covers a hex-shaped area of the given radius with plains.
func fillHexagon(g *hexwar.Grid, radius int) {
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			h := hexwar.Hex{Q: q, R: r}
			if hexwar.HexDistance(hexwar.Hex{}, h) <= radius {
				g.SetTile(h, hexwar.TerrainPlains)
			}
		}
	}
}
