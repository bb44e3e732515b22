package hexwar

// Units are designed from three modular component categories: a chassis
// (locomotion, weight capacity, terrain profile), at most one weapon,
// and any number of system modules that fit the remaining capacity.

// Chassis is the mandatory base component of a unit design.
type Chassis struct {
	ID       string
	Name     string
	Speed    float64
	Capacity int // weight budget shared by weapon and systems
	Cost     int
	Costs    TerrainCosts
	Armored  bool
}

// Weapon is an optional component granting attack capability.
type Weapon struct {
	ID            string
	Name          string
	Attack        int
	Range         int
	Weight        int
	Cost          int
	ArmorPiercing bool
	// Compatible restricts the weapon to the listed chassis ids. Empty
	// means any chassis.
	Compatible []string
}

// SystemModule is an optional component granting a capability flag.
type SystemModule struct {
	ID     string
	Name   string
	Weight int
	Cost   int
	// Compatible restricts the module to the listed chassis ids. Empty
	// means any chassis.
	Compatible []string

	GrantsCapture bool
	GrantsBuild   bool
	GrantsArmor   bool
}

// UnitTemplate is a named component bundle with stats derived from its
// parts. Templates are immutable once designed.
type UnitTemplate struct {
	ID      string
	Name    string
	Chassis string
	Weapon  string // empty for unarmed designs
	Systems []string

	Speed         float64
	Attack        int
	Range         int
	Cost          int
	Costs         TerrainCosts
	CanCapture    bool
	CanBuild      bool
	Armored       bool
	ArmorPiercing bool
}

// FitsChassis reports whether the weapon may be mounted on the chassis.
func (w *Weapon) FitsChassis(chassisID string) bool {
	return compatibleWith(w.Compatible, chassisID)
}

// FitsChassis reports whether the module may be mounted on the chassis.
func (s *SystemModule) FitsChassis(chassisID string) bool {
	return compatibleWith(s.Compatible, chassisID)
}

func compatibleWith(allowed []string, chassisID string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, id := range allowed {
		if id == chassisID {
			return true
		}
	}
	return false
}

// DeriveTemplate assembles a template from components, or returns false
// when the combination is invalid: an incompatible weapon or module, or
// total weight over the chassis capacity.
func DeriveTemplate(id, name string, chassis *Chassis, weapon *Weapon, systems []*SystemModule) (UnitTemplate, bool) {
	t := UnitTemplate{
		ID:      id,
		Name:    name,
		Chassis: chassis.ID,
		Speed:   chassis.Speed,
		Cost:    chassis.Cost,
		Costs:   chassis.Costs.Clone(),
		Armored: chassis.Armored,
	}

	weight := 0
	if weapon != nil {
		if !weapon.FitsChassis(chassis.ID) {
			return UnitTemplate{}, false
		}
		weight += weapon.Weight
		t.Weapon = weapon.ID
		t.Attack = weapon.Attack
		t.Range = weapon.Range
		t.Cost += weapon.Cost
		t.ArmorPiercing = weapon.ArmorPiercing
	}
	for _, s := range systems {
		if !s.FitsChassis(chassis.ID) {
			return UnitTemplate{}, false
		}
		weight += s.Weight
		t.Systems = append(t.Systems, s.ID)
		t.Cost += s.Cost
		if s.GrantsCapture {
			t.CanCapture = true
		}
		if s.GrantsBuild {
			t.CanBuild = true
		}
		if s.GrantsArmor {
			t.Armored = true
		}
	}
	if weight > chassis.Capacity {
		return UnitTemplate{}, false
	}
	return t, true
}

// NewUnit instantiates a fresh unit from the template at full health.
func (t *UnitTemplate) NewUnit(id string, team Team, pos Hex) Unit {
	return Unit{
		ID:            id,
		Team:          team,
		Pos:           pos,
		Speed:         t.Speed,
		Attack:        t.Attack,
		Range:         t.Range,
		Health:        MaxHealth,
		Costs:         t.Costs.Clone(),
		Template:      t.ID,
		CanCapture:    t.CanCapture,
		CanBuild:      t.CanBuild,
		Armored:       t.Armored,
		ArmorPiercing: t.ArmorPiercing,
	}
}
