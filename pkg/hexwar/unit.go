package hexwar

// Team identifies a player. The empty team is neutral and owns
// unclaimed buildings.
type Team string

// Neutral is the ownerless team.
const Neutral Team = ""

// MaxHealth is the health ceiling for every unit. Damage formulas scale
// against it.
const MaxHealth = 10

// Unit is a single piece on the board. Health runs 0..MaxHealth; a unit
// at 0 is dead and excluded from every query, though the record may
// linger until the engine prunes it.
type Unit struct {
	ID       string
	Team     Team
	Pos      Hex
	Speed    float64
	Attack   int
	Range    int
	Health   int
	Costs    TerrainCosts
	Template string // template this unit was built from, if any

	CanCapture    bool
	CanBuild      bool
	Armored       bool
	ArmorPiercing bool
	HasActed      bool
}

// IsAlive reports whether the unit still participates in the game.
func (u *Unit) IsAlive() bool {
	return u.Health > 0
}
