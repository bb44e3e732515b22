package hexwar

// TechNode is one entry in a team's research tree. A node is locked
// while any prerequisite remains un-researched, available once all
// prerequisites are unlocked, and unlocked after being researched.
type TechNode struct {
	ID       string
	Name     string
	Cost     int // science
	Requires []string
	Unlocked bool

	// Component ids (resolved against the scenario catalog) granted to
	// the team when this node is researched.
	Chassis []string
	Weapons []string
	Systems []string
}

// Available reports whether the node can be researched right now, given
// the team's full tech list: not yet unlocked and every prerequisite
// unlocked.
func (n *TechNode) Available(techs []TechNode) bool {
	if n.Unlocked {
		return false
	}
	for _, req := range n.Requires {
		found := false
		for i := range techs {
			if techs[i].ID == req && techs[i].Unlocked {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Catalog holds every component defined by the scenario. Teams unlock
// subsets of it through research.
type Catalog struct {
	Chassis map[string]Chassis
	Weapons map[string]Weapon
	Systems map[string]SystemModule
}

// NewCatalog returns an empty component catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Chassis: make(map[string]Chassis),
		Weapons: make(map[string]Weapon),
		Systems: make(map[string]SystemModule),
	}
}
