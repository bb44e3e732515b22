package hexwar

// BuildingType classifies a building's role.
type BuildingType string

const (
	BuildingCity    BuildingType = "city"    // funds income
	BuildingFactory BuildingType = "factory" // unit production
	BuildingLab     BuildingType = "lab"     // science income
)

// DefaultCaptureResistance is the full capture-resistance counter a
// building regains whenever a capture attempt is interrupted or
// completes.
const DefaultCaptureResistance = 10

// Building is a fixed structure on the board. Buildings are created at
// scenario setup and persist for the whole game; only the owner changes,
// and only via a completed capture.
type Building struct {
	Pos  Hex
	Type BuildingType

	Owner Team // Neutral when unclaimed

	// Resistance is the remaining capture-resistance counter. Capture
	// actions drain it; ownership transfers when it reaches zero.
	Resistance int
	// CapturingUnit is the id of the unit currently draining
	// Resistance, or empty. A different unit starting a capture resets
	// the counter.
	CapturingUnit string
}

// CapturableBy reports whether the given team could take this building.
func (b *Building) CapturableBy(team Team) bool {
	return b.Owner != team
}
