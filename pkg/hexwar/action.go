package hexwar

import (
	"fmt"
	"strings"
)

// ActionType discriminates the closed action union.
type ActionType int

const (
	ActionResearch ActionType = iota // unlock a tech node
	ActionDesign                     // register a new unit template
	ActionBuild                      // produce a unit at a factory
	ActionMove                       // move a unit
	ActionAttack                     // attack a unit at a tile
	ActionCapture                    // drain the building under the unit
	ActionWait                       // unit does nothing this turn
	ActionEndTurn                    // close the turn
)

func (t ActionType) String() string {
	switch t {
	case ActionResearch:
		return "research"
	case ActionDesign:
		return "design"
	case ActionBuild:
		return "build"
	case ActionMove:
		return "move"
	case ActionAttack:
		return "attack"
	case ActionCapture:
		return "capture"
	case ActionWait:
		return "wait"
	case ActionEndTurn:
		return "end_turn"
	default:
		return "unknown"
	}
}

// Action is one planned step of a turn, carrying only the payload its
// type needs to be replayed.
type Action struct {
	Type ActionType

	// Research
	TechID string

	// Design
	Name      string
	ChassisID string
	WeaponID  string // empty for unarmed designs
	SystemIDs []string

	// Build
	Factory    Hex
	TemplateID string

	// Move / Attack / Capture / Wait
	UnitID string
	Target Hex // move destination or attack target tile
}

// Describe returns a short human-readable rendering, used in logs.
func (a *Action) Describe() string {
	switch a.Type {
	case ActionResearch:
		return fmt.Sprintf("research %s", a.TechID)
	case ActionDesign:
		parts := []string{a.ChassisID}
		if a.WeaponID != "" {
			parts = append(parts, a.WeaponID)
		}
		parts = append(parts, a.SystemIDs...)
		return fmt.Sprintf("design %s [%s]", a.Name, strings.Join(parts, "+"))
	case ActionBuild:
		return fmt.Sprintf("build %s at (%d,%d)", a.TemplateID, a.Factory.Q, a.Factory.R)
	case ActionMove:
		return fmt.Sprintf("move %s -> (%d,%d)", a.UnitID, a.Target.Q, a.Target.R)
	case ActionAttack:
		return fmt.Sprintf("attack %s -> (%d,%d)", a.UnitID, a.Target.Q, a.Target.R)
	case ActionCapture:
		return fmt.Sprintf("capture %s", a.UnitID)
	case ActionWait:
		return fmt.Sprintf("wait %s", a.UnitID)
	case ActionEndTurn:
		return "end turn"
	default:
		return "???"
	}
}
