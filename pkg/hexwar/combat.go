package hexwar

import "math/rand"

// Combat is resolved by pure functions over unit snapshots. The only
// randomness is the per-strike variance, always supplied by the caller
// so tests and replays can pin exact outcomes.

// armorDivisor is applied to damage against armored defenders when the
// attacker lacks armor-piercing weaponry.
const armorDivisor = 5

// BaseExpectedDamage is the attacker's raw damage before armor:
// floor(attack * health / MaxHealth). Wounded units hit proportionally
// softer.
func BaseExpectedDamage(attacker *Unit) int {
	return attacker.Attack * attacker.Health / MaxHealth
}

// applyArmorReduction divides damage by armorDivisor when the defender
// is armored and the attacker cannot pierce it.
func applyArmorReduction(damage int, attacker, defender *Unit) int {
	if defender.Armored && !attacker.ArmorPiercing {
		return damage / armorDivisor
	}
	return damage
}

// ExpectedDamage is the canonical deterministic damage estimate, used
// both for planner comparisons and for previews. Every other damage
// computation routes through it.
func ExpectedDamage(attacker, defender *Unit) int {
	return applyArmorReduction(BaseExpectedDamage(attacker), attacker, defender)
}

// RollVariance draws a damage variance uniformly from {-1, 0, +1}.
func RollVariance(rng *rand.Rand) int {
	return rng.Intn(3) - 1
}

// ActualDamage is ExpectedDamage plus the supplied variance, clamped at
// zero.
func ActualDamage(attacker, defender *Unit, variance int) int {
	d := ExpectedDamage(attacker, defender) + variance
	if d < 0 {
		return 0
	}
	return d
}

// InRange reports whether the target tile is within the attacker's
// weapon range from its current position.
func InRange(attacker *Unit, target Hex) bool {
	return HexDistance(attacker.Pos, target) <= attacker.Range
}

// CombatResult describes one resolved exchange.
type CombatResult struct {
	AttackerDamage int // damage the attacker dealt
	DefenderDamage int // damage the defender's counter dealt, 0 if none
	DefenderDied   bool
	AttackerDied   bool
}

// Execute resolves an attack: the attacker strikes first, and the
// defender counters only if it survives and the attacker stands within
// the defender's own range. Health floors at zero. Both unit records are
// mutated in place; no other state is touched.
func Execute(attacker, defender *Unit, attackerVariance, defenderVariance int) CombatResult {
	var res CombatResult

	res.AttackerDamage = ActualDamage(attacker, defender, attackerVariance)
	defender.Health -= res.AttackerDamage
	if defender.Health <= 0 {
		defender.Health = 0
		res.DefenderDied = true
		return res
	}

	if !InRange(defender, attacker.Pos) {
		return res
	}
	res.DefenderDamage = ActualDamage(defender, attacker, defenderVariance)
	attacker.Health -= res.DefenderDamage
	if attacker.Health <= 0 {
		attacker.Health = 0
		res.AttackerDied = true
	}
	return res
}
