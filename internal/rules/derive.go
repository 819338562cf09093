// Package rules implements the Call of Cthulhu derivations used by the
// character sheet. Every function is pure: no I/O, no logging, and inputs are
// never modified.
package rules

import "github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"

// DefaultMoveRate applies when neither dexterity nor strength beats size on both sides
const DefaultMoveRate = 8

// VitalMax holds the derived pool ceilings
type VitalMax struct {
	HP int
	MP int
}

type combatBand struct {
	upTo        int
	damageBonus string
	build       int
}

// ascending thresholds on strength+size, first match wins
var combatBands = []combatBand{
	{upTo: 64, damageBonus: "-2", build: -2},
	{upTo: 84, damageBonus: "-1", build: -1},
	{upTo: 124, damageBonus: "0", build: 0},
	{upTo: 164, damageBonus: "+1d4", build: 1},
	{upTo: 204, damageBonus: "+1d6", build: 2},
	{upTo: 284, damageBonus: "+2d6", build: 3},
	{upTo: 364, damageBonus: "+3d6", build: 4},
	{upTo: 444, damageBonus: "+4d6", build: 5},
	{upTo: 524, damageBonus: "+5d6", build: 6},
}

// the top bucket is capped rather than extended
var topCombatBand = combatBand{damageBonus: "+6d6", build: 7}

type agePenalty struct {
	from    int
	penalty int
}

// half-open bands, checked from the oldest down
var moveAgePenalties = []agePenalty{
	{from: 80, penalty: 5},
	{from: 70, penalty: 4},
	{from: 60, penalty: 3},
	{from: 50, penalty: 2},
	{from: 40, penalty: 1},
}

// DeriveFinal converts dice inputs to percentile values. Size, intelligence
// and education are rolled on 2d6 and scale as (raw+6)*5, the rest as raw*5.
// Values are not clamped.
func DeriveFinal(raw coc.AttributeSet) coc.AttributeSet {
	return coc.AttributeSet{
		Strength:     raw.Strength * 5,
		Constitution: raw.Constitution * 5,
		Size:         (raw.Size + 6) * 5,
		Dexterity:    raw.Dexterity * 5,
		Appearance:   raw.Appearance * 5,
		Intelligence: (raw.Intelligence + 6) * 5,
		Power:        raw.Power * 5,
		Education:    (raw.Education + 6) * 5,
		Luck:         raw.Luck * 5,
	}
}

// DeriveFinalAttribute returns the final value of a single attribute
func DeriveFinalAttribute(attr coc.Attribute, raw int) (int, bool) {
	switch attr {
	case coc.AttributeSize, coc.AttributeIntelligence, coc.AttributeEducation:
		return (raw + 6) * 5, true
	default:
		if _, ok := (coc.AttributeSet{}).Get(attr); !ok {
			return 0, false
		}
		return raw * 5, true
	}
}

// DeriveCombat looks up damage bonus and build from strength+size
func DeriveCombat(strength, size int) coc.Combat {
	total := strength + size
	for _, band := range combatBands {
		if total <= band.upTo {
			return coc.Combat{DamageBonus: band.damageBonus, Build: band.build}
		}
	}
	return coc.Combat{DamageBonus: topCombatBand.damageBonus, Build: topCombatBand.build}
}

// DeriveMoveRate computes movement from the physical characteristics and age.
// The result never drops below zero.
func DeriveMoveRate(dexterity, strength, size, age int) int {
	move := DefaultMoveRate
	switch {
	case dexterity < size && strength < size:
		move = 7
	case dexterity > size && strength > size:
		move = 9
	}

	for _, band := range moveAgePenalties {
		if age >= band.from {
			move -= band.penalty
			break
		}
	}

	return max(0, move)
}

// DeriveVitalMax computes the hit point and magic point ceilings
func DeriveVitalMax(constitution, size, power int) VitalMax {
	return VitalMax{
		HP: floorDiv(constitution+size, 10),
		MP: floorDiv(power, 5),
	}
}

// floorDiv is mathematical floor division; Go's / truncates toward zero
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
