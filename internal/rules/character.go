package rules

import (
	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
)

// New investigators start from these values
const (
	DefaultAge       = 25
	DefaultHitPoints = 10
	DefaultMagic     = 10
	DefaultSanity    = 50
	DefaultLuck      = 50
)

// DefaultRawStats are midpoint dice results
var DefaultRawStats = coc.AttributeSet{
	Strength:     10,
	Constitution: 10,
	Size:         7,
	Dexterity:    10,
	Appearance:   10,
	Intelligence: 7,
	Power:        10,
	Education:    7,
	Luck:         10,
}

// NewCharacter builds a blank investigator with the full skill catalog
func NewCharacter(id string) *coc.Character {
	return Recompute(&coc.Character{
		ID:       id,
		Age:      DefaultAge,
		RawStats: DefaultRawStats,
		Stats:    DeriveFinal(DefaultRawStats),
		HP:       coc.Pool{Current: DefaultHitPoints, Max: DefaultHitPoints},
		MP:       coc.Pool{Current: DefaultMagic, Max: DefaultMagic},
		Sanity: coc.SanityPool{
			Current: DefaultSanity,
			Start:   DefaultSanity,
			Max:     coc.SanityMax,
		},
		Luck:   coc.LuckPool{Current: DefaultLuck},
		Skills: coc.DefaultSkills(),
	})
}

// ApplyRawAttribute records a new dice value. The matching final value is
// rederived, replacing any manual edit of that attribute only. Power also
// resets starting and current sanity; luck resets current luck.
func ApplyRawAttribute(c *coc.Character, attr coc.Attribute, raw int) (*coc.Character, error) {
	if c == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	final, ok := DeriveFinalAttribute(attr, raw)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown attribute %q", attr)
	}

	next := c.Clone()
	next.RawStats = next.RawStats.With(attr, raw)
	next.Stats = next.Stats.With(attr, final)

	switch attr {
	case coc.AttributePower:
		next.Sanity.Start = final
		next.Sanity.Current = final
	case coc.AttributeLuck:
		next.Luck.Current = final
	}

	return recompute(next), nil
}

// ApplyFinalAttribute records a manual edit of a final value. Raw values are
// left alone.
func ApplyFinalAttribute(c *coc.Character, attr coc.Attribute, value int) (*coc.Character, error) {
	if c == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if _, ok := c.Stats.Get(attr); !ok {
		return nil, errors.InvalidArgumentf("unknown attribute %q", attr)
	}

	next := c.Clone()
	next.Stats = next.Stats.With(attr, value)
	return recompute(next), nil
}

// ApplyAge sets the age and rederives movement
func ApplyAge(c *coc.Character, age int) *coc.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	next.Age = age
	return recompute(next)
}

// Recompute returns a copy with every derived field refreshed from the final
// values and age. Current pool values are not clamped to the new maximums.
func Recompute(c *coc.Character) *coc.Character {
	return recompute(c.Clone())
}

// legacySkillNames maps skill names used by older documents to catalog names
var legacySkillNames = map[string]string{
	"회피":  coc.SkillDodge,
	"모국어": coc.SkillMotherTongue,
}

// Normalize repairs documents stored before final values existed by deriving
// them from the raw values, renames legacy catalog skills, then recomputes.
func Normalize(c *coc.Character) *coc.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	if next.StatsMissing {
		next.Stats = DeriveFinal(next.RawStats)
		next.StatsMissing = false
	}
	if next.Skills == nil {
		next.Skills = []coc.Skill{}
	}
	for i := range next.Skills {
		skill := &next.Skills[i]
		name, ok := legacySkillNames[skill.Name]
		if !ok || skill.IsCustom || next.FindSkill(name) >= 0 {
			continue
		}
		skill.Name = name
	}
	return recompute(next)
}

// recompute works in place on a private copy
func recompute(c *coc.Character) *coc.Character {
	if c == nil {
		return nil
	}
	combat := DeriveCombat(c.Stats.Strength, c.Stats.Size)
	vitals := DeriveVitalMax(c.Stats.Constitution, c.Stats.Size, c.Stats.Power)

	c.DamageBonus = combat.DamageBonus
	c.Build = combat.Build
	c.MoveRate = DeriveMoveRate(c.Stats.Dexterity, c.Stats.Strength, c.Stats.Size, c.Age)
	c.HP.Max = vitals.HP
	c.MP.Max = vitals.MP
	c.Sanity.Max = coc.SanityMax
	return c
}
