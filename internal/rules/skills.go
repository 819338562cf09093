package rules

import (
	"strings"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
)

// DefaultOccupationBudget is used when the caller does not set one
const DefaultOccupationBudget = 300

// reservedBases lists the catalog skills whose base comes from characteristics
var reservedBases = map[string]func(final coc.AttributeSet) int{
	coc.SkillDodge:        func(final coc.AttributeSet) int { return floorDiv(final.Dexterity, 2) },
	coc.SkillMotherTongue: func(final coc.AttributeSet) int { return final.Education },
}

// SkillScore is a skill total with its hard and extreme thresholds
type SkillScore struct {
	Total int
	Half  int
	Fifth int
}

// Budgets compares spent skill points against the creation allowances.
// Exceeding a budget is only a warning.
type Budgets struct {
	OccupationLimit int
	OccupationSpent int
	InterestLimit   int
	InterestSpent   int
}

// OccupationExceeded reports whether more occupation points were spent than allowed
func (b Budgets) OccupationExceeded() bool {
	return b.OccupationSpent > b.OccupationLimit
}

// InterestExceeded reports whether more interest points were spent than allowed
func (b Budgets) InterestExceeded() bool {
	return b.InterestSpent > b.InterestLimit
}

// IsReservedSkill reports whether name is a catalog skill with a computed base
func IsReservedSkill(name string) bool {
	_, ok := reservedBases[name]
	return ok
}

// EffectiveBase returns the base used for totals. Custom skills always use
// their stored base.
func EffectiveBase(skill coc.Skill, final coc.AttributeSet) int {
	if !skill.IsCustom {
		if derive, ok := reservedBases[skill.Name]; ok {
			return derive(final)
		}
	}
	return skill.Base
}

// SkillTotal sums base and allocations, floored at zero
func SkillTotal(skill coc.Skill, final coc.AttributeSet) SkillScore {
	total := EffectiveBase(skill, final) + skill.OccupationPoints + skill.InterestPoints + skill.Growth
	total = max(0, total)
	return SkillScore{
		Total: total,
		Half:  floorDiv(total, 2),
		Fifth: floorDiv(total, 5),
	}
}

// AddCustomSkill returns a new list with a custom skill appended. The input
// slice is left untouched, including on error.
func AddCustomSkill(skills []coc.Skill, name string, base int) ([]coc.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationBuilder().RequiredField("name").Build()
	}
	for _, s := range skills {
		if s.Name == name {
			return nil, errors.NewValidationBuilder().
				Fieldf("name", "skill %q already exists", name).
				Build()
		}
	}

	out := make([]coc.Skill, len(skills), len(skills)+1)
	copy(out, skills)
	return append(out, coc.Skill{
		Name:     name,
		Base:     base,
		IsCustom: true,
	}), nil
}

// ValidateSkills checks a whole list for empty and duplicate names
func ValidateSkills(skills []coc.Skill) error {
	vb := errors.NewValidationBuilder()
	seen := make(map[string]struct{}, len(skills))
	for i, s := range skills {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			vb.Fieldf("skills", "skill at position %d has no name", i)
			continue
		}
		if _, ok := seen[name]; ok {
			vb.Fieldf("skills", "duplicate skill %q", name)
			continue
		}
		seen[name] = struct{}{}
	}
	return vb.Build()
}

// PointBudgets totals the occupation and interest allocations. A zero
// occupationLimit selects DefaultOccupationBudget; the interest allowance is
// twice final intelligence.
func PointBudgets(skills []coc.Skill, final coc.AttributeSet, occupationLimit int) Budgets {
	if occupationLimit == 0 {
		occupationLimit = DefaultOccupationBudget
	}

	b := Budgets{
		OccupationLimit: occupationLimit,
		InterestLimit:   final.Intelligence * 2,
	}
	for _, s := range skills {
		b.OccupationSpent += s.OccupationPoints
		b.InterestSpent += s.InterestPoints
	}
	return b
}
