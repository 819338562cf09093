package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
	"github.com/KirkDiggler/coc-sheet-api/internal/rules"
)

type CharacterRulesTestSuite struct {
	suite.Suite
	char *coc.Character
}

func TestCharacterRulesSuite(t *testing.T) {
	suite.Run(t, new(CharacterRulesTestSuite))
}

func (s *CharacterRulesTestSuite) SetupTest() {
	s.char = rules.NewCharacter("inv-1")
}

func (s *CharacterRulesTestSuite) TestNewCharacterDefaults() {
	s.Equal("inv-1", s.char.ID)
	s.Equal(rules.DefaultAge, s.char.Age)
	s.Equal(rules.DefaultRawStats, s.char.RawStats)
	s.Equal(coc.AttributeSet{
		Strength:     50,
		Constitution: 50,
		Size:         65,
		Dexterity:    50,
		Appearance:   50,
		Intelligence: 65,
		Power:        50,
		Education:    65,
		Luck:         50,
	}, s.char.Stats)

	s.Equal("0", s.char.DamageBonus)
	s.Equal(0, s.char.Build)
	s.Equal(7, s.char.MoveRate)
	s.Equal(coc.Pool{Current: 10, Max: 11}, s.char.HP)
	s.Equal(coc.Pool{Current: 10, Max: 10}, s.char.MP)
	s.Equal(coc.SanityPool{Current: 50, Start: 50, Max: 99}, s.char.Sanity)
	s.Equal(50, s.char.Luck.Current)
	s.Len(s.char.Skills, 47)
}

func (s *CharacterRulesTestSuite) TestApplyRawAttributeOverwritesOnlyThatFinal() {
	edited, err := rules.ApplyFinalAttribute(s.char, coc.AttributeStrength, 80)
	s.Require().NoError(err)
	edited, err = rules.ApplyFinalAttribute(edited, coc.AttributeDexterity, 75)
	s.Require().NoError(err)

	next, err := rules.ApplyRawAttribute(edited, coc.AttributeDexterity, 12)
	s.Require().NoError(err)

	s.Equal(80, next.Stats.Strength)
	s.Equal(60, next.Stats.Dexterity)
	s.Equal(12, next.RawStats.Dexterity)
	s.Equal(10, next.RawStats.Strength)

	// the previous snapshot is untouched
	s.Equal(75, edited.Stats.Dexterity)
	s.Equal(10, edited.RawStats.Dexterity)
}

func (s *CharacterRulesTestSuite) TestApplyRawPowerResetsSanity() {
	s.char.Sanity.Current = 12

	next, err := rules.ApplyRawAttribute(s.char, coc.AttributePower, 14)
	s.Require().NoError(err)

	s.Equal(70, next.Stats.Power)
	s.Equal(coc.SanityPool{Current: 70, Start: 70, Max: 99}, next.Sanity)
	s.Equal(14, next.MP.Max)
	s.Equal(50, next.Luck.Current)
}

func (s *CharacterRulesTestSuite) TestApplyRawLuckResetsLuck() {
	next, err := rules.ApplyRawAttribute(s.char, coc.AttributeLuck, 13)
	s.Require().NoError(err)

	s.Equal(65, next.Stats.Luck)
	s.Equal(65, next.Luck.Current)
	s.Equal(s.char.Sanity, next.Sanity)
}

func (s *CharacterRulesTestSuite) TestApplyRawAttributeRederivesCombat() {
	next, err := rules.ApplyRawAttribute(s.char, coc.AttributeStrength, 18)
	s.Require().NoError(err)

	// 90 + 65
	s.Equal("+1d4", next.DamageBonus)
	s.Equal(1, next.Build)
	s.Equal(8, next.MoveRate)
}

func (s *CharacterRulesTestSuite) TestApplyRawAttributeAcceptsNegative() {
	next, err := rules.ApplyRawAttribute(s.char, coc.AttributeSize, -10)
	s.Require().NoError(err)
	s.Equal(-20, next.Stats.Size)
}

func (s *CharacterRulesTestSuite) TestUnknownAttribute() {
	_, err := rules.ApplyRawAttribute(s.char, coc.Attribute("sanity"), 10)
	s.True(errors.IsInvalidArgument(err))

	_, err = rules.ApplyFinalAttribute(s.char, coc.Attribute("sanity"), 10)
	s.True(errors.IsInvalidArgument(err))

	_, err = rules.ApplyRawAttribute(nil, coc.AttributeLuck, 10)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CharacterRulesTestSuite) TestFinalEditKeepsRawAndCurrentPools() {
	next, err := rules.ApplyFinalAttribute(s.char, coc.AttributeConstitution, 10)
	s.Require().NoError(err)

	s.Equal(10, next.RawStats.Constitution)
	// (10 + 65) / 10
	s.Equal(7, next.HP.Max)
	s.Equal(10, next.HP.Current)
}

func (s *CharacterRulesTestSuite) TestApplyAge() {
	next := rules.ApplyAge(s.char, 52)

	s.Equal(52, next.Age)
	s.Equal(5, next.MoveRate)
	s.Equal(s.char.Stats, next.Stats)
	s.Equal(25, s.char.Age)
	s.Nil(rules.ApplyAge(nil, 30))
}

func (s *CharacterRulesTestSuite) TestRecomputeIsStable() {
	s.char.DamageBonus = "stale"
	s.char.HP.Max = 99
	s.char.Sanity.Max = 10

	once := rules.Recompute(s.char)
	twice := rules.Recompute(once)

	s.Equal("0", once.DamageBonus)
	s.Equal(11, once.HP.Max)
	s.Equal(coc.SanityMax, once.Sanity.Max)
	s.Equal(once, twice)
	s.Equal("stale", s.char.DamageBonus)
}

func (s *CharacterRulesTestSuite) TestNormalizeLegacyDocument() {
	legacy := &coc.Character{
		ID:           "old",
		Age:          45,
		RawStats:     coc.AttributeSet{Strength: 12, Constitution: 10, Size: 10, Dexterity: 14, Power: 11},
		StatsMissing: true,
	}

	next := rules.Normalize(legacy)

	s.Equal(60, next.Stats.Strength)
	s.Equal(80, next.Stats.Size)
	s.Equal(13, next.HP.Max)
	s.Equal(6, next.MoveRate)
	s.NotNil(next.Skills)
	s.False(next.StatsMissing)
	s.True(legacy.StatsMissing)
	s.Equal(coc.AttributeSet{}, legacy.Stats)
	s.Nil(rules.Normalize(nil))
}

func (s *CharacterRulesTestSuite) TestNormalizeKeepsZeroedFinals() {
	zeroed := s.char.Clone()
	zeroed.Stats = coc.AttributeSet{}

	next := rules.Normalize(zeroed)
	s.Equal(coc.AttributeSet{}, next.Stats)
	s.Equal(0, next.HP.Max)
}

func (s *CharacterRulesTestSuite) TestNormalizeRenamesLegacySkills() {
	legacy := s.char.Clone()
	legacy.Skills = []coc.Skill{
		{Name: "회피", InterestPoints: 10},
		{Name: "모국어"},
		{Name: "도서관 이용", Base: 20},
	}

	next := rules.Normalize(legacy)

	s.Require().Len(next.Skills, 3)
	s.Equal(coc.SkillDodge, next.Skills[0].Name)
	s.Equal(10, next.Skills[0].InterestPoints)
	s.Equal(coc.SkillMotherTongue, next.Skills[1].Name)
	s.Equal("도서관 이용", next.Skills[2].Name)
	s.Equal("회피", legacy.Skills[0].Name)

	// the computed base applies once renamed
	s.Equal(next.Stats.Education, rules.EffectiveBase(next.Skills[1], next.Stats))
}

func (s *CharacterRulesTestSuite) TestNormalizeKeepsCustomAndDuplicateLegacyNames() {
	legacy := s.char.Clone()
	legacy.Skills = []coc.Skill{
		{Name: coc.SkillDodge},
		{Name: "회피"},
		{Name: "모국어", Base: 40, IsCustom: true},
	}

	next := rules.Normalize(legacy)

	s.Equal("회피", next.Skills[1].Name)
	s.Equal("모국어", next.Skills[2].Name)
}

func (s *CharacterRulesTestSuite) TestNormalizeKeepsManualFinals() {
	edited, err := rules.ApplyFinalAttribute(s.char, coc.AttributeAppearance, 15)
	s.Require().NoError(err)

	next := rules.Normalize(edited)
	s.Equal(15, next.Stats.Appearance)
}
