package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/coc-sheet-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-sheet-api/internal/errors"
	"github.com/KirkDiggler/coc-sheet-api/internal/orchestrators/character"
	"github.com/KirkDiggler/coc-sheet-api/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/coc-sheet-api/internal/orchestrators/dice/mock"
	"github.com/KirkDiggler/coc-sheet-api/internal/pkg/clock"
	idgenmock "github.com/KirkDiggler/coc-sheet-api/internal/pkg/idgen/mock"
	characterrepo "github.com/KirkDiggler/coc-sheet-api/internal/repositories/character"
	charactermock "github.com/KirkDiggler/coc-sheet-api/internal/repositories/character/mock"
	"github.com/KirkDiggler/coc-sheet-api/internal/rules"
	"github.com/KirkDiggler/coc-sheet-api/internal/testutils"
	"github.com/KirkDiggler/coc-sheet-api/internal/testutils/mocks"
)

// faceRoller always rolls the same face
type faceRoller struct {
	face int
}

func (r *faceRoller) Roll(_ int) (int, error) { return r.face, nil }
func (r *faceRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.face
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *charactermock.MockRepository
	mockDice     *dicemock.MockService
	mockIDGen    *idgenmock.MockGenerator
	bus          events.EventBus
	roller       *faceRoller
	orchestrator *character.Orchestrator
	ctx          context.Context
	now          time.Time
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = charactermock.NewMockRepository(s.ctrl)
	s.mockDice = dicemock.NewMockService(s.ctrl)
	s.mockIDGen = idgenmock.NewMockGenerator(s.ctrl)
	s.bus = events.NewBus()
	s.roller = &faceRoller{face: 1}
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	orch, err := character.New(&character.Config{
		CharacterRepo: s.mockRepo,
		DiceService:   s.mockDice,
		IDGenerator:   s.mockIDGen,
		Clock:         clock.Fixed{At: s.now},
		EventBus:      s.bus,
		Roller:        s.roller,
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewRequiresDependencies() {
	_, err := character.New(&character.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = character.New(&character.Config{
		CharacterRepo:    s.mockRepo,
		DiceService:      s.mockDice,
		IDGenerator:      s.mockIDGen,
		OccupationBudget: -1,
	})
	s.Require().Error(err)
}

func (s *OrchestratorTestSuite) TestNewCharacter() {
	out, err := s.orchestrator.NewCharacter(s.ctx, &character.NewCharacterInput{
		Name:   "  Harvey Walters ",
		Player: "alice",
	})
	s.Require().NoError(err)

	char := out.Character
	s.Empty(char.ID)
	s.Equal("Harvey Walters", char.Name)
	s.Equal("alice", char.Player)
	s.Equal(rules.DefaultRawStats, char.RawStats)
	s.Equal(65, char.Stats.Size)
	s.Equal(coc.Pool{Current: 10, Max: 11}, char.HP)
	s.Equal(coc.SanityPool{Current: 50, Start: 50, Max: 99}, char.Sanity)
	s.Len(char.Skills, len(coc.DefaultSkills()))
}

func (s *OrchestratorTestSuite) TestUpdateRawAttributeOverwritesOnlyThatAttribute() {
	char := rules.NewCharacter("inv-1")

	manual, err := s.orchestrator.UpdateFinalAttribute(s.ctx, &character.UpdateFinalAttributeInput{
		Character: char,
		Attribute: coc.AttributeStrength,
		Value:     99,
	})
	s.Require().NoError(err)
	s.Equal(99, manual.Character.Stats.Strength)
	s.Equal(10, manual.Character.RawStats.Strength)

	// another attribute leaves the manual strength alone
	dex, err := s.orchestrator.UpdateRawAttribute(s.ctx, &character.UpdateRawAttributeInput{
		Character: manual.Character,
		Attribute: coc.AttributeDexterity,
		Value:     14,
	})
	s.Require().NoError(err)
	s.Equal(99, dex.Character.Stats.Strength)
	s.Equal(70, dex.Character.Stats.Dexterity)

	// raw strength replaces the manual value
	str, err := s.orchestrator.UpdateRawAttribute(s.ctx, &character.UpdateRawAttributeInput{
		Character: dex.Character,
		Attribute: coc.AttributeStrength,
		Value:     12,
	})
	s.Require().NoError(err)
	s.Equal(60, str.Character.Stats.Strength)

	// inputs are snapshots
	s.Equal(50, char.Stats.Strength)
	s.Equal(99, manual.Character.Stats.Strength)
}

func (s *OrchestratorTestSuite) TestUpdateRawAttributeResetsSanityAndLuck() {
	char := rules.NewCharacter("inv-1")
	char.Sanity.Current = 12
	char.Luck.Current = 3

	pow, err := s.orchestrator.UpdateRawAttribute(s.ctx, &character.UpdateRawAttributeInput{
		Character: char,
		Attribute: coc.AttributePower,
		Value:     13,
	})
	s.Require().NoError(err)
	s.Equal(coc.SanityPool{Current: 65, Start: 65, Max: 99}, pow.Character.Sanity)
	s.Equal(13, pow.Character.MP.Max)
	s.Equal(3, pow.Character.Luck.Current)

	luck, err := s.orchestrator.UpdateRawAttribute(s.ctx, &character.UpdateRawAttributeInput{
		Character: pow.Character,
		Attribute: coc.AttributeLuck,
		Value:     9,
	})
	s.Require().NoError(err)
	s.Equal(45, luck.Character.Luck.Current)
}

func (s *OrchestratorTestSuite) TestUpdateRawAttributeRejectsUnknownAttribute() {
	_, err := s.orchestrator.UpdateRawAttribute(s.ctx, &character.UpdateRawAttributeInput{
		Character: rules.NewCharacter("inv-1"),
		Attribute: coc.Attribute("sanity"),
		Value:     10,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.UpdateRawAttribute(s.ctx, &character.UpdateRawAttributeInput{
		Attribute: coc.AttributeStrength,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUpdateAge() {
	out, err := s.orchestrator.UpdateAge(s.ctx, &character.UpdateAgeInput{
		Character: rules.NewCharacter("inv-1"),
		Age:       72,
	})
	s.Require().NoError(err)
	s.Equal(72, out.Character.Age)
	s.Equal(3, out.Character.MoveRate)
	s.Contains(out.AgeAdvice, "70-79")

	young, err := s.orchestrator.UpdateAge(s.ctx, &character.UpdateAgeInput{
		Character: rules.NewCharacter("inv-1"),
		Age:       12,
	})
	s.Require().NoError(err)
	s.Empty(young.AgeAdvice)
}

func (s *OrchestratorTestSuite) TestAddCustomSkill() {
	char := rules.NewCharacter("inv-1")

	out, err := s.orchestrator.AddCustomSkill(s.ctx, &character.AddCustomSkillInput{
		Character: char,
		Name:      " Dodge ",
		Base:      40,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Nil(out)

	out, err = s.orchestrator.AddCustomSkill(s.ctx, &character.AddCustomSkillInput{
		Character: char,
		Name:      "Pilot (Airship)",
		Base:      1,
	})
	s.Require().NoError(err)
	s.Len(out.Character.Skills, len(char.Skills)+1)

	added := out.Character.Skills[len(out.Character.Skills)-1]
	s.Equal(coc.Skill{Name: "Pilot (Airship)", Base: 1, IsCustom: true}, added)
}

func (s *OrchestratorTestSuite) TestUpdateSkillPoints() {
	char := rules.NewCharacter("inv-1")

	out, err := s.orchestrator.UpdateSkillPoints(s.ctx, &character.UpdateSkillPointsInput{
		Character: char,
		SkillName: "Spot Hidden",
		Points:    character.SkillPoints{Occupation: 40, Interest: 10, Growth: 2},
	})
	s.Require().NoError(err)

	idx := out.Character.FindSkill("Spot Hidden")
	s.Require().GreaterOrEqual(idx, 0)
	s.Equal(40, out.Character.Skills[idx].OccupationPoints)
	s.Equal(10, out.Character.Skills[idx].InterestPoints)
	s.Equal(2, out.Character.Skills[idx].Growth)
	s.Zero(char.Skills[char.FindSkill("Spot Hidden")].OccupationPoints)

	_, err = s.orchestrator.UpdateSkillPoints(s.ctx, &character.UpdateSkillPointsInput{
		Character: char,
		SkillName: "Necromancy",
	})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.UpdateSkillPoints(s.ctx, &character.UpdateSkillPointsInput{
		Character: char,
		SkillName: " ",
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetSkillSheet() {
	char := rules.NewCharacter("inv-1")
	char.Age = 45
	char.Skills[char.FindSkill("Spot Hidden")].OccupationPoints = 310
	char.Skills[char.FindSkill("Dodge")].InterestPoints = 5

	out, err := s.orchestrator.GetSkillSheet(s.ctx, &character.GetSkillSheetInput{Character: char})
	s.Require().NoError(err)
	s.Require().Len(out.Lines, len(char.Skills))

	lines := make(map[string]character.SkillLine, len(out.Lines))
	for _, line := range out.Lines {
		lines[line.Skill.Name] = line
	}

	dodge := lines[coc.SkillDodge]
	s.Equal(25, dodge.EffectiveBase)
	s.Equal(rules.SkillScore{Total: 30, Half: 15, Fifth: 6}, dodge.Score)
	s.Equal(65, lines[coc.SkillMotherTongue].EffectiveBase)
	s.Equal(335, lines["Spot Hidden"].Score.Total)

	s.Equal(rules.Budgets{
		OccupationLimit: rules.DefaultOccupationBudget,
		OccupationSpent: 310,
		InterestLimit:   130,
		InterestSpent:   5,
	}, out.Budgets)
	s.True(out.OccupationExceeded)
	s.False(out.InterestExceeded)
	s.Contains(out.AgeAdvice, "40-49")

	custom, err := s.orchestrator.GetSkillSheet(s.ctx, &character.GetSkillSheetInput{
		Character:        char,
		OccupationBudget: 400,
	})
	s.Require().NoError(err)
	s.Equal(400, custom.Budgets.OccupationLimit)
	s.False(custom.OccupationExceeded)
}

func (s *OrchestratorTestSuite) TestRollAttributes() {
	char := rules.NewCharacter("inv-1")
	char.Stats.Strength = 99

	raw := coc.AttributeSet{
		Strength:     15,
		Constitution: 12,
		Size:         8,
		Dexterity:    11,
		Appearance:   10,
		Intelligence: 13,
		Power:        14,
		Education:    9,
		Luck:         12,
	}
	s.mockDice.EXPECT().
		RollCharacteristics(s.ctx, &dice.RollCharacteristicsInput{EntityID: "inv-1"}).
		Return(&dice.RollCharacteristicsOutput{Raw: raw}, nil)

	out, err := s.orchestrator.RollAttributes(s.ctx, &character.RollAttributesInput{Character: char})
	s.Require().NoError(err)

	s.Equal(raw, out.Raw)
	s.Equal(raw, out.Character.RawStats)
	s.Equal(rules.DeriveFinal(raw), out.Character.Stats)
	s.Equal(coc.SanityPool{Current: 70, Start: 70, Max: 99}, out.Character.Sanity)
	s.Equal(60, out.Character.Luck.Current)
	s.Equal(13, out.Character.HP.Max)
	s.Equal(14, out.Character.MP.Max)
	s.Equal(99, char.Stats.Strength)
}

func (s *OrchestratorTestSuite) TestRollAttributesDiceFailure() {
	s.mockDice.EXPECT().
		RollCharacteristics(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("no entropy"))

	_, err := s.orchestrator.RollAttributes(s.ctx, &character.RollAttributesInput{
		Character: rules.NewCharacter(""),
	})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestGenerateName() {
	english, ok := coc.NamePool(coc.NamePoolEnglish)
	s.Require().True(ok)

	out, err := s.orchestrator.GenerateName(s.ctx, &character.GenerateNameInput{})
	s.Require().NoError(err)
	s.Equal(coc.NamePoolEnglish, out.Pool)
	s.Equal(english[0], out.Name)

	korean, _ := coc.NamePool(coc.NamePoolKorean)
	s.roller.face = len(korean)
	out, err = s.orchestrator.GenerateName(s.ctx, &character.GenerateNameInput{Pool: "KO"})
	s.Require().NoError(err)
	s.Equal(korean[len(korean)-1], out.Name)

	_, err = s.orchestrator.GenerateName(s.ctx, &character.GenerateNameInput{Pool: "rlyeh"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListCharactersNormalizesAndSorts() {
	older := testutils.CreateTestCharacter("b", "alice")
	older.UpdatedAt = s.now.Add(-time.Hour)

	newer := testutils.CreateTestCharacter("a", "alice")
	newer.UpdatedAt = s.now

	legacy := &coc.Character{
		ID:           "c",
		RawStats:     coc.AttributeSet{Constitution: 10, Size: 10, Power: 10},
		UpdatedAt:    s.now.Add(-2 * time.Hour),
		StatsMissing: true,
	}

	mocks.ExpectCharacterList(s.ctx, s.mockRepo, "alice", []*coc.Character{older, legacy, nil, newer}, nil)

	out, err := s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{Player: "alice"})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 3)

	s.Equal("a", out.Characters[0].ID)
	s.Equal("b", out.Characters[1].ID)
	s.Equal("c", out.Characters[2].ID)

	s.Equal(80, out.Characters[2].Stats.Size)
	s.Equal(13, out.Characters[2].HP.Max)
	s.NotNil(out.Characters[2].Skills)
}

func (s *OrchestratorTestSuite) TestListCharactersTransportFailure() {
	s.mockRepo.EXPECT().
		List(s.ctx, gomock.Any()).
		Return(nil, errors.Transport(nil, "sheet unreachable"))

	_, err := s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{})
	s.Require().Error(err)
	s.True(errors.IsTransport(err))
}

func (s *OrchestratorTestSuite) TestGetCharacter() {
	stored := testutils.CreateTestCharacter("inv-1", "alice")
	mocks.ExpectCharacterGet(s.ctx, s.mockRepo, "inv-1", stored, nil)

	out, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{CharacterID: "inv-1"})
	s.Require().NoError(err)
	s.Equal("inv-1", out.Character.ID)

	mocks.ExpectCharacterGet(s.ctx, s.mockRepo, "missing", nil, errors.NotFound("character not found"))

	_, err = s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{CharacterID: "missing"})
	s.True(errors.IsNotFound(err))
	s.Equal("missing", errors.GetMeta(err)["character_id"])

	_, err = s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSaveCharacterAssignsIDAndPublishes() {
	var published []events.Event
	s.bus.SubscribeFunc(character.EventCharacterSaved, 0, func(_ context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	char := rules.NewCharacter("")
	char.Name = testutils.TestCharacterName
	char.Stats.Strength = 90

	s.mockIDGen.EXPECT().Generate().Return("generated-id")
	mocks.ExpectCharacterSave(s.ctx, s.mockRepo)

	out, err := s.orchestrator.SaveCharacter(s.ctx, &character.SaveCharacterInput{Character: char})
	s.Require().NoError(err)

	s.Equal("generated-id", out.Character.ID)
	s.Equal(s.now, out.Character.UpdatedAt)
	s.Equal("+1d4", out.Character.DamageBonus)
	s.Empty(char.ID)

	s.Require().Len(published, 1)
	s.Equal(character.EventCharacterSaved, published[0].Type())
	s.Equal("generated-id", published[0].Source().GetID())
}

func (s *OrchestratorTestSuite) TestSaveCharacterKeepsExistingID() {
	char := testutils.CreateTestCharacter("inv-1", "alice")

	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.SaveInput) (*characterrepo.SaveOutput, error) {
			s.Equal("inv-1", input.Character.ID)
			return &characterrepo.SaveOutput{Character: input.Character}, nil
		})

	out, err := s.orchestrator.SaveCharacter(s.ctx, &character.SaveCharacterInput{Character: char})
	s.Require().NoError(err)
	s.Equal("inv-1", out.Character.ID)
}

func (s *OrchestratorTestSuite) TestSaveCharacterRejectsDuplicateSkills() {
	char := rules.NewCharacter("inv-1")
	char.Skills = append(char.Skills, coc.Skill{Name: "Dodge ", Base: 10, IsCustom: true})

	_, err := s.orchestrator.SaveCharacter(s.ctx, &character.SaveCharacterInput{Character: char})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSaveCharacterTransportFailure() {
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Transport(nil, "sheet rejected the write"))

	_, err := s.orchestrator.SaveCharacter(s.ctx, &character.SaveCharacterInput{
		Character: testutils.CreateTestCharacter("inv-1", "alice"),
	})
	s.Require().Error(err)
	s.True(errors.IsTransport(err))
}

func (s *OrchestratorTestSuite) TestDeleteCharacter() {
	var deleted []string
	s.bus.SubscribeFunc(character.EventCharacterDeleted, 0, func(_ context.Context, e events.Event) error {
		deleted = append(deleted, e.Source().GetID())
		return nil
	})

	mocks.ExpectCharacterDelete(s.ctx, s.mockRepo, "inv-1", nil)

	out, err := s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{CharacterID: "inv-1"})
	s.Require().NoError(err)
	s.Contains(out.Message, "inv-1")
	s.Equal([]string{"inv-1"}, deleted)

	mocks.ExpectCharacterDelete(s.ctx, s.mockRepo, "missing", errors.NotFound("character not found"))

	_, err = s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{CharacterID: "missing"})
	s.True(errors.IsNotFound(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
