package levelup_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/formula"
	"github.com/KirkDiggler/rpg-hud/internal/levelup"
	"github.com/KirkDiggler/rpg-hud/internal/testutils"
	"github.com/KirkDiggler/rpg-hud/internal/testutils/builders"
)

type WizardTestSuite struct {
	suite.Suite
	fighter *entities.ClassDefinition
}

func TestWizardSuite(t *testing.T) {
	suite.Run(t, new(WizardTestSuite))
}

func (s *WizardTestSuite) SetupTest() {
	s.fighter = testutils.FighterClassDefinition()
}

func (s *WizardTestSuite) fighterAt(level int) *builders.CharacterBuilder {
	return builders.NewCharacterBuilder().
		WithClass("Fighter", level).
		WithAbility(entities.AbilityConstitution, 14).
		WithHitPoints(20, 20, 0)
}

func (s *WizardTestSuite) TestHitPointGain() {
	testCases := []struct {
		name         string
		hitDie       int
		constitution int
		expected     int
	}{
		{name: "d10 con 14", hitDie: 10, constitution: 14, expected: 8},
		{name: "d8 con 10", hitDie: 8, constitution: 10, expected: 5},
		{name: "d12 con 20", hitDie: 12, constitution: 20, expected: 12},
		{name: "d6 con 3 is zero", hitDie: 6, constitution: 3, expected: 0},
		{name: "d6 con 1 goes negative", hitDie: 6, constitution: 1, expected: -1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, levelup.HitPointGain(tc.hitDie, tc.constitution))
		})
	}
}

func (s *WizardTestSuite) TestStartWithoutNextLevelDefinition() {
	character := s.fighterAt(5).Build()

	wizard, err := levelup.Start(character, s.fighter)

	s.Nil(wizard)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Contains(errors.GetMessage(err), "level 6")
	s.Contains(errors.GetMessage(err), "Fighter")
	s.Equal(6, errors.GetMeta(err)["level"])
}

func (s *WizardTestSuite) TestStartRequiresInputs() {
	_, err := levelup.Start(nil, s.fighter)
	s.True(errors.IsInvalidArgument(err))

	_, err = levelup.Start(s.fighterAt(1).Build(), nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *WizardTestSuite) TestSingleStepLevelAppliesHitPoints() {
	character := s.fighterAt(1).Build()

	wizard, err := levelup.Start(character, s.fighter)
	s.Require().NoError(err)
	s.Equal(1, wizard.TotalSteps())
	s.Equal(levelup.StepHitPoints, wizard.Kind())
	s.Equal(8, wizard.HitPointGain())

	result, err := wizard.Advance()
	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal(levelup.StatusCompleted, wizard.Status())

	merged := result.Character
	s.Equal(2, merged.Level)
	s.Equal(entities.HitPoints{Current: 28, Max: 28}, merged.HitPoints)
	s.Require().Len(merged.LevelHistory, 1)
	s.Equal(2, merged.LevelHistory[0].Level)
	s.Equal(8, merged.LevelHistory[0].HitPointsGained)
	s.Equal(1, character.Level, "input untouched")
}

func (s *WizardTestSuite) TestChoiceStepsRequireExactCount() {
	wizard, err := levelup.Start(s.fighterAt(2).Build(), s.fighter)
	s.Require().NoError(err)
	s.Equal(3, wizard.TotalSteps())

	_, err = wizard.Advance()
	s.Require().NoError(err)
	s.Equal(levelup.StepChoice, wizard.Kind())

	_, err = wizard.Advance()
	s.True(errors.IsFailedPrecondition(err), "no selection")

	s.Require().NoError(wizard.Select([]string{testutils.SubclassChampion, "Battle Master"}))
	_, err = wizard.Advance()
	s.True(errors.IsFailedPrecondition(err), "too many selections")
	s.Equal(1, wizard.Step())

	s.Require().NoError(wizard.Select([]string{testutils.SubclassChampion}))
	result, err := wizard.Advance()
	s.Require().NoError(err)
	s.Nil(result)
	s.Equal(2, wizard.Step())

	s.Require().NoError(wizard.Toggle("Archery"))
	_, err = wizard.Advance()
	s.True(errors.IsFailedPrecondition(err), "one of two")

	s.Require().NoError(wizard.Toggle("Defense"))
	s.True(errors.IsFailedPrecondition(wizard.Toggle("Dueling")), "toggle is capped")
	s.Equal([]string{"Archery", "Defense"}, wizard.Selections())

	result, err = wizard.Advance()
	s.Require().NoError(err)
	s.Require().NotNil(result)

	record := result.Record
	s.Equal(3, record.Level)
	s.Equal([]entities.ChoiceMade{
		{Type: entities.ChoiceSubclass, Selections: []string{testutils.SubclassChampion}},
		{Type: entities.ChoiceFightingStyle, Selections: []string{"Archery", "Defense"}},
	}, record.ChoicesMade)
}

func (s *WizardTestSuite) TestSubclassChoiceGrantsFeatures() {
	wizard, err := levelup.Start(s.fighterAt(2).Build(), s.fighter)
	s.Require().NoError(err)

	_, err = wizard.Advance()
	s.Require().NoError(err)
	s.Require().NoError(wizard.Toggle(testutils.SubclassChampion))
	_, err = wizard.Advance()
	s.Require().NoError(err)
	s.Require().NoError(wizard.Select([]string{"Dueling", "Defense"}))
	result, err := wizard.Advance()
	s.Require().NoError(err)

	merged := result.Character
	s.Equal(testutils.SubclassChampion, merged.SubclassName)
	s.Equal(testutils.SubclassChampion, merged.Classes[0].SubclassName)
	s.Equal(3, merged.Classes[0].Level)
	s.Contains(merged.Features, entities.Feature{
		Name:        "Improved Critical",
		Description: "Crit on 19-20",
		Source:      "Subclass: Champion",
		Type:        entities.FeaturePassive,
	})
}

func (s *WizardTestSuite) TestToggleRemovesAndRejectsUnknown() {
	wizard, err := levelup.Start(s.fighterAt(2).Build(), s.fighter)
	s.Require().NoError(err)

	s.True(errors.IsFailedPrecondition(wizard.Toggle("Archery")), "not on a choice step")

	_, err = wizard.Advance()
	s.Require().NoError(err)

	s.Require().NoError(wizard.Toggle(testutils.SubclassChampion))
	s.Require().NoError(wizard.Toggle(testutils.SubclassChampion))
	s.Empty(wizard.Selections())

	s.True(errors.IsInvalidArgument(wizard.Toggle("Samurai")))
	s.True(errors.IsInvalidArgument(wizard.Select([]string{"Samurai"})))
	s.True(errors.IsInvalidArgument(wizard.Select([]string{testutils.SubclassChampion, testutils.SubclassChampion})))
}

func (s *WizardTestSuite) TestRetreatRestoresPriorChoice() {
	wizard, err := levelup.Start(s.fighterAt(2).Build(), s.fighter)
	s.Require().NoError(err)

	_, err = wizard.Advance()
	s.Require().NoError(err)
	s.Require().NoError(wizard.Select([]string{"Battle Master"}))
	_, err = wizard.Advance()
	s.Require().NoError(err)
	before := wizard.Committed()

	s.Require().NoError(wizard.Select([]string{"Archery"}))
	s.Require().NoError(wizard.Retreat())

	s.Equal(1, wizard.Step())
	s.Equal([]string{"Battle Master"}, wizard.Selections())
	s.Empty(wizard.Committed())

	_, err = wizard.Advance()
	s.Require().NoError(err)
	s.Equal(before, wizard.Committed())
	s.Empty(wizard.Selections(), "in-progress selections of the later step are not kept")
}

func (s *WizardTestSuite) TestRetreatToHitPointStep() {
	wizard, err := levelup.Start(s.fighterAt(2).Build(), s.fighter)
	s.Require().NoError(err)

	s.True(errors.IsFailedPrecondition(wizard.Retreat()))

	_, err = wizard.Advance()
	s.Require().NoError(err)
	s.Require().NoError(wizard.Toggle(testutils.SubclassChampion))
	s.Require().NoError(wizard.Retreat())

	s.Equal(0, wizard.Step())
	s.Empty(wizard.Selections())
	s.Empty(wizard.Committed())
}

func (s *WizardTestSuite) TestCancelOnlyFromFirstStep() {
	wizard, err := levelup.Start(s.fighterAt(2).Build(), s.fighter)
	s.Require().NoError(err)

	_, err = wizard.Advance()
	s.Require().NoError(err)
	s.True(errors.IsFailedPrecondition(wizard.Cancel()))

	s.Require().NoError(wizard.Retreat())
	s.Require().NoError(wizard.Cancel())
	s.Equal(levelup.StatusCancelled, wizard.Status())

	_, err = wizard.Advance()
	s.True(errors.IsFailedPrecondition(err))
	s.True(errors.IsFailedPrecondition(wizard.Cancel()))
}

func (s *WizardTestSuite) TestAbilityScoreImprovement() {
	character := s.fighterAt(3).WithSubclass(testutils.SubclassChampion).WithAbility(entities.AbilityConstitution, 18).Build()

	wizard, err := levelup.Start(character, s.fighter)
	s.Require().NoError(err)
	s.Equal(2, wizard.TotalSteps())

	s.True(errors.IsFailedPrecondition(wizard.Allocate(entities.AbilityStrength, 1)), "not on the improvement step")

	_, err = wizard.Advance()
	s.Require().NoError(err)
	s.Equal(levelup.StepAbilityScoreImprovement, wizard.Kind())

	_, err = wizard.Advance()
	s.True(errors.IsFailedPrecondition(err), "nothing allocated")

	s.Require().NoError(wizard.Allocate(entities.AbilityConstitution, 1))
	_, err = wizard.Advance()
	s.True(errors.IsFailedPrecondition(err), "one point only")

	s.True(errors.IsInvalidArgument(wizard.Allocate(entities.AbilityStrength, 2)), "over budget")
	s.True(errors.IsInvalidArgument(wizard.Allocate(entities.AbilityStrength, 3)))
	s.True(errors.IsInvalidArgument(wizard.Allocate(entities.Ability("luck"), 1)))

	s.Require().NoError(wizard.Allocate(entities.AbilityConstitution, 2))
	s.NoError(wizard.CanAdvance())

	result, err := wizard.Advance()
	s.Require().NoError(err)
	s.Equal(20, result.Character.AbilityScores.Constitution)
	s.Equal(10, result.Character.AbilityScores.Strength)
	s.Equal(entities.ChoiceMade{
		Type:       entities.ChoiceAbilityScoreImprovement,
		Selections: []string{"constitution +2"},
	}, result.Record.ChoicesMade[len(result.Record.ChoicesMade)-1])
}

func (s *WizardTestSuite) TestAbilityScoreImprovementCap() {
	character := s.fighterAt(3).WithAbility(entities.AbilityConstitution, 19).Build()

	wizard, err := levelup.Start(character, s.fighter)
	s.Require().NoError(err)
	_, err = wizard.Advance()
	s.Require().NoError(err)

	s.Require().NoError(wizard.Allocate(entities.AbilityConstitution, 2))
	_, err = wizard.Advance()
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(levelup.StatusActive, wizard.Status())

	s.Require().NoError(wizard.Allocate(entities.AbilityConstitution, 1))
	s.Require().NoError(wizard.Allocate(entities.AbilityDexterity, 1))

	result, err := wizard.Advance()
	s.Require().NoError(err)
	s.Equal(20, result.Character.AbilityScores.Constitution)
	s.Equal(11, result.Character.AbilityScores.Dexterity)
	s.Equal([]string{"dexterity +1", "constitution +1"}, result.Record.ChoicesMade[0].Selections)
}

func (s *WizardTestSuite) TestAbilityScoreImprovementIgnoresUnallocatedScores() {
	character := s.fighterAt(3).WithAbility(entities.AbilityStrength, 22).Build()

	wizard, err := levelup.Start(character, s.fighter)
	s.Require().NoError(err)
	_, err = wizard.Advance()
	s.Require().NoError(err)

	s.Require().NoError(wizard.Allocate(entities.AbilityConstitution, 2))
	s.NoError(wizard.CanAdvance())

	result, err := wizard.Advance()
	s.Require().NoError(err)
	s.Equal(22, result.Character.AbilityScores.Strength)
	s.Equal(12, result.Character.AbilityScores.Constitution)
}

func (s *WizardTestSuite) TestRetreatFromImprovementClearsAllocation() {
	wizard, err := levelup.Start(s.fighterAt(3).Build(), s.fighter)
	s.Require().NoError(err)
	_, err = wizard.Advance()
	s.Require().NoError(err)

	s.Require().NoError(wizard.Allocate(entities.AbilityStrength, 2))
	s.Require().NoError(wizard.Retreat())
	s.Equal(levelup.StepHitPoints, wizard.Kind())

	_, err = wizard.Advance()
	s.Require().NoError(err)
	s.Empty(wizard.Allocation())
	s.Equal(0, wizard.AllocatedPoints())
}

func (s *WizardTestSuite) TestFormulaFailureLeavesWizardOpen() {
	character := s.fighterAt(4).WithSubclass(testutils.SubclassChampion).Build()

	wizard, err := levelup.Start(character, s.fighter, levelup.WithFormulaEvaluator(failingEvaluator{}))
	s.Require().NoError(err)

	_, err = wizard.Advance()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(levelup.StatusActive, wizard.Status())
	s.Equal(0, wizard.Step())
}

func (s *WizardTestSuite) TestView() {
	wizard, err := levelup.Start(s.fighterAt(2).Build(), s.fighter)
	s.Require().NoError(err)

	view := wizard.View()
	s.Equal("Fighter", view.ClassName)
	s.Equal(3, view.TargetLevel)
	s.Equal(levelup.StepHitPoints, view.Kind)
	s.True(view.CanAdvance)
	s.Nil(view.Choice)

	_, err = wizard.Advance()
	s.Require().NoError(err)

	view = wizard.View()
	s.Require().NotNil(view.Choice)
	s.Equal(entities.ChoiceSubclass, view.Choice.Type)
	s.False(view.CanAdvance)
	s.Contains(view.Blocker, "choose exactly 1")
	s.NotNil(view.Selections)
}

type failingEvaluator struct{}

func (failingEvaluator) Evaluate(expr string, _ formula.Vars) (int, error) {
	return 0, errors.InvalidArgumentf("cannot evaluate %q", expr)
}
