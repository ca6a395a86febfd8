package sheet_test

import (
	"context"
	"encoding/json"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-hud/internal/engine"
	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/formula"
	"github.com/KirkDiggler/rpg-hud/internal/levelup"
	sheetorchestrator "github.com/KirkDiggler/rpg-hud/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-hud/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-hud/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-hud/internal/repositories/documents"
	"github.com/KirkDiggler/rpg-hud/internal/services/sheet"
	"github.com/KirkDiggler/rpg-hud/internal/testutils"
	"github.com/KirkDiggler/rpg-hud/internal/testutils/builders"
)

func (s *OrchestratorTestSuite) importFighterClass() {
	data, err := json.Marshal(testutils.FighterClassDefinition())
	s.Require().NoError(err)

	output, err := s.orchestrator.ImportClassDefinition(s.ctx, &sheet.ImportClassDefinitionInput{
		Filename: "fighter.json",
		Data:     data,
	})
	s.Require().NoError(err)
	s.Equal("dnd-hud-class:fighter", output.Key)
}

func (s *OrchestratorTestSuite) fighterAt(level int) *builders.CharacterBuilder {
	return builders.NewCharacterBuilder().
		WithName(testutils.TestCharacterName).
		WithClass("Fighter", level).
		WithAbility(entities.AbilityConstitution, 14).
		WithHitPoints(20, 20, 0)
}

func (s *OrchestratorTestSuite) TestLevelUpToSubclass() {
	s.importFighterClass()
	s.importCharacter(s.fighterAt(2).Build())

	started, err := s.orchestrator.StartLevelUp(s.ctx, &sheet.StartLevelUpInput{})
	s.Require().NoError(err)
	s.Equal(3, started.LevelUp.TargetLevel)
	s.Equal(3, started.LevelUp.TotalSteps)
	s.Equal(levelup.StepHitPoints, started.LevelUp.Kind)
	s.Equal(8, started.LevelUp.HitPointGain)

	advanced, err := s.orchestrator.AdvanceLevelUp(s.ctx, &sheet.AdvanceLevelUpInput{})
	s.Require().NoError(err)
	s.False(advanced.Completed)
	s.Equal(levelup.StepChoice, advanced.LevelUp.Kind)

	view, err := s.orchestrator.ToggleLevelUpOption(s.ctx, &sheet.ToggleLevelUpOptionInput{Option: testutils.SubclassChampion})
	s.Require().NoError(err)
	s.True(view.LevelUp.CanAdvance)

	_, err = s.orchestrator.AdvanceLevelUp(s.ctx, &sheet.AdvanceLevelUpInput{})
	s.Require().NoError(err)

	view, err = s.orchestrator.SelectLevelUpOptions(s.ctx, &sheet.SelectLevelUpOptionsInput{Options: []string{"Archery", "Defense"}})
	s.Require().NoError(err)
	s.Equal([]string{"Archery", "Defense"}, view.LevelUp.Selections)

	s.expectUpdated(engine.ActionLevelUp)
	s.mockEngine.EXPECT().
		CharacterLeveled(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.CharacterLeveledInput) error {
			s.Equal(3, input.Record.Level)
			return nil
		})

	completed, err := s.orchestrator.AdvanceLevelUp(s.ctx, &sheet.AdvanceLevelUpInput{})
	s.Require().NoError(err)
	s.True(completed.Completed)
	s.Equal(levelup.StatusCompleted, completed.LevelUp.Status)
	s.Equal(3, completed.Character.Level)
	s.Equal(entities.HitPoints{Current: 28, Max: 28}, completed.Character.HitPoints)
	s.Equal("Level 3 Fighter (Champion)", completed.ClassDisplay)
	s.Require().NotNil(completed.Record)
	s.Empty(completed.Record.FeaturesGained)
	s.Len(completed.Record.ChoicesMade, 2)
	s.Contains(completed.Character.Features, entities.Feature{
		Name:        "Improved Critical",
		Description: "Crit on 19-20",
		Source:      "Subclass: Champion",
		Type:        entities.FeaturePassive,
	})

	saved := s.savedCharacter()
	s.Equal(3, saved.Level)
	s.Equal(testutils.SubclassChampion, saved.SubclassName)
	s.Len(saved.LevelHistory, 1)

	_, err = s.orchestrator.GetLevelUp(s.ctx, &sheet.GetLevelUpInput{})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestLevelUpBlocksLedgerAndSecondStart() {
	s.importFighterClass()
	s.importCharacter(s.fighterAt(1).Build())

	_, err := s.orchestrator.StartLevelUp(s.ctx, &sheet.StartLevelUpInput{ClassName: "Fighter"})
	s.Require().NoError(err)

	_, err = s.orchestrator.StartLevelUp(s.ctx, &sheet.StartLevelUpInput{})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orchestrator.AdjustHitPoints(s.ctx, &sheet.AdjustHitPointsInput{Delta: -1})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orchestrator.CancelLevelUp(s.ctx, &sheet.CancelLevelUpInput{})
	s.Require().NoError(err)

	s.expectUpdated(engine.ActionHitPoints)
	_, err = s.orchestrator.AdjustHitPoints(s.ctx, &sheet.AdjustHitPointsInput{Delta: -1})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestLevelUpRetreatAndCancel() {
	s.importFighterClass()
	s.importCharacter(s.fighterAt(2).Build())

	_, err := s.orchestrator.StartLevelUp(s.ctx, &sheet.StartLevelUpInput{})
	s.Require().NoError(err)
	_, err = s.orchestrator.AdvanceLevelUp(s.ctx, &sheet.AdvanceLevelUpInput{})
	s.Require().NoError(err)

	_, err = s.orchestrator.CancelLevelUp(s.ctx, &sheet.CancelLevelUpInput{})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orchestrator.AdvanceLevelUp(s.ctx, &sheet.AdvanceLevelUpInput{})
	s.True(errors.IsFailedPrecondition(err), "choice step needs a selection")

	view, err := s.orchestrator.RetreatLevelUp(s.ctx, &sheet.RetreatLevelUpInput{})
	s.Require().NoError(err)
	s.Equal(0, view.LevelUp.Step)

	_, err = s.orchestrator.CancelLevelUp(s.ctx, &sheet.CancelLevelUpInput{})
	s.Require().NoError(err)

	current, err := s.orchestrator.GetCharacter(s.ctx, &sheet.GetCharacterInput{})
	s.Require().NoError(err)
	s.Equal(2, current.Character.Level)
}

func (s *OrchestratorTestSuite) TestAbilityScoreImprovementThroughSheet() {
	s.importFighterClass()
	s.importCharacter(s.fighterAt(3).WithAbility(entities.AbilityStrength, 16).Build())

	_, err := s.orchestrator.StartLevelUp(s.ctx, &sheet.StartLevelUpInput{})
	s.Require().NoError(err)
	_, err = s.orchestrator.AdvanceLevelUp(s.ctx, &sheet.AdvanceLevelUpInput{})
	s.Require().NoError(err)

	_, err = s.orchestrator.AllocateAbility(s.ctx, &sheet.AllocateAbilityInput{Ability: entities.AbilityStrength, Points: 3})
	s.True(errors.IsInvalidArgument(err))

	view, err := s.orchestrator.AllocateAbility(s.ctx, &sheet.AllocateAbilityInput{Ability: entities.AbilityStrength, Points: 2})
	s.Require().NoError(err)
	s.Equal(map[entities.Ability]int{entities.AbilityStrength: 2}, view.LevelUp.Allocation)

	s.expectUpdated(engine.ActionLevelUp)
	s.mockEngine.EXPECT().CharacterLeveled(gomock.Any(), gomock.Any()).Return(nil)

	completed, err := s.orchestrator.AdvanceLevelUp(s.ctx, &sheet.AdvanceLevelUpInput{})
	s.Require().NoError(err)
	s.Equal(18, completed.Character.AbilityScores.Strength)
}

func (s *OrchestratorTestSuite) TestStartLevelUpErrors() {
	_, err := s.orchestrator.StartLevelUp(s.ctx, &sheet.StartLevelUpInput{})
	s.True(errors.IsFailedPrecondition(err), "no character")

	s.importCharacter(s.fighterAt(5).Build())

	_, err = s.orchestrator.StartLevelUp(s.ctx, &sheet.StartLevelUpInput{ClassName: "Wizard"})
	s.True(errors.IsNotFound(err))

	s.importFighterClass()
	_, err = s.orchestrator.StartLevelUp(s.ctx, &sheet.StartLevelUpInput{})
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(6, errors.GetMeta(err)["level"])
}

func (s *OrchestratorTestSuite) TestClassDefinitionsReloadFromStorage() {
	s.importFighterClass()
	s.importCharacter(s.fighterAt(1).Build())

	restarted := s.newOrchestrator(s.repo)
	s.expectUpdated(engine.ActionLoaded)
	_, err := restarted.LoadCharacter(s.ctx, &sheet.LoadCharacterInput{})
	s.Require().NoError(err)

	view, err := restarted.StartLevelUp(s.ctx, &sheet.StartLevelUpInput{ClassName: "fighter"})
	s.Require().NoError(err)
	s.Equal("Fighter", view.LevelUp.ClassName)
}

func (s *OrchestratorTestSuite) TestFormulaResourcesWithEvaluator() {
	orchestrator, err := sheetorchestrator.New(&sheetorchestrator.Config{
		Repo:        s.repo,
		Engine:      s.mockEngine,
		SRD:         s.mockSRD,
		Clock:       clock.Fixed(testNow),
		IDGenerator: idgen.NewSequential(idgen.PrefixCharacter),
		Formulas:    formula.NewLuaEvaluator(),
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator

	s.importFighterClass()
	s.importCharacter(s.fighterAt(4).WithSubclass(testutils.SubclassChampion).Build())

	_, err = s.orchestrator.StartLevelUp(s.ctx, &sheet.StartLevelUpInput{})
	s.Require().NoError(err)

	s.expectUpdated(engine.ActionLevelUp)
	s.mockEngine.EXPECT().CharacterLeveled(gomock.Any(), gomock.Any()).Return(nil)

	completed, err := s.orchestrator.AdvanceLevelUp(s.ctx, &sheet.AdvanceLevelUpInput{})
	s.Require().NoError(err)

	var athletic *entities.Resource
	for i := range completed.Character.Resources {
		if completed.Character.Resources[i].Name == "Athletic Feats" {
			athletic = &completed.Character.Resources[i]
		}
	}
	s.Require().NotNil(athletic)
	s.Equal(8, athletic.Max)
}

func (s *OrchestratorTestSuite) TestImportSRDClass() {
	s.mockSRD.EXPECT().
		ImportClass(gomock.Any(), "fighter").
		Return(testutils.FighterClassDefinition(), nil)

	output, err := s.orchestrator.ImportSRDClass(s.ctx, &sheet.ImportSRDClassInput{Key: "fighter"})
	s.Require().NoError(err)
	s.Equal(documents.ClassKey("fighter"), output.Key)

	_, err = s.repo.Load(s.ctx, documents.LoadInput{Key: output.Key})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestImportSRDClassErrors() {
	_, err := s.orchestrator.ImportSRDClass(s.ctx, &sheet.ImportSRDClassInput{})
	s.True(errors.IsInvalidArgument(err))

	s.mockSRD.EXPECT().
		ImportClass(gomock.Any(), "artificer").
		Return(nil, errors.NotFound("class artificer not in SRD"))

	_, err = s.orchestrator.ImportSRDClass(s.ctx, &sheet.ImportSRDClassInput{Key: "artificer"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestImportClassDefinitionRejectsCharacterFile() {
	_, err := s.orchestrator.ImportClassDefinition(s.ctx, &sheet.ImportClassDefinitionInput{
		Filename: "thorin.json",
		Data:     s.characterFile(testutils.TestCharacter()),
	})
	s.True(errors.IsInvalidFile(err))
}
