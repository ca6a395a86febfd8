package sheet_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	srdmock "github.com/KirkDiggler/rpg-hud/internal/clients/srd/mock"
	"github.com/KirkDiggler/rpg-hud/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-hud/internal/engine/mock"
	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/ledger"
	sheetorchestrator "github.com/KirkDiggler/rpg-hud/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-hud/internal/pkg/clock"
	mockclock "github.com/KirkDiggler/rpg-hud/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-hud/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-hud/internal/repositories/documents"
	documentsmock "github.com/KirkDiggler/rpg-hud/internal/repositories/documents/mock"
	"github.com/KirkDiggler/rpg-hud/internal/services/sheet"
	"github.com/KirkDiggler/rpg-hud/internal/testutils"
	"github.com/KirkDiggler/rpg-hud/internal/testutils/builders"
)

var testNow = time.Date(2026, time.March, 14, 19, 30, 0, 0, time.UTC)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockEngine   *enginemock.MockEngine
	mockSRD      *srdmock.MockClient
	repo         documents.Repository
	orchestrator *sheetorchestrator.Orchestrator
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockSRD = srdmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	client, _ := testutils.CreateTestRedisClient(s.T())
	repo, err := documents.NewRedis(&documents.RedisConfig{
		Client: client,
		Clock:  clock.Fixed(testNow),
	})
	s.Require().NoError(err)
	s.repo = repo
	s.orchestrator = s.newOrchestrator(repo)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(repo documents.Repository) *sheetorchestrator.Orchestrator {
	orchestrator, err := sheetorchestrator.New(&sheetorchestrator.Config{
		Repo:        repo,
		Engine:      s.mockEngine,
		SRD:         s.mockSRD,
		Clock:       clock.Fixed(testNow),
		IDGenerator: idgen.NewSequential(idgen.PrefixCharacter),
	})
	s.Require().NoError(err)
	return orchestrator
}

func (s *OrchestratorTestSuite) expectUpdated(action string) {
	s.mockEngine.EXPECT().
		CharacterUpdated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.CharacterUpdatedInput) error {
			s.Equal(action, input.Action)
			return nil
		})
}

func (s *OrchestratorTestSuite) characterFile(character *entities.Character) []byte {
	data, err := json.Marshal(character)
	s.Require().NoError(err)
	return data
}

func (s *OrchestratorTestSuite) importCharacter(character *entities.Character) *sheet.ImportCharacterOutput {
	s.expectUpdated(engine.ActionImported)
	output, err := s.orchestrator.ImportCharacter(s.ctx, &sheet.ImportCharacterInput{
		Filename: "character.json",
		Data:     s.characterFile(character),
	})
	s.Require().NoError(err)
	return output
}

func (s *OrchestratorTestSuite) savedCharacter() *entities.Character {
	loaded, err := s.repo.Load(s.ctx, documents.LoadInput{Key: documents.KeyCharacter})
	s.Require().NoError(err)

	var character entities.Character
	s.Require().NoError(json.Unmarshal(loaded.Document.Data, &character))
	return &character
}

func (s *OrchestratorTestSuite) TestNewValidatesConfig() {
	_, err := sheetorchestrator.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = sheetorchestrator.New(&sheetorchestrator.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Repo")
	s.Contains(err.Error(), "IDGenerator")
}

func (s *OrchestratorTestSuite) TestNoCharacterLoaded() {
	_, err := s.orchestrator.GetCharacter(s.ctx, &sheet.GetCharacterInput{})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orchestrator.AdjustHitPoints(s.ctx, &sheet.AdjustHitPointsInput{Delta: -3})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orchestrator.ExportCharacter(s.ctx, &sheet.ExportCharacterInput{})
	s.True(errors.IsFailedPrecondition(err))

	s.NoError(s.orchestrator.Persist(s.ctx))
}

func (s *OrchestratorTestSuite) TestImportCharacterAssignsIDAndSaves() {
	character := testutils.TestCharacter()
	character.ID = ""

	output := s.importCharacter(character)

	s.Equal("char_1", output.Character.ID)
	s.Equal("Level 1 Fighter", output.ClassDisplay)

	saved := s.savedCharacter()
	s.Equal("char_1", saved.ID)
	s.Equal(testutils.TestCharacterName, saved.Name)

	recent, err := s.orchestrator.ListRecentCharacters(s.ctx, &sheet.ListRecentCharactersInput{})
	s.Require().NoError(err)
	s.Require().Len(recent.Characters, 1)
	s.Equal("char_1", recent.Characters[0].ID)
	s.Equal("Fighter", recent.Characters[0].ClassName)
	s.Equal(1, recent.Characters[0].Level)
	s.True(testNow.Equal(recent.Characters[0].LastPlayed))
}

func (s *OrchestratorTestSuite) TestImportInvalidFile() {
	_, err := s.orchestrator.ImportCharacter(s.ctx, &sheet.ImportCharacterInput{
		Filename: "notes.json",
		Data:     []byte("not json"),
	})
	s.True(errors.IsInvalidFile(err))

	_, err = s.orchestrator.GetCharacter(s.ctx, &sheet.GetCharacterInput{})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestLedgerMutationsPersist() {
	s.importCharacter(builders.NewCharacterBuilder().
		WithHitPoints(20, 20, 0).
		WithResource("Second Wind", 1, 1, entities.RechargeShortRest).
		WithSpellSlot(1, 2, 0).
		Build())

	s.expectUpdated(engine.ActionHitPoints)
	output, err := s.orchestrator.AdjustHitPoints(s.ctx, &sheet.AdjustHitPointsInput{Delta: -25})
	s.Require().NoError(err)
	s.Equal(0, output.Character.HitPoints.Current)

	s.expectUpdated(engine.ActionHitPoints)
	_, err = s.orchestrator.SetHitPoints(s.ctx, &sheet.SetHitPointsInput{Current: 12})
	s.Require().NoError(err)

	s.expectUpdated(engine.ActionHitPoints)
	_, err = s.orchestrator.SetTemporaryHitPoints(s.ctx, &sheet.SetTemporaryHitPointsInput{Temporary: 5})
	s.Require().NoError(err)

	s.expectUpdated(engine.ActionResource)
	output, err = s.orchestrator.AdjustResource(s.ctx, &sheet.AdjustResourceInput{Name: "Second Wind", Delta: -1})
	s.Require().NoError(err)
	s.Equal(0, output.Character.Resources[0].Current)

	s.expectUpdated(engine.ActionSpellSlot)
	output, err = s.orchestrator.SetSpellSlot(s.ctx, &sheet.SetSpellSlotInput{Level: 1, Used: 9})
	s.Require().NoError(err)
	s.Equal(2, output.Character.Spellcasting.SpellSlots[0].Used)

	saved := s.savedCharacter()
	s.Equal(entities.HitPoints{Current: 12, Max: 20, Temporary: 5}, saved.HitPoints)
	s.Equal(0, saved.Resources[0].Current)
	s.Equal(2, saved.Spellcasting.SpellSlots[0].Used)

	s.expectUpdated(engine.ActionRest)
	output, err = s.orchestrator.Rest(s.ctx, &sheet.RestInput{Kind: ledger.RestShort})
	s.Require().NoError(err)
	s.Equal(1, output.Character.Resources[0].Current)
	s.Equal(2, output.Character.Spellcasting.SpellSlots[0].Used)

	s.expectUpdated(engine.ActionRest)
	output, err = s.orchestrator.Rest(s.ctx, &sheet.RestInput{Kind: ledger.RestLong})
	s.Require().NoError(err)
	s.Equal(20, output.Character.HitPoints.Current)
	s.Equal(0, output.Character.Spellcasting.SpellSlots[0].Used)
}

func (s *OrchestratorTestSuite) TestSpellMutationsPersist() {
	s.importCharacter(builders.NewCharacterBuilder().
		WithClass("Wizard", 3).
		WithSpellSlot(1, 4, 1).
		WithSpellSlot(2, 2, 0).
		WithKnownSpell("Shield", 1, false).
		Build())

	s.expectUpdated(engine.ActionSpellSlot)
	output, err := s.orchestrator.UseSpellSlot(s.ctx, &sheet.UseSpellSlotInput{Level: 2})
	s.Require().NoError(err)
	s.Equal(1, output.Character.Spellcasting.SpellSlots[1].Used)

	s.expectUpdated(engine.ActionSpellSlot)
	output, err = s.orchestrator.RestoreSpellSlot(s.ctx, &sheet.RestoreSpellSlotInput{Level: 1})
	s.Require().NoError(err)
	s.Equal(0, output.Character.Spellcasting.SpellSlots[0].Used)

	s.expectUpdated(engine.ActionSpell)
	output, err = s.orchestrator.TogglePreparedSpell(s.ctx, &sheet.TogglePreparedSpellInput{Name: "Shield"})
	s.Require().NoError(err)
	s.True(output.Character.Spellcasting.KnownSpells[0].Prepared)

	saved := s.savedCharacter()
	s.Equal([]entities.SpellSlot{{Level: 1, Max: 4, Used: 0}, {Level: 2, Max: 2, Used: 1}}, saved.Spellcasting.SpellSlots)
	s.True(saved.Spellcasting.KnownSpells[0].Prepared)

	_, err = s.orchestrator.TogglePreparedSpell(s.ctx, &sheet.TogglePreparedSpellInput{Name: ""})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.orchestrator.UseSpellSlot(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUnknownResourceIsNoOp() {
	s.importCharacter(testutils.TestCharacter())

	s.expectUpdated(engine.ActionResource)
	output, err := s.orchestrator.SetResource(s.ctx, &sheet.SetResourceInput{Name: "Rage", Current: 3})
	s.Require().NoError(err)
	s.Empty(output.Character.Resources)
}

func (s *OrchestratorTestSuite) TestMutationValidation() {
	s.importCharacter(testutils.TestCharacter())

	_, err := s.orchestrator.SetResource(s.ctx, &sheet.SetResourceInput{Name: " "})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.Rest(s.ctx, &sheet.RestInput{Kind: "nap"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.SetHitPoints(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestLoadCharacter() {
	_, err := s.orchestrator.LoadCharacter(s.ctx, &sheet.LoadCharacterInput{})
	s.True(errors.IsNotFound(err))

	s.importCharacter(testutils.TestCharacter())

	restarted := s.newOrchestrator(s.repo)
	s.expectUpdated(engine.ActionLoaded)
	output, err := restarted.LoadCharacter(s.ctx, &sheet.LoadCharacterInput{})
	s.Require().NoError(err)
	s.Equal("char-test-123", output.Character.ID)
	s.Equal(20, output.Character.HitPoints.Max)
}

func (s *OrchestratorTestSuite) TestLoadUnreadableCharacter() {
	_, err := s.repo.Save(s.ctx, documents.SaveInput{
		Key:  documents.KeyCharacter,
		Data: []byte(`{"hitPoints":{"current":1,"max":1}}`),
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.LoadCharacter(s.ctx, &sheet.LoadCharacterInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRecentCharactersNewestFirstCapped() {
	for i := 1; i <= 12; i++ {
		s.importCharacter(builders.NewCharacterBuilder().
			WithID(fmt.Sprintf("char-%02d", i)).
			WithName(fmt.Sprintf("Hero %d", i)).
			Build())
	}

	recent, err := s.orchestrator.ListRecentCharacters(s.ctx, &sheet.ListRecentCharactersInput{})
	s.Require().NoError(err)
	s.Require().Len(recent.Characters, sheet.MaxRecentCharacters)
	s.Equal("char-12", recent.Characters[0].ID)
	s.Equal("char-03", recent.Characters[9].ID)

	s.importCharacter(builders.NewCharacterBuilder().WithID("char-05").WithName("Hero 5").Build())

	recent, err = s.orchestrator.ListRecentCharacters(s.ctx, &sheet.ListRecentCharactersInput{})
	s.Require().NoError(err)
	s.Require().Len(recent.Characters, sheet.MaxRecentCharacters)
	s.Equal("char-05", recent.Characters[0].ID)
	s.Equal("char-12", recent.Characters[1].ID)

	seen := make(map[string]bool)
	for _, entry := range recent.Characters {
		s.False(seen[entry.ID], "duplicate %s", entry.ID)
		seen[entry.ID] = true
	}
}

func (s *OrchestratorTestSuite) TestCorruptRecentListIsReplaced() {
	_, err := s.repo.Save(s.ctx, documents.SaveInput{
		Key:  documents.KeyRecentCharacters,
		Data: []byte(`{"not":"a list"}`),
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.ListRecentCharacters(s.ctx, &sheet.ListRecentCharactersInput{})
	s.Equal(errors.CodeInternal, errors.GetCode(err))

	s.importCharacter(testutils.TestCharacter())

	recent, err := s.orchestrator.ListRecentCharacters(s.ctx, &sheet.ListRecentCharactersInput{})
	s.Require().NoError(err)
	s.Len(recent.Characters, 1)
}

func (s *OrchestratorTestSuite) TestExportCharacter() {
	s.importCharacter(testutils.TestCharacter())

	output, err := s.orchestrator.ExportCharacter(s.ctx, &sheet.ExportCharacterInput{})
	s.Require().NoError(err)
	s.Equal("thorin-oakenshield.json", output.Filename)
	s.Contains(string(output.Data), "\n  \"name\": \"Thorin Oakenshield\"")
}

func (s *OrchestratorTestSuite) TestStorageFailureKeepsMutation() {
	mockRepo := documentsmock.NewMockRepository(s.ctrl)
	orchestrator := s.newOrchestrator(mockRepo)

	mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis unavailable")).
		Times(2)
	s.expectUpdated(engine.ActionImported)

	output, err := orchestrator.ImportCharacter(s.ctx, &sheet.ImportCharacterInput{
		Filename: "thorin.json",
		Data:     s.characterFile(testutils.TestCharacter()),
	})
	s.Require().NoError(err)
	s.Equal(testutils.TestCharacterName, output.Character.Name)

	err = orchestrator.Persist(s.ctx)
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestEventFailureDoesNotFailMutation() {
	s.mockEngine.EXPECT().
		CharacterUpdated(gomock.Any(), gomock.Any()).
		Return(errors.Internal("bus closed"))

	_, err := s.orchestrator.ImportCharacter(s.ctx, &sheet.ImportCharacterInput{
		Filename: "thorin.json",
		Data:     s.characterFile(testutils.TestCharacter()),
	})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestPersistSavesLiveCharacter() {
	s.importCharacter(testutils.TestCharacter())
	_, err := s.repo.Delete(s.ctx, documents.DeleteInput{Key: documents.KeyCharacter})
	s.Require().NoError(err)

	s.Require().NoError(s.orchestrator.Persist(s.ctx))
	s.Equal(testutils.TestCharacterName, s.savedCharacter().Name)
}

func (s *OrchestratorTestSuite) TestOutputIsACopy() {
	output := s.importCharacter(testutils.TestCharacter())
	output.Character.HitPoints.Current = 1

	current, err := s.orchestrator.GetCharacter(s.ctx, &sheet.GetCharacterInput{})
	s.Require().NoError(err)
	s.Equal(20, current.Character.HitPoints.Current)
}

func (s *OrchestratorTestSuite) TestLastPlayedMovesWithEachSave() {
	mockClock := mockclock.NewMockClock(s.ctrl)
	orchestrator, err := sheetorchestrator.New(&sheetorchestrator.Config{
		Repo:        s.repo,
		Engine:      s.mockEngine,
		SRD:         s.mockSRD,
		Clock:       mockClock,
		IDGenerator: idgen.NewSequential(idgen.PrefixCharacter),
	})
	s.Require().NoError(err)

	imported := testNow
	played := testNow.Add(90 * time.Minute)
	gomock.InOrder(
		mockClock.EXPECT().Now().Return(imported),
		mockClock.EXPECT().Now().Return(played),
	)

	s.expectUpdated(engine.ActionImported)
	_, err = orchestrator.ImportCharacter(s.ctx, &sheet.ImportCharacterInput{
		Filename: "character.json",
		Data:     s.characterFile(testutils.TestCharacter()),
	})
	s.Require().NoError(err)

	recent, err := orchestrator.ListRecentCharacters(s.ctx, &sheet.ListRecentCharactersInput{})
	s.Require().NoError(err)
	s.Require().Len(recent.Characters, 1)
	s.True(imported.Equal(recent.Characters[0].LastPlayed))

	s.expectUpdated(engine.ActionHitPoints)
	_, err = orchestrator.SetHitPoints(s.ctx, &sheet.SetHitPointsInput{Current: 5})
	s.Require().NoError(err)

	recent, err = orchestrator.ListRecentCharacters(s.ctx, &sheet.ListRecentCharactersInput{})
	s.Require().NoError(err)
	s.Require().Len(recent.Characters, 1)
	s.True(played.Equal(recent.Characters[0].LastPlayed))
}
