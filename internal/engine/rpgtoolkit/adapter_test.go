package rpgtoolkit_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-hud/internal/engine"
	"github.com/KirkDiggler/rpg-hud/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/testutils/builders"
)

type AdapterTestSuite struct {
	suite.Suite
	bus     events.EventBus
	adapter *rpgtoolkit.Adapter
	ctx     context.Context
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	s.bus = events.NewBus()
	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{EventBus: s.bus})
	s.Require().NoError(err)
	s.adapter = adapter
	s.ctx = context.Background()
}

func (s *AdapterTestSuite) capture(eventType string) *[]events.Event {
	var received []events.Event
	s.bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
		received = append(received, e)
		return nil
	})
	return &received
}

func (s *AdapterTestSuite) TestCharacterUpdated() {
	received := s.capture(engine.EventCharacterUpdated)
	character := builders.NewCharacterBuilder().WithClass("Rogue", 3).Build()

	err := s.adapter.CharacterUpdated(s.ctx, &engine.CharacterUpdatedInput{
		Character: character,
		Action:    engine.ActionHitPoints,
	})
	s.Require().NoError(err)

	s.Require().Len(*received, 1)
	event := (*received)[0]
	s.Equal(engine.EventCharacterUpdated, event.Type())
	s.Equal("char-test-123", event.Source().GetID())
	s.Equal(rpgtoolkit.EntityTypeCharacter, event.Target().GetType())

	action, ok := event.Context().Get(engine.ContextKeyAction)
	s.True(ok)
	s.Equal(engine.ActionHitPoints, action)
	level, ok := event.Context().Get(engine.ContextKeyLevel)
	s.True(ok)
	s.Equal(3, level)
}

func (s *AdapterTestSuite) TestCharacterLeveledSnapshotsCharacter() {
	received := s.capture(engine.EventCharacterLeveled)
	character := builders.NewCharacterBuilder().WithClass("Fighter", 2).Build()
	record := entities.LevelUpRecord{Level: 2, HitPointsGained: 8}

	err := s.adapter.CharacterLeveled(s.ctx, &engine.CharacterLeveledInput{
		Character: character,
		Record:    record,
	})
	s.Require().NoError(err)
	character.Name = "renamed after publish"

	s.Require().Len(*received, 1)
	entity, ok := (*received)[0].Source().(*rpgtoolkit.CharacterEntity)
	s.Require().True(ok)
	s.Equal("Test Character", entity.Name)

	got, ok := (*received)[0].Context().Get(engine.ContextKeyRecord)
	s.True(ok)
	s.Equal(record, got)
}

func (s *AdapterTestSuite) TestHandlerErrorsPropagate() {
	s.bus.SubscribeFunc(engine.EventCharacterUpdated, 0, func(_ context.Context, _ events.Event) error {
		return stderrors.New("subscriber down")
	})

	err := s.adapter.CharacterUpdated(s.ctx, &engine.CharacterUpdatedInput{
		Character: builders.NewCharacterBuilder().Build(),
		Action:    engine.ActionRest,
	})
	s.Require().Error(err)
	s.Contains(err.Error(), engine.EventCharacterUpdated)
}

func (s *AdapterTestSuite) TestValidation() {
	_, err := rpgtoolkit.NewAdapter(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{})
	s.True(errors.IsInvalidArgument(err))

	s.True(errors.IsInvalidArgument(s.adapter.CharacterUpdated(s.ctx, &engine.CharacterUpdatedInput{})))
	s.True(errors.IsInvalidArgument(s.adapter.CharacterLeveled(s.ctx, nil)))
}
