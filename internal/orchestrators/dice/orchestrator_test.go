package dice_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-hud/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-hud/internal/pkg/idgen"
)

// fixedRoller satisfies the rpg-toolkit dice.Roller interface with a
// repeating face value
type fixedRoller struct {
	face int
	err  error
}

func (r *fixedRoller) Roll(size int) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return min(r.face, size), nil
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]int, count)
	for i := range out {
		out[i] = min(r.face, size)
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	roller       *fixedRoller
	orchestrator dice.Service
	ctx          context.Context
	now          time.Time
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.now = time.Date(2026, time.May, 1, 20, 0, 0, 0, time.UTC)
	s.roller = &fixedRoller{face: 4}
	orchestrator, err := dice.NewOrchestrator(&dice.Config{
		Roller:      s.roller,
		IDGenerator: idgen.NewSequential(idgen.PrefixRoll),
		Clock:       clock.Fixed(s.now),
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TestParseNotation() {
	testCases := []struct {
		notation string
		count    int
		sides    int
		modifier int
	}{
		{notation: "d20", count: 1, sides: 20},
		{notation: "2d6", count: 2, sides: 6},
		{notation: "1d8+3", count: 1, sides: 8, modifier: 3},
		{notation: "4D4 - 1", count: 4, sides: 4, modifier: -1},
	}

	for _, tc := range testCases {
		s.Run(tc.notation, func() {
			count, sides, modifier, err := dice.ParseNotation(tc.notation)
			s.Require().NoError(err)
			s.Equal(tc.count, count)
			s.Equal(tc.sides, sides)
			s.Equal(tc.modifier, modifier)
		})
	}

	for _, bad := range []string{"", "d", "2x6", "1d8+", "+3", "1d6*2"} {
		_, _, _, err := dice.ParseNotation(bad)
		s.True(errors.IsInvalidArgument(err), bad)
	}
}

func (s *OrchestratorTestSuite) TestRollDice() {
	out, err := s.orchestrator.RollDice(s.ctx, &dice.RollDiceInput{Notation: "3d6-2"})
	s.Require().NoError(err)

	roll := out.Roll
	s.Equal("roll_1", roll.ID)
	s.Equal("3d6-2", roll.Notation)
	s.Equal([]int{4, 4, 4}, roll.Dice)
	s.Equal(10, roll.Total)
	s.Equal(s.now, roll.RolledAt)
}

func (s *OrchestratorTestSuite) TestRollDiceFromFields() {
	out, err := s.orchestrator.RollDice(s.ctx, &dice.RollDiceInput{Count: 2, Sides: 20, Modifier: 5})
	s.Require().NoError(err)
	s.Equal("2d20+5", out.Roll.Notation)
	s.Equal(13, out.Roll.Total)
}

func (s *OrchestratorTestSuite) TestRollDiceValidation() {
	testCases := []struct {
		name  string
		input *dice.RollDiceInput
	}{
		{name: "nil input", input: nil},
		{name: "unsupported die", input: &dice.RollDiceInput{Notation: "1d7"}},
		{name: "zero dice", input: &dice.RollDiceInput{Notation: "0d6"}},
		{name: "too many dice", input: &dice.RollDiceInput{Count: 101, Sides: 6}},
		{name: "bad notation", input: &dice.RollDiceInput{Notation: "fireball"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.RollDice(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestRollerFailure() {
	s.roller.err = stderrors.New("entropy exhausted")

	_, err := s.orchestrator.RollDice(s.ctx, &dice.RollDiceInput{Notation: "1d20"})
	s.Require().Error(err)

	history, err := s.orchestrator.GetHistory(s.ctx, &dice.GetHistoryInput{})
	s.Require().NoError(err)
	s.Empty(history.Rolls)
}

func (s *OrchestratorTestSuite) TestHistoryKeepsTenNewestFirst() {
	for i := 0; i < 12; i++ {
		_, err := s.orchestrator.RollDice(s.ctx, &dice.RollDiceInput{Notation: "1d20"})
		s.Require().NoError(err)
	}

	history, err := s.orchestrator.GetHistory(s.ctx, &dice.GetHistoryInput{})
	s.Require().NoError(err)
	s.Require().Len(history.Rolls, dice.HistorySize)
	s.Equal("roll_12", history.Rolls[0].ID)
	s.Equal("roll_3", history.Rolls[9].ID)

	cleared, err := s.orchestrator.ClearHistory(s.ctx, &dice.ClearHistoryInput{})
	s.Require().NoError(err)
	s.Equal(10, cleared.RollsDeleted)

	history, err = s.orchestrator.GetHistory(s.ctx, &dice.GetHistoryInput{})
	s.Require().NoError(err)
	s.Empty(history.Rolls)
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := dice.NewOrchestrator(&dice.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = dice.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))
}
