package ledger_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/ledger"
	"github.com/KirkDiggler/rpg-hud/internal/testutils/builders"
)

type LedgerTestSuite struct {
	suite.Suite
	character *entities.Character
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) SetupTest() {
	s.character = builders.NewCharacterBuilder().
		WithClass("Wizard", 5).
		WithHitPoints(12, 30, 5).
		WithResource("Arcane Recovery", 0, 1, entities.RechargeLongRest).
		WithResource("Channel", 0, 2, entities.RechargeShortRest).
		WithResource("Luck", 0, 3, entities.RechargeDawn).
		WithResource("Trinket", 0, 1, entities.RechargeManual).
		WithResource("Wish", 0, 1, entities.RechargeNone).
		WithSpellSlot(1, 4, 3).
		WithSpellSlot(2, 3, 2).
		WithKnownSpell("Magic Missile", 1, true).
		WithKnownSpell("Shield", 1, false).
		Build()
}

func (s *LedgerTestSuite) TestSetResourceCurrentClamps() {
	testCases := []struct {
		name     string
		value    int
		expected int
	}{
		{name: "in range", value: 1, expected: 1},
		{name: "above max", value: 9, expected: 2},
		{name: "below zero", value: -4, expected: 0},
		{name: "exactly max", value: 2, expected: 2},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out := ledger.SetResourceCurrent(s.character, "Channel", tc.value)
			s.Equal(tc.expected, out.Resources[out.FindResource("Channel")].Current)
			s.Equal(0, s.character.Resources[s.character.FindResource("Channel")].Current, "input untouched")
		})
	}
}

func (s *LedgerTestSuite) TestSetResourceCurrentUnknownNameIsNoop() {
	out := ledger.SetResourceCurrent(s.character, "Bardic Inspiration", 3)

	s.Equal(s.character, out)
	s.NotSame(s.character, out)
}

func (s *LedgerTestSuite) TestResourceInvariantHoldsForAnySequence() {
	rng := rand.New(rand.NewSource(7))
	current := s.character

	for i := 0; i < 500; i++ {
		resource := current.Resources[rng.Intn(len(current.Resources))]
		if rng.Intn(2) == 0 {
			current = ledger.SetResourceCurrent(current, resource.Name, rng.Intn(21)-10)
		} else {
			current = ledger.AdjustResource(current, resource.Name, rng.Intn(9)-4)
		}

		for _, r := range current.Resources {
			s.GreaterOrEqual(r.Current, 0)
			s.LessOrEqual(r.Current, r.Max)
		}
	}
}

func (s *LedgerTestSuite) TestSetHitPointsClamps() {
	s.Equal(30, ledger.SetHitPoints(s.character, 45).HitPoints.Current)
	s.Equal(0, ledger.SetHitPoints(s.character, -3).HitPoints.Current)
	s.Equal(0, ledger.SetHitPoints(s.character, 0).HitPoints.Current)
	s.Equal(17, ledger.SetHitPoints(s.character, 17).HitPoints.Current)
	s.Equal(12, s.character.HitPoints.Current)
}

func (s *LedgerTestSuite) TestAdjustHitPoints() {
	s.Equal(4, ledger.AdjustHitPoints(s.character, -8).HitPoints.Current)
	s.Equal(0, ledger.AdjustHitPoints(s.character, -100).HitPoints.Current)
	s.Equal(30, ledger.AdjustHitPoints(s.character, 100).HitPoints.Current)
}

func (s *LedgerTestSuite) TestSetTemporaryHitPoints() {
	s.Equal(8, ledger.SetTemporaryHitPoints(s.character, 8).HitPoints.Temporary)
	s.Equal(0, ledger.SetTemporaryHitPoints(s.character, -2).HitPoints.Temporary)
}

func (s *LedgerTestSuite) TestSetSpellSlotUsed() {
	out := ledger.SetSpellSlotUsed(s.character, 2, 10)
	s.Equal(3, out.Spellcasting.SpellSlots[1].Used)

	out = ledger.SetSpellSlotUsed(s.character, 1, -1)
	s.Equal(0, out.Spellcasting.SpellSlots[0].Used)

	s.Equal(3, s.character.Spellcasting.SpellSlots[0].Used, "input untouched")
}

func (s *LedgerTestSuite) TestSetSpellSlotUsedNoops() {
	s.Equal(s.character, ledger.SetSpellSlotUsed(s.character, 9, 1), "unknown level")

	noCaster := builders.NewCharacterBuilder().Build()
	out := ledger.SetSpellSlotUsed(noCaster, 1, 1)
	s.Nil(out.Spellcasting)
}

func (s *LedgerTestSuite) TestUseAndRestoreSpellSlot() {
	out := ledger.UseSpellSlot(s.character, 1)
	s.Equal(4, out.Spellcasting.SpellSlots[0].Used)

	out = ledger.UseSpellSlot(out, 1)
	s.Equal(4, out.Spellcasting.SpellSlots[0].Used, "cannot exceed max")

	out = ledger.RestoreSpellSlot(s.character, 2)
	s.Equal(1, out.Spellcasting.SpellSlots[1].Used)

	s.Equal(s.character, ledger.UseSpellSlot(s.character, 7))
}

func (s *LedgerTestSuite) TestTogglePrepared() {
	out := ledger.TogglePrepared(s.character, "Shield")
	s.True(out.Spellcasting.KnownSpells[1].Prepared)
	s.True(out.Spellcasting.KnownSpells[0].Prepared, "other spells untouched")
	s.False(s.character.Spellcasting.KnownSpells[1].Prepared, "input untouched")

	out = ledger.TogglePrepared(out, "Magic Missile")
	s.False(out.Spellcasting.KnownSpells[0].Prepared)
}

func (s *LedgerTestSuite) TestTogglePreparedNoops() {
	s.Equal(s.character, ledger.TogglePrepared(s.character, "Wish"), "unknown spell")

	noCaster := builders.NewCharacterBuilder().Build()
	s.Nil(ledger.TogglePrepared(noCaster, "Shield").Spellcasting)
}

func (s *LedgerTestSuite) TestShortRest() {
	out := ledger.ShortRest(s.character)

	s.Equal(s.character.HitPoints, out.HitPoints)
	s.Equal(s.character.Spellcasting.SpellSlots, out.Spellcasting.SpellSlots)

	expected := map[string]int{
		"Arcane Recovery": 1,
		"Channel":         2,
		"Luck":            0,
		"Trinket":         0,
		"Wish":            0,
	}
	for _, r := range out.Resources {
		s.Equal(expected[r.Name], r.Current, r.Name)
	}
}

func (s *LedgerTestSuite) TestLongRest() {
	out := ledger.LongRest(s.character)

	s.Equal(entities.HitPoints{Current: 30, Max: 30, Temporary: 0}, out.HitPoints)
	for _, r := range out.Resources {
		s.Equal(r.Max, r.Current, r.Name)
	}
	for _, slot := range out.Spellcasting.SpellSlots {
		s.Equal(0, slot.Used)
	}

	s.Equal(5, s.character.HitPoints.Temporary, "input untouched")
}

func (s *LedgerTestSuite) TestLongRestWithoutSpellcasting() {
	noCaster := builders.NewCharacterBuilder().WithHitPoints(3, 10, 2).Build()

	out := ledger.LongRest(noCaster)

	s.Nil(out.Spellcasting)
	s.Equal(entities.HitPoints{Current: 10, Max: 10}, out.HitPoints)
}

func (s *LedgerTestSuite) TestRestDispatch() {
	s.Equal(ledger.ShortRest(s.character), ledger.Rest(s.character, ledger.RestShort))
	s.Equal(ledger.LongRest(s.character), ledger.Rest(s.character, ledger.RestLong))
	s.Equal(s.character, ledger.Rest(s.character, ledger.RestKind("nap")))
}
