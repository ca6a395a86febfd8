// Package ledger applies the simple sheet mutations: hit points, resource
// counters, spell-slot usage, prepared spells and rests. Every function is
// pure. It clones its input, clamps numbers into range instead of rejecting
// them and treats an unknown resource, slot level or spell as a no-op.
package ledger

import "github.com/KirkDiggler/rpg-hud/internal/entities"

// RestKind selects ShortRest or LongRest
type RestKind string

// Rest kinds
const (
	RestShort RestKind = "short"
	RestLong  RestKind = "long"
)

// SetResourceCurrent clamps current into [0, max] for the named resource.
func SetResourceCurrent(character *entities.Character, name string, current int) *entities.Character {
	out := character.Clone()
	if i := out.FindResource(name); i >= 0 {
		out.Resources[i].Current = clamp(current, 0, out.Resources[i].Max)
	}
	return out
}

// AdjustResource moves the named resource by delta, clamped.
func AdjustResource(character *entities.Character, name string, delta int) *entities.Character {
	i := character.FindResource(name)
	if i < 0 {
		return character.Clone()
	}
	return SetResourceCurrent(character, name, character.Resources[i].Current+delta)
}

// SetHitPoints clamps current into [0, max]. Zero has no special meaning.
func SetHitPoints(character *entities.Character, current int) *entities.Character {
	out := character.Clone()
	out.HitPoints.Current = clamp(current, 0, out.HitPoints.Max)
	return out
}

// AdjustHitPoints applies a damage (negative) or healing (positive) delta.
func AdjustHitPoints(character *entities.Character, delta int) *entities.Character {
	return SetHitPoints(character, character.HitPoints.Current+delta)
}

// SetTemporaryHitPoints sets temporary hit points, floored at 0.
func SetTemporaryHitPoints(character *entities.Character, temporary int) *entities.Character {
	out := character.Clone()
	out.HitPoints.Temporary = max(temporary, 0)
	return out
}

// SetSpellSlotUsed clamps used into [0, max] for the slot of the given level.
func SetSpellSlotUsed(character *entities.Character, level, used int) *entities.Character {
	out := character.Clone()
	if slot := findSlot(out, level); slot != nil {
		slot.Used = clamp(used, 0, slot.Max)
	}
	return out
}

// UseSpellSlot marks one more slot of the level as used
func UseSpellSlot(character *entities.Character, level int) *entities.Character {
	return adjustSpellSlot(character, level, 1)
}

// RestoreSpellSlot frees one used slot of the level
func RestoreSpellSlot(character *entities.Character, level int) *entities.Character {
	return adjustSpellSlot(character, level, -1)
}

func adjustSpellSlot(character *entities.Character, level, delta int) *entities.Character {
	slot := findSlot(character, level)
	if slot == nil {
		return character.Clone()
	}
	return SetSpellSlotUsed(character, level, slot.Used+delta)
}

// TogglePrepared flips the prepared flag of every known spell with the name.
func TogglePrepared(character *entities.Character, spellName string) *entities.Character {
	out := character.Clone()
	if out.Spellcasting == nil {
		return out
	}
	for i := range out.Spellcasting.KnownSpells {
		if out.Spellcasting.KnownSpells[i].Name == spellName {
			out.Spellcasting.KnownSpells[i].Prepared = !out.Spellcasting.KnownSpells[i].Prepared
		}
	}
	return out
}

// ShortRest refills resources that recharge on a short or long rest. Hit
// points and spell slots are untouched.
func ShortRest(character *entities.Character) *entities.Character {
	out := character.Clone()
	for i := range out.Resources {
		if out.Resources[i].RechargeOn.RestoresOnShortRest() {
			out.Resources[i].Current = out.Resources[i].Max
		}
	}
	return out
}

// LongRest restores hit points, clears temporary hit points, refills every
// resource regardless of its recharge rule and frees every spell slot.
func LongRest(character *entities.Character) *entities.Character {
	out := character.Clone()
	out.HitPoints.Current = out.HitPoints.Max
	out.HitPoints.Temporary = 0
	for i := range out.Resources {
		out.Resources[i].Current = out.Resources[i].Max
	}
	if out.Spellcasting != nil {
		for i := range out.Spellcasting.SpellSlots {
			out.Spellcasting.SpellSlots[i].Used = 0
		}
	}
	return out
}

// Rest dispatches on kind. An unknown kind returns an unchanged copy.
func Rest(character *entities.Character, kind RestKind) *entities.Character {
	switch kind {
	case RestShort:
		return ShortRest(character)
	case RestLong:
		return LongRest(character)
	}
	return character.Clone()
}

func findSlot(character *entities.Character, level int) *entities.SpellSlot {
	if character.Spellcasting == nil {
		return nil
	}
	for i := range character.Spellcasting.SpellSlots {
		if character.Spellcasting.SpellSlots[i].Level == level {
			return &character.Spellcasting.SpellSlots[i]
		}
	}
	return nil
}

// clamp keeps v in [lo, hi]; a negative hi collapses the range to lo.
func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}
