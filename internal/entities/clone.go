package entities

// Clone returns a deep copy. Every mutation in the sheet starts from a clone
// so that no snapshot shares slices or pointers with another.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	out := *c
	out.Classes = cloneSlice(c.Classes)
	out.Resources = cloneSlice(c.Resources)
	out.Features = cloneSlice(c.Features)
	out.Inventory = c.Inventory.clone()
	out.Proficiencies = c.Proficiencies.clone()

	if c.Spellcasting != nil {
		sc := *c.Spellcasting
		sc.KnownSpells = cloneSlice(c.Spellcasting.KnownSpells)
		sc.PreparedSpells = cloneSlice(c.Spellcasting.PreparedSpells)
		sc.SpellSlots = cloneSlice(c.Spellcasting.SpellSlots)
		out.Spellcasting = &sc
	}

	if c.LevelHistory != nil {
		out.LevelHistory = make([]LevelUpRecord, len(c.LevelHistory))
		for i, record := range c.LevelHistory {
			out.LevelHistory[i] = record.Clone()
		}
	}

	return &out
}

// Clone returns a deep copy of the record
func (r LevelUpRecord) Clone() LevelUpRecord {
	out := r
	out.FeaturesGained = cloneSlice(r.FeaturesGained)
	out.ResourcesGained = cloneSlice(r.ResourcesGained)
	if r.ChoicesMade != nil {
		out.ChoicesMade = make([]ChoiceMade, len(r.ChoicesMade))
		for i, choice := range r.ChoicesMade {
			out.ChoicesMade[i] = ChoiceMade{
				Type:       choice.Type,
				Selections: cloneSlice(choice.Selections),
			}
		}
	}
	return out
}

func (inv Inventory) clone() Inventory {
	out := inv
	out.Items = cloneSlice(inv.Items)
	out.Equipment = Equipment{
		MainHand:   clonePtr(inv.Equipment.MainHand),
		OffHand:    clonePtr(inv.Equipment.OffHand),
		Armor:      clonePtr(inv.Equipment.Armor),
		Accessory1: clonePtr(inv.Equipment.Accessory1),
		Accessory2: clonePtr(inv.Equipment.Accessory2),
		Accessory3: clonePtr(inv.Equipment.Accessory3),
	}
	return out
}

func (p Proficiencies) clone() Proficiencies {
	return Proficiencies{
		Armor:        cloneSlice(p.Armor),
		Weapons:      cloneSlice(p.Weapons),
		Tools:        cloneSlice(p.Tools),
		Languages:    cloneSlice(p.Languages),
		Skills:       cloneSlice(p.Skills),
		SavingThrows: cloneSlice(p.SavingThrows),
	}
}

// cloneSlice copies a slice of values, keeping nil as nil
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func clonePtr[T any](in *T) *T {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
