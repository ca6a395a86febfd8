// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-hud/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder creates a level 1 human fighter with 10 in every ability
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: &entities.Character{
			ID:         "char-test-123",
			Name:       "Test Character",
			ClassName:  "Fighter",
			Level:      1,
			Classes:    []entities.CharacterClass{{ClassName: "Fighter", Level: 1}},
			Race:       "Human",
			Background: "Soldier",
			AbilityScores: entities.AbilityScores{
				Strength: 10, Dexterity: 10, Constitution: 10,
				Intelligence: 10, Wisdom: 10, Charisma: 10,
			},
			ArmorClass:       16,
			ProficiencyBonus: 2,
			Speed:            30,
			HitPoints:        entities.HitPoints{Current: 10, Max: 10},
			Resources:        []entities.Resource{},
			Features:         []entities.Feature{},
			Inventory:        entities.Inventory{Items: []entities.InventoryItem{}},
			LevelHistory:     []entities.LevelUpRecord{},
		},
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithClass sets a single class at the given level
func (b *CharacterBuilder) WithClass(className string, level int) *CharacterBuilder {
	b.character.ClassName = className
	b.character.Level = level
	b.character.ProficiencyBonus = entities.ProficiencyBonusForLevel(level)
	b.character.Classes = []entities.CharacterClass{{
		ClassName:    className,
		SubclassName: b.character.SubclassName,
		Level:        level,
	}}
	return b
}

// WithAdditionalClass adds a class entry and raises the total level to match
func (b *CharacterBuilder) WithAdditionalClass(className string, level int) *CharacterBuilder {
	b.character.Classes = append(b.character.Classes, entities.CharacterClass{
		ClassName: className,
		Level:     level,
	})
	b.character.Level += level
	b.character.ProficiencyBonus = entities.ProficiencyBonusForLevel(b.character.Level)
	return b
}

// WithSubclass sets the subclass on the character and its class entry
func (b *CharacterBuilder) WithSubclass(subclassName string) *CharacterBuilder {
	b.character.SubclassName = subclassName
	for i := range b.character.Classes {
		if b.character.Classes[i].ClassName == b.character.ClassName {
			b.character.Classes[i].SubclassName = subclassName
		}
	}
	return b
}

// WithAbility sets one ability score
func (b *CharacterBuilder) WithAbility(ability entities.Ability, score int) *CharacterBuilder {
	b.character.AbilityScores.Set(ability, score)
	return b
}

// WithHitPoints sets current, max and temporary hit points
func (b *CharacterBuilder) WithHitPoints(current, maxHP, temporary int) *CharacterBuilder {
	b.character.HitPoints = entities.HitPoints{Current: current, Max: maxHP, Temporary: temporary}
	return b
}

// WithResource appends a resource
func (b *CharacterBuilder) WithResource(name string, current, maxValue int, rechargeOn entities.RechargeOn) *CharacterBuilder {
	b.character.Resources = append(b.character.Resources, entities.Resource{
		Name:        name,
		Icon:        "*",
		Current:     current,
		Max:         maxValue,
		RechargeOn:  rechargeOn,
		DisplayType: entities.DisplaySlots,
	})
	return b
}

// WithFeature appends a feature
func (b *CharacterBuilder) WithFeature(name, source string) *CharacterBuilder {
	b.character.Features = append(b.character.Features, entities.Feature{
		Name:   name,
		Source: source,
		Type:   entities.FeaturePassive,
	})
	return b
}

// WithSpellSlot adds a spell slot bucket, creating spellcasting if needed
func (b *CharacterBuilder) WithSpellSlot(level, maxSlots, used int) *CharacterBuilder {
	b.ensureSpellcasting()
	b.character.Spellcasting.SpellSlots = append(b.character.Spellcasting.SpellSlots, entities.SpellSlot{
		Level: level,
		Max:   maxSlots,
		Used:  used,
	})
	return b
}

// WithKnownSpell adds a known spell, creating spellcasting if needed
func (b *CharacterBuilder) WithKnownSpell(name string, level int, prepared bool) *CharacterBuilder {
	b.ensureSpellcasting()
	b.character.Spellcasting.KnownSpells = append(b.character.Spellcasting.KnownSpells, entities.CharacterSpell{
		Name:     name,
		Level:    level,
		Prepared: prepared,
	})
	return b
}

func (b *CharacterBuilder) ensureSpellcasting() {
	if b.character.Spellcasting == nil {
		b.character.Spellcasting = &entities.Spellcasting{
			Ability:     entities.AbilityIntelligence,
			KnownSpells: []entities.CharacterSpell{},
			SpellSlots:  []entities.SpellSlot{},
		}
	}
}

// Build returns the built character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character.Clone()
}
