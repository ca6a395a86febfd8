package builders

import (
	"github.com/KirkDiggler/rpg-hud/internal/entities"
)

// ClassDefinitionBuilder provides a fluent interface for building test ClassDefinition instances
type ClassDefinitionBuilder struct {
	definition *entities.ClassDefinition
}

// NewClassDefinitionBuilder creates a d10 Fighter with no levels
func NewClassDefinitionBuilder() *ClassDefinitionBuilder {
	return &ClassDefinitionBuilder{
		definition: &entities.ClassDefinition{
			Name:           "Fighter",
			Description:    "A master of martial combat",
			HitDie:         10,
			PrimaryAbility: []entities.Ability{entities.AbilityStrength},
			SavingThrows:   []entities.Ability{entities.AbilityStrength, entities.AbilityConstitution},
			Levels:         []entities.LevelDefinition{},
		},
	}
}

// WithName sets the class name
func (b *ClassDefinitionBuilder) WithName(name string) *ClassDefinitionBuilder {
	b.definition.Name = name
	return b
}

// WithHitDie sets the hit die size
func (b *ClassDefinitionBuilder) WithHitDie(hitDie int) *ClassDefinitionBuilder {
	b.definition.HitDie = hitDie
	return b
}

// WithLevel appends a level definition
func (b *ClassDefinitionBuilder) WithLevel(level entities.LevelDefinition) *ClassDefinitionBuilder {
	b.definition.Levels = append(b.definition.Levels, level)
	return b
}

// Build returns the built definition
func (b *ClassDefinitionBuilder) Build() *entities.ClassDefinition {
	return b.definition
}
