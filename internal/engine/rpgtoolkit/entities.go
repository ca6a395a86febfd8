package rpgtoolkit

import "github.com/KirkDiggler/rpg-hud/internal/entities"

// EntityTypeCharacter is the rpg-toolkit entity type of a sheet character
const EntityTypeCharacter = "character"

// CharacterEntity wraps entities.Character to implement core.Entity
type CharacterEntity struct {
	*entities.Character
}

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}

// wrapCharacter snapshots the character so subscribers never alias the
// live document
func wrapCharacter(character *entities.Character) *CharacterEntity {
	return &CharacterEntity{Character: character.Clone()}
}
