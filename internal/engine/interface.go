// Package engine is the sheet's boundary to rpg-toolkit. The sheet reports
// what happened to the live character and the engine turns it into game
// events other toolkit modules can subscribe to.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-hud/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/rpg-hud/internal/entities"
)

// Event types published on the bus
const (
	EventCharacterUpdated = "sheet.character.updated"
	EventCharacterLeveled = "sheet.character.leveled"
)

// Keys set on the event context
const (
	ContextKeyAction = "action"
	ContextKeyLevel  = "level"
	ContextKeyRecord = "record"
)

// Actions reported with EventCharacterUpdated
const (
	ActionLoaded    = "loaded"
	ActionImported  = "imported"
	ActionHitPoints = "hit-points"
	ActionResource  = "resource"
	ActionSpellSlot = "spell-slot"
	ActionSpell     = "spell"
	ActionRest      = "rest"
	ActionLevelUp   = "level-up"
)

// CharacterUpdatedInput describes an accepted mutation
type CharacterUpdatedInput struct {
	Character *entities.Character
	Action    string
}

// CharacterLeveledInput describes a completed level-up
type CharacterLeveledInput struct {
	Character *entities.Character
	Record    entities.LevelUpRecord
}

// Engine publishes sheet changes
type Engine interface {
	CharacterUpdated(ctx context.Context, input *CharacterUpdatedInput) error
	CharacterLeveled(ctx context.Context, input *CharacterLeveledInput) error
}
