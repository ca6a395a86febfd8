// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-hud/internal/engine"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
)

// Adapter implements engine.Engine on an rpg-toolkit event bus
type Adapter struct {
	eventBus events.EventBus
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus events.EventBus
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{eventBus: cfg.EventBus}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// Verify that CharacterEntity implements core.Entity
var _ core.Entity = (*CharacterEntity)(nil)

// CharacterUpdated publishes sheet.character.updated with the character as
// both source and target
func (a *Adapter) CharacterUpdated(ctx context.Context, input *engine.CharacterUpdatedInput) error {
	if input == nil || input.Character == nil {
		return errors.InvalidArgument("character is required")
	}

	entity := wrapCharacter(input.Character)
	event := events.NewGameEvent(engine.EventCharacterUpdated, entity, entity)
	event.Context().Set(engine.ContextKeyAction, input.Action)
	event.Context().Set(engine.ContextKeyLevel, input.Character.Level)

	if err := a.eventBus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s", engine.EventCharacterUpdated)
	}
	return nil
}

// CharacterLeveled publishes sheet.character.leveled carrying the new record
func (a *Adapter) CharacterLeveled(ctx context.Context, input *engine.CharacterLeveledInput) error {
	if input == nil || input.Character == nil {
		return errors.InvalidArgument("character is required")
	}

	entity := wrapCharacter(input.Character)
	event := events.NewGameEvent(engine.EventCharacterLeveled, entity, entity)
	event.Context().Set(engine.ContextKeyLevel, input.Record.Level)
	event.Context().Set(engine.ContextKeyRecord, input.Record.Clone())

	if err := a.eventBus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s", engine.EventCharacterLeveled)
	}
	return nil
}
