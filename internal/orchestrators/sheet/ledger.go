package sheet

import (
	"context"

	"github.com/KirkDiggler/rpg-hud/internal/engine"
	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/ledger"
	"github.com/KirkDiggler/rpg-hud/internal/services/sheet"
)

// SetHitPoints sets current hit points, clamped to [0, max]
func (o *Orchestrator) SetHitPoints(ctx context.Context, input *sheet.SetHitPointsInput) (*sheet.SetHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, engine.ActionHitPoints, func(c *entities.Character) *entities.Character {
		return ledger.SetHitPoints(c, input.Current)
	})
}

// AdjustHitPoints heals or damages the character
func (o *Orchestrator) AdjustHitPoints(ctx context.Context, input *sheet.AdjustHitPointsInput) (*sheet.AdjustHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, engine.ActionHitPoints, func(c *entities.Character) *entities.Character {
		return ledger.AdjustHitPoints(c, input.Delta)
	})
}

// SetTemporaryHitPoints replaces temporary hit points
func (o *Orchestrator) SetTemporaryHitPoints(ctx context.Context, input *sheet.SetTemporaryHitPointsInput) (*sheet.SetTemporaryHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, engine.ActionHitPoints, func(c *entities.Character) *entities.Character {
		return ledger.SetTemporaryHitPoints(c, input.Temporary)
	})
}

// SetResource sets a resource's current value. Unknown names change nothing.
func (o *Orchestrator) SetResource(ctx context.Context, input *sheet.SetResourceInput) (*sheet.SetResourceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, engine.ActionResource, func(c *entities.Character) *entities.Character {
		return ledger.SetResourceCurrent(c, input.Name, input.Current)
	})
}

// AdjustResource spends or regains a resource
func (o *Orchestrator) AdjustResource(ctx context.Context, input *sheet.AdjustResourceInput) (*sheet.AdjustResourceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, engine.ActionResource, func(c *entities.Character) *entities.Character {
		return ledger.AdjustResource(c, input.Name, input.Delta)
	})
}

// SetSpellSlot sets how many slots of one level are spent
func (o *Orchestrator) SetSpellSlot(ctx context.Context, input *sheet.SetSpellSlotInput) (*sheet.SetSpellSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, engine.ActionSpellSlot, func(c *entities.Character) *entities.Character {
		return ledger.SetSpellSlotUsed(c, input.Level, input.Used)
	})
}

// UseSpellSlot spends one slot of a level
func (o *Orchestrator) UseSpellSlot(ctx context.Context, input *sheet.UseSpellSlotInput) (*sheet.UseSpellSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, engine.ActionSpellSlot, func(c *entities.Character) *entities.Character {
		return ledger.UseSpellSlot(c, input.Level)
	})
}

// RestoreSpellSlot regains one spent slot of a level
func (o *Orchestrator) RestoreSpellSlot(ctx context.Context, input *sheet.RestoreSpellSlotInput) (*sheet.RestoreSpellSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, engine.ActionSpellSlot, func(c *entities.Character) *entities.Character {
		return ledger.RestoreSpellSlot(c, input.Level)
	})
}

// TogglePreparedSpell flips a known spell between prepared and unprepared.
// Unknown names change nothing.
func (o *Orchestrator) TogglePreparedSpell(ctx context.Context, input *sheet.TogglePreparedSpellInput) (*sheet.TogglePreparedSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, engine.ActionSpell, func(c *entities.Character) *entities.Character {
		return ledger.TogglePrepared(c, input.Name)
	})
}

// Rest applies a short or long rest
func (o *Orchestrator) Rest(ctx context.Context, input *sheet.RestInput) (*sheet.RestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("kind", input.Kind, []ledger.RestKind{ledger.RestShort, ledger.RestLong}, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, engine.ActionRest, func(c *entities.Character) *entities.Character {
		return ledger.Rest(c, input.Kind)
	})
}

// mutate applies one ledger operation to the live character. The ledger is
// locked out while a level-up is open since the wizard merges into the
// character it started from.
func (o *Orchestrator) mutate(ctx context.Context, action string, apply func(*entities.Character) *entities.Character) (*sheet.CharacterOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireCharacter(); err != nil {
		return nil, err
	}
	if o.wizard != nil {
		return nil, errors.FailedPrecondition("finish or cancel the level-up first")
	}

	o.character = apply(o.character)
	o.save(ctx, action)
	return o.output(), nil
}
