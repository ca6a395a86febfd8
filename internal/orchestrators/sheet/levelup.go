package sheet

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-hud/internal/engine"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/levelup"
	"github.com/KirkDiggler/rpg-hud/internal/services/sheet"
)

// StartLevelUp opens the wizard for the next level of the named class
func (o *Orchestrator) StartLevelUp(ctx context.Context, input *sheet.StartLevelUpInput) (*sheet.LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireCharacter(); err != nil {
		return nil, err
	}
	if o.wizard != nil {
		return nil, errors.FailedPrecondition("a level-up is already in progress")
	}

	className := input.ClassName
	if className == "" {
		className = o.character.ClassName
	}
	if className == "" {
		className = o.character.PrimaryClass().ClassName
	}
	if className == "" {
		return nil, errors.FailedPrecondition("character has no class to level")
	}

	definition, err := o.classDefinition(ctx, className)
	if err != nil {
		return nil, err
	}

	var opts []levelup.Option
	if o.formulas != nil {
		opts = append(opts, levelup.WithFormulaEvaluator(o.formulas))
	}

	wizard, err := levelup.Start(o.character, definition, opts...)
	if err != nil {
		return nil, err
	}
	o.wizard = wizard

	slog.InfoContext(ctx, "level-up started",
		"character_id", o.character.ID,
		"class", definition.Name,
		"target_level", wizard.TargetLevel(),
		"steps", wizard.TotalSteps())

	return &sheet.LevelUpOutput{LevelUp: wizard.View()}, nil
}

// GetLevelUp returns the open wizard
func (o *Orchestrator) GetLevelUp(_ context.Context, input *sheet.GetLevelUpInput) (*sheet.LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.step(func(*levelup.Wizard) error { return nil })
}

// ToggleLevelUpOption flips one option on the current choice step
func (o *Orchestrator) ToggleLevelUpOption(_ context.Context, input *sheet.ToggleLevelUpOptionInput) (*sheet.LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.step(func(w *levelup.Wizard) error { return w.Toggle(input.Option) })
}

// SelectLevelUpOptions replaces the selection on the current choice step
func (o *Orchestrator) SelectLevelUpOptions(_ context.Context, input *sheet.SelectLevelUpOptionsInput) (*sheet.LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.step(func(w *levelup.Wizard) error { return w.Select(input.Options) })
}

// AllocateAbility sets the points given to one ability on the improvement step
func (o *Orchestrator) AllocateAbility(_ context.Context, input *sheet.AllocateAbilityInput) (*sheet.LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.step(func(w *levelup.Wizard) error { return w.Allocate(input.Ability, input.Points) })
}

// RetreatLevelUp steps the wizard back
func (o *Orchestrator) RetreatLevelUp(_ context.Context, input *sheet.RetreatLevelUpInput) (*sheet.LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.step(func(w *levelup.Wizard) error { return w.Retreat() })
}

// AdvanceLevelUp commits the current step. The last step merges the level
// into the live character, saves it and closes the wizard.
func (o *Orchestrator) AdvanceLevelUp(ctx context.Context, input *sheet.AdvanceLevelUpInput) (*sheet.AdvanceLevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireWizard(); err != nil {
		return nil, err
	}

	result, err := o.wizard.Advance()
	if err != nil {
		return nil, err
	}

	view := o.wizard.View()
	if result == nil {
		return &sheet.AdvanceLevelUpOutput{LevelUp: view}, nil
	}

	o.wizard = nil
	o.character = result.Character
	o.save(ctx, engine.ActionLevelUp)

	err = o.engine.CharacterLeveled(ctx, &engine.CharacterLeveledInput{
		Character: o.character,
		Record:    result.Record,
	})
	if err != nil {
		slog.WarnContext(ctx, "character leveled event failed", "error", err)
	}

	slog.InfoContext(ctx, "level-up completed",
		"character_id", o.character.ID,
		"level", result.Record.Level,
		"hit_points_gained", result.Record.HitPointsGained,
		"features_gained", len(result.Record.FeaturesGained))

	record := result.Record.Clone()
	out := o.output()
	return &sheet.AdvanceLevelUpOutput{
		LevelUp:      view,
		Completed:    true,
		Character:    out.Character,
		ClassDisplay: out.ClassDisplay,
		Record:       &record,
	}, nil
}

// CancelLevelUp abandons the wizard from its first step
func (o *Orchestrator) CancelLevelUp(ctx context.Context, input *sheet.CancelLevelUpInput) (*sheet.CancelLevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireWizard(); err != nil {
		return nil, err
	}
	if err := o.wizard.Cancel(); err != nil {
		return nil, err
	}
	o.wizard = nil

	slog.InfoContext(ctx, "level-up cancelled", "character_id", o.character.ID)
	return &sheet.CancelLevelUpOutput{}, nil
}

// step runs one wizard action and returns the resulting view
func (o *Orchestrator) step(action func(*levelup.Wizard) error) (*sheet.LevelUpOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireWizard(); err != nil {
		return nil, err
	}
	if err := action(o.wizard); err != nil {
		return nil, err
	}
	return &sheet.LevelUpOutput{LevelUp: o.wizard.View()}, nil
}

func (o *Orchestrator) requireWizard() error {
	if o.wizard == nil {
		return errors.FailedPrecondition("no level-up in progress")
	}
	return nil
}
