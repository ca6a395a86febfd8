// Package sheet implements the sheet orchestrator, the single owner of the
// live character.
package sheet

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-hud/internal/clients/srd"
	"github.com/KirkDiggler/rpg-hud/internal/engine"
	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/exchange"
	"github.com/KirkDiggler/rpg-hud/internal/formula"
	"github.com/KirkDiggler/rpg-hud/internal/levelup"
	"github.com/KirkDiggler/rpg-hud/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-hud/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-hud/internal/repositories/documents"
	"github.com/KirkDiggler/rpg-hud/internal/services/sheet"
)

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	Repo        documents.Repository
	Engine      engine.Engine
	SRD         srd.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator

	// Formulas resolves formula-valued resource maxima during level-up.
	// Optional.
	Formulas formula.Evaluator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Repo == nil {
		vb.RequiredField("Repo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.SRD == nil {
		vb.RequiredField("SRD")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the sheet.Service interface. Every action runs
// under one mutex so the live character is only ever touched by one caller.
type Orchestrator struct {
	repo     documents.Repository
	engine   engine.Engine
	srd      srd.Client
	clock    clock.Clock
	idGen    idgen.Generator
	formulas formula.Evaluator

	mu        sync.Mutex
	character *entities.Character
	classes   map[string]*entities.ClassDefinition
	wizard    *levelup.Wizard
}

// New creates a new sheet orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		repo:     cfg.Repo,
		engine:   cfg.Engine,
		srd:      cfg.SRD,
		clock:    cfg.Clock,
		idGen:    cfg.IDGenerator,
		formulas: cfg.Formulas,
		classes:  make(map[string]*entities.ClassDefinition),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ sheet.Service = (*Orchestrator)(nil)

// GetCharacter returns the live character
func (o *Orchestrator) GetCharacter(_ context.Context, input *sheet.GetCharacterInput) (*sheet.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireCharacter(); err != nil {
		return nil, err
	}
	return o.output(), nil
}

// LoadCharacter restores the saved character, replacing the live one
func (o *Orchestrator) LoadCharacter(ctx context.Context, input *sheet.LoadCharacterInput) (*sheet.LoadCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	loaded, err := o.repo.Load(ctx, documents.LoadInput{Key: documents.KeyCharacter})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("no saved character")
		}
		return nil, errors.Wrap(err, "failed to load character")
	}

	character, err := exchange.DecodeCharacter(documents.KeyCharacter+".json", loaded.Document.Data)
	if err != nil {
		return nil, errors.Wrap(err, "saved character is unreadable")
	}

	o.adopt(character)
	o.notify(ctx, engine.ActionLoaded)

	slog.InfoContext(ctx, "loaded character",
		"character_id", character.ID,
		"name", character.Name,
		"level", character.Level)

	return o.output(), nil
}

// ImportCharacter replaces the live character with an uploaded file
func (o *Orchestrator) ImportCharacter(ctx context.Context, input *sheet.ImportCharacterInput) (*sheet.ImportCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	character, err := exchange.DecodeCharacter(input.Filename, input.Data)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.adopt(character)
	o.save(ctx, engine.ActionImported)

	slog.InfoContext(ctx, "imported character",
		"character_id", character.ID,
		"name", character.Name,
		"filename", input.Filename)

	return o.output(), nil
}

// ExportCharacter renders the live character as a pretty-printed file
func (o *Orchestrator) ExportCharacter(_ context.Context, input *sheet.ExportCharacterInput) (*sheet.ExportCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.requireCharacter(); err != nil {
		return nil, err
	}

	file, err := exchange.EncodeCharacter(o.character)
	if err != nil {
		return nil, err
	}

	return &sheet.ExportCharacterOutput{
		Filename: file.Name,
		Data:     file.Data,
	}, nil
}

// ListRecentCharacters returns the recent list, newest first
func (o *Orchestrator) ListRecentCharacters(ctx context.Context, input *sheet.ListRecentCharactersInput) (*sheet.ListRecentCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	recent, err := o.loadRecent(ctx)
	if err != nil {
		return nil, err
	}

	return &sheet.ListRecentCharactersOutput{Characters: recent}, nil
}

// Persist saves the live character if there is one. It is what the autosave
// loop calls.
func (o *Orchestrator) Persist(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.character == nil {
		return nil
	}
	return o.persist(ctx, o.character)
}

// adopt makes character the live one and drops any wizard that was started
// for the previous character
func (o *Orchestrator) adopt(character *entities.Character) {
	if character.ID == "" {
		character.ID = o.idGen.Generate()
	}
	o.character = character
	o.wizard = nil
}

// save persists the live character and publishes the update. A storage
// failure does not undo an accepted mutation; the next autosave retries.
func (o *Orchestrator) save(ctx context.Context, action string) {
	if err := o.persist(ctx, o.character); err != nil {
		slog.ErrorContext(ctx, "failed to persist character",
			"character_id", o.character.ID,
			"action", action,
			"error", err)
	}
	o.notify(ctx, action)
}

func (o *Orchestrator) persist(ctx context.Context, character *entities.Character) error {
	data, err := json.Marshal(character)
	if err != nil {
		return errors.Wrap(err, "failed to encode character")
	}

	if _, err := o.repo.Save(ctx, documents.SaveInput{Key: documents.KeyCharacter, Data: data}); err != nil {
		return errors.Wrap(err, "failed to save character")
	}

	if err := o.touchRecent(ctx, character); err != nil {
		return errors.Wrap(err, "failed to update recent characters")
	}
	return nil
}

func (o *Orchestrator) notify(ctx context.Context, action string) {
	err := o.engine.CharacterUpdated(ctx, &engine.CharacterUpdatedInput{
		Character: o.character,
		Action:    action,
	})
	if err != nil {
		slog.WarnContext(ctx, "character update event failed", "action", action, "error", err)
	}
}

func (o *Orchestrator) requireCharacter() error {
	if o.character == nil {
		return errors.FailedPrecondition("no character loaded")
	}
	return nil
}

func (o *Orchestrator) output() *sheet.CharacterOutput {
	return &sheet.CharacterOutput{
		Character:    o.character.Clone(),
		ClassDisplay: o.character.ClassDisplay(),
	}
}
