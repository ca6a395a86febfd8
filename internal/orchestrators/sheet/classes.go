package sheet

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/exchange"
	"github.com/KirkDiggler/rpg-hud/internal/repositories/documents"
	"github.com/KirkDiggler/rpg-hud/internal/services/sheet"
)

// ImportClassDefinition stores an uploaded class definition under its slug
func (o *Orchestrator) ImportClassDefinition(ctx context.Context, input *sheet.ImportClassDefinitionInput) (*sheet.ImportClassDefinitionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	definition, err := exchange.DecodeClassDefinition(input.Filename, input.Data)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return o.storeClass(ctx, definition)
}

// ImportSRDClass builds a class definition from the SRD and stores it
func (o *Orchestrator) ImportSRDClass(ctx context.Context, input *sheet.ImportSRDClassInput) (*sheet.ImportSRDClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("key", input.Key, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	definition, err := o.srd.ImportClass(ctx, input.Key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to import SRD class %s", input.Key)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return o.storeClass(ctx, definition)
}

func (o *Orchestrator) storeClass(ctx context.Context, definition *entities.ClassDefinition) (*sheet.ImportClassDefinitionOutput, error) {
	data, err := json.Marshal(definition)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode class definition")
	}

	slug := exchange.Slug(definition.Name)
	key := documents.ClassKey(slug)
	if _, err := o.repo.Save(ctx, documents.SaveInput{Key: key, Data: data}); err != nil {
		return nil, errors.Wrapf(err, "failed to save class definition %s", definition.Name)
	}
	o.classes[slug] = definition

	slog.InfoContext(ctx, "stored class definition",
		"class", definition.Name,
		"key", key,
		"levels", len(definition.Levels))

	return &sheet.ImportClassDefinitionOutput{
		ClassDefinition: definition,
		Key:             key,
	}, nil
}

// classDefinition finds a class by name, first in memory then in storage
func (o *Orchestrator) classDefinition(ctx context.Context, className string) (*entities.ClassDefinition, error) {
	slug := exchange.Slug(strings.TrimSpace(className))
	if definition, ok := o.classes[slug]; ok {
		return definition, nil
	}

	key := documents.ClassKey(slug)
	loaded, err := o.repo.Load(ctx, documents.LoadInput{Key: key})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("no class definition loaded for %s", className).
				WithMeta("class", className)
		}
		return nil, errors.Wrapf(err, "failed to load class definition %s", className)
	}

	definition, err := exchange.DecodeClassDefinition(key+".json", loaded.Document.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "stored class definition %s is unreadable", className)
	}

	o.classes[slug] = definition
	return definition, nil
}
