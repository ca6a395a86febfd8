package sheet

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/repositories/documents"
	"github.com/KirkDiggler/rpg-hud/internal/services/sheet"
)

func (o *Orchestrator) loadRecent(ctx context.Context) ([]sheet.RecentCharacter, error) {
	loaded, err := o.repo.Load(ctx, documents.LoadInput{Key: documents.KeyRecentCharacters})
	if err != nil {
		if errors.IsNotFound(err) {
			return []sheet.RecentCharacter{}, nil
		}
		return nil, errors.Wrap(err, "failed to load recent characters")
	}

	var recent []sheet.RecentCharacter
	if err := json.Unmarshal(loaded.Document.Data, &recent); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "recent characters list is corrupt")
	}
	if recent == nil {
		recent = []sheet.RecentCharacter{}
	}
	return recent, nil
}

// touchRecent moves character to the front of the recent list
func (o *Orchestrator) touchRecent(ctx context.Context, character *entities.Character) error {
	recent, err := o.loadRecent(ctx)
	if err != nil {
		slog.WarnContext(ctx, "replacing unreadable recent characters list", "error", err)
		recent = nil
	}

	updated := make([]sheet.RecentCharacter, 0, sheet.MaxRecentCharacters)
	updated = append(updated, sheet.RecentCharacter{
		ID:         character.ID,
		Name:       character.Name,
		ClassName:  character.ClassName,
		Level:      character.TotalLevel(),
		LastPlayed: o.clock.Now(),
	})
	for _, entry := range recent {
		if len(updated) == sheet.MaxRecentCharacters {
			break
		}
		if entry.ID == character.ID {
			continue
		}
		updated = append(updated, entry)
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return errors.Wrap(err, "failed to encode recent characters")
	}

	_, err = o.repo.Save(ctx, documents.SaveInput{Key: documents.KeyRecentCharacters, Data: data})
	return err
}
