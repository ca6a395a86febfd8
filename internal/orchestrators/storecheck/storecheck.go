// Package storecheck scans the document store for entries the sheet can no
// longer read and removes them on request.
package storecheck

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-hud/internal/errors"
	"github.com/KirkDiggler/rpg-hud/internal/exchange"
	"github.com/KirkDiggler/rpg-hud/internal/repositories/documents"
	"github.com/KirkDiggler/rpg-hud/internal/services/sheet"
)

// Problem is one unreadable document
type Problem struct {
	Key    string
	Reason string
}

// Config holds the dependencies for a Checker
type Config struct {
	Repo documents.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Repo == nil {
		vb.RequiredField("Repo")
	}
	return vb.Build()
}

// Checker audits stored documents
type Checker struct {
	repo documents.Repository
}

// New creates a Checker
func New(cfg *Config) (*Checker, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid storecheck config")
	}
	return &Checker{repo: cfg.Repo}, nil
}

// Scan loads every document the sheet owns and reports those that fail to
// decode. Missing documents are not problems.
func (c *Checker) Scan(ctx context.Context) ([]Problem, error) {
	var problems []Problem

	if p, err := c.check(ctx, documents.KeyCharacter, decodeCharacter); err != nil {
		return nil, err
	} else if p != nil {
		problems = append(problems, *p)
	}

	if p, err := c.check(ctx, documents.KeyRecentCharacters, decodeRecent); err != nil {
		return nil, err
	} else if p != nil {
		problems = append(problems, *p)
	}

	listed, err := c.repo.List(ctx, documents.ListInput{Prefix: documents.ClassKeyPrefix})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list class definitions")
	}
	for _, key := range listed.Keys {
		p, err := c.check(ctx, key, decodeClassDefinition)
		if err != nil {
			return nil, err
		}
		if p != nil {
			problems = append(problems, *p)
		}
	}

	return problems, nil
}

// Remove deletes the documents behind problems and returns how many were
// removed. It stops at the first storage failure.
func (c *Checker) Remove(ctx context.Context, problems []Problem) (int, error) {
	removed := 0
	for _, p := range problems {
		out, err := c.repo.Delete(ctx, documents.DeleteInput{Key: p.Key})
		if err != nil {
			return removed, errors.Wrapf(err, "failed to delete %s", p.Key)
		}
		if out.Deleted {
			removed++
			slog.InfoContext(ctx, "removed unreadable document", "key", p.Key)
		}
	}
	return removed, nil
}

func (c *Checker) check(ctx context.Context, key string, decode func([]byte) error) (*Problem, error) {
	loaded, err := c.repo.Load(ctx, documents.LoadInput{Key: key})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to load %s", key)
	}

	if err := decode(loaded.Document.Data); err != nil {
		return &Problem{Key: key, Reason: err.Error()}, nil
	}
	return nil, nil
}

func decodeCharacter(data []byte) error {
	_, err := exchange.DecodeCharacter(documents.KeyCharacter+".json", data)
	return err
}

func decodeClassDefinition(data []byte) error {
	_, err := exchange.DecodeClassDefinition("", data)
	return err
}

func decodeRecent(data []byte) error {
	var recent []sheet.RecentCharacter
	if err := json.Unmarshal(data, &recent); err != nil {
		return errors.InvalidArgument("recent characters list is not a list of entries")
	}
	return nil
}
