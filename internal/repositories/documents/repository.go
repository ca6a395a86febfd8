// Package documents provides the storage port for the character sheet: whole
// JSON documents saved and loaded under fixed string keys.
package documents

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-hud/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=documentsmock github.com/KirkDiggler/rpg-hud/internal/repositories/documents Repository

// Keys used by the sheet
const (
	KeyCharacter        = "dnd-hud-character"
	KeyRecentCharacters = "dnd-hud-recent-characters"
	ClassKeyPrefix      = "dnd-hud-class:"
)

const (
	errKeyEmpty    = "document key cannot be empty"
	errDataInvalid = "document data must be valid JSON"
)

// ClassKey is the key of a stored class definition
func ClassKey(slug string) string {
	return ClassKeyPrefix + slug
}

// Document is one stored value
type Document struct {
	Key       string
	Data      []byte
	UpdatedAt time.Time
}

// SaveInput contains parameters for saving a document
type SaveInput struct {
	Key  string
	Data []byte
}

// SaveOutput contains the stored document
type SaveOutput struct {
	Document *Document
}

// LoadInput contains parameters for loading a document
type LoadInput struct {
	Key string
}

// LoadOutput contains the loaded document
type LoadOutput struct {
	Document *Document
}

// DeleteInput contains parameters for deleting a document
type DeleteInput struct {
	Key string
}

// DeleteOutput reports whether anything was removed
type DeleteOutput struct {
	Deleted bool
}

// ListInput selects keys by prefix
type ListInput struct {
	Prefix string
}

// ListOutput contains matching keys in ascending order
type ListOutput struct {
	Keys []string
}

// Repository is the document storage port
type Repository interface {
	// Save creates or replaces the document at key
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load returns the document at key or a NotFound error
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Delete removes the document at key if present
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns the keys starting with a prefix
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}
	return nil
}

func validateSave(input SaveInput) error {
	if err := validateKey(input.Key); err != nil {
		return err
	}
	if !json.Valid(input.Data) {
		return errors.InvalidArgument(errDataInvalid).WithMeta("key", input.Key)
	}
	return nil
}

func notFound(key string) error {
	return errors.NotFoundf("document %s not found", key).WithMeta("key", key)
}
