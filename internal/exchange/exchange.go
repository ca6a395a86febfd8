// Package exchange reads and writes character sheet files.
//
// Imports accept JSON (or YAML by file extension) holding either a Character
// or a ClassDefinition. The kind is sniffed from the document's top-level
// keys. Anything that cannot be read as the expected kind is reported as an
// "invalid file" error. Exports are pretty-printed JSON named after a slug of
// the document name.
package exchange

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
)

// Kind of document held by a file
type Kind string

// Document kinds
const (
	KindUnknown         Kind = ""
	KindCharacter       Kind = "character"
	KindClassDefinition Kind = "class-definition"
)

const (
	jsonExt   = ".json"
	indent    = "  "
	maxSize   = 4 << 20
	emptySlug = "untitled"
)

// Document is one decoded file
type Document struct {
	Kind            Kind
	Character       *entities.Character
	ClassDefinition *entities.ClassDefinition
}

// File is an encoded document ready to be written
type File struct {
	Name string
	Data []byte
}

// Decode reads a file of either kind. filename only selects the syntax and
// may be empty.
func Decode(filename string, data []byte) (*Document, error) {
	raw, err := toJSON(filename, data)
	if err != nil {
		return nil, err
	}

	switch kind := DetectKind(raw); kind {
	case KindCharacter:
		character, err := decodeCharacter(raw)
		if err != nil {
			return nil, err
		}
		return &Document{Kind: kind, Character: character}, nil
	case KindClassDefinition:
		definition, err := decodeClassDefinition(raw)
		if err != nil {
			return nil, err
		}
		return &Document{Kind: kind, ClassDefinition: definition}, nil
	default:
		return nil, errors.InvalidFile(errors.InvalidArgument("document is neither a character nor a class definition"))
	}
}

// DecodeCharacter reads a character file and normalizes legacy records.
func DecodeCharacter(filename string, data []byte) (*entities.Character, error) {
	raw, err := toJSON(filename, data)
	if err != nil {
		return nil, err
	}
	if kind := DetectKind(raw); kind == KindClassDefinition {
		return nil, errors.InvalidFile(errors.InvalidArgument("file holds a class definition, not a character"))
	}
	return decodeCharacter(raw)
}

// DecodeClassDefinition reads a class definition file.
func DecodeClassDefinition(filename string, data []byte) (*entities.ClassDefinition, error) {
	raw, err := toJSON(filename, data)
	if err != nil {
		return nil, err
	}
	if kind := DetectKind(raw); kind == KindCharacter {
		return nil, errors.InvalidFile(errors.InvalidArgument("file holds a character, not a class definition"))
	}
	return decodeClassDefinition(raw)
}

// DetectKind guesses the kind from top-level keys. Class definitions carry
// hitDie and a levels array; characters carry hit points or ability scores.
func DetectKind(raw []byte) Kind {
	if !gjson.ValidBytes(raw) {
		return KindUnknown
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return KindUnknown
	}

	if root.Get("levels").IsArray() && root.Get("hitDie").Exists() {
		return KindClassDefinition
	}
	if root.Get("hitPoints").IsObject() || root.Get("abilityScores").IsObject() {
		return KindCharacter
	}
	return KindUnknown
}

// EncodeCharacter renders a character as pretty JSON named <slug>.json
func EncodeCharacter(character *entities.Character) (*File, error) {
	if character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	return encode(character.Name, character)
}

// EncodeClassDefinition renders a class definition as pretty JSON named <slug>.json
func EncodeClassDefinition(definition *entities.ClassDefinition) (*File, error) {
	if definition == nil {
		return nil, errors.InvalidArgument("class definition is required")
	}
	return encode(definition.Name, definition)
}

func encode(name string, v any) (*File, error) {
	data, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode document")
	}
	return &File{Name: Filename(name), Data: append(data, '\n')}, nil
}

// Filename is the export name for a document called name
func Filename(name string) string {
	return Slug(name) + jsonExt
}

func decodeCharacter(raw []byte) (*entities.Character, error) {
	var character entities.Character
	if err := json.Unmarshal(raw, &character); err != nil {
		return nil, errors.InvalidFile(err)
	}
	if strings.TrimSpace(character.Name) == "" {
		return nil, errors.InvalidFile(errors.InvalidArgument("character name is required"))
	}
	return entities.Normalize(&character), nil
}

func decodeClassDefinition(raw []byte) (*entities.ClassDefinition, error) {
	var definition entities.ClassDefinition
	if err := json.Unmarshal(raw, &definition); err != nil {
		return nil, errors.InvalidFile(err)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", definition.Name, vb)
	if definition.HitDie <= 0 {
		vb.InvalidField("hitDie", "must be positive")
	}
	if len(definition.Levels) == 0 {
		vb.RequiredField("levels")
	}
	if err := vb.Build(); err != nil {
		return nil, errors.InvalidFile(err)
	}
	return &definition, nil
}

// toJSON returns data as JSON, converting YAML files by extension.
func toJSON(filename string, data []byte) ([]byte, error) {
	if len(data) > maxSize {
		return nil, errors.InvalidFile(errors.InvalidArgumentf("file is larger than %d bytes", maxSize))
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.InvalidFile(errors.InvalidArgument("file is empty"))
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.InvalidFile(err)
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, errors.InvalidFile(err)
		}
		return raw, nil
	default:
		if !json.Valid(data) {
			return nil, errors.InvalidFile(errors.InvalidArgument("file is not valid JSON"))
		}
		return data, nil
	}
}
