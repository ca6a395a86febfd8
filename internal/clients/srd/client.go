// Package srd imports class definitions from the D&D 5e SRD API.
package srd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	srdentities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-hud/internal/entities"
	"github.com/KirkDiggler/rpg-hud/internal/errors"
)

//go:generate mockgen -destination=mock/mock_client.go -package=srdmock github.com/KirkDiggler/rpg-hud/internal/clients/srd Client

const (
	defaultBaseURL     = "https://www.dnd5eapi.co/api/2014/"
	defaultHTTPTimeout = 30 * time.Second
	defaultCacheTTL    = 24 * time.Hour
	maxClassLevel      = 20

	asiFeaturePrefix = "Ability Score Improvement"
)

// Client builds class definitions from SRD data
type Client interface {
	// ImportClass fetches a class and its level table by SRD key, e.g. "fighter"
	ImportClass(ctx context.Context, key string) (*entities.ClassDefinition, error)
}

// API is the part of the dnd5e-api client the importer uses
type API interface {
	GetClass(key string) (*srdentities.Class, error)
	GetClassLevel(key string, level int) (*srdentities.Level, error)
}

// Config contains configuration options for the SRD client
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// MaxLevel is the last level imported (optional, defaults to 20)
	MaxLevel int
	// API replaces the HTTP client, mainly for tests
	API API
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.MaxLevel == 0 {
		cfg.MaxLevel = maxClassLevel
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("maxLevel", cfg.MaxLevel, 1, maxClassLevel, vb)
	if cfg.HTTPTimeout < 0 {
		vb.InvalidField("httpTimeout", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	api      API
	maxLevel int
}

// New creates an SRD client. Unless cfg.API is set it talks to the public
// API through the library's caching client.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	api := cfg.API
	if api == nil {
		base, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
			Client:  &http.Client{Timeout: cfg.HTTPTimeout},
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create D&D 5e API client")
		}
		api = dnd5e.NewCachedClient(base, cfg.CacheTTL)
	}

	return &client{api: api, maxLevel: cfg.MaxLevel}, nil
}

func (c *client) ImportClass(ctx context.Context, key string) (*entities.ClassDefinition, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil, errors.InvalidArgument("class key is required")
	}

	class, err := c.api.GetClass(key)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to get class %s", key)).
			WithMeta("class", key)
	}
	if class == nil {
		return nil, errors.NotFoundf("class %s not found", key).WithMeta("class", key)
	}

	definition := convertClass(class)

	for level := 1; level <= c.maxLevel; level++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "import cancelled")
		}

		srdLevel, err := c.api.GetClassLevel(key, level)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to get %s level %d", key, level)).
				WithMeta("class", key).
				WithMeta("level", level)
		}
		if srdLevel == nil {
			slog.WarnContext(ctx, "SRD level table ends early", "class", key, "level", level)
			break
		}

		definition.Levels = append(definition.Levels, convertLevel(definition.Name, level, srdLevel))
	}

	if definition.HitDie <= 0 || len(definition.Levels) == 0 {
		return nil, errors.FailedPreconditionf("SRD data for %s is incomplete", key).WithMeta("class", key)
	}

	slog.InfoContext(ctx, "imported SRD class", "class", definition.Name, "levels", len(definition.Levels))
	return definition, nil
}

func convertClass(class *srdentities.Class) *entities.ClassDefinition {
	definition := &entities.ClassDefinition{
		Name:           class.Name,
		HitDie:         class.HitDie,
		PrimaryAbility: []entities.Ability{},
		SavingThrows:   []entities.Ability{},
		StartingProficiencies: entities.StartingProficiencies{
			Armor:   []string{},
			Weapons: []string{},
			Tools:   []string{},
			Skills:  entities.SkillOptions{From: []string{}},
		},
		StartingEquipment: entities.StartingEquipment{Choices: []entities.EquipmentChoice{}},
		Levels:            []entities.LevelDefinition{},
	}

	for _, ability := range class.PrimaryAbilities {
		if a, ok := abilityFromSRD(ability.Name); ok {
			definition.PrimaryAbility = append(definition.PrimaryAbility, a)
		}
	}
	for _, save := range class.SavingThrows {
		if a, ok := abilityFromSRD(save.Name); ok {
			definition.SavingThrows = append(definition.SavingThrows, a)
		}
	}
	for _, armor := range class.ArmorProficiencies {
		definition.StartingProficiencies.Armor = append(definition.StartingProficiencies.Armor, armor.Name)
	}
	for _, weapon := range class.WeaponProficiencies {
		definition.StartingProficiencies.Weapons = append(definition.StartingProficiencies.Weapons, weapon.Name)
	}
	for _, tool := range class.ToolProficiencies {
		definition.StartingProficiencies.Tools = append(definition.StartingProficiencies.Tools, tool.Name)
	}

	return definition
}

// convertLevel maps one SRD level row. "Ability Score Improvement" features
// become the level's improvement flag instead of a feature.
func convertLevel(className string, level int, srdLevel *srdentities.Level) entities.LevelDefinition {
	out := entities.LevelDefinition{
		Level:            level,
		ProficiencyBonus: entities.ProficiencyBonusForLevel(level),
		Features:         []entities.FeatureGrant{},
	}

	for _, ref := range srdLevel.Features {
		if ref == nil {
			continue
		}
		if strings.HasPrefix(ref.Name, asiFeaturePrefix) {
			out.AbilityScoreImprovement = true
			continue
		}
		out.Features = append(out.Features, entities.FeatureGrant{
			Name:        ref.Name,
			Description: fmt.Sprintf("A %s class feature gained at level %d.", className, level),
			Type:        entities.FeaturePassive,
		})
	}

	if casting := srdLevel.SpellCasting; casting != nil {
		out.CantripsKnown = casting.CantripsKnown
		out.SpellsKnown = casting.SpellsKnown
		if casting.SpellSlotsLevel1 > 0 {
			out.SpellSlots = []int{casting.SpellSlotsLevel1}
			out.SpellLevelUnlocked = 1
		}
	}

	return out
}

var srdAbilities = map[string]entities.Ability{
	"STR": entities.AbilityStrength,
	"DEX": entities.AbilityDexterity,
	"CON": entities.AbilityConstitution,
	"INT": entities.AbilityIntelligence,
	"WIS": entities.AbilityWisdom,
	"CHA": entities.AbilityCharisma,
}

func abilityFromSRD(name string) (entities.Ability, bool) {
	if a, ok := srdAbilities[strings.ToUpper(name)]; ok {
		return a, true
	}
	a := entities.Ability(strings.ToLower(name))
	return a, a.Valid()
}
